package tiptap

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

func TestParseBlockNodes(t *testing.T) {
	tests := []struct {
		name  string
		json  string
		check func(t *testing.T, elem any)
	}{
		{
			name: "hero",
			json: `{"type":"heroBlock","attrs":{"imageUrl":"https://cdn.velostore.example/hero.jpg","title":"Лето на двух колесах","alignment":"left","overlayOpacity":60}}`,
			check: func(t *testing.T, elem any) {
				hero, ok := elem.(*edtypes.Hero)
				if !ok {
					t.Fatalf("got %T, want *Hero", elem)
				}
				if hero.Title != "Лето на двух колесах" {
					t.Errorf("Title = %q", hero.Title)
				}
				if hero.Alignment != edtypes.AlignLeft {
					t.Errorf("Alignment = %q", hero.Alignment)
				}
				if hero.OverlayOpacity != 60 {
					t.Errorf("OverlayOpacity = %d", hero.OverlayOpacity)
				}
			},
		},
		{
			name: "product grid",
			json: `{"type":"productGrid","attrs":{"title":"Хиты продаж","productIds":["a1","b2","c3"],"columns":4,"showPrice":true,"showDescription":false}}`,
			check: func(t *testing.T, elem any) {
				grid, ok := elem.(*edtypes.ProductGrid)
				if !ok {
					t.Fatalf("got %T, want *ProductGrid", elem)
				}
				if len(grid.ProductIDs) != 3 || grid.ProductIDs[1] != "b2" {
					t.Errorf("ProductIDs = %v", grid.ProductIDs)
				}
				if grid.Columns != 4 {
					t.Errorf("Columns = %d", grid.Columns)
				}
			},
		},
		{
			name: "gallery with images",
			json: `{"type":"gallery","attrs":{"images":[{"url":"https://cdn.velostore.example/1.jpg","alt":"велосипед","caption":"Модель X"},{"url":"https://cdn.velostore.example/2.jpg","alt":""}],"columns":2,"gap":"large","lightbox":false}}`,
			check: func(t *testing.T, elem any) {
				g, ok := elem.(*edtypes.Gallery)
				if !ok {
					t.Fatalf("got %T, want *Gallery", elem)
				}
				if len(g.Images) != 2 {
					t.Fatalf("Images count = %d", len(g.Images))
				}
				if g.Images[0].Caption != "Модель X" {
					t.Errorf("Caption = %q", g.Images[0].Caption)
				}
				if g.Gap != edtypes.GapLarge {
					t.Errorf("Gap = %q", g.Gap)
				}
				if g.Lightbox {
					t.Error("Lightbox = true, want false")
				}
			},
		},
		{
			name: "video embed",
			json: `{"type":"videoEmbed","attrs":{"videoUrl":"https://youtu.be/dQw4w9WgXcQ","aspectRatio":"4:3","autoplay":true}}`,
			check: func(t *testing.T, elem any) {
				v, ok := elem.(*edtypes.VideoEmbed)
				if !ok {
					t.Fatalf("got %T, want *VideoEmbed", elem)
				}
				if v.AspectRatio != edtypes.Ratio4x3 {
					t.Errorf("AspectRatio = %q", v.AspectRatio)
				}
				if !v.Autoplay {
					t.Error("Autoplay = false, want true")
				}
			},
		},
		{
			name: "testimonial",
			json: `{"type":"testimonial","attrs":{"quote":"Лучший сервис","authorName":"Анна","rating":5}}`,
			check: func(t *testing.T, elem any) {
				ts, ok := elem.(*edtypes.Testimonial)
				if !ok {
					t.Fatalf("got %T, want *Testimonial", elem)
				}
				if ts.Rating != 5 {
					t.Errorf("Rating = %d", ts.Rating)
				}
			},
		},
		{
			name: "call to action",
			json: `{"type":"callToAction","attrs":{"title":"Скидка 10%","buttonText":"Получить","buttonUrl":"/promo","backgroundColor":"#ff6600","textColor":"#fff","alignment":"right"}}`,
			check: func(t *testing.T, elem any) {
				cta, ok := elem.(*edtypes.CallToAction)
				if !ok {
					t.Fatalf("got %T, want *CallToAction", elem)
				}
				if cta.Alignment != edtypes.AlignRight {
					t.Errorf("Alignment = %q", cta.Alignment)
				}
				if cta.BackgroundColor != "#ff6600" {
					t.Errorf("BackgroundColor = %q", cta.BackgroundColor)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var node TipTapNode
			if err := json.Unmarshal([]byte(tt.json), &node); err != nil {
				t.Fatalf("Failed to unmarshal JSON: %v", err)
			}

			elem := parseNode(node)
			if elem == nil {
				t.Fatal("parseNode returned nil")
			}
			tt.check(t, elem)
		})
	}
}

// Блоки атомарны: дочерний контент в блочной ноде отбрасывается при парсинге,
// параграф не может стать ребенком блока.
func TestBlockNodeDropsChildren(t *testing.T) {
	jsonStr := `{
		"type": "doc",
		"content": [
			{
				"type": "heroBlock",
				"attrs": {"title": "С детьми"},
				"content": [
					{"type": "paragraph", "content": [{"type": "text", "text": "contraband"}]}
				]
			}
		]
	}`

	doc, err := ParseJSON(strings.NewReader(jsonStr))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}

	if len(doc.Elements) != 1 {
		t.Fatalf("Elements count = %d, want 1", len(doc.Elements))
	}

	hero, ok := doc.Elements[0].(*edtypes.Hero)
	if !ok {
		t.Fatalf("got %T, want *Hero", doc.Elements[0])
	}
	if hero.Title != "С детьми" {
		t.Errorf("Title = %q", hero.Title)
	}

	// Сериализация блока никогда не пишет content
	node := serializeBlock(hero)
	if node == nil {
		t.Fatal("serializeBlock returned nil")
	}
	if len(node.Content) != 0 {
		t.Errorf("block node has %d children, want 0", len(node.Content))
	}
}

func TestSerializeBlockStableTags(t *testing.T) {
	// Теги сериализации стабильны: их изменение ломает сохраненные документы
	want := map[edtypes.BlockKind]string{
		edtypes.KindHero:         "heroBlock",
		edtypes.KindProductGrid:  "productGrid",
		edtypes.KindTestimonial:  "testimonial",
		edtypes.KindGallery:      "gallery",
		edtypes.KindVideoEmbed:   "videoEmbed",
		edtypes.KindCallToAction: "callToAction",
	}

	for kind, tag := range want {
		block, err := edtypes.DefaultBlock(kind)
		if err != nil {
			t.Fatalf("DefaultBlock(%s) failed: %v", kind, err)
		}
		node := serializeBlock(block)
		if node == nil {
			t.Fatalf("serializeBlock(%s) returned nil", kind)
		}
		if node.Type != tag {
			t.Errorf("tag for %s = %q, want %q", kind, node.Type, tag)
		}
	}
}

package tiptap

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

func TestParseParagraph(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		wantText  string
		wantAlign edtypes.TextAlign
	}{
		{
			name:      "simple paragraph",
			json:      `{"type":"paragraph","attrs":{"textAlign":"left"},"content":[{"type":"text","text":"Hello"}]}`,
			wantText:  "Hello",
			wantAlign: edtypes.LeftAlign,
		},
		{
			name:      "paragraph with center align",
			json:      `{"type":"paragraph","attrs":{"textAlign":"center"},"content":[{"type":"text","text":"Centered"}]}`,
			wantText:  "Centered",
			wantAlign: edtypes.CenterAlign,
		},
		{
			name:      "paragraph with justify align",
			json:      `{"type":"paragraph","attrs":{"textAlign":"justify"},"content":[{"type":"text","text":"Justified"}]}`,
			wantText:  "Justified",
			wantAlign: edtypes.JustifyAlign,
		},
		{
			name:      "paragraph without attrs",
			json:      `{"type":"paragraph","content":[{"type":"text","text":"Plain"}]}`,
			wantText:  "Plain",
			wantAlign: edtypes.LeftAlign,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var node TipTapNode
			if err := json.Unmarshal([]byte(tt.json), &node); err != nil {
				t.Fatalf("Failed to unmarshal JSON: %v", err)
			}

			p := parseParagraph(node)
			if p == nil {
				t.Fatal("parseParagraph returned nil")
			}

			if p.Align != tt.wantAlign {
				t.Errorf("Align = %v, want %v", p.Align, tt.wantAlign)
			}

			if len(p.Content) == 0 {
				t.Fatal("Content is empty")
			}

			text, ok := p.Content[0].(edtypes.Text)
			if !ok {
				t.Fatalf("Content[0] is not Text, got %T", p.Content[0])
			}

			if text.Content != tt.wantText {
				t.Errorf("Text.Content = %q, want %q", text.Content, tt.wantText)
			}
		})
	}
}

func TestParseHeading(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		wantLevel int
	}{
		{
			name:      "h1",
			json:      `{"type":"heading","attrs":{"level":1},"content":[{"type":"text","text":"Title"}]}`,
			wantLevel: 1,
		},
		{
			name:      "h3",
			json:      `{"type":"heading","attrs":{"level":3},"content":[{"type":"text","text":"Sub"}]}`,
			wantLevel: 3,
		},
		{
			name:      "level out of range falls back to 1",
			json:      `{"type":"heading","attrs":{"level":6},"content":[{"type":"text","text":"Deep"}]}`,
			wantLevel: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var node TipTapNode
			if err := json.Unmarshal([]byte(tt.json), &node); err != nil {
				t.Fatalf("Failed to unmarshal JSON: %v", err)
			}

			h := parseHeading(node)
			if h == nil {
				t.Fatal("parseHeading returned nil")
			}

			if h.Level != tt.wantLevel {
				t.Errorf("Level = %d, want %d", h.Level, tt.wantLevel)
			}
		})
	}
}

func TestParseTextMarks(t *testing.T) {
	tests := []struct {
		name           string
		json           string
		wantStrong     bool
		wantItalic     bool
		wantUnderlined bool
		wantStrike     bool
		wantCode       bool
	}{
		{
			name:       "bold text",
			json:       `{"type":"text","marks":[{"type":"bold"}],"text":"Bold"}`,
			wantStrong: true,
		},
		{
			name:       "italic text",
			json:       `{"type":"text","marks":[{"type":"italic"}],"text":"Italic"}`,
			wantItalic: true,
		},
		{
			name:           "underline text",
			json:           `{"type":"text","marks":[{"type":"underline"}],"text":"Under"}`,
			wantUnderlined: true,
		},
		{
			name:       "strike text",
			json:       `{"type":"text","marks":[{"type":"strike"}],"text":"Strike"}`,
			wantStrike: true,
		},
		{
			name:     "inline code",
			json:     `{"type":"text","marks":[{"type":"code"}],"text":"x := 1"}`,
			wantCode: true,
		},
		{
			name:       "bold and italic",
			json:       `{"type":"text","marks":[{"type":"bold"},{"type":"italic"}],"text":"Both"}`,
			wantStrong: true,
			wantItalic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var node TipTapNode
			if err := json.Unmarshal([]byte(tt.json), &node); err != nil {
				t.Fatalf("Failed to unmarshal JSON: %v", err)
			}

			text := parseText(node)

			if text.Strong != tt.wantStrong {
				t.Errorf("Strong = %v, want %v", text.Strong, tt.wantStrong)
			}
			if text.Italic != tt.wantItalic {
				t.Errorf("Italic = %v, want %v", text.Italic, tt.wantItalic)
			}
			if text.Underlined != tt.wantUnderlined {
				t.Errorf("Underlined = %v, want %v", text.Underlined, tt.wantUnderlined)
			}
			if text.Strikethrough != tt.wantStrike {
				t.Errorf("Strikethrough = %v, want %v", text.Strikethrough, tt.wantStrike)
			}
			if text.Code != tt.wantCode {
				t.Errorf("Code = %v, want %v", text.Code, tt.wantCode)
			}
		})
	}
}

func TestParseTextLink(t *testing.T) {
	jsonStr := `{"type":"text","marks":[{"type":"link","attrs":{"href":"https://velostore.example/catalog","target":"_blank"}}],"text":"каталог"}`

	var node TipTapNode
	if err := json.Unmarshal([]byte(jsonStr), &node); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	text := parseText(node)
	if text.URL == nil {
		t.Fatal("URL is nil")
	}
	if text.URL.String() != "https://velostore.example/catalog" {
		t.Errorf("URL = %q", text.URL.String())
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name         string
		json         string
		wantNumbered bool
		wantCount    int
	}{
		{
			name:         "bullet list",
			json:         `{"type":"bulletList","content":[{"type":"listItem","content":[{"type":"paragraph","content":[{"type":"text","text":"Item 1"}]}]}]}`,
			wantNumbered: false,
			wantCount:    1,
		},
		{
			name:         "ordered list",
			json:         `{"type":"orderedList","attrs":{"start":1},"content":[{"type":"listItem","content":[{"type":"paragraph","content":[{"type":"text","text":"Item 1"}]}]},{"type":"listItem","content":[{"type":"paragraph","content":[{"type":"text","text":"Item 2"}]}]}]}`,
			wantNumbered: true,
			wantCount:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var node TipTapNode
			if err := json.Unmarshal([]byte(tt.json), &node); err != nil {
				t.Fatalf("Failed to unmarshal JSON: %v", err)
			}

			list := parseList(node)
			if list == nil {
				t.Fatal("parseList returned nil")
			}

			if list.Numbered != tt.wantNumbered {
				t.Errorf("Numbered = %v, want %v", list.Numbered, tt.wantNumbered)
			}
			if len(list.Elements) != tt.wantCount {
				t.Errorf("Elements count = %d, want %d", len(list.Elements), tt.wantCount)
			}
		})
	}
}

func TestParseJSON(t *testing.T) {
	jsonStr := `{
		"type": "doc",
		"content": [
			{
				"type": "paragraph",
				"content": [{"type": "text", "text": "Hello World"}]
			},
			{
				"type": "unknown-node",
				"content": []
			}
		]
	}`

	doc, err := ParseJSON(strings.NewReader(jsonStr))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}

	// Неизвестная нода пропускается, параграф остается
	if len(doc.Elements) != 1 {
		t.Fatalf("Elements count = %d, want 1", len(doc.Elements))
	}

	p, ok := doc.Elements[0].(*edtypes.Paragraph)
	if !ok {
		t.Fatalf("Elements[0] is not *Paragraph, got %T", doc.Elements[0])
	}

	text, ok := p.Content[0].(edtypes.Text)
	if !ok {
		t.Fatalf("Paragraph content[0] is not Text, got %T", p.Content[0])
	}

	if text.Content != "Hello World" {
		t.Errorf("Text content = %q, want %q", text.Content, "Hello World")
	}
}

func TestParseJSONMalformed(t *testing.T) {
	if _, err := ParseJSON(strings.NewReader(`{"type": "doc", "content": [`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

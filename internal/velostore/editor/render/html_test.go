package render_test

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/render"
)

func TestRenderTextMarks(t *testing.T) {
	link, _ := url.Parse("https://velostore.example/catalog")

	p := &edtypes.Paragraph{Content: []any{
		edtypes.Text{Content: "обычный "},
		edtypes.Text{Content: "жирный", Strong: true},
		edtypes.Text{Content: " "},
		edtypes.Text{Content: "все сразу", Strong: true, Italic: true, Underlined: true, Strikethrough: true},
		&edtypes.HardBreak{},
		edtypes.Text{Content: "ссылка", URL: link},
		edtypes.Text{Content: "x < y", Code: true},
	}}

	got := renderOne(p)

	for _, want := range []string{
		"<strong>жирный</strong>",
		"<strong><em><u><s>все сразу</s></u></em></strong>",
		"<br>",
		`<a href="https://velostore.example/catalog" target="_blank" rel="noopener">ссылка</a>`,
		"<code>x &lt; y</code>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in: %s", want, got)
		}
	}
}

func TestRenderStructure(t *testing.T) {
	doc := &edtypes.Document{Elements: []any{
		&edtypes.Heading{Level: 2, Content: []any{edtypes.Text{Content: "Модели"}}, Align: edtypes.CenterAlign},
		&edtypes.List{Numbered: true, Elements: []edtypes.ListElement{
			{Content: []edtypes.Paragraph{{Content: []any{edtypes.Text{Content: "первая"}}}}},
			{Content: []edtypes.Paragraph{{Content: []any{edtypes.Text{Content: "вторая"}}}}},
		}},
		&edtypes.Quote{Content: []edtypes.Paragraph{{Content: []any{edtypes.Text{Content: "цитата"}}}}},
	}}

	got := render.NewRenderer(nil).HTML(doc)

	for _, want := range []string{
		`<h2 style="text-align: center">Модели</h2>`,
		"<ol><li><p>первая</p></li><li><p>вторая</p></li></ol>",
		"<blockquote><p>цитата</p></blockquote>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in: %s", want, got)
		}
	}
}

func TestPagePolicyStripsScript(t *testing.T) {
	dirty := `<p>ок</p><script>alert(1)</script><iframe src="https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ"></iframe>`
	clean := render.PagePolicy.Sanitize(dirty)

	if strings.Contains(clean, "<script") {
		t.Errorf("script survived sanitization: %s", clean)
	}
	if !strings.Contains(clean, "<iframe") {
		t.Errorf("allowed iframe stripped: %s", clean)
	}
}

func TestMarkdownExport(t *testing.T) {
	doc := &edtypes.Document{Elements: []any{
		&edtypes.Heading{Level: 1, Content: []any{edtypes.Text{Content: "Электровелосипеды"}}},
		&edtypes.Paragraph{Content: []any{
			edtypes.Text{Content: "жирный", Strong: true},
		}},
		&edtypes.CallToAction{Title: "Тест-драйв", ButtonText: "Записаться", ButtonURL: "/test-drive"},
	}}

	var buf bytes.Buffer
	if err := render.NewRenderer(nil).Markdown(&buf, doc); err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}
	got := buf.String()

	for _, want := range []string{
		"# Электровелосипеды",
		"**жирный**",
		"## Тест-драйв",
		"[Записаться](/test-drive)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in markdown:\n%s", want, got)
		}
	}
}

// Пакет render превращает дерево документа в HTML публичной страницы витрины.
//
// Основные возможности:
//   - Рендер стандартных текстовых элементов со всеми видами форматирования.
//   - Рендер контент-блоков с заглушками для незаполненных состояний.
//   - Экспорт документа в Markdown.
//   - Политика санитизации итогового HTML.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/dto"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

// Renderer рендерит документы в HTML. Товары для сеток передаются заранее
// разрешенным срезом: рендер не ходит во внешние источники.
type Renderer struct {
	products map[string]dto.ProductCard
}

func NewRenderer(products []dto.ProductCard) *Renderer {
	index := make(map[string]dto.ProductCard, len(products))
	for _, p := range products {
		index[p.Id] = p
	}
	return &Renderer{products: index}
}

// HTML рендерит документ целиком. Результат перед публичной отдачей
// пропускается через PagePolicy.
func (r *Renderer) HTML(doc *edtypes.Document) string {
	var sb strings.Builder
	for _, elem := range doc.Elements {
		r.renderElement(&sb, elem)
	}
	return sb.String()
}

func (r *Renderer) renderElement(sb *strings.Builder, elem any) {
	if edtypes.IsBlock(elem) {
		r.renderBlock(sb, elem)
		return
	}

	switch e := elem.(type) {
	case *edtypes.Paragraph:
		sb.WriteString("<p")
		writeAlign(sb, e.Align)
		sb.WriteString(">")
		renderInline(sb, e.Content)
		sb.WriteString("</p>")
	case *edtypes.Heading:
		tag := fmt.Sprintf("h%d", e.Level)
		sb.WriteString("<" + tag)
		writeAlign(sb, e.Align)
		sb.WriteString(">")
		renderInline(sb, e.Content)
		sb.WriteString("</" + tag + ">")
	case *edtypes.List:
		tag := "ul"
		if e.Numbered {
			tag = "ol"
		}
		sb.WriteString("<" + tag + ">")
		for _, item := range e.Elements {
			sb.WriteString("<li>")
			for _, p := range item.Content {
				paragraph := p
				r.renderElement(sb, &paragraph)
			}
			sb.WriteString("</li>")
		}
		sb.WriteString("</" + tag + ">")
	case *edtypes.Quote:
		sb.WriteString("<blockquote>")
		for _, p := range e.Content {
			paragraph := p
			r.renderElement(sb, &paragraph)
		}
		sb.WriteString("</blockquote>")
	}
}

func renderInline(sb *strings.Builder, content []any) {
	for _, item := range content {
		switch e := item.(type) {
		case edtypes.Text:
			renderText(sb, e)
		case *edtypes.HardBreak:
			sb.WriteString("<br>")
		}
	}
}

func renderText(sb *strings.Builder, t edtypes.Text) {
	var open, closing []string

	if t.URL != nil {
		open = append(open, fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener">`, html.EscapeString(t.URL.String())))
		closing = append(closing, "</a>")
	}
	if t.Color != nil || t.BgColor != nil {
		var styles []string
		if t.Color != nil {
			styles = append(styles, "color: "+colorToHex(*t.Color))
		}
		if t.BgColor != nil {
			styles = append(styles, "background-color: "+colorToHex(*t.BgColor))
		}
		open = append(open, fmt.Sprintf(`<span style="%s">`, strings.Join(styles, "; ")))
		closing = append(closing, "</span>")
	}
	if t.Strong {
		open = append(open, "<strong>")
		closing = append(closing, "</strong>")
	}
	if t.Italic {
		open = append(open, "<em>")
		closing = append(closing, "</em>")
	}
	if t.Underlined {
		open = append(open, "<u>")
		closing = append(closing, "</u>")
	}
	if t.Strikethrough {
		open = append(open, "<s>")
		closing = append(closing, "</s>")
	}
	if t.Code {
		open = append(open, "<code>")
		closing = append(closing, "</code>")
	}

	for _, tag := range open {
		sb.WriteString(tag)
	}
	sb.WriteString(html.EscapeString(t.Content))
	for i := len(closing) - 1; i >= 0; i-- {
		sb.WriteString(closing[i])
	}
}

func writeAlign(sb *strings.Builder, align edtypes.TextAlign) {
	var v string
	switch align {
	case edtypes.CenterAlign:
		v = "center"
	case edtypes.RightAlign:
		v = "right"
	case edtypes.JustifyAlign:
		v = "justify"
	default:
		return
	}
	sb.WriteString(fmt.Sprintf(` style="text-align: %s"`, v))
}

func colorToHex(c edtypes.Color) string {
	if c.A != 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

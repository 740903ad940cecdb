package tiptap

import (
	"log/slog"
	"net/url"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

// applyMarks применяет форматирование (marks) к текстовому элементу.
func applyMarks(text *edtypes.Text, marks []TipTapMark) {
	for _, mark := range marks {
		switch mark.Type {
		case "bold":
			text.Strong = true
		case "italic":
			text.Italic = true
		case "underline":
			text.Underlined = true
		case "strike":
			text.Strikethrough = true
		case "code":
			text.Code = true
		case "textStyle":
			applyTextStyle(text, mark.Attrs)
		case "link":
			applyLink(text, mark.Attrs)
		case "highlight":
			applyHighlight(text, mark.Attrs)
		default:
			slog.Debug("Unknown mark type", "type", mark.Type)
		}
	}
}

// applyTextStyle применяет цвет текста.
func applyTextStyle(text *edtypes.Text, attrs map[string]interface{}) {
	if color := getAttrString(attrs, "color"); color != "" {
		c, err := edtypes.ParseColor(color)
		if err == nil {
			text.Color = &c
		}
	}
}

// applyLink применяет ссылку к тексту.
func applyLink(text *edtypes.Text, attrs map[string]interface{}) {
	href := getAttrString(attrs, "href")
	if href != "" {
		u, err := url.Parse(href)
		if err == nil {
			text.URL = u
		}
	}
}

// applyHighlight применяет подсветку фона к тексту.
func applyHighlight(text *edtypes.Text, attrs map[string]interface{}) {
	color := getAttrString(attrs, "color")
	if color != "" {
		c, err := edtypes.ParseColor(color)
		if err == nil {
			text.BgColor = &c
		}
	}
}

// serializeMarks собирает marks текстового элемента для сериализации.
func serializeMarks(t *edtypes.Text) []TipTapMark {
	marks := make([]TipTapMark, 0)

	if t.Strong {
		marks = append(marks, TipTapMark{Type: "bold"})
	}
	if t.Italic {
		marks = append(marks, TipTapMark{Type: "italic"})
	}
	if t.Underlined {
		marks = append(marks, TipTapMark{Type: "underline"})
	}
	if t.Strikethrough {
		marks = append(marks, TipTapMark{Type: "strike"})
	}
	if t.Code {
		marks = append(marks, TipTapMark{Type: "code"})
	}

	if t.Color != nil {
		marks = append(marks, TipTapMark{
			Type: "textStyle",
			Attrs: map[string]interface{}{
				"color": colorToHex(*t.Color),
			},
		})
	}

	if t.BgColor != nil {
		marks = append(marks, TipTapMark{
			Type: "highlight",
			Attrs: map[string]interface{}{
				"color": colorToHex(*t.BgColor),
			},
		})
	}

	if t.URL != nil {
		marks = append(marks, TipTapMark{
			Type: "link",
			Attrs: map[string]interface{}{
				"href":   t.URL.String(),
				"target": "_blank",
			},
		})
	}

	return marks
}

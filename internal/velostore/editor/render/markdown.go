package render

import (
	"io"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

// Markdown экспортирует документ в Markdown. Контент-блоки сворачиваются в
// текстовое представление: баннеры и CTA - заголовок со ссылкой, сетка
// товаров - список названий, видео - ссылка.
func (r *Renderer) Markdown(w io.Writer, doc *edtypes.Document) error {
	out := md.NewMarkdown(w)

	for _, elem := range doc.Elements {
		switch e := elem.(type) {
		case *edtypes.Paragraph:
			out.PlainText(inlineMarkdown(e.Content))
		case *edtypes.Heading:
			switch e.Level {
			case 1:
				out.H1(inlineMarkdown(e.Content))
			case 2:
				out.H2(inlineMarkdown(e.Content))
			default:
				out.H3(inlineMarkdown(e.Content))
			}
		case *edtypes.List:
			items := make([]string, 0, len(e.Elements))
			for _, item := range e.Elements {
				var parts []string
				for _, p := range item.Content {
					parts = append(parts, inlineMarkdown(p.Content))
				}
				items = append(items, strings.Join(parts, " "))
			}
			if e.Numbered {
				out.OrderedList(items...)
			} else {
				out.BulletList(items...)
			}
		case *edtypes.Quote:
			var parts []string
			for _, p := range e.Content {
				parts = append(parts, inlineMarkdown(p.Content))
			}
			out.Blockquote(strings.Join(parts, "\n"))
		case *edtypes.Hero:
			if e.Title != "" {
				out.H1(e.Title)
			}
			if e.Subtitle != "" {
				out.PlainText(e.Subtitle)
			}
			if e.CtaText != "" {
				out.PlainText(md.Link(e.CtaText, e.CtaURL))
			}
		case *edtypes.ProductGrid:
			if e.Title != "" {
				out.H2(e.Title)
			}
			var names []string
			for _, id := range e.ProductIDs {
				if p, ok := r.products[id]; ok {
					names = append(names, md.Link(p.Name, "/products/"+p.Slug+"/"))
				}
			}
			if len(names) > 0 {
				out.BulletList(names...)
			}
		case *edtypes.Testimonial:
			quote := e.Quote
			if e.AuthorName != "" {
				quote += "\n" + md.Bold(e.AuthorName)
			}
			out.Blockquote(quote)
		case *edtypes.Gallery:
			var links []string
			for _, img := range e.Images {
				links = append(links, md.Link(imageLabel(img), img.URL))
			}
			if len(links) > 0 {
				out.BulletList(links...)
			}
		case *edtypes.VideoEmbed:
			if src := edtypes.ResolveVideoURL(e.VideoURL); src.State == edtypes.VideoURLResolved {
				label := e.Caption
				if label == "" {
					label = "Видео"
				}
				out.PlainText(md.Link(label, e.VideoURL))
			}
		case *edtypes.CallToAction:
			if e.Title != "" {
				out.H2(e.Title)
			}
			if e.Description != "" {
				out.PlainText(e.Description)
			}
			if e.ButtonText != "" {
				out.PlainText(md.Link(e.ButtonText, e.ButtonURL))
			}
		}
	}

	return out.Build()
}

func inlineMarkdown(content []any) string {
	var sb strings.Builder
	for _, item := range content {
		switch e := item.(type) {
		case edtypes.Text:
			text := e.Content
			if e.Code {
				text = md.Code(text)
			}
			if e.Strong {
				text = md.Bold(text)
			}
			if e.Italic {
				text = md.Italic(text)
			}
			if e.Strikethrough {
				text = md.Strikethrough(text)
			}
			if e.URL != nil {
				text = md.Link(text, e.URL.String())
			}
			sb.WriteString(text)
		case *edtypes.HardBreak:
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func imageLabel(img edtypes.GalleryImage) string {
	if img.Caption != "" {
		return img.Caption
	}
	if img.Alt != "" {
		return img.Alt
	}
	return img.URL
}

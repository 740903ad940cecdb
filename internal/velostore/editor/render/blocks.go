package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

const (
	defaultCtaBackground = "#005bff"
	defaultCtaText       = "#ffffff"
)

func (r *Renderer) renderBlock(sb *strings.Builder, elem any) {
	switch b := elem.(type) {
	case *edtypes.Hero:
		r.renderHero(sb, b)
	case *edtypes.ProductGrid:
		r.renderProductGrid(sb, b)
	case *edtypes.Testimonial:
		r.renderTestimonial(sb, b)
	case *edtypes.Gallery:
		r.renderGallery(sb, b)
	case *edtypes.VideoEmbed:
		r.renderVideoEmbed(sb, b)
	case *edtypes.CallToAction:
		r.renderCallToAction(sb, b)
	}
}

func (r *Renderer) renderHero(sb *strings.Builder, b *edtypes.Hero) {
	sb.WriteString(`<section class="hero"`)
	if b.ImageURL != "" {
		fmt.Fprintf(sb, ` style="background-image: url('%s')"`, html.EscapeString(b.ImageURL))
	}
	sb.WriteString(">")

	fmt.Fprintf(sb, `<div class="hero-overlay" style="opacity: %s"></div>`, formatOpacity(b.OverlayOpacity))

	fmt.Fprintf(sb, `<div class="hero-body" style="text-align: %s">`, alignValue(b.Alignment))

	title := b.Title
	if title == "" {
		// незаполненный блок виден, а не пропадает
		title = "Заголовок баннера"
	}
	fmt.Fprintf(sb, "<h1>%s</h1>", html.EscapeString(title))

	if b.Subtitle != "" {
		fmt.Fprintf(sb, "<p>%s</p>", html.EscapeString(b.Subtitle))
	}
	if b.CtaText != "" {
		fmt.Fprintf(sb, `<a class="hero-cta" href="%s">%s</a>`, html.EscapeString(b.CtaURL), html.EscapeString(b.CtaText))
	}
	if b.SecondaryCtaText != "" {
		fmt.Fprintf(sb, `<a class="hero-cta-secondary" href="%s">%s</a>`, html.EscapeString(b.SecondaryCtaURL), html.EscapeString(b.SecondaryCtaText))
	}

	sb.WriteString("</div></section>")
}

// renderProductGrid рендерит только товары, найденные в каталоге: ссылки на
// удаленные товары пропускаются с сохранением порядка остальных.
func (r *Renderer) renderProductGrid(sb *strings.Builder, b *edtypes.ProductGrid) {
	sb.WriteString(`<section class="product-grid">`)
	if b.Title != "" {
		fmt.Fprintf(sb, "<h2>%s</h2>", html.EscapeString(b.Title))
	}

	resolved := 0
	var cards strings.Builder
	for _, id := range b.ProductIDs {
		p, ok := r.products[id]
		if !ok {
			continue
		}
		resolved++

		cards.WriteString(`<a class="product-grid-card" href="/products/` + html.EscapeString(p.Slug) + `/">`)
		if p.FeaturedImage != "" {
			fmt.Fprintf(&cards, `<img src="%s" alt="%s" loading="lazy">`, html.EscapeString(p.FeaturedImage), html.EscapeString(p.Name))
		}
		fmt.Fprintf(&cards, "<h3>%s</h3>", html.EscapeString(p.Name))
		if b.ShowDescription && p.Description != "" {
			fmt.Fprintf(&cards, "<p>%s</p>", html.EscapeString(p.Description))
		}
		if b.ShowPrice {
			fmt.Fprintf(&cards, `<span class="product-grid-price">%s ₽</span>`, formatPrice(p.Price))
		}
		cards.WriteString("</a>")
	}

	if resolved == 0 {
		sb.WriteString(`<p class="product-grid-empty">Товары не выбраны</p>`)
	} else {
		fmt.Fprintf(sb, `<div class="product-grid-items" data-columns="%d">`, b.Columns)
		sb.WriteString(cards.String())
		sb.WriteString("</div>")
	}
	sb.WriteString("</section>")
}

func (r *Renderer) renderTestimonial(sb *strings.Builder, b *edtypes.Testimonial) {
	sb.WriteString(`<section class="testimonial">`)
	fmt.Fprintf(sb, "<blockquote>%s</blockquote>", html.EscapeString(b.Quote))

	// рейтинг 0 - отзыв без оценки, звезды не рендерятся
	if b.Rating > 0 {
		fmt.Fprintf(sb, `<span class="testimonial-rating">%s</span>`, strings.Repeat("★", b.Rating))
	}

	if b.AuthorName != "" {
		sb.WriteString(`<figure class="testimonial-author">`)
		if b.AuthorImage != "" {
			fmt.Fprintf(sb, `<img src="%s" alt="%s" loading="lazy">`, html.EscapeString(b.AuthorImage), html.EscapeString(b.AuthorName))
		}
		fmt.Fprintf(sb, "<figcaption>%s", html.EscapeString(b.AuthorName))
		if b.AuthorTitle != "" {
			fmt.Fprintf(sb, `<span class="testimonial-author-title">%s</span>`, html.EscapeString(b.AuthorTitle))
		}
		sb.WriteString("</figcaption></figure>")
	}
	sb.WriteString("</section>")
}

func (r *Renderer) renderGallery(sb *strings.Builder, b *edtypes.Gallery) {
	sb.WriteString(`<section class="gallery">`)
	if len(b.Images) == 0 {
		sb.WriteString(`<p class="gallery-empty">Галерея пуста</p></section>`)
		return
	}

	fmt.Fprintf(sb, `<div class="gallery-items" data-columns="%d" data-gap="%s"`, b.Columns, b.Gap)
	if b.Lightbox {
		sb.WriteString(` data-lightbox="true"`)
	}
	sb.WriteString(">")

	for _, img := range b.Images {
		sb.WriteString("<figure>")
		fmt.Fprintf(sb, `<img src="%s" alt="%s" loading="lazy">`, html.EscapeString(img.URL), html.EscapeString(img.Alt))
		if img.Caption != "" {
			fmt.Fprintf(sb, "<figcaption>%s</figcaption>", html.EscapeString(img.Caption))
		}
		sb.WriteString("</figure>")
	}
	sb.WriteString("</div></section>")
}

func (r *Renderer) renderVideoEmbed(sb *strings.Builder, b *edtypes.VideoEmbed) {
	sb.WriteString(`<section class="video-embed">`)

	src := edtypes.ResolveVideoURL(b.VideoURL)
	switch src.State {
	case edtypes.VideoURLEmpty:
		sb.WriteString(`<p class="video-embed-empty">Добавьте ссылку на видео</p>`)
	case edtypes.VideoURLInvalid:
		sb.WriteString(`<p class="video-embed-invalid">Ссылка на видео не распознана</p>`)
	case edtypes.VideoURLResolved:
		fmt.Fprintf(sb, `<div class="video-embed-frame" data-ratio="%s">`, b.AspectRatio)
		fmt.Fprintf(sb, `<iframe src="%s" frameborder="0" allowfullscreen loading="lazy"></iframe>`, html.EscapeString(embedURL(src, b.Autoplay)))
		sb.WriteString("</div>")
	}

	if b.Caption != "" {
		fmt.Fprintf(sb, "<figcaption>%s</figcaption>", html.EscapeString(b.Caption))
	}
	sb.WriteString("</section>")
}

func (r *Renderer) renderCallToAction(sb *strings.Builder, b *edtypes.CallToAction) {
	bg := b.BackgroundColor
	if !SafeColor(bg) {
		bg = defaultCtaBackground
	}
	fg := b.TextColor
	if !SafeColor(fg) {
		fg = defaultCtaText
	}

	fmt.Fprintf(sb, `<section class="cta" style="background-color: %s; color: %s; text-align: %s">`, bg, fg, alignValue(b.Alignment))
	if b.Title != "" {
		fmt.Fprintf(sb, "<h2>%s</h2>", html.EscapeString(b.Title))
	}
	if b.Description != "" {
		fmt.Fprintf(sb, "<p>%s</p>", html.EscapeString(b.Description))
	}
	if b.ButtonText != "" {
		fmt.Fprintf(sb, `<a class="cta-button" href="%s">%s</a>`, html.EscapeString(b.ButtonURL), html.EscapeString(b.ButtonText))
	}
	sb.WriteString("</section>")
}

func embedURL(src edtypes.VideoSource, autoplay bool) string {
	switch src.Platform {
	case edtypes.PlatformYouTube:
		u := "https://www.youtube-nocookie.com/embed/" + src.ID
		if autoplay {
			u += "?autoplay=1"
		}
		return u
	case edtypes.PlatformVimeo:
		u := "https://player.vimeo.com/video/" + src.ID
		if autoplay {
			u += "?autoplay=1"
		}
		return u
	}
	return ""
}

func alignValue(a edtypes.Alignment) string {
	switch a {
	case edtypes.AlignLeft:
		return "left"
	case edtypes.AlignRight:
		return "right"
	default:
		return "center"
	}
}

func formatOpacity(percent int) string {
	return strconv.FormatFloat(float64(percent)/100, 'g', -1, 64)
}

func formatPrice(kopecks int64) string {
	rub := kopecks / 100
	rem := kopecks % 100

	// разряды через неразрывный тонкий пробел не используем, простая группировка
	digits := strconv.FormatInt(rub, 10)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte(' ')
		}
		grouped.WriteRune(d)
	}
	if rem == 0 {
		return grouped.String()
	}
	return fmt.Sprintf("%s,%02d", grouped.String(), rem)
}

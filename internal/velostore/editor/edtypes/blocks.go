// Реестр контент-блоков витрины: идентификаторы видов, схемы атрибутов со
// значениями по умолчанию и фабрика новых блоков. Блоки атомарны - не имеют
// дочернего контента, только атрибуты.
package edtypes

import (
	"fmt"
)

// BlockKind - тег сериализации блока. Значения стабильны: переименование
// без миграции ломает все сохраненные документы с этим видом блока.
type BlockKind string

const (
	KindHero         BlockKind = "heroBlock"
	KindProductGrid  BlockKind = "productGrid"
	KindTestimonial  BlockKind = "testimonial"
	KindGallery      BlockKind = "gallery"
	KindVideoEmbed   BlockKind = "videoEmbed"
	KindCallToAction BlockKind = "callToAction"
)

// Kinds возвращает все виды блоков в порядке отображения в пикере.
func Kinds() []BlockKind {
	return []BlockKind{
		KindHero,
		KindProductGrid,
		KindTestimonial,
		KindGallery,
		KindVideoEmbed,
		KindCallToAction,
	}
}

type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

type Gap string

const (
	GapSmall  Gap = "small"
	GapMedium Gap = "medium"
	GapLarge  Gap = "large"
)

type AspectRatio string

const (
	Ratio16x9 AspectRatio = "16:9"
	Ratio4x3  AspectRatio = "4:3"
	Ratio1x1  AspectRatio = "1:1"
)

type Hero struct {
	ImageURL         string
	Title            string
	Subtitle         string
	CtaText          string
	CtaURL           string
	SecondaryCtaText string
	SecondaryCtaURL  string
	Alignment        Alignment
	OverlayOpacity   int // 0..100
}

type ProductGrid struct {
	Title           string
	ProductIDs      []string // внешние ссылки на товары, могут указывать на удаленные записи
	Columns         int      // 2..4
	ShowPrice       bool
	ShowDescription bool
}

type Testimonial struct {
	Quote       string
	AuthorName  string
	AuthorTitle string
	AuthorImage string
	Rating      int // 0..5, 0 = без рейтинга
}

type GalleryImage struct {
	URL     string
	Alt     string
	Caption string
}

type Gallery struct {
	Images   []GalleryImage
	Columns  int // 2..4
	Gap      Gap
	Lightbox bool
}

type VideoEmbed struct {
	VideoURL    string
	Caption     string
	Autoplay    bool
	AspectRatio AspectRatio
}

type CallToAction struct {
	Title           string
	Description     string
	ButtonText      string
	ButtonURL       string
	BackgroundColor string // произвольная CSS строка, валидируется при рендере
	TextColor       string
	Alignment       Alignment
}

// DefaultBlock возвращает новый блок указанного вида с атрибутами по умолчанию.
func DefaultBlock(kind BlockKind) (any, error) {
	switch kind {
	case KindHero:
		return &Hero{
			Alignment:      AlignCenter,
			OverlayOpacity: 40,
		}, nil
	case KindProductGrid:
		return &ProductGrid{
			ProductIDs: make([]string, 0),
			Columns:    3,
			ShowPrice:  true,
		}, nil
	case KindTestimonial:
		return &Testimonial{}, nil
	case KindGallery:
		return &Gallery{
			Images:   make([]GalleryImage, 0),
			Columns:  3,
			Gap:      GapMedium,
			Lightbox: true,
		}, nil
	case KindVideoEmbed:
		return &VideoEmbed{
			AspectRatio: Ratio16x9,
		}, nil
	case KindCallToAction:
		return &CallToAction{
			BackgroundColor: "#005bff",
			TextColor:       "#ffffff",
			Alignment:       AlignCenter,
		}, nil
	}
	return nil, fmt.Errorf("unknown block kind %q", kind)
}

// NewBlock - фабрика блоков: атрибуты по умолчанию, поверх которых
// накладываются переданные значения. Не переданные ключи остаются
// значениями по умолчанию.
func NewBlock(kind BlockKind, overrides map[string]any) (any, error) {
	block, err := DefaultBlock(kind)
	if err != nil {
		return nil, err
	}
	if len(overrides) > 0 {
		if err := ApplyAttrs(block, overrides); err != nil {
			return nil, err
		}
	}
	return block, nil
}

// KindOf возвращает вид блока для элемента документа.
// Для стандартных текстовых элементов возвращает false.
func KindOf(elem any) (BlockKind, bool) {
	switch elem.(type) {
	case *Hero:
		return KindHero, true
	case *ProductGrid:
		return KindProductGrid, true
	case *Testimonial:
		return KindTestimonial, true
	case *Gallery:
		return KindGallery, true
	case *VideoEmbed:
		return KindVideoEmbed, true
	case *CallToAction:
		return KindCallToAction, true
	}
	return "", false
}

// IsBlock сообщает, является ли элемент документа контент-блоком.
func IsBlock(elem any) bool {
	_, ok := KindOf(elem)
	return ok
}

// ApplyAttrs накладывает частичный набор атрибутов на блок (merge-семантика:
// обновляются только переданные ключи). Значения закрытых множеств и
// диапазонов нормализуются.
func ApplyAttrs(block any, attrs map[string]any) error {
	switch b := block.(type) {
	case *Hero:
		applyString(attrs, "imageUrl", &b.ImageURL)
		applyString(attrs, "title", &b.Title)
		applyString(attrs, "subtitle", &b.Subtitle)
		applyString(attrs, "ctaText", &b.CtaText)
		applyString(attrs, "ctaUrl", &b.CtaURL)
		applyString(attrs, "secondaryCtaText", &b.SecondaryCtaText)
		applyString(attrs, "secondaryCtaUrl", &b.SecondaryCtaURL)
		applyAlignment(attrs, "alignment", &b.Alignment)
		if v, ok := attrInt(attrs, "overlayOpacity"); ok {
			b.OverlayOpacity = clamp(v, 0, 100)
		}
	case *ProductGrid:
		applyString(attrs, "title", &b.Title)
		if ids, ok := attrStringSlice(attrs, "productIds"); ok {
			b.ProductIDs = ids
		}
		applyColumns(attrs, &b.Columns)
		applyBool(attrs, "showPrice", &b.ShowPrice)
		applyBool(attrs, "showDescription", &b.ShowDescription)
	case *Testimonial:
		applyString(attrs, "quote", &b.Quote)
		applyString(attrs, "authorName", &b.AuthorName)
		applyString(attrs, "authorTitle", &b.AuthorTitle)
		applyString(attrs, "authorImage", &b.AuthorImage)
		if v, ok := attrInt(attrs, "rating"); ok {
			b.Rating = clamp(v, 0, 5)
		}
	case *Gallery:
		if imgs, ok := attrGalleryImages(attrs, "images"); ok {
			b.Images = imgs
		}
		applyColumns(attrs, &b.Columns)
		if v, ok := attrString(attrs, "gap"); ok {
			switch Gap(v) {
			case GapSmall, GapMedium, GapLarge:
				b.Gap = Gap(v)
			}
		}
		applyBool(attrs, "lightbox", &b.Lightbox)
	case *VideoEmbed:
		applyString(attrs, "videoUrl", &b.VideoURL)
		applyString(attrs, "caption", &b.Caption)
		applyBool(attrs, "autoplay", &b.Autoplay)
		if v, ok := attrString(attrs, "aspectRatio"); ok {
			switch AspectRatio(v) {
			case Ratio16x9, Ratio4x3, Ratio1x1:
				b.AspectRatio = AspectRatio(v)
			}
		}
	case *CallToAction:
		applyString(attrs, "title", &b.Title)
		applyString(attrs, "description", &b.Description)
		applyString(attrs, "buttonText", &b.ButtonText)
		applyString(attrs, "buttonUrl", &b.ButtonURL)
		applyString(attrs, "backgroundColor", &b.BackgroundColor)
		applyString(attrs, "textColor", &b.TextColor)
		applyAlignment(attrs, "alignment", &b.Alignment)
	default:
		return fmt.Errorf("not a block element: %T", block)
	}
	return nil
}

// Attrs возвращает текущий набор атрибутов блока в сериализуемом виде.
func Attrs(block any) (map[string]any, error) {
	switch b := block.(type) {
	case *Hero:
		return map[string]any{
			"imageUrl":         b.ImageURL,
			"title":            b.Title,
			"subtitle":         b.Subtitle,
			"ctaText":          b.CtaText,
			"ctaUrl":           b.CtaURL,
			"secondaryCtaText": b.SecondaryCtaText,
			"secondaryCtaUrl":  b.SecondaryCtaURL,
			"alignment":        string(b.Alignment),
			"overlayOpacity":   b.OverlayOpacity,
		}, nil
	case *ProductGrid:
		return map[string]any{
			"title":           b.Title,
			"productIds":      append([]string(nil), b.ProductIDs...),
			"columns":         b.Columns,
			"showPrice":       b.ShowPrice,
			"showDescription": b.ShowDescription,
		}, nil
	case *Testimonial:
		return map[string]any{
			"quote":       b.Quote,
			"authorName":  b.AuthorName,
			"authorTitle": b.AuthorTitle,
			"authorImage": b.AuthorImage,
			"rating":      b.Rating,
		}, nil
	case *Gallery:
		images := make([]any, 0, len(b.Images))
		for _, img := range b.Images {
			m := map[string]any{
				"url": img.URL,
				"alt": img.Alt,
			}
			if img.Caption != "" {
				m["caption"] = img.Caption
			}
			images = append(images, m)
		}
		return map[string]any{
			"images":   images,
			"columns":  b.Columns,
			"gap":      string(b.Gap),
			"lightbox": b.Lightbox,
		}, nil
	case *VideoEmbed:
		return map[string]any{
			"videoUrl":    b.VideoURL,
			"caption":     b.Caption,
			"autoplay":    b.Autoplay,
			"aspectRatio": string(b.AspectRatio),
		}, nil
	case *CallToAction:
		return map[string]any{
			"title":           b.Title,
			"description":     b.Description,
			"buttonText":      b.ButtonText,
			"buttonUrl":       b.ButtonURL,
			"backgroundColor": b.BackgroundColor,
			"textColor":       b.TextColor,
			"alignment":       string(b.Alignment),
		}, nil
	}
	return nil, fmt.Errorf("not a block element: %T", block)
}

func attrString(attrs map[string]any, key string) (string, bool) {
	v, ok := attrs[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func attrInt(attrs map[string]any, key string) (int, bool) {
	v, ok := attrs[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case float64: // из JSON числа приходят как float64
		return int(n), true
	}
	return 0, false
}

func attrBool(attrs map[string]any, key string) (bool, bool) {
	v, ok := attrs[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func attrStringSlice(attrs map[string]any, key string) ([]string, bool) {
	v, ok := attrs[key]
	if !ok {
		return nil, false
	}
	switch vv := v.(type) {
	case []string:
		return append([]string(nil), vv...), true
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	}
	return nil, false
}

func attrGalleryImages(attrs map[string]any, key string) ([]GalleryImage, bool) {
	v, ok := attrs[key]
	if !ok {
		return nil, false
	}
	switch vv := v.(type) {
	case []GalleryImage:
		return append([]GalleryImage(nil), vv...), true
	case []any:
		out := make([]GalleryImage, 0, len(vv))
		for _, item := range vv {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			img := GalleryImage{}
			img.URL, _ = attrString(m, "url")
			img.Alt, _ = attrString(m, "alt")
			img.Caption, _ = attrString(m, "caption")
			out = append(out, img)
		}
		return out, true
	}
	return nil, false
}

func applyString(attrs map[string]any, key string, dst *string) {
	if v, ok := attrString(attrs, key); ok {
		*dst = v
	}
}

func applyBool(attrs map[string]any, key string, dst *bool) {
	if v, ok := attrBool(attrs, key); ok {
		*dst = v
	}
}

func applyAlignment(attrs map[string]any, key string, dst *Alignment) {
	if v, ok := attrString(attrs, key); ok {
		switch Alignment(v) {
		case AlignLeft, AlignCenter, AlignRight:
			*dst = Alignment(v)
		}
	}
}

func applyColumns(attrs map[string]any, dst *int) {
	if v, ok := attrInt(attrs, "columns"); ok && v >= 2 && v <= 4 {
		*dst = v
	}
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

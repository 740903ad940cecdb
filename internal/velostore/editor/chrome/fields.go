// Пакет chrome описывает поверхность редактирования контент-блоков: схемы
// форм атрибутов для боковой панели, применение патчей и выбор товаров
// для сетки.
package chrome

import (
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

type FieldType string

const (
	FieldText       FieldType = "text"
	FieldTextarea   FieldType = "textarea"
	FieldURL        FieldType = "url"
	FieldColor      FieldType = "color"
	FieldSelect     FieldType = "select"
	FieldRange      FieldType = "range"
	FieldToggle     FieldType = "toggle"
	FieldRepeatable FieldType = "repeatable"
	FieldProducts   FieldType = "products"
)

// Field - описание одного поля формы атрибутов блока. Ключ совпадает с
// ключом атрибута в сериализованном документе.
type Field struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Type  FieldType `json:"type"`

	Options []string `json:"options,omitempty"` // для select
	Min     int      `json:"min,omitempty"`     // для range
	Max     int      `json:"max,omitempty"`

	Fields []Field `json:"fields,omitempty"` // для repeatable
}

// FormFor возвращает схему формы атрибутов для вида блока. Каждый вид
// блока имеет форму: пикер не может вставить то, что нельзя настроить.
func FormFor(kind edtypes.BlockKind) []Field {
	switch kind {
	case edtypes.KindHero:
		return []Field{
			{Key: "imageUrl", Label: "Фоновое изображение", Type: FieldURL},
			{Key: "title", Label: "Заголовок", Type: FieldText},
			{Key: "subtitle", Label: "Подзаголовок", Type: FieldText},
			{Key: "ctaText", Label: "Текст кнопки", Type: FieldText},
			{Key: "ctaUrl", Label: "Ссылка кнопки", Type: FieldURL},
			{Key: "secondaryCtaText", Label: "Текст второй кнопки", Type: FieldText},
			{Key: "secondaryCtaUrl", Label: "Ссылка второй кнопки", Type: FieldURL},
			{Key: "alignment", Label: "Выравнивание", Type: FieldSelect, Options: []string{"left", "center", "right"}},
			{Key: "overlayOpacity", Label: "Затемнение", Type: FieldRange, Min: 0, Max: 100},
		}
	case edtypes.KindProductGrid:
		return []Field{
			{Key: "title", Label: "Заголовок", Type: FieldText},
			{Key: "productIds", Label: "Товары", Type: FieldProducts},
			{Key: "columns", Label: "Колонки", Type: FieldRange, Min: 2, Max: 4},
			{Key: "showPrice", Label: "Показывать цену", Type: FieldToggle},
			{Key: "showDescription", Label: "Показывать описание", Type: FieldToggle},
		}
	case edtypes.KindTestimonial:
		return []Field{
			{Key: "quote", Label: "Цитата", Type: FieldTextarea},
			{Key: "authorName", Label: "Автор", Type: FieldText},
			{Key: "authorTitle", Label: "Подпись автора", Type: FieldText},
			{Key: "authorImage", Label: "Фото автора", Type: FieldURL},
			{Key: "rating", Label: "Оценка", Type: FieldRange, Min: 0, Max: 5},
		}
	case edtypes.KindGallery:
		return []Field{
			{Key: "images", Label: "Изображения", Type: FieldRepeatable, Fields: []Field{
				{Key: "url", Label: "Ссылка", Type: FieldURL},
				{Key: "alt", Label: "Alt-текст", Type: FieldText},
				{Key: "caption", Label: "Подпись", Type: FieldText},
			}},
			{Key: "columns", Label: "Колонки", Type: FieldRange, Min: 2, Max: 4},
			{Key: "gap", Label: "Отступы", Type: FieldSelect, Options: []string{"small", "medium", "large"}},
			{Key: "lightbox", Label: "Лайтбокс", Type: FieldToggle},
		}
	case edtypes.KindVideoEmbed:
		return []Field{
			{Key: "videoUrl", Label: "Ссылка на видео", Type: FieldURL},
			{Key: "caption", Label: "Подпись", Type: FieldText},
			{Key: "autoplay", Label: "Автовоспроизведение", Type: FieldToggle},
			{Key: "aspectRatio", Label: "Соотношение сторон", Type: FieldSelect, Options: []string{"16:9", "4:3", "1:1"}},
		}
	case edtypes.KindCallToAction:
		return []Field{
			{Key: "title", Label: "Заголовок", Type: FieldText},
			{Key: "description", Label: "Описание", Type: FieldTextarea},
			{Key: "buttonText", Label: "Текст кнопки", Type: FieldText},
			{Key: "buttonUrl", Label: "Ссылка кнопки", Type: FieldURL},
			{Key: "backgroundColor", Label: "Цвет фона", Type: FieldColor},
			{Key: "textColor", Label: "Цвет текста", Type: FieldColor},
			{Key: "alignment", Label: "Выравнивание", Type: FieldSelect, Options: []string{"left", "center", "right"}},
		}
	}
	return nil
}

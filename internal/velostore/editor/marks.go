package editor

import (
	"errors"
	"net/url"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

// Selection - выделение внутри одного элемента верхнего уровня.
// Start и End - границы в рунах строчного содержимого элемента.
type Selection struct {
	Element int
	Start   int
	End     int
}

type Mark int

const (
	MarkBold Mark = iota
	MarkItalic
	MarkUnderline
	MarkStrike
	MarkCode
)

var ErrNoInlineContent = errors.New("element has no inline content")

// ToggleMark переключает форматирование на выделении. Если все выделение
// уже несет mark - mark снимается, иначе ставится на все выделение.
// Повторное применение возвращает документ к исходному состоянию.
func (s *Session) ToggleMark(sel Selection, mark Mark) error {
	content, err := s.inlineContent(sel.Element)
	if err != nil {
		return err
	}

	on := !allMarked(*content, sel.Start, sel.End, mark)

	return s.mutate(func() error {
		*content = spliceRange(*content, sel.Start, sel.End, func(t *edtypes.Text) {
			setMark(t, mark, on)
		})
		return nil
	})
}

// SetLink ставит ссылку на выделение. Пустой URL не допускается.
func (s *Session) SetLink(sel Selection, u *url.URL) error {
	if u == nil || u.String() == "" {
		return errors.New("link URL is required")
	}

	content, err := s.inlineContent(sel.Element)
	if err != nil {
		return err
	}

	return s.mutate(func() error {
		*content = spliceRange(*content, sel.Start, sel.End, func(t *edtypes.Text) {
			t.URL = u
		})
		return nil
	})
}

// RemoveLink снимает ссылку с выделения.
func (s *Session) RemoveLink(sel Selection) error {
	content, err := s.inlineContent(sel.Element)
	if err != nil {
		return err
	}

	return s.mutate(func() error {
		*content = spliceRange(*content, sel.Start, sel.End, func(t *edtypes.Text) {
			t.URL = nil
		})
		return nil
	})
}

// ToggleAlignment переключает выравнивание элемента. Повторное применение
// того же выравнивания возвращает элемент к выравниванию по умолчанию.
func (s *Session) ToggleAlignment(index int, align edtypes.TextAlign) error {
	if index < 0 || index >= len(s.doc.Elements) {
		return ErrIndexOutOfRange
	}

	return s.mutate(func() error {
		switch e := s.doc.Elements[index].(type) {
		case *edtypes.Paragraph:
			e.Align = toggledAlign(e.Align, align)
		case *edtypes.Heading:
			e.Align = toggledAlign(e.Align, align)
		default:
			return ErrNoInlineContent
		}
		return nil
	})
}

// ToggleHeading переключает параграф в заголовок указанного уровня и
// обратно. Заголовок другого уровня меняет уровень.
func (s *Session) ToggleHeading(index int, level int) error {
	if index < 0 || index >= len(s.doc.Elements) {
		return ErrIndexOutOfRange
	}
	if level < 1 || level > 3 {
		return errors.New("heading level must be 1..3")
	}

	return s.mutate(func() error {
		switch e := s.doc.Elements[index].(type) {
		case *edtypes.Paragraph:
			s.doc.Elements[index] = &edtypes.Heading{Content: e.Content, Level: level, Align: e.Align}
		case *edtypes.Heading:
			if e.Level == level {
				s.doc.Elements[index] = &edtypes.Paragraph{Content: e.Content, Align: e.Align}
			} else {
				e.Level = level
			}
		default:
			return ErrNoInlineContent
		}
		return nil
	})
}

// ToggleList оборачивает параграф в список и разворачивает обратно.
// Список другого вида меняет вид.
func (s *Session) ToggleList(index int, numbered bool) error {
	if index < 0 || index >= len(s.doc.Elements) {
		return ErrIndexOutOfRange
	}

	return s.mutate(func() error {
		switch e := s.doc.Elements[index].(type) {
		case *edtypes.Paragraph:
			s.doc.Elements[index] = &edtypes.List{
				Elements: []edtypes.ListElement{{Content: []edtypes.Paragraph{*e}}},
				Numbered: numbered,
			}
		case *edtypes.List:
			if e.Numbered == numbered {
				s.doc.Elements = unwrapAt(s.doc.Elements, index, listParagraphs(e))
			} else {
				e.Numbered = numbered
			}
		default:
			return ErrNoInlineContent
		}
		return nil
	})
}

// ToggleQuote оборачивает параграф в цитату и разворачивает обратно.
func (s *Session) ToggleQuote(index int) error {
	if index < 0 || index >= len(s.doc.Elements) {
		return ErrIndexOutOfRange
	}

	return s.mutate(func() error {
		switch e := s.doc.Elements[index].(type) {
		case *edtypes.Paragraph:
			s.doc.Elements[index] = &edtypes.Quote{Content: []edtypes.Paragraph{*e}}
		case *edtypes.Quote:
			s.doc.Elements = unwrapAt(s.doc.Elements, index, e.Content)
		default:
			return ErrNoInlineContent
		}
		return nil
	})
}

// inlineContent возвращает указатель на строчное содержимое элемента.
// Контент-блоки строчного содержимого не имеют.
func (s *Session) inlineContent(index int) (*[]any, error) {
	if index < 0 || index >= len(s.doc.Elements) {
		return nil, ErrIndexOutOfRange
	}

	switch e := s.doc.Elements[index].(type) {
	case *edtypes.Paragraph:
		return &e.Content, nil
	case *edtypes.Heading:
		return &e.Content, nil
	}
	return nil, ErrNoInlineContent
}

// allMarked проверяет, что каждый текстовый фрагмент в диапазоне несет mark.
func allMarked(content []any, start, end int, mark Mark) bool {
	pos := 0
	covered := false
	for _, item := range content {
		t, ok := item.(edtypes.Text)
		if !ok {
			continue
		}
		runes := []rune(t.Content)
		a, b := pos, pos+len(runes)
		pos = b

		lo, hi := max(a, start), min(b, end)
		if lo >= hi {
			continue
		}
		covered = true
		if !hasMark(&t, mark) {
			return false
		}
	}
	return covered
}

// spliceRange применяет f к текстовым фрагментам диапазона [start, end),
// разрезая фрагменты на границах. Смежные фрагменты с одинаковым
// форматированием склеиваются обратно.
func spliceRange(content []any, start, end int, f func(t *edtypes.Text)) []any {
	out := make([]any, 0, len(content))
	pos := 0

	for _, item := range content {
		t, ok := item.(edtypes.Text)
		if !ok {
			out = append(out, item)
			continue
		}

		runes := []rune(t.Content)
		a, b := pos, pos+len(runes)
		pos = b

		lo, hi := max(a, start), min(b, end)
		if lo >= hi {
			out = append(out, t)
			continue
		}

		if lo > a {
			prefix := t
			prefix.Content = string(runes[:lo-a])
			out = append(out, prefix)
		}

		middle := t
		middle.Content = string(runes[lo-a : hi-a])
		f(&middle)
		out = append(out, middle)

		if hi < b {
			suffix := t
			suffix.Content = string(runes[hi-a:])
			out = append(out, suffix)
		}
	}

	return mergeSpans(out)
}

// mergeSpans склеивает соседние текстовые фрагменты с одинаковым форматированием.
func mergeSpans(content []any) []any {
	out := make([]any, 0, len(content))
	for _, item := range content {
		t, ok := item.(edtypes.Text)
		if !ok {
			out = append(out, item)
			continue
		}
		if len(out) > 0 {
			if prev, ok := out[len(out)-1].(edtypes.Text); ok && sameStyle(&prev, &t) {
				prev.Content += t.Content
				out[len(out)-1] = prev
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

func sameStyle(a, b *edtypes.Text) bool {
	if a.Strong != b.Strong || a.Italic != b.Italic || a.Underlined != b.Underlined ||
		a.Strikethrough != b.Strikethrough || a.Code != b.Code {
		return false
	}
	if (a.Color == nil) != (b.Color == nil) || (a.Color != nil && *a.Color != *b.Color) {
		return false
	}
	if (a.BgColor == nil) != (b.BgColor == nil) || (a.BgColor != nil && *a.BgColor != *b.BgColor) {
		return false
	}
	if (a.URL == nil) != (b.URL == nil) || (a.URL != nil && a.URL.String() != b.URL.String()) {
		return false
	}
	return true
}

func hasMark(t *edtypes.Text, mark Mark) bool {
	switch mark {
	case MarkBold:
		return t.Strong
	case MarkItalic:
		return t.Italic
	case MarkUnderline:
		return t.Underlined
	case MarkStrike:
		return t.Strikethrough
	case MarkCode:
		return t.Code
	}
	return false
}

func setMark(t *edtypes.Text, mark Mark, on bool) {
	switch mark {
	case MarkBold:
		t.Strong = on
	case MarkItalic:
		t.Italic = on
	case MarkUnderline:
		t.Underlined = on
	case MarkStrike:
		t.Strikethrough = on
	case MarkCode:
		t.Code = on
	}
}

func toggledAlign(current, next edtypes.TextAlign) edtypes.TextAlign {
	if current == next {
		return edtypes.LeftAlign
	}
	return next
}

func listParagraphs(l *edtypes.List) []edtypes.Paragraph {
	out := make([]edtypes.Paragraph, 0, len(l.Elements))
	for _, item := range l.Elements {
		out = append(out, item.Content...)
	}
	return out
}

// unwrapAt заменяет элемент по индексу на набор параграфов.
func unwrapAt(elements []any, index int, paragraphs []edtypes.Paragraph) []any {
	out := make([]any, 0, len(elements)+len(paragraphs)-1)
	out = append(out, elements[:index]...)
	for i := range paragraphs {
		p := paragraphs[i]
		out = append(out, &p)
	}
	out = append(out, elements[index+1:]...)
	return out
}

package editor

import (
	"errors"
	"net/url"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

var ErrEmptyLinkURL = errors.New("link URL must not be empty")

// Toolbar выпускает команды форматирования против текущего выделения сессии.
// Все переключатели идемпотентны: повторное применение возвращает документ
// к состоянию до первого применения.
type Toolbar struct {
	s   *Session
	sel Selection

	pendingLink *string
}

func NewToolbar(s *Session) *Toolbar {
	return &Toolbar{s: s}
}

// Select устанавливает текущее выделение тулбара.
func (tb *Toolbar) Select(sel Selection) {
	tb.sel = sel
}

func (tb *Toolbar) Bold() error       { return tb.s.ToggleMark(tb.sel, MarkBold) }
func (tb *Toolbar) Italic() error     { return tb.s.ToggleMark(tb.sel, MarkItalic) }
func (tb *Toolbar) Underline() error  { return tb.s.ToggleMark(tb.sel, MarkUnderline) }
func (tb *Toolbar) Strike() error     { return tb.s.ToggleMark(tb.sel, MarkStrike) }
func (tb *Toolbar) InlineCode() error { return tb.s.ToggleMark(tb.sel, MarkCode) }

func (tb *Toolbar) Heading(level int) error {
	return tb.s.ToggleHeading(tb.sel.Element, level)
}

func (tb *Toolbar) BulletList() error  { return tb.s.ToggleList(tb.sel.Element, false) }
func (tb *Toolbar) OrderedList() error { return tb.s.ToggleList(tb.sel.Element, true) }
func (tb *Toolbar) Blockquote() error  { return tb.s.ToggleQuote(tb.sel.Element) }

func (tb *Toolbar) Align(align edtypes.TextAlign) error {
	return tb.s.ToggleAlignment(tb.sel.Element, align)
}

// BeginLink открывает строчный ввод URL для выделения.
func (tb *Toolbar) BeginLink() {
	empty := ""
	tb.pendingLink = &empty
}

// TypeLink обновляет значение редактируемого URL.
func (tb *Toolbar) TypeLink(raw string) {
	if tb.pendingLink != nil {
		*tb.pendingLink = raw
	}
}

// LinkEditing сообщает, открыт ли ввод ссылки.
func (tb *Toolbar) LinkEditing() bool { return tb.pendingLink != nil }

// PressEnter подтверждает ввод ссылки. Пустой URL не принимается -
// ввод остается открытым.
func (tb *Toolbar) PressEnter() error {
	if tb.pendingLink == nil {
		return nil
	}
	if *tb.pendingLink == "" {
		return ErrEmptyLinkURL
	}

	u, err := url.Parse(*tb.pendingLink)
	if err != nil {
		return err
	}

	if err := tb.s.SetLink(tb.sel, u); err != nil {
		return err
	}

	tb.pendingLink = nil
	return nil
}

// PressEscape отменяет ввод ссылки без мутации документа.
func (tb *Toolbar) PressEscape() {
	tb.pendingLink = nil
}

// Unlink снимает ссылку с выделения.
func (tb *Toolbar) Unlink() error {
	return tb.s.RemoveLink(tb.sel)
}

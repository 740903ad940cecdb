// Пакет editor содержит ядро редактора структурированного контента: сессию
// документа со структурными командами, тулбар и пикер блоков.
//
// Основные возможности:
//   - Хранение дерева документа в памяти и атомарные мутации по командам UI.
//   - Вставка/удаление/перемещение контент-блоков, патчи атрибутов с merge-семантикой.
//   - Переключение форматирования и типа элемента на выделении.
//   - Generic undo-стек на снимках сериализованного документа.
//   - Уведомление об изменениях с полным сериализованным документом.
//   - Однократное принятие внешнего контента по номеру ревизии.
package editor

import (
	"bytes"
	"errors"
	"log/slog"
	"slices"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/tiptap"
)

type Mode int

const (
	// ModeSimple - упрощенное форматирование без контент-блоков.
	// Документы, созданные в этом режиме, не могут содержать блоки.
	ModeSimple Mode = iota
	// ModeBlocks - полный редактор с контент-блоками витрины.
	ModeBlocks
)

var (
	ErrBlocksDisabled  = errors.New("content blocks are not enabled in this editor mode")
	ErrNotABlock       = errors.New("element is not a content block")
	ErrIndexOutOfRange = errors.New("element index out of range")
)

const undoDepth = 100

type Session struct {
	mode   Mode
	doc    *edtypes.Document
	cursor int

	undo [][]byte

	onChange func([]byte)

	adopted    bool
	adoptedRev int64
}

func NewSession(mode Mode) *Session {
	return &Session{
		mode: mode,
		doc:  &edtypes.Document{Elements: make([]any, 0)},
	}
}

func (s *Session) Mode() Mode { return s.mode }

func (s *Session) Document() *edtypes.Document { return s.doc }

// Content возвращает текущий сериализованный документ.
func (s *Session) Content() ([]byte, error) {
	return tiptap.Serialize(s.doc)
}

// OnChange регистрирует колбек, вызываемый после каждой мутации
// с полным сериализованным документом.
func (s *Session) OnChange(f func([]byte)) {
	s.onChange = f
}

// SetCursor устанавливает позицию курсора между элементами верхнего уровня.
func (s *Session) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(s.doc.Elements) {
		pos = len(s.doc.Elements)
	}
	s.cursor = pos
}

func (s *Session) Cursor() int { return s.cursor }

// Adopt принимает внешний документ (например, загруженный из БД после
// создания сессии). Документ принимается ровно один раз на ревизию:
// повторный вызов с той же ревизией не трогает правки пользователя.
// Некорректный JSON деградирует до пустого документа.
func (s *Session) Adopt(raw []byte, revision int64) error {
	if s.adopted && revision == s.adoptedRev {
		return nil
	}

	doc, err := tiptap.ParseJSON(bytes.NewReader(raw))
	if err != nil {
		slog.Error("Malformed document on adopt, fallback to empty", "err", err)
		doc = &edtypes.Document{Elements: make([]any, 0)}
	}

	if s.mode == ModeSimple {
		kept := make([]any, 0, len(doc.Elements))
		for _, elem := range doc.Elements {
			if kind, ok := edtypes.KindOf(elem); ok {
				slog.Warn("Dropping content block in simple editor mode", "kind", kind)
				continue
			}
			kept = append(kept, elem)
		}
		doc.Elements = kept
	}

	s.doc = doc
	s.undo = nil
	s.cursor = len(doc.Elements)
	s.adopted = true
	s.adoptedRev = revision
	return nil
}

// AdoptedRevision возвращает ревизию последнего принятого документа.
func (s *Session) AdoptedRevision() int64 { return s.adoptedRev }

// InsertBlock вставляет новый блок указанного вида на позицию курсора.
// Атрибуты - значения по умолчанию, поверх которых накладываются overrides.
// Возвращает индекс вставленного элемента.
func (s *Session) InsertBlock(kind edtypes.BlockKind, overrides map[string]any) (int, error) {
	if s.mode != ModeBlocks {
		return 0, ErrBlocksDisabled
	}

	block, err := edtypes.NewBlock(kind, overrides)
	if err != nil {
		return 0, err
	}

	index := s.cursor
	err = s.mutate(func() error {
		s.doc.Elements = slices.Insert(s.doc.Elements, index, block)
		s.cursor = index + 1
		return nil
	})
	return index, err
}

// InsertParagraph вставляет параграф с текстом на позицию курсора.
func (s *Session) InsertParagraph(text string) (int, error) {
	p := &edtypes.Paragraph{Content: []any{edtypes.Text{Content: text}}}

	index := s.cursor
	err := s.mutate(func() error {
		s.doc.Elements = slices.Insert(s.doc.Elements, index, any(p))
		s.cursor = index + 1
		return nil
	})
	return index, err
}

// DeleteBlock удаляет контент-блок из документа. Подтверждения нет:
// восстановление только через undo-стек.
func (s *Session) DeleteBlock(index int) error {
	if index < 0 || index >= len(s.doc.Elements) {
		return ErrIndexOutOfRange
	}
	if !edtypes.IsBlock(s.doc.Elements[index]) {
		return ErrNotABlock
	}

	return s.mutate(func() error {
		s.doc.Elements = slices.Delete(s.doc.Elements, index, index+1)
		if s.cursor > len(s.doc.Elements) {
			s.cursor = len(s.doc.Elements)
		}
		return nil
	})
}

// PatchBlock накладывает частичный набор атрибутов на блок.
// Merge-семантика: не переданные ключи не меняются.
func (s *Session) PatchBlock(index int, patch map[string]any) error {
	if index < 0 || index >= len(s.doc.Elements) {
		return ErrIndexOutOfRange
	}
	elem := s.doc.Elements[index]
	if !edtypes.IsBlock(elem) {
		return ErrNotABlock
	}

	return s.mutate(func() error {
		return edtypes.ApplyAttrs(elem, patch)
	})
}

// MoveElement перемещает элемент в порядке соседей, не затрагивая
// содержимое остальных (drag-and-drop блока).
func (s *Session) MoveElement(from, to int) error {
	if from < 0 || from >= len(s.doc.Elements) || to < 0 || to >= len(s.doc.Elements) {
		return ErrIndexOutOfRange
	}
	if from == to {
		return nil
	}

	return s.mutate(func() error {
		elem := s.doc.Elements[from]
		s.doc.Elements = slices.Delete(s.doc.Elements, from, from+1)
		s.doc.Elements = slices.Insert(s.doc.Elements, to, elem)
		return nil
	})
}

// Undo откатывает последнюю мутацию.
func (s *Session) Undo() error {
	if len(s.undo) == 0 {
		return nil
	}

	snap := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]

	doc, err := tiptap.ParseJSON(bytes.NewReader(snap))
	if err != nil {
		return err
	}

	s.doc = doc
	if s.cursor > len(doc.Elements) {
		s.cursor = len(doc.Elements)
	}
	s.notify()
	return nil
}

// CanUndo сообщает, есть ли что откатывать.
func (s *Session) CanUndo() bool { return len(s.undo) > 0 }

// mutate выполняет мутацию документа: снимок для undo до изменения,
// уведомление после.
func (s *Session) mutate(apply func() error) error {
	snap, err := tiptap.Serialize(s.doc)
	if err != nil {
		return err
	}

	if err := apply(); err != nil {
		return err
	}

	s.undo = append(s.undo, snap)
	if len(s.undo) > undoDepth {
		s.undo = s.undo[len(s.undo)-undoDepth:]
	}

	s.notify()
	return nil
}

func (s *Session) notify() {
	if s.onChange == nil {
		return
	}
	raw, err := tiptap.Serialize(s.doc)
	if err != nil {
		slog.Error("Failed to serialize document for change notification", "err", err)
		return
	}
	s.onChange(raw)
}

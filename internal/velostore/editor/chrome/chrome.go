package chrome

import (
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

// BlockChrome - обвязка выбранного блока в редакторе: форма атрибутов,
// применение патчей и удаление.
type BlockChrome struct {
	s     *editor.Session
	index int
}

func NewBlockChrome(s *editor.Session, index int) (*BlockChrome, error) {
	elem, err := elementAt(s, index)
	if err != nil {
		return nil, err
	}
	if !edtypes.IsBlock(elem) {
		return nil, editor.ErrNotABlock
	}
	return &BlockChrome{s: s, index: index}, nil
}

// Kind возвращает вид обвязанного блока.
func (c *BlockChrome) Kind() (edtypes.BlockKind, error) {
	elem, err := elementAt(c.s, c.index)
	if err != nil {
		return "", err
	}
	kind, ok := edtypes.KindOf(elem)
	if !ok {
		return "", editor.ErrNotABlock
	}
	return kind, nil
}

// Form возвращает схему формы атрибутов вместе с текущими значениями.
func (c *BlockChrome) Form() ([]Field, map[string]any, error) {
	elem, err := elementAt(c.s, c.index)
	if err != nil {
		return nil, nil, err
	}
	kind, ok := edtypes.KindOf(elem)
	if !ok {
		return nil, nil, editor.ErrNotABlock
	}
	attrs, err := edtypes.Attrs(elem)
	if err != nil {
		return nil, nil, err
	}
	return FormFor(kind), attrs, nil
}

// ApplyPatch накладывает частичный набор атрибутов из формы на блок.
// Не переданные ключи не меняются.
func (c *BlockChrome) ApplyPatch(patch map[string]any) error {
	return c.s.PatchBlock(c.index, patch)
}

// Delete удаляет блок из документа.
func (c *BlockChrome) Delete() error {
	return c.s.DeleteBlock(c.index)
}

func elementAt(s *editor.Session, index int) (any, error) {
	if index < 0 || index >= len(s.Document().Elements) {
		return nil, editor.ErrIndexOutOfRange
	}
	return s.Document().Elements[index], nil
}

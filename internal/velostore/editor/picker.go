package editor

import (
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

// BlockPicker предлагает виды блоков из реестра и вставляет выбранный
// на позицию курсора сессии.
type BlockPicker struct {
	s    *Session
	open bool
}

func NewBlockPicker(s *Session) *BlockPicker {
	return &BlockPicker{s: s}
}

// Open открывает пикер. В упрощенном режиме блоки недоступны.
func (p *BlockPicker) Open() error {
	if p.s.Mode() != ModeBlocks {
		return ErrBlocksDisabled
	}
	p.open = true
	return nil
}

func (p *BlockPicker) IsOpen() bool { return p.open }

// Kinds возвращает виды блоков, доступные для вставки.
func (p *BlockPicker) Kinds() []edtypes.BlockKind {
	if p.s.Mode() != ModeBlocks {
		return nil
	}
	return edtypes.Kinds()
}

// Pick вставляет новый блок выбранного вида с атрибутами по умолчанию
// на позицию курсора и закрывает пикер.
func (p *BlockPicker) Pick(kind edtypes.BlockKind) (int, error) {
	index, err := p.s.InsertBlock(kind, nil)
	if err != nil {
		return 0, err
	}
	p.open = false
	return index, nil
}

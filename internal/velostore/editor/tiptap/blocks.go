package tiptap

import (
	"log/slog"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

// parseBlock преобразует ноду контент-блока в структуру edtypes.
// Блоки атомарны: дочерний контент не допускается и отбрасывается.
func parseBlock(node TipTapNode) any {
	kind := edtypes.BlockKind(node.Type)

	if len(node.Content) > 0 {
		slog.Warn("Block node carries child content, dropping", "kind", node.Type, "children", len(node.Content))
	}

	block, err := edtypes.NewBlock(kind, node.Attrs)
	if err != nil {
		slog.Warn("Failed to build block from attrs", "kind", node.Type, "err", err)
		return nil
	}

	return block
}

// isBlockKind сообщает, является ли тег ноды видом контент-блока.
func isBlockKind(nodeType string) bool {
	switch edtypes.BlockKind(nodeType) {
	case edtypes.KindHero, edtypes.KindProductGrid, edtypes.KindTestimonial,
		edtypes.KindGallery, edtypes.KindVideoEmbed, edtypes.KindCallToAction:
		return true
	}
	return false
}

// serializeBlock преобразует контент-блок в ноду редактора.
// Тег ноды - стабильный тег сериализации вида блока, содержимое - только attrs.
func serializeBlock(block any) *TipTapNode {
	kind, ok := edtypes.KindOf(block)
	if !ok {
		return nil
	}

	attrs, err := edtypes.Attrs(block)
	if err != nil {
		slog.Warn("Failed to collect block attrs", "kind", kind, "err", err)
		return nil
	}

	return &TipTapNode{
		Type:  string(kind),
		Attrs: attrs,
	}
}

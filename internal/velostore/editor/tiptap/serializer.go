package tiptap

import (
	"encoding/hex"
	"encoding/json"
	"log/slog"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

// Serialize сериализует edtypes.Document в JSON редактора.
func Serialize(doc *edtypes.Document) ([]byte, error) {
	tipTapDoc := TipTapDocument{
		Type:    "doc",
		Content: make([]TipTapNode, 0, len(doc.Elements)),
	}

	for _, elem := range doc.Elements {
		node := serializeElement(elem)
		if node != nil {
			tipTapDoc.Content = append(tipTapDoc.Content, *node)
		}
	}

	return json.Marshal(tipTapDoc)
}

// serializeElement преобразует элемент edtypes в ноду редактора.
func serializeElement(elem any) *TipTapNode {
	if elem == nil {
		return nil
	}

	if edtypes.IsBlock(elem) {
		return serializeBlock(elem)
	}

	switch e := elem.(type) {
	case *edtypes.Paragraph:
		return serializeParagraph(e)
	case *edtypes.Heading:
		return serializeHeading(e)
	case *edtypes.Quote:
		return serializeQuote(e)
	case *edtypes.List:
		return serializeList(e)
	default:
		slog.Warn("Unknown element type for serialization", "type", e)
		return nil
	}
}

// colorToHex преобразует Color в hex строку формата #RRGGBBAA.
func colorToHex(c edtypes.Color) string {
	return "#" + hex.EncodeToString([]byte{c.R, c.G, c.B, c.A})
}

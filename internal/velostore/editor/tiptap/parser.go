package tiptap

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

func init() {
	// Регистрация границы сериализации в edtypes, чтобы Document
	// мог (де)сериализоваться через encoding/json и GORM.
	edtypes.EditorParser = ParseJSON
	edtypes.EditorSerializer = Serialize
}

// ParseJSON парсит JSON контент редактора в структуру edtypes.Document.
// Принимает io.Reader с JSON данными и возвращает распарсенный документ.
func ParseJSON(r io.Reader) (*edtypes.Document, error) {
	var tipTapDoc TipTapDocument
	if err := json.NewDecoder(r).Decode(&tipTapDoc); err != nil {
		return nil, err
	}

	doc := &edtypes.Document{
		Elements: make([]any, 0),
	}

	for _, node := range tipTapDoc.Content {
		elem := parseNode(node)
		if elem != nil {
			doc.Elements = append(doc.Elements, elem)
		}
	}

	return doc, nil
}

// parseNode парсит отдельную ноду верхнего уровня и возвращает соответствующий элемент edtypes.
func parseNode(node TipTapNode) any {
	if isBlockKind(node.Type) {
		return parseBlock(node)
	}

	switch node.Type {
	case "paragraph":
		return parseParagraph(node)
	case "heading":
		return parseHeading(node)
	case "blockquote":
		return parseBlockquote(node)
	case "bulletList", "orderedList":
		return parseList(node)
	default:
		slog.Warn("Unknown node type", "type", node.Type)
		return nil
	}
}

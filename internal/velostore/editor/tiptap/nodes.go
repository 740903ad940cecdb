package tiptap

import (
	"log/slog"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

// parseText преобразует текстовую ноду в edtypes.Text.
func parseText(node TipTapNode) edtypes.Text {
	text := edtypes.Text{
		Content: node.Text,
	}

	if len(node.Marks) > 0 {
		applyMarks(&text, node.Marks)
	}

	return text
}

// parseParagraph преобразует параграф в edtypes.Paragraph.
func parseParagraph(node TipTapNode) *edtypes.Paragraph {
	if node.Type != "paragraph" {
		return nil
	}

	p := &edtypes.Paragraph{
		Content: make([]any, 0),
		Align:   parseTextAlign(getAttrString(node.Attrs, "textAlign")),
	}

	p.Content = parseInline(node.Content)

	return p
}

// parseHeading преобразует заголовок в edtypes.Heading.
// Уровень ограничен 1..3.
func parseHeading(node TipTapNode) *edtypes.Heading {
	if node.Type != "heading" {
		return nil
	}

	level := getAttrInt(node.Attrs, "level")
	if level < 1 || level > 3 {
		level = 1
	}

	return &edtypes.Heading{
		Content: parseInline(node.Content),
		Level:   level,
		Align:   parseTextAlign(getAttrString(node.Attrs, "textAlign")),
	}
}

// parseInline обрабатывает строчное содержимое параграфа или заголовка.
func parseInline(content []TipTapNode) []any {
	out := make([]any, 0, len(content))
	for _, child := range content {
		switch child.Type {
		case "text":
			out = append(out, parseText(child))
		case "hardBreak":
			out = append(out, &edtypes.HardBreak{})
		default:
			slog.Warn("Unknown inline node type", "type", child.Type)
		}
	}
	return out
}

// parseBlockquote преобразует цитату в edtypes.Quote.
func parseBlockquote(node TipTapNode) *edtypes.Quote {
	if node.Type != "blockquote" {
		return nil
	}

	quote := &edtypes.Quote{
		Content: make([]edtypes.Paragraph, 0),
	}

	for _, child := range node.Content {
		switch child.Type {
		case "paragraph":
			if p := parseParagraph(child); p != nil {
				quote.Content = append(quote.Content, *p)
			}
		default:
			slog.Warn("Unknown blockquote child type", "type", child.Type)
		}
	}

	return quote
}

// parseList преобразует список в edtypes.List.
func parseList(node TipTapNode) *edtypes.List {
	list := &edtypes.List{
		Elements: make([]edtypes.ListElement, 0),
	}

	switch node.Type {
	case "bulletList":
		list.Numbered = false
	case "orderedList":
		list.Numbered = true
	default:
		return nil
	}

	for _, child := range node.Content {
		if child.Type == "listItem" {
			if elem := parseListItem(child); elem != nil {
				list.Elements = append(list.Elements, *elem)
			}
		}
	}

	return list
}

// parseListItem преобразует элемент списка в edtypes.ListElement.
func parseListItem(node TipTapNode) *edtypes.ListElement {
	elem := &edtypes.ListElement{
		Content: make([]edtypes.Paragraph, 0),
	}

	for _, child := range node.Content {
		if child.Type == "paragraph" {
			if p := parseParagraph(child); p != nil {
				elem.Content = append(elem.Content, *p)
			}
		}
	}

	return elem
}

// serializeParagraph преобразует Paragraph в ноду редактора.
func serializeParagraph(p *edtypes.Paragraph) *TipTapNode {
	node := &TipTapNode{
		Type:    "paragraph",
		Content: make([]TipTapNode, 0, len(p.Content)),
		Attrs:   make(map[string]interface{}),
	}

	// Атрибуты пишутся только если отличаются от default
	if p.Align != edtypes.LeftAlign {
		node.Attrs["textAlign"] = serializeTextAlign(p.Align)
	}
	if len(node.Attrs) == 0 {
		node.Attrs = nil
	}

	node.Content = serializeInline(p.Content)

	return node
}

// serializeHeading преобразует Heading в ноду редактора.
func serializeHeading(h *edtypes.Heading) *TipTapNode {
	node := &TipTapNode{
		Type: "heading",
		Attrs: map[string]interface{}{
			"level": h.Level,
		},
		Content: serializeInline(h.Content),
	}

	if h.Align != edtypes.LeftAlign {
		node.Attrs["textAlign"] = serializeTextAlign(h.Align)
	}

	return node
}

// serializeInline сериализует строчное содержимое.
func serializeInline(content []any) []TipTapNode {
	out := make([]TipTapNode, 0, len(content))
	for _, item := range content {
		switch c := item.(type) {
		case edtypes.Text:
			out = append(out, *serializeText(&c))
		case *edtypes.HardBreak:
			out = append(out, TipTapNode{Type: "hardBreak"})
		default:
			slog.Warn("Unknown inline content type for serialization", "type", c)
		}
	}
	return out
}

// serializeText преобразует Text в текстовую ноду.
func serializeText(t *edtypes.Text) *TipTapNode {
	node := &TipTapNode{
		Type: "text",
		Text: t.Content,
	}

	if marks := serializeMarks(t); len(marks) > 0 {
		node.Marks = marks
	}

	return node
}

// serializeQuote преобразует Quote в blockquote ноду.
func serializeQuote(q *edtypes.Quote) *TipTapNode {
	node := &TipTapNode{
		Type:    "blockquote",
		Content: make([]TipTapNode, 0, len(q.Content)),
	}

	for _, p := range q.Content {
		if childNode := serializeParagraph(&p); childNode != nil {
			node.Content = append(node.Content, *childNode)
		}
	}

	return node
}

// serializeList преобразует List в bulletList или orderedList ноду.
func serializeList(l *edtypes.List) *TipTapNode {
	listType := "bulletList"
	if l.Numbered {
		listType = "orderedList"
	}

	node := &TipTapNode{
		Type:    listType,
		Content: make([]TipTapNode, 0, len(l.Elements)),
	}

	for _, item := range l.Elements {
		itemNode := TipTapNode{
			Type:    "listItem",
			Content: make([]TipTapNode, 0, len(item.Content)),
		}

		for _, p := range item.Content {
			if childNode := serializeParagraph(&p); childNode != nil {
				itemNode.Content = append(itemNode.Content, *childNode)
			}
		}

		node.Content = append(node.Content, itemNode)
	}

	return node
}

package tiptap

import (
	"strings"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

// getAttrString безопасно извлекает строковый атрибут из map.
func getAttrString(attrs map[string]interface{}, key string) string {
	if attrs == nil {
		return ""
	}
	val, ok := attrs[key]
	if !ok {
		return ""
	}
	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// getAttrInt безопасно извлекает целочисленный атрибут из map.
func getAttrInt(attrs map[string]interface{}, key string) int {
	if attrs == nil {
		return 0
	}
	val, ok := attrs[key]
	if !ok {
		return 0
	}

	// Из JSON числа приходят как float64
	if f, ok := val.(float64); ok {
		return int(f)
	}

	if i, ok := val.(int); ok {
		return i
	}

	return 0
}

// parseTextAlign конвертирует строковое значение выравнивания в TextAlign.
func parseTextAlign(align string) edtypes.TextAlign {
	switch strings.TrimSpace(strings.ToLower(align)) {
	case "left":
		return edtypes.LeftAlign
	case "center":
		return edtypes.CenterAlign
	case "right":
		return edtypes.RightAlign
	case "justify":
		return edtypes.JustifyAlign
	default:
		return edtypes.LeftAlign
	}
}

// serializeTextAlign преобразует TextAlign в строку.
func serializeTextAlign(align edtypes.TextAlign) string {
	switch align {
	case edtypes.LeftAlign:
		return "left"
	case edtypes.CenterAlign:
		return "center"
	case edtypes.RightAlign:
		return "right"
	case edtypes.JustifyAlign:
		return "justify"
	default:
		return "left"
	}
}

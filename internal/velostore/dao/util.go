package dao

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isUniqueViolation распознает нарушение уникального индекса для postgres
// и sqlite (в тестах).
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint failed")
}

// Пакет для валидации данных запросов. Использует библиотеку
// go-playground/validator. Содержит валидаторы полей контента витрины.
//
// Основные возможности:
//   - Валидация адресов страниц и товаров (slug).
//   - Валидация вида контента.
package velostore

import (
	"unicode/utf8"

	"github.com/go-playground/validator"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/dao"
)

type RequestValidator struct {
	validator *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()
	if err := v.RegisterValidation("slug", slugValidator); err != nil {
		return nil
	}
	if err := v.RegisterValidation("contentKind", contentKindValidator); err != nil {
		return nil
	}
	return &RequestValidator{v}
}

func (rv *RequestValidator) Validate(i interface{}) error {
	if err := rv.validator.Struct(i); err != nil {
		_, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil
		}
		return err
	}
	return nil
}

func slugValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	lenStr := utf8.RuneCountInString(value)
	if !isValidLatinLowerDigitHyphen(value) {
		return false
	}
	return lenStr >= 3 && lenStr <= 50
}

func contentKindValidator(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case dao.ContentKindPage, dao.ContentKindNote:
		return true
	}
	return false
}

func isValidLatinLowerDigitHyphen(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}

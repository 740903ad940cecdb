// Пакет содержит определения ошибок, используемых в приложении velostore для обработки ситуаций, возникающих при работе с базой данных, каталогом товаров и редактором контента. Каждая ошибка имеет код, статус HTTP и описание, что позволяет удобно обрабатывать исключения и предоставлять информативные сообщения пользователю.
//
// Основные возможности:
//   - Определение типов ошибок, связанных с контентом, товарами и редактором.
//   - Предоставление кодов ошибок, соответствующих кодам HTTP статусов.
//   - Включение русскоязычных сообщений для отображения пользователю.
//   - Функция для форматирования сообщений об ошибках с использованием аргументов.
package apierrors

import (
	"fmt"
	"net/http"
	"strings"
)

type DefinedError struct {
	Code       int    `json:"code"`
	StatusCode int    `json:"-"`
	Err        string `json:"error"`
	RuErr      string `json:"ru_error,omitempty"`
}

func (e DefinedError) Error() string {
	return e.Err
}

var (
	// 1*** - content errors
	ErrContentNotFound       = DefinedError{Code: 1001, StatusCode: http.StatusNotFound, Err: "content not found", RuErr: "Страница не найдена"}
	ErrContentSlugConflict   = DefinedError{Code: 1002, StatusCode: http.StatusConflict, Err: "content with that slug already exists", RuErr: "Страница с таким адресом уже существует"}
	ErrContentTitleRequired  = DefinedError{Code: 1003, StatusCode: http.StatusBadRequest, Err: "content must have a title", RuErr: "Поле Заголовок не может быть пустым"}
	ErrForbiddenSlug         = DefinedError{Code: 1004, StatusCode: http.StatusBadRequest, Err: "forbidden slug", RuErr: "Адрес содержит недопустимые символы"}
	ErrContentRevisionStale  = DefinedError{Code: 1005, StatusCode: http.StatusConflict, Err: "content was modified by someone else, reload and retry", RuErr: "Страница была изменена другим пользователем. Обновите страницу и повторите"}
	ErrContentBodyMalformed  = DefinedError{Code: 1006, StatusCode: http.StatusBadRequest, Err: "malformed content body", RuErr: "Некорректное содержимое страницы"}
	ErrContentDraftNotPublic = DefinedError{Code: 1007, StatusCode: http.StatusNotFound, Err: "content is a draft", RuErr: "Страница не опубликована"}

	// 2*** - product errors
	ErrProductNotFound     = DefinedError{Code: 2001, StatusCode: http.StatusNotFound, Err: "product not found", RuErr: "Товар не найден"}
	ErrProductNameRequired = DefinedError{Code: 2002, StatusCode: http.StatusBadRequest, Err: "product must have a name", RuErr: "Поле Название товара не может быть пустым"}
	ErrProductSlugConflict = DefinedError{Code: 2003, StatusCode: http.StatusConflict, Err: "product with that slug already exists", RuErr: "Товар с таким адресом уже существует"}
	ErrCatalogUnavailable  = DefinedError{Code: 2004, StatusCode: http.StatusBadGateway, Err: "product catalog is unavailable", RuErr: "Каталог товаров временно недоступен"}

	// 3*** - editor errors
	ErrBlocksDisabled     = DefinedError{Code: 3001, StatusCode: http.StatusBadRequest, Err: "content blocks are not enabled for this content kind", RuErr: "Контент-блоки недоступны для этого типа страницы"}
	ErrUnknownBlockKind   = DefinedError{Code: 3002, StatusCode: http.StatusBadRequest, Err: "unknown block kind %s", RuErr: "Неизвестный вид блока %s"}
	ErrNotABlock          = DefinedError{Code: 3003, StatusCode: http.StatusBadRequest, Err: "element is not a content block", RuErr: "Элемент не является контент-блоком"}
	ErrElementOutOfRange  = DefinedError{Code: 3004, StatusCode: http.StatusBadRequest, Err: "element index out of range", RuErr: "Элемент с таким индексом не существует"}
	ErrEmptyLinkURL       = DefinedError{Code: 3005, StatusCode: http.StatusBadRequest, Err: "link URL must not be empty", RuErr: "Ссылка не может быть пустой"}
	ErrHeadingLevel       = DefinedError{Code: 3006, StatusCode: http.StatusBadRequest, Err: "heading level must be 1..3", RuErr: "Уровень заголовка должен быть от 1 до 3"}
	ErrGeneric            = DefinedError{Code: 9000, StatusCode: http.StatusInternalServerError, Err: "internal server error", RuErr: "Внутренняя ошибка сервера"}
	ErrInvalidRequestBody = DefinedError{Code: 9001, StatusCode: http.StatusBadRequest, Err: "invalid request body", RuErr: "Некорректное тело запроса"}
)

// Format подставляет аргументы в шаблоны сообщений ошибки.
func (e DefinedError) Format(args ...any) DefinedError {
	e.Err = fmt.Sprintf(e.Err, args...)
	if strings.Contains(e.RuErr, "%") {
		e.RuErr = fmt.Sprintf(e.RuErr, args...)
	}
	return e
}

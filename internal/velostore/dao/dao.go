// DAO (Data Access Object) - предоставляет интерфейс для взаимодействия с базой данных. Содержит функции для работы с сущностями витрины: контентом редактора и товарами каталога.
//
// Основные возможности:
//   - Работа с контентом (создание, чтение, оптимистичное сохранение, удаление).
//   - Работа с товарами (чтение по идентификаторам, опубликованный каталог).
//   - Преобразование моделей в DTO.
package dao

import (
	"github.com/gofrs/uuid"
)

// GenID генерирует уникальный идентификатор в формате UUID.
// Не принимает параметров и возвращает строку, представляющую собой UUID.
func GenID() string {
	u2, _ := uuid.NewV4()
	return u2.String()
}

// GenUUID генерирует уникальный идентификатор в формате UUID. Не принимает параметров и возвращает UUID.
func GenUUID() uuid.UUID {
	u2, _ := uuid.NewV4()
	return u2
}

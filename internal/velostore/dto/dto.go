// Содержит структуры данных (DTO) для обмена между слоями приложения и
// внешними клиентами витрины.
//
// Основные возможности:
//   - Представление контента редактора (ContentLight, Content).
//   - Карточка товара для сетки товаров и каталога (ProductCard).
package dto

import (
	"encoding/json"
	"time"
)

type ContentLight struct {
	Id        string    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Draft     bool      `json:"draft"`
	Revision  int64     `json:"revision"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Content struct {
	ContentLight

	Body json.RawMessage `json:"body" swaggertype:"object"`
}

type ProductCard struct {
	Id            string   `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	Price         int64    `json:"price"` // в копейках
	FeaturedImage string   `json:"featured_image,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

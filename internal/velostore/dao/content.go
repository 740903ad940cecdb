package dao

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/apierrors"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/dto"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

// Виды контента. Вид определяет режим редактора: страницы витрины
// собираются из контент-блоков, заметки - только текстовое форматирование.
const (
	ContentKindPage = "page"
	ContentKindNote = "note"
)

type Content struct {
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid" json:"id"`

	Kind  string `json:"kind" gorm:"index;default:page"`
	Title string `json:"title"`
	Slug  string `json:"slug" gorm:"uniqueIndex"`

	Body edtypes.Document `json:"body"`

	// Revision растет на единицу при каждом сохранении. Сохранение со
	// устаревшей ревизией отклоняется.
	Revision int64 `json:"revision" gorm:"default:0"`

	Draft bool `json:"draft" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Content) TableName() string { return "contents" }

func (c *Content) ToLightDTO() dto.ContentLight {
	return dto.ContentLight{
		Id:        c.ID.String(),
		Kind:      c.Kind,
		Title:     c.Title,
		Slug:      c.Slug,
		Draft:     c.Draft,
		Revision:  c.Revision,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (c *Content) ToDTO() (dto.Content, error) {
	body, err := c.Body.MarshalJSON()
	if err != nil {
		return dto.Content{}, err
	}
	return dto.Content{
		ContentLight: c.ToLightDTO(),
		Body:         body,
	}, nil
}

// GetContentById возвращает контент по идентификатору.
func GetContentById(db *gorm.DB, id string) (*Content, error) {
	var content Content
	if err := db.Where("id = ?", id).First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.ErrContentNotFound
		}
		return nil, err
	}
	return &content, nil
}

// GetContentBySlug возвращает контент по адресу страницы.
func GetContentBySlug(db *gorm.DB, slug string) (*Content, error) {
	var content Content
	if err := db.Where("slug = ?", slug).First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.ErrContentNotFound
		}
		return nil, err
	}
	return &content, nil
}

// GetContentList возвращает список контента без тел документов.
func GetContentList(db *gorm.DB, kind string) ([]Content, error) {
	var contents []Content
	query := db.Omit("body").Order("updated_at desc")
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if err := query.Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// CreateContent сохраняет новый контент.
func CreateContent(db *gorm.DB, content *Content) error {
	if content.ID == uuid.Nil {
		content.ID = GenUUID()
	}
	if err := db.Create(content).Error; err != nil {
		if isUniqueViolation(err) {
			return apierrors.ErrContentSlugConflict
		}
		return err
	}
	return nil
}

// SaveContent сохраняет контент с оптимистичной блокировкой: обновление
// проходит только если ревизия в БД совпадает с переданной. Успешное
// сохранение инкрементирует ревизию в переданной структуре.
func SaveContent(db *gorm.DB, content *Content) error {
	res := db.Model(&Content{}).
		Where("id = ? AND revision = ?", content.ID, content.Revision).
		Updates(map[string]interface{}{
			"title":    content.Title,
			"slug":     content.Slug,
			"body":     content.Body,
			"draft":    content.Draft,
			"revision": content.Revision + 1,
		})
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return apierrors.ErrContentSlugConflict
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		// либо контента нет, либо его успел сохранить кто-то другой
		if _, err := GetContentById(db, content.ID.String()); err != nil {
			return err
		}
		return apierrors.ErrContentRevisionStale
	}

	content.Revision++
	return nil
}

// DeleteContent удаляет контент по идентификатору.
func DeleteContent(db *gorm.DB, id string) error {
	res := db.Where("id = ?", id).Delete(&Content{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apierrors.ErrContentNotFound
	}
	return nil
}

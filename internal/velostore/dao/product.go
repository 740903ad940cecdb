package dao

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/apierrors"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/dto"
)

type Product struct {
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid" json:"id"`

	Name        string `json:"name"`
	Slug        string `json:"slug" gorm:"uniqueIndex"`
	Description string `json:"description"`

	// в копейках
	Price int64 `json:"price"`

	FeaturedImage string         `json:"featured_image"`
	Tags          pq.StringArray `json:"tags" gorm:"type:text[]"`

	Published bool `json:"published" gorm:"default:false;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Product) TableName() string { return "products" }

func (p *Product) ToCard() dto.ProductCard {
	return dto.ProductCard{
		Id:            p.ID.String(),
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Price:         p.Price,
		FeaturedImage: p.FeaturedImage,
		Tags:          p.Tags,
	}
}

// GetProductById возвращает товар по идентификатору.
func GetProductById(db *gorm.DB, id string) (*Product, error) {
	var product Product
	if err := db.Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// GetProductsByIds возвращает опубликованные товары по списку
// идентификаторов в порядке переданного списка. Несуществующие
// идентификаторы молча пропускаются.
func GetProductsByIds(db *gorm.DB, ids []string) ([]Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var products []Product
	if err := db.Where("id IN ? AND published = ?", ids, true).Find(&products).Error; err != nil {
		return nil, err
	}

	index := make(map[string]Product, len(products))
	for _, p := range products {
		index[p.ID.String()] = p
	}

	ordered := make([]Product, 0, len(products))
	for _, id := range ids {
		if p, ok := index[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// GetPublishedProducts возвращает опубликованный каталог.
func GetPublishedProducts(db *gorm.DB) ([]Product, error) {
	var products []Product
	if err := db.Where("published = ?", true).Order("name").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct сохраняет новый товар.
func CreateProduct(db *gorm.DB, product *Product) error {
	if product.ID == uuid.Nil {
		product.ID = GenUUID()
	}
	if err := db.Create(product).Error; err != nil {
		if isUniqueViolation(err) {
			return apierrors.ErrProductSlugConflict
		}
		return err
	}
	return nil
}

// ProductStore реализует источник товаров для селектора сетки поверх
// собственной БД.
type ProductStore struct {
	DB *gorm.DB
}

func (s ProductStore) Products(ctx context.Context) ([]dto.ProductCard, error) {
	products, err := GetPublishedProducts(s.DB.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	cards := make([]dto.ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, p.ToCard())
	}
	return cards, nil
}

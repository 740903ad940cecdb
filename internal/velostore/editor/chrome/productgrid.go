package chrome

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/dto"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

var ErrNotProductGrid = errors.New("block is not a product grid")

// ProductSource - источник карточек товаров для селектора сетки.
// Реализуется каталогом (internal/velostore/integrations/catalog) и dao.
type ProductSource interface {
	Products(ctx context.Context) ([]dto.ProductCard, error)
}

// ProductSelector - панель выбора товаров для блока productGrid.
// Недоступность источника деградирует до пустого списка, а не до ошибки
// редактора.
type ProductSelector struct {
	chrome *BlockChrome
	source ProductSource

	available []dto.ProductCard
}

func NewProductSelector(chrome *BlockChrome, source ProductSource) *ProductSelector {
	return &ProductSelector{chrome: chrome, source: source}
}

// Load загружает доступные товары из источника.
func (ps *ProductSelector) Load(ctx context.Context) {
	products, err := ps.source.Products(ctx)
	if err != nil {
		slog.Error("Failed to load products for selector", "err", err)
		ps.available = nil
		return
	}
	ps.available = products
}

// Available возвращает загруженные карточки товаров.
func (ps *ProductSelector) Available() []dto.ProductCard {
	return ps.available
}

// Selected возвращает текущий набор выбранных идентификаторов.
func (ps *ProductSelector) Selected() ([]string, error) {
	grid, err := ps.grid()
	if err != nil {
		return nil, err
	}
	return append([]string(nil), grid.ProductIDs...), nil
}

// ToggleProduct переключает членство товара в наборе. Добавление - в конец,
// удаление не меняет порядок остальных. Повторное переключение возвращает
// набор к исходному состоянию.
func (ps *ProductSelector) ToggleProduct(id string) error {
	grid, err := ps.grid()
	if err != nil {
		return err
	}

	ids := append([]string(nil), grid.ProductIDs...)
	if i := slices.Index(ids, id); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
	} else {
		ids = append(ids, id)
	}

	return ps.chrome.ApplyPatch(map[string]any{"productIds": ids})
}

func (ps *ProductSelector) grid() (*edtypes.ProductGrid, error) {
	elem, err := elementAt(ps.chrome.s, ps.chrome.index)
	if err != nil {
		return nil, err
	}
	grid, ok := elem.(*edtypes.ProductGrid)
	if !ok {
		return nil, ErrNotProductGrid
	}
	return grid, nil
}

// Каталог товаров для редактора и витрины.
package velostore

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/dao"
)

func (s *Services) AddProductServices(g *echo.Group) {
	productGroup := g.Group("products")
	productGroup.GET("/", s.getProductList)
	productGroup.GET("/:id/", s.getProduct)
}

// getProductList godoc
// @id getProductList
// @Summary товары: список
// @Description Возвращает опубликованные товары. Используется селектором товаров в редакторе.
// @Tags Products
// @Produce json
// @Success 200 {array} dto.ProductCard "Карточки товаров"
// @Failure 502 {object} apierrors.DefinedError "Каталог недоступен"
// @Failure 500 {object} apierrors.DefinedError "Ошибка сервера"
// @Router /api/products/ [get]
func (s *Services) getProductList(c echo.Context) error {
	cards, err := s.products.Products(c.Request().Context())
	if err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusOK, cards)
}

// getProduct godoc
// @id getProduct
// @Summary товары: получить
// @Description Возвращает товар из собственной БД по идентификатору.
// @Tags Products
// @Produce json
// @Param id path string true "Идентификатор товара"
// @Success 200 {object} dto.ProductCard "Карточка товара"
// @Failure 404 {object} apierrors.DefinedError "Товар не найден"
// @Failure 500 {object} apierrors.DefinedError "Ошибка сервера"
// @Router /api/products/{id}/ [get]
func (s *Services) getProduct(c echo.Context) error {
	product, err := dao.GetProductById(s.db, c.Param("id"))
	if err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusOK, product.ToCard())
}

// Публичные страницы витрины: рендер опубликованного контента в HTML
// с санитизацией и минификацией.
package velostore

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tdewolff/minify/v2"
	minifyhtml "github.com/tdewolff/minify/v2/html"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/apierrors"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/dao"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/dto"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/render"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/utils"
)

var pageMinifier *minify.M

func init() {
	pageMinifier = minify.New()
	pageMinifier.AddFunc("text/html", minifyhtml.Minify)
}

const pageTemplate = `<!DOCTYPE html><html lang="ru"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title></head><body>%s</body></html>`

// pageRenderer собирает рендерер с товарами, на которые ссылаются сетки
// документа. Недоступность каталога деградирует до пустых сеток.
func (s *Services) pageRenderer(ctx context.Context, doc *edtypes.Document) (*render.Renderer, error) {
	needed := utils.SliceToSet(gridProductIds(doc))
	if len(needed) == 0 {
		return render.NewRenderer(nil), nil
	}

	products, err := s.products.Products(ctx)
	if err != nil {
		slog.Error("Failed to load products for page render", "err", err)
		return render.NewRenderer(nil), nil
	}

	referenced := make([]dto.ProductCard, 0, len(needed))
	for _, p := range products {
		if utils.CheckInSet(needed, p.Id) {
			referenced = append(referenced, p)
		}
	}
	return render.NewRenderer(referenced), nil
}

func gridProductIds(doc *edtypes.Document) []string {
	var ids []string
	for _, elem := range doc.Elements {
		if grid, ok := elem.(*edtypes.ProductGrid); ok {
			ids = append(ids, grid.ProductIDs...)
		}
	}
	return ids
}

// getPublicPage godoc
// @id getPublicPage
// @Summary страницы: публичный рендер
// @Description Возвращает опубликованную страницу в HTML. Черновики не отдаются.
// @Tags Pages
// @Produce html
// @Param slug path string true "Адрес страницы"
// @Success 200 {string} string "HTML страницы"
// @Failure 404 {object} apierrors.DefinedError "Страница не найдена или не опубликована"
// @Failure 500 {object} apierrors.DefinedError "Ошибка сервера"
// @Router /p/{slug}/ [get]
func (s *Services) getPublicPage(c echo.Context) error {
	content, err := dao.GetContentBySlug(s.db, c.Param("slug"))
	if err != nil {
		return EError(c, err)
	}
	if content.Draft {
		return EErrorDefined(c, apierrors.ErrContentDraftNotPublic)
	}

	renderer, err := s.pageRenderer(c.Request().Context(), &content.Body)
	if err != nil {
		return EError(c, err)
	}

	body := render.PagePolicy.Sanitize(renderer.HTML(&content.Body))
	page := fmt.Sprintf(pageTemplate, html.EscapeString(content.Title), body)

	minified, err := pageMinifier.String("text/html", page)
	if err != nil {
		slog.Error("Failed to minify page, serving as is", "err", err)
		minified = page
	}

	return c.HTML(http.StatusOK, minified)
}

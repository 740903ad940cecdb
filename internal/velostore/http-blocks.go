// Реестр контент-блоков для пикера и панели атрибутов редактора.
package velostore

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/apierrors"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/chrome"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

type blockSchema struct {
	Kind   edtypes.BlockKind `json:"kind"`
	Fields []chrome.Field    `json:"fields"`
	Attrs  map[string]any    `json:"default_attrs"`
}

func (s *Services) AddBlockServices(g *echo.Group) {
	blockGroup := g.Group("blocks")
	blockGroup.GET("/", s.getBlockSchemas)
	blockGroup.GET("/:kind/", s.getBlockSchema)
}

// getBlockSchemas godoc
// @id getBlockSchemas
// @Summary блоки: реестр
// @Description Возвращает все виды контент-блоков со схемами форм и атрибутами по умолчанию. Порядок - порядок отображения в пикере.
// @Tags Blocks
// @Produce json
// @Success 200 {array} blockSchema "Схемы блоков"
// @Failure 500 {object} apierrors.DefinedError "Ошибка сервера"
// @Router /api/blocks/ [get]
func (s *Services) getBlockSchemas(c echo.Context) error {
	kinds := edtypes.Kinds()
	schemas := make([]blockSchema, 0, len(kinds))
	for _, kind := range kinds {
		schema, err := schemaFor(kind)
		if err != nil {
			return EError(c, err)
		}
		schemas = append(schemas, schema)
	}
	return c.JSON(http.StatusOK, schemas)
}

// getBlockSchema godoc
// @id getBlockSchema
// @Summary блоки: схема вида
// @Description Возвращает схему формы и атрибуты по умолчанию для вида блока.
// @Tags Blocks
// @Produce json
// @Param kind path string true "Вид блока"
// @Success 200 {object} blockSchema "Схема блока"
// @Failure 400 {object} apierrors.DefinedError "Неизвестный вид блока"
// @Failure 500 {object} apierrors.DefinedError "Ошибка сервера"
// @Router /api/blocks/{kind}/ [get]
func (s *Services) getBlockSchema(c echo.Context) error {
	kind := edtypes.BlockKind(c.Param("kind"))
	schema, err := schemaFor(kind)
	if err != nil {
		return EErrorDefined(c, apierrors.ErrUnknownBlockKind.Format(kind))
	}
	return c.JSON(http.StatusOK, schema)
}

func schemaFor(kind edtypes.BlockKind) (blockSchema, error) {
	block, err := edtypes.DefaultBlock(kind)
	if err != nil {
		return blockSchema{}, err
	}
	attrs, err := edtypes.Attrs(block)
	if err != nil {
		return blockSchema{}, err
	}
	return blockSchema{Kind: kind, Fields: chrome.FormFor(kind), Attrs: attrs}, nil
}

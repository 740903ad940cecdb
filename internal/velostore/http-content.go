// Управление контентом редактора: создание, чтение, сохранение с
// оптимистичной блокировкой, удаление и экспорт в Markdown.
package velostore

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/apierrors"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/dao"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/dto"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/utils"
)

type reqContent struct {
	Kind  string          `json:"kind" validate:"contentKind"`
	Title string          `json:"title" validate:"required"`
	Slug  string          `json:"slug" validate:"slug"`
	Body  json.RawMessage `json:"body"`
	Draft *bool           `json:"draft"`
}

type reqContentUpdate struct {
	Title    *string         `json:"title"`
	Slug     *string         `json:"slug"`
	Body     json.RawMessage `json:"body"`
	Draft    *bool           `json:"draft"`
	Revision int64           `json:"revision"`
}

func (s *Services) AddContentServices(g *echo.Group) {
	contentGroup := g.Group("content")
	contentGroup.GET("/", s.getContentList)
	contentGroup.POST("/", s.createContent)
	contentGroup.GET("/:id/", s.getContent)
	contentGroup.PATCH("/:id/", s.updateContent)
	contentGroup.DELETE("/:id/", s.deleteContent)
	contentGroup.GET("/:id/markdown/", s.exportContentMarkdown)
}

// editorModeFor сопоставляет вид контента режиму редактора.
func editorModeFor(kind string) editor.Mode {
	if kind == dao.ContentKindNote {
		return editor.ModeSimple
	}
	return editor.ModeBlocks
}

// normalizeBody прогоняет тело документа через редактор: битый JSON
// деградирует до пустого документа, блоки в упрощенном режиме отбрасываются.
func normalizeBody(raw json.RawMessage, kind string, revision int64) (*editor.Session, error) {
	session := editor.NewSession(editorModeFor(kind))
	if len(raw) == 0 {
		return session, nil
	}
	if err := session.Adopt(raw, revision); err != nil {
		return nil, err
	}
	return session, nil
}

// getContentList godoc
// @id getContentList
// @Summary контент: список
// @Description Возвращает список контента без тел документов.
// @Tags Content
// @Produce json
// @Param kind query string false "Фильтр по виду (page, note)"
// @Success 200 {array} dto.ContentLight "Список контента"
// @Failure 500 {object} apierrors.DefinedError "Ошибка сервера"
// @Router /api/content/ [get]
func (s *Services) getContentList(c echo.Context) error {
	contents, err := dao.GetContentList(s.db, c.QueryParam("kind"))
	if err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusOK, utils.SliceToSlice(&contents, func(content *dao.Content) dto.ContentLight {
		return content.ToLightDTO()
	}))
}

// createContent godoc
// @id createContent
// @Summary контент: создать
// @Description Создает новый контент. Страницы (page) поддерживают контент-блоки, заметки (note) - только текст.
// @Tags Content
// @Accept json
// @Produce json
// @Param content body reqContent true "Данные контента"
// @Success 201 {object} dto.Content "Созданный контент"
// @Failure 400 {object} apierrors.DefinedError "Ошибка валидации"
// @Failure 409 {object} apierrors.DefinedError "Адрес занят"
// @Failure 500 {object} apierrors.DefinedError "Ошибка сервера"
// @Router /api/content/ [post]
func (s *Services) createContent(c echo.Context) error {
	var req reqContent
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrInvalidRequestBody)
	}
	if err := c.Validate(&req); err != nil {
		if req.Title == "" {
			return EErrorDefined(c, apierrors.ErrContentTitleRequired)
		}
		return EErrorDefined(c, apierrors.ErrForbiddenSlug)
	}

	session, err := normalizeBody(req.Body, req.Kind, 0)
	if err != nil {
		return EError(c, err)
	}

	content := dao.Content{
		Kind:  req.Kind,
		Title: req.Title,
		Slug:  req.Slug,
		Body:  *session.Document(),
		Draft: true,
	}
	if req.Draft != nil {
		content.Draft = *req.Draft
	}

	if err := dao.CreateContent(s.db, &content); err != nil {
		return EError(c, err)
	}

	resp, err := content.ToDTO()
	if err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// getContent godoc
// @id getContent
// @Summary контент: получить
// @Description Возвращает контент с телом документа.
// @Tags Content
// @Produce json
// @Param id path string true "Идентификатор контента"
// @Success 200 {object} dto.Content "Контент"
// @Failure 404 {object} apierrors.DefinedError "Контент не найден"
// @Failure 500 {object} apierrors.DefinedError "Ошибка сервера"
// @Router /api/content/{id}/ [get]
func (s *Services) getContent(c echo.Context) error {
	content, err := dao.GetContentById(s.db, c.Param("id"))
	if err != nil {
		return EError(c, err)
	}
	resp, err := content.ToDTO()
	if err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// updateContent godoc
// @id updateContent
// @Summary контент: сохранить
// @Description Сохраняет контент с оптимистичной блокировкой: ревизия в запросе должна совпадать с ревизией в БД.
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор контента"
// @Param content body reqContentUpdate true "Изменения и ожидаемая ревизия"
// @Success 200 {object} dto.Content "Сохраненный контент"
// @Failure 400 {object} apierrors.DefinedError "Ошибка валидации"
// @Failure 404 {object} apierrors.DefinedError "Контент не найден"
// @Failure 409 {object} apierrors.DefinedError "Ревизия устарела или адрес занят"
// @Failure 500 {object} apierrors.DefinedError "Ошибка сервера"
// @Router /api/content/{id}/ [patch]
func (s *Services) updateContent(c echo.Context) error {
	content, err := dao.GetContentById(s.db, c.Param("id"))
	if err != nil {
		return EError(c, err)
	}

	var req reqContentUpdate
	if err := c.Bind(&req); err != nil {
		return EErrorDefined(c, apierrors.ErrInvalidRequestBody)
	}

	if req.Title != nil {
		if *req.Title == "" {
			return EErrorDefined(c, apierrors.ErrContentTitleRequired)
		}
		content.Title = *req.Title
	}
	if req.Slug != nil {
		if !isValidLatinLowerDigitHyphen(*req.Slug) {
			return EErrorDefined(c, apierrors.ErrForbiddenSlug)
		}
		content.Slug = *req.Slug
	}
	if req.Draft != nil {
		content.Draft = *req.Draft
	}
	if len(req.Body) > 0 {
		session, err := normalizeBody(req.Body, content.Kind, req.Revision)
		if err != nil {
			return EError(c, err)
		}
		content.Body = *session.Document()
	}

	content.Revision = req.Revision
	if err := dao.SaveContent(s.db, content); err != nil {
		return EError(c, err)
	}

	resp, err := content.ToDTO()
	if err != nil {
		return EError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// deleteContent godoc
// @id deleteContent
// @Summary контент: удалить
// @Description Удаляет контент по идентификатору.
// @Tags Content
// @Param id path string true "Идентификатор контента"
// @Success 204 "Контент удален"
// @Failure 404 {object} apierrors.DefinedError "Контент не найден"
// @Failure 500 {object} apierrors.DefinedError "Ошибка сервера"
// @Router /api/content/{id}/ [delete]
func (s *Services) deleteContent(c echo.Context) error {
	if err := dao.DeleteContent(s.db, c.Param("id")); err != nil {
		return EError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// exportContentMarkdown godoc
// @id exportContentMarkdown
// @Summary контент: экспорт в Markdown
// @Description Возвращает документ в формате Markdown. Контент-блоки сворачиваются в текстовое представление.
// @Tags Content
// @Produce plain
// @Param id path string true "Идентификатор контента"
// @Success 200 {string} string "Markdown"
// @Failure 404 {object} apierrors.DefinedError "Контент не найден"
// @Failure 500 {object} apierrors.DefinedError "Ошибка сервера"
// @Router /api/content/{id}/markdown/ [get]
func (s *Services) exportContentMarkdown(c echo.Context) error {
	content, err := dao.GetContentById(s.db, c.Param("id"))
	if err != nil {
		return EError(c, err)
	}

	renderer, err := s.pageRenderer(c.Request().Context(), &content.Body)
	if err != nil {
		return EError(c, err)
	}

	var buf bytes.Buffer
	if err := renderer.Markdown(&buf, &content.Body); err != nil {
		return EError(c, err)
	}
	return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", buf.Bytes())
}

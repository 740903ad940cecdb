// Пакет velostore предоставляет HTTP-слой витрины: API управления контентом
// редактора, каталог товаров и публичные страницы.
//
// Основные возможности:
//   - CRUD контента с оптимистичной блокировкой по ревизии.
//   - Схемы контент-блоков для пикера и панели атрибутов.
//   - Каталог товаров для сетки товаров.
//   - Рендер опубликованных страниц в HTML с санитизацией и минификацией.
package velostore

// @title Velostore API
// @version 1.0
// @description API витрины электровелосипедов: контент, товары, публичные страницы.
// @BasePath /
// @query.collection.format multi
import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/config"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/dao"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/chrome"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/integrations/catalog"
)

type Services struct {
	db       *gorm.DB
	products chrome.ProductSource
}

var cfg *config.Config
var appVersion string

// ServerHeader middleware adds a `Server` header to the response.
func ServerHeader(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderServer, "Velostore")
		return next(c)
	}
}

func Server(db *gorm.DB, c *config.Config, version string) {
	cfg = c
	appVersion = version

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
		}

		// Ignore 404
		if code == http.StatusNotFound {
			c.NoContent(http.StatusNotFound)
			return
		}
		slog.Error("Unhandled error in endpoint", "url", c.Request().URL, "err", err)
		EErrorMsgStatus(c, nil, code)
	}

	// Query counter
	ql := dao.NewQueryLogger()
	if err := db.Callback().
		Query().
		After("*").
		Register("instrumentation:after_query", ql.QueryCallback); err != nil {
		slog.Error("Register query callback", "err", err)
	}

	s := &Services{db: db}

	// Товары либо из внешнего каталога, либо из собственной БД
	if cfg.CatalogURL != "" {
		slog.Info("Using external product catalog", "url", cfg.CatalogURL)
		s.products = catalog.NewClient(cfg.CatalogURL, cfg.CatalogToken)
	} else {
		s.products = dao.ProductStore{DB: db}
	}

	// Global middlewares
	e.Use(ServerHeader)
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowCredentials: true,
	}))
	e.Use(middleware.BodyLimitWithConfig(middleware.BodyLimitConfig{
		Limit: cfg.BodyLimit,
	}))
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level:     9,
		MinLength: 2048,
	}))
	e.Use(echoprometheus.NewMiddleware("velostore"))
	e.Pre(middleware.AddTrailingSlash())

	e.Validator = NewRequestValidator()

	apiGroup := e.Group("/api/")

	apiGroup.GET("queryLog/", ql.CountEndpoint)

	s.AddContentServices(apiGroup)
	s.AddProductServices(apiGroup)
	s.AddBlockServices(apiGroup)

	// Public pages
	e.GET("/p/:slug/", s.getPublicPage)

	// Version endpoint
	apiGroup.GET("version/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"version": version,
		})
	})

	// Health endpoint
	apiGroup.GET("_health/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	apiGroup.GET("metrics/", echoprometheus.NewHandler())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		slog.Info("Shutting down gracefully, press Ctrl+C again to force")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown", "err", err)
		}
		os.Exit(0)
	}()

	if err := e.Start(cfg.ListenAddress); err != nil && err != http.ErrServerClosed {
		slog.Error("Server start", "err", err)
		os.Exit(1)
	}
}

// Пакет предоставляет клиент внешнего каталога товаров. Используется как
// источник карточек для сетки товаров, когда витрина работает поверх
// отдельного товарного сервиса.
//
// Основные возможности:
//   - Получение списка опубликованных товаров с повторами при сетевых сбоях.
//   - Авторизация по bearer-токену.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/apierrors"
	"github.com/aisa-it/velostore/velostore.go/internal/velostore/dto"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient создает клиент каталога. baseURL - корень API каталога,
// token - bearer-токен, пустой токен допустим для открытых каталогов.
func NewClient(baseURL, token string) *Client {
	cl := retryablehttp.NewClient()
	cl.RetryMax = 3
	cl.RetryWaitMin = time.Second
	cl.Logger = slog.Default()

	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    cl.StandardClient(),
	}
}

// Products возвращает опубликованные товары каталога. Реализует источник
// товаров для селектора сетки.
func (c *Client) Products(ctx context.Context) ([]dto.ProductCard, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products/", nil)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apierrors.ErrCatalogUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Error("Catalog returned unexpected status", "status", resp.StatusCode)
		return nil, apierrors.ErrCatalogUnavailable
	}

	var products []dto.ProductCard
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	return products, nil
}

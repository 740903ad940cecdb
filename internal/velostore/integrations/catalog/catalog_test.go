package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/apierrors"
)

func TestProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products/" {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"a","name":"Модель A","slug":"model-a","price":9990000}]`))
	}))
	defer srv.Close()

	cl := NewClient(srv.URL, "secret")
	products, err := cl.Products(context.Background())
	if err != nil {
		t.Fatalf("Products failed: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Модель A" {
		t.Errorf("products = %+v", products)
	}
}

func TestProductsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	cl := NewClient(srv.URL, "")
	if _, err := cl.Products(context.Background()); !errors.Is(err, apierrors.ErrCatalogUnavailable) {
		t.Errorf("err = %v, want ErrCatalogUnavailable", err)
	}
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelvinmusselli/favoriteProducts/internal/favorite/domain"
	"github.com/kelvinmusselli/favoriteProducts/internal/favorite/repository"
	"github.com/kelvinmusselli/favoriteProducts/pkg/auth"
)

type stubGate struct {
	known map[uint]bool
}

func (g *stubGate) Resolve(ctx context.Context, productID uint) (*domain.Product, error) {
	if !g.known[productID] {
		return nil, domain.ErrProductNotFound
	}
	return &domain.Product{ID: productID, Title: "Widget", Price: 9.90}, nil
}

func setupRouter(t *testing.T, gate domain.ProductGate) *mux.Router {
	t.Helper()
	repo := repository.NewMemoryFavoriteRepository()
	handler := NewFavoriteHandler(repo, gate, nil)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func doRequest(t *testing.T, router *mux.Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	token, err := auth.GenerateToken(7, "tester@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["message"]
}

func TestFavoriteLifecycleEndpoint(t *testing.T) {
	router := setupRouter(t, nil)
	path := "/customers/7/products/42/favorites"

	rec := doRequest(t, router, "POST", path)
	require.Equal(t, http.StatusCreated, rec.Code)

	var favorite domain.Favorite
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &favorite))
	assert.Equal(t, uint(7), favorite.CustomerID)
	assert.Equal(t, uint(42), favorite.ProductID)

	// Favoriting the same pair again is a duplicate
	rec = doRequest(t, router, "POST", path)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "The product already exists on the customers favorite list!", decodeMessage(t, rec))

	// Un-favoriting succeeds, and is idempotent
	rec = doRequest(t, router, "DELETE", path)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, "DELETE", path)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAddFavoriteUnknownProductEndpoint(t *testing.T) {
	router := setupRouter(t, &stubGate{known: map[uint]bool{42: true}})

	rec := doRequest(t, router, "POST", "/customers/7/products/99/favorites")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found!", decodeMessage(t, rec))

	rec = doRequest(t, router, "POST", "/customers/7/products/42/favorites")
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestListFavoritesEndpoint(t *testing.T) {
	router := setupRouter(t, nil)

	for _, productID := range []string{"1", "2", "3"} {
		rec := doRequest(t, router, "POST", "/customers/7/products/"+productID+"/favorites")
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(t, router, "GET", "/customers/7/favorites")
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Data     []domain.Favorite `json:"data"`
		Page     int               `json:"page"`
		PerPage  int               `json:"perPage"`
		LastPage int               `json:"lastPage"`
		Total    int64             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PerPage)
	assert.Equal(t, 1, page.LastPage)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Data, 3)
}

func TestFavoriteEndpointsRequireAuth(t *testing.T) {
	router := setupRouter(t, nil)

	req := httptest.NewRequest("POST", "/customers/7/products/42/favorites", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFavoriteInvalidIDs(t *testing.T) {
	router := setupRouter(t, nil)

	rec := doRequest(t, router, "POST", "/customers/abc/products/42/favorites")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, "POST", "/customers/7/products/abc/favorites")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

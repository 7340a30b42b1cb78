package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelvinmusselli/favoriteProducts/internal/favorite/domain"
	"github.com/kelvinmusselli/favoriteProducts/internal/favorite/repository"
)

func seedFavorites(t *testing.T, repo domain.FavoriteRepository, customerID uint, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		err := repo.Create(context.Background(), &domain.Favorite{
			CustomerID: customerID,
			ProductID:  uint(i),
		})
		require.NoError(t, err)
	}
}

func TestListFavoritesDefaults(t *testing.T) {
	repo := repository.NewMemoryFavoriteRepository()
	seedFavorites(t, repo, 7, 12)
	handler := NewListFavoritesHandler(repo)

	page, err := handler.Handle(context.Background(), ListFavoritesQuery{CustomerID: 7})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PerPage)
	assert.Equal(t, 2, page.LastPage)
	assert.Equal(t, int64(12), page.Total)
	assert.Len(t, page.Data, 10)
}

func TestListFavoritesScopedToCustomer(t *testing.T) {
	repo := repository.NewMemoryFavoriteRepository()
	seedFavorites(t, repo, 7, 3)
	seedFavorites(t, repo, 8, 5)
	handler := NewListFavoritesHandler(repo)

	page, err := handler.Handle(context.Background(), ListFavoritesQuery{CustomerID: 7})

	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	for _, f := range page.Data {
		assert.Equal(t, uint(7), f.CustomerID)
	}
}

func TestListFavoritesEmpty(t *testing.T) {
	repo := repository.NewMemoryFavoriteRepository()
	handler := NewListFavoritesHandler(repo)

	page, err := handler.Handle(context.Background(), ListFavoritesQuery{CustomerID: 7})

	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 1, page.LastPage)
}

func TestListFavoritesPerPage(t *testing.T) {
	repo := repository.NewMemoryFavoriteRepository()
	seedFavorites(t, repo, 7, 12)
	handler := NewListFavoritesHandler(repo)

	page, err := handler.Handle(context.Background(), ListFavoritesQuery{
		CustomerID: 7,
		Page:       "2",
		PerPage:    "5",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.PerPage)
	assert.Equal(t, 3, page.LastPage)
	assert.Len(t, page.Data, 5)
}

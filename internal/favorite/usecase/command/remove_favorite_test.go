package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelvinmusselli/favoriteProducts/internal/favorite/domain"
	"github.com/kelvinmusselli/favoriteProducts/internal/favorite/repository"
)

func TestRemoveFavorite(t *testing.T) {
	repo := repository.NewMemoryFavoriteRepository()
	addHandler := NewAddFavoriteHandler(repo, nil, nil)
	removeHandler := NewRemoveFavoriteHandler(repo)

	_, err := addHandler.Handle(context.Background(), AddFavoriteCommand{CustomerID: 7, ProductID: 42})
	require.NoError(t, err)

	err = removeHandler.Handle(context.Background(), RemoveFavoriteCommand{CustomerID: 7, ProductID: 42})
	require.NoError(t, err)

	favorite, err := repo.FindByPair(context.Background(), 7, 42)
	require.NoError(t, err)
	assert.Nil(t, favorite)
}

func TestRemoveFavoriteIdempotent(t *testing.T) {
	repo := repository.NewMemoryFavoriteRepository()
	handler := NewRemoveFavoriteHandler(repo)

	// Un-favoriting a pair that was never favorited succeeds
	err := handler.Handle(context.Background(), RemoveFavoriteCommand{CustomerID: 7, ProductID: 42})
	assert.NoError(t, err)

	// And removing twice is just as fine
	err = handler.Handle(context.Background(), RemoveFavoriteCommand{CustomerID: 7, ProductID: 42})
	assert.NoError(t, err)
}

func TestRemoveFavoriteInvalidInput(t *testing.T) {
	repo := repository.NewMemoryFavoriteRepository()
	handler := NewRemoveFavoriteHandler(repo)

	err := handler.Handle(context.Background(), RemoveFavoriteCommand{CustomerID: 0, ProductID: 42})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRemoveThenRefavorite(t *testing.T) {
	repo := repository.NewMemoryFavoriteRepository()
	addHandler := NewAddFavoriteHandler(repo, nil, nil)
	removeHandler := NewRemoveFavoriteHandler(repo)

	_, err := addHandler.Handle(context.Background(), AddFavoriteCommand{CustomerID: 7, ProductID: 42})
	require.NoError(t, err)
	require.NoError(t, removeHandler.Handle(context.Background(), RemoveFavoriteCommand{CustomerID: 7, ProductID: 42}))

	// The pair is free again after removal
	_, err = addHandler.Handle(context.Background(), AddFavoriteCommand{CustomerID: 7, ProductID: 42})
	assert.NoError(t, err)
}

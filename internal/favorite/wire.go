//go:build wireinject
// +build wireinject

package favorite

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	httpdelivery "github.com/kelvinmusselli/favoriteProducts/internal/favorite/delivery/http"
	"github.com/kelvinmusselli/favoriteProducts/internal/favorite/domain"
	"github.com/kelvinmusselli/favoriteProducts/internal/favorite/repository"
	"github.com/kelvinmusselli/favoriteProducts/internal/favorite/usecase/command"
)

// ProvideFavoriteRepository provides the favorite repository wrapped
// with tracing
func ProvideFavoriteRepository(db *gorm.DB) domain.FavoriteRepository {
	return repository.NewTracingFavoriteRepository(repository.NewGormFavoriteRepository(db))
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideFavoriteRepository,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, gate domain.ProductGate, publisher command.ProductFavoritedPublisher) *httpdelivery.FavoriteHandler {
	wire.Build(
		RepositorySet,
		httpdelivery.NewFavoriteHandler,
	)
	return nil
}

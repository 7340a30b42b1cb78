//go:build wireinject
// +build wireinject

package customer

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	httpdelivery "github.com/kelvinmusselli/favoriteProducts/internal/customer/delivery/http"
	"github.com/kelvinmusselli/favoriteProducts/internal/customer/domain"
	"github.com/kelvinmusselli/favoriteProducts/internal/customer/repository"
)

// ProvideCustomerRepository provides the customer repository wrapped
// with tracing
func ProvideCustomerRepository(db *gorm.DB) domain.CustomerRepository {
	return repository.NewTracingCustomerRepository(repository.NewGormCustomerRepository(db))
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCustomerRepository,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, events httpdelivery.EventPublisher) *httpdelivery.CustomerHandler {
	wire.Build(
		RepositorySet,
		httpdelivery.NewCustomerHandler,
	)
	return nil
}

package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrAlreadyFavorited = errors.New("product already on the favorite list")
	ErrProductNotFound  = errors.New("product not found")
)

// Favorite links a customer to a product on their favorite list.
// Links are immutable once created.
type Favorite struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CustomerID uint      `json:"customer_id" gorm:"uniqueIndex:idx_customer_product;not null"`
	ProductID  uint      `json:"product_id" gorm:"uniqueIndex:idx_customer_product;not null"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Favorite) TableName() string {
	return "customer_favorite_products"
}

// Product is the catalog record resolved by the product gate. The
// catalog owns products; only the identifier matters here.
type Product struct {
	ID    uint    `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

// ProductGate resolves a product reference against the external catalog
// before a favorite link is created. Returns ErrProductNotFound for an
// unknown product.
type ProductGate interface {
	Resolve(ctx context.Context, productID uint) (*Product, error)
}

// FavoriteRepository defines the contract for favorite link data access.
// Create returns ErrAlreadyFavorited when the (customer, product) unique
// index fires. Delete is a no-op when the pair does not exist.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *Favorite) error
	FindByPair(ctx context.Context, customerID, productID uint) (*Favorite, error)
	FindByCustomer(ctx context.Context, customerID uint, limit, offset int) ([]Favorite, error)
	Delete(ctx context.Context, customerID, productID uint) error
	DeleteByCustomer(ctx context.Context, customerID uint) error
	CountByCustomer(ctx context.Context, customerID uint) (int64, error)
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kelvinmusselli/favoriteProducts/internal/favorite/domain"
)

// GormFavoriteRepository implements FavoriteRepository using GORM
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewGormFavoriteRepository creates a new GORM favorite repository
func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// Create inserts a favorite link. The composite unique index on
// (customer_id, product_id) is the source of truth under concurrency.
func (r *GormFavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyFavorited
		}
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

// FindByPair retrieves a favorite link by its (customer, product) pair
func (r *GormFavoriteRepository) FindByPair(ctx context.Context, customerID, productID uint) (*domain.Favorite, error) {
	var favorite domain.Favorite
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find favorite: %w", err)
	}
	return &favorite, nil
}

// FindByCustomer retrieves a customer's favorite links in insertion order
func (r *GormFavoriteRepository) FindByCustomer(ctx context.Context, customerID uint, limit, offset int) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	query := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to find favorites: %w", err)
	}
	return favorites, nil
}

// Delete removes a favorite link. Removing a pair that does not exist
// succeeds; un-favoriting is idempotent.
func (r *GormFavoriteRepository) Delete(ctx context.Context, customerID, productID uint) error {
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Delete(&domain.Favorite{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return nil
}

// DeleteByCustomer removes every favorite link of a customer
func (r *GormFavoriteRepository) DeleteByCustomer(ctx context.Context, customerID uint) error {
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&domain.Favorite{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete favorites: %w", err)
	}
	return nil
}

// CountByCustomer returns the number of favorite links of a customer
func (r *GormFavoriteRepository) CountByCustomer(ctx context.Context, customerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return count, nil
}

// AutoMigrate runs database migrations
func (r *GormFavoriteRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Favorite{})
}

package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kelvinmusselli/favoriteProducts/internal/favorite/domain"
)

type pairKey struct {
	customerID uint
	productID  uint
}

// MemoryFavoriteRepository is an in-memory FavoriteRepository enforcing
// the same pair uniqueness the composite database index does.
type MemoryFavoriteRepository struct {
	mu        sync.RWMutex
	favorites map[pairKey]domain.Favorite
	nextID    uint
}

// NewMemoryFavoriteRepository creates an empty in-memory repository
func NewMemoryFavoriteRepository() *MemoryFavoriteRepository {
	return &MemoryFavoriteRepository{
		favorites: make(map[pairKey]domain.Favorite),
		nextID:    1,
	}
}

func (r *MemoryFavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey{favorite.CustomerID, favorite.ProductID}
	if _, ok := r.favorites[key]; ok {
		return domain.ErrAlreadyFavorited
	}

	favorite.ID = r.nextID
	r.nextID++
	if favorite.CreatedAt.IsZero() {
		favorite.CreatedAt = time.Now()
	}
	r.favorites[key] = *favorite
	return nil
}

func (r *MemoryFavoriteRepository) FindByPair(ctx context.Context, customerID, productID uint) (*domain.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.favorites[pairKey{customerID, productID}]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (r *MemoryFavoriteRepository) FindByCustomer(ctx context.Context, customerID uint, limit, offset int) ([]domain.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.Favorite, 0)
	for _, f := range r.favorites {
		if f.CustomerID == customerID {
			list = append(list, f)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })

	if offset >= len(list) {
		return []domain.Favorite{}, nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (r *MemoryFavoriteRepository) Delete(ctx context.Context, customerID, productID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.favorites, pairKey{customerID, productID})
	return nil
}

func (r *MemoryFavoriteRepository) DeleteByCustomer(ctx context.Context, customerID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.favorites {
		if key.customerID == customerID {
			delete(r.favorites, key)
		}
	}
	return nil
}

func (r *MemoryFavoriteRepository) CountByCustomer(ctx context.Context, customerID uint) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, f := range r.favorites {
		if f.CustomerID == customerID {
			count++
		}
	}
	return count, nil
}

package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kelvinmusselli/favoriteProducts/internal/customer/domain"
)

// MemoryCustomerRepository is an in-memory CustomerRepository. It enforces
// the same email uniqueness the database index does, so services behave
// identically when running against it in tests and local setups.
type MemoryCustomerRepository struct {
	mu        sync.RWMutex
	customers map[uint]domain.Customer
	nextID    uint
}

// NewMemoryCustomerRepository creates an empty in-memory repository
func NewMemoryCustomerRepository() *MemoryCustomerRepository {
	return &MemoryCustomerRepository{
		customers: make(map[uint]domain.Customer),
		nextID:    1,
	}
}

func (r *MemoryCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.customers {
		if c.Email == customer.Email {
			return domain.ErrDuplicateEmail
		}
	}

	customer.ID = r.nextID
	r.nextID++
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now()
		customer.UpdatedAt = customer.CreatedAt
	}
	r.customers[customer.ID] = *customer
	return nil
}

func (r *MemoryCustomerRepository) FindByID(ctx context.Context, id uint) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *MemoryCustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if c.Email == email {
			found := c
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryCustomerRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	if offset >= len(all) {
		return []domain.Customer{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *MemoryCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[customer.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, c := range r.customers {
		if c.Email == customer.Email && c.ID != customer.ID {
			return domain.ErrDuplicateEmail
		}
	}
	r.customers[customer.ID] = *customer
	return nil
}

func (r *MemoryCustomerRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.customers, id)
	return nil
}

func (r *MemoryCustomerRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.customers)), nil
}

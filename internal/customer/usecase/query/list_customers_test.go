package query

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelvinmusselli/favoriteProducts/internal/customer/domain"
	"github.com/kelvinmusselli/favoriteProducts/internal/customer/repository"
)

func seedCustomers(t *testing.T, repo domain.CustomerRepository, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		err := repo.Create(context.Background(), &domain.Customer{
			Name:      fmt.Sprintf("Customer %d", i),
			Email:     fmt.Sprintf("customer%d@x.com", i),
			Password:  "hashed",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
		require.NoError(t, err)
	}
}

func TestListCustomersDefaults(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository()
	seedCustomers(t, repo, 12)
	handler := NewListCustomersHandler(repo)

	page, err := handler.Handle(context.Background(), ListCustomersQuery{})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PerPage)
	assert.Equal(t, 2, page.LastPage)
	assert.Equal(t, int64(12), page.Total)
	assert.Len(t, page.Data, 10)
}

func TestListCustomersSecondPage(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository()
	seedCustomers(t, repo, 12)
	handler := NewListCustomersHandler(repo)

	page, err := handler.Handle(context.Background(), ListCustomersQuery{Page: "2"})

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.PerPage)
	assert.Len(t, page.Data, 2)
	// Ordered by id ascending, so page 2 starts at the 11th record
	assert.Equal(t, uint(11), page.Data[0].ID)
}

func TestListCustomersPerPage(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository()
	seedCustomers(t, repo, 12)
	handler := NewListCustomersHandler(repo)

	page, err := handler.Handle(context.Background(), ListCustomersQuery{PerPage: "5"})

	require.NoError(t, err)
	assert.Equal(t, 5, page.PerPage)
	assert.Equal(t, 3, page.LastPage)
	assert.Len(t, page.Data, 5)
}

func TestListCustomersInvalidParamsFallBack(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository()
	seedCustomers(t, repo, 3)
	handler := NewListCustomersHandler(repo)

	for _, raw := range []string{"abc", "-1", "0", ""} {
		page, err := handler.Handle(context.Background(), ListCustomersQuery{Page: raw, PerPage: raw})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.PerPage)
	}
}

func TestListCustomersEmpty(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository()
	handler := NewListCustomersHandler(repo)

	page, err := handler.Handle(context.Background(), ListCustomersQuery{})

	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, int64(0), page.Total)
	// An empty listing still reports one page
	assert.Equal(t, 1, page.LastPage)
}

func TestListCustomersPageBeyondEnd(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository()
	seedCustomers(t, repo, 3)
	handler := NewListCustomersHandler(repo)

	page, err := handler.Handle(context.Background(), ListCustomersQuery{Page: "5"})

	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Equal(t, 5, page.Page)
	assert.Equal(t, int64(3), page.Total)
}

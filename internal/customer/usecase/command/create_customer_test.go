package command

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelvinmusselli/favoriteProducts/internal/customer/domain"
	"github.com/kelvinmusselli/favoriteProducts/internal/customer/repository"
	"github.com/kelvinmusselli/favoriteProducts/pkg/auth"
)

// racingCustomerRepo simulates a concurrent writer: the email is absent
// at pre-check time but the unique index fires on insert.
type racingCustomerRepo struct {
	domain.CustomerRepository
}

func (r *racingCustomerRepo) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return nil, domain.ErrNotFound
}

func (r *racingCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	return fmt.Errorf("insert customers: %w", domain.ErrDuplicateEmail)
}

type capturingPublisher struct {
	createdIDs []uint
	deletedIDs []uint
}

func (p *capturingPublisher) PublishCustomerCreated(ctx context.Context, customerID uint, email string) error {
	p.createdIDs = append(p.createdIDs, customerID)
	return nil
}

func (p *capturingPublisher) PublishCustomerDeleted(ctx context.Context, customerID uint) error {
	p.deletedIDs = append(p.deletedIDs, customerID)
	return nil
}

func TestCreateCustomer(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository()
	handler := NewCreateCustomerHandler(repo, nil)

	customer, err := handler.Handle(context.Background(), CreateCustomerCommand{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotZero(t, customer.ID)
	assert.Equal(t, "Ana", customer.Name)
	assert.Equal(t, "ana@x.com", customer.Email)
	assert.NotEqual(t, "secret123", customer.Password)
	assert.True(t, auth.CheckPassword(customer.Password, "secret123"))
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository()
	handler := NewCreateCustomerHandler(repo, nil)

	_, err := handler.Handle(context.Background(), CreateCustomerCommand{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), CreateCustomerCommand{
		Name:     "Bia",
		Email:    "ana@x.com",
		Password: "secret456",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestCreateCustomerDuplicateEmailOnInsert(t *testing.T) {
	repo := &racingCustomerRepo{CustomerRepository: repository.NewMemoryCustomerRepository()}
	handler := NewCreateCustomerHandler(repo, nil)

	// The pre-check sees no row, so the unique-index violation from the
	// store must still report as a duplicate, not a registration failure.
	_, err := handler.Handle(context.Background(), CreateCustomerCommand{
		Name:     "Bia",
		Email:    "ana@x.com",
		Password: "secret456",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	assert.NotErrorIs(t, err, domain.ErrRegistration)
}

func TestCreateCustomerValidation(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository()
	handler := NewCreateCustomerHandler(repo, nil)

	tests := []struct {
		name string
		cmd  CreateCustomerCommand
	}{
		{"missing name", CreateCustomerCommand{Email: "a@x.com", Password: "secret123"}},
		{"missing email", CreateCustomerCommand{Name: "Ana", Password: "secret123"}},
		{"invalid email", CreateCustomerCommand{Name: "Ana", Email: "not-an-email", Password: "secret123"}},
		{"missing password", CreateCustomerCommand{Name: "Ana", Email: "a@x.com"}},
		{"short password", CreateCustomerCommand{Name: "Ana", Email: "a@x.com", Password: "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(context.Background(), tt.cmd)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreateCustomerPublishesEvent(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository()
	publisher := &capturingPublisher{}
	handler := NewCreateCustomerHandler(repo, publisher)

	customer, err := handler.Handle(context.Background(), CreateCustomerCommand{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	require.Len(t, publisher.createdIDs, 1)
	assert.Equal(t, customer.ID, publisher.createdIDs[0])
}

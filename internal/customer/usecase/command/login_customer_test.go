package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelvinmusselli/favoriteProducts/internal/customer/repository"
	"github.com/kelvinmusselli/favoriteProducts/pkg/auth"
)

func TestLoginCustomer(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository()
	customer := seedCustomer(t, repo, "Ana", "ana@x.com")
	handler := NewLoginCustomerHandler(repo)

	response, err := handler.Handle(context.Background(), LoginCustomerCommand{
		Email:    "ana@x.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, customer.ID, response.Customer.ID)

	claims, err := auth.ValidateToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, claims.CustomerID)
	assert.Equal(t, "ana@x.com", claims.Email)
}

func TestLoginCustomerWrongPassword(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository()
	seedCustomer(t, repo, "Ana", "ana@x.com")
	handler := NewLoginCustomerHandler(repo)

	_, err := handler.Handle(context.Background(), LoginCustomerCommand{
		Email:    "ana@x.com",
		Password: "wrong-password",
	})
	assert.EqualError(t, err, "invalid credentials")
}

func TestLoginCustomerUnknownEmail(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository()
	handler := NewLoginCustomerHandler(repo)

	_, err := handler.Handle(context.Background(), LoginCustomerCommand{
		Email:    "ghost@x.com",
		Password: "secret123",
	})
	assert.EqualError(t, err, "invalid credentials")
}

package command

import (
	"context"
	"fmt"

	"github.com/kelvinmusselli/favoriteProducts/internal/customer/domain"
	"github.com/kelvinmusselli/favoriteProducts/pkg/auth"
)

// LoginCustomerCommand represents the command to authenticate a customer
type LoginCustomerCommand struct {
	Email    string
	Password string
}

// LoginResponse carries the issued token and the authenticated customer
type LoginResponse struct {
	Token    string           `json:"token"`
	Customer *domain.Customer `json:"customer"`
}

// LoginCustomerHandler handles customer login
type LoginCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewLoginCustomerHandler creates a new login handler
func NewLoginCustomerHandler(repo domain.CustomerRepository) *LoginCustomerHandler {
	return &LoginCustomerHandler{repo: repo}
}

// Handle executes the login command
func (h *LoginCustomerHandler) Handle(ctx context.Context, cmd LoginCustomerCommand) (*LoginResponse, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, fmt.Errorf("invalid credentials")
	}

	customer, err := h.repo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if !auth.CheckPassword(customer.Password, cmd.Password) {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := auth.GenerateToken(customer.ID, customer.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{Token: token, Customer: customer}, nil
}

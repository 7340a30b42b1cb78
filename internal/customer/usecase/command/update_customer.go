package command

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/kelvinmusselli/favoriteProducts/internal/customer/domain"
	"github.com/kelvinmusselli/favoriteProducts/pkg/auth"
)

// UpdateCustomerCommand represents the command to update a customer.
// Empty fields are left unchanged.
type UpdateCustomerCommand struct {
	ID       uint
	Name     string
	Email    string
	Password string
}

// UpdateCustomerHandler handles customer update
type UpdateCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewUpdateCustomerHandler creates a new update customer handler
func NewUpdateCustomerHandler(repo domain.CustomerRepository) *UpdateCustomerHandler {
	return &UpdateCustomerHandler{repo: repo}
}

// Handle executes the update customer command
func (h *UpdateCustomerHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) (*domain.Customer, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("%w: invalid customer id", domain.ErrInvalidInput)
	}

	customer, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}

	if cmd.Email != "" && cmd.Email != customer.Email {
		if _, err := mail.ParseAddress(cmd.Email); err != nil {
			return nil, fmt.Errorf("%w: email is not valid", domain.ErrInvalidInput)
		}
		// Uniqueness excludes the record being updated
		if existing, _ := h.repo.FindByEmail(ctx, cmd.Email); existing != nil && existing.ID != cmd.ID {
			return nil, domain.ErrDuplicateEmail
		}
		customer.Email = cmd.Email
	}
	if cmd.Name != "" {
		customer.Name = cmd.Name
	}
	if cmd.Password != "" {
		hashedPassword, err := auth.HashPassword(cmd.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		customer.Password = hashedPassword
	}
	customer.UpdatedAt = time.Now()

	if err := h.repo.Update(ctx, customer); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return customer, nil
}

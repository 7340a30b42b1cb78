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

// CreateCustomerCommand represents the command to register a new customer
type CreateCustomerCommand struct {
	Name     string
	Email    string
	Password string
}

// CustomerCreatedPublisher emits the customer.created event
type CustomerCreatedPublisher interface {
	PublishCustomerCreated(ctx context.Context, customerID uint, email string) error
}

// CreateCustomerHandler handles customer registration
type CreateCustomerHandler struct {
	repo   domain.CustomerRepository
	events CustomerCreatedPublisher // optional
}

// NewCreateCustomerHandler creates a new create customer handler
func NewCreateCustomerHandler(repo domain.CustomerRepository, events CustomerCreatedPublisher) *CreateCustomerHandler {
	return &CreateCustomerHandler{repo: repo, events: events}
}

// Handle executes the create customer command
func (h *CreateCustomerHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*domain.Customer, error) {
	// Validation
	if cmd.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if cmd.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(cmd.Email); err != nil {
		return nil, fmt.Errorf("%w: email is not valid", domain.ErrInvalidInput)
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}
	if len(cmd.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", domain.ErrInvalidInput)
	}

	// Pre-check gives the friendly error in the non-racing case; the
	// unique index decides under concurrency.
	if existing, _ := h.repo.FindByEmail(ctx, cmd.Email); existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	hashedPassword, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRegistration, err)
	}

	customer := &domain.Customer{
		Name:      cmd.Name,
		Email:     cmd.Email,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.repo.Create(ctx, customer); err != nil {
		// A concurrent writer that slipped past the pre-check fires the
		// unique index and still reports as a duplicate.
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrRegistration, err)
	}

	if h.events != nil {
		// Event delivery is best-effort; the publisher logs failures.
		_ = h.events.PublishCustomerCreated(ctx, customer.ID, customer.Email)
	}

	return customer, nil
}

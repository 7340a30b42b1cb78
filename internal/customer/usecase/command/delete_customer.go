package command

import (
	"context"
	"fmt"

	"github.com/kelvinmusselli/favoriteProducts/internal/customer/domain"
)

// DeleteCustomerCommand represents the command to delete a customer
type DeleteCustomerCommand struct {
	ID uint
}

// CustomerDeletedPublisher emits the customer.deleted event
type CustomerDeletedPublisher interface {
	PublishCustomerDeleted(ctx context.Context, customerID uint) error
}

// DeleteCustomerHandler handles customer deletion
type DeleteCustomerHandler struct {
	repo   domain.CustomerRepository
	events CustomerDeletedPublisher // optional
}

// NewDeleteCustomerHandler creates a new delete customer handler
func NewDeleteCustomerHandler(repo domain.CustomerRepository, events CustomerDeletedPublisher) *DeleteCustomerHandler {
	return &DeleteCustomerHandler{repo: repo, events: events}
}

// Handle executes the delete customer command. Deletion is final; the
// customer's favorite links are cleaned up asynchronously by the
// customer.deleted event consumer.
func (h *DeleteCustomerHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("%w: invalid customer id", domain.ErrInvalidInput)
	}

	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return err
	}

	if h.events != nil {
		_ = h.events.PublishCustomerDeleted(ctx, cmd.ID)
	}

	return nil
}

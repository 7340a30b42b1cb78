package command

import (
	"context"
	"fmt"

	"github.com/kelvinmusselli/favoriteProducts/internal/favorite/domain"
	"github.com/kelvinmusselli/favoriteProducts/pkg/logger"
)

// RemoveFavoriteCommand represents the remove favorite command
type RemoveFavoriteCommand struct {
	CustomerID uint
	ProductID  uint
}

// RemoveFavoriteHandler handles removing a product from a favorite list
type RemoveFavoriteHandler struct {
	repo domain.FavoriteRepository
}

// NewRemoveFavoriteHandler creates a new remove favorite handler
func NewRemoveFavoriteHandler(repo domain.FavoriteRepository) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{repo: repo}
}

// Handle executes the remove favorite command. Removing a pair that was
// never favorited succeeds; the operation is idempotent.
func (h *RemoveFavoriteHandler) Handle(ctx context.Context, cmd RemoveFavoriteCommand) error {
	if cmd.CustomerID == 0 || cmd.ProductID == 0 {
		return fmt.Errorf("%w: customer and product are required", domain.ErrInvalidInput)
	}

	if err := h.repo.Delete(ctx, cmd.CustomerID, cmd.ProductID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	logger.Info(ctx).
		Uint("customer_id", cmd.CustomerID).
		Uint("product_id", cmd.ProductID).
		Msg("Product unfavorited")

	return nil
}

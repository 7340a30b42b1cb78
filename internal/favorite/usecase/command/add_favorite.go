package command

import (
	"context"
	"fmt"

	"github.com/kelvinmusselli/favoriteProducts/internal/favorite/domain"
	"github.com/kelvinmusselli/favoriteProducts/pkg/logger"
)

// AddFavoriteCommand represents the add favorite command
type AddFavoriteCommand struct {
	CustomerID uint
	ProductID  uint
}

// ProductFavoritedPublisher publishes product favorited events
type ProductFavoritedPublisher interface {
	PublishProductFavorited(ctx context.Context, customerID, productID uint) error
}

// AddFavoriteHandler handles adding a product to a customer's favorite list
type AddFavoriteHandler struct {
	repo      domain.FavoriteRepository
	gate      domain.ProductGate
	publisher ProductFavoritedPublisher
}

// NewAddFavoriteHandler creates a new add favorite handler
func NewAddFavoriteHandler(repo domain.FavoriteRepository, gate domain.ProductGate, publisher ProductFavoritedPublisher) *AddFavoriteHandler {
	return &AddFavoriteHandler{repo: repo, gate: gate, publisher: publisher}
}

// Handle executes the add favorite command
func (h *AddFavoriteHandler) Handle(ctx context.Context, cmd AddFavoriteCommand) (*domain.Favorite, error) {
	if cmd.CustomerID == 0 || cmd.ProductID == 0 {
		return nil, fmt.Errorf("%w: customer and product are required", domain.ErrInvalidInput)
	}

	// The catalog owns products; an unknown reference never becomes a link.
	if h.gate != nil {
		if _, err := h.gate.Resolve(ctx, cmd.ProductID); err != nil {
			return nil, err
		}
	}

	// Advisory pre-check. The composite unique index decides under
	// concurrency and Create translates the violation.
	if existing, _ := h.repo.FindByPair(ctx, cmd.CustomerID, cmd.ProductID); existing != nil {
		return nil, domain.ErrAlreadyFavorited
	}

	favorite := &domain.Favorite{
		CustomerID: cmd.CustomerID,
		ProductID:  cmd.ProductID,
	}
	if err := h.repo.Create(ctx, favorite); err != nil {
		return nil, err
	}

	if h.publisher != nil {
		if err := h.publisher.PublishProductFavorited(ctx, cmd.CustomerID, cmd.ProductID); err != nil {
			logger.Error(ctx).Err(err).Msg("Failed to publish product favorited event")
		}
	}

	logger.Info(ctx).
		Uint("customer_id", cmd.CustomerID).
		Uint("product_id", cmd.ProductID).
		Msg("Product favorited")

	return favorite, nil
}

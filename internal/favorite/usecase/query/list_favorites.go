package query

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kelvinmusselli/favoriteProducts/internal/favorite/domain"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// ListFavoritesQuery carries the customer and raw pagination parameters
type ListFavoritesQuery struct {
	CustomerID uint
	Page       string
	PerPage    string
}

// FavoritePage is the pagination envelope for favorite listings
type FavoritePage struct {
	Data     []domain.Favorite `json:"data"`
	Page     int               `json:"page"`
	PerPage  int               `json:"perPage"`
	LastPage int               `json:"lastPage"`
	Total    int64             `json:"total"`
}

// ListFavoritesHandler handles the paginated favorite listing
type ListFavoritesHandler struct {
	repo domain.FavoriteRepository
}

// NewListFavoritesHandler creates a new list favorites handler
func NewListFavoritesHandler(repo domain.FavoriteRepository) *ListFavoritesHandler {
	return &ListFavoritesHandler{repo: repo}
}

// Handle executes the list favorites query
func (h *ListFavoritesHandler) Handle(ctx context.Context, q ListFavoritesQuery) (*FavoritePage, error) {
	page := parsePositive(q.Page, DefaultPage)
	perPage := parsePositive(q.PerPage, DefaultPerPage)
	offset := (page - 1) * perPage

	favorites, err := h.repo.FindByCustomer(ctx, q.CustomerID, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	if favorites == nil {
		favorites = []domain.Favorite{}
	}

	total, err := h.repo.CountByCustomer(ctx, q.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count favorites: %w", err)
	}

	return &FavoritePage{
		Data:     favorites,
		Page:     page,
		PerPage:  perPage,
		LastPage: lastPage(total, perPage),
		Total:    total,
	}, nil
}

// parsePositive parses a positive integer, falling back to def for
// anything absent, non-numeric or not positive.
func parsePositive(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// lastPage is ceil(total/perPage), and 1 for an empty listing
func lastPage(total int64, perPage int) int {
	if total == 0 {
		return 1
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

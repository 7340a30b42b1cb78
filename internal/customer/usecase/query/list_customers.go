package query

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kelvinmusselli/favoriteProducts/internal/customer/domain"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// ListCustomersQuery carries the raw pagination parameters. Values that
// are absent or not positive integers fall back to the defaults.
type ListCustomersQuery struct {
	Page    string
	PerPage string
}

// CustomerPage is the pagination envelope for customer listings
type CustomerPage struct {
	Data     []domain.Customer `json:"data"`
	Page     int               `json:"page"`
	PerPage  int               `json:"perPage"`
	LastPage int               `json:"lastPage"`
	Total    int64             `json:"total"`
}

// ListCustomersHandler handles the paginated customer listing
type ListCustomersHandler struct {
	repo domain.CustomerRepository
}

// NewListCustomersHandler creates a new list customers handler
func NewListCustomersHandler(repo domain.CustomerRepository) *ListCustomersHandler {
	return &ListCustomersHandler{repo: repo}
}

// Handle executes the list customers query
func (h *ListCustomersHandler) Handle(ctx context.Context, q ListCustomersQuery) (*CustomerPage, error) {
	page := parsePositive(q.Page, DefaultPage)
	perPage := parsePositive(q.PerPage, DefaultPerPage)
	offset := (page - 1) * perPage

	customers, err := h.repo.FindAll(ctx, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		customers = []domain.Customer{}
	}

	total, err := h.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	return &CustomerPage{
		Data:     customers,
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

// lastPage is ceil(total/perPage), and 1 for an empty listing so the
// envelope never reports page 1 of 0.
func lastPage(total int64, perPage int) int {
	if total == 0 {
		return 1
	}
	last := int((total + int64(perPage) - 1) / int64(perPage))
	return last
}

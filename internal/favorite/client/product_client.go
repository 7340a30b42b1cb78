package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/kelvinmusselli/favoriteProducts/internal/favorite/domain"
	"github.com/kelvinmusselli/favoriteProducts/pkg/logger"
)

// ProductClient resolves product references against the catalog service
// over HTTP. It implements domain.ProductGate.
type ProductClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewProductClient creates a product client for the given catalog base URL
func NewProductClient(baseURL string) *ProductClient {
	return &ProductClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   5 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Resolve fetches a product by ID. An unknown product yields
// domain.ErrProductNotFound.
func (c *ProductClient) Resolve(ctx context.Context, productID uint) (*domain.Product, error) {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build product request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach product catalog: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrProductNotFound
	case resp.StatusCode != http.StatusOK:
		logger.Warn(ctx).
			Int("status", resp.StatusCode).
			Uint("product_id", productID).
			Msg("Unexpected product catalog response")
		return nil, fmt.Errorf("product catalog returned status %d", resp.StatusCode)
	}

	var product domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}
	return &product, nil
}

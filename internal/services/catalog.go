package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"agentic-backend/internal/models"
)

// CatalogService talks to the external catalog REST API (FakeStore-shaped:
// GET /products and GET /carts/{id}, JSON, no auth). Both operations are
// stateless; each call opens its own bounded-timeout connection.
type CatalogService struct {
	baseURL    string
	httpClient *http.Client
}

func NewCatalogService(baseURL string) *CatalogService {
	return &CatalogService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchProducts fetches the full product list and filters it locally by
// case-insensitive substring match against each title, keeping at most five
// hits in the service's original order.
func (s *CatalogService) SearchProducts(ctx context.Context, query string) (*models.ProductSearchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/products", nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("catalog returned status %d for product list", resp.StatusCode)
	}

	var items []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode product list: %w", err)
	}

	q := strings.ToLower(query)
	hits := make([]models.Product, 0, 5)
	for _, item := range items {
		if !strings.Contains(strings.ToLower(item.Title), q) {
			continue
		}
		hits = append(hits, item)
		if len(hits) == 5 {
			break
		}
	}

	return &models.ProductSearchResult{Query: query, Results: hits}, nil
}

// LookupOrder fetches a single cart by id. A 404 is a regular not-found
// outcome, not an error; any other non-2xx status propagates as a failure.
func (s *CatalogService) LookupOrder(ctx context.Context, orderID int) (*models.OrderLookupResult, error) {
	url := fmt.Sprintf("%s/carts/%d", s.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order %d: %w", orderID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &models.OrderLookupResult{OrderID: orderID, Found: false}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("catalog returned status %d for order %d", resp.StatusCode, orderID)
	}

	var cart json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart payload: %w", err)
	}

	return &models.OrderLookupResult{OrderID: orderID, Found: true, Cart: cart}, nil
}

package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const productsJSON = `[
	{"id": 1, "title": "Red Shirt", "price": 9.99, "category": "men's clothing"},
	{"id": 2, "title": "Blue Jeans", "price": 39.5, "category": "men's clothing"},
	{"id": 3, "title": "SHIRT deluxe", "price": 19.0, "category": "women's clothing"},
	{"id": 4, "title": "Plain T-Shirt", "price": 5.0, "category": "men's clothing"},
	{"id": 5, "title": "Gold Ring", "price": 120.0, "category": "jewelery"},
	{"id": 6, "title": "Shirt Classic", "price": 12.0, "category": "men's clothing"},
	{"id": 7, "title": "Longsleeve Shirt", "price": 14.0, "category": "men's clothing"},
	{"id": 8, "title": "Night Shirt", "price": 11.0, "category": "women's clothing"},
	{"id": 9, "title": "Summer Shirt", "price": 13.0, "category": "women's clothing"}
]`

func TestSearchProducts_FiltersAndTruncates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Errorf("Expected GET /products, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(productsJSON))
	}))
	defer srv.Close()

	result, err := NewCatalogService(srv.URL).SearchProducts(context.Background(), "shirt")
	if err != nil {
		t.Fatalf("SearchProducts failed: %v", err)
	}

	if result.Query != "shirt" {
		t.Errorf("Expected query echoed back, got %q", result.Query)
	}
	if len(result.Results) != 5 {
		t.Fatalf("Expected results truncated to 5, got %d", len(result.Results))
	}
	for _, p := range result.Results {
		if !strings.Contains(strings.ToLower(p.Title), "shirt") {
			t.Errorf("Result %q does not match query", p.Title)
		}
	}
	// Service ordering preserved: first match first.
	if result.Results[0].ID != 1 {
		t.Errorf("Expected first match id 1, got %d", result.Results[0].ID)
	}
	// Case-insensitive: the all-caps title made the cut.
	if result.Results[1].Title != "SHIRT deluxe" {
		t.Errorf("Expected case-insensitive match second, got %q", result.Results[1].Title)
	}
}

func TestSearchProducts_NoMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(productsJSON))
	}))
	defer srv.Close()

	result, err := NewCatalogService(srv.URL).SearchProducts(context.Background(), "lawnmower")
	if err != nil {
		t.Fatalf("SearchProducts failed: %v", err)
	}
	if len(result.Results) != 0 {
		t.Errorf("Expected no results, got %+v", result.Results)
	}
}

func TestSearchProducts_ServerErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewCatalogService(srv.URL).SearchProducts(context.Background(), "shirt")
	if err == nil {
		t.Fatal("Expected error for 502 response")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("Expected status in error, got %v", err)
	}
}

func TestLookupOrder_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/carts/3" {
			t.Errorf("Expected GET /carts/3, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 3, "userId": 1, "products": [{"productId": 1, "quantity": 2}]}`))
	}))
	defer srv.Close()

	result, err := NewCatalogService(srv.URL).LookupOrder(context.Background(), 3)
	if err != nil {
		t.Fatalf("LookupOrder failed: %v", err)
	}

	if !result.Found {
		t.Error("Expected found=true")
	}
	if result.OrderID != 3 {
		t.Errorf("Expected order id 3, got %d", result.OrderID)
	}

	var cart map[string]interface{}
	if err := json.Unmarshal(result.Cart, &cart); err != nil {
		t.Fatalf("Cart payload is not valid JSON: %v", err)
	}
	if cart["id"].(float64) != 3 {
		t.Errorf("Expected cart id 3, got %v", cart["id"])
	}
}

func TestLookupOrder_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	result, err := NewCatalogService(srv.URL).LookupOrder(context.Background(), 7)
	if err != nil {
		t.Fatalf("Expected 404 to be a regular outcome, got error: %v", err)
	}

	if result.Found {
		t.Error("Expected found=false for 404")
	}
	if result.Cart != nil {
		t.Errorf("Expected no cart payload, got %s", result.Cart)
	}

	encoded, _ := json.Marshal(result)
	if strings.Contains(string(encoded), "cart") {
		t.Errorf("Expected cart field omitted in JSON, got %s", encoded)
	}
}

func TestLookupOrder_ServerErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewCatalogService(srv.URL).LookupOrder(context.Background(), 7)
	if err == nil {
		t.Fatal("Expected error for 500 response")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("Expected status in error, got %v", err)
	}
}

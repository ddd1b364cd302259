package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/probuilddigital1-star/nourish/internal/provider/openfoodfacts"
	"github.com/probuilddigital1-star/nourish/internal/provider/usda"
	"github.com/probuilddigital1-star/nourish/internal/service"
)

func usdaServer(t *testing.T, body string) *usda.Client {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return &usda.Client{APIKey: "test-key", BaseURL: ts.URL, HTTPClient: ts.Client()}
}

func offServer(t *testing.T, body string) *openfoodfacts.Client {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return &openfoodfacts.Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
}

const usdaOneFood = `{
  "foods": [{
    "fdcId": 1,
    "description": "Chicken Breast",
    "gtinUpc": "12345678",
    "foodNutrients": [{"nutrientId": 1008, "value": 165}, {"nutrientId": 1003, "value": 31}]
  }]
}`

const offOneProduct = `{
  "products": [{
    "product_name": "Chicken Strips",
    "brands": "Tyson",
    "nutriments": {"energy-kcal_100g": 200, "proteins_100g": 20}
  }]
}`

func TestSearchFoodsPrefersUSDAThenFills(t *testing.T) {
	t.Parallel()
	clients := service.Clients{
		USDA:          usdaServer(t, usdaOneFood),
		OpenFoodFacts: offServer(t, offOneProduct),
	}

	records, err := service.SearchFoods(context.Background(), clients, "chicken", 5)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Source != service.ProviderUSDA {
		t.Errorf("first result source = %q", records[0].Source)
	}
	if records[1].Source != service.ProviderOpenFoodFacts {
		t.Errorf("second result source = %q", records[1].Source)
	}
	if records[0].Brand != "Generic" {
		t.Errorf("missing brand should map to Generic, got %q", records[0].Brand)
	}
}

func TestSearchFoodsSkipsUSDAWithoutKey(t *testing.T) {
	t.Parallel()
	clients := service.Clients{
		USDA:          &usda.Client{},
		OpenFoodFacts: offServer(t, offOneProduct),
	}

	records, err := service.SearchFoods(context.Background(), clients, "chicken", 5)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(records) != 1 || records[0].Source != service.ProviderOpenFoodFacts {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestSearchFoodsSurfacesErrorOnlyWhenEmpty(t *testing.T) {
	t.Parallel()
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(failing.Close)

	clients := service.Clients{
		USDA:          &usda.Client{APIKey: "test-key", BaseURL: failing.URL, HTTPClient: failing.Client()},
		OpenFoodFacts: offServer(t, offOneProduct),
	}
	records, err := service.SearchFoods(context.Background(), clients, "chicken", 5)
	if err != nil {
		t.Fatalf("partial failure must not error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	clients.OpenFoodFacts = &openfoodfacts.Client{BaseURL: failing.URL, HTTPClient: failing.Client()}
	if _, err := service.SearchFoods(context.Background(), clients, "chicken", 5); err == nil {
		t.Fatalf("total failure must error")
	}
}

func TestSearchFoodsRejectsEmptyQuery(t *testing.T) {
	t.Parallel()
	if _, err := service.SearchFoods(context.Background(), service.Clients{}, "  ", 5); err == nil {
		t.Fatalf("expected error for blank query")
	}
}

func TestLookupBarcodeFallsThroughToOpenFoodFacts(t *testing.T) {
	t.Parallel()
	clients := service.Clients{
		USDA: usdaServer(t, `{"foods": []}`),
		OpenFoodFacts: offServer(t, `{
  "status": 1,
  "product": {"product_name": "Granola Bar", "nutriments": {"energy-kcal_serving": 120}}
}`),
	}

	rec, err := service.LookupBarcode(context.Background(), clients, "12345678")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if rec.Name != "Granola Bar" || rec.Source != service.ProviderOpenFoodFacts {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestLookupBarcodeValidatesFormat(t *testing.T) {
	t.Parallel()
	for _, bad := range []string{"", "abc", "1234", "123456789012345"} {
		if _, err := service.LookupBarcode(context.Background(), service.Clients{}, bad); err == nil {
			t.Errorf("barcode %q should be rejected", bad)
		}
	}
}

func TestLookupBarcodeNoProviders(t *testing.T) {
	t.Parallel()
	if _, err := service.LookupBarcode(context.Background(), service.Clients{}, "12345678"); err == nil {
		t.Fatalf("expected error with no providers configured")
	}
}

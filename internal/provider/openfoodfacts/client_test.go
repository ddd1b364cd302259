package openfoodfacts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
}

func TestSearchSkipsProductsWithoutNameOrEnergy(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/cgi/search.pl") {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Errorf("missing User-Agent")
		}
		w.Write([]byte(`{
  "products": [
    {
      "product_name": "Peanut Butter",
      "brands": "Skippy, Hormel",
      "serving_quantity": 32,
      "serving_quantity_unit": "g",
      "nutriments": {
        "energy-kcal_serving": 190,
        "proteins_serving": 7,
        "carbohydrates_serving": 7,
        "fat_serving": 16
      }
    },
    {"product_name": "", "nutriments": {"energy-kcal_100g": 100}},
    {"product_name": "Water", "nutriments": {}}
  ]
}`))
	})

	foods, err := c.Search(context.Background(), "peanut butter", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(foods) != 1 {
		t.Fatalf("got %d foods, want 1", len(foods))
	}
	got := foods[0]
	if got.Calories != 190 || got.ProteinG != 7 || got.FatG != 16 {
		t.Errorf("per-serving macros wrong: %+v", got)
	}
	if got.Brand != "Skippy" {
		t.Errorf("brand = %q, want first of the list", got.Brand)
	}
	if got.ServingSize != 32 || got.ServingUnit != "g" {
		t.Errorf("serving = %v %s", got.ServingSize, got.ServingUnit)
	}
}

func TestSearchFallsBackToPer100g(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
  "products": [
    {
      "product_name": "Rolled Oats",
      "nutriments": {
        "energy-kcal_100g": 379,
        "proteins_100g": "13.2",
        "carbohydrates_100g": 67.7,
        "fat_100g": 6.5
      }
    }
  ]
}`))
	})

	foods, err := c.Search(context.Background(), "oats", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(foods) != 1 {
		t.Fatalf("got %d foods, want 1", len(foods))
	}
	got := foods[0]
	if got.Calories != 379 {
		t.Errorf("calories = %d, want 379", got.Calories)
	}
	// String-typed nutriment values still parse.
	if got.ProteinG != 13 {
		t.Errorf("protein = %d, want 13", got.ProteinG)
	}
	if got.ServingSize != 100 || got.ServingUnit != "g" {
		t.Errorf("missing serving should default to 100 g, got %v %s", got.ServingSize, got.ServingUnit)
	}
}

func TestLookupBarcodeFound(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/product/3017620422003.json" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{
  "status": 1,
  "product": {
    "code": "3017620422003",
    "product_name": "Nutella",
    "brands": "Ferrero",
    "serving_size": "15 g",
    "nutriments": {"energy-kcal_serving": 80, "fat_serving": 4.6}
  }
}`))
	})

	food, err := c.LookupBarcode(context.Background(), "3017620422003")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if food.Name != "Nutella" || food.Calories != 80 {
		t.Fatalf("unexpected food: %+v", food)
	}
	if food.ServingSize != 15 {
		t.Errorf("serving parsed from free text = %v, want 15", food.ServingSize)
	}
}

func TestLookupBarcodeNotFound(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 0, "status_verbose": "product not found"}`))
	})

	if _, err := c.LookupBarcode(context.Background(), "0000000000000"); err == nil {
		t.Fatalf("expected error for missing product")
	}
}

func TestParseServingVariants(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		p        product
		wantSize float64
		wantUnit string
	}{
		{"numeric quantity", product{ServingQuantity: float64(30), ServingQuantityUnit: "g"}, 30, "g"},
		{"string quantity", product{ServingQuantity: "45.5"}, 45.5, "g"},
		{"free text size", product{ServingSize: "240 ml"}, 240, "ml"},
		{"unparseable", product{ServingSize: "one cup"}, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, unit := parseServing(tt.p)
			if size != tt.wantSize || unit != tt.wantUnit {
				t.Errorf("parseServing() = %v %q, want %v %q", size, unit, tt.wantSize, tt.wantUnit)
			}
		})
	}
}

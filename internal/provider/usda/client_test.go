package usda

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const searchFixture = `{
  "foods": [
    {
      "fdcId": 123,
      "description": "Greek Yogurt",
      "brandName": "Fage",
      "gtinUpc": "0689544080176",
      "dataType": "Branded",
      "servingSize": 170,
      "servingSizeUnit": "g",
      "foodNutrients": [
        {"nutrientId": 1008, "value": 59},
        {"nutrientId": 1003, "value": 10.3},
        {"nutrientId": 1005, "value": 3.6},
        {"nutrientId": 1004, "value": 0.4}
      ]
    },
    {
      "fdcId": 456,
      "description": "Yogurt, plain",
      "dataType": "SR Legacy",
      "foodNutrients": [
        {"nutrientId": 1008, "value": 61}
      ]
    }
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return &Client{APIKey: "test-key", BaseURL: ts.URL, HTTPClient: ts.Client()}
}

func TestSearchScalesNutrientsToServing(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/fdc/v1/foods/search" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("api_key") != "test-key" {
			t.Errorf("missing api key in query")
		}
		w.Write([]byte(searchFixture))
	})

	foods, err := c.Search(context.Background(), "yogurt", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(foods) != 2 {
		t.Fatalf("got %d foods, want 2", len(foods))
	}

	// 59 kcal per 100g at a 170g serving rounds to 100.
	got := foods[0]
	if got.Calories != 100 {
		t.Errorf("calories = %d, want 100", got.Calories)
	}
	if got.ProteinG != 18 {
		t.Errorf("protein = %d, want 18", got.ProteinG)
	}
	if got.Brand != "Fage" {
		t.Errorf("brand = %q", got.Brand)
	}

	// Missing serving size defaults to 100 g, values pass through.
	if foods[1].Calories != 61 {
		t.Errorf("unscaled calories = %d, want 61", foods[1].Calories)
	}
	if foods[1].ServingSize != 100 || foods[1].ServingUnit != "g" {
		t.Errorf("default serving = %v %s", foods[1].ServingSize, foods[1].ServingUnit)
	}
}

func TestSearchRequiresAPIKey(t *testing.T) {
	t.Parallel()
	c := &Client{}
	if _, err := c.Search(context.Background(), "yogurt", 10); err == nil {
		t.Fatalf("expected error without API key")
	}
}

func TestSearchRejectsBadStatus(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	if _, err := c.Search(context.Background(), "yogurt", 10); err == nil {
		t.Fatalf("expected error on 403")
	}
}

func TestLookupBarcodeMatchesIgnoringLeadingZeros(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchFixture))
	})

	food, err := c.LookupBarcode(context.Background(), "689544080176")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if food.FDCID != 123 {
		t.Fatalf("fdcId = %d, want 123", food.FDCID)
	}
	if food.Barcode != "689544080176" {
		t.Fatalf("barcode = %q", food.Barcode)
	}
}

func TestLookupBarcodeNoMatch(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods": []}`))
	})
	if _, err := c.LookupBarcode(context.Background(), "000000000000"); err == nil {
		t.Fatalf("expected error when no food matches")
	}
}

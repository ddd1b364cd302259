// Package service fans food search and barcode lookups out over the
// nutrition providers and normalizes the results.
package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/probuilddigital1-star/nourish/internal/model"
	"github.com/probuilddigital1-star/nourish/internal/provider/openfoodfacts"
	"github.com/probuilddigital1-star/nourish/internal/provider/usda"
)

const (
	ProviderUSDA          = "usda"
	ProviderOpenFoodFacts = "openfoodfacts"
)

var barcodePattern = regexp.MustCompile(`^\d{8,14}$`)

// Clients bundles the provider clients a lookup may consult. Either may be
// nil; USDA is skipped without an API key.
type Clients struct {
	USDA          *usda.Client
	OpenFoodFacts *openfoodfacts.Client
}

// SearchFoods queries USDA when a key is configured, filling up to limit
// results from Open Food Facts. Provider errors only surface when no
// provider produced anything.
func SearchFoods(ctx context.Context, clients Clients, query string, limit int) ([]model.FoodRecord, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}
	if limit <= 0 {
		limit = 10
	}

	records := []model.FoodRecord{}
	var firstErr error

	if clients.USDA != nil && clients.USDA.APIKey != "" {
		foods, err := clients.USDA.Search(ctx, query, limit)
		if err != nil {
			firstErr = err
		}
		for _, f := range foods {
			records = append(records, fromUSDA(f))
		}
	}

	if len(records) < limit && clients.OpenFoodFacts != nil {
		foods, err := clients.OpenFoodFacts.Search(ctx, query, limit-len(records))
		if err != nil && firstErr == nil {
			firstErr = err
		}
		for _, f := range foods {
			records = append(records, fromOFF(f))
		}
	}

	if len(records) == 0 {
		if firstErr != nil {
			return nil, fmt.Errorf("food search failed: %w", firstErr)
		}
		return nil, fmt.Errorf("no foods found for %q", query)
	}
	return records, nil
}

// LookupBarcode resolves a barcode through USDA first (when a key exists),
// then Open Food Facts.
func LookupBarcode(ctx context.Context, clients Clients, barcode string) (model.FoodRecord, error) {
	barcode = strings.TrimSpace(barcode)
	if !barcodePattern.MatchString(barcode) {
		return model.FoodRecord{}, fmt.Errorf("invalid barcode %q (expected 8-14 digits)", barcode)
	}

	var firstErr error
	if clients.USDA != nil && clients.USDA.APIKey != "" {
		food, err := clients.USDA.LookupBarcode(ctx, barcode)
		if err == nil {
			return fromUSDA(food), nil
		}
		firstErr = err
	}
	if clients.OpenFoodFacts != nil {
		food, err := clients.OpenFoodFacts.LookupBarcode(ctx, barcode)
		if err == nil {
			return fromOFF(food), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		firstErr = fmt.Errorf("no barcode providers configured")
	}
	return model.FoodRecord{}, fmt.Errorf("barcode lookup failed: %w", firstErr)
}

func fromUSDA(f usda.Food) model.FoodRecord {
	brand := f.Brand
	if brand == "" {
		brand = "Generic"
	}
	return model.FoodRecord{
		Name:        f.Description,
		Brand:       brand,
		Calories:    f.Calories,
		Protein:     f.ProteinG,
		Carbs:       f.CarbsG,
		Fat:         f.FatG,
		ServingSize: f.ServingSize,
		ServingUnit: f.ServingUnit,
		Source:      ProviderUSDA,
	}
}

func fromOFF(f openfoodfacts.Food) model.FoodRecord {
	brand := f.Brand
	if brand == "" {
		brand = "Generic"
	}
	return model.FoodRecord{
		Name:        f.Name,
		Brand:       brand,
		Calories:    f.Calories,
		Protein:     f.ProteinG,
		Carbs:       f.CarbsG,
		Fat:         f.FatG,
		ServingSize: f.ServingSize,
		ServingUnit: f.ServingUnit,
		Source:      ProviderOpenFoodFacts,
	}
}

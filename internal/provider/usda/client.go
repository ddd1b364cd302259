package usda

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.nal.usda.gov"

// FoodData Central nutrient ids for the macros we track.
const (
	nutrientEnergy  = 1008
	nutrientProtein = 1003
	nutrientCarbs   = 1005
	nutrientFat     = 1004
)

type Food struct {
	FDCID       int64   `json:"fdc_id"`
	Description string  `json:"description"`
	Brand       string  `json:"brand"`
	Barcode     string  `json:"barcode,omitempty"`
	ServingSize float64 `json:"serving_size"`
	ServingUnit string  `json:"serving_unit"`
	Calories    int     `json:"calories"`
	ProteinG    int     `json:"protein_g"`
	CarbsG      int     `json:"carbs_g"`
	FatG        int     `json:"fat_g"`
}

type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

type searchResponse struct {
	Foods []searchFood `json:"foods"`
}

type searchFood struct {
	FDCID           int64            `json:"fdcId"`
	Description     string           `json:"description"`
	BrandName       string           `json:"brandName"`
	BrandOwner      string           `json:"brandOwner"`
	GTINUPC         string           `json:"gtinUpc"`
	DataType        string           `json:"dataType"`
	ServingSize     float64          `json:"servingSize"`
	ServingSizeUnit string           `json:"servingSizeUnit"`
	FoodNutrients   []searchNutrient `json:"foodNutrients"`
}

type searchNutrient struct {
	NutrientID int64   `json:"nutrientId"`
	Value      float64 `json:"value"`
}

// Search queries FoodData Central with free text and returns up to limit
// normalized foods. Nutrient values are reported per 100 g by the API and
// scaled to the declared serving.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Food, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return nil, fmt.Errorf("missing USDA API key")
	}
	if limit <= 0 {
		limit = 10
	}
	body, err := c.search(ctx, map[string]any{
		"query":    query,
		"dataType": []string{"Branded", "Foundation", "SR Legacy"},
		"pageSize": limit,
	})
	if err != nil {
		return nil, err
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode USDA response: %w", err)
	}

	foods := make([]Food, 0, len(parsed.Foods))
	for _, f := range parsed.Foods {
		foods = append(foods, normalize(f))
		if len(foods) == limit {
			break
		}
	}
	return foods, nil
}

// LookupBarcode searches Branded foods and returns the entry whose GTIN/UPC
// matches the barcode.
func (c *Client) LookupBarcode(ctx context.Context, barcode string) (Food, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return Food{}, fmt.Errorf("missing USDA API key")
	}
	body, err := c.search(ctx, map[string]any{
		"query":    barcode,
		"dataType": []string{"Branded"},
		"pageSize": 20,
	})
	if err != nil {
		return Food{}, err
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Food{}, fmt.Errorf("decode USDA response: %w", err)
	}

	want := strings.TrimLeft(strings.TrimSpace(barcode), "0")
	for _, f := range parsed.Foods {
		got := strings.TrimLeft(strings.TrimSpace(f.GTINUPC), "0")
		if got != "" && got == want {
			food := normalize(f)
			food.Barcode = barcode
			return food, nil
		}
	}
	return Food{}, fmt.Errorf("no USDA branded food found for barcode %q", barcode)
}

func (c *Client) search(ctx context.Context, reqBody map[string]any) ([]byte, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal USDA search payload: %w", err)
	}

	url := fmt.Sprintf("%s/fdc/v1/foods/search?api_key=%s", baseURL, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create USDA request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute USDA request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read USDA response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("USDA request failed with status %d", resp.StatusCode)
	}
	return body, nil
}

func normalize(f searchFood) Food {
	servingSize := f.ServingSize
	servingUnit := f.ServingSizeUnit
	if servingSize == 0 {
		servingSize = 100
		servingUnit = "g"
	}
	scale := servingSize / 100

	brand := f.BrandName
	if brand == "" {
		brand = f.BrandOwner
	}

	return Food{
		FDCID:       f.FDCID,
		Description: f.Description,
		Brand:       brand,
		Barcode:     f.GTINUPC,
		ServingSize: servingSize,
		ServingUnit: servingUnit,
		Calories:    scaled(f.FoodNutrients, nutrientEnergy, scale),
		ProteinG:    scaled(f.FoodNutrients, nutrientProtein, scale),
		CarbsG:      scaled(f.FoodNutrients, nutrientCarbs, scale),
		FatG:        scaled(f.FoodNutrients, nutrientFat, scale),
	}
}

func scaled(nutrients []searchNutrient, id int64, scale float64) int {
	for _, n := range nutrients {
		if n.NutrientID == id {
			return int(math.Round(n.Value * scale))
		}
	}
	return 0
}

package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://world.openfoodfacts.org"

type Food struct {
	Code        string  `json:"code,omitempty"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	ServingSize float64 `json:"serving_size"`
	ServingUnit string  `json:"serving_unit"`
	Calories    int     `json:"calories"`
	ProteinG    int     `json:"protein_g"`
	CarbsG      int     `json:"carbs_g"`
	FatG        int     `json:"fat_g"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

type nutriments map[string]json.RawMessage

type product struct {
	Code                string     `json:"code"`
	ProductName         string     `json:"product_name"`
	Brands              string     `json:"brands"`
	ServingQuantity     any        `json:"serving_quantity"`
	ServingQuantityUnit string     `json:"serving_quantity_unit"`
	ServingSize         string     `json:"serving_size"`
	Nutriments          nutriments `json:"nutriments"`
}

type productResponse struct {
	Status  int     `json:"status"`
	Product product `json:"product"`
}

type searchResponse struct {
	Products []product `json:"products"`
}

// Search queries the legacy search endpoint and returns up to limit
// normalized products that carry a usable name and energy value.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Food, error) {
	if limit <= 0 {
		limit = 10
	}
	endpoint := fmt.Sprintf("%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=%d",
		c.base(), url.QueryEscape(query), limit)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode openfoodfacts response: %w", err)
	}

	foods := make([]Food, 0, limit)
	for _, p := range parsed.Products {
		f := normalizeProduct(p)
		if f.Name == "" || f.Calories == 0 {
			continue
		}
		foods = append(foods, f)
		if len(foods) == limit {
			break
		}
	}
	return foods, nil
}

// LookupBarcode fetches a single product by barcode.
func (c *Client) LookupBarcode(ctx context.Context, barcode string) (Food, error) {
	endpoint := fmt.Sprintf("%s/api/v2/product/%s.json", c.base(), url.PathEscape(barcode))
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return Food{}, err
	}

	var parsed productResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Food{}, fmt.Errorf("decode openfoodfacts response: %w", err)
	}
	if parsed.Status != 1 || parsed.Product.ProductName == "" {
		return Food{}, fmt.Errorf("no openfoodfacts product found for barcode %q", barcode)
	}
	food := normalizeProduct(parsed.Product)
	food.Code = barcode
	return food, nil
}

func (c *Client) base() string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	return base
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create openfoodfacts request: %w", err)
	}
	req.Header.Set("User-Agent", "nourish/1.0 (+https://github.com/probuilddigital1-star/nourish)")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute openfoodfacts request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read openfoodfacts response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openfoodfacts request failed with status %d", resp.StatusCode)
	}
	return body, nil
}

// normalizeProduct prefers per-serving nutriments, falling back to per 100g.
func normalizeProduct(p product) Food {
	servingSize, servingUnit := parseServing(p)

	perServing := nutrientValue(p.Nutriments, "energy-kcal_serving") > 0
	suffix := "_100g"
	if perServing {
		suffix = "_serving"
	} else if servingSize == 0 {
		servingSize = 100
		servingUnit = "g"
	}

	return Food{
		Code:        p.Code,
		Name:        strings.TrimSpace(p.ProductName),
		Brand:       firstBrand(p.Brands),
		ServingSize: servingSize,
		ServingUnit: servingUnit,
		Calories:    int(math.Round(nutrientValue(p.Nutriments, "energy-kcal"+suffix))),
		ProteinG:    int(math.Round(nutrientValue(p.Nutriments, "proteins"+suffix))),
		CarbsG:      int(math.Round(nutrientValue(p.Nutriments, "carbohydrates"+suffix))),
		FatG:        int(math.Round(nutrientValue(p.Nutriments, "fat"+suffix))),
	}
}

func parseServing(p product) (float64, string) {
	switch v := p.ServingQuantity.(type) {
	case float64:
		return v, defaultUnit(p.ServingQuantityUnit)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f, defaultUnit(p.ServingQuantityUnit)
		}
	}
	// serving_size is free text like "170 g"; take the leading number.
	fields := strings.Fields(p.ServingSize)
	if len(fields) >= 1 {
		if f, err := strconv.ParseFloat(fields[0], 64); err == nil {
			unit := "g"
			if len(fields) > 1 {
				unit = fields[1]
			}
			return f, unit
		}
	}
	return 0, ""
}

func defaultUnit(unit string) string {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return "g"
	}
	return unit
}

func firstBrand(brands string) string {
	parts := strings.Split(brands, ",")
	return strings.TrimSpace(parts[0])
}

func nutrientValue(n nutriments, key string) float64 {
	raw, ok := n[key]
	if !ok {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f
		}
	}
	return 0
}

// Package openfoodfacts wraps the Open Food Facts free-text search used by
// the nutrition tracker. Candidates are parsed into typed products with
// per-100g macros; missing optional fields default to zero.
package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://world.openfoodfacts.org"

// Macros holds per-100g nutrient values in kcal (energy) and grams, except
// sodium which Open Food Facts reports in grams and is kept that way.
type Macros struct {
	EnergyKcal   float64
	ProteinG     float64
	CarbsG       float64
	FatG         float64
	SugarG       float64
	FiberG       float64
	SodiumG      float64
	SaturatedFat float64
}

type Product struct {
	Name     string
	Brand    string
	ImageURL string
	Macros   Macros
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Search returns candidate products for a free-text query. Products without a
// name or an energy value are unusable for intake tracking and are dropped;
// an empty result after filtering is reported as an error so the caller can
// show a "no results" notice.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Product, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	if limit <= 0 {
		limit = 10
	}
	u := fmt.Sprintf("%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=%d",
		base,
		url.QueryEscape(strings.TrimSpace(query)),
		limit,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create openfoodfacts search request: %w", err)
	}
	req.Header.Set("User-Agent", "fitflex-cli/1.0 (+https://github.com/DnvLikhitha/FitFlex)")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute openfoodfacts search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read openfoodfacts search response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openfoodfacts search failed with status %d", resp.StatusCode)
	}

	var parsed offSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode openfoodfacts search response: %w", err)
	}

	out := make([]Product, 0, len(parsed.Products))
	for _, p := range parsed.Products {
		name := strings.TrimSpace(p.ProductName)
		energy, hasEnergy := parseFloatAny(p.Nutriments["energy-kcal_100g"])
		if name == "" || !hasEnergy {
			continue
		}
		out = append(out, Product{
			Name:     name,
			Brand:    strings.TrimSpace(p.Brands),
			ImageURL: strings.TrimSpace(p.ImageURL),
			Macros: Macros{
				EnergyKcal:   energy,
				ProteinG:     nutrientValue(p.Nutriments, "proteins_100g"),
				CarbsG:       nutrientValue(p.Nutriments, "carbohydrates_100g"),
				FatG:         nutrientValue(p.Nutriments, "fat_100g"),
				SugarG:       nutrientValue(p.Nutriments, "sugars_100g"),
				FiberG:       nutrientValue(p.Nutriments, "fiber_100g"),
				SodiumG:      nutrientValue(p.Nutriments, "sodium_100g"),
				SaturatedFat: nutrientValue(p.Nutriments, "saturated-fat_100g"),
			},
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no openfoodfacts product found for query %q", query)
	}
	return out, nil
}

func nutrientValue(n map[string]any, key string) float64 {
	if v, ok := parseFloatAny(n[key]); ok {
		return v
	}
	return 0
}

func parseFloatAny(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

type offSearchResponse struct {
	Products []offProduct `json:"products"`
}

type offProduct struct {
	ProductName string         `json:"product_name"`
	Brands      string         `json:"brands"`
	ImageURL    string         `json:"image_front_small_url"`
	Nutriments  map[string]any `json:"nutriments"`
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"syncsolved/backend-go/internal/config"
	"syncsolved/backend-go/internal/models"
)

const worldBankSourceName = "World Bank Commodity Markets"

// WorldBankClient reads the commodity markets index series from the World
// Bank indicators API. The engine relabels the result with the catalog's
// display name and unit before serving it.
type WorldBankClient struct {
	baseURL string
	hc      *http.Client
}

func NewWorldBankClient(cfg config.Config) *WorldBankClient {
	return &WorldBankClient{
		baseURL: cfg.WorldBankBaseURL,
		hc:      &http.Client{Timeout: cfg.RequestTimeout},
	}
}

func (c *WorldBankClient) Name() string { return "worldbank" }

type wbRecord struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

func (c *WorldBankClient) Fetch(ctx context.Context, p Params) (any, error) {
	url := c.baseURL + "/v2/country/WLD/indicator/CM.MKT.INDX.M?format=json&per_page=120&mrv=120"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	res, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return nil, fmt.Errorf("worldbank: %s", res.Status)
	}

	// The indicator API wraps results in a two-element array: [meta, records].
	var payload []json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	var records []wbRecord
	if len(payload) > 1 {
		if err := json.Unmarshal(payload[1], &records); err != nil {
			return nil, err
		}
	}

	// Records arrive newest-first; drop nulls and flip to chronological order.
	prices := make([]models.PricePoint, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		if r.Value == nil {
			continue
		}
		prices = append(prices, models.PricePoint{Date: r.Date, Value: *r.Value})
	}

	return &models.CommodityPriceData{
		Commodity:     p.CommodityCode,
		Unit:          "Index",
		Prices:        prices,
		ChangePercent: changePercent(prices),
		Source:        worldBankSourceName,
		LastUpdated:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// changePercent is the move between the two most recent points, rounded to
// two decimals. Fewer than two points, or a previous value of exactly zero,
// yields 0 rather than NaN or Inf.
func changePercent(prices []models.PricePoint) float64 {
	if len(prices) < 2 {
		return 0
	}
	prev := prices[len(prices)-2].Value
	latest := prices[len(prices)-1].Value
	if prev == 0 {
		return 0
	}
	return math.Round((latest-prev)/prev*100*100) / 100
}

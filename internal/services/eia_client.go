package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"syncsolved/backend-go/internal/config"
	"syncsolved/backend-go/internal/models"
)

const eiaSourceName = "U.S. Energy Information Administration"

// EIAClient pulls annual crude oil production figures from the EIA
// international dataset (activityId 1 = production, productId 53 = crude).
type EIAClient struct {
	baseURL string
	apiKey  string
	hc      *http.Client
}

func NewEIAClient(cfg config.Config) *EIAClient {
	return &EIAClient{
		baseURL: cfg.EIABaseURL,
		apiKey:  cfg.EIAAPIKey,
		hc:      &http.Client{Timeout: cfg.RequestTimeout},
	}
}

func (c *EIAClient) Name() string { return "eia" }

type eiaResponse struct {
	Response struct {
		Data []struct {
			Period string   `json:"period"`
			Value  *float64 `json:"value"`
		} `json:"data"`
	} `json:"response"`
}

func (c *EIAClient) Fetch(ctx context.Context, p Params) (any, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("frequency", "annual")
	q.Add("facets[activityId][]", "1")
	q.Add("facets[countryRegionId][]", p.ISO3)
	q.Add("facets[productId][]", "53")
	q.Set("sort", `[{"column":"period","direction":"desc"}]`)
	q.Set("length", "20")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/international?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	res, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return nil, fmt.Errorf("eia: %s", res.Status)
	}

	var payload eiaResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}

	values := make([]models.YearValue, 0, len(payload.Response.Data))
	for _, r := range payload.Response.Data {
		year, _ := strconv.Atoi(r.Period)
		values = append(values, models.YearValue{Year: year, Value: fval(r.Value)})
	}

	return &models.EnergyData{
		Production: []models.DataSeries{{
			Label:  "Crude Oil Production",
			Unit:   "Thousand Barrels Per Day",
			Values: values,
		}},
		Consumption: []models.DataSeries{},
		Reserves:    []models.DataSeries{},
		Source:      eiaSourceName,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// fval defaults missing or null numeric fields to zero so absences never
// leak into derived calculations.
func fval(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

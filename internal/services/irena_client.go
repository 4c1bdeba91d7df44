package services

import (
	"bytes"
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

const irenaSourceName = "IRENA Renewable Energy Statistics"

// IRENAClient queries the IRENA PxWeb statistics API for total renewable
// capacity of one country. PxWeb takes the query as a POST body.
type IRENAClient struct {
	baseURL string
	hc      *http.Client
}

func NewIRENAClient(cfg config.Config) *IRENAClient {
	return &IRENAClient{
		baseURL: cfg.IRENABaseURL,
		hc:      &http.Client{Timeout: cfg.RequestTimeout},
	}
}

func (c *IRENAClient) Name() string { return "irena" }

type pxwebSelection struct {
	Filter string   `json:"filter"`
	Values []string `json:"values"`
}

type pxwebQueryItem struct {
	Code      string         `json:"code"`
	Selection pxwebSelection `json:"selection"`
}

type pxwebQuery struct {
	Query    []pxwebQueryItem  `json:"query"`
	Response map[string]string `json:"response"`
}

type pxwebData struct {
	Data []struct {
		Key    []string `json:"key"`
		Values []string `json:"values"`
	} `json:"data"`
}

func (c *IRENAClient) Fetch(ctx context.Context, p Params) (any, error) {
	query := pxwebQuery{
		Query: []pxwebQueryItem{
			{Code: "Country/area", Selection: pxwebSelection{Filter: "item", Values: []string{p.ISO3}}},
			{Code: "Technology", Selection: pxwebSelection{Filter: "item", Values: []string{"Total renewable energy"}}},
		},
		Response: map[string]string{"format": "json"},
	}
	body, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/api/v1/en/IRENASTAT/" +
		url.PathEscape("Power Capacity and Generation") + "/RECAP_2024_cycle2.px"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return nil, fmt.Errorf("irena: %s", res.Status)
	}

	var payload pxwebData
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}

	// PxWeb keys end with the year; the single value is the capacity figure.
	values := make([]models.YearValue, 0, len(payload.Data))
	for _, d := range payload.Data {
		if len(d.Key) == 0 || len(d.Values) == 0 {
			continue
		}
		year, _ := strconv.Atoi(d.Key[len(d.Key)-1])
		value, err := strconv.ParseFloat(d.Values[0], 64)
		if err != nil {
			value = 0
		}
		values = append(values, models.YearValue{Year: year, Value: value})
	}

	return &models.RenewableData{
		Capacity: []models.DataSeries{{
			Label:  "Total Renewable Capacity",
			Unit:   "MW",
			Values: values,
		}},
		Generation:  []models.DataSeries{},
		Installed:   []models.InstalledTechnology{},
		Source:      irenaSourceName,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

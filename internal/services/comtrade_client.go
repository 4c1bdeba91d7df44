package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"syncsolved/backend-go/internal/config"
	"syncsolved/backend-go/internal/models"
)

const comtradeSourceName = "UN Comtrade Database"

// ComtradeClient queries the UN Comtrade public preview endpoint for annual
// HS-classified import/export rows of one reporter country.
type ComtradeClient struct {
	baseURL string
	hc      *http.Client
}

func NewComtradeClient(cfg config.Config) *ComtradeClient {
	return &ComtradeClient{
		baseURL: cfg.ComtradeBaseURL,
		hc:      &http.Client{Timeout: cfg.RequestTimeout},
	}
}

func (c *ComtradeClient) Name() string { return "comtrade" }

type comtradeRow struct {
	FlowCode     string   `json:"flowCode"`
	PartnerDesc  string   `json:"partnerDesc"`
	CmdDesc      string   `json:"cmdDesc"`
	CmdCode      string   `json:"cmdCode"`
	PrimaryValue *float64 `json:"primaryValue"`
	NetWgt       *float64 `json:"netWgt"`
	Period       int      `json:"period"`
}

func (c *ComtradeClient) Fetch(ctx context.Context, p Params) (any, error) {
	q := url.Values{}
	q.Set("reporterCode", p.ISO3)
	q.Set("cmdCode", p.CommodityCode)
	q.Set("flowCode", "M,X")
	q.Set("period", "2023,2022,2021")
	q.Set("maxRecords", "100")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/public/v1/preview/C/A/HS?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	res, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return nil, fmt.Errorf("comtrade: %s", res.Status)
	}

	var payload struct {
		Data []comtradeRow `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}

	imports := make([]models.TradeRecord, 0, len(payload.Data))
	exports := make([]models.TradeRecord, 0, len(payload.Data))
	for _, r := range payload.Data {
		rec := models.TradeRecord{
			Partner:       r.PartnerDesc,
			Commodity:     r.CmdDesc,
			CommodityCode: r.CmdCode,
			Value:         fval(r.PrimaryValue),
			Weight:        fval(r.NetWgt),
			Year:          r.Period,
		}
		switch r.FlowCode {
		case "M":
			imports = append(imports, rec)
		case "X":
			exports = append(exports, rec)
		}
	}

	return &models.TradeFlowData{
		Imports:     imports,
		Exports:     exports,
		TopPartners: topPartners(imports, exports),
		Source:      comtradeSourceName,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// topPartners ranks partners by total trade value across both flows and
// keeps the ten largest.
func topPartners(imports, exports []models.TradeRecord) []models.PartnerValue {
	totals := make(map[string]float64)
	for _, r := range imports {
		totals[r.Partner] += r.Value
	}
	for _, r := range exports {
		totals[r.Partner] += r.Value
	}

	out := make([]models.PartnerValue, 0, len(totals))
	for partner, value := range totals {
		out = append(out, models.PartnerValue{Partner: partner, Value: value})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Partner < out[j].Partner
	})
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}

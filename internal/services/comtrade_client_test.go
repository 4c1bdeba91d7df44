package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"syncsolved/backend-go/internal/config"
	"syncsolved/backend-go/internal/models"
)

func TestComtradeFetchSplitsFlowsAndRanksPartners(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("reporterCode") != "KEN" || q.Get("cmdCode") != "27" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"flowCode":"M","partnerDesc":"India","cmdDesc":"Mineral fuels","cmdCode":"27","primaryValue":500,"netWgt":900,"period":2023},
			{"flowCode":"X","partnerDesc":"Uganda","cmdDesc":"Mineral fuels","cmdCode":"27","primaryValue":300,"netWgt":400,"period":2023},
			{"flowCode":"M","partnerDesc":"Uganda","cmdDesc":"Mineral fuels","cmdCode":"27","primaryValue":250,"period":2022},
			{"flowCode":"X","partnerDesc":"Tanzania","cmdDesc":"Mineral fuels","cmdCode":"27","primaryValue":null,"netWgt":null,"period":2022}
		]}`))
	}))
	defer srv.Close()

	c := NewComtradeClient(config.Config{ComtradeBaseURL: srv.URL, RequestTimeout: 5 * time.Second})
	v, err := c.Fetch(context.Background(), Params{ISO3: "KEN", CommodityCode: "27"})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	data := v.(*models.TradeFlowData)

	if len(data.Imports) != 2 || len(data.Exports) != 2 {
		t.Fatalf("expected 2 imports and 2 exports, got %d/%d", len(data.Imports), len(data.Exports))
	}
	// Missing and null numeric fields default to zero.
	if data.Imports[1].Weight != 0 {
		t.Fatalf("expected missing netWgt to default to 0, got %v", data.Imports[1].Weight)
	}
	if data.Exports[1].Value != 0 || data.Exports[1].Weight != 0 {
		t.Fatalf("expected null value/weight to default to 0, got %+v", data.Exports[1])
	}

	// Uganda totals 550 across both flows and outranks India's 500.
	if len(data.TopPartners) != 3 {
		t.Fatalf("expected 3 partners, got %d", len(data.TopPartners))
	}
	if data.TopPartners[0].Partner != "Uganda" || data.TopPartners[0].Value != 550 {
		t.Fatalf("unexpected top partner %+v", data.TopPartners[0])
	}
	if data.TopPartners[1].Partner != "India" {
		t.Fatalf("expected India second, got %+v", data.TopPartners[1])
	}
	if data.Source != comtradeSourceName {
		t.Fatalf("unexpected source %q", data.Source)
	}
}

func TestTopPartnersKeepsTen(t *testing.T) {
	var imports []models.TradeRecord
	for i := 0; i < 15; i++ {
		imports = append(imports, models.TradeRecord{
			Partner: string(rune('A' + i)),
			Value:   float64(i + 1),
		})
	}
	top := topPartners(imports, nil)
	if len(top) != 10 {
		t.Fatalf("expected 10 partners, got %d", len(top))
	}
	if top[0].Value != 15 {
		t.Fatalf("expected largest partner first, got %+v", top[0])
	}
}

func TestComtradeFetchUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewComtradeClient(config.Config{ComtradeBaseURL: srv.URL, RequestTimeout: 5 * time.Second})
	if _, err := c.Fetch(context.Background(), Params{ISO3: "KEN", CommodityCode: "27"}); err == nil {
		t.Fatal("expected error on upstream 503")
	}
}

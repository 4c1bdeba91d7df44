package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"syncsolved/backend-go/internal/config"
	"syncsolved/backend-go/internal/models"
)

func TestEIAFetchRequiresAPIKey(t *testing.T) {
	c := NewEIAClient(config.Config{EIABaseURL: "http://example.invalid", RequestTimeout: time.Second})
	_, err := c.Fetch(context.Background(), Params{ISO3: "KEN"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestEIAFetchNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("api_key") != "test-key" {
			t.Errorf("missing api key in query %s", r.URL.RawQuery)
		}
		if got := q["facets[countryRegionId][]"]; len(got) != 1 || got[0] != "NGA" {
			t.Errorf("unexpected country facet %v", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":{"data":[
			{"period":"2023","value":1280.4},
			{"period":"2022","value":null},
			{"period":"2021","value":1350.0}
		]}}`))
	}))
	defer srv.Close()

	c := NewEIAClient(config.Config{EIABaseURL: srv.URL, EIAAPIKey: "test-key", RequestTimeout: 5 * time.Second})
	v, err := c.Fetch(context.Background(), Params{ISO3: "NGA"})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	data := v.(*models.EnergyData)

	if len(data.Production) != 1 {
		t.Fatalf("expected one production series, got %d", len(data.Production))
	}
	series := data.Production[0]
	if series.Label != "Crude Oil Production" || series.Unit != "Thousand Barrels Per Day" {
		t.Fatalf("unexpected series labels: %+v", series)
	}
	if len(series.Values) != 3 {
		t.Fatalf("expected 3 values, got %d", len(series.Values))
	}
	if series.Values[0].Year != 2023 || series.Values[0].Value != 1280.4 {
		t.Fatalf("unexpected first value %+v", series.Values[0])
	}
	if series.Values[1].Value != 0 {
		t.Fatalf("expected null value to default to 0, got %v", series.Values[1].Value)
	}
	if data.Source != eiaSourceName {
		t.Fatalf("unexpected source %q", data.Source)
	}
	if len(data.Consumption) != 0 || len(data.Reserves) != 0 {
		t.Fatalf("expected empty consumption/reserves, got %+v", data)
	}
}

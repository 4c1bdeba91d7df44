package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"syncsolved/backend-go/internal/catalog"
	"syncsolved/backend-go/internal/models"
	"syncsolved/backend-go/internal/services"
)

var dataTypes = []string{
	"countries",
	"commodities",
	"country-profile",
	"commodity-prices",
	"trade-flows",
	"renewable",
}

// Data serves GET /api/data/{type}. Static lookups answer from the catalog;
// everything else goes through the engine. Responses are publicly cacheable
// for an hour.
func (a *API) Data(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")

	q := r.URL.Query()
	country := q.Get("country")
	commodity := q.Get("commodity")
	ctx := r.Context()

	switch chi.URLParam(r, "type") {
	case "countries":
		entries := catalog.Countries()
		list := make([]models.CountryListItem, 0, len(entries))
		for _, e := range entries {
			list = append(list, models.CountryListItem{Slug: e.Slug, ISO2: e.ISO2, ISO3: e.ISO3, Name: e.Name})
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": list})

	case "commodities":
		entries := catalog.Commodities()
		list := make([]models.CommodityListItem, 0, len(entries))
		for _, e := range entries {
			list = append(list, models.CommodityListItem{Slug: e.Slug, Name: e.Name, WBCode: e.WBCode, EIACode: e.EIACode, Unit: e.Unit})
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": list})

	case "country-profile":
		if country == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Missing country parameter"})
			return
		}
		profile, err := a.engine.GetCountryProfile(ctx, country)
		if errors.Is(err, services.ErrUnknownCountry) {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "Country not found"})
			return
		}
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": profile})

	case "commodity-prices":
		if commodity == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Missing commodity parameter"})
			return
		}
		prices, err := a.engine.GetCommodityPrices(ctx, commodity)
		if errors.Is(err, services.ErrUnknownCommodity) {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "Commodity not found"})
			return
		}
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": prices})

	case "trade-flows":
		if country == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Missing country parameter"})
			return
		}
		flows, err := a.engine.GetTradeFlows(ctx, country, commodity)
		if err != nil {
			// Unknown country degrades to a null payload here, matching the
			// lighter contract of this lookup.
			writeJSON(w, http.StatusOK, map[string]any{"data": nil})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": flows})

	case "renewable":
		if country == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Missing country parameter"})
			return
		}
		renewable, err := a.engine.GetRenewableData(ctx, country)
		if err != nil {
			writeJSON(w, http.StatusOK, map[string]any{"data": nil})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": renewable})

	default:
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":     "Unknown data type",
			"available": dataTypes,
		})
	}
}

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syncsolved/backend-go/internal/config"
	"syncsolved/backend-go/internal/models"
)

type fakeSource struct {
	name  string
	calls int32
	fn    func(p Params) (any, error)
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Fetch(_ context.Context, p Params) (any, error) {
	atomic.AddInt32(&f.calls, 1)
	return f.fn(p)
}

func (f *fakeSource) callCount() int32 {
	return atomic.LoadInt32(&f.calls)
}

func testConfig() config.Config {
	return config.Config{
		TTLProfile:   time.Hour,
		TTLPrices:    time.Hour,
		TTLTrade:     time.Hour,
		TTLRenewable: time.Hour,
	}
}

func okEnergy() *models.EnergyData {
	return &models.EnergyData{
		Production:  []models.DataSeries{{Label: "Crude Oil Production", Unit: "Thousand Barrels Per Day"}},
		Source:      eiaSourceName,
		LastUpdated: "2026-01-01T00:00:00Z",
	}
}

func okTrade() *models.TradeFlowData {
	return &models.TradeFlowData{
		Imports:     []models.TradeRecord{{Partner: "India", Value: 500, Year: 2023}},
		Source:      comtradeSourceName,
		LastUpdated: "2026-01-01T00:00:00Z",
	}
}

func okRenewable() *models.RenewableData {
	return &models.RenewableData{
		Capacity:    []models.DataSeries{{Label: "Total Renewable Capacity", Unit: "MW"}},
		Source:      irenaSourceName,
		LastUpdated: "2026-01-01T00:00:00Z",
	}
}

func TestGetCountryProfilePartialFailureIsolation(t *testing.T) {
	eia := &fakeSource{name: "eia", fn: func(Params) (any, error) {
		return nil, errors.New("eia down")
	}}
	comtrade := &fakeSource{name: "comtrade", fn: func(Params) (any, error) {
		return okTrade(), nil
	}}
	irena := &fakeSource{name: "irena", fn: func(Params) (any, error) {
		return okRenewable(), nil
	}}

	e := NewDataEngine(testConfig(), NewMemoryCache(), nil, eia, comtrade, irena)
	profile, err := e.GetCountryProfile(context.Background(), "kenya")
	require.NoError(t, err)
	require.NotNil(t, profile)

	assert.Equal(t, "Kenya", profile.Country)
	assert.Equal(t, "KEN", profile.CountryCode)
	assert.Nil(t, profile.Energy, "failed sub-source must degrade to nil")
	require.NotNil(t, profile.Trade)
	assert.Equal(t, "India", profile.Trade.Imports[0].Partner)
	assert.NotNil(t, profile.Renewable)
	assert.Nil(t, profile.Regulatory)
	assert.Nil(t, profile.Carbon)
	assert.Nil(t, profile.CommodityPrices)
}

func TestGetCountryProfileUnknownSlugSkipsNetwork(t *testing.T) {
	eia := &fakeSource{name: "eia", fn: func(Params) (any, error) { return okEnergy(), nil }}
	comtrade := &fakeSource{name: "comtrade", fn: func(Params) (any, error) { return okTrade(), nil }}
	irena := &fakeSource{name: "irena", fn: func(Params) (any, error) { return okRenewable(), nil }}

	e := NewDataEngine(testConfig(), NewMemoryCache(), nil, eia, comtrade, irena)
	_, err := e.GetCountryProfile(context.Background(), "not-a-real-place")
	require.ErrorIs(t, err, ErrUnknownCountry)

	assert.Zero(t, eia.callCount())
	assert.Zero(t, comtrade.callCount())
	assert.Zero(t, irena.callCount())
}

func TestGetCountryProfileCacheShortCircuits(t *testing.T) {
	comtrade := &fakeSource{name: "comtrade", fn: func(Params) (any, error) { return okTrade(), nil }}
	eia := &fakeSource{name: "eia", fn: func(Params) (any, error) { return okEnergy(), nil }}
	irena := &fakeSource{name: "irena", fn: func(Params) (any, error) { return okRenewable(), nil }}

	e := NewDataEngine(testConfig(), NewMemoryCache(), nil, eia, comtrade, irena)
	ctx := context.Background()

	first, err := e.GetCountryProfile(ctx, "ghana")
	require.NoError(t, err)
	second, err := e.GetCountryProfile(ctx, "ghana")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), eia.callCount(), "second read must come from cache")
	assert.Equal(t, int32(1), comtrade.callCount())
	assert.Equal(t, int32(1), irena.callCount())
}

func TestGetCountryProfileCorruptCacheEntryIsAMiss(t *testing.T) {
	cache := NewMemoryCache()
	require.NoError(t, cache.Set(context.Background(), "country:kenya", []byte("{not json"), time.Hour))

	eia := &fakeSource{name: "eia", fn: func(Params) (any, error) { return okEnergy(), nil }}
	comtrade := &fakeSource{name: "comtrade", fn: func(Params) (any, error) { return okTrade(), nil }}
	irena := &fakeSource{name: "irena", fn: func(Params) (any, error) { return okRenewable(), nil }}

	e := NewDataEngine(testConfig(), cache, nil, eia, comtrade, irena)
	profile, err := e.GetCountryProfile(context.Background(), "kenya")
	require.NoError(t, err)
	assert.NotNil(t, profile.Energy)
	assert.Equal(t, int32(1), eia.callCount(), "corrupt entry should trigger a refetch")
}

func TestGetCommodityPricesRelabelsFromCatalog(t *testing.T) {
	wb := &fakeSource{name: "worldbank", fn: func(p Params) (any, error) {
		assert.Equal(t, "CRUDE_PETRO", p.CommodityCode)
		return &models.CommodityPriceData{
			Commodity:     p.CommodityCode,
			Unit:          "Index",
			Prices:        []models.PricePoint{{Date: "2024M01", Value: 80}, {Date: "2024M02", Value: 84}},
			ChangePercent: 5,
			Source:        worldBankSourceName,
		}, nil
	}}

	e := NewDataEngine(testConfig(), NewMemoryCache(), nil, wb)
	data, err := e.GetCommodityPrices(context.Background(), "crude-oil")
	require.NoError(t, err)
	require.NotNil(t, data)

	assert.Equal(t, "Crude Oil", data.Commodity)
	assert.Equal(t, "$/bbl", data.Unit)

	// The cached copy carries the relabeled fields too.
	again, err := e.GetCommodityPrices(context.Background(), "crude-oil")
	require.NoError(t, err)
	assert.Equal(t, "Crude Oil", again.Commodity)
	assert.Equal(t, int32(1), wb.callCount())
}

func TestGetCommodityPricesUnknownSlug(t *testing.T) {
	wb := &fakeSource{name: "worldbank", fn: func(Params) (any, error) { return nil, errors.New("unreachable") }}
	e := NewDataEngine(testConfig(), NewMemoryCache(), nil, wb)

	_, err := e.GetCommodityPrices(context.Background(), "plutonium")
	require.ErrorIs(t, err, ErrUnknownCommodity)
	assert.Zero(t, wb.callCount())
}

func TestGetCommodityPricesUpstreamFailureIsAbsent(t *testing.T) {
	wb := &fakeSource{name: "worldbank", fn: func(Params) (any, error) { return nil, errors.New("down") }}
	e := NewDataEngine(testConfig(), NewMemoryCache(), nil, wb)

	data, err := e.GetCommodityPrices(context.Background(), "gold")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestGetTradeFlowsDefaultsCommodityCode(t *testing.T) {
	var gotCode string
	comtrade := &fakeSource{name: "comtrade", fn: func(p Params) (any, error) {
		gotCode = p.CommodityCode
		return okTrade(), nil
	}}
	e := NewDataEngine(testConfig(), NewMemoryCache(), nil, comtrade)

	data, err := e.GetTradeFlows(context.Background(), "nigeria", "")
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Equal(t, "27", gotCode)

	// A distinct code gets its own cache entry.
	_, err = e.GetTradeFlows(context.Background(), "nigeria", "71")
	require.NoError(t, err)
	assert.Equal(t, "71", gotCode)
	assert.Equal(t, int32(2), comtrade.callCount())
}

func TestGetRenewableDataUnknownSlug(t *testing.T) {
	irena := &fakeSource{name: "irena", fn: func(Params) (any, error) { return okRenewable(), nil }}
	e := NewDataEngine(testConfig(), NewMemoryCache(), nil, irena)

	_, err := e.GetRenewableData(context.Background(), "atlantis")
	require.ErrorIs(t, err, ErrUnknownCountry)
	assert.Zero(t, irena.callCount())
}

func TestEngineWorksWithoutCache(t *testing.T) {
	irena := &fakeSource{name: "irena", fn: func(Params) (any, error) { return okRenewable(), nil }}
	e := NewDataEngine(testConfig(), nil, nil, irena)

	data, err := e.GetRenewableData(context.Background(), "kenya")
	require.NoError(t, err)
	assert.NotNil(t, data)
}

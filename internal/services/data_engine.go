package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"syncsolved/backend-go/internal/catalog"
	"syncsolved/backend-go/internal/config"
	"syncsolved/backend-go/internal/metrics"
	"syncsolved/backend-go/internal/models"
)

// DefaultTradeCommodity is HS chapter 27, mineral fuels.
const DefaultTradeCommodity = "27"

var (
	ErrUnknownCountry   = errors.New("unknown country slug")
	ErrUnknownCommodity = errors.New("unknown commodity slug")
)

// DataEngine is the aggregation layer: cache-first reads, fan-out to the
// registered sources on a miss, best-effort cache writes. Source failures
// degrade the affected field to nil and never surface to the caller; only
// unknown slugs return an error, and those short-circuit before any I/O.
type DataEngine struct {
	cfg     config.Config
	cache   Cache
	metrics *metrics.Metrics
	sources map[string]Source
	sf      singleflight.Group
}

// NewDataEngine registers the given sources by name. Cache and metrics are
// explicit dependencies so tests can substitute doubles.
func NewDataEngine(cfg config.Config, cache Cache, m *metrics.Metrics, sources ...Source) *DataEngine {
	reg := make(map[string]Source, len(sources))
	for _, s := range sources {
		reg[s.Name()] = s
	}
	return &DataEngine{cfg: cfg, cache: cache, metrics: m, sources: reg}
}

func DefaultSources(cfg config.Config) []Source {
	return []Source{
		NewEIAClient(cfg),
		NewWorldBankClient(cfg),
		NewComtradeClient(cfg),
		NewIRENAClient(cfg),
	}
}

// GetCountryProfile aggregates energy, trade and renewable data for one
// country. The three fetches run concurrently and settle independently: a
// failed or slow branch never cancels the others. Regulatory and carbon stay
// nil until their sources exist.
func (e *DataEngine) GetCountryProfile(ctx context.Context, slug string) (*models.CountryProfile, error) {
	info, ok := catalog.Country(slug)
	if !ok {
		return nil, ErrUnknownCountry
	}

	key := "country:" + slug
	var cached models.CountryProfile
	if e.cacheGet(ctx, "country", key, &cached) {
		return &cached, nil
	}

	v, _, _ := e.sf.Do(key, func() (any, error) {
		p := Params{ISO3: info.ISO3, CommodityCode: DefaultTradeCommodity}
		profile := &models.CountryProfile{Country: info.Name, CountryCode: info.ISO3}

		var wg sync.WaitGroup
		wg.Add(3)
		go func() {
			defer wg.Done()
			if v, err := e.fetch(ctx, "eia", p); err == nil {
				if energy, ok := v.(*models.EnergyData); ok {
					profile.Energy = energy
				}
			}
		}()
		go func() {
			defer wg.Done()
			if v, err := e.fetch(ctx, "comtrade", p); err == nil {
				if trade, ok := v.(*models.TradeFlowData); ok {
					profile.Trade = trade
				}
			}
		}()
		go func() {
			defer wg.Done()
			if v, err := e.fetch(ctx, "irena", p); err == nil {
				if renewable, ok := v.(*models.RenewableData); ok {
					profile.Renewable = renewable
				}
			}
		}()
		wg.Wait()

		e.cacheSet(ctx, key, profile, e.cfg.TTLProfile)
		return profile, nil
	})
	return v.(*models.CountryProfile), nil
}

// GetCommodityPrices returns the price history for one commodity, relabeled
// with the catalog's display name and unit. An upstream failure yields a nil
// series, not an error.
func (e *DataEngine) GetCommodityPrices(ctx context.Context, slug string) (*models.CommodityPriceData, error) {
	info, ok := catalog.Commodity(slug)
	if !ok {
		return nil, ErrUnknownCommodity
	}

	key := "commodity:" + slug
	var cached models.CommodityPriceData
	if e.cacheGet(ctx, "commodity", key, &cached) {
		return &cached, nil
	}

	v, _, _ := e.sf.Do(key, func() (any, error) {
		raw, err := e.fetch(ctx, "worldbank", Params{CommodityCode: info.WBCode})
		if err != nil {
			return (*models.CommodityPriceData)(nil), nil
		}
		data, ok := raw.(*models.CommodityPriceData)
		if !ok {
			return (*models.CommodityPriceData)(nil), nil
		}
		data.Commodity = info.Name
		data.Unit = info.Unit
		e.cacheSet(ctx, key, data, e.cfg.TTLPrices)
		return data, nil
	})
	return v.(*models.CommodityPriceData), nil
}

// GetTradeFlows returns import/export rows for one country and HS commodity
// code (chapter 27 when none is given).
func (e *DataEngine) GetTradeFlows(ctx context.Context, slug, commodityCode string) (*models.TradeFlowData, error) {
	info, ok := catalog.Country(slug)
	if !ok {
		return nil, ErrUnknownCountry
	}
	if commodityCode == "" {
		commodityCode = DefaultTradeCommodity
	}

	key := "trade:" + slug + ":" + commodityCode
	var cached models.TradeFlowData
	if e.cacheGet(ctx, "trade", key, &cached) {
		return &cached, nil
	}

	v, _, _ := e.sf.Do(key, func() (any, error) {
		raw, err := e.fetch(ctx, "comtrade", Params{ISO3: info.ISO3, CommodityCode: commodityCode})
		if err != nil {
			return (*models.TradeFlowData)(nil), nil
		}
		data, ok := raw.(*models.TradeFlowData)
		if !ok {
			return (*models.TradeFlowData)(nil), nil
		}
		e.cacheSet(ctx, key, data, e.cfg.TTLTrade)
		return data, nil
	})
	return v.(*models.TradeFlowData), nil
}

// GetRenewableData returns renewable capacity statistics for one country.
func (e *DataEngine) GetRenewableData(ctx context.Context, slug string) (*models.RenewableData, error) {
	info, ok := catalog.Country(slug)
	if !ok {
		return nil, ErrUnknownCountry
	}

	key := "renewable:" + slug
	var cached models.RenewableData
	if e.cacheGet(ctx, "renewable", key, &cached) {
		return &cached, nil
	}

	v, _, _ := e.sf.Do(key, func() (any, error) {
		raw, err := e.fetch(ctx, "irena", Params{ISO3: info.ISO3})
		if err != nil {
			return (*models.RenewableData)(nil), nil
		}
		data, ok := raw.(*models.RenewableData)
		if !ok {
			return (*models.RenewableData)(nil), nil
		}
		e.cacheSet(ctx, key, data, e.cfg.TTLRenewable)
		return data, nil
	})
	return v.(*models.RenewableData), nil
}

func (e *DataEngine) fetch(ctx context.Context, name string, p Params) (any, error) {
	src, ok := e.sources[name]
	if !ok {
		return nil, fmt.Errorf("no source registered for %q", name)
	}
	start := time.Now()
	v, err := src.Fetch(ctx, p)
	e.metrics.ObserveFetch(name, start)
	e.metrics.SourceFetch(name, err)
	if err != nil {
		reason := "upstream"
		if errors.Is(err, ErrNotConfigured) {
			reason = "not_configured"
		}
		logrus.WithError(err).WithFields(logrus.Fields{
			"source": name,
			"reason": reason,
		}).Warn("source fetch failed")
	}
	return v, err
}

func (e *DataEngine) cacheGet(ctx context.Context, resource, key string, out any) bool {
	if e.cache == nil {
		return false
	}
	if b, ok := e.cache.Get(ctx, key); ok {
		if err := UnmarshalCache(b, out); err == nil {
			e.metrics.CacheHit(resource)
			return true
		}
	}
	e.metrics.CacheMiss(resource)
	return false
}

func (e *DataEngine) cacheSet(ctx context.Context, key string, v any, ttl time.Duration) {
	if e.cache == nil {
		return
	}
	if b, err := MarshalCache(v); err == nil {
		_ = e.cache.Set(ctx, key, b, ttl)
	}
}

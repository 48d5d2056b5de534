package collector

import (
	"fmt"
	"log"
	"time"

	"TradeSentinel/internal/barcache"
	"TradeSentinel/internal/metrics"
	"TradeSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series map[string]model.BarSeries
	Err    error
	Price  float64
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(symbol, _, _ string) (model.BarSeries, error) {
	if m.Err != nil {
		return model.BarSeries{}, m.Err
	}
	if s, ok := m.Series[symbol]; ok {
		return s, nil
	}
	return model.NewFullBarSeries(symbol, generateMockBars(m.Price, 78)), nil
}

func generateMockBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   time.Now().Add(-time.Duration(count-i) * 5 * time.Minute),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector retrieves bar series, consulting the cache before the network.
type Collector struct {
	Fetcher  Fetcher
	Cache    barcache.Cache
	Interval string
	Duration string
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, cache barcache.Cache, interval, duration string) *Collector {
	if cache == nil {
		cache = barcache.NewNoopCache()
	}
	return &Collector{Fetcher: fetcher, Cache: cache, Interval: interval, Duration: duration}
}

// Collect returns the bar series for a symbol.
func (c *Collector) Collect(symbol string) (model.BarSeries, error) {
	if series, ok, err := c.Cache.Get(symbol, c.Interval, c.Duration); err != nil {
		log.Printf("[WARN] bar cache read failed: %v", err)
	} else if ok {
		metrics.CacheHits.WithLabelValues(symbol).Inc()
		return series, nil
	}
	metrics.CacheMisses.WithLabelValues(symbol).Inc()

	series, err := c.Fetcher.FetchBars(symbol, c.Interval, c.Duration)
	if err != nil {
		metrics.FetchErrors.WithLabelValues(c.Fetcher.Name()).Inc()
		return model.BarSeries{}, fmt.Errorf("fetch bars for %s: %w", symbol, err)
	}

	if err := c.Cache.Put(symbol, c.Interval, c.Duration, series); err != nil {
		log.Printf("[WARN] bar cache write failed: %v", err)
	}
	return series, nil
}

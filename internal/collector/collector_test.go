package collector

import (
	"errors"
	"testing"

	"TradeSentinel/internal/model"
)

// countingFetcher wraps MockFetcher and counts network fetches.
type countingFetcher struct {
	MockFetcher
	calls int
}

func (c *countingFetcher) FetchBars(symbol, interval, duration string) (model.BarSeries, error) {
	c.calls++
	return c.MockFetcher.FetchBars(symbol, interval, duration)
}

// memoryCache is a trivial in-process Cache for collector tests.
type memoryCache struct {
	entries map[string]model.BarSeries
}

func (m *memoryCache) Get(symbol, interval, duration string) (model.BarSeries, bool, error) {
	s, ok := m.entries[symbol+"|"+interval+"|"+duration]
	return s, ok, nil
}

func (m *memoryCache) Put(symbol, interval, duration string, series model.BarSeries) error {
	m.entries[symbol+"|"+interval+"|"+duration] = series
	return nil
}

func (m *memoryCache) Close() error { return nil }

func TestCollector_UsesCache(t *testing.T) {
	fetcher := &countingFetcher{MockFetcher: MockFetcher{Price: 100}}
	cache := &memoryCache{entries: map[string]model.BarSeries{}}
	col := NewCollector(fetcher, cache, "5min", "1d")

	first, err := col.Collect("TSLA")
	if err != nil {
		t.Fatalf("first collect: %v", err)
	}
	second, err := col.Collect("TSLA")
	if err != nil {
		t.Fatalf("second collect: %v", err)
	}
	if fetcher.calls != 1 {
		t.Errorf("expected 1 network fetch, got %d", fetcher.calls)
	}
	if first.Len() != second.Len() {
		t.Errorf("cached series differs: %d vs %d bars", first.Len(), second.Len())
	}
}

func TestCollector_FetchError(t *testing.T) {
	fetcher := &MockFetcher{Err: errors.New("gateway down")}
	col := NewCollector(fetcher, nil, "5min", "1d")
	if _, err := col.Collect("TSLA"); err == nil {
		t.Error("expected error when the fetcher fails")
	}
}

func TestMockFetcher_GeneratedBars(t *testing.T) {
	fetcher := &MockFetcher{Price: 250}
	series, err := fetcher.FetchBars("TSLA", "5min", "1d")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if series.Empty() {
		t.Fatal("expected generated bars")
	}
	for i := 1; i < series.Len(); i++ {
		if !series.Bars[i-1].Time.Before(series.Bars[i].Time) {
			t.Fatalf("bars not in ascending time order at %d", i)
		}
	}
	if !series.HasAll(model.FieldHigh, model.FieldLow, model.FieldClose, model.FieldVolume) {
		t.Error("expected full field set from the mock")
	}
}

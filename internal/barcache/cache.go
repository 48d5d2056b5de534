package barcache

import "TradeSentinel/internal/model"

// Cache stores fetched bar series so repeated checks within the TTL do not
// hit the data source again. Evaluation results are never stored.
type Cache interface {
	Get(symbol, interval, duration string) (model.BarSeries, bool, error)
	Put(symbol, interval, duration string, series model.BarSeries) error
	Close() error
}

// NoopCache is used when no cache is configured.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (n *NoopCache) Get(_, _, _ string) (model.BarSeries, bool, error) {
	return model.BarSeries{}, false, nil
}
func (n *NoopCache) Put(_, _, _ string, _ model.BarSeries) error { return nil }
func (n *NoopCache) Close() error                                { return nil }

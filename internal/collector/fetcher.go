package collector

import "TradeSentinel/internal/model"

// Fetcher defines the interface for retrieving historical bars.
// Interval examples: "1min", "5min", "1h", "1d".
// Duration examples: "1d", "1w", "1mo".
type Fetcher interface {
	FetchBars(symbol, interval, duration string) (model.BarSeries, error)
	Name() string
}

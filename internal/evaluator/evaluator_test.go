package evaluator

import (
	"errors"
	"testing"
	"time"

	"TradeSentinel/internal/collector"
	"TradeSentinel/internal/model"
	"TradeSentinel/internal/strategy"
)

func newTestEvaluator(fetcher collector.Fetcher) *Evaluator {
	col := collector.NewCollector(fetcher, nil, "5min", "1d")
	return New(col, strategy.NewEngine(strategy.DefaultPeriods()))
}

func risingSeries(symbol string, n int) model.BarSeries {
	start := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	bars := make([]model.Bar, n)
	for i := 0; i < n; i++ {
		c := 100.0 + 0.5*float64(i)
		bars[i] = model.Bar{
			Time:   start.Add(time.Duration(i) * 5 * time.Minute),
			Open:   c - 0.2,
			High:   c + 0.3,
			Low:    c - 0.4,
			Close:  c,
			Volume: 1000,
		}
	}
	bars[n-1].Volume = 2000
	return model.NewFullBarSeries(symbol, bars)
}

func TestEvaluate_HappyPath(t *testing.T) {
	fetcher := &collector.MockFetcher{
		Series: map[string]model.BarSeries{"TSLA": risingSeries("TSLA", 20)},
	}
	report := newTestEvaluator(fetcher).Evaluate("TSLA")

	if report.Symbol != "TSLA" {
		t.Errorf("expected symbol TSLA, got %s", report.Symbol)
	}
	if report.TotalIndicators != len(model.AllSignals) {
		t.Errorf("expected %d indicators, got %d", len(model.AllSignals), report.TotalIndicators)
	}
	if report.PositiveSignals != 6 {
		t.Errorf("expected 6 positive signals for a strongly rising series, got %d", report.PositiveSignals)
	}
	if report.Recommendation != "Strong Buy" {
		t.Errorf("expected Strong Buy, got %q", report.Recommendation)
	}
}

func TestEvaluate_FetchFailure(t *testing.T) {
	fetcher := &collector.MockFetcher{Err: errors.New("gateway unreachable")}
	report := newTestEvaluator(fetcher).Evaluate("TSLA")

	if report.Recommendation != model.SentinelRecommendation {
		t.Errorf("expected sentinel recommendation, got %q", report.Recommendation)
	}
	if report.PositiveSignals != 0 || report.TotalIndicators != 0 {
		t.Errorf("expected zero counts, got %d/%d", report.PositiveSignals, report.TotalIndicators)
	}
	if len(report.Indicators) != 0 {
		t.Errorf("expected empty indicator map, got %v", report.Indicators)
	}
}

func TestEvaluate_EmptySeries(t *testing.T) {
	fetcher := &collector.MockFetcher{
		Series: map[string]model.BarSeries{"TSLA": model.NewFullBarSeries("TSLA", nil)},
	}
	report := newTestEvaluator(fetcher).Evaluate("TSLA")

	if report.Recommendation != model.SentinelRecommendation {
		t.Errorf("expected sentinel recommendation for empty series, got %q", report.Recommendation)
	}
}

package evaluator

import (
	"log"

	"TradeSentinel/internal/collector"
	"TradeSentinel/internal/metrics"
	"TradeSentinel/internal/model"
	"TradeSentinel/internal/strategy"
)

// Evaluator sequences bar retrieval, signal computation, and the
// recommendation for a single symbol.
type Evaluator struct {
	Collector *collector.Collector
	Engine    *strategy.Engine
}

// New creates an Evaluator.
func New(col *collector.Collector, engine *strategy.Engine) *Evaluator {
	return &Evaluator{Collector: col, Engine: engine}
}

// Evaluate produces the report for one symbol. When bars cannot be retrieved
// (or the source returns an empty series) it substitutes the sentinel report
// instead of propagating the failure.
func (e *Evaluator) Evaluate(symbol string) *model.Report {
	series, err := e.Collector.Collect(symbol)
	if err != nil {
		log.Printf("[ERROR] collect %s: %v", symbol, err)
		metrics.Evaluations.WithLabelValues(symbol, "no_data").Inc()
		return model.NewSentinelReport(symbol)
	}
	if series.Empty() {
		log.Printf("[WARN] no bars returned for %s", symbol)
		metrics.Evaluations.WithLabelValues(symbol, "no_data").Inc()
		return model.NewSentinelReport(symbol)
	}

	signals := e.Engine.Compute(series)
	verdict := strategy.Recommend(signals)

	metrics.Evaluations.WithLabelValues(symbol, verdict.Outcome.String()).Inc()

	return &model.Report{
		Symbol:          symbol,
		PositiveSignals: verdict.Positive,
		TotalIndicators: verdict.Total,
		Indicators:      signals,
		Recommendation:  verdict.Outcome.String(),
	}
}

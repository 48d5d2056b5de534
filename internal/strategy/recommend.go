package strategy

import "TradeSentinel/internal/model"

// thresholds maps a minimum count of true signals to a recommendation,
// evaluated top-down: the highest bound met wins.
var thresholds = []struct {
	MinTrue int
	Outcome model.Recommendation
}{
	{5, model.StrongBuy},
	{3, model.CautiousBuy},
	{1, model.HoldWait},
	{0, model.DoNotEnter},
}

// Recommend reduces a signal set to a graded verdict. The total is taken
// from the set itself, not assumed to be six. A degenerate empty set maps
// to Hold / Wait: the orchestrator substitutes a sentinel report when data
// could not be retrieved at all, so an empty set here means "no conviction
// either way", never "do not enter".
func Recommend(signals model.SignalSet) model.Verdict {
	verdict := model.Verdict{
		Outcome:  model.HoldWait,
		Positive: signals.CountTrue(),
		Total:    signals.Total(),
	}
	if verdict.Total == 0 {
		return verdict
	}
	for _, t := range thresholds {
		if verdict.Positive >= t.MinTrue {
			verdict.Outcome = t.Outcome
			break
		}
	}
	return verdict
}

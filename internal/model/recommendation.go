package model

// Recommendation is the graded outcome of one evaluation. The order is
// meaningful: a higher value means stronger conviction to enter.
type Recommendation int

const (
	DoNotEnter Recommendation = iota
	HoldWait
	CautiousBuy
	StrongBuy
)

// String returns the display form used in reports.
func (r Recommendation) String() string {
	switch r {
	case DoNotEnter:
		return "Do Not Enter"
	case HoldWait:
		return "Hold / Wait"
	case CautiousBuy:
		return "Cautious Buy"
	case StrongBuy:
		return "Strong Buy"
	}
	return "Unknown"
}

// Verdict pairs a recommendation with its supporting signal counts.
type Verdict struct {
	Outcome  Recommendation
	Positive int
	Total    int
}

// SentinelRecommendation is reported when bar retrieval failed upstream.
const SentinelRecommendation = "Could not retrieve data."

// Report is the external-facing result of evaluating one symbol.
type Report struct {
	Symbol          string          `json:"symbol"`
	PositiveSignals int             `json:"positiveSignals"`
	TotalIndicators int             `json:"totalIndicators"`
	Indicators      map[Signal]bool `json:"indicators"`
	Recommendation  string          `json:"recommendation"`
}

// NewSentinelReport builds the report substituted when no data was available.
func NewSentinelReport(symbol string) *Report {
	return &Report{
		Symbol:          symbol,
		PositiveSignals: 0,
		TotalIndicators: 0,
		Indicators:      map[Signal]bool{},
		Recommendation:  SentinelRecommendation,
	}
}

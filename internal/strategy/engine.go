package strategy

import (
	"TradeSentinel/internal/calculator"
	"TradeSentinel/internal/model"
)

// Periods holds the indicator parameters used by the Engine. Passing them
// explicitly keeps the engine testable with alternate periods.
type Periods struct {
	EMA             int // trend EMA length
	RSI             int // Wilder RSI length
	MACDFast        int
	MACDSlow        int
	MACDSignal      int
	VolumeLookback  int // minimum prior bars for the volume average
	StructureDepth  int // minimum prior bars for the breakout check
	StructureWindow int // bars before the last to take the max close over
}

// DefaultPeriods returns the standard parameter set.
func DefaultPeriods() Periods {
	return Periods{
		EMA:             13,
		RSI:             14,
		MACDFast:        12,
		MACDSlow:        26,
		MACDSignal:      9,
		VolumeLookback:  10,
		StructureDepth:  5,
		StructureWindow: 4,
	}
}

// Engine derives the boolean signal set from a bar series. It is stateless
// and safe for concurrent use across independent series.
type Engine struct {
	Periods Periods
}

// NewEngine creates an Engine with the given periods.
func NewEngine(p Periods) *Engine {
	return &Engine{Periods: p}
}

// Compute evaluates all six signals against the last bar of the series.
// Unavailable inputs (empty series, missing fields, insufficient history)
// degrade the affected signal to false; Compute never fails as a whole.
func (e *Engine) Compute(series model.BarSeries) model.SignalSet {
	set := model.NewSignalSet()
	if series.Empty() {
		return set
	}

	closes := series.Closes()
	lastClose := series.Last().Close

	// EMA trend: last close above the trend EMA. Computed regardless of
	// series length; early EMA values are a known approximation.
	if ema, err := calculator.LastEMA(closes, e.Periods.EMA); err == nil {
		set[model.SignalEMATrend] = lastClose > ema
	}

	// VWAP trend: requires the full OHLCV column set.
	if series.HasAll(model.FieldHigh, model.FieldLow, model.FieldClose, model.FieldVolume) {
		if vwap, err := calculator.VWAP(series.Bars); err == nil {
			set[model.SignalVWAPTrend] = lastClose > vwap
		}
	}

	// RSI bias: bullish when above the midline. Undefined until enough
	// close-to-close differences exist.
	if rsi, err := calculator.RSI(closes, e.Periods.RSI); err == nil {
		set[model.SignalRSIBias] = rsi > 50
	}

	// MACD bias: positive histogram.
	if hist, err := calculator.MACDHistogram(closes, e.Periods.MACDFast, e.Periods.MACDSlow, e.Periods.MACDSignal); err == nil {
		set[model.SignalMACDBias] = hist > 0
	}

	// Volume surge: last volume above the mean of all prior volumes.
	if series.Has(model.FieldVolume) && series.Len() > e.Periods.VolumeLookback {
		vols := series.Volumes()
		if avg, err := calculator.Mean(vols[:len(vols)-1]); err == nil {
			set[model.SignalVolumeSurge] = series.Last().Volume > avg
		}
	}

	// Structure break: last close above the max close of the window of bars
	// immediately preceding it, a simple higher-high breakout proxy.
	if series.Len() > e.Periods.StructureDepth && series.Len() > e.Periods.StructureWindow {
		n := series.Len()
		maxClose := closes[n-1-e.Periods.StructureWindow]
		for _, c := range closes[n-e.Periods.StructureWindow : n-1] {
			if c > maxClose {
				maxClose = c
			}
		}
		set[model.SignalStructureBreak] = lastClose > maxClose
	}

	return set
}

package calculator

import (
	"errors"

	"TradeSentinel/internal/model"
)

// VWAP computes the session volume-weighted average price over bars:
// cumulative sum(typical_price * volume) / cumulative sum(volume),
// where typical_price = (high + low + close) / 3.
func VWAP(bars []model.Bar) (float64, error) {
	if len(bars) == 0 {
		return 0, errors.New("no bars provided")
	}
	var pvSum, volSum float64
	for _, b := range bars {
		typical := (b.High + b.Low + b.Close) / 3.0
		pvSum += typical * b.Volume
		volSum += b.Volume
	}
	if volSum == 0 {
		return 0, errors.New("zero total volume")
	}
	return pvSum / volSum, nil
}

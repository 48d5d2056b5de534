package calculator

import "errors"

// MACDHistogram computes the last value of the MACD histogram:
// (fast EMA − slow EMA) of values, minus a signal-period EMA of that difference.
func MACDHistogram(values []float64, fast, slow, signal int) (float64, error) {
	if fast <= 0 || slow <= 0 || signal <= 0 {
		return 0, errors.New("periods must be positive")
	}
	if len(values) == 0 {
		return 0, errors.New("no values provided")
	}

	fastEMA, err := EMA(values, fast)
	if err != nil {
		return 0, err
	}
	slowEMA, err := EMA(values, slow)
	if err != nil {
		return 0, err
	}

	diff := make([]float64, len(values))
	for i := range values {
		diff[i] = fastEMA[i] - slowEMA[i]
	}

	signalEMA, err := EMA(diff, signal)
	if err != nil {
		return 0, err
	}

	last := len(values) - 1
	return diff[last] - signalEMA[last], nil
}

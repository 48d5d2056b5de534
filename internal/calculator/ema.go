package calculator

import "errors"

// EMA computes the recursive exponential moving average series of values.
// The series is seeded with the first value; smoothing factor = 2/(period+1).
// Early values are less accurate when len(values) < period, which is accepted.
func EMA(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	if len(values) == 0 {
		return nil, errors.New("no values provided")
	}
	alpha := 2.0 / (float64(period) + 1.0)
	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = out[i-1] + alpha*(values[i]-out[i-1])
	}
	return out, nil
}

// LastEMA returns only the final EMA value.
func LastEMA(values []float64, period int) (float64, error) {
	series, err := EMA(values, period)
	if err != nil {
		return 0, err
	}
	return series[len(series)-1], nil
}

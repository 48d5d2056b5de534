package model

import (
	"strings"
	"time"
)

// Bar represents a single OHLCV candlestick.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Field identifies one OHLCV column of a bar series.
type Field string

const (
	FieldTime   Field = "time"
	FieldOpen   Field = "open"
	FieldHigh   Field = "high"
	FieldLow    Field = "low"
	FieldClose  Field = "close"
	FieldVolume Field = "volume"
)

// fieldAliases maps normalized column names seen across data sources to fields.
var fieldAliases = map[string]Field{
	"time":      FieldTime,
	"date":      FieldTime,
	"datetime":  FieldTime,
	"timestamp": FieldTime,
	"open":      FieldOpen,
	"o":         FieldOpen,
	"high":      FieldHigh,
	"h":         FieldHigh,
	"low":       FieldLow,
	"l":         FieldLow,
	"close":     FieldClose,
	"c":         FieldClose,
	"volume":    FieldVolume,
	"vol":       FieldVolume,
	"v":         FieldVolume,
}

// ParseField resolves a column name to a Field, treating names case-insensitively.
func ParseField(name string) (Field, bool) {
	f, ok := fieldAliases[strings.ToLower(strings.TrimSpace(name))]
	return f, ok
}

// BarSeries holds ordered bars for a single instrument, ascending by time,
// plus the set of fields the data source actually provided.
type BarSeries struct {
	Symbol  string
	Bars    []Bar
	present map[Field]bool
}

// NewBarSeries creates a series declaring which fields are present.
func NewBarSeries(symbol string, bars []Bar, fields ...Field) BarSeries {
	present := make(map[Field]bool, len(fields))
	for _, f := range fields {
		present[f] = true
	}
	return BarSeries{Symbol: symbol, Bars: bars, present: present}
}

// NewFullBarSeries creates a series with all OHLCV fields present.
func NewFullBarSeries(symbol string, bars []Bar) BarSeries {
	return NewBarSeries(symbol, bars,
		FieldTime, FieldOpen, FieldHigh, FieldLow, FieldClose, FieldVolume)
}

// Len returns the number of bars.
func (s BarSeries) Len() int { return len(s.Bars) }

// Empty reports whether the series has no bars.
func (s BarSeries) Empty() bool { return len(s.Bars) == 0 }

// Last returns the most recent bar. The series must be non-empty.
func (s BarSeries) Last() Bar { return s.Bars[len(s.Bars)-1] }

// Has reports whether the data source provided the given field.
func (s BarSeries) Has(f Field) bool { return s.present[f] }

// HasAll reports whether every given field is present.
func (s BarSeries) HasAll(fields ...Field) bool {
	for _, f := range fields {
		if !s.present[f] {
			return false
		}
	}
	return true
}

// Fields returns the present fields in canonical order.
func (s BarSeries) Fields() []Field {
	all := []Field{FieldTime, FieldOpen, FieldHigh, FieldLow, FieldClose, FieldVolume}
	out := make([]Field, 0, len(all))
	for _, f := range all {
		if s.present[f] {
			out = append(out, f)
		}
	}
	return out
}

// Closes returns the close column.
func (s BarSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Volumes returns the volume column.
func (s BarSeries) Volumes() []float64 {
	vols := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		vols[i] = b.Volume
	}
	return vols
}

package model

// Signal names one boolean technical check. The enumeration is closed: an
// evaluation always produces exactly these six.
type Signal string

const (
	SignalEMATrend       Signal = "ema_trend"
	SignalVWAPTrend      Signal = "vwap_trend"
	SignalRSIBias        Signal = "rsi_bias"
	SignalMACDBias       Signal = "macd_bias"
	SignalVolumeSurge    Signal = "volume_surge"
	SignalStructureBreak Signal = "structure_break"
)

// AllSignals lists every signal in report order.
var AllSignals = []Signal{
	SignalEMATrend,
	SignalVWAPTrend,
	SignalRSIBias,
	SignalMACDBias,
	SignalVolumeSurge,
	SignalStructureBreak,
}

// SignalSet maps each signal name to its boolean outcome.
type SignalSet map[Signal]bool

// NewSignalSet returns a set with every signal present and false.
func NewSignalSet() SignalSet {
	set := make(SignalSet, len(AllSignals))
	for _, s := range AllSignals {
		set[s] = false
	}
	return set
}

// CountTrue returns the number of positive signals.
func (s SignalSet) CountTrue() int {
	n := 0
	for _, v := range s {
		if v {
			n++
		}
	}
	return n
}

// Total returns the number of signals in the set.
func (s SignalSet) Total() int { return len(s) }

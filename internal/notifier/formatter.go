package notifier

import (
	"fmt"
	"strings"
	"time"

	"TradeSentinel/internal/model"
)

// signalLabels maps signal names to their display form.
var signalLabels = map[model.Signal]string{
	model.SignalEMATrend:       "EMA trend",
	model.SignalVWAPTrend:      "VWAP trend",
	model.SignalRSIBias:        "RSI bias",
	model.SignalMACDBias:       "MACD bias",
	model.SignalVolumeSurge:    "Volume surge",
	model.SignalStructureBreak: "Structure break",
}

// FormatReport formats an evaluation report into a Telegram message.
func FormatReport(report *model.Report) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n\n", report.Symbol, time.Now().Format("2006-01-02 15:04")))

	if report.Recommendation == model.SentinelRecommendation {
		b.WriteString("❌ Could not retrieve data.\n")
		return b.String()
	}

	b.WriteString("<b>Signals:</b>\n")
	for _, s := range model.AllSignals {
		mark := "✖"
		if report.Indicators[s] {
			mark = "✔"
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", mark, signalLabels[s]))
	}
	b.WriteString("  ─────────────────\n")
	b.WriteString(fmt.Sprintf("  Positive: %d / %d\n\n", report.PositiveSignals, report.TotalIndicators))

	b.WriteString(fmt.Sprintf("💡 <b>Recommendation:</b> %s\n", report.Recommendation))
	return b.String()
}

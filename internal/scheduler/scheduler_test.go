package scheduler

import (
	"context"
	"errors"
	"strings"
	"testing"

	"TradeSentinel/internal/collector"
	"TradeSentinel/internal/evaluator"
	"TradeSentinel/internal/model"
	"TradeSentinel/internal/notifier"
	"TradeSentinel/internal/strategy"
)

func newTestScheduler(fetcher collector.Fetcher) *Scheduler {
	col := collector.NewCollector(fetcher, nil, "5min", "1d")
	ev := evaluator.New(col, strategy.NewEngine(strategy.DefaultPeriods()))
	tn := notifier.NewTelegramNotifier("token", "42", "")
	return NewScheduler(context.Background(), ev, tn, "TSLA")
}

func TestHandleCommand_Help(t *testing.T) {
	s := newTestScheduler(&collector.MockFetcher{Price: 100})

	for _, cmd := range []string{"/help", "/start", "/HELP"} {
		reply := s.HandleCommand(cmd)
		for _, want := range []string{"/check [SYMBOL]", "/report", "/help"} {
			if !strings.Contains(reply, want) {
				t.Errorf("%s reply missing %q:\n%s", cmd, want, reply)
			}
		}
		if strings.Contains(reply, "\u2014") {
			t.Errorf("%s reply contains an em-dash:\n%s", cmd, reply)
		}
	}
}

func TestHandleCommand_CheckWithSymbol(t *testing.T) {
	s := newTestScheduler(&collector.MockFetcher{Price: 250})

	reply := s.HandleCommand("/check nvda")
	if !strings.Contains(reply, "NVDA") {
		t.Errorf("expected reply for NVDA, got:\n%s", reply)
	}
	if !strings.Contains(reply, "Recommendation") {
		t.Errorf("expected a recommendation line, got:\n%s", reply)
	}
}

func TestHandleCommand_ReportUsesConfiguredSymbol(t *testing.T) {
	s := newTestScheduler(&collector.MockFetcher{Price: 100})

	reply := s.HandleCommand("/report")
	if !strings.Contains(reply, "TSLA") {
		t.Errorf("expected reply for TSLA, got:\n%s", reply)
	}
}

func TestHandleCommand_FetchFailureYieldsSentinel(t *testing.T) {
	s := newTestScheduler(&collector.MockFetcher{Err: errors.New("gateway down")})

	reply := s.HandleCommand("/report")
	if !strings.Contains(reply, model.SentinelRecommendation) {
		t.Errorf("expected %q in reply, got:\n%s", model.SentinelRecommendation, reply)
	}
}

func TestHandleCommand_UnknownAndEmpty(t *testing.T) {
	s := newTestScheduler(&collector.MockFetcher{Price: 100})

	if reply := s.HandleCommand("/unknown"); reply != "" {
		t.Errorf("expected empty reply for unknown command, got %q", reply)
	}
	if reply := s.HandleCommand("   "); reply != "" {
		t.Errorf("expected empty reply for blank input, got %q", reply)
	}
}

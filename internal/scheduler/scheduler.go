package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"TradeSentinel/internal/evaluator"
	"TradeSentinel/internal/notifier"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic evaluation of the configured symbol and
// answers ad-hoc Telegram commands.
type Scheduler struct {
	Cron      *cron.Cron
	Evaluator *evaluator.Evaluator
	Notifier  *notifier.TelegramNotifier
	Symbol    string
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, ev *evaluator.Evaluator, tn *notifier.TelegramNotifier, symbol string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Evaluator: ev,
		Notifier:  tn,
		Symbol:    symbol,
		Ctx:       ctx,
	}
}

// Register schedules the periodic evaluation task.
func (s *Scheduler) Register(checkCron string) error {
	if _, err := s.Cron.AddFunc(checkCron, s.checkTask); err != nil {
		return fmt.Errorf("register check task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the evaluation immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.checkTask()
}

func (s *Scheduler) checkTask() {
	log.Printf("[INFO] running scheduled check for %s", s.Symbol)
	report := s.Evaluator.Evaluate(s.Symbol)
	if err := s.Notifier.NotifyReport(s.Ctx, report); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}

// HandleCommand processes a Telegram command and returns the reply text.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}

	switch strings.ToLower(fields[0]) {
	case "/check":
		symbol := s.Symbol
		if len(fields) > 1 {
			symbol = strings.ToUpper(fields[1])
		}
		report := s.Evaluator.Evaluate(symbol)
		return notifier.FormatReport(report)
	case "/report":
		report := s.Evaluator.Evaluate(s.Symbol)
		return notifier.FormatReport(report)
	case "/help", "/start":
		return "Commands:\n" +
			"/check [SYMBOL] - evaluate a symbol now\n" +
			"/report - evaluate the configured symbol\n" +
			"/help - this message"
	default:
		return ""
	}
}

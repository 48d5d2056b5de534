package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"TradeSentinel/internal/barcache"
	"TradeSentinel/internal/collector"
	"TradeSentinel/internal/config"
	"TradeSentinel/internal/evaluator"
	"TradeSentinel/internal/metrics"
	"TradeSentinel/internal/notifier"
	"TradeSentinel/internal/scheduler"
	"TradeSentinel/internal/strategy"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	symbolFlag := flag.String("symbol", "", "evaluate one symbol, print the JSON report, and exit")
	configFlag := flag.String("config", "", "path to config file (default configs/config.yaml)")
	flag.Parse()

	// .env is optional; real env always wins.
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	if *configFlag != "" {
		cfgPath = *configFlag
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.Gateway.BaseURL != "" {
		fetcher = collector.NewGatewayFetcher(cfg.Gateway.BaseURL, cfg.Gateway.APIKey, cfg.Gateway.ClientID, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init bar cache
	var cache barcache.Cache
	if cfg.Cache.SQLitePath != "" {
		sc, err := barcache.NewSQLiteCache(cfg.Cache.SQLitePath, cfg.CacheTTL())
		if err != nil {
			log.Printf("[WARN] init sqlite bar cache failed, using noop: %v", err)
			cache = barcache.NewNoopCache()
		} else {
			cache = sc
			defer sc.Close()
		}
	} else {
		cache = barcache.NewNoopCache()
	}

	col := collector.NewCollector(fetcher, cache, cfg.Data.Interval, cfg.Data.Duration)
	ev := evaluator.New(col, strategy.NewEngine(strategy.DefaultPeriods()))

	// One-shot mode: evaluate a single symbol and print the JSON report.
	if *symbolFlag != "" {
		report := ev.Evaluate(strings.ToUpper(*symbolFlag))
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			log.Fatalf("[FATAL] marshal report: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	// Daemon mode
	log.Println("[INFO] TradeSentinel starting...")
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, ev, tn, cfg.Data.Symbol)
	if err := sched.Register(cfg.Schedule.CheckCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if cfg.Metrics.ListenAddr != "" {
		srv := metrics.Serve(cfg.Metrics.ListenAddr)
		defer srv.Close()
		log.Printf("[INFO] metrics listening on %s", cfg.Metrics.ListenAddr)
	}

	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, evaluating now")
		go sched.RunNow()
	}

	log.Println("[INFO] TradeSentinel is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] TradeSentinel stopped")
}

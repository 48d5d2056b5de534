package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Data.Symbol != "TSLA" {
		t.Errorf("expected default symbol TSLA, got %q", cfg.Data.Symbol)
	}
	if cfg.Data.Interval != "5min" || cfg.Data.Duration != "1d" {
		t.Errorf("expected default interval/duration, got %q/%q", cfg.Data.Interval, cfg.Data.Duration)
	}
	if cfg.CacheTTL() != 5*time.Minute {
		t.Errorf("expected default TTL 5m, got %s", cfg.CacheTTL())
	}
	if cfg.Schedule.CheckCron == "" {
		t.Error("expected a default check cron")
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
gateway:
  base_url: "http://127.0.0.1:7496"
  api_key: "file-key"
data:
  symbol: "AAPL"
  interval: "1h"
`)
	t.Setenv("GATEWAY_API_KEY", "env-key")
	t.Setenv("SYMBOL", "NVDA")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Gateway.BaseURL != "http://127.0.0.1:7496" {
		t.Errorf("expected file base_url, got %q", cfg.Gateway.BaseURL)
	}
	if cfg.Gateway.APIKey != "env-key" {
		t.Errorf("expected env override for api_key, got %q", cfg.Gateway.APIKey)
	}
	if cfg.Data.Symbol != "NVDA" {
		t.Errorf("expected env override for symbol, got %q", cfg.Data.Symbol)
	}
	if cfg.Data.Interval != "1h" {
		t.Errorf("expected file interval, got %q", cfg.Data.Interval)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation failure without telegram credentials")
	}
	cfg.Telegram.BotToken = "token"
	cfg.Telegram.ChatID = "chat"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

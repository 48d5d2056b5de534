package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Gateway struct {
		BaseURL  string `yaml:"base_url"`
		APIKey   string `yaml:"api_key"`
		ClientID int    `yaml:"client_id"`
	} `yaml:"gateway"`
	Data struct {
		Symbol   string `yaml:"symbol"`
		Interval string `yaml:"interval"`
		Duration string `yaml:"duration"`
	} `yaml:"data"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		CheckCron string `yaml:"check_cron"`
	} `yaml:"schedule"`
	Cache struct {
		SQLitePath string `yaml:"sqlite_path"`
		TTL        string `yaml:"ttl"` // Go duration string, e.g. "5m"
	} `yaml:"cache"`
	Metrics struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"metrics"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("GATEWAY_BASE_URL"); v != "" {
		cfg.Gateway.BaseURL = v
	}
	if v := os.Getenv("GATEWAY_API_KEY"); v != "" {
		cfg.Gateway.APIKey = v
	}
	if v := os.Getenv("GATEWAY_CLIENT_ID"); v != "" {
		var id int
		if _, err := fmt.Sscanf(v, "%d", &id); err == nil {
			cfg.Gateway.ClientID = id
		}
	}
	if v := os.Getenv("SYMBOL"); v != "" {
		cfg.Data.Symbol = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("CHECK_CRON"); v != "" {
		cfg.Schedule.CheckCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Cache.SQLitePath = v
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		cfg.Metrics.ListenAddr = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Data.Symbol == "" {
		cfg.Data.Symbol = "TSLA"
	}
	if cfg.Data.Interval == "" {
		cfg.Data.Interval = "5min"
	}
	if cfg.Data.Duration == "" {
		cfg.Data.Duration = "1d"
	}
	if cfg.Gateway.ClientID == 0 {
		cfg.Gateway.ClientID = 1
	}
	if cfg.Schedule.CheckCron == "" {
		cfg.Schedule.CheckCron = "0 */30 9-16 * * 1-5"
	}
	if cfg.Cache.TTL == "" {
		cfg.Cache.TTL = "5m"
	}

	return cfg, nil
}

// CacheTTL parses the configured cache TTL, falling back to 5 minutes.
func (c *Config) CacheTTL() time.Duration {
	ttl, err := time.ParseDuration(c.Cache.TTL)
	if err != nil || ttl <= 0 {
		return 5 * time.Minute
	}
	return ttl
}

// Validate checks that fields required for daemon mode are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.Data.Symbol == "" {
		return fmt.Errorf("data.symbol is required")
	}
	return nil
}

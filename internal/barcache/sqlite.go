package barcache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"TradeSentinel/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteCache persists bar series to a SQLite database with a TTL.
type SQLiteCache struct {
	db  *sql.DB
	ttl time.Duration
	mu  sync.Mutex
	now func() time.Time
}

// cachedBar is the JSON row shape stored in the payload column.
type cachedBar struct {
	Time   int64   `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

type cachedSeries struct {
	Fields []model.Field `json:"fields"`
	Bars   []cachedBar   `json:"bars"`
}

// NewSQLiteCache opens (or creates) the database and runs migrations.
func NewSQLiteCache(dbPath string, ttl time.Duration) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so a one-shot check can read while the daemon writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	c := &SQLiteCache{db: db, ttl: ttl, now: time.Now}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite bar cache opened: %s (ttl %s)", dbPath, ttl)
	return c, nil
}

func (c *SQLiteCache) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS bar_cache (
			symbol     TEXT NOT NULL,
			interval   TEXT NOT NULL,
			duration   TEXT NOT NULL,
			fetched_at INTEGER NOT NULL,
			payload    TEXT NOT NULL,
			PRIMARY KEY (symbol, interval, duration)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bar_cache_fetched ON bar_cache(fetched_at)`,
	}
	for _, s := range stmts {
		if _, err := c.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// Get returns the cached series if one exists and is within the TTL.
func (c *SQLiteCache) Get(symbol, interval, duration string) (model.BarSeries, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var fetchedAt int64
	var payload string
	err := c.db.QueryRow(
		`SELECT fetched_at, payload FROM bar_cache WHERE symbol=? AND interval=? AND duration=?`,
		symbol, interval, duration,
	).Scan(&fetchedAt, &payload)
	if err == sql.ErrNoRows {
		return model.BarSeries{}, false, nil
	}
	if err != nil {
		return model.BarSeries{}, false, fmt.Errorf("query cache: %w", err)
	}

	if c.now().Sub(time.Unix(fetchedAt, 0)) > c.ttl {
		return model.BarSeries{}, false, nil
	}

	var cached cachedSeries
	if err := json.Unmarshal([]byte(payload), &cached); err != nil {
		return model.BarSeries{}, false, fmt.Errorf("decode cache payload: %w", err)
	}
	bars := make([]model.Bar, len(cached.Bars))
	for i, cb := range cached.Bars {
		bars[i] = model.Bar{
			Time:   time.Unix(cb.Time, 0).UTC(),
			Open:   cb.Open,
			High:   cb.High,
			Low:    cb.Low,
			Close:  cb.Close,
			Volume: cb.Volume,
		}
	}
	return model.NewBarSeries(symbol, bars, cached.Fields...), true, nil
}

// Put stores (or replaces) the series for a key.
func (c *SQLiteCache) Put(symbol, interval, duration string, series model.BarSeries) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cached := cachedSeries{Fields: series.Fields(), Bars: make([]cachedBar, len(series.Bars))}
	for i, b := range series.Bars {
		cached.Bars[i] = cachedBar{
			Time:   b.Time.Unix(),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		}
	}
	payload, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("encode cache payload: %w", err)
	}

	_, err = c.db.Exec(
		`INSERT OR REPLACE INTO bar_cache (symbol, interval, duration, fetched_at, payload) VALUES (?,?,?,?,?)`,
		symbol, interval, duration, c.now().Unix(), string(payload),
	)
	return err
}

// Close closes the underlying database.
func (c *SQLiteCache) Close() error {
	log.Println("[INFO] closing sqlite bar cache")
	return c.db.Close()
}

package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"TradeSentinel/internal/model"
)

// GatewayFetcher implements Fetcher against a brokerage gateway's REST API.
type GatewayFetcher struct {
	BaseURL  string
	APIKey   string
	ClientID int
	Client   *http.Client
}

// NewGatewayFetcher creates a new fetcher with optional proxy support.
func NewGatewayFetcher(baseURL, apiKey string, clientID int, proxyURL string) *GatewayFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &GatewayFetcher{
		BaseURL:  baseURL,
		APIKey:   apiKey,
		ClientID: clientID,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *GatewayFetcher) Name() string { return "gateway" }

// FetchBars requests historical bars for one symbol. Gateways differ in
// column naming and casing, so rows are decoded generically and columns are
// resolved case-insensitively through model.ParseField.
func (f *GatewayFetcher) FetchBars(symbol, interval, duration string) (model.BarSeries, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars?symbol=%s&interval=%s&duration=%s&client=%d",
		f.BaseURL, url.QueryEscape(symbol), url.QueryEscape(interval), url.QueryEscape(duration), f.ClientID)

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return model.BarSeries{}, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return model.BarSeries{}, fmt.Errorf("fetch bars: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return model.BarSeries{}, fmt.Errorf("fetch bars: status %d, body: %s", resp.StatusCode, string(body))
	}

	var rows []map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return model.BarSeries{}, fmt.Errorf("decode bars: %w", err)
	}
	return parseRows(symbol, rows)
}

// parseRows converts generic column/value rows into a typed series, recording
// which fields the payload actually carried.
func parseRows(symbol string, rows []map[string]json.RawMessage) (model.BarSeries, error) {
	bars := make([]model.Bar, 0, len(rows))
	seen := map[model.Field]bool{}

	for _, row := range rows {
		var bar model.Bar
		for col, raw := range row {
			field, ok := model.ParseField(col)
			if !ok {
				continue
			}
			if field == model.FieldTime {
				ts, err := parseTimestamp(raw)
				if err != nil {
					return model.BarSeries{}, fmt.Errorf("parse %s: %w", col, err)
				}
				bar.Time = ts
				seen[field] = true
				continue
			}
			var v float64
			if err := json.Unmarshal(raw, &v); err != nil {
				return model.BarSeries{}, fmt.Errorf("parse %s: %w", col, err)
			}
			switch field {
			case model.FieldOpen:
				bar.Open = v
			case model.FieldHigh:
				bar.High = v
			case model.FieldLow:
				bar.Low = v
			case model.FieldClose:
				bar.Close = v
			case model.FieldVolume:
				bar.Volume = v
			}
			seen[field] = true
		}
		bars = append(bars, bar)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })

	fields := make([]model.Field, 0, len(seen))
	for f := range seen {
		fields = append(fields, f)
	}
	return model.NewBarSeries(symbol, bars, fields...), nil
}

// parseTimestamp accepts either a unix-seconds number or an RFC3339 string.
func parseTimestamp(raw json.RawMessage) (time.Time, error) {
	var unix int64
	if err := json.Unmarshal(raw, &unix); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}, fmt.Errorf("unsupported timestamp %s", string(raw))
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return ts, nil
}

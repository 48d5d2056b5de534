package collector

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"TradeSentinel/internal/model"
)

func TestGatewayFetcher_ParsesMixedCaseColumns(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("symbol"); got != "TSLA" {
			t.Errorf("expected symbol=TSLA, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("expected bearer auth, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		// Out of order timestamps and inconsistent column casing, as real
		// gateways produce.
		w.Write([]byte(`[
			{"Timestamp": 1700000300, "OPEN": 100.1, "High": 100.8, "low": 100.0, "Close": 100.5, "VOLUME": 1200},
			{"Timestamp": 1700000000, "OPEN": 99.8, "High": 100.3, "low": 99.6, "Close": 100.0, "VOLUME": 1000}
		]`))
	}))
	defer srv.Close()

	f := NewGatewayFetcher(srv.URL, "secret", 1, "")
	series, err := f.FetchBars("TSLA", "5min", "1d")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if series.Len() != 2 {
		t.Fatalf("expected 2 bars, got %d", series.Len())
	}
	if !series.Bars[0].Time.Before(series.Bars[1].Time) {
		t.Error("expected chronological order after sort")
	}
	if series.Last().Close != 100.5 {
		t.Errorf("expected last close 100.5, got %.2f", series.Last().Close)
	}
	if !series.HasAll(model.FieldOpen, model.FieldHigh, model.FieldLow, model.FieldClose, model.FieldVolume) {
		t.Errorf("expected all fields present, got %v", series.Fields())
	}
}

func TestGatewayFetcher_TracksMissingColumns(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"timestamp": 1700000000, "close": 100.0}]`))
	}))
	defer srv.Close()

	f := NewGatewayFetcher(srv.URL, "", 1, "")
	series, err := f.FetchBars("TSLA", "5min", "1d")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !series.Has(model.FieldClose) {
		t.Error("expected close field present")
	}
	if series.Has(model.FieldVolume) {
		t.Error("expected volume field absent")
	}
}

func TestGatewayFetcher_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no session", http.StatusUnauthorized)
	}))
	defer srv.Close()

	f := NewGatewayFetcher(srv.URL, "", 1, "")
	if _, err := f.FetchBars("TSLA", "5min", "1d"); err == nil {
		t.Error("expected error for non-200 status")
	}
}

func TestParseField_CaseInsensitive(t *testing.T) {
	tests := []struct {
		name string
		want model.Field
		ok   bool
	}{
		{"Close", model.FieldClose, true},
		{"CLOSE", model.FieldClose, true},
		{" volume ", model.FieldVolume, true},
		{"Vol", model.FieldVolume, true},
		{"Date", model.FieldTime, true},
		{"vwap_d", "", false},
	}
	for _, tt := range tests {
		f, ok := model.ParseField(tt.name)
		if ok != tt.ok || (ok && f != tt.want) {
			t.Errorf("ParseField(%q) = (%v, %v), want (%v, %v)", tt.name, f, ok, tt.want, tt.ok)
		}
	}
}

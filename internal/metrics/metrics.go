package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Evaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "evaluations_total", Help: "Symbol evaluations by outcome"},
		[]string{"symbol", "recommendation"},
	)
	FetchErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "fetch_errors_total", Help: "Bar retrieval failures by source"},
		[]string{"source"},
	)
	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "bar_cache_hits_total", Help: "Bar cache hits"},
		[]string{"symbol"},
	)
	CacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "bar_cache_misses_total", Help: "Bar cache misses"},
		[]string{"symbol"},
	)
)

func init() {
	prometheus.MustRegister(Evaluations, FetchErrors, CacheHits, CacheMisses)
}

// Serve exposes /metrics on addr and returns the server for shutdown.
func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() { _ = srv.ListenAndServe() }()
	return srv
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	UpstreamRequests *prometheus.CounterVec
	UpstreamLatency  *prometheus.HistogramVec
	SkippedRecords   *prometheus.CounterVec
	BreakerState     *prometheus.GaugeVec
	ListingPages     prometheus.Counter
	ListingMatches   prometheus.Histogram
	Dashboards       *prometheus.CounterVec
	EventsPublished  *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	upstreamRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_upstream_requests_total",
		Help: "Commerce API calls by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})
	upstreamLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_upstream_latency_seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
	skippedRecords := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_upstream_skipped_records_total",
		Help: "Malformed list elements dropped from commerce API responses.",
	}, []string{"endpoint"})
	breakerState := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "storefront_circuit_open",
		Help: "1 while the named circuit is not closed.",
	}, []string{"name"})
	listingPages := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_listing_pages_total"})
	listingMatches := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_listing_matches",
		Buckets: []float64{0, 1, 8, 16, 32, 64, 128, 256},
	})
	dashboards := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_dashboards_total",
	}, []string{"kind"})
	eventsPublished := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_events_published_total",
	}, []string{"type", "outcome"})

	r.MustRegister(upstreamRequests, upstreamLatency, skippedRecords, breakerState, listingPages, listingMatches, dashboards, eventsPublished)
	return &Registry{
		reg:              r,
		UpstreamRequests: upstreamRequests,
		UpstreamLatency:  upstreamLatency,
		SkippedRecords:   skippedRecords,
		BreakerState:     breakerState,
		ListingPages:     listingPages,
		ListingMatches:   listingMatches,
		Dashboards:       dashboards,
		EventsPublished:  eventsPublished,
	}
}

// ObserveBreaker records a circuit state transition.
func (r *Registry) ObserveBreaker(name, _, to string) {
	v := 0.0
	if to != "closed" {
		v = 1
	}
	r.BreakerState.WithLabelValues(name).Set(v)
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

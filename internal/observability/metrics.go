package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus gauges, counters and histograms for the
// thermodynamic database service.
type Metrics struct {
	SpeciesLoaded *prometheus.GaugeVec // labels: category={gas_products,condensed_products,reactants}
	ParseErrors   prometheus.Counter

	PropertyRequests        *prometheus.CounterVec // labels: outcome={ok,bad_request,not_found,out_of_range,no_model}
	LookupRequests          prometheus.Counter
	PropertyRequestDuration prometheus.Histogram
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		SpeciesLoaded: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "thermo",
			Name:      "species_loaded",
			Help:      "Species parsed from the source database, by category.",
		}, []string{"category"}),
		ParseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "thermo",
			Name:      "parse_errors_total",
			Help:      "Species datasets dropped as malformed during database load.",
		}),
		PropertyRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "thermo",
			Name:      "property_requests_total",
			Help:      "Property evaluation requests by outcome.",
		}, []string{"outcome"}),
		LookupRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "thermo",
			Name:      "lookup_requests_total",
			Help:      "Species list/lookup requests.",
		}),
		PropertyRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "thermo",
			Name:      "property_request_duration_seconds",
			Help:      "Duration of a property evaluation request.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
	}

	prometheus.MustRegister(
		m.SpeciesLoaded,
		m.ParseErrors,
		m.PropertyRequests,
		m.LookupRequests,
		m.PropertyRequestDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		SpeciesLoaded:           prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: "thermo", Name: "species_loaded"}, []string{"category"}),
		ParseErrors:             prometheus.NewCounter(prometheus.CounterOpts{Namespace: "thermo", Name: "parse_errors_total"}),
		PropertyRequests:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "thermo", Name: "property_requests_total"}, []string{"outcome"}),
		LookupRequests:          prometheus.NewCounter(prometheus.CounterOpts{Namespace: "thermo", Name: "lookup_requests_total"}),
		PropertyRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "thermo", Name: "property_request_duration_seconds"}),
	}
}

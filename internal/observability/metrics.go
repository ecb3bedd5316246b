package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weather_app"

// Metrics holds the Prometheus counters and histograms for the service.
type Metrics struct {
	// Geocoding metrics.
	GeocodeRequests *prometheus.CounterVec // labels: outcome={success,error,empty,skipped}
	GeocodeCache    *prometheus.CounterVec // labels: result={hit,miss}

	// Forecast metrics.
	ForecastRequests *prometheus.CounterVec // labels: outcome={success,error,cached}

	// ProviderDuration is the upstream API latency. labels: provider={nominatim,open-meteo}
	ProviderDuration *prometheus.HistogramVec

	IconFallbacks   prometheus.Counter
	FavoriteToggles *prometheus.CounterVec // labels: action={added,removed}
}

func newMetrics() *Metrics {
	return &Metrics{
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_requests_total",
			Help:      "Place searches by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_cache_total",
			Help:      "Geocoder cache lookups by result.",
		}, []string{"result"}),
		ForecastRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "forecast_requests_total",
			Help:      "Weather snapshot requests by outcome.",
		}, []string{"outcome"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_request_duration_seconds",
			Help:      "Upstream API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"provider"}),
		IconFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "icon_fallbacks_total",
			Help:      "Icon tokens that resolved to the Unknown fallback.",
		}),
		FavoriteToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "favorite_toggles_total",
			Help:      "Favorite toggles by resulting action.",
		}, []string{"action"}),
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.GeocodeRequests,
		m.GeocodeCache,
		m.ForecastRequests,
		m.ProviderDuration,
		m.IconFallbacks,
		m.FavoriteToggles,
	)

	return m
}

// NewMetricsForTesting creates Metrics that are not registered anywhere, so
// tests can build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

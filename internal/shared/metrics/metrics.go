package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lifespan"

var (
	// Registry holds every collector exported on /metrics.
	Registry = prometheus.NewRegistry()

	calculationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "calculations_total",
		Help:      "Total lifespan calculations by health score band.",
	}, []string{"health_score"})

	calculationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "calculation_duration_seconds",
		Help:      "Time spent scoring one factor record.",
		Buckets:   []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
	})

	adjustedLifespan = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "adjusted_lifespan_years",
		Help:      "Distribution of adjusted lifespans returned.",
		Buckets:   prometheus.LinearBuckets(45, 5, 10),
	})

	cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "calculation_cache_lookups_total",
		Help:      "Calculation cache lookups by result.",
	}, []string{"result"})

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route and status.",
	}, []string{"method", "route", "status"})
)

func init() {
	Registry.MustRegister(
		calculationsTotal,
		calculationDuration,
		adjustedLifespan,
		cacheLookups,
		httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// ObserveCalculation records one completed calculation.
func ObserveCalculation(healthScore string, adjusted float64, elapsed time.Duration) {
	calculationsTotal.WithLabelValues(healthScore).Inc()
	adjustedLifespan.Observe(adjusted)
	if elapsed < 0 {
		elapsed = 0
	}
	calculationDuration.Observe(elapsed.Seconds())
}

// IncCacheLookup counts a cache hit or miss.
func IncCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookups.WithLabelValues(result).Inc()
}

// IncHTTPRequest counts one served request.
func IncHTTPRequest(method, route, status string) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, status).Inc()
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}

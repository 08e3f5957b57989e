package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vietchronicle_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// UpstreamErrors counts failed calls to external adapters by service.
	UpstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vietchronicle_upstream_errors_total",
		Help: "Total number of failed external adapter calls by service",
	}, []string{"service"})

	// SeedRuns counts seed/reset executions.
	SeedRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vietchronicle_seed_runs_total",
		Help: "Total number of seed/reset operations performed",
	})
)

var (
	promOnce sync.Once
	promInst *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus HTTP middleware for the given service
// name. The instance is shared: fiberprometheus registers its collectors in
// the default registry, and registering twice panics (tests build many
// servers per process).
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInst = fiberprometheus.New(serviceName)
	})
	return promInst
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber.Handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}

package httpapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the backend's Prometheus collectors on a private registry,
// so several routers can coexist in one process (tests do this).
type Metrics struct {
	registry *prometheus.Registry

	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	UsersRegistered prometheus.Counter
	UsersDeleted    prometheus.Counter
	AuthFailures    prometheus.Counter
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "useradmin_http_requests_total",
			Help: "Total number of HTTP requests, labeled by route, method and status",
		}, []string{"route", "method", "status"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "useradmin_http_request_duration_seconds",
			Help:    "Latency of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		UsersRegistered: f.NewCounter(prometheus.CounterOpts{
			Name: "useradmin_users_registered_total",
			Help: "Total number of users registered",
		}),
		UsersDeleted: f.NewCounter(prometheus.CounterOpts{
			Name: "useradmin_users_deleted_total",
			Help: "Total number of users deleted",
		}),
		AuthFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "useradmin_auth_failures_total",
			Help: "Total number of failed logins and rejected tokens",
		}),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

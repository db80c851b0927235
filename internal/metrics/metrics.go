package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	NotificationsCreated prometheus.Counter
	NotificationsRead    prometheus.Counter
	LoginAttempts        *prometheus.CounterVec
}

// New builds a self-contained registry so independent instances can
// coexist in tests.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		NotificationsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "carenotify",
			Name:      "notifications_created_total",
			Help:      "Notifications created since process start.",
		}),
		NotificationsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "carenotify",
			Name:      "notifications_read_total",
			Help:      "Notifications marked read since process start.",
		}),
		LoginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carenotify",
			Name:      "login_attempts_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
	}
	registry.MustRegister(m.NotificationsCreated, m.NotificationsRead, m.LoginAttempts)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

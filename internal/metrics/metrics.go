package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// Metrics holds the booking counters.
type Metrics struct {
	Submissions    *prometheus.CounterVec
	DialogsOpened  *prometheus.CounterVec
	ActiveSessions prometheus.Gauge
}

// New registers the metrics on reg. Tests pass a fresh registry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Submit attempts by outcome (accepted, incomplete)",
		}, []string{"outcome"}),
		DialogsOpened: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dialogs_opened_total",
			Help:      "Booking dialogs opened by entry point kind",
		}, []string{"entry"}),
		ActiveSessions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Page sessions held in memory after the last sweep",
		}),
	}
}

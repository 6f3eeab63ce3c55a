package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts orchestration events. A nil *Metrics disables collection;
// every method is nil-safe.
type Metrics struct {
	spawnsTotal   prometheus.Counter
	spawnFailures prometheus.Counter
	reapsTotal    *prometheus.CounterVec
	escalations   prometheus.Counter
}

// NewMetrics registers the session metrics on reg. The active-session gauge
// reads straight from the registry.
func NewMetrics(reg prometheus.Registerer, registry *Registry) *Metrics {
	factory := promauto.With(reg)

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "dexhand",
		Subsystem: "session",
		Name:      "active",
		Help:      "Number of live control sessions, including in-flight starts.",
	}, func() float64 { return float64(registry.LiveCount()) })

	return &Metrics{
		spawnsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "dexhand",
			Subsystem: "session",
			Name:      "spawns_total",
			Help:      "Control processes started.",
		}),
		spawnFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "dexhand",
			Subsystem: "session",
			Name:      "spawn_failures_total",
			Help:      "Start requests that failed at process creation.",
		}),
		reapsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dexhand",
			Subsystem: "session",
			Name:      "reaps_total",
			Help:      "Control processes reaped, by terminal outcome.",
		}, []string{"outcome"}),
		escalations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "dexhand",
			Subsystem: "session",
			Name:      "kill_escalations_total",
			Help:      "Stops that exceeded the grace period and were killed.",
		}),
	}
}

func (m *Metrics) spawned() {
	if m != nil {
		m.spawnsTotal.Inc()
	}
}

func (m *Metrics) spawnFailed() {
	if m != nil {
		m.spawnFailures.Inc()
	}
}

func (m *Metrics) reaped(outcome string) {
	if m != nil {
		m.reapsTotal.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) escalated() {
	if m != nil {
		m.escalations.Inc()
	}
}

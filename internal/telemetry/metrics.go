package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"toroute/pkg/router"
)

// Metrics holds the Prometheus collectors for navigation.
type Metrics struct {
	navigations *prometheus.CounterVec
	chainDepth  prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg skips registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		navigations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "toroute",
				Name:      "navigations_total",
				Help:      "Navigation attempts by target route and outcome.",
			},
			[]string{"route", "result"},
		),
		chainDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "toroute",
			Name:      "matched_chain_depth",
			Help:      "Number of routes in the matched chain after the last navigation.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.navigations, m.chainDepth)
	}
	return m
}

// Hooks records navigation outcomes. reg resolves the chain depth of the new
// path.
func (m *Metrics) Hooks(reg *router.Registry) router.Hooks {
	return router.Hooks{
		OnNavigate: func(_, to router.State) {
			m.navigations.WithLabelValues(to.Path, ReasonOK).Inc()
			m.chainDepth.Set(float64(len(router.Match(reg, to.Path))))
		},
		OnNavigateError: func(to string, err error) {
			// Unknown targets are collapsed so arbitrary input cannot grow the
			// label set.
			label := to
			if Reason(err) == ReasonNotFound {
				label = "unknown"
			}
			m.navigations.WithLabelValues(label, Reason(err)).Inc()
		},
	}
}

package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/oxblood/morph/pkg/domain"
)

// Metrics counts dispatched actions. Applied actions are labeled by kind
// and whether they changed the document; rejections by kind alone.
type Metrics struct {
	applied  *prometheus.CounterVec
	rejected *prometheus.CounterVec
}

// NewMetrics creates and registers the action counters. Pass
// prometheus.DefaultRegisterer outside of tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		applied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "morph_actions_applied_total",
				Help: "Total number of applied actions",
			},
			[]string{"action", "changed"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "morph_actions_rejected_total",
				Help: "Total number of rejected actions",
			},
			[]string{"action"},
		),
	}
	reg.MustRegister(m.applied, m.rejected)
	return m
}

// Hooks returns lifecycle hooks feeding these counters.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnActionApplied: func(_ context.Context, e *domain.ActionEvent) {
			changed := "false"
			if e.Changed {
				changed = "true"
			}
			m.applied.WithLabelValues(e.ActionKind, changed).Inc()
		},
		OnActionRejected: func(_ context.Context, e *domain.ActionEvent) {
			m.rejected.WithLabelValues(e.ActionKind).Inc()
		},
	}
}

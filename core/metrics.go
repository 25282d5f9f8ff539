// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package core

import "github.com/prometheus/client_golang/prometheus"

// Metrics mirrors Eval's (interactions, name_ops) return values, plus an
// active-pairs gauge sampled from the queue, into a Prometheus registry.
// This is additive instrumentation: spec.md §8 property 3 is tested against
// Eval's return values, not against these counters.
type Metrics struct {
	interactions prometheus.Counter
	nameOps      prometheus.Counter
	activePairs  prometheus.Gauge
}

// NewMetrics registers and returns a Metrics bound to reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		interactions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inet_interactions_total",
			Help: "Total number of custom/custom rule rewrites applied.",
		}),
		nameOps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inet_name_ops_total",
			Help: "Total number of name/indirection resolutions applied.",
		}),
		activePairs: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "inet_active_pairs",
			Help: "Approximate number of pairs currently queued for reduction.",
		}),
	}
	reg.MustRegister(m.interactions, m.nameOps, m.activePairs)
	return m
}

func (m *Metrics) incInteraction() {
	if m == nil {
		return
	}
	m.interactions.Inc()
}

func (m *Metrics) incNameOp() {
	if m == nil {
		return
	}
	m.nameOps.Inc()
}

func (m *Metrics) setActivePairs(n int64) {
	if m == nil {
		return
	}
	m.activePairs.Set(float64(n))
}

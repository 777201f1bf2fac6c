// Copyright (c) 2026, The Chainviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainviz

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stats is the once-per-second observability snapshot. It exists for
// display only; nothing in the engine consults it for control decisions.
type Stats struct {
	// FPS is the frame rate over the last sample window.
	FPS float64

	// NodeCount and EdgeCount are the scene populations.
	NodeCount int
	EdgeCount int

	// MemoryBytes is the heuristic memory estimate.
	MemoryBytes int

	// Updated is when this snapshot was taken.
	Updated time.Time
}

// Stats returns the most recent once-per-second snapshot.
func (sc *Scene) Stats() Stats {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.stats
}

// Metrics exports the observability counters as prometheus gauges.
type Metrics struct {
	fps    prometheus.Gauge
	nodes  prometheus.Gauge
	edges  prometheus.Gauge
	memory prometheus.Gauge
}

// NewMetrics registers the engine gauges with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	fac := promauto.With(reg)
	return &Metrics{
		fps: fac.NewGauge(prometheus.GaugeOpts{
			Namespace: "chainviz",
			Name:      "frame_rate",
			Help:      "Frames rendered per second over the last sample window.",
		}),
		nodes: fac.NewGauge(prometheus.GaugeOpts{
			Namespace: "chainviz",
			Name:      "node_count",
			Help:      "Number of visual nodes in the scene.",
		}),
		edges: fac.NewGauge(prometheus.GaugeOpts{
			Namespace: "chainviz",
			Name:      "edge_count",
			Help:      "Number of connection edges in the scene.",
		}),
		memory: fac.NewGauge(prometheus.GaugeOpts{
			Namespace: "chainviz",
			Name:      "memory_estimate_bytes",
			Help:      "Heuristic memory estimate for scene resources.",
		}),
	}
}

// SetMetrics attaches prometheus gauges to the scene; pass nil to
// detach. The render loop updates them once per second.
func (sc *Scene) SetMetrics(m *Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = m
}

func (m *Metrics) update(st Stats) {
	m.fps.Set(st.FPS)
	m.nodes.Set(float64(st.NodeCount))
	m.edges.Set(float64(st.EdgeCount))
	m.memory.Set(float64(st.MemoryBytes))
}

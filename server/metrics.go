package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the instrumentation for the simulation host
type Metrics struct {
	Registry *prometheus.Registry

	FramesTotal   prometheus.Counter
	FrameDuration prometheus.Histogram
	ActiveNodes   prometheus.Gauge
	ActiveEdges   prometheus.Gauge
	GraphReloads  prometheus.Counter
}

// NewMetrics creates and registers the host metrics
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		FramesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "forcegraph_frames_total",
			Help: "Total number of simulation steps executed",
		}),
		FrameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "forcegraph_frame_duration_seconds",
			Help:    "Wall time of a single simulation step",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		ActiveNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "forcegraph_active_nodes",
			Help: "Nodes in the current active set",
		}),
		ActiveEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "forcegraph_active_edges",
			Help: "Edges in the current active set",
		}),
		GraphReloads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "forcegraph_graph_reloads_total",
			Help: "Total number of wholesale graph replacements",
		}),
	}

	m.Registry.MustRegister(
		m.FramesTotal,
		m.FrameDuration,
		m.ActiveNodes,
		m.ActiveEdges,
		m.GraphReloads,
	)
	return m
}

// Package metrics exposes the atlas's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP request metrics, labelled per handler.
var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "atlas",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "atlas",
		Subsystem: "query",
		Name:      "duration_seconds",
		Help:      "Filter/aggregate/reconcile query duration.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)

// Dataset gauges, set on every snapshot swap.
var (
	DatasetRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "atlas",
		Subsystem: "dataset",
		Name:      "records",
		Help:      "Election records in the current snapshot.",
	})

	DatasetFeatures = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "atlas",
		Subsystem: "dataset",
		Name:      "features",
		Help:      "Boundary features in the current snapshot.",
	})

	ReloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "atlas",
		Subsystem: "dataset",
		Name:      "reloads_total",
		Help:      "Dataset reload attempts by outcome.",
	}, []string{"outcome"})
)

// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics declares the Prometheus collectors exported at /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Insights Metrics
	InsightsComputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "insights_compute_duration_seconds",
			Help:    "Time spent computing collection insights",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	InsightsCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "insights_cache_hits_total",
			Help: "Total number of insights served from cache",
		},
	)

	InsightsCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "insights_cache_misses_total",
			Help: "Total number of insights cache misses",
		},
	)
)

// Handler serves the default registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}

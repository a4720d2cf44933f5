// Package metrics provides centralized Prometheus metrics for the
// harvesting pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// API metrics track MediaWiki API request patterns and performance
var (
	// APIRequestsTotal counts physical API round-trips by endpoint group
	// and outcome ("ok", "http_<code>", "api_error", "network_error")
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wiki_api_requests_total",
			Help: "Total number of MediaWiki API requests",
		},
		[]string{"endpoint", "outcome"},
	)

	// APIRequestDuration measures the duration of physical API
	// round-trips in seconds
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wiki_api_request_duration_seconds",
			Help:    "MediaWiki API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// APIRetriesTotal counts retry sleeps by reason ("transient",
	// "rate_limited")
	APIRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wiki_api_retries_total",
			Help: "Total number of API request retries",
		},
		[]string{"reason"},
	)
)

// Harvest metrics track corpus-level progress
var (
	// PagesHarvestedTotal counts successfully fetched articles
	PagesHarvestedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wiki_pages_harvested_total",
			Help: "Total number of articles fetched",
		},
	)

	// PagesMissingTotal counts requested titles that resolved to a
	// missing page
	PagesMissingTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wiki_pages_missing_total",
			Help: "Total number of requested titles with no page",
		},
	)

	// RedirectsResolvedTotal counts titles resolved through the batch
	// redirect resolver
	RedirectsResolvedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wiki_redirects_resolved_total",
			Help: "Total number of titles passed through redirect resolution",
		},
	)
)

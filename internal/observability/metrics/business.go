package metrics

import (
	"fmt"
	"time"
)

// RecordAPIRequest records one physical MediaWiki API round-trip.
// The outcome should be "ok", "api_error", "network_error", or an HTTP
// status rendered as "http_<code>".
func RecordAPIRequest(endpoint, outcome string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	APIRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordAPIStatus records a round-trip that ended with an HTTP status.
func RecordAPIStatus(endpoint string, status int, duration time.Duration) {
	RecordAPIRequest(endpoint, fmt.Sprintf("http_%d", status), duration)
}

// RecordRetry records one retry sleep. Reason is "transient" for
// connection-level failures and "rate_limited" for HTTP 429.
func RecordRetry(reason string) {
	APIRetriesTotal.WithLabelValues(reason).Inc()
}

// RecordPageHarvested records a successfully fetched article.
func RecordPageHarvested() {
	PagesHarvestedTotal.Inc()
}

// RecordPageMissing records a requested title that has no page.
func RecordPageMissing() {
	PagesMissingTotal.Inc()
}

// RecordRedirectsResolved records titles processed by the batch redirect
// resolver.
func RecordRedirectsResolved(count int) {
	RedirectsResolvedTotal.Add(float64(count))
}

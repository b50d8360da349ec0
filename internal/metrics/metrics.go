// Package metrics exposes prometheus counters for the paths that are
// intentionally silent toward clients: skipped ledger rows, swallowed
// summary-upsert failures, and rate-limit rejections. Operators watch
// these to catch quiet data loss without any client-visible change.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	mu sync.Mutex

	uploadsTotal          prometheus.Counter
	rowsParsedTotal       prometheus.Counter
	rowsSkippedTotal      prometheus.Counter
	summaryUpsertFailures prometheus.Counter
	rateLimitRejections   *prometheus.CounterVec
)

// Init registers all collectors with the default registry. Calling it more
// than once is a no-op, so tests may share a process with main wiring.
func Init() {
	mu.Lock()
	defer mu.Unlock()
	if uploadsTotal != nil {
		return
	}

	uploadsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "kaapi",
		Name:      "uploads_total",
		Help:      "Total number of accepted ledger uploads.",
	})
	rowsParsedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "kaapi",
		Name:      "upload_rows_parsed_total",
		Help:      "Total ledger rows parsed across all uploads.",
	})
	rowsSkippedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "kaapi",
		Name:      "upload_rows_skipped_total",
		Help:      "Ledger rows silently excluded from revenue aggregation.",
	})
	summaryUpsertFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "kaapi",
		Name:      "summary_upsert_failures_total",
		Help:      "Daily summary writes that failed after the file record was stored.",
	})
	rateLimitRejections = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kaapi",
		Name:      "rate_limit_rejections_total",
		Help:      "Requests rejected with 429, by route class.",
	}, []string{"class"})

	prometheus.MustRegister(
		uploadsTotal,
		rowsParsedTotal,
		rowsSkippedTotal,
		summaryUpsertFailures,
		rateLimitRejections,
	)
}

// The increment helpers no-op before Init so library tests never have to
// care about collector registration.

func IncUpload() {
	if uploadsTotal != nil {
		uploadsTotal.Inc()
	}
}

func AddRowsParsed(n int64) {
	if rowsParsedTotal != nil && n > 0 {
		rowsParsedTotal.Add(float64(n))
	}
}

func AddRowsSkipped(n int64) {
	if rowsSkippedTotal != nil && n > 0 {
		rowsSkippedTotal.Add(float64(n))
	}
}

func IncSummaryUpsertFailure() {
	if summaryUpsertFailures != nil {
		summaryUpsertFailures.Inc()
	}
}

func IncRateLimited(class string) {
	if rateLimitRejections != nil {
		rateLimitRejections.WithLabelValues(class).Inc()
	}
}

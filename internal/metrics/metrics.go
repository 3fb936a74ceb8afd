// Package metrics defines and registers the custom Prometheus metrics for the
// ABC Music Library web frontend. It is the single source of truth for metric
// names, labels, and help strings; promauto registers everything with the
// default registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "musicweb"

// BackendRequestDuration measures the latency of each backend API call.
// Labels:
//   - endpoint: logical operation name (e.g. "login", "list_sheet_music")
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of HTTP calls to the music backend, by endpoint.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// BackendErrorsTotal counts failed backend calls.
// Labels:
//   - endpoint: logical operation name
//   - kind: "transport" (connection-level failure) or "status" (non-2xx)
var BackendErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_errors_total",
		Help:      "Total number of backend calls that failed, by endpoint and failure kind.",
	},
	[]string{"endpoint", "kind"},
)

// SessionResolutionsTotal counts session-resolution outcomes.
// Label:
//   - result: "hit" (identity resolved), "miss" (no/unknown session),
//     "expired" (token past its exp claim), "revalidated" (refreshed via /auth/me)
var SessionResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_resolutions_total",
		Help:      "Total number of session resolutions, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts by outcome.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result (success/failure).",
	},
	[]string{"result"},
)

// FilesUploadedTotal counts files pushed through POST /files/upload.
// Label:
//   - file_type: "pdf" or "audio"
var FilesUploadedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "files_uploaded_total",
		Help:      "Total number of files uploaded to the backend, by file type.",
	},
	[]string{"file_type"},
)

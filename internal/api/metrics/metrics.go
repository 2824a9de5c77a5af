// Package metrics defines and registers all custom Prometheus metrics for
// the campaign API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at init time and are
// exposed through the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "campaign"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ArticlesWrittenTotal counts article create and update operations that
// succeeded.
// Labels:
//   - action: "create" or "update"
//   - status: resulting article status ("draft" or "published")
var ArticlesWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_written_total",
		Help:      "Total number of successful article writes, by action and resulting status.",
	},
	[]string{"action", "status"},
)

// ContactMessagesTotal counts accepted contact-form submissions.
var ContactMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact messages accepted.",
	},
)

// UploadsStoredTotal counts stored uploads.
// Label:
//   - media_type: declared image media type (e.g. "image/png")
var UploadsStoredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_stored_total",
		Help:      "Total number of uploaded files stored, by media type.",
	},
	[]string{"media_type"},
)

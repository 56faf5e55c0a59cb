// Package metrics defines and registers all custom Prometheus metrics for the
// 4hire API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics self-register with the default Prometheus registry via promauto at
// package init, so importing this package is enough to expose them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fourhire"

// ── Job metrics ───────────────────────────────────────────────────────────────

// JobsCreatedTotal counts newly posted jobs.
// Label:
//   - category: the job category (e.g. "Yard Work", "Tutoring")
var JobsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of jobs posted, by category.",
	},
	[]string{"category"},
)

// JobApplicationsTotal counts accepted student applications to jobs.
var JobApplicationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_applications_total",
		Help:      "Total number of job applications accepted.",
	},
)

// ── Messaging metrics ─────────────────────────────────────────────────────────

// MessagesSentTotal counts delivered chat messages.
var MessagesSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of chat messages sent.",
	},
)

// ── Review metrics ────────────────────────────────────────────────────────────

// ReviewsSubmittedTotal counts submitted reviews.
// Label:
//   - rating: the star rating given ("1" through "5")
var ReviewsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_submitted_total",
		Help:      "Total number of reviews submitted, by star rating.",
	},
	[]string{"rating"},
)

// ── Safety metrics ────────────────────────────────────────────────────────────

// ReportsFiledTotal counts user reports filed against other users.
var ReportsFiledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_filed_total",
		Help:      "Total number of user reports filed.",
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: short description of the failure (e.g. "bad_credentials", "type_mismatch", "revoked_token")
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed authentication attempts, by reason.",
	},
	[]string{"reason"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsQueueDepth tracks the current number of notifications waiting
// in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifications_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

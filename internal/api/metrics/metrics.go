// Package metrics defines and registers all custom Prometheus metrics for
// the landlord management API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register themselves with the
// default registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "landlord"

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsSentTotal counts dispatch attempts through the gateway.
// Labels:
//   - channel: "email" or "sms"
//   - result: "accepted", "failed", or "placeholder" (sms not implemented)
var NotificationsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of notification dispatch attempts, by channel and result.",
	},
	[]string{"channel", "result"},
)

// NotificationSendDuration measures a single dispatch attempt end-to-end.
var NotificationSendDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_send_duration_seconds",
		Help:      "Duration of a single notification dispatch attempt.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"channel"},
)

// ReminderQueueDepth tracks the notifications waiting in each fan-out worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ReminderQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "reminder_queue_depth",
		Help:      "Current number of reminder notifications pending in each worker channel.",
	},
	[]string{"worker_id"},
)

// ── Moderation metrics ────────────────────────────────────────────────────────

// ModerationActionsTotal counts applied moderation transitions.
// Labels:
//   - action: "ban", "unban", or "delete"
//   - result: "ok" or "error"
var ModerationActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moderation_actions_total",
		Help:      "Total number of moderation actions applied, by action and result.",
	},
	[]string{"action", "result"},
)

// CascadeDeletedEntitiesTotal counts entities removed by cascade deletes.
// Label:
//   - entity: "tenancy", "property", or "account"
var CascadeDeletedEntitiesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cascade_deleted_entities_total",
		Help:      "Total number of entities removed by account cascade deletes.",
	},
	[]string{"entity"},
)

// CascadeDeleteDuration measures a whole cascade delete.
var CascadeDeleteDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "cascade_delete_duration_seconds",
		Help:      "Duration of account cascade deletes from first to last removal.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Appeal metrics ────────────────────────────────────────────────────────────

// AppealsSubmittedTotal counts accepted appeal submissions.
// Label:
//   - account_status: originating status, "banned" or "deleted"
var AppealsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appeals_submitted_total",
		Help:      "Total number of appeals accepted by the intake endpoint.",
	},
	[]string{"account_status"},
)

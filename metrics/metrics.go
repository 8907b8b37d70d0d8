package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline counters, partitioned by contract where it matters.

var (
	// Submitter
	MintsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "minting",
		Subsystem: "submitter",
		Name:      "mints_recorded_total",
		Help:      "Total mint requests recorded",
	})

	BatchesSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minting",
		Subsystem: "submitter",
		Name:      "batches_submitted_total",
		Help:      "Total batches submitted to the minting API",
	}, []string{"contract"})

	RequestsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minting",
		Subsystem: "submitter",
		Name:      "requests_submitted_total",
		Help:      "Total mint requests accepted by the minting API",
	}, []string{"contract"})

	RequestsConflicting = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minting",
		Subsystem: "submitter",
		Name:      "requests_conflicting_total",
		Help:      "Total mint requests rejected upstream as conflicts",
	}, []string{"contract"})

	RetriesScheduled = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minting",
		Subsystem: "submitter",
		Name:      "retries_scheduled_total",
		Help:      "Total mint requests returned to the queue for retry",
	}, []string{"contract"})

	PermanentFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minting",
		Subsystem: "submitter",
		Name:      "permanent_failures_total",
		Help:      "Total mint requests failed after retry budget exhaustion",
	}, []string{"contract"})

	RemainingQuota = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "minting",
		Subsystem: "submitter",
		Name:      "remaining_quota",
		Help:      "Remaining submission quota reported by the minting API",
	})

	StaleSubmittingReset = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "minting",
		Subsystem: "sweeper",
		Name:      "stale_submitting_reset_total",
		Help:      "Total stuck submitting rows returned to the queue",
	})

	// Webhook
	WebhookEventsVerified = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "minting",
		Subsystem: "webhook",
		Name:      "events_verified_total",
		Help:      "Total webhook notifications that passed verification",
	})

	WebhookEventsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minting",
		Subsystem: "webhook",
		Name:      "events_rejected_total",
		Help:      "Total webhook notifications rejected before dispatch",
	}, []string{"stage"})

	WebhookEventsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "minting",
		Subsystem: "webhook",
		Name:      "events_dispatched_total",
		Help:      "Total webhook events routed to a handler",
	}, []string{"event_name"})

	StatusSyncsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "minting",
		Subsystem: "webhook",
		Name:      "status_syncs_applied_total",
		Help:      "Total authoritative status updates applied",
	})

	StatusSyncsStale = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "minting",
		Subsystem: "webhook",
		Name:      "status_syncs_stale_total",
		Help:      "Total status events ignored for carrying an older event id",
	})
)

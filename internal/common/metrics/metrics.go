// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)
)

var (
	ConversationTurns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conversation_turns_total",
			Help: "Conversation turns processed, by state at the start of the turn and event kind",
		},
		[]string{"state", "event"},
	)

	ConversationTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conversation_transitions_total",
			Help: "State changes produced by conversation turns",
		},
		[]string{"from", "to"},
	)

	ConversationTurnDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "conversation_turn_duration_seconds",
			Help:    "Wall time of a conversation turn including simulated delays",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 2, 3, 5, 8, 13},
		},
		[]string{"event"},
	)

	EligibilityOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_eligibility_outcomes_total",
			Help: "Eligibility decisions by status and reason",
		},
		[]string{"status", "reason"},
	)

	CreditCheckOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_credit_check_outcomes_total",
			Help: "Credit check decisions by outcome and reason",
		},
		[]string{"outcome", "reason"},
	)

	SanctionsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "loan_sanctions_issued_total",
			Help: "Sanction letters generated",
		},
	)

	DocumentUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_document_uploads_total",
			Help: "Salary slip uploads by result",
		},
		[]string{"result"},
	)
)

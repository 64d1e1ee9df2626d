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

	ExtractionFieldsExtracted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extraction_fields_extracted_total",
			Help: "Total number of fields extracted from customer messages",
		},
		[]string{"task_type", "field"},
	)

	ExtractionStepsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extraction_steps_completed_total",
			Help: "Total number of intake steps that reached completion",
		},
		[]string{"task_type"},
	)

	ExtractionValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extraction_validation_failures_total",
			Help: "Total number of extracted values rejected by field validation",
		},
		[]string{"task_type", "field"},
	)

	ApplicationsPersisted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "loan_applications_persisted_total",
			Help: "Total number of loan applications written to the database",
		},
	)
)

// internal/workers/intake/persist-application/handler.go
package persistapplication

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	commonerrors "loan-intake-workers/internal/common/errors"
	"loan-intake-workers/internal/common/logger"
	"loan-intake-workers/internal/common/metrics"
	"loan-intake-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "persist-application"
)

var (
	ErrApplicationInsertFailed = errors.New("APPLICATION_INSERT_FAILED")
	ErrDuplicateApplication    = errors.New("DUPLICATE_APPLICATION")
)

type Handler struct {
	config *Config
	db     *sql.DB
	logger logger.Logger
}

func NewHandler(config *Config, db *sql.DB, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		db:     db,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, string(commonerrors.ErrCodeParseError), fmt.Sprintf("parse input: %v", err), 0)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		errorCode := "UNKNOWN_ERROR"
		retries := int32(0)
		if errors.Is(err, ErrApplicationInsertFailed) {
			errorCode = string(commonerrors.ErrCodeApplicationInsertFailed)
			retries = int32(commonerrors.GetRetryCount(commonerrors.ErrCodeApplicationInsertFailed))
		} else if errors.Is(err, ErrDuplicateApplication) {
			errorCode = string(commonerrors.ErrCodeDuplicateApplication)
		}
		h.failJob(client, job, errorCode, err.Error(), retries)
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	// One application per conversation
	var exists bool
	err := h.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM loan_applications
			WHERE conversation_id = $1
		)`, input.ConversationID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("%w: duplicate check failed: %v", ErrApplicationInsertFailed, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: application already exists for conversation %s",
			ErrDuplicateApplication, input.ConversationID)
	}

	app := models.LoanApplication{
		ID:              uuid.New().String(),
		ConversationID:  input.ConversationID,
		CustomerID:      input.CustomerID,
		ApplicationData: input.ConversationState,
		Status:          models.ApplicationStatusSubmitted,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	app.UpdatedAt = app.CreatedAt

	// Serialize the accumulated profile for the JSONB column
	applicationDataJSON, err := json.Marshal(app.ApplicationData)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal application data: %v", ErrApplicationInsertFailed, err)
	}

	_, err = h.db.ExecContext(ctx, `
		INSERT INTO loan_applications (
			id, conversation_id, customer_id, application_data, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		app.ID,
		app.ConversationID,
		app.CustomerID,
		applicationDataJSON,
		app.Status,
		app.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: insert failed: %v", ErrApplicationInsertFailed, err)
	}

	// Audit log entry is non-critical, log error but don't fail
	auditDetailsJSON, err := json.Marshal(map[string]interface{}{
		"conversationId": input.ConversationID,
		"fieldCount":     len(input.ConversationState),
	})
	if err != nil {
		h.logger.Warn("failed to marshal audit log details", map[string]interface{}{
			"error": err,
		})
		auditDetailsJSON = []byte("{}")
	}

	_, err = h.db.ExecContext(ctx, `
		INSERT INTO audit_log (event_type, resource_type, resource_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		"application_submitted",
		"loan_application",
		app.ID,
		auditDetailsJSON,
		app.CreatedAt,
	)
	if err != nil {
		h.logger.Warn("audit log insert failed", map[string]interface{}{
			"error":         err,
			"applicationId": app.ID,
		})
	}

	metrics.ApplicationsPersisted.Inc()

	h.logger.Info("loan application persisted", map[string]interface{}{
		"applicationId":  app.ID,
		"conversationId": app.ConversationID,
		"fieldCount":     len(app.ApplicationData),
	})

	return &Output{
		ApplicationID:     app.ID,
		ApplicationStatus: app.Status,
		CreatedAt:         app.CreatedAt,
	}, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	} else {
		metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
		h.logger.Info("job completed successfully", map[string]interface{}{
			"jobKey": job.Key,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string, retries int32) {
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
		"retries":      retries,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

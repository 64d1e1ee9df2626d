// internal/workers/intake/extract-personal-info/handler.go
package extractpersonalinfo

import (
	"context"
	"encoding/json"
	"fmt"

	"loan-intake-workers/internal/audit"
	commonerrors "loan-intake-workers/internal/common/errors"
	"loan-intake-workers/internal/common/logger"
	"loan-intake-workers/internal/common/metrics"
	"loan-intake-workers/internal/extraction/personal"
	"loan-intake-workers/internal/extraction/rules"
	"loan-intake-workers/internal/models"
	"loan-intake-workers/internal/session"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "extract-personal-info"
)

// birthYear needs no rule here, the extractor only emits years for
// borrowers between 18 and 65.
var stepRules = rules.Set{
	personal.FieldGender:        rules.OneOf("Nam", "Nữ"),
	personal.FieldMaritalStatus: rules.OneOf("Độc thân", "Đã kết hôn", "Ly hôn"),
	personal.FieldDependents:    rules.Num(0, 20),
}

type Handler struct {
	config    *Config
	extractor *personal.Extractor
	sessions  *session.Store
	auditor   audit.Auditor
	logger    logger.Logger
}

func NewHandler(config *Config, sessions *session.Store, auditor audit.Auditor, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		extractor: personal.New(),
		sessions:  sessions,
		auditor:   auditor,
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		h.failJob(client, job, "UNKNOWN_ERROR", err.Error(), 0)
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	fields := h.extractor.Extract(input.Message)
	state := models.ConversationState(input.ConversationState).Merge(fields)

	for field := range fields {
		metrics.ExtractionFieldsExtracted.WithLabelValues(TaskType, field).Inc()
	}

	messages := []string{}
	if result := rules.Check(fields, stepRules); !result.Valid {
		messages = result.GetErrorMessages()
		for _, verr := range result.Errors {
			metrics.ExtractionValidationFailures.WithLabelValues(TaskType, verr.Field).Inc()
		}
	}

	stepComplete := state.HasAll(h.config.RequiredFields)
	if stepComplete {
		metrics.ExtractionStepsCompleted.WithLabelValues(TaskType).Inc()
	}

	if h.sessions != nil {
		if err := h.sessions.Save(ctx, input.ConversationID, state); err != nil {
			h.logger.Warn("conversation state save failed", map[string]interface{}{
				"error":          err,
				"conversationId": input.ConversationID,
			})
		}
	}

	if h.auditor != nil {
		err := h.auditor.IndexTurn(ctx, audit.TurnRecord{
			ConversationID:     input.ConversationID,
			TaskType:           TaskType,
			ExtractedFields:    fields,
			ValidationMessages: messages,
			StepComplete:       stepComplete,
		})
		if err != nil {
			h.logger.Warn("audit index failed", map[string]interface{}{
				"error":          err,
				"conversationId": input.ConversationID,
			})
		}
	}

	h.logger.Info("personal info extracted", map[string]interface{}{
		"conversationId": input.ConversationID,
		"fieldCount":     len(fields),
		"stepComplete":   stepComplete,
	})

	return &Output{
		ExtractedFields:    fields,
		ConversationState:  state,
		ValidationMessages: messages,
		StepComplete:       stepComplete,
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

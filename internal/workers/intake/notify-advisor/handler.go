// internal/workers/intake/notify-advisor/handler.go
package notifyadvisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	commonerrors "loan-intake-workers/internal/common/errors"
	"loan-intake-workers/internal/common/logger"
	"loan-intake-workers/internal/common/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "notify-advisor"
)

var (
	ErrNotificationSendFailed = errors.New("NOTIFICATION_SEND_FAILED")
)

// Satisfied by the common/aws client wrappers and by test mocks.
type SESService interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

type Handler struct {
	config    *Config
	logger    logger.Logger
	sesClient SESService
	snsClient SNSService
}

func NewHandler(config *Config, sesClient SESService, snsClient SNSService, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
		sesClient: sesClient,
		snsClient: snsClient,
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
		errorCode := string(commonerrors.ErrCodeNotificationSendFailed)
		retries := int32(0)
		if errors.Is(err, ErrNotificationSendFailed) {
			retries = int32(commonerrors.GetRetryCount(commonerrors.ErrCodeNotificationSendFailed))
		}
		h.failJob(client, job, errorCode, err.Error(), retries)
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	notificationID := uuid.New().String()
	sentAt := time.Now().UTC().Format(time.RFC3339)

	subject := fmt.Sprintf("Hồ sơ vay mới %s", input.ApplicationID)
	body := buildSummary(input.ApplicationID, input.ConversationID, input.ConversationState)

	emailSent := false
	smsSent := false

	if h.config.EmailEnabled && h.config.AdvisorEmail != "" {
		if err := h.sendEmail(ctx, h.config.AdvisorEmail, subject, body); err != nil {
			h.logger.Error("email send failed", map[string]interface{}{
				"error": err,
				"email": h.config.AdvisorEmail,
			})
			return &Output{NotificationID: notificationID, Status: StatusFailed, SentAt: sentAt}, nil
		}
		emailSent = true
	}

	if h.config.SMSEnabled && h.config.AdvisorPhone != "" {
		if err := h.sendSMS(ctx, h.config.AdvisorPhone, buildShortSummary(input.ConversationState)); err != nil {
			h.logger.Error("SMS send failed", map[string]interface{}{
				"error": err,
				"phone": h.config.AdvisorPhone,
			})
			return &Output{NotificationID: notificationID, Status: StatusFailed, SentAt: sentAt}, nil
		}
		smsSent = true
	}

	status := StatusDisabled
	if emailSent || smsSent {
		status = StatusSent
	}

	h.logger.Info("advisor notified", map[string]interface{}{
		"notificationId": notificationID,
		"applicationId":  input.ApplicationID,
		"status":         status,
	})

	return &Output{
		NotificationID: notificationID,
		Status:         status,
		SentAt:         sentAt,
	}, nil
}

func (h *Handler) sendEmail(ctx context.Context, to, subject, body string) error {
	_, err := h.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(h.config.FromEmail),
	})
	return err
}

func (h *Handler) sendSMS(ctx context.Context, to, message string) error {
	_, err := h.snsClient.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(to),
		Message:     aws.String(message),
	})
	return err
}

// Summary lines in intake order; absent fields are skipped.
var summaryFields = []struct {
	field  string
	label  string
	amount bool
}{
	{"fullName", "Họ tên", false},
	{"phoneNumber", "Số điện thoại", false},
	{"birthYear", "Năm sinh", false},
	{"loanAmount", "Số tiền vay", true},
	{"loanTerm", "Thời hạn vay", false},
	{"loanPurpose", "Mục đích vay", false},
	{"loanType", "Hình thức vay", false},
	{"monthlyIncome", "Thu nhập hàng tháng", true},
	{"primaryIncomeSource", "Nguồn thu nhập", false},
	{"totalDebtAmount", "Tổng dư nợ hiện tại", true},
	{"cicCreditScoreGroup", "Nhóm nợ CIC", false},
	{"collateralType", "Tài sản đảm bảo", false},
	{"collateralValue", "Giá trị tài sản", true},
}

func buildSummary(applicationID, conversationID string, state map[string]interface{}) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hồ sơ vay mới vừa được gửi.\n\nMã hồ sơ: %s\nMã hội thoại: %s\n\n", applicationID, conversationID)

	if hasDebt, ok := state["hasExistingDebt"].(bool); ok {
		if hasDebt {
			b.WriteString("Khách hàng đang có dư nợ.\n")
		} else {
			b.WriteString("Khách hàng không có dư nợ.\n")
		}
	}

	for _, sf := range summaryFields {
		value, ok := state[sf.field]
		if !ok || value == nil {
			continue
		}
		if sf.amount {
			fmt.Fprintf(&b, "%s: %s\n", sf.label, formatAmount(value))
		} else {
			fmt.Fprintf(&b, "%s: %v\n", sf.label, value)
		}
	}

	b.WriteString("\nVui lòng liên hệ khách hàng để tư vấn tiếp.")
	return b.String()
}

func buildShortSummary(state map[string]interface{}) string {
	name, _ := state["fullName"].(string)
	phone, _ := state["phoneNumber"].(string)
	amount := ""
	if v, ok := state["loanAmount"]; ok {
		amount = formatAmount(v)
	}
	return strings.TrimSpace(fmt.Sprintf("Ho so vay moi: %s, SDT %s, so tien %s", name, phone, amount))
}

// formatAmount renders a currency amount with dot-grouped digits
// ("500000000" -> "500.000.000 đồng"). Zeebe delivers numbers as float64.
func formatAmount(value interface{}) string {
	var n int64
	switch v := value.(type) {
	case int64:
		n = v
	case int:
		n = int64(v)
	case float64:
		n = int64(v)
	default:
		return fmt.Sprintf("%v", value)
	}

	s := strconv.FormatInt(n, 10)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)
	out := strings.Join(groups, ".")
	if negative {
		out = "-" + out
	}
	return out + " đồng"
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

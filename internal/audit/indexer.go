// internal/audit/indexer.go
package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
)

var ErrAuditIndexFailed = errors.New("AUDIT_INDEX_FAILED")

const DefaultIndex = "loan-intake-turns"

// TurnRecord is one extraction turn as written to the audit index. The raw
// customer message is not stored, only what was extracted from it.
type TurnRecord struct {
	ConversationID     string                 `json:"conversationId"`
	TaskType           string                 `json:"taskType"`
	ExtractedFields    map[string]interface{} `json:"extractedFields"`
	ValidationMessages []string               `json:"validationMessages,omitempty"`
	StepComplete       bool                   `json:"stepComplete"`
	Timestamp          string                 `json:"timestamp"`
}

// Auditor is what the workers depend on, so tests can substitute a fake.
type Auditor interface {
	IndexTurn(ctx context.Context, rec TurnRecord) error
}

type Indexer struct {
	client *elasticsearch.Client
	index  string
}

func NewIndexer(client *elasticsearch.Client, index string) *Indexer {
	if index == "" {
		index = DefaultIndex
	}
	return &Indexer{client: client, index: index}
}

// IndexTurn writes one turn record. Callers treat failures as non-critical
// and log them instead of failing the job.
func (i *Indexer) IndexTurn(ctx context.Context, rec TurnRecord) error {
	if rec.Timestamp == "" {
		rec.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: marshal record: %v", ErrAuditIndexFailed, err)
	}

	res, err := i.client.Index(
		i.index,
		bytes.NewReader(body),
		i.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAuditIndexFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: %s", ErrAuditIndexFailed, res.Status())
	}
	return nil
}

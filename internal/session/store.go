// internal/session/store.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"loan-intake-workers/internal/models"

	"github.com/redis/go-redis/v9"
)

var (
	ErrSessionLoadFailed = errors.New("SESSION_LOAD_FAILED")
	ErrSessionSaveFailed = errors.New("SESSION_SAVE_FAILED")
)

const keyPrefix = "conversation:state:"

// Store keeps conversation state in Redis so a conversation survives
// process restarts. The BPMN process variables remain the source of truth;
// this is the durable copy the extract workers refresh on every turn.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Load returns the stored state for a conversation. A conversation that was
// never saved yields an empty state, not an error.
func (s *Store) Load(ctx context.Context, conversationID string) (models.ConversationState, error) {
	raw, err := s.client.Get(ctx, keyPrefix+conversationID).Result()
	if errors.Is(err, redis.Nil) {
		return models.ConversationState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionLoadFailed, err)
	}

	var state models.ConversationState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("%w: corrupt state for %s: %v", ErrSessionLoadFailed, conversationID, err)
	}
	return state, nil
}

// Save stores the state and refreshes the TTL.
func (s *Store) Save(ctx context.Context, conversationID string, state models.ConversationState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSessionSaveFailed, err)
	}
	if err := s.client.Set(ctx, keyPrefix+conversationID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSessionSaveFailed, err)
	}
	return nil
}

// Delete removes a conversation's stored state, e.g. after the application
// has been persisted.
func (s *Store) Delete(ctx context.Context, conversationID string) error {
	return s.client.Del(ctx, keyPrefix+conversationID).Err()
}

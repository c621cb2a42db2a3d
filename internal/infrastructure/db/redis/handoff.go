package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talha-mahmood/Linkedin-list/internal/api/metrics"
	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
)

const keyHandoff = "categoryModalRequest"

// HandoffStore holds the one-shot category modal request. The key carries the
// validity window as its TTL, so an unread record disappears on its own; an
// explicit Consume deletes it atomically with the read (GETDEL), which keeps
// a race between two popup instances harmless: one acts, both clear it.
type HandoffStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewHandoffStore(client *redis.Client) *HandoffStore {
	return &HandoffStore{client: client, now: time.Now}
}

func (h *HandoffStore) Put(ctx context.Context, req domain.HandoffRequest) error {
	if req.Timestamp == 0 {
		req.Timestamp = h.now().UnixMilli()
	}

	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal handoff: %w", err)
	}

	if err := h.client.Set(ctx, keyHandoff, data, domain.HandoffTTL).Err(); err != nil {
		return fmt.Errorf("set %s: %w", keyHandoff, err)
	}

	metrics.HandoffsTotal.WithLabelValues("written").Inc()
	return nil
}

// Consume atomically reads and deletes the pending request.
func (h *HandoffStore) Consume(ctx context.Context) (*domain.HandoffRequest, error) {
	val, err := h.client.GetDel(ctx, keyHandoff).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNoHandoffRequest
		}
		return nil, fmt.Errorf("getdel %s: %w", keyHandoff, err)
	}

	var req domain.HandoffRequest
	if err := json.Unmarshal([]byte(val), &req); err != nil {
		return nil, fmt.Errorf("unmarshal handoff: %w", err)
	}

	// TTL already bounds the window; the record's own timestamp is checked
	// as well in case of clock drift between writer and store.
	if req.Expired(h.now()) {
		metrics.HandoffsTotal.WithLabelValues("expired").Inc()
		return nil, domain.ErrNoHandoffRequest
	}

	metrics.HandoffsTotal.WithLabelValues("consumed").Inc()
	return &req, nil
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const maxToasts = 100

// NotificationStore implements ports.NotificationStore. Toasts live in a
// sorted set scored by expiry; results are plain keys with a TTL.
type NotificationStore struct {
	client       goredis.UniversalClient
	toastKey     string
	resultPrefix string
}

var _ ports.NotificationStore = (*NotificationStore)(nil)

func NewNotificationStore(client goredis.UniversalClient) *NotificationStore {
	return &NotificationStore{
		client:       client,
		toastKey:     "notify:toasts",
		resultPrefix: "notify:result:",
	}
}

func (s *NotificationStore) Push(ctx context.Context, n domain.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.ZAdd(ctx, s.toastKey, goredis.Z{Score: float64(n.ExpiresAt.UnixMilli()), Member: data})
	pipe.ZRemRangeByRank(ctx, s.toastKey, 0, -maxToasts-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis notification push: %w", err)
	}
	return nil
}

// Recent drops expired toasts and returns the rest, oldest first.
func (s *NotificationStore) Recent(ctx context.Context, now time.Time) ([]domain.Notification, error) {
	cutoff := strconv.FormatInt(now.UnixMilli(), 10)
	if err := s.client.ZRemRangeByScore(ctx, s.toastKey, "-inf", cutoff).Err(); err != nil {
		return nil, fmt.Errorf("redis notification prune: %w", err)
	}

	raw, err := s.client.ZRangeByScore(ctx, s.toastKey, &goredis.ZRangeBy{Min: "(" + cutoff, Max: "+inf"}).Result()
	if err != nil {
		return nil, fmt.Errorf("redis notification range: %w", err)
	}

	out := make([]domain.Notification, 0, len(raw))
	for _, r := range raw {
		var n domain.Notification
		if err := json.Unmarshal([]byte(r), &n); err != nil {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (s *NotificationStore) PutResult(ctx context.Context, payload domain.SettlementPayload, ttl time.Duration) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode settlement result: %w", err)
	}
	if err := s.client.Set(ctx, s.resultPrefix+payload.InvoiceID, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis settlement result set: %w", err)
	}
	return nil
}

func (s *NotificationStore) Result(ctx context.Context, invoiceID string) (domain.SettlementPayload, bool, error) {
	data, err := s.client.Get(ctx, s.resultPrefix+invoiceID).Bytes()
	if errors.Is(err, goredis.Nil) {
		return domain.SettlementPayload{}, false, nil
	}
	if err != nil {
		return domain.SettlementPayload{}, false, fmt.Errorf("redis settlement result get: %w", err)
	}
	var p domain.SettlementPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.SettlementPayload{}, false, fmt.Errorf("decode settlement result: %w", err)
	}
	return p, true, nil
}

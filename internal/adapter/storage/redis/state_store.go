package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// StateStore implements ports.StateStore with one Redis string per document.
type StateStore struct {
	client goredis.UniversalClient
	key    string
	legacy string
}

var _ ports.StateStore = (*StateStore)(nil)

func NewStateStore(client goredis.UniversalClient) *StateStore {
	return &StateStore{
		client: client,
		key:    domain.StateKey,
		legacy: domain.LegacyStateKey,
	}
}

// Load reads the combined document, falling back to the legacy invoice list.
func (s *StateStore) Load(ctx context.Context) (domain.State, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == nil {
		return domain.DecodeState(data)
	}
	if !errors.Is(err, goredis.Nil) {
		return domain.State{}, fmt.Errorf("redis state get: %w", err)
	}

	data, err = s.client.Get(ctx, s.legacy).Bytes()
	if errors.Is(err, goredis.Nil) {
		return domain.State{}, ports.ErrStateNotFound
	}
	if err != nil {
		return domain.State{}, fmt.Errorf("redis legacy state get: %w", err)
	}
	return domain.DecodeLegacyState(data)
}

// Save replaces the document with a single SET.
func (s *StateStore) Save(ctx context.Context, state domain.State) error {
	data, err := json.Marshal(state.Normalize())
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis state set: %w", err)
	}
	return nil
}

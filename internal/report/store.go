package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound reports a token that does not resolve to a stored report,
// either because it never existed or because its TTL lapsed.
var ErrNotFound = errors.New("report not found")

// Store persists shared reports in Redis under opaque tokens. Reports are
// ephemeral by design: once the TTL lapses the token dangles and lookups
// return ErrNotFound.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore constructs a Store with the given share lifetime.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{client: client, ttl: ttl}
}

func storeKey(token string) string { return "report:" + token }

// Save stores the report under a fresh token and returns the token together
// with its expiry time.
func (s *Store) Save(ctx context.Context, rep Report) (string, time.Time, error) {
	data, err := json.Marshal(rep)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("marshal report: %w", err)
	}
	token := uuid.NewString()
	if err := s.client.Set(ctx, storeKey(token), data, s.ttl).Err(); err != nil {
		return "", time.Time{}, fmt.Errorf("store report: %w", err)
	}
	return token, time.Now().Add(s.ttl), nil
}

// Get resolves a previously shared report by token.
func (s *Store) Get(ctx context.Context, token string) (Report, error) {
	data, err := s.client.Get(ctx, storeKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Report{}, ErrNotFound
		}
		return Report{}, fmt.Errorf("load report: %w", err)
	}
	var rep Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return Report{}, fmt.Errorf("decode report: %w", err)
	}
	return rep, nil
}

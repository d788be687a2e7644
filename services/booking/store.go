package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wheelify/models"

	"github.com/go-redis/redis/v8"
)

// ErrSessionNotFound is returned when a session or checkout process is
// missing or has expired.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// SessionStore persists booking sessions and their checkout processes for
// the lifetime of one booking flow.
type SessionStore interface {
	SaveSession(ctx context.Context, s *models.BookingSession) error
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	DeleteSession(ctx context.Context, sessionID string) error

	SaveCheckout(ctx context.Context, p *models.CheckoutProcess) error
	GetCheckout(ctx context.Context, sessionID string) (*models.CheckoutProcess, error)
	DeleteCheckout(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions and checkout processes as JSON values
// with a sliding TTL, on separate Redis databases.
type RedisSessionStore struct {
	Sessions  *redis.Client
	Checkouts *redis.Client
	TTL       time.Duration
}

func NewRedisSessionStore(sessions, checkouts *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Sessions: sessions, Checkouts: checkouts, TTL: ttl}
}

func (st *RedisSessionStore) SaveSession(ctx context.Context, s *models.BookingSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := st.Sessions.Set(ctx, s.SessionID, data, st.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (st *RedisSessionStore) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := st.Sessions.Get(ctx, sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var s models.BookingSession
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &s, nil
}

func (st *RedisSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	if err := st.Sessions.Del(ctx, sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}

func (st *RedisSessionStore) SaveCheckout(ctx context.Context, p *models.CheckoutProcess) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout process: %w", err)
	}
	if err := st.Checkouts.Set(ctx, p.SessionID, data, st.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store checkout process: %w", err)
	}
	return nil
}

func (st *RedisSessionStore) GetCheckout(ctx context.Context, sessionID string) (*models.CheckoutProcess, error) {
	data, err := st.Checkouts.Get(ctx, sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load checkout process: %w", err)
	}
	var p models.CheckoutProcess
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to parse checkout process: %w", err)
	}
	return &p, nil
}

func (st *RedisSessionStore) DeleteCheckout(ctx context.Context, sessionID string) error {
	if err := st.Checkouts.Del(ctx, sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete checkout process: %w", err)
	}
	return nil
}

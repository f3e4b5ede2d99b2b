package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrNoCart is returned when no cart state exists for a session.
var ErrNoCart = errors.New("cart not found")

// CartState is the per-session record of selected menu items. It lives in
// Redis for the session lifetime: created on first add, removed on clear,
// successful checkout or TTL expiry.
type CartState struct {
	SessionID string       `json:"session_id"`
	Items     map[uint]int `json:"items"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func NewCartState(sessionID string) *CartState {
	now := time.Now()
	return &CartState{
		SessionID: sessionID,
		Items:     map[uint]int{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Add increments the quantity for a menu item, creating the entry at 1.
func (s *CartState) Add(itemID uint) {
	s.Items[itemID]++
	s.UpdatedAt = time.Now()
}

// Remove deletes the entry outright, regardless of quantity. Reports
// whether the item was present.
func (s *CartState) Remove(itemID uint) bool {
	if _, ok := s.Items[itemID]; !ok {
		return false
	}
	delete(s.Items, itemID)
	s.UpdatedAt = time.Now()
	return true
}

func (s *CartState) Quantity(itemID uint) int {
	return s.Items[itemID]
}

func (s *CartState) IsEmpty() bool {
	return len(s.Items) == 0
}

// Store persists cart state in Redis as JSON with a bounded TTL.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func Initialize(redisURL string, ttl time.Duration) (*Store, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewStore(rdb, ttl), nil
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) Get(ctx context.Context, sessionID string) (*CartState, error) {
	val, err := s.rdb.Get(ctx, cartKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoCart
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var state CartState
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart state: %w", err)
	}
	if state.Items == nil {
		state.Items = map[uint]int{}
	}

	return &state, nil
}

func (s *Store) Save(ctx context.Context, state *CartState) error {
	jsonData, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal cart state: %w", err)
	}

	return s.rdb.Set(ctx, cartKey(state.SessionID), jsonData, s.ttl).Err()
}

func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, cartKey(sessionID)).Err()
}

func (s *Store) Close() error {
	return s.rdb.Close()
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

package sessioncart

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "cart:session:"

// TTL bounds how long an abandoned anonymous cart survives. Refreshed on
// every write.
const TTL = 7 * 24 * time.Hour

// Store keeps anonymous cart state in a Redis hash per browsing session:
// field = product id, value = quantity. It exists only until the visitor
// authenticates (merge then clear) or the TTL expires.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func key(sessionID string) string {
	return keyPrefix + sessionID
}

// Read returns the session cart as a product id → quantity map. A missing
// key reads as an empty cart.
func (s *Store) Read(ctx context.Context, sessionID string) (map[uint]int, error) {
	raw, err := s.rdb.HGetAll(ctx, key(sessionID)).Result()
	if err != nil {
		return nil, err
	}
	return decode(raw), nil
}

// Add increments the quantity for a product, creating the entry (and the
// hash) as needed.
func (s *Store) Add(ctx context.Context, sessionID string, productID uint, quantity int) error {
	k := key(sessionID)
	pipe := s.rdb.TxPipeline()
	pipe.HIncrBy(ctx, k, field(productID), int64(quantity))
	pipe.Expire(ctx, k, TTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Store) Remove(ctx context.Context, sessionID string, productID uint) error {
	return s.rdb.HDel(ctx, key(sessionID), field(productID)).Err()
}

func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, key(sessionID)).Err()
}

func field(productID uint) string {
	return strconv.FormatUint(uint64(productID), 10)
}

// decode tolerates malformed or non-positive fields by dropping them; the
// session cart is best-effort, disposable state.
func decode(raw map[string]string) map[uint]int {
	items := make(map[uint]int, len(raw))
	for f, v := range raw {
		id, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			continue
		}
		qty, err := strconv.Atoi(v)
		if err != nil || qty <= 0 {
			continue
		}
		items[uint(id)] = qty
	}
	return items
}

// Package cartrepo keeps session carts in Redis as JSON documents that expire
// after a period of inactivity.
package cartrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long an untouched cart survives.
const DefaultTTL = 7 * 24 * time.Hour

type cartDTO struct {
	SessionID string    `json:"sessionId"`
	Items     []itemDTO `json:"items"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type itemDTO struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// RedisCartStore implements ports.CartStore.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCartStore{client: client, ttl: ttl}
}

func (s *RedisCartStore) key(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

func (s *RedisCartStore) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errs.NewObjectNotFoundError("cart", sessionID)
	}
	if err != nil {
		return nil, err
	}

	var dto cartDTO
	if err = json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", sessionID, err)
	}

	items := make([]cart.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		productID, idErr := kernel.UUIDFromString(item.ProductID)
		if idErr != nil {
			return nil, idErr
		}
		items = append(items, cart.Item{ProductID: productID, Quantity: item.Quantity})
	}

	return cart.RestoreCart(dto.SessionID, items, dto.UpdatedAt)
}

// Save overwrites the cart and restarts its TTL.
func (s *RedisCartStore) Save(ctx context.Context, c *cart.Cart) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := cartDTO{SessionID: c.SessionID(), UpdatedAt: c.UpdatedAt()}
	for _, item := range c.Items() {
		dto.Items = append(dto.Items, itemDTO{ProductID: item.ProductID.String(), Quantity: item.Quantity})
	}

	data, err := json.Marshal(dto)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, s.key(c.SessionID()), data, s.ttl).Err()
}

// Delete is a no-op for a session without a cart.
func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

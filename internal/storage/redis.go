package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// PaymentMethodCache memoizes payment-method active flags so checkout does
// not hit Postgres for every validation. Entries expire or are invalidated
// when an admin toggles a method.
type PaymentMethodCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewPaymentMethodCache(client *redis.Client, ttl time.Duration) *PaymentMethodCache {
	return &PaymentMethodCache{Client: client, TTL: ttl}
}

func (c *PaymentMethodCache) ActiveKey(id int) string {
	return "payment_method:active:" + strconv.Itoa(id)
}

// GetActive returns (value, hit, error).
func (c *PaymentMethodCache) GetActive(ctx context.Context, key string) (bool, bool, error) {
	val, err := c.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return val == "1", true, nil
}

func (c *PaymentMethodCache) SetActive(ctx context.Context, key string, active bool) error {
	val := "0"
	if active {
		val = "1"
	}
	return c.Client.Set(ctx, key, val, c.TTL).Err()
}

func (c *PaymentMethodCache) Invalidate(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

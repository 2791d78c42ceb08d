package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client and fails safe: connectivity errors behave like
// cache misses, so listing and role resolution degrade to the database
// instead of surfacing Redis faults to callers.
type Client struct {
	client *redis.Client
}

// New creates a new Redis-backed cache client.
func New(addr, password string, db int) *Client {
	return &Client{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func (c *Client) available() bool {
	return c != nil && c.client != nil
}

// Ping reports whether Redis is reachable. Used only for a startup log line;
// the cache works (as a no-op) without it.
func (c *Client) Ping(ctx context.Context) error {
	if !c.available() {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Get returns the value for key, or nil on miss or Redis failure.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if !c.available() {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and connectivity errors both read as a miss
		return nil, nil
	}
	return res, nil
}

// Set stores value with TTL, ignoring Redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !c.available() {
		return nil
	}
	_ = c.client.Set(ctx, key, value, ttl).Err()
	return nil
}

// Delete removes a key, ignoring Redis errors.
func (c *Client) Delete(ctx context.Context, key string) error {
	if !c.available() {
		return nil
	}
	_ = c.client.Del(ctx, key).Err()
	return nil
}

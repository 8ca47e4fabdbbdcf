package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const throttleKey = "throttle:ai_quote"

// Throttle enforces a minimum delay between expensive upstream calls,
// coordinated across instances through Redis.
//
// The gate is a single key written with SET NX PX. Whoever sets it first owns
// the current window; everyone else reads the remaining TTL and waits it out.
type Throttle struct {
	client *redis.Client
	delay  time.Duration
}

// NewThrottle creates a Throttle with the given minimum delay between calls.
func NewThrottle(client *redis.Client, delay time.Duration) *Throttle {
	return &Throttle{client: client, delay: delay}
}

// Wait blocks until the gate opens, then claims the next window. Returns
// early with the context's error when the caller gives up.
func (t *Throttle) Wait(ctx context.Context) error {
	for {
		ok, err := t.client.SetNX(ctx, throttleKey, "1", t.delay).Result()
		if err != nil {
			return fmt.Errorf("throttle claim: %w", err)
		}
		if ok {
			return nil
		}

		ttl, err := t.client.PTTL(ctx, throttleKey).Result()
		if err != nil {
			return fmt.Errorf("throttle ttl: %w", err)
		}
		if ttl <= 0 {
			continue
		}

		select {
		case <-time.After(ttl):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

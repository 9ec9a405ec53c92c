package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"reembolso-api/app/models"

	"github.com/redis/go-redis/v9"
)

const genKey = "expenses:pending:gen"

// PendingCache keeps role-scoped pending listings in redis. Invalidation
// bumps a generation counter instead of scanning keys; stale entries expire
// via TTL. A nil *PendingCache is a valid no-op cache.
type PendingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewPendingCache(rdb *redis.Client, ttl time.Duration) *PendingCache {
	return &PendingCache{rdb: rdb, ttl: ttl}
}

func (c *PendingCache) key(ctx context.Context, role, owner string) string {
	gen, err := c.rdb.Get(ctx, genKey).Result()
	if err != nil && err != redis.Nil {
		return ""
	}
	return fmt.Sprintf("expenses:pending:%s:%s:%s", gen, role, owner)
}

func (c *PendingCache) Get(ctx context.Context, role, owner string) ([]models.Expense, bool) {
	if c == nil {
		return nil, false
	}
	key := c.key(ctx, role, owner)
	if key == "" {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var out []models.Expense
	if json.Unmarshal([]byte(raw), &out) != nil {
		return nil, false
	}
	return out, true
}

func (c *PendingCache) Put(ctx context.Context, role, owner string, list []models.Expense) {
	if c == nil {
		return
	}
	key := c.key(ctx, role, owner)
	if key == "" {
		return
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return
	}
	// best effort
	_ = c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate drops every cached listing by advancing the generation.
func (c *PendingCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	_ = c.rdb.Incr(ctx, genKey).Err()
}

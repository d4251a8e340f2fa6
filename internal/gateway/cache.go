package gateway

import (
    "context"
    "time"

    "github.com/redis/go-redis/v9"
    "go.uber.org/zap"
)

// Cache is a small Redis read cache for backend collections that change
// rarely relative to page loads (rooms, users).  All operations are
// best-effort: any Redis error is logged at debug level and treated as a
// miss so the page falls back to the backend.
type Cache struct {
    rdb    *redis.Client
    ttl    time.Duration
    prefix string
    log    *zap.Logger
}

// NewCache wraps a Redis client.  It returns nil when rdb is nil or the
// cache is disabled, which callers pass straight to gateway.New to turn
// caching off.
func NewCache(rdb *redis.Client, enabled bool, ttl time.Duration, prefix string, log *zap.Logger) *Cache {
    if rdb == nil || !enabled {
        return nil
    }
    if log == nil {
        log = zap.NewNop()
    }
    return &Cache{rdb: rdb, ttl: ttl, prefix: prefix, log: log}
}

func (c *Cache) key(path string) string { return c.prefix + ":" + path }

func (c *Cache) get(ctx context.Context, path string) ([]byte, bool) {
    raw, err := c.rdb.Get(ctx, c.key(path)).Bytes()
    if err != nil {
        if err != redis.Nil {
            c.log.Debug("cache get failed", zap.String("path", path), zap.Error(err))
        }
        return nil, false
    }
    return raw, true
}

func (c *Cache) set(ctx context.Context, path string, raw []byte) {
    if err := c.rdb.Set(ctx, c.key(path), raw, c.ttl).Err(); err != nil {
        c.log.Debug("cache set failed", zap.String("path", path), zap.Error(err))
    }
}

func (c *Cache) drop(ctx context.Context, path string) {
    if err := c.rdb.Del(ctx, c.key(path)).Err(); err != nil {
        c.log.Debug("cache del failed", zap.String("path", path), zap.Error(err))
    }
}

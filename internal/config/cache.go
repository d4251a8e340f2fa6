package config

import (
    "time"
)

// CacheConfig defines settings for the gateway read cache.  When Enabled is
// false or no Redis client is configured, caching is disabled and every page
// load fetches the room and user collections directly from the backend.
// Prefix namespaces the keys so the cache can share a Redis database with
// other deployments.
type CacheConfig struct {
    Enabled bool
    TTL     time.Duration
    Prefix  string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled: getenv("CACHE_ENABLED", "true") == "true",
        TTL:     getdur("CACHE_TTL", 30*time.Second),
        Prefix:  getenv("CACHE_PREFIX", "cache"),
    }
}

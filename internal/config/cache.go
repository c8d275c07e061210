package config

import "time"

// CacheConfig controls the Redis response cache applied to read-only GET
// routes. The scanner check-in GETs are writes and are never cached; the
// router only attaches the cache middleware to listing and lookup routes.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads CACHE_ENABLED, CACHE_TTL and CACHE_PREFIX with
// defaults tuned for short-lived member/history listings.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: envBool("CACHE_ENABLED", true),
		TTL:     envDur("CACHE_TTL", 30*time.Second),
		Prefix:  getenv("CACHE_PREFIX", "cache"),
	}
}

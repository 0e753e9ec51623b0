package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"marketplace/config"
)

// AuthCachePrefix namespaces token-hash lookups in the auth cache.
const AuthCachePrefix = "auth:"

// AuthCacheTTL bounds how long a token-hash lookup stays cached.
const AuthCacheTTL = time.Hour

// InitAuthCache builds the Redis client used for authorization caching.
// Redis being unreachable is not fatal: authentication falls back to the
// database, so a nil client is returned and callers treat the cache as
// disabled.
func InitAuthCache() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Warn("Auth cache unavailable, falling back to DB lookups: " + err.Error())
		return nil
	}
	return client
}

// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"tourhub/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the Redis client backing the catalog cache.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client. The cache is optional: if
// disabled or unreachable, callers fall back to store reads.
func InitCache() {
	if !config.AppConfig.CacheEnabled {
		log.Println("Catalog cache disabled by configuration")
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("WARNING: Redis unavailable, catalog cache disabled: %v", err)
		return
	}
	CacheClient = client
}

// GetCacheClient returns the cache client, or nil when caching is disabled.
func GetCacheClient() *redis.Client {
	return CacheClient
}

// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"goodfoods/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient is the dedicated client for chat session storage.
var SessionCacheClient *redis.Client

// InitSessionCache initializes the Redis client for chat sessions
// (using DB from AppConfig for session storage).
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for chat sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

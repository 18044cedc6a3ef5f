// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"medicore/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix namespaces cached auth token hashes.
const AuthCachePrefix = "authToken:"

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// CacheAuthToken stores the hash of an issued token so the auth middleware can
// verify it without a database round trip, and so revocation takes effect
// immediately.
func CacheAuthToken(userID, tokenHash string, ttl time.Duration) error {
	ctx := context.Background()
	return GetAuthCacheClient().Set(ctx, AuthCachePrefix+userID, tokenHash, ttl).Err()
}

// GetCachedAuthToken retrieves the cached token hash for a user. Returns
// redis.Nil wrapped error when no token is cached.
func GetCachedAuthToken(userID string) (string, error) {
	ctx := context.Background()
	return GetAuthCacheClient().Get(ctx, AuthCachePrefix+userID).Result()
}

// RevokeAuthToken drops a user's cached token hash, forcing re-authentication.
func RevokeAuthToken(userID string) error {
	ctx := context.Background()
	return GetAuthCacheClient().Del(ctx, AuthCachePrefix+userID).Err()
}

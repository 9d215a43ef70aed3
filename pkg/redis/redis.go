package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eyesdeal/eyesdeal-backend/config"
	"github.com/eyesdeal/eyesdeal-backend/pkg/logger"
	"github.com/eyesdeal/eyesdeal-backend/pkg/masterdata"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init initializes Redis connection
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		client = nil
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully", nil)
	return nil
}

// GetClient returns the Redis client instance (nil when Redis is disabled)
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection", nil)
		return client.Close()
	}
	return nil
}

func attributeKey(attributeType string) string {
	return fmt.Sprintf("master:%s", attributeType)
}

// CacheAttributeList stores a master attribute list for its type. A nil or
// unreachable client is not an error; the database stays the source of truth.
func CacheAttributeList(ctx context.Context, attributeType string, records []masterdata.AttributeRecord, ttl time.Duration) {
	if client == nil {
		return
	}

	payload, err := json.Marshal(records)
	if err != nil {
		logger.Error("Failed to encode attribute list for cache", err, map[string]interface{}{
			"attribute_type": attributeType,
		})
		return
	}

	if err := client.Set(ctx, attributeKey(attributeType), payload, ttl).Err(); err != nil {
		logger.Warn("Failed to cache attribute list", map[string]interface{}{
			"attribute_type": attributeType,
			"error":          err.Error(),
		})
	}
}

// GetCachedAttributeList returns the cached list for an attribute type, or
// false when there is no usable cache entry.
func GetCachedAttributeList(ctx context.Context, attributeType string) ([]masterdata.AttributeRecord, bool) {
	if client == nil {
		return nil, false
	}

	payload, err := client.Get(ctx, attributeKey(attributeType)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Warn("Failed to read attribute list cache", map[string]interface{}{
			"attribute_type": attributeType,
			"error":          err.Error(),
		})
		return nil, false
	}

	var records []masterdata.AttributeRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		logger.Warn("Discarding corrupt attribute list cache entry", map[string]interface{}{
			"attribute_type": attributeType,
			"error":          err.Error(),
		})
		return nil, false
	}
	return records, true
}

// InvalidateAttributeList drops the cached list after a mutating operation.
func InvalidateAttributeList(ctx context.Context, attributeType string) {
	if client == nil {
		return
	}

	if err := client.Del(ctx, attributeKey(attributeType)).Err(); err != nil {
		logger.Warn("Failed to invalidate attribute list cache", map[string]interface{}{
			"attribute_type": attributeType,
			"error":          err.Error(),
		})
	}
}

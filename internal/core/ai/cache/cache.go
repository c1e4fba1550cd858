package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"smart-recipe-generator/internal/infrastructure/config"
	"smart-recipe-generator/internal/pkg/common"
)

const keyPrefix = "gen:recipe:"

// Service caches raw generation output keyed by prompt hash. A disabled or
// unreachable cache is never an error; callers just get a miss.
type Service struct {
	client  *redis.Client
	ttl     time.Duration
	enabled bool
}

// NewService creates the cache service. When the cache is disabled in config
// no Redis connection is made.
func NewService(cfg config.CacheConfig) *Service {
	if !cfg.Enabled {
		return &Service{enabled: false}
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		common.LogWarn("redis unreachable, generation cache disabled", zap.Error(err))
		return &Service{enabled: false}
	}

	common.LogInfo("generation cache enabled", zap.String("addr", cfg.Addr))
	return &Service{client: client, ttl: cfg.TTL, enabled: true}
}

// Enabled reports whether the cache is active.
func (s *Service) Enabled() bool {
	return s.enabled
}

// Get returns the cached generation output for a prompt, or "" on a miss.
func (s *Service) Get(ctx context.Context, prompt string) string {
	if !s.enabled {
		return ""
	}

	val, err := s.client.Get(ctx, promptKey(prompt)).Result()
	if err == redis.Nil {
		common.LogCacheMiss("generation")
		return ""
	}
	if err != nil {
		common.LogWarn("cache read failed", zap.Error(err))
		return ""
	}

	common.LogCacheHit("generation")
	return val
}

// Set stores generation output for a prompt. Write failures are logged and
// swallowed.
func (s *Service) Set(ctx context.Context, prompt, output string) {
	if !s.enabled {
		return
	}
	if err := s.client.Set(ctx, promptKey(prompt), output, s.ttl).Err(); err != nil {
		common.LogWarn("cache write failed", zap.Error(err))
	}
}

// Close releases the Redis connection.
func (s *Service) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

func promptKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return keyPrefix + hex.EncodeToString(sum[:])
}

package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/station-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

// ResponseCache - сквозной кеш собранных ответов в Redis. Набор данных
// статичен, поэтому ответы живут до истечения TTL без инвалидации.
type ResponseCache struct {
	repo   repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewResponseCache возвращает nil, если кеш выключен; nil-кеш
// просто вызывает загрузку напрямую
func NewResponseCache(repo repository.CacheRepository, ttl time.Duration, enabled bool, logger *zap.Logger) *ResponseCache {
	if !enabled || repo == nil {
		return nil
	}
	return &ResponseCache{
		repo:   repo,
		ttl:    ttl,
		logger: logger,
	}
}

// cached читает ответ из кеша или собирает его через load и сохраняет.
// Ошибки кеша не прерывают запрос.
func cached[T any](ctx context.Context, c *ResponseCache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	if c == nil {
		return load(ctx)
	}

	if data, err := c.repo.Get(ctx, key); err != nil {
		c.logger.Warn("Response cache read failed", zap.String("key", key), zap.Error(err))
	} else if data != nil {
		var value T
		decodeErr := json.Unmarshal(data, &value)
		if decodeErr == nil {
			return value, nil
		}
		c.logger.Warn("Failed to decode cached response", zap.String("key", key), zap.Error(decodeErr))
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Failed to encode response for cache", zap.String("key", key), zap.Error(err))
		return value, nil
	}
	if err := c.repo.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache response", zap.String("key", key), zap.Error(err))
	}

	return value, nil
}

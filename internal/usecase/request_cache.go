package usecase

import (
	"context"
	"sync"

	"github.com/station-microservice/internal/domain"
)

// batchCache - кеш одного запроса: ключ -> значение (или известное отсутствие).
// Повторные ключи в рамках запроса не уходят в хранилище, недостающие
// запрашиваются одной пачкой.
type batchCache[K comparable, V any] struct {
	mu     sync.Mutex
	values map[K]V
	absent map[K]struct{}
}

func newBatchCache[K comparable, V any]() *batchCache[K, V] {
	return &batchCache[K, V]{
		values: make(map[K]V),
		absent: make(map[K]struct{}),
	}
}

// loadMany возвращает значения для keys; fetch вызывается только для ключей,
// которых ещё нет в кеше. Ключи, которых нет в ответе fetch, запоминаются
// как отсутствующие.
func (c *batchCache[K, V]) loadMany(
	ctx context.Context,
	keys []K,
	fetch func(ctx context.Context, missing []K) (map[K]V, error),
) (map[K]V, error) {
	result := make(map[K]V, len(keys))
	var missing []K

	c.mu.Lock()
	seen := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}

		if v, ok := c.values[k]; ok {
			result[k] = v
			continue
		}
		if _, ok := c.absent[k]; ok {
			continue
		}
		missing = append(missing, k)
	}
	c.mu.Unlock()

	if len(missing) == 0 {
		return result, nil
	}

	fetched, err := fetch(ctx, missing)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range missing {
		if v, ok := fetched[k]; ok {
			c.values[k] = v
			result[k] = v
			continue
		}
		c.absent[k] = struct{}{}
	}

	return result, nil
}

// requestScope - кеши одной операции; создаётся на запрос и не переживает его
type requestScope struct {
	companies    *batchCache[int64, *domain.CompanyRow]
	groupLines   *batchCache[int64, []*domain.LineRow]
	throughLines *batchCache[int64, []*domain.TrainTypeWithLineRow]
}

func newRequestScope() *requestScope {
	return &requestScope{
		companies:    newBatchCache[int64, *domain.CompanyRow](),
		groupLines:   newBatchCache[int64, []*domain.LineRow](),
		throughLines: newBatchCache[int64, []*domain.TrainTypeWithLineRow](),
	}
}

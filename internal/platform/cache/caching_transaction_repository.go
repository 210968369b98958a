// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"expense_backend/internal/feature/transactions/domain/entity"
	"expense_backend/internal/feature/transactions/usecase"
)

// CachingTransactionRepository decorates a transaction Repository with Redis
// caching for list queries. Mutations pass through and invalidate every cached
// window of the affected user, so a stale list never survives a write.
type CachingTransactionRepository struct {
	inner     usecase.Repository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.Repository = (*CachingTransactionRepository)(nil)

// NewCachingTransactionRepository decorates a Repository with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses "transactions".
func NewCachingTransactionRepository(rdb *redis.Client, ttl time.Duration, inner usecase.Repository, namespace string) *CachingTransactionRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "transactions"
	}
	return &CachingTransactionRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// cacheKey generates a cache key for a list query. The cutoff is truncated to
// the minute so repeated queries within the TTL share a key despite the
// now-relative window.
func (c *CachingTransactionRepository) cacheKey(userID uint, since time.Time) string {
	return fmt.Sprintf("%s:%d:%s", c.namespace, userID, since.UTC().Truncate(time.Minute).Format("200601021504"))
}

// userKeyPattern matches every cached window of one user.
func (c *CachingTransactionRepository) userKeyPattern(userID uint) string {
	return fmt.Sprintf("%s:%d:*", c.namespace, userID)
}

// ListSince retrieves transactions, checking the cache first and falling back
// to the underlying repository.
func (c *CachingTransactionRepository) ListSince(ctx context.Context, userID uint, since time.Time) ([]entity.Transaction, error) {
	if c.rdb == nil {
		return c.inner.ListSince(ctx, userID, since)
	}

	key := c.cacheKey(userID, since)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Transaction
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry.
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.ListSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	// Best effort: a cache write failure never fails the request.
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// Create inserts a transaction and invalidates the user's cached windows.
func (c *CachingTransactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	if err := c.inner.Create(ctx, tx); err != nil {
		return err
	}
	c.invalidateUser(ctx, tx.UserID)
	return nil
}

// Update overwrites a transaction and invalidates the user's cached windows.
func (c *CachingTransactionRepository) Update(ctx context.Context, userID, id uint, amount float64, txType, category, description string) error {
	if err := c.inner.Update(ctx, userID, id, amount, txType, category, description); err != nil {
		return err
	}
	c.invalidateUser(ctx, userID)
	return nil
}

// Delete removes a transaction and invalidates the user's cached windows.
func (c *CachingTransactionRepository) Delete(ctx context.Context, userID, id uint) error {
	if err := c.inner.Delete(ctx, userID, id); err != nil {
		return err
	}
	c.invalidateUser(ctx, userID)
	return nil
}

func (c *CachingTransactionRepository) invalidateUser(ctx context.Context, userID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.userKeyPattern(userID))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingTransactionRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

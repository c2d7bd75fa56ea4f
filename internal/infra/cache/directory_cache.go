package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"tapgate/internal/domain/entity"
	"tapgate/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultDirectoryTTL = 5 * time.Minute

// cachedIdentityDirectory wraps an IdentityDirectory with a Redis cache keyed
// by class and credential UID. Only positive lookups are cached; a missing
// credential always hits the database so newly issued cards work immediately.
type cachedIdentityDirectory struct {
	inner  repository.IdentityDirectory
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedIdentityDirectory decorates the directory with a Redis cache.
// With a nil client the inner directory is returned unchanged.
func NewCachedIdentityDirectory(inner repository.IdentityDirectory, client *redis.Client, ttl time.Duration, logger *slog.Logger) repository.IdentityDirectory {
	if client == nil {
		return inner
	}
	if ttl <= 0 {
		ttl = defaultDirectoryTTL
	}

	return &cachedIdentityDirectory{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *cachedIdentityDirectory) FindActiveByCredential(ctx context.Context, class entity.IdentityClass, credentialUID string) (*entity.Identity, error) {
	key := fmt.Sprintf("identity:%s:%s", class, credentialUID)

	payload, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var identity entity.Identity
		if unmarshalErr := json.Unmarshal([]byte(payload), &identity); unmarshalErr == nil {
			return &identity, nil
		}
		// Corrupt entry, fall through to the database and overwrite it.
	} else if !errors.Is(err, redis.Nil) {
		// Cache trouble must not fail taps; log and go to the database.
		c.logger.Warn("directory cache read failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}

	identity, err := c.inner.FindActiveByCredential(ctx, class, credentialUID)
	if err != nil {
		return nil, err
	}

	if data, marshalErr := json.Marshal(identity); marshalErr == nil {
		if setErr := c.client.Set(ctx, key, data, c.ttl).Err(); setErr != nil {
			c.logger.Warn("directory cache write failed",
				slog.String("key", key),
				slog.Any("error", setErr),
			)
		}
	}

	return identity, nil
}

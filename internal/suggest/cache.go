package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"seo-insight/internal/logger"
)

const cacheKeyFmt = "suggest:%s:%d:%s"

// CachedProvider wraps another Provider with a Redis-backed TTL cache.
// Cache failures fall through to the inner provider, so enabling the
// cache never changes response shape.
type CachedProvider struct {
	inner Provider
	rdb   *redis.Client
	ttl   time.Duration
	log   *logger.Logger
}

func NewCachedProvider(inner Provider, rdb *redis.Client, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
		log:   logger.GetLogger().WithField("component", "suggest_cache"),
	}
}

func (p *CachedProvider) Name() string { return p.inner.Name() }

func (p *CachedProvider) Suggest(ctx context.Context, query string, max int) ([]string, error) {
	key := fmt.Sprintf(cacheKeyFmt, p.inner.Name(), max, query)

	if raw, err := p.rdb.Get(ctx, key).Result(); err == nil {
		var cached []string
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			p.log.WithField("query", query).Debug("Suggestion cache hit")
			return cached, nil
		}
	}

	suggestions, err := p.inner.Suggest(ctx, query, max)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(suggestions); err == nil {
		if err := p.rdb.Set(ctx, key, raw, p.ttl).Err(); err != nil {
			p.log.WithError(err).Warn("Failed to store suggestions in cache")
		}
	}
	return suggestions, nil
}

package web

import (
	"context"
	"time"

	"github.com/karlseguin/ccache/v3"

	"property_search/internal/adapters/observability"
	"property_search/internal/domain"
)

// CachedSource keeps recently fetched result sets in process so a burst of
// searches reuses one round trip to the query service. Failures are not cached.
type CachedSource struct {
	src   domain.PropertySource
	cache *ccache.Cache[[]domain.Property]
	ttl   time.Duration
}

func NewCachedSource(src domain.PropertySource, ttl time.Duration) *CachedSource {
	return &CachedSource{
		src:   src,
		cache: ccache.New(ccache.Configure[[]domain.Property]().MaxSize(64)),
		ttl:   ttl,
	}
}

func (c *CachedSource) Search(ctx context.Context, city string) ([]domain.Property, error) {
	if c.ttl <= 0 {
		return c.src.Search(ctx, city)
	}
	key := "city:" + city
	if item := c.cache.Get(key); item != nil && !item.Expired() {
		observability.ObserveCache("ccache", "hit")
		return item.Value(), nil
	}
	observability.ObserveCache("ccache", "miss")

	ps, err := c.src.Search(ctx, city)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, ps, c.ttl)
	observability.ObserveCache("ccache", "set")
	return ps, nil
}

func (c *CachedSource) Stop() { c.cache.Stop() }

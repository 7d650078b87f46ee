package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"property_search/internal/domain"
)

type QueryService struct {
	repo     domain.PropertyRepository
	cache    domain.Cache
	cacheTTL time.Duration
	group    singleflight.Group
}

func NewQueryService(r domain.PropertyRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

// SearchCacheKey is the cache key for one city; the empty city means all rows.
func SearchCacheKey(city string) string {
	if city == "" {
		return "search:*"
	}
	return "search:" + city
}

// Search returns the properties in city, or all of them when city is empty.
// Cache failures are logged and never fail the query; concurrent callers
// asking for the same city share one database round trip.
func (s *QueryService) Search(ctx context.Context, city string) ([]domain.Property, error) {
	key := SearchCacheKey(city)
	if s.cache != nil {
		var out []domain.Property
		ok, err := s.cache.Get(ctx, key, &out)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		}
		if ok {
			if out == nil {
				out = []domain.Property{}
			}
			return out, nil
		}
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		ps, err := s.repo.Search(ctx, city)
		if err != nil {
			return nil, err
		}
		if ps == nil {
			ps = []domain.Property{}
		}
		if s.cache != nil {
			if err := s.cache.Set(ctx, key, ps, int(s.cacheTTL.Seconds())); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("cache set failed")
			}
		}
		return ps, nil
	})
	if err != nil {
		return nil, err
	}
	// callers sharing a flight get their own copy of the backing array
	ps := v.([]domain.Property)
	out := make([]domain.Property, len(ps))
	copy(out, ps)
	return out, nil
}

package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"property_search/internal/domain"
)

type ImportService struct {
	repo  domain.PropertyRepository
	cache domain.Cache
}

func NewImportService(r domain.PropertyRepository, cache domain.Cache) *ImportService {
	return &ImportService{repo: r, cache: cache}
}

// ImportBatch upserts one batch of listings and evicts every cached search
// result the batch could have changed.
func (s *ImportService) ImportBatch(ctx context.Context, ps []domain.Property) error {
	if len(ps) == 0 {
		return nil
	}
	if err := s.repo.UpsertProperties(ctx, ps); err != nil {
		return fmt.Errorf("upsert %d properties (first id %d): %w", len(ps), ps[0].ID, err)
	}
	if s.cache != nil {
		s.invalidate(ctx, ps)
	}
	return nil
}

// invalidate drops the all-cities entry plus one entry per city in the batch.
// A row that moved cities leaves its old city cached until the TTL expires.
func (s *ImportService) invalidate(ctx context.Context, ps []domain.Property) {
	keys := map[string]struct{}{SearchCacheKey(""): {}}
	for _, p := range ps {
		if p.City != "" {
			keys[SearchCacheKey(p.City)] = struct{}{}
		}
	}
	for k := range keys {
		if err := s.cache.Del(ctx, k); err != nil {
			log.Warn().Err(err).Str("key", k).Msg("cache invalidation failed")
		}
	}
}

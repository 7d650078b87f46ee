package domain

import "context"

type PropertyRepository interface {
	// Write path (importer)
	UpsertProperties(ctx context.Context, ps []Property) error

	// Read path. An empty city returns every row.
	Search(ctx context.Context, city string) ([]Property, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// PropertySource is what the frontend needs from the query service.
type PropertySource interface {
	Search(ctx context.Context, city string) ([]Property, error)
}

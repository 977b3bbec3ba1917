package domain

import (
	"context"
	"time"
)

// Catalog is the engine's only external collaborator: a read-only store of
// purchasable products. Implementations must tolerate concurrent reads.
type Catalog interface {
	// FindByTextContains returns products whose name or display label
	// contains any of the terms (case-insensitive substring), ordered by
	// provenance preference then ascending price. maxPrice <= 0 means no cap.
	FindByTextContains(ctx context.Context, terms []string, maxPrice float64) ([]CatalogProduct, error)

	// FindByCategory returns products whose category equals category exactly.
	FindByCategory(ctx context.Context, category string, maxPrice float64) ([]CatalogProduct, error)

	// FindByWords returns products whose name contains any of the individual
	// words, ordered by ascending price.
	FindByWords(ctx context.Context, words []string, maxPrice float64) ([]CatalogProduct, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

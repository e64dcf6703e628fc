package cache

import (
	"context"
	"errors"

	"github.com/Taosaywong/storemart/internal/domain"
)

// ProductCache is an advisory cache for product detail lookups during cart
// enrichment. The server stays the source of truth; a miss or error just
// means a round trip.
type ProductCache interface {
	Get(ctx context.Context, productID int64) (*domain.Product, error)
	Set(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, productID int64) error
}

var ErrCacheMiss = errors.New("cache miss")

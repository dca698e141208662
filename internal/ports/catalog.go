package ports

import (
	"context"

	"github.com/lighty7/taro/internal/domain"
)

// CatalogSource supplies the immutable card catalog and spread table.
type CatalogSource interface {
	Catalog(ctx context.Context) (*domain.Catalog, error)
}

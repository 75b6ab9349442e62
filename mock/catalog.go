package mock

import (
	"context"

	"github.com/fwojciec/symaudit"
)

var (
	_ symaudit.CatalogIndex   = (*CatalogIndex)(nil)
	_ symaudit.CatalogIndexer = (*CatalogIndexer)(nil)
)

// CatalogIndex is a mock implementation of symaudit.CatalogIndex.
type CatalogIndex struct {
	ContainsFn func(symbol string) bool
}

func (i *CatalogIndex) Contains(symbol string) bool {
	return i.ContainsFn(symbol)
}

// NewCatalogIndex returns a CatalogIndex listing exactly the given symbols.
func NewCatalogIndex(symbols ...string) *CatalogIndex {
	set := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		set[s] = struct{}{}
	}
	return &CatalogIndex{
		ContainsFn: func(symbol string) bool {
			_, ok := set[symbol]
			return ok
		},
	}
}

// CatalogIndexer is a mock implementation of symaudit.CatalogIndexer.
type CatalogIndexer struct {
	IndexFn func(raw string) (symaudit.CatalogIndex, error)
}

func (i *CatalogIndexer) Index(raw string) (symaudit.CatalogIndex, error) {
	return i.IndexFn(raw)
}

var _ symaudit.CatalogLoader = (*CatalogLoader)(nil)

// CatalogLoader is a mock implementation of symaudit.CatalogLoader.
type CatalogLoader struct {
	LoadFn func(ctx context.Context, catalogs []symaudit.Catalog) ([]symaudit.NamedIndex, error)
}

func (l *CatalogLoader) Load(ctx context.Context, catalogs []symaudit.Catalog) ([]symaudit.NamedIndex, error) {
	return l.LoadFn(ctx, catalogs)
}

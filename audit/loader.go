// Package audit wires fetching, extraction, classification and reduction into
// the two audit runs: the deprecated-function listing and the GTK2/GTK3
// version diff.
package audit

import (
	"context"
	"fmt"

	"github.com/fwojciec/symaudit"
	"golang.org/x/sync/errgroup"
)

// Ensure Loader implements symaudit.CatalogLoader at compile time.
var _ symaudit.CatalogLoader = (*Loader)(nil)

// Loader fetches catalogs concurrently and indexes them once all have arrived.
type Loader struct {
	Fetcher symaudit.Fetcher
	Indexer symaudit.CatalogIndexer
}

// Load fetches every catalog, then builds the indexes in the order given.
// The first failure cancels the outstanding fetches and is returned.
func (l *Loader) Load(ctx context.Context, catalogs []symaudit.Catalog) ([]symaudit.NamedIndex, error) {
	for i := range catalogs {
		if err := catalogs[i].Validate(); err != nil {
			return nil, err
		}
	}

	bodies := make([]string, len(catalogs))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range catalogs {
		i, c := i, c
		g.Go(func() error {
			body, err := l.Fetcher.Fetch(gctx, c.URL)
			if err != nil {
				return fmt.Errorf("catalog %s: %w", c.Name, err)
			}
			bodies[i] = body
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	indexes := make([]symaudit.NamedIndex, 0, len(catalogs))
	for i, c := range catalogs {
		idx, err := l.Indexer.Index(bodies[i])
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", c.Name, err)
		}
		indexes = append(indexes, symaudit.NamedIndex{Name: c.Name, Index: idx})
	}
	return indexes, nil
}

package audit

import (
	"context"

	"github.com/fwojciec/symaudit"
)

// Report files and console headers of the version diff.
const (
	SharedGTK30File = "dynamic_gtk2x_gtk30_shared_functions.txt"
	SharedGTK3xFile = "dynamic_gtk2x_gtk3x_shared_functions.txt"

	SharedGTK30Title = "Functions shared between GTK2.x and GTK3.0:"
	SharedGTK3xTitle = "Functions shared between GTK2.x and GTK3.x:"
)

// VersionDiffResult is the outcome of a version diff.
type VersionDiffResult struct {
	Table  symaudit.MembershipTable
	Shared symaudit.SharedSets
	Report *symaudit.Report
}

// VersionDiff finds dynamically loaded functions that GTK2 shares with GTK3.0
// and with current GTK3, marking the ones GTK3 has deprecated.
type VersionDiff struct {
	Loader    symaudit.CatalogLoader
	Extractor symaudit.Extractor

	// Exclusive keeps symbols shared with GTK3.0 out of the GTK3.x set.
	Exclusive bool
}

// Run audits source against catalogs, which must include gtk2-stable, gtk3.0,
// gtk3-stable and gtk3-deprecated.
func (v *VersionDiff) Run(ctx context.Context, source string, catalogs []symaudit.Catalog) (*VersionDiffResult, error) {
	if err := requireCatalogs(catalogs,
		symaudit.CatalogGTK2Stable,
		symaudit.CatalogGTK30,
		symaudit.CatalogGTK3Stable,
		symaudit.CatalogGTK3Deprecated,
	); err != nil {
		return nil, err
	}

	indexes, err := v.Loader.Load(ctx, catalogs)
	if err != nil {
		return nil, err
	}

	table := symaudit.Classify(v.Extractor.Extract(source), indexes)
	shared := symaudit.ReduceShared(table, v.Exclusive)
	deprecated := symaudit.LookupIndex(indexes, symaudit.CatalogGTK3Deprecated)

	return &VersionDiffResult{
		Table:  table,
		Shared: shared,
		Report: &symaudit.Report{Sections: []symaudit.Section{
			{
				Title: SharedGTK30Title,
				File:  SharedGTK30File,
				Lines: symaudit.AnnotateLines(shared.With30.Symbols, deprecated),
			},
			{
				Title: SharedGTK3xTitle,
				File:  SharedGTK3xFile,
				Lines: symaudit.AnnotateLines(shared.With3x.Symbols, deprecated),
			},
		}},
	}, nil
}

func requireCatalogs(catalogs []symaudit.Catalog, names ...string) error {
	have := make(map[string]bool, len(catalogs))
	for _, c := range catalogs {
		have[c.Name] = true
	}
	for _, name := range names {
		if !have[name] {
			return symaudit.Errorf(symaudit.EINVALID, "catalog %q required", name)
		}
	}
	return nil
}

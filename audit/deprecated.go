package audit

import (
	"context"

	"github.com/fwojciec/symaudit"
)

// DeprecatedFile is the report file written by the deprecated audit.
const DeprecatedFile = "dynamic_deprecated_functions.txt"

// DeprecatedResult is the outcome of a deprecated audit.
type DeprecatedResult struct {
	// Symbols lists every extracted symbol occurrence.
	Symbols []string

	// Deprecated lists the occurrences found in the deprecated catalog,
	// in extraction order with duplicates kept.
	Deprecated []string

	Report *symaudit.Report
}

// Deprecated lists dynamically loaded functions that appear in the deprecated
// function index.
type Deprecated struct {
	Loader    symaudit.CatalogLoader
	Extractor symaudit.Extractor
}

// Run audits source against the deprecated catalog. Finding nothing is a
// normal outcome with an empty report section.
func (d *Deprecated) Run(ctx context.Context, source string, catalog symaudit.Catalog) (*DeprecatedResult, error) {
	indexes, err := d.Loader.Load(ctx, []symaudit.Catalog{catalog})
	if err != nil {
		return nil, err
	}

	symbols := d.Extractor.Extract(source)
	table := symaudit.Classify(symbols, indexes)
	deprecated := table.Members(catalog.Name)

	return &DeprecatedResult{
		Symbols:    symbols,
		Deprecated: deprecated,
		Report: &symaudit.Report{Sections: []symaudit.Section{{
			File:  DeprecatedFile,
			Lines: symaudit.AnnotateLines(deprecated, nil),
		}}},
	}, nil
}

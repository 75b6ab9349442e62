// Package marker implements symaudit.CatalogIndex as a substring search for
// ">name<" in the raw catalog page. Index pages render each entry as an element
// wrapping the bare symbol name, so the marker appears exactly when the symbol is
// listed. The test is approximate: it ignores the surrounding markup.
package marker

import (
	"strings"

	"github.com/fwojciec/symaudit"
)

// Ensure Index implements symaudit.CatalogIndex at compile time.
var _ symaudit.CatalogIndex = (*Index)(nil)

// Index answers membership against the raw catalog text.
type Index struct {
	raw string
}

// NewIndex returns an Index over raw catalog text.
func NewIndex(raw string) *Index {
	return &Index{raw: raw}
}

// Contains reports whether ">"+symbol+"<" occurs in the catalog text.
func (i *Index) Contains(symbol string) bool {
	return strings.Contains(i.raw, Marker(symbol))
}

// Marker returns the delimited form searched for.
func Marker(symbol string) string {
	return ">" + symbol + "<"
}

// Ensure Indexer implements symaudit.CatalogIndexer at compile time.
var _ symaudit.CatalogIndexer = (*Indexer)(nil)

// Indexer builds marker indexes.
type Indexer struct{}

// NewIndexer returns a new Indexer.
func NewIndexer() *Indexer {
	return &Indexer{}
}

// Index never fails.
func (*Indexer) Index(raw string) (symaudit.CatalogIndex, error) {
	return NewIndex(raw), nil
}

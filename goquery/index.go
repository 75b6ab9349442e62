// Package goquery implements symaudit.CatalogIndex by parsing the catalog page
// and collecting the text of its index entries.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/symaudit"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Ensure Index implements symaudit.CatalogIndex at compile time.
var _ symaudit.CatalogIndex = (*Index)(nil)

// Index holds the set of identifiers rendered as whole element text in a
// catalog page. A leaf element whose trimmed text is an identifier counts as an
// entry, which matches how gtk-doc renders its api-index pages.
type Index struct {
	entries map[string]struct{}
}

// Contains reports whether symbol is an entry of the page.
func (i *Index) Contains(symbol string) bool {
	_, ok := i.entries[symbol]
	return ok
}

// Len returns the number of distinct entries.
func (i *Index) Len() int {
	return len(i.entries)
}

// Parse builds an Index from catalog HTML.
func Parse(html string) (*Index, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, symaudit.Errorf(symaudit.EINVALID, "failed to parse catalog HTML: %v", err)
	}

	idx := &Index{entries: make(map[string]struct{})}
	doc.Find("body *").Each(func(_ int, sel *goquery.Selection) {
		if sel.Children().Length() > 0 {
			return
		}
		text := strings.TrimSpace(sel.Text())
		if identifierRe.MatchString(text) {
			idx.entries[text] = struct{}{}
		}
	})
	return idx, nil
}

// Ensure Indexer implements symaudit.CatalogIndexer at compile time.
var _ symaudit.CatalogIndexer = (*Indexer)(nil)

// Indexer builds structured indexes.
type Indexer struct{}

// NewIndexer returns a new Indexer.
func NewIndexer() *Indexer {
	return &Indexer{}
}

// Index parses raw catalog HTML.
func (*Indexer) Index(raw string) (symaudit.CatalogIndex, error) {
	return Parse(raw)
}

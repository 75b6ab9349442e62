package symaudit

import "context"

// Well-known catalog names.
const (
	CatalogGTK2Stable     = "gtk2-stable"
	CatalogGTK30          = "gtk3.0"
	CatalogGTK3Stable     = "gtk3-stable"
	CatalogGTK3Deprecated = "gtk3-deprecated"
)

// Default locations of the GNOME API index pages.
const (
	DefaultGTK2StableURL     = "https://developer.gnome.org/gtk2/stable/api-index-full.html"
	DefaultGTK30URL          = "https://developer.gnome.org/gtk3/3.0/api-index-full.html"
	DefaultGTK3StableURL     = "https://developer.gnome.org/gtk3/stable/api-index-full.html"
	DefaultGTK3DeprecatedURL = "https://developer.gnome.org/gtk3/stable/api-index-deprecated.html"
)

// Catalog is a named documentation listing of API symbols.
type Catalog struct {
	Name string
	URL  string
}

// Validate returns an error if the catalog contains invalid fields.
func (c *Catalog) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "catalog name required")
	}
	if c.URL == "" {
		return Errorf(EINVALID, "catalog %q URL required", c.Name)
	}
	return nil
}

// CatalogIndex answers whether a symbol is listed in a catalog.
type CatalogIndex interface {
	Contains(symbol string) bool
}

// CatalogIndexer builds a CatalogIndex from the raw text of a catalog page.
type CatalogIndexer interface {
	Index(raw string) (CatalogIndex, error)
}

// NamedIndex pairs a catalog name with its index.
type NamedIndex struct {
	Name  string
	Index CatalogIndex
}

// LookupIndex returns the index registered under name, or nil.
func LookupIndex(indexes []NamedIndex, name string) CatalogIndex {
	for _, ni := range indexes {
		if ni.Name == name {
			return ni.Index
		}
	}
	return nil
}

// CatalogLoader fetches catalogs and builds their indexes.
type CatalogLoader interface {
	// Load returns one NamedIndex per catalog in the order given.
	// Any fetch or index failure aborts the whole load.
	Load(ctx context.Context, catalogs []Catalog) ([]NamedIndex, error)
}

// DeprecatedCatalog returns the deprecated-function catalog at url.
func DeprecatedCatalog(url string) Catalog {
	return Catalog{Name: CatalogGTK3Deprecated, URL: url}
}

// VersionCatalogs returns the four catalogs compared by a version diff.
func VersionCatalogs(gtk2Stable, gtk30, gtk3Stable, gtk3Deprecated string) []Catalog {
	return []Catalog{
		{Name: CatalogGTK2Stable, URL: gtk2Stable},
		{Name: CatalogGTK30, URL: gtk30},
		{Name: CatalogGTK3Stable, URL: gtk3Stable},
		{Name: CatalogGTK3Deprecated, URL: gtk3Deprecated},
	}
}

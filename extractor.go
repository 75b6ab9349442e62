package symaudit

// Extractor finds the names of dynamically loaded functions in binding source.
type Extractor interface {
	// Extract returns every symbol name found in source, in the order found.
	// Duplicates are kept. A source without matches yields an empty slice.
	Extract(source string) []string
}

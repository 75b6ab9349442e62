// Package regexp provides pattern-based implementations of symaudit.Extractor
// for the dynamic loading idioms used in the GTK binding sources.
package regexp

import (
	"regexp"
	"strings"

	"github.com/fwojciec/symaudit"
)

// Patterns for the two load idioms.
const (
	// LoadCallPattern matches GTK_LOAD_FUNCTION(handle, name) and
	// GDK_LOAD_FUNCTION(handle, name). The symbol is the third group.
	LoadCallPattern = `(GTK_LOAD_FUNCTION|GDK_LOAD_FUNCTION)\((\w+),\s*(\w+)\)`

	// LibMacroPattern matches "name_LIB ... LIB_xxx" on a single line, as in
	// "#define gtk_widget_show_LIB LIB_GTK".
	LibMacroPattern = `\w+_LIB\b[^\n]*?\bLIB_\w+`
)

// LibMarker separates the symbol name from the rest of a LIB macro.
const LibMarker = "_LIB"

// Ensure Extractor implements symaudit.Extractor at compile time.
var _ symaudit.Extractor = (*Extractor)(nil)

// TakeFunc returns the symbol for one match. submatches holds the full match
// followed by the captured groups. Returning "" skips the match.
type TakeFunc func(submatches []string) string

// Extractor finds symbols by matching a regular expression over the source.
type Extractor struct {
	re   *regexp.Regexp
	take TakeFunc
}

// New returns an Extractor for pattern. It panics if pattern does not compile,
// like regexp.MustCompile.
func New(pattern string, take TakeFunc) *Extractor {
	return &Extractor{
		re:   regexp.MustCompile(pattern),
		take: take,
	}
}

// NewLoadCallExtractor returns an Extractor for the GTK_LOAD_FUNCTION and
// GDK_LOAD_FUNCTION call idiom.
func NewLoadCallExtractor() *Extractor {
	return New(LoadCallPattern, TakeGroup(3))
}

// NewLibMacroExtractor returns an Extractor for the name_LIB macro idiom.
func NewLibMacroExtractor() *Extractor {
	return New(LibMacroPattern, TakeBeforeLib)
}

// Extract returns the symbols of every match in source order.
func (e *Extractor) Extract(source string) []string {
	matches := e.re.FindAllStringSubmatch(source, -1)
	symbols := make([]string, 0, len(matches))
	for _, m := range matches {
		if sym := e.take(m); sym != "" {
			symbols = append(symbols, sym)
		}
	}
	return symbols
}

// TakeGroup returns a TakeFunc selecting captured group n (1-based).
func TakeGroup(n int) TakeFunc {
	return func(submatches []string) string {
		if n >= len(submatches) {
			return ""
		}
		return submatches[n]
	}
}

// TakeBeforeLib returns everything in the full match before the first LibMarker.
func TakeBeforeLib(submatches []string) string {
	if len(submatches) == 0 {
		return ""
	}
	name, _, found := strings.Cut(submatches[0], LibMarker)
	if !found {
		return ""
	}
	return name
}

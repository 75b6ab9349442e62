package symaudit

import (
	"context"
	"strings"
)

// DeprecatedMarker prefixes report lines for symbols found in the deprecated
// catalog. Lines starting with it read as commented out.
const DeprecatedMarker = "#"

// Report is a rendered audit result made of one or more sections.
type Report struct {
	Sections []Section
}

// Section is one list of report lines.
type Section struct {
	// Title is printed above the lines on the console. Empty means no header.
	Title string

	// File is the file name used when the report is written to disk.
	File string

	Lines []string
}

// ReportWriter persists a report.
type ReportWriter interface {
	WriteReport(ctx context.Context, r *Report) error
}

// AnnotateLines returns one line per symbol, prefixing symbols that flagged
// contains with DeprecatedMarker. A nil flagged index adds no prefixes.
func AnnotateLines(symbols []string, flagged CatalogIndex) []string {
	lines := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		if flagged != nil && flagged.Contains(sym) {
			lines = append(lines, DeprecatedMarker+sym)
			continue
		}
		lines = append(lines, sym)
	}
	return lines
}

// FormatSection renders the lines of a section, each newline-terminated.
func FormatSection(s Section) string {
	var b strings.Builder
	for _, line := range s.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatReport renders a report for the console. With headers, every section
// with a title is preceded by it, and sections are separated by one blank line.
func FormatReport(r *Report, headers bool) string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	for i, s := range r.Sections {
		if headers && i > 0 {
			b.WriteByte('\n')
		}
		if headers && s.Title != "" {
			b.WriteString(s.Title)
			b.WriteByte('\n')
		}
		b.WriteString(FormatSection(s))
	}
	return b.String()
}

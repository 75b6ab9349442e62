package audit

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/symaudit"
)

// Digest returns a hash of the rendered report. Identical inputs produce
// identical output, so equal digests confirm a reproducible run.
func Digest(r *symaudit.Report) string {
	h := xxhash.New()
	if r != nil {
		for _, s := range r.Sections {
			_, _ = h.WriteString(s.File)
			_, _ = h.WriteString("\x00")
			_, _ = h.WriteString(symaudit.FormatSection(s))
		}
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

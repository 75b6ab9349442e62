package mock

import "github.com/fwojciec/symaudit"

var _ symaudit.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of symaudit.Extractor.
type Extractor struct {
	ExtractFn func(source string) []string
}

func (e *Extractor) Extract(source string) []string {
	return e.ExtractFn(source)
}

package mock

import (
	"context"

	"github.com/fwojciec/symaudit"
)

var _ symaudit.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of symaudit.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, r *symaudit.Report) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, r *symaudit.Report) error {
	return w.WriteReportFn(ctx, r)
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/symaudit"
)

// Ensure LoggingReportWriter implements symaudit.ReportWriter.
var _ symaudit.ReportWriter = (*LoggingReportWriter)(nil)

// LoggingReportWriter wraps a ReportWriter with logging.
type LoggingReportWriter struct {
	next   symaudit.ReportWriter
	logger *slog.Logger
}

// NewLoggingReportWriter creates a new LoggingReportWriter.
func NewLoggingReportWriter(next symaudit.ReportWriter, logger *slog.Logger) *LoggingReportWriter {
	return &LoggingReportWriter{next: next, logger: logger}
}

// WriteReport delegates to the wrapped writer and logs one record per section.
func (w *LoggingReportWriter) WriteReport(ctx context.Context, r *symaudit.Report) (err error) {
	defer func(begin time.Time) {
		if r == nil {
			w.logger.Info("write report", "duration", time.Since(begin), "err", err)
			return
		}
		for _, s := range r.Sections {
			w.logger.Info("write report",
				"file", s.File,
				"lines", len(s.Lines),
				"duration", time.Since(begin),
				"err", err,
			)
		}
	}(time.Now())
	return w.next.WriteReport(ctx, r)
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/symaudit"
)

// Ensure LoggingLoader implements symaudit.CatalogLoader.
var _ symaudit.CatalogLoader = (*LoggingLoader)(nil)

// LoggingLoader wraps a CatalogLoader with logging.
type LoggingLoader struct {
	next   symaudit.CatalogLoader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next symaudit.CatalogLoader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) Load(ctx context.Context, catalogs []symaudit.Catalog) (indexes []symaudit.NamedIndex, err error) {
	defer func(begin time.Time) {
		names := make([]string, 0, len(catalogs))
		for _, c := range catalogs {
			names = append(names, c.Name)
		}
		l.logger.Info("load catalogs",
			"catalogs", names,
			"count", len(indexes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, catalogs)
}

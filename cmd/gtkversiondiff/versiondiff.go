package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/symaudit"
	"github.com/fwojciec/symaudit/audit"
	"github.com/fwojciec/symaudit/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Audit  *audit.VersionDiff
	Writer symaudit.ReportWriter
}

// VersionDiffCmd runs the GTK2/GTK3 version diff.
type VersionDiffCmd struct {
	Source   string
	Catalogs []symaudit.Catalog
	File     bool
}

// Run executes the diff and emits the report.
func (c *VersionDiffCmd) Run(deps *Dependencies) error {
	source, err := fs.ReadSource(c.Source)
	if err != nil {
		return err
	}

	result, err := deps.Audit.Run(deps.Ctx, source, c.Catalogs)
	if err != nil {
		return err
	}

	deps.Logger.Info("audit complete",
		"source", c.Source,
		"symbols", len(result.Table),
		"shared_gtk30", len(result.Shared.With30.Symbols),
		"shared_gtk3x", len(result.Shared.With3x.Symbols),
		"digest", audit.Digest(result.Report),
	)
	if deps.Audit.Exclusive && result.Shared.Overlap > 0 {
		deps.Logger.Warn("symbols shared with GTK3.0 are left out of the GTK3.x list",
			"count", result.Shared.Overlap,
			"hint", "run with --inclusive to list them in both",
		)
	}

	if c.File {
		return deps.Writer.WriteReport(deps.Ctx, result.Report)
	}

	fmt.Fprint(deps.Stdout, symaudit.FormatReport(result.Report, true))
	return nil
}

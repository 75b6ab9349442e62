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

// NoneFound is printed when no deprecated function is loaded dynamically.
const NoneFound = "No deprecated functions found"

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Audit  *audit.Deprecated
	Writer symaudit.ReportWriter
}

// DeprecatedCmd runs the deprecated-function audit.
type DeprecatedCmd struct {
	Source string
	URL    string
	File   bool
}

// Run executes the audit and emits the report.
func (c *DeprecatedCmd) Run(deps *Dependencies) error {
	source, err := fs.ReadSource(c.Source)
	if err != nil {
		return err
	}

	result, err := deps.Audit.Run(deps.Ctx, source, symaudit.DeprecatedCatalog(c.URL))
	if err != nil {
		return err
	}

	deps.Logger.Info("audit complete",
		"source", c.Source,
		"symbols", len(result.Symbols),
		"deprecated", len(result.Deprecated),
		"digest", audit.Digest(result.Report),
	)

	if len(result.Deprecated) == 0 {
		fmt.Fprintln(deps.Stdout, NoneFound)
		return nil
	}

	if c.File {
		return deps.Writer.WriteReport(deps.Ctx, result.Report)
	}

	fmt.Fprint(deps.Stdout, symaudit.FormatReport(result.Report, false))
	return nil
}

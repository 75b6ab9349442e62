// Package fs provides file-based input and output: reading the binding source
// and writing report files.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/symaudit"
)

// Ensure Writer implements symaudit.ReportWriter at compile time.
var _ symaudit.ReportWriter = (*Writer)(nil)

// Writer writes each report section to its own file in a directory.
// A file is written under a temporary name and renamed into place, so a
// failed run never leaves a truncated report behind.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteReport writes every section of r. Files contain one line per symbol
// with no header.
func (w *Writer) WriteReport(ctx context.Context, r *symaudit.Report) error {
	if r == nil {
		return symaudit.Errorf(symaudit.EINVALID, "report required")
	}
	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return symaudit.Errorf(symaudit.EIO, "create output directory: %v", err)
	}

	for _, s := range r.Sections {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.File == "" {
			return symaudit.Errorf(symaudit.EINVALID, "report section %q has no file name", s.Title)
		}
		if err := w.writeFile(s.File, symaudit.FormatSection(s)); err != nil {
			return err
		}
	}
	return nil
}

// Path returns where a report file is written.
func (w *Writer) Path(file string) string {
	return filepath.Join(w.baseDir, file)
}

func (w *Writer) writeFile(file, content string) error {
	final := w.Path(file)
	tmp := final + ".tmp"

	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return symaudit.Errorf(symaudit.EIO, "write %s: %v", final, err)
	}
	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return symaudit.Errorf(symaudit.EIO, "write %s: %v", final, err)
	}
	return nil
}

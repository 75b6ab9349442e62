package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/symaudit"
	main "github.com/fwojciec/symaudit/cmd/gtkdeprecated"
	"github.com/fwojciec/symaudit/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogURL = "https://docs.test/gtk3/api-index-deprecated.html"

func newMain(catalog string) *main.Main {
	m := main.NewMain()
	m.Fetcher = &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			if url != catalogURL {
				return "", symaudit.Errorf(symaudit.EFETCH, "HTTP 404 for %s", url)
			}
			return catalog, nil
		},
		CloseFn: func() error { return nil },
	}
	return m
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "os.c")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Story: Listing deprecated functions
//
// A maintainer runs the tool against the binding source. Every dynamically
// loaded function found in the deprecated index is printed, one per line, in
// the order it appears in the source.

func TestCLI_PrintsDeprecatedFunctions(t *testing.T) {
	t.Parallel()

	// Given: a source loading one deprecated and one current function
	source := writeSource(t, "GTK_LOAD_FUNCTION(fp, gtk_foo)\nGDK_LOAD_FUNCTION(fp, gdk_bar)\n")
	m := newMain(`<a>gtk_foo</a>`)
	var stdout, stderr bytes.Buffer

	// When: running the audit
	err := m.Run(context.Background(), []string{source, "--url", catalogURL}, &stdout, &stderr)

	// Then: only the deprecated function is listed
	require.NoError(t, err)
	assert.Equal(t, "gtk_foo\n", stdout.String())
}

func TestCLI_ReportsWhenNothingIsDeprecated(t *testing.T) {
	t.Parallel()

	// Given: a source without load calls
	source := writeSource(t, "int main(void) { return 0; }\n")
	m := newMain(`<a>gtk_foo</a>`)
	var stdout, stderr bytes.Buffer

	// When: running the audit
	err := m.Run(context.Background(), []string{source, "--url", catalogURL}, &stdout, &stderr)

	// Then: a notice is printed and the run succeeds
	require.NoError(t, err)
	assert.Equal(t, main.NoneFound+"\n", stdout.String())
}

// Story: Writing the report to a file
//
// With -f the deprecated list goes to dynamic_deprecated_functions.txt
// instead of the console.

func TestCLI_WritesReportFile(t *testing.T) {
	t.Parallel()

	// Given: a source loading a deprecated function twice
	source := writeSource(t, "GTK_LOAD_FUNCTION(fp, gtk_foo)\nGTK_LOAD_FUNCTION(fp, gtk_foo)\n")
	out := t.TempDir()
	m := newMain(`<a>gtk_foo</a>`)
	var stdout, stderr bytes.Buffer

	// When: running with file output
	err := m.Run(context.Background(), []string{source, "-f", "-o", out, "--url", catalogURL}, &stdout, &stderr)

	// Then: the file holds both occurrences and nothing is printed
	require.NoError(t, err)
	content, err := os.ReadFile(filepath.Join(out, "dynamic_deprecated_functions.txt"))
	require.NoError(t, err)
	assert.Equal(t, "gtk_foo\ngtk_foo\n", string(content))
	assert.Empty(t, stdout.String())
}

// Story: Failures
//
// A missing source file or an unreachable catalog stops the run with an error.

func TestCLI_FailsOnMissingSource(t *testing.T) {
	t.Parallel()

	m := newMain(`<a>gtk_foo</a>`)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{filepath.Join(t.TempDir(), "missing.c"), "--url", catalogURL}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, symaudit.ENOTFOUND, symaudit.ErrorCode(err))
}

func TestCLI_FailsOnUnreachableCatalog(t *testing.T) {
	t.Parallel()

	source := writeSource(t, "GTK_LOAD_FUNCTION(fp, gtk_foo)\n")
	m := newMain(`<a>gtk_foo</a>`)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{source, "--url", "https://docs.test/elsewhere"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, symaudit.EFETCH, symaudit.ErrorCode(err))
	assert.Empty(t, stdout.String())
}

// Story: Verbose logging
//
// With -v each fetch and the run summary are logged to stderr.

func TestCLI_VerboseLogsToStderr(t *testing.T) {
	t.Parallel()

	source := writeSource(t, "GTK_LOAD_FUNCTION(fp, gtk_foo)\n")
	m := newMain(`<a>gtk_foo</a>`)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{source, "-v", "--url", catalogURL}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "msg=fetch")
	assert.Contains(t, stderr.String(), "digest=")
	assert.Equal(t, "gtk_foo\n", stdout.String())
}

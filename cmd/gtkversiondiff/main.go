package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/symaudit"
	"github.com/fwojciec/symaudit/audit"
	"github.com/fwojciec/symaudit/fs"
	"github.com/fwojciec/symaudit/goquery"
	symhttp "github.com/fwojciec/symaudit/http"
	"github.com/fwojciec/symaudit/marker"
	"github.com/fwojciec/symaudit/regexp"
	symslog "github.com/fwojciec/symaudit/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		printError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher replaces the HTTP fetcher. Set before calling Run().
	Fetcher symaudit.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("gtkversiondiff"),
		kong.Description("List dynamically loaded GTK2 functions shared with GTK3.0 and GTK3.x"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"gtk2_url":       symaudit.DefaultGTK2StableURL,
			"gtk30_url":      symaudit.DefaultGTK30URL,
			"gtk3_url":       symaudit.DefaultGTK3StableURL,
			"deprecated_url": symaudit.DefaultGTK3DeprecatedURL,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = symhttp.NewFetcher(symhttp.WithTimeout(cli.Timeout))
	}
	defer fetcher.Close()

	loader := &audit.Loader{
		Fetcher: symslog.NewLoggingFetcher(fetcher, logger),
		Indexer: newIndexer(cli.Index),
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Audit: &audit.VersionDiff{
			Loader:    symslog.NewLoggingLoader(loader, logger),
			Extractor: regexp.NewLibMacroExtractor(),
			Exclusive: !cli.Inclusive,
		},
		Writer: symslog.NewLoggingReportWriter(fs.NewWriter(cli.OutputDir), logger),
	}

	cmd := &VersionDiffCmd{
		Source: cli.Source,
		Catalogs: symaudit.VersionCatalogs(
			cli.GTK2URL,
			cli.GTK30URL,
			cli.GTK3URL,
			cli.DeprecatedURL,
		),
		File: cli.File,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Source        string        `arg:"" optional:"" default:"os.h" help:"Binding header declaring the _LIB macros"`
	File          bool          `short:"f" help:"Write the two shared-function files instead of printing"`
	OutputDir     string        `short:"o" default:"." help:"Directory for report files"`
	GTK2URL       string        `name:"gtk2-url" default:"${gtk2_url}" help:"GTK2 stable API index URL"`
	GTK30URL      string        `name:"gtk30-url" default:"${gtk30_url}" help:"GTK3.0 API index URL"`
	GTK3URL       string        `name:"gtk3-url" default:"${gtk3_url}" help:"GTK3 stable API index URL"`
	DeprecatedURL string        `name:"deprecated-url" default:"${deprecated_url}" help:"GTK3 deprecated function index URL"`
	Inclusive     bool          `help:"Also list symbols shared with GTK3.0 in the GTK3.x set"`
	Index         string        `enum:"marker,structured" default:"marker" help:"Catalog membership test (marker, structured)"`
	Timeout       time.Duration `short:"t" default:"30s" help:"Fetch timeout"`
	Verbose       bool          `short:"v" help:"Log fetches and writes to stderr"`
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newIndexer(name string) symaudit.CatalogIndexer {
	if name == "structured" {
		return goquery.NewIndexer()
	}
	return marker.NewIndexer()
}

// printError reports application errors by message and anything else verbatim.
func printError(w io.Writer, err error) {
	if symaudit.ErrorCode(err) == symaudit.EINTERNAL {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprintf(w, "error: %s\n", symaudit.ErrorMessage(err))
}

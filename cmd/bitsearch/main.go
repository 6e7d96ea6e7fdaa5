package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/bitsearch"
	"github.com/fwojciec/bitsearch/goquery"
	bshttp "github.com/fwojciec/bitsearch/http"
	"github.com/fwojciec/bitsearch/rod"
	"github.com/fwojciec/bitsearch/search"
	bsslog "github.com/fwojciec/bitsearch/slog"
	"github.com/fwojciec/bitsearch/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used by the history store. Opened only by commands
	// that need it.
	DB *sqlite.DB

	// Services for end-to-end testing. Nil values are replaced with the
	// production implementations.
	Fetcher    bitsearch.Fetcher
	Downloader bitsearch.Downloader

	// RetryDelays overrides search.DefaultRetryDelays when non-nil.
	RetryDelays []time.Duration
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bitsearch"),
		kong.Description("Search bitsearch.to and print pipe-delimited torrent records"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'bitsearch --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Site = bitsearch.NewSite(cli.URL, bitsearch.DefaultName, bitsearch.DefaultCategories())

	if cmd == "search" || cmd == "detail" {
		fetcher, err := m.fetcher(cli, deps.Logger)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed to use --browser")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()
		deps.Fetcher = fetcher
		deps.Details = goquery.NewDetailParser()
	}

	if cmd == "download" {
		downloader := m.Downloader
		if downloader == nil {
			downloader = bshttp.NewDownloader(cli.Dir, bshttp.WithTimeout(cli.Timeout))
		}
		deps.Downloader = bsslog.NewLoggingDownloader(downloader, deps.Logger)
	}

	if cmd == "history" || (cmd == "search" && cli.Search.Save) {
		path := cli.DB
		if path == "" {
			path = defaultDBPath()
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set BITSEARCH_DB to use a different database path")
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		defer m.Close()
		deps.Store = sqlite.NewResultStore(m.DB)
	}

	return kongCtx.Run(deps)
}

// fetcher builds the page fetcher: plain HTTP or headless Chrome, with
// retries and debug logging of every attempt.
func (m *Main) fetcher(cli *CLI, logger *slog.Logger) (bitsearch.Fetcher, error) {
	var f bitsearch.Fetcher
	switch {
	case m.Fetcher != nil:
		f = m.Fetcher
	case cli.Browser:
		rf, err := rod.NewFetcher(
			rod.WithFetchTimeout(cli.Timeout),
			rod.WithUserAgent(bshttp.DefaultUserAgent),
		)
		if err != nil {
			return nil, err
		}
		f = rf
	default:
		f = bshttp.NewFetcher(bshttp.WithTimeout(cli.Timeout))
	}

	delays := search.DefaultRetryDelays()
	if m.RetryDelays != nil {
		delays = m.RetryDelays
	}

	return search.NewRetryFetcher(
		bsslog.NewLoggingFetcher(f, logger),
		search.WithRetryDelays(delays),
		search.WithRetryLogger(logger),
	), nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "bitsearch.db"
	}
	dir := filepath.Join(home, ".bitsearch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "history.db")
}

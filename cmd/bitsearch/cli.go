package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/bitsearch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Site       bitsearch.Site
	Fetcher    bitsearch.Fetcher
	Details    bitsearch.DetailParser
	Downloader bitsearch.Downloader
	Store      bitsearch.ResultStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL     string        `name:"url" env:"BITSEARCH_URL" default:"https://bitsearch.to" help:"Site root URL"`
	Timeout time.Duration `env:"BITSEARCH_TIMEOUT" default:"15s" help:"Per-request timeout"`
	DB      string        `name:"db" env:"BITSEARCH_DB" help:"History database path (default ~/.bitsearch/history.db)"`
	Dir     string        `name:"dir" type:"path" help:"Directory for downloaded .torrent files (default system temp dir)"`
	Browser bool          `help:"Fetch pages with headless Chrome"`
	Verbose bool          `short:"v" help:"Log fetch and extraction details to stderr"`

	Search   SearchCmd   `cmd:"" help:"Search torrents and print one record per line"`
	Info     InfoCmd     `cmd:"" help:"Show site URL, name and supported categories"`
	Detail   DetailCmd   `cmd:"" help:"Show title, magnet and files of a torrent detail page"`
	Download DownloadCmd `cmd:"" help:"Download a .torrent file and print its local path"`
	History  HistoryCmd  `cmd:"" help:"List saved search results"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query       []string `arg:"" help:"Search terms"`
	Category    string   `short:"c" default:"all" help:"Category key (all, anime, books, games, movies, music, software, tv)"`
	Save        bool     `short:"s" help:"Save emitted results to the history database"`
	Concurrency int      `default:"1" help:"Pages fetched in parallel"`
	Rate        float64  `default:"0" help:"Maximum requests per second, 0 for unlimited"`
	Dedupe      bool     `help:"Drop results whose magnet was already emitted"`
	Output      string   `short:"o" type:"path" help:"Also write records to this file, replaced only when the search finishes"`
}

// InfoCmd is the "info" subcommand.
type InfoCmd struct{}

// DetailCmd is the "detail" subcommand.
type DetailCmd struct {
	URL string `arg:"" help:"Detail page URL (desc_link field)"`
}

// DownloadCmd is the "download" subcommand.
type DownloadCmd struct {
	ID string `arg:"" help:"Magnet URI or .torrent URL"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Query  string `arg:"" optional:"" help:"Only show results saved for this query"`
	Limit  int    `short:"n" default:"20" help:"Maximum results to show"`
	Offset int    `help:"Results to skip"`
	Clear  bool   `help:"Delete saved results instead of listing them"`
}

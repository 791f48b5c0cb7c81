package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/headlines"
	"github.com/fwojciec/headlines/annotate"
	"github.com/fwojciec/headlines/goquery"
	headlineshttp "github.com/fwojciec/headlines/http"
	"github.com/fwojciec/headlines/scrape"
	hslog "github.com/fwojciec/headlines/slog"
	"github.com/fwojciec/headlines/sqlite"
	"golang.org/x/time/rate"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when neither --db nor HEADLINES_DB is set.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ArticleService headlines.ArticleService
	NoteService    headlines.NoteService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
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
		kong.Name("headlines"),
		kong.Description("Scrape headlines and keep notes on them."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'headlines --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	dbPath := cli.DB
	if dbPath == "" {
		dbPath = m.DBPath
	}

	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set HEADLINES_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	m.ArticleService = sqlite.NewArticleService(m.DB)
	m.NoteService = sqlite.NewNoteService(m.DB)
	deps.Articles = m.ArticleService
	deps.Notes = m.NoteService
	deps.Annotator = hslog.NewLoggingAnnotator(annotate.NewAnnotator(m.NoteService, m.ArticleService), deps.Logger)

	switch strings.Fields(kongCtx.Command())[0] {
	case "serve":
		scraper, err := newScraper(cli.Serve.Source, m.ArticleService, scrape.NewLimiter(cli.Serve.ScrapeInterval), deps.Logger)
		if err != nil {
			return err
		}
		defer scraper.Close()
		deps.Scraper = scraper
	case "scrape":
		scraper, err := newScraper(cli.Scrape.Source, m.ArticleService, nil, deps.Logger)
		if err != nil {
			return err
		}
		defer scraper.Close()
		deps.Scraper = scraper
	}

	return kongCtx.Run(deps)
}

// closingScraper is a logged scraper that owns its fetcher.
type closingScraper struct {
	headlines.Scraper
	fetcher headlines.Fetcher
}

func (s *closingScraper) Close() error {
	return s.fetcher.Close()
}

// newScraper wires the fetch, extract and store pipeline for a source.
func newScraper(src SourceFlags, articles headlines.ArticleService, limiter *rate.Limiter, logger *slog.Logger) (*closingScraper, error) {
	rule := src.Rule()
	if err := rule.Validate(); err != nil {
		return nil, fmt.Errorf("invalid selector rule: %s", headlines.ErrorMessage(err))
	}

	fetcher := hslog.NewLoggingFetcher(
		headlineshttp.NewFetcher(
			headlineshttp.WithTimeout(src.Timeout),
			headlineshttp.WithUserAgent(src.UserAgent),
		),
		logger,
	)

	scraper := &scrape.Scraper{
		Fetcher:   fetcher,
		Extractor: goquery.NewExtractor(),
		Articles:  articles,
		SourceURL: src.URL,
		Rule:      rule,
		Limiter:   limiter,
	}

	return &closingScraper{
		Scraper: hslog.NewLoggingScraper(scraper, logger),
		fetcher: fetcher,
	}, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "headlines.db"
	}
	dir := filepath.Join(home, ".headlines")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "headlines.db")
}

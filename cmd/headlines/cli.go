package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/headlines"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Articles  headlines.ArticleService
	Notes     headlines.NoteService
	Annotator headlines.Annotator
	Scraper   headlines.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"HEADLINES_DB" help:"SQLite database path (default ~/.headlines/headlines.db)"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Serve  ServeCmd  `cmd:"" help:"Serve the articles API"`
	Scrape ScrapeCmd `cmd:"" help:"Scrape the source page once and store its headlines"`
	List   ListCmd   `cmd:"" help:"List stored articles"`
	Show   ShowCmd   `cmd:"" help:"Show an article and its note"`
	Note   NoteCmd   `cmd:"" help:"Attach a new note to an article"`
}

// SourceFlags configure the page scraped for headlines.
type SourceFlags struct {
	URL       string        `name:"source" env:"HEADLINES_SOURCE" default:"https://www.mlb.com/mets" help:"Page to scrape"`
	Item      string        `default:"li.p-headline-stack__headline" help:"CSS selector for each headline item"`
	Title     string        `default:"a" help:"CSS selector for the headline link inside an item"`
	LinkAttr  string        `default:"href" help:"Attribute of the title element holding the link"`
	Timeout   time.Duration `default:"10s" help:"Fetch timeout"`
	UserAgent string        `default:"headlines/1.0" help:"User-Agent sent to the source"`
}

// Rule returns the selector rule described by the flags.
func (f SourceFlags) Rule() headlines.SelectorRule {
	return headlines.SelectorRule{
		Item:     f.Item,
		Title:    f.Title,
		LinkAttr: f.LinkAttr,
	}
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Port           int           `env:"PORT" default:"3000" help:"HTTP listen port"`
	ScrapeInterval time.Duration `default:"0s" help:"Minimum time between scrapes triggered over HTTP (0 disables)"`
	Source         SourceFlags   `embed:""`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Source SourceFlags `embed:""`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Fingerprint string `help:"Only list copies of the article with this fingerprint"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Article ID"`
}

// NoteCmd is the "note" subcommand.
type NoteCmd struct {
	ID    string `arg:"" help:"Article ID"`
	Title string `arg:"" help:"Note title"`
	Body  string `arg:"" help:"Note body"`
}

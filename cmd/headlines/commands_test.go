package main_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/headlines"
	main "github.com/fwojciec/headlines/cmd/headlines"
	"github.com/fwojciec/headlines/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, stdout, stderr
}

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists articles with ID, title, link and note marker", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Articles = &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, _ headlines.ArticleFilter) ([]*headlines.Article, error) {
				return []*headlines.Article{
					{ID: "a1", Title: "Mets win", Link: "/news/mets-win", NoteID: "n1"},
					{ID: "a2", Title: "Trade rumors", Link: "/news/trade"},
				}, nil
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "* a1  Mets win  /news/mets-win")
		assert.Contains(t, output, "  a2  Trade rumors  /news/trade")
	})

	t.Run("passes fingerprint filter", func(t *testing.T) {
		t.Parallel()

		var got headlines.ArticleFilter
		deps, stdout, _ := newDeps()
		deps.Articles = &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, filter headlines.ArticleFilter) ([]*headlines.Article, error) {
				got = filter
				return []*headlines.Article{
					{ID: "a1", Title: "Mets win", Link: "/news/mets-win"},
					{ID: "a2", Title: "Mets win", Link: "/news/mets-win"},
				}, nil
			},
		}

		err := (&main.ListCmd{Fingerprint: "abc123"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, got.Fingerprint)
		assert.Equal(t, "abc123", *got.Fingerprint)
		assert.Contains(t, stdout.String(), "a2  Mets win")
	})

	t.Run("lists everything without a fingerprint", func(t *testing.T) {
		t.Parallel()

		var got headlines.ArticleFilter
		deps, _, _ := newDeps()
		deps.Articles = &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, filter headlines.ArticleFilter) ([]*headlines.Article, error) {
				got = filter
				return []*headlines.Article{}, nil
			},
		}

		require.NoError(t, (&main.ListCmd{}).Run(deps))
		assert.Nil(t, got.Fingerprint)
	})

	t.Run("shows helpful message when no articles exist", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Articles = &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, _ headlines.ArticleFilter) ([]*headlines.Article, error) {
				return []*headlines.Article{}, nil
			},
		}

		require.NoError(t, (&main.ListCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "No articles")
	})

	t.Run("returns error when FindArticles fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")
		deps, _, stderr := newDeps()
		deps.Articles = &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, _ headlines.ArticleFilter) ([]*headlines.Article, error) {
				return nil, dbErr
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error: database connection failed")
	})
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints article and note", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Articles = &mock.ArticleService{
			FindArticleByIDFn: func(_ context.Context, id string) (*headlines.Article, error) {
				return &headlines.Article{
					ID: id, Title: "X", Link: "http://x", NoteID: "n1",
					Note: &headlines.Note{ID: "n1", Title: "Hello", Body: "World"},
				}, nil
			},
		}

		require.NoError(t, (&main.ShowCmd{ID: "a1"}).Run(deps))
		assert.Equal(t, "X\nhttp://x\n\nHello\nWorld\n", stdout.String())
	})

	t.Run("mentions missing note", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Articles = &mock.ArticleService{
			FindArticleByIDFn: func(_ context.Context, id string) (*headlines.Article, error) {
				return &headlines.Article{ID: id, Title: "X", Link: "http://x"}, nil
			},
		}

		require.NoError(t, (&main.ShowCmd{ID: "a1"}).Run(deps))
		assert.Contains(t, stdout.String(), "No note")
	})

	t.Run("reports unknown article", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Articles = &mock.ArticleService{
			FindArticleByIDFn: func(_ context.Context, _ string) (*headlines.Article, error) {
				return nil, headlines.Errorf(headlines.ENOTFOUND, "article not found")
			},
		}

		err := (&main.ShowCmd{ID: "missing"}).Run(deps)

		assert.Equal(t, headlines.ENOTFOUND, headlines.ErrorCode(err))
		assert.Contains(t, stderr.String(), `article "missing" not found`)
	})
}

func TestNoteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("saves note and prints its ID", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Annotator = &mock.Annotator{
			SaveNoteFn: func(_ context.Context, articleID, title, body string) (*headlines.Article, error) {
				assert.Equal(t, "a1", articleID)
				assert.Equal(t, "Hello", title)
				assert.Equal(t, "World", body)
				return &headlines.Article{ID: articleID, Title: "X", NoteID: "n1"}, nil
			},
		}

		require.NoError(t, (&main.NoteCmd{ID: "a1", Title: "Hello", Body: "World"}).Run(deps))
		assert.Equal(t, "Saved note n1 on article \"X\"\n", stdout.String())
	})

	t.Run("returns error from annotator", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Annotator = &mock.Annotator{
			SaveNoteFn: func(_ context.Context, _, _, _ string) (*headlines.Article, error) {
				return nil, headlines.Errorf(headlines.ENOTFOUND, "article not found")
			},
		}

		err := (&main.NoteCmd{ID: "missing"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: article not found")
	})
}

func TestScrapeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints scrape counts", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Scraper = &mock.Scraper{
			ScrapeFn: func(_ context.Context) (*headlines.ScrapeResult, error) {
				return &headlines.ScrapeResult{Found: 5, Saved: 4, Skipped: 1}, nil
			},
		}

		require.NoError(t, (&main.ScrapeCmd{}).Run(deps))
		assert.Equal(t, "Scrape complete: found 5, saved 4, skipped 1\n", stdout.String())
	})

	t.Run("warns about partial saves on failure", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Scraper = &mock.Scraper{
			ScrapeFn: func(_ context.Context) (*headlines.ScrapeResult, error) {
				return &headlines.ScrapeResult{Found: 5, Saved: 2}, errors.New("disk I/O error")
			},
		}

		err := (&main.ScrapeCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "2 articles were saved")
		assert.Contains(t, stderr.String(), "error: disk I/O error")
	})

	t.Run("reports fetch failure", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Scraper = &mock.Scraper{
			ScrapeFn: func(_ context.Context) (*headlines.ScrapeResult, error) {
				return nil, headlines.Errorf(headlines.EFETCH, "HTTP 503 for https://example.com")
			},
		}

		err := (&main.ScrapeCmd{}).Run(deps)

		assert.Equal(t, headlines.EFETCH, headlines.ErrorCode(err))
		assert.Contains(t, stderr.String(), "HTTP 503")
	})
}

func TestServeCmd_Run(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := newDeps()
	ctx, cancel := context.WithCancel(context.Background())
	deps.Ctx = ctx

	done := make(chan error, 1)
	go func() { done <- (&main.ServeCmd{Port: 0}).Run(deps) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}
	assert.Contains(t, stdout.String(), "App running on port 0")
}

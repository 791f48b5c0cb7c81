package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/headlines"
	"github.com/fwojciec/headlines/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleService_CreateArticle(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateArticleFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *headlines.Article
		s := &mock.ArticleService{
			CreateArticleFn: func(_ context.Context, article *headlines.Article) error {
				calledWith = article
				article.ID = "a1"
				return nil
			},
		}

		article := &headlines.Article{Title: "X", Link: "http://x"}
		err := s.CreateArticle(context.Background(), article)

		require.NoError(t, err)
		assert.Same(t, article, calledWith)
		assert.Equal(t, "a1", article.ID)
	})
}

func TestAnnotator_SaveNote(t *testing.T) {
	t.Parallel()

	t.Run("delegates to SaveNoteFn", func(t *testing.T) {
		t.Parallel()

		a := &mock.Annotator{
			SaveNoteFn: func(_ context.Context, articleID, title, body string) (*headlines.Article, error) {
				return &headlines.Article{ID: articleID, Note: &headlines.Note{Title: title, Body: body}}, nil
			},
		}

		article, err := a.SaveNote(context.Background(), "a1", "T", "B")

		require.NoError(t, err)
		assert.Equal(t, "a1", article.ID)
		assert.Equal(t, "T", article.Note.Title)
		assert.Equal(t, "B", article.Note.Body)
	})
}

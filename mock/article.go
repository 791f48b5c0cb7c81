package mock

import (
	"context"

	"github.com/fwojciec/headlines"
)

var _ headlines.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of headlines.ArticleService.
type ArticleService struct {
	CreateArticleFn   func(ctx context.Context, article *headlines.Article) error
	FindArticleByIDFn func(ctx context.Context, id string) (*headlines.Article, error)
	FindArticlesFn    func(ctx context.Context, filter headlines.ArticleFilter) ([]*headlines.Article, error)
	AttachNoteFn      func(ctx context.Context, articleID, noteID string) (*headlines.Article, error)
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *headlines.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*headlines.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter headlines.ArticleFilter) ([]*headlines.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) AttachNote(ctx context.Context, articleID, noteID string) (*headlines.Article, error) {
	return s.AttachNoteFn(ctx, articleID, noteID)
}

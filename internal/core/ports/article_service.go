package ports

import (
	"context"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
)

// ArticleInput carries the editable fields of an article. An empty Slug
// means "derive from Title"; an empty Status means draft.
type ArticleInput struct {
	Title         string
	Slug          string
	Summary       string
	Content       string
	CoverImageURL string
	Status        string
}

type ArticleService interface {
	// ListAll returns every article, drafts included (admin view).
	ListAll(ctx context.Context) ([]domain.Article, error)
	// ListPublished returns published articles sorted by publishedAt
	// descending (public view).
	ListPublished(ctx context.Context) ([]domain.Article, error)
	// GetPublishedBySlug returns the published article with the slug, or
	// domain.ErrArticleNotFound. Drafts are invisible publicly.
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.Article, error)
	Create(ctx context.Context, input ArticleInput) (*domain.Article, error)
	Update(ctx context.Context, id string, input ArticleInput) (*domain.Article, error)
	Delete(ctx context.Context, id string) error
}

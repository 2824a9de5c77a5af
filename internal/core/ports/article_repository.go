package ports

import (
	"context"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
)

// ArticleRepository defines persistence operations for articles.
//
// Slug uniqueness is enforced by full-collection scan inside the write lock,
// never by the caller re-reading beforehand.
type ArticleRepository interface {
	List(ctx context.Context) ([]domain.Article, error)
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Article, error)
	// Create persists a new article. Returns domain.ErrSlugTaken when any
	// existing article already holds the slug.
	Create(ctx context.Context, article *domain.Article) error
	// Update applies fn to the stored article with the given id, inside the
	// collection's write lock. fn receives the current record and the full
	// collection (for cross-record checks such as slug conflicts) and
	// returns the replacement record. Returns domain.ErrArticleNotFound
	// when the id is unknown.
	Update(ctx context.Context, id string, fn func(current domain.Article, all []domain.Article) (domain.Article, error)) (*domain.Article, error)
	// Delete removes the article with the given id. Returns
	// domain.ErrArticleNotFound when the id is unknown.
	Delete(ctx context.Context, id string) error
}

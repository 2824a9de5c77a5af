package jsonfile

import (
	"context"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
)

const articlesCollection = "articles"

// ArticleRepository stores articles in the articles collection.
type ArticleRepository struct {
	store *Store
}

func NewArticleRepository(store *Store) *ArticleRepository {
	return &ArticleRepository{store: store}
}

func (r *ArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	articles := []domain.Article{}
	if _, err := r.store.Read(articlesCollection, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *ArticleRepository) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	articles, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range articles {
		if articles[i].ID == id {
			return &articles[i], nil
		}
	}
	return nil, domain.ErrArticleNotFound
}

func (r *ArticleRepository) FindBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	articles, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range articles {
		if articles[i].Slug == slug {
			return &articles[i], nil
		}
	}
	return nil, domain.ErrArticleNotFound
}

func (r *ArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	return r.store.Mutate(articlesCollection, func() error {
		articles := []domain.Article{}
		if _, err := r.store.Read(articlesCollection, &articles); err != nil {
			return err
		}
		for i := range articles {
			if articles[i].Slug == article.Slug {
				return domain.ErrSlugTaken
			}
		}
		articles = append(articles, *article)
		return r.store.Write(articlesCollection, articles)
	})
}

func (r *ArticleRepository) Update(ctx context.Context, id string, fn func(current domain.Article, all []domain.Article) (domain.Article, error)) (*domain.Article, error) {
	var updated domain.Article
	err := r.store.Mutate(articlesCollection, func() error {
		articles := []domain.Article{}
		if _, err := r.store.Read(articlesCollection, &articles); err != nil {
			return err
		}
		idx := -1
		for i := range articles {
			if articles[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.ErrArticleNotFound
		}
		next, err := fn(articles[idx], articles)
		if err != nil {
			return err
		}
		articles[idx] = next
		if err := r.store.Write(articlesCollection, articles); err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	return r.store.Mutate(articlesCollection, func() error {
		articles := []domain.Article{}
		if _, err := r.store.Read(articlesCollection, &articles); err != nil {
			return err
		}
		idx := -1
		for i := range articles {
			if articles[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.ErrArticleNotFound
		}
		articles = append(articles[:idx], articles[idx+1:]...)
		return r.store.Write(articlesCollection, articles)
	})
}

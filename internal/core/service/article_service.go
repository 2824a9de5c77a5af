package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
	"github.com/collectif-avenir/campaign-api/internal/core/ports"
)

// ArticleService implements article CRUD, slug normalization and the
// publish-status transition rule.
type ArticleService struct {
	articles ports.ArticleRepository
	logger   zerolog.Logger
}

func NewArticleService(articles ports.ArticleRepository, logger zerolog.Logger) *ArticleService {
	return &ArticleService{articles: articles, logger: logger}
}

func (s *ArticleService) ListAll(ctx context.Context) ([]domain.Article, error) {
	return s.articles.List(ctx)
}

func (s *ArticleService) ListPublished(ctx context.Context) ([]domain.Article, error) {
	all, err := s.articles.List(ctx)
	if err != nil {
		return nil, err
	}
	published := make([]domain.Article, 0, len(all))
	for i := range all {
		if all[i].Status == domain.StatusPublished {
			published = append(published, all[i])
		}
	}
	sort.SliceStable(published, func(i, j int) bool {
		a, b := published[i].PublishedAt, published[j].PublishedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return published, nil
}

func (s *ArticleService) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	article, err := s.articles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article.Status != domain.StatusPublished {
		return nil, domain.ErrArticleNotFound
	}
	return article, nil
}

func (s *ArticleService) Create(ctx context.Context, input ports.ArticleInput) (*domain.Article, error) {
	title := strings.TrimSpace(input.Title)
	summary := strings.TrimSpace(input.Summary)
	if title == "" || summary == "" {
		return nil, domain.ErrValidation
	}
	status := normalizeStatus(input.Status)

	slugSource := input.Slug
	if strings.TrimSpace(slugSource) == "" {
		slugSource = title
	}
	slug, err := NormalizeSlug(slugSource)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	article := &domain.Article{
		ID:            domain.NewID("art"),
		Title:         title,
		Slug:          slug,
		Summary:       summary,
		Content:       strings.TrimSpace(input.Content),
		CoverImageURL: strings.TrimSpace(input.CoverImageURL),
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
		PublishedAt:   publishedAtFor(nil, status, now),
	}

	if err := s.articles.Create(ctx, article); err != nil {
		return nil, err
	}

	s.logger.Info().Str("article_id", article.ID).Str("slug", article.Slug).Str("status", article.Status).Msg("article created")
	return article, nil
}

func (s *ArticleService) Update(ctx context.Context, id string, input ports.ArticleInput) (*domain.Article, error) {
	title := strings.TrimSpace(input.Title)
	summary := strings.TrimSpace(input.Summary)
	if title == "" || summary == "" {
		return nil, domain.ErrValidation
	}
	status := normalizeStatus(input.Status)

	slugSource := input.Slug
	if strings.TrimSpace(slugSource) == "" {
		slugSource = title
	}
	slug, err := NormalizeSlug(slugSource)
	if err != nil {
		return nil, err
	}

	updated, err := s.articles.Update(ctx, id, func(current domain.Article, all []domain.Article) (domain.Article, error) {
		if err := ValidateSlugUnique(slug, all, id); err != nil {
			return domain.Article{}, err
		}
		now := time.Now().UTC()
		next := current
		next.Title = title
		next.Slug = slug
		next.Summary = summary
		next.Content = strings.TrimSpace(input.Content)
		next.CoverImageURL = strings.TrimSpace(input.CoverImageURL)
		next.Status = status
		next.UpdatedAt = now
		next.PublishedAt = publishedAtFor(current.PublishedAt, status, now)
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("article_id", id).Str("slug", updated.Slug).Str("status", updated.Status).Msg("article updated")
	return updated, nil
}

func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if err := s.articles.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("article_id", id).Msg("article deleted")
	return nil
}

// normalizeStatus treats anything other than "published" as draft, matching
// the permissive input handling of the admin UI.
func normalizeStatus(status string) string {
	if status == domain.StatusPublished {
		return domain.StatusPublished
	}
	return domain.StatusDraft
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/collectif-avenir/campaign-api/internal/api/metrics"
	"github.com/collectif-avenir/campaign-api/internal/core/ports"
)

type ArticleHandler struct {
	articleService ports.ArticleService
}

func NewArticleHandler(articleService ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

type articleRequest struct {
	Title         string `json:"title" validate:"required"`
	Slug          string `json:"slug"`
	Summary       string `json:"summary" validate:"required"`
	Content       string `json:"content"`
	CoverImageURL string `json:"coverImageUrl"`
	Status        string `json:"status" validate:"omitempty,oneof=draft published"`
}

func (r articleRequest) input() ports.ArticleInput {
	return ports.ArticleInput{
		Title:         r.Title,
		Slug:          r.Slug,
		Summary:       r.Summary,
		Content:       r.Content,
		CoverImageURL: r.CoverImageURL,
		Status:        r.Status,
	}
}

// ListPublic returns published articles, newest publication first.
//
// @Summary      List published articles
// @Tags         public
// @Produce      json
// @Success      200  {array}  domain.Article
// @Router       /api/public/articles [get]
func (h *ArticleHandler) ListPublic(c echo.Context) error {
	articles, err := h.articleService.ListPublished(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// GetPublicBySlug returns a single published article; drafts are 404.
//
// @Summary      Get a published article by slug
// @Tags         public
// @Produce      json
// @Success      200  {object}  domain.Article
// @Failure      404  {object}  map[string]string
// @Router       /api/public/articles/{slug} [get]
func (h *ArticleHandler) GetPublicBySlug(c echo.Context) error {
	article, err := h.articleService.GetPublishedBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// ListAdmin returns every article, drafts included.
func (h *ArticleHandler) ListAdmin(c echo.Context) error {
	articles, err := h.articleService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// Create adds an article. Status defaults to draft; the slug derives from
// the title unless given explicitly.
func (h *ArticleHandler) Create(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.articleService.Create(c.Request().Context(), req.input())
	if err != nil {
		return err
	}
	metrics.ArticlesWrittenTotal.WithLabelValues("create", article.Status).Inc()
	return c.JSON(http.StatusOK, article)
}

// Update replaces the editable fields of an article.
func (h *ArticleHandler) Update(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.articleService.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return err
	}
	metrics.ArticlesWrittenTotal.WithLabelValues("update", article.Status).Inc()
	return c.JSON(http.StatusOK, article)
}

// Delete removes an article.
func (h *ArticleHandler) Delete(c echo.Context) error {
	if err := h.articleService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

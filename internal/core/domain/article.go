package domain

import "time"

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Article is a CMS entry. Slug is unique across the collection and URL-safe.
// PublishedAt is set the first time the article transitions to published,
// preserved across edits while it stays published, and cleared when it
// reverts to draft.
type Article struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Summary       string     `json:"summary"`
	Content       string     `json:"content"`
	CoverImageURL string     `json:"coverImageUrl"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	PublishedAt   *time.Time `json:"publishedAt"`
}

package service

import (
	"regexp"
	"time"

	gslug "github.com/gosimple/slug"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
)

// The authorization policy is a set of pure decision functions over
// already-loaded collections; callers run them inside the same critical
// section that performs the write.

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// RequireRole fails with domain.ErrForbidden unless the principal holds the
// given role.
func RequireRole(p domain.Principal, role string) error {
	if p.Role != role {
		return domain.ErrForbidden
	}
	return nil
}

// CanDeleteUser decides whether principal may delete target, given the full
// user collection: no self-deletion, and the last remaining admin is
// untouchable.
func CanDeleteUser(p domain.Principal, target domain.User, all []domain.User) error {
	if target.ID == p.ID {
		return domain.ErrSelfDeletion
	}
	if target.Role == domain.RoleAdmin {
		others := 0
		for i := range all {
			if all[i].Role == domain.RoleAdmin && all[i].ID != target.ID {
				others++
			}
		}
		if others == 0 {
			return domain.ErrLastAdmin
		}
	}
	return nil
}

// NormalizeSlug turns free text into a URL-safe slug: accents folded to
// ASCII, lowercased, non-alphanumeric runs collapsed to single hyphens.
// A candidate that normalizes to nothing (empty or purely symbolic input)
// is rejected with domain.ErrInvalidSlug rather than accepted empty.
func NormalizeSlug(candidate string) (string, error) {
	normalized := gslug.Make(candidate)
	if normalized == "" || !slugPattern.MatchString(normalized) {
		return "", domain.ErrInvalidSlug
	}
	return normalized, nil
}

// ValidateSlugUnique denies with domain.ErrSlugTaken when any article other
// than excludingID already holds the slug.
func ValidateSlugUnique(slug string, all []domain.Article, excludingID string) error {
	for i := range all {
		if all[i].Slug == slug && all[i].ID != excludingID {
			return domain.ErrSlugTaken
		}
	}
	return nil
}

// publishedAtFor applies the publish transition rule: moving to published
// sets publishedAt only when previously null; any other status clears it.
func publishedAtFor(previous *time.Time, status string, now time.Time) *time.Time {
	if status != domain.StatusPublished {
		return nil
	}
	if previous != nil {
		return previous
	}
	return &now
}

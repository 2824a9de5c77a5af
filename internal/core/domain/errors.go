package domain

import "errors"

var (
	// Authentication.
	ErrNoUsersConfigured  = errors.New("no users configured")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidSession     = errors.New("invalid session")

	// Authorization.
	ErrForbidden    = errors.New("access forbidden")
	ErrSelfDeletion = errors.New("cannot delete own account")
	ErrLastAdmin    = errors.New("cannot delete the last admin")

	// Validation and conflicts.
	ErrValidation    = errors.New("validation failed")
	ErrWeakPassword  = errors.New("password must be at least 8 characters")
	ErrInvalidSlug   = errors.New("invalid slug")
	ErrUsernameTaken = errors.New("username already exists")
	ErrSlugTaken     = errors.New("slug already in use")

	// Lookups.
	ErrUserNotFound    = errors.New("user not found")
	ErrArticleNotFound = errors.New("article not found")

	// Uploads.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrPayloadTooLarge      = errors.New("payload too large")
)

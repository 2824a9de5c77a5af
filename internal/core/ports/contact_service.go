package ports

import (
	"context"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
)

type ContactService interface {
	// Submit records a public contact-form message. Returns
	// domain.ErrValidation when name, email or message is blank.
	Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error)
}

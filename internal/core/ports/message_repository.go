package ports

import (
	"context"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
)

// MessageRepository persists contact-form submissions. The collection is
// append-only; nothing in the API mutates or deletes messages.
type MessageRepository interface {
	Append(ctx context.Context, message *domain.ContactMessage) error
}

package jsonfile

import (
	"context"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
)

const messagesCollection = "messages"

// MessageRepository appends contact messages to the messages collection.
type MessageRepository struct {
	store *Store
}

func NewMessageRepository(store *Store) *MessageRepository {
	return &MessageRepository{store: store}
}

func (r *MessageRepository) Append(ctx context.Context, message *domain.ContactMessage) error {
	return r.store.Mutate(messagesCollection, func() error {
		messages := []domain.ContactMessage{}
		if _, err := r.store.Read(messagesCollection, &messages); err != nil {
			return err
		}
		messages = append(messages, *message)
		return r.store.Write(messagesCollection, messages)
	})
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
	"github.com/collectif-avenir/campaign-api/internal/core/ports"
)

// ContactService records public contact-form submissions.
type ContactService struct {
	messages ports.MessageRepository
	logger   zerolog.Logger
}

func NewContactService(messages ports.MessageRepository, logger zerolog.Logger) *ContactService {
	return &ContactService{messages: messages, logger: logger}
}

func (s *ContactService) Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if name == "" || email == "" || message == "" {
		return nil, domain.ErrValidation
	}

	record := &domain.ContactMessage{
		ID:        domain.NewID("msg"),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.messages.Append(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info().Str("message_id", record.ID).Msg("contact message received")
	return record, nil
}

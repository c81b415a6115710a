package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"legalclub/internal/domain"
)

type contactService struct {
	repo           domain.ContactMessageRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewContactService creates a ContactService. The email notification is
// best-effort: a mail failure is logged and the stored message is returned.
func NewContactService(
	repo domain.ContactMessageRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.ContactService {
	return &contactService{
		repo:           repo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *contactService) SubmitMessage(ctx context.Context, name, email, message string) (*domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	msg := &domain.ContactMessage{
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("store contact message: %w", err)
	}

	data := &domain.ContactNotificationEmailData{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.emailService.SendContactNotification(ctx, data); err != nil {
		s.logger.Error("contact notification failed", "err", err, "message_id", msg.ID)
	}
	return msg, nil
}

func (s *contactService) ListMessages(ctx context.Context, params domain.PaginationParams) ([]*domain.ContactMessage, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	msgs, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list contact messages: %w", err)
	}
	return msgs, total, nil
}

package services

import (
	"context"
	"fmt"

	"legalclub/internal/domain"
)

type emailService struct {
	mailer       domain.Mailer
	renderer     domain.EmailTemplateRenderer
	contactInbox string
}

// NewEmailService returns an EmailService that renders embedded templates
// and sends through the given Mailer. contactInbox is the club address that
// receives contact-form notifications.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, contactInbox string) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, contactInbox: contactInbox}
}

func (s *emailService) SendContactNotification(ctx context.Context, data *domain.ContactNotificationEmailData) error {
	if data == nil {
		return fmt.Errorf("contact notification data is nil")
	}
	if s.contactInbox == "" {
		return fmt.Errorf("contact inbox is not configured")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("contact", data)
	if err != nil {
		return fmt.Errorf("failed to render contact template: %w", err)
	}
	if err := s.mailer.Send(s.contactInbox, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}
	return nil
}

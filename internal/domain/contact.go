package domain

import (
	"context"
	"time"
)

// ContactMessage is a message submitted through the public contact form.
// swagger:model ContactMessage
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactMessageRepository defines storage for contact messages.
type ContactMessageRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
	List(ctx context.Context, params PaginationParams) ([]*ContactMessage, int, error)
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ContactNotificationEmailData holds data for the contact-form notification
// sent to the club inbox.
type ContactNotificationEmailData struct {
	Name    string
	Email   string
	Message string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendContactNotification(ctx context.Context, data *ContactNotificationEmailData) error
}

// ContactService stores a contact message and notifies the club inbox.
// The notification is best-effort: a mail failure is logged, not surfaced.
type ContactService interface {
	SubmitMessage(ctx context.Context, name, email, message string) (*ContactMessage, error)
	ListMessages(ctx context.Context, params PaginationParams) ([]*ContactMessage, int, error)
}

package postgres

import (
	"context"
	"database/sql"

	"legalclub/internal/domain"
)

type contactMessageRepository struct {
	DB *sql.DB
}

func NewContactMessageRepository(db *sql.DB) domain.ContactMessageRepository {
	return &contactMessageRepository{DB: db}
}

func (r *contactMessageRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, message, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, msg.Name, msg.Email, msg.Message, msg.CreatedAt).
		Scan(&msg.ID)
}

func (r *contactMessageRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.ContactMessage, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, name, email, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	msgs := make([]*domain.ContactMessage, 0)
	for rows.Next() {
		m := &domain.ContactMessage{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, 0, err
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return msgs, total, nil
}

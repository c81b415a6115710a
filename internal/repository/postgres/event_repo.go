package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"legalclub/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `id, title_uz, title_en, description_uz, description_en,
		location_uz, location_en, date, time, status,
		registration_deadline, cover_image, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	var deadlineNull sql.NullTime
	var coverNull sql.NullString
	err := row.Scan(
		&e.ID, &e.TitleUz, &e.TitleEn, &e.DescriptionUz, &e.DescriptionEn,
		&e.LocationUz, &e.LocationEn, &e.Date, &e.Time, &e.Status,
		&deadlineNull, &coverNull, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if deadlineNull.Valid {
		t := deadlineNull.Time
		e.RegistrationDeadline = &t
	}
	if coverNull.Valid {
		s := coverNull.String
		e.CoverImage = &s
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO events (title_uz, title_en, description_uz, description_en,
			location_uz, location_en, date, time, status,
			registration_deadline, cover_image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query,
		e.TitleUz, e.TitleEn, e.DescriptionUz, e.DescriptionEn,
		e.LocationUz, e.LocationEn, e.Date, e.Time, e.Status,
		e.RegistrationDeadline, e.CoverImage, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		return err
	}
	if err := insertGallery(ctx, tx, e.ID, e.Gallery); err != nil {
		return err
	}
	return tx.Commit()
}

func insertGallery(ctx context.Context, tx *sql.Tx, eventID string, urls []string) error {
	query := `
		INSERT INTO event_images (event_id, url, position)
		VALUES ($1, $2, $3)
	`
	for i, url := range urls {
		if _, err := tx.ExecContext(ctx, query, eventID, url, i); err != nil {
			return fmt.Errorf("insert gallery image %d: %w", i, err)
		}
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	gallery, err := r.listGallery(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Gallery = gallery
	return e, nil
}

func (r *eventRepository) listGallery(ctx context.Context, eventID string) ([]string, error) {
	query := `
		SELECT url
		FROM event_images
		WHERE event_id = $1
		ORDER BY position
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	gallery := make([]string, 0)
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, err
		}
		gallery = append(gallery, url)
	}
	return gallery, rows.Err()
}

func (r *eventRepository) List(ctx context.Context, status *domain.EventStatus) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
	`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY date DESC, time DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE events
		SET title_uz = $1, title_en = $2, description_uz = $3, description_en = $4,
			location_uz = $5, location_en = $6, date = $7, time = $8, status = $9,
			registration_deadline = $10, cover_image = $11, updated_at = $12
		WHERE id = $13
	`
	result, err := tx.ExecContext(ctx, query,
		e.TitleUz, e.TitleEn, e.DescriptionUz, e.DescriptionEn,
		e.LocationUz, e.LocationEn, e.Date, e.Time, e.Status,
		e.RegistrationDeadline, e.CoverImage, e.UpdatedAt, e.ID,
	)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return domain.ErrNotFound
	}

	// Gallery is replaced wholesale on update.
	if _, err := tx.ExecContext(ctx, `DELETE FROM event_images WHERE event_id = $1`, e.ID); err != nil {
		return err
	}
	if err := insertGallery(ctx, tx, e.ID, e.Gallery); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	// Registrations and gallery images cascade via foreign keys.
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

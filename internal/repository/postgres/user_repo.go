package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"legalclub/internal/domain"
)

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (username, password_hash, salt, role, status, email, photo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		u.Username, u.PasswordHash, u.Salt, u.Role, u.Status, u.Email, u.PhotoURL, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	var emailNull, photoNull sql.NullString
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Salt, &u.Role, &u.Status,
		&emailNull, &photoNull, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if emailNull.Valid {
		s := emailNull.String
		u.Email = &s
	}
	if photoNull.Valid {
		s := photoNull.String
		u.PhotoURL = &s
	}
	return u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, password_hash, salt, role, status, email, photo_url, created_at, updated_at
		FROM users
		WHERE username = $1
	`
	u, err := scanUser(r.DB.QueryRowContext(ctx, query, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, username, password_hash, salt, role, status, email, photo_url, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	u, err := scanUser(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"legalclub/internal/domain"
)

// uniqueViolation is the Postgres error code for unique-constraint violations.
const uniqueViolation = "23505"

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.TeamRegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

const registrationColumns = `id, event_id, leader_id, team_name, members_count,
		rating_status, notes, decision_status, decision_note, decided_at, decided_by,
		created_at, updated_at`

func scanRegistration(row interface{ Scan(...any) error }, extra ...any) (*domain.TeamRegistration, error) {
	reg := &domain.TeamRegistration{}
	var noteNull sql.NullString
	var decidedAtNull sql.NullTime
	var decidedByNull sql.NullString
	dest := []any{
		&reg.ID, &reg.EventID, &reg.LeaderID, &reg.TeamName, &reg.MembersCount,
		&reg.RatingStatus, &reg.Notes, &reg.DecisionStatus, &noteNull, &decidedAtNull, &decidedByNull,
		&reg.CreatedAt, &reg.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if noteNull.Valid {
		s := noteNull.String
		reg.DecisionNote = &s
	}
	if decidedAtNull.Valid {
		t := decidedAtNull.Time
		reg.DecidedAt = &t
	}
	if decidedByNull.Valid {
		s := decidedByNull.String
		reg.DecidedBy = &s
	}
	return reg, nil
}

// Create inserts the registration. A unique-constraint violation on
// (event_id, team_name) is mapped to ErrDuplicateTeamName so a concurrent
// submission that slips past the service pre-check surfaces the same error.
func (r *registrationRepository) Create(ctx context.Context, reg *domain.TeamRegistration) error {
	query := `
		INSERT INTO team_registrations (event_id, leader_id, team_name, members_count,
			rating_status, notes, decision_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		reg.EventID, reg.LeaderID, reg.TeamName, reg.MembersCount,
		reg.RatingStatus, reg.Notes, reg.DecisionStatus, reg.CreatedAt, reg.UpdatedAt,
	).Scan(&reg.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateTeamName
		}
		return err
	}
	return nil
}

func (r *registrationRepository) GetByID(ctx context.Context, id string) (*domain.TeamRegistration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM team_registrations
		WHERE id = $1
	`
	reg, err := scanRegistration(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) GetByEventAndTeamName(ctx context.Context, eventID, teamName string) (*domain.TeamRegistration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM team_registrations
		WHERE event_id = $1 AND team_name = $2
	`
	reg, err := scanRegistration(r.DB.QueryRowContext(ctx, query, eventID, teamName))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

const registrationJoinColumns = `r.id, r.event_id, r.leader_id, r.team_name, r.members_count,
		r.rating_status, r.notes, r.decision_status, r.decision_note, r.decided_at, r.decided_by,
		r.created_at, r.updated_at, e.title_uz, e.title_en, u.username`

func (r *registrationRepository) GetWithEventByID(ctx context.Context, id string) (*domain.RegistrationWithEvent, error) {
	query := `
		SELECT ` + registrationJoinColumns + `
		FROM team_registrations r
		JOIN events e ON e.id = r.event_id
		JOIN users u ON u.id = r.leader_id
		WHERE r.id = $1
	`
	out := &domain.RegistrationWithEvent{}
	reg, err := scanRegistration(r.DB.QueryRowContext(ctx, query, id),
		&out.EventTitleUz, &out.EventTitleEn, &out.LeaderUsername)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	out.Registration = reg
	return out, nil
}

func (r *registrationRepository) List(ctx context.Context, filter domain.RegistrationFilter, params domain.PaginationParams) ([]*domain.RegistrationWithEvent, int, error) {
	where := ""
	args := []any{}
	n := 1
	appendCond := func(cond string, val any) {
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(cond, n)
		args = append(args, val)
		n++
	}
	if filter.EventID != nil {
		appendCond("r.event_id = $%d", *filter.EventID)
	}
	if filter.RatingStatus != nil {
		appendCond("r.rating_status = $%d", *filter.RatingStatus)
	}
	if filter.DecisionStatus != nil {
		appendCond("r.decision_status = $%d", *filter.DecisionStatus)
	}

	countQuery := `SELECT COUNT(*) FROM team_registrations r` + where
	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + registrationJoinColumns + `
		FROM team_registrations r
		JOIN events e ON e.id = r.event_id
		JOIN users u ON u.id = r.leader_id
	` + where + fmt.Sprintf(" ORDER BY r.created_at DESC LIMIT $%d OFFSET $%d", n, n+1)
	args = append(args, params.Limit(), params.Offset())

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	regs := make([]*domain.RegistrationWithEvent, 0)
	for rows.Next() {
		out := &domain.RegistrationWithEvent{}
		reg, err := scanRegistration(rows, &out.EventTitleUz, &out.EventTitleEn, &out.LeaderUsername)
		if err != nil {
			return nil, 0, err
		}
		out.Registration = reg
		regs = append(regs, out)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return regs, total, nil
}

// UpdateRating touches only the rating axis columns.
func (r *registrationRepository) UpdateRating(ctx context.Context, id string, rating domain.RatingStatus, notes string, updatedAt time.Time) error {
	query := `
		UPDATE team_registrations
		SET rating_status = $1, notes = $2, updated_at = $3
		WHERE id = $4
	`
	result, err := r.DB.ExecContext(ctx, query, rating, notes, updatedAt, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateDecision touches only the decision axis columns.
func (r *registrationRepository) UpdateDecision(ctx context.Context, id string, decision domain.DecisionStatus, note *string, decidedAt time.Time, decidedBy string) error {
	query := `
		UPDATE team_registrations
		SET decision_status = $1, decision_note = $2, decided_at = $3, decided_by = $4, updated_at = $3
		WHERE id = $5
	`
	result, err := r.DB.ExecContext(ctx, query, decision, note, decidedAt, decidedBy, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

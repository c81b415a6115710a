package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"legalclub/internal/domain"
)

func newRegistrationRepoMock(t *testing.T) (domain.TeamRegistrationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRegistrationRepository(db), mock
}

func TestRegistrationRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success returns generated id",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO team_registrations`).
					WithArgs("ev-1", "user-1", "Huquqchilar jamoasi", 5,
						domain.RatingYellow, "", domain.DecisionPending, now, now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("reg-uuid-1"))
			},
		},
		{
			name: "unique violation maps to duplicate team name",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO team_registrations`).
					WithArgs("ev-1", "user-1", "Huquqchilar jamoasi", 5,
						domain.RatingYellow, "", domain.DecisionPending, now, now).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "team_registrations_event_id_team_name_key"})
			},
			wantErr: domain.ErrDuplicateTeamName,
		},
		{
			name: "other db error passes through",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO team_registrations`).
					WithArgs("ev-1", "user-1", "Huquqchilar jamoasi", 5,
						domain.RatingYellow, "", domain.DecisionPending, now, now).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRegistrationRepoMock(t)
			tt.mock(mock)

			reg := domain.NewTeamRegistration("ev-1", "user-1", "Huquqchilar jamoasi", 5, now)
			err := repo.Create(ctx, reg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, "reg-uuid-1", reg.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func registrationRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "event_id", "leader_id", "team_name", "members_count",
		"rating_status", "notes", "decision_status", "decision_note", "decided_at", "decided_by",
		"created_at", "updated_at",
	}).AddRow(
		"reg-1", "ev-1", "user-1", "Advokatlar", 3,
		"YELLOW", "", "PENDING", nil, nil, nil,
		now, now,
	)
}

func TestRegistrationRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo, mock := newRegistrationRepoMock(t)
		mock.ExpectQuery(`SELECT (.+) FROM team_registrations`).
			WithArgs("reg-1").
			WillReturnRows(registrationRows(now))

		reg, err := repo.GetByID(ctx, "reg-1")
		require.NoError(t, err)
		require.Equal(t, "Advokatlar", reg.TeamName)
		require.Equal(t, domain.RatingYellow, reg.RatingStatus)
		require.Equal(t, domain.DecisionPending, reg.DecisionStatus)
		require.Nil(t, reg.DecidedAt)
		require.Nil(t, reg.DecidedBy)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		repo, mock := newRegistrationRepoMock(t)
		mock.ExpectQuery(`SELECT (.+) FROM team_registrations`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRegistrationRepository_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("filters by event and decision with pagination", func(t *testing.T) {
		repo, mock := newRegistrationRepoMock(t)
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM team_registrations r WHERE r\.event_id = \$1 AND r\.decision_status = \$2`).
			WithArgs("ev-1", domain.DecisionPending).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(`SELECT (.+) FROM team_registrations r\s+JOIN events e`).
			WithArgs("ev-1", domain.DecisionPending, 20, 0).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "event_id", "leader_id", "team_name", "members_count",
				"rating_status", "notes", "decision_status", "decision_note", "decided_at", "decided_by",
				"created_at", "updated_at", "title_uz", "title_en", "username",
			}).AddRow(
				"reg-1", "ev-1", "user-1", "Advokatlar", 3,
				"YELLOW", "", "PENDING", nil, nil, nil,
				now, now, "Sud jarayoni", "Moot court", "leader1",
			))

		eventID := "ev-1"
		decision := domain.DecisionPending
		list, total, err := repo.List(ctx,
			domain.RegistrationFilter{EventID: &eventID, DecisionStatus: &decision},
			domain.PaginationParams{Page: 1, PageSize: 20},
		)
		require.NoError(t, err)
		require.Equal(t, 1, total)
		require.Len(t, list, 1)
		require.Equal(t, "Moot court", list[0].EventTitleEn)
		require.Equal(t, "leader1", list[0].LeaderUsername)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count error stops early", func(t *testing.T) {
		repo, mock := newRegistrationRepoMock(t)
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM team_registrations r`).
			WillReturnError(sql.ErrConnDone)

		_, _, err := repo.List(ctx, domain.RegistrationFilter{}, domain.PaginationParams{Page: 1, PageSize: 20})
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRegistrationRepository_UpdateRating(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("updates rating columns", func(t *testing.T) {
		repo, mock := newRegistrationRepoMock(t)
		mock.ExpectExec(`UPDATE team_registrations\s+SET rating_status = \$1, notes = \$2, updated_at = \$3`).
			WithArgs(domain.RatingGreen, "strong application", now, "reg-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateRating(ctx, "reg-1", domain.RatingGreen, "strong application", now)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows maps to not found", func(t *testing.T) {
		repo, mock := newRegistrationRepoMock(t)
		mock.ExpectExec(`UPDATE team_registrations`).
			WithArgs(domain.RatingRed, "", now, "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateRating(ctx, "missing", domain.RatingRed, "", now)
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRegistrationRepository_UpdateDecision(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	note := "approved by board"

	t.Run("records decision with decider", func(t *testing.T) {
		repo, mock := newRegistrationRepoMock(t)
		mock.ExpectExec(`UPDATE team_registrations\s+SET decision_status = \$1, decision_note = \$2, decided_at = \$3, decided_by = \$4`).
			WithArgs(domain.DecisionAccepted, &note, now, "admin-1", "reg-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateDecision(ctx, "reg-1", domain.DecisionAccepted, &note, now, "admin-1")
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows maps to not found", func(t *testing.T) {
		repo, mock := newRegistrationRepoMock(t)
		mock.ExpectExec(`UPDATE team_registrations`).
			WithArgs(domain.DecisionDeclined, nil, now, "admin-1", "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateDecision(ctx, "missing", domain.DecisionDeclined, nil, now, "admin-1")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

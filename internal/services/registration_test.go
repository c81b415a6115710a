package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalclub/internal/domain"
	"legalclub/internal/lib/clubtime"
)

type mockEventRepository struct {
	events map[string]*domain.Event
	err    error
}

func (m *mockEventRepository) Create(ctx context.Context, event *domain.Event) error { return nil }

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	ev, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (m *mockEventRepository) List(ctx context.Context, status *domain.EventStatus) ([]*domain.Event, error) {
	return nil, nil
}

func (m *mockEventRepository) Update(ctx context.Context, event *domain.Event) error { return nil }

func (m *mockEventRepository) Delete(ctx context.Context, id string) error { return nil }

type mockRegistrationRepository struct {
	byEventAndName map[string]*domain.TeamRegistration
	byID           map[string]*domain.TeamRegistration
	createErr      error

	created      []*domain.TeamRegistration
	lastRating   *domain.RatingStatus
	lastNotes    string
	lastDecision *domain.DecisionStatus
	lastDecider  string
}

func regKey(eventID, teamName string) string { return eventID + ":" + teamName }

func (m *mockRegistrationRepository) Create(ctx context.Context, reg *domain.TeamRegistration) error {
	if m.createErr != nil {
		return m.createErr
	}
	reg.ID = "reg-1"
	m.created = append(m.created, reg)
	if m.byID == nil {
		m.byID = map[string]*domain.TeamRegistration{}
	}
	m.byID[reg.ID] = reg
	return nil
}

func (m *mockRegistrationRepository) GetByID(ctx context.Context, id string) (*domain.TeamRegistration, error) {
	reg, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return reg, nil
}

func (m *mockRegistrationRepository) GetByEventAndTeamName(ctx context.Context, eventID, teamName string) (*domain.TeamRegistration, error) {
	reg, ok := m.byEventAndName[regKey(eventID, teamName)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return reg, nil
}

func (m *mockRegistrationRepository) GetWithEventByID(ctx context.Context, id string) (*domain.RegistrationWithEvent, error) {
	reg, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.RegistrationWithEvent{
		Registration:   reg,
		EventTitleUz:   "Sud jarayoni simulyatsiyasi",
		EventTitleEn:   "Moot court",
		LeaderUsername: "leader",
	}, nil
}

func (m *mockRegistrationRepository) List(ctx context.Context, filter domain.RegistrationFilter, params domain.PaginationParams) ([]*domain.RegistrationWithEvent, int, error) {
	return []*domain.RegistrationWithEvent{}, 0, nil
}

func (m *mockRegistrationRepository) UpdateRating(ctx context.Context, id string, rating domain.RatingStatus, notes string, updatedAt time.Time) error {
	reg, ok := m.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	reg.RatingStatus = rating
	reg.Notes = notes
	reg.UpdatedAt = updatedAt
	m.lastRating = &rating
	m.lastNotes = notes
	return nil
}

func (m *mockRegistrationRepository) UpdateDecision(ctx context.Context, id string, decision domain.DecisionStatus, note *string, decidedAt time.Time, decidedBy string) error {
	reg, ok := m.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	reg.DecisionStatus = decision
	reg.DecisionNote = note
	reg.DecidedAt = &decidedAt
	reg.DecidedBy = &decidedBy
	m.lastDecision = &decision
	m.lastDecider = decidedBy
	return nil
}

func fixedClock(t time.Time) domain.Clock {
	return domain.ClockFunc(func() time.Time { return t })
}

func upcomingEvent(id string, now time.Time) *domain.Event {
	start := now.Add(48 * time.Hour).In(clubtime.Location)
	return &domain.Event{
		ID:      id,
		TitleUz: "Tadbir",
		TitleEn: "Event",
		Date:    start.Format(clubtime.DateLayout),
		Time:    start.Format(clubtime.TimeLayout),
		Status:  domain.EventStatusUpcoming,
	}
}

func TestRegistrationService_Register(t *testing.T) {
	now := time.Date(2026, 2, 15, 10, 0, 0, 0, clubtime.Location)

	deadlinePassed := now.Add(-time.Hour)
	deadlineOpen := now.Add(time.Hour)

	staleUpcoming := upcomingEvent("e-stale", now)
	// Stored status says UPCOMING but the start instant has elapsed; the
	// gate must re-derive the status and reject.
	staleUpcoming.Date = now.Add(-24 * time.Hour).Format(clubtime.DateLayout)
	staleUpcoming.Time = "09:00"

	withDeadline := func(d time.Time) *domain.Event {
		e := upcomingEvent("e1", now)
		e.RegistrationDeadline = &d
		return e
	}

	tests := []struct {
		name         string
		event        *domain.Event
		existing     map[string]*domain.TeamRegistration
		eventID      string
		teamName     string
		membersCount int
		wantErr      error
	}{
		{
			name:         "success",
			event:        upcomingEvent("e1", now),
			eventID:      "e1",
			teamName:     "Team A",
			membersCount: 3,
		},
		{
			name:         "event not found",
			event:        upcomingEvent("e1", now),
			eventID:      "missing",
			teamName:     "Team A",
			membersCount: 3,
			wantErr:      domain.ErrNotFound,
		},
		{
			name:         "stored status stale, live status past",
			event:        staleUpcoming,
			eventID:      "e-stale",
			teamName:     "Team A",
			membersCount: 3,
			wantErr:      domain.ErrEventClosed,
		},
		{
			name:         "deadline passed",
			event:        withDeadline(deadlinePassed),
			eventID:      "e1",
			teamName:     "Team A",
			membersCount: 3,
			wantErr:      domain.ErrDeadlinePassed,
		},
		{
			name:         "deadline still open",
			event:        withDeadline(deadlineOpen),
			eventID:      "e1",
			teamName:     "Team A",
			membersCount: 3,
		},
		{
			name:    "duplicate team name",
			event:   upcomingEvent("e1", now),
			eventID: "e1",
			existing: map[string]*domain.TeamRegistration{
				regKey("e1", "Huquqchilar jamoasi"): {ID: "r0"},
			},
			teamName:     "Huquqchilar jamoasi",
			membersCount: 3,
			wantErr:      domain.ErrDuplicateTeamName,
		},
		{
			name:         "members count below range",
			event:        upcomingEvent("e1", now),
			eventID:      "e1",
			teamName:     "Team A",
			membersCount: 0,
			wantErr:      domain.ErrInvalidInput,
		},
		{
			name:         "members count above range",
			event:        upcomingEvent("e1", now),
			eventID:      "e1",
			teamName:     "Team A",
			membersCount: 21,
			wantErr:      domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eventRepo := &mockEventRepository{events: map[string]*domain.Event{tt.event.ID: tt.event}}
			regRepo := &mockRegistrationRepository{byEventAndName: tt.existing}
			svc := NewRegistrationService(regRepo, eventRepo, fixedClock(now), time.Second)

			out, err := svc.Register(context.Background(), tt.eventID, tt.teamName, tt.membersCount, "user-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, regRepo.created)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, out)
			assert.Equal(t, domain.RatingYellow, out.Registration.RatingStatus)
			assert.Equal(t, domain.DecisionPending, out.Registration.DecisionStatus)
			assert.Equal(t, "user-1", out.Registration.LeaderID)
			assert.NotEmpty(t, out.EventTitleUz)
			assert.NotEmpty(t, out.EventTitleEn)
		})
	}
}

func TestRegistrationService_Register_ConstraintRace(t *testing.T) {
	// The pre-check passes but the insert hits the unique constraint:
	// the caller still sees ErrDuplicateTeamName, not an internal error.
	now := time.Date(2026, 2, 15, 10, 0, 0, 0, clubtime.Location)
	event := upcomingEvent("e1", now)
	eventRepo := &mockEventRepository{events: map[string]*domain.Event{"e1": event}}
	regRepo := &mockRegistrationRepository{createErr: domain.ErrDuplicateTeamName}
	svc := NewRegistrationService(regRepo, eventRepo, fixedClock(now), time.Second)

	_, err := svc.Register(context.Background(), "e1", "Team A", 3, "user-1")
	require.ErrorIs(t, err, domain.ErrDuplicateTeamName)
}

func TestRegistrationService_Register_TieBreakAtStart(t *testing.T) {
	// An event starting exactly at the current instant is already PAST.
	now := time.Date(2026, 2, 15, 10, 0, 0, 0, clubtime.Location)
	event := &domain.Event{
		ID:     "e1",
		Date:   "2026-02-15",
		Time:   "10:00",
		Status: domain.EventStatusUpcoming,
	}
	eventRepo := &mockEventRepository{events: map[string]*domain.Event{"e1": event}}
	regRepo := &mockRegistrationRepository{}
	svc := NewRegistrationService(regRepo, eventRepo, fixedClock(now), time.Second)

	_, err := svc.Register(context.Background(), "e1", "Team A", 3, "user-1")
	require.ErrorIs(t, err, domain.ErrEventClosed)
}

func TestRegistrationService_SetRating(t *testing.T) {
	now := time.Date(2026, 2, 15, 10, 0, 0, 0, clubtime.Location)
	decidedAt := now.Add(-time.Hour)
	decider := "admin-1"
	note := "strong application"

	reg := &domain.TeamRegistration{
		ID:             "r1",
		EventID:        "e1",
		RatingStatus:   domain.RatingYellow,
		DecisionStatus: domain.DecisionAccepted,
		DecisionNote:   &note,
		DecidedAt:      &decidedAt,
		DecidedBy:      &decider,
	}
	regRepo := &mockRegistrationRepository{byID: map[string]*domain.TeamRegistration{"r1": reg}}
	svc := NewRegistrationService(regRepo, &mockEventRepository{}, fixedClock(now), time.Second)

	out, err := svc.SetRating(context.Background(), "r1", domain.RatingRed, "needs review")
	require.NoError(t, err)
	assert.Equal(t, domain.RatingRed, out.Registration.RatingStatus)
	assert.Equal(t, "needs review", out.Registration.Notes)

	// The decision axis is untouched.
	assert.Equal(t, domain.DecisionAccepted, out.Registration.DecisionStatus)
	assert.Equal(t, &decidedAt, out.Registration.DecidedAt)
	assert.Equal(t, &decider, out.Registration.DecidedBy)
}

func TestRegistrationService_SetRating_Invalid(t *testing.T) {
	now := time.Now()
	regRepo := &mockRegistrationRepository{byID: map[string]*domain.TeamRegistration{}}
	svc := NewRegistrationService(regRepo, &mockEventRepository{}, fixedClock(now), time.Second)

	_, err := svc.SetRating(context.Background(), "r1", domain.RatingStatus("PURPLE"), "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.SetRating(context.Background(), "missing", domain.RatingGreen, "")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistrationService_Decide(t *testing.T) {
	now := time.Date(2026, 2, 15, 10, 0, 0, 0, clubtime.Location)

	tests := []struct {
		name     string
		reg      *domain.TeamRegistration
		id       string
		decision domain.DecisionStatus
		wantErr  error
	}{
		{
			name:     "accept pending",
			reg:      &domain.TeamRegistration{ID: "r1", DecisionStatus: domain.DecisionPending, RatingStatus: domain.RatingYellow},
			id:       "r1",
			decision: domain.DecisionAccepted,
		},
		{
			name:     "decline pending",
			reg:      &domain.TeamRegistration{ID: "r1", DecisionStatus: domain.DecisionPending, RatingStatus: domain.RatingYellow},
			id:       "r1",
			decision: domain.DecisionDeclined,
		},
		{
			name:     "already decided",
			reg:      &domain.TeamRegistration{ID: "r1", DecisionStatus: domain.DecisionAccepted},
			id:       "r1",
			decision: domain.DecisionDeclined,
			wantErr:  domain.ErrAlreadyDecided,
		},
		{
			name:     "pending is not a valid decision",
			reg:      &domain.TeamRegistration{ID: "r1", DecisionStatus: domain.DecisionPending},
			id:       "r1",
			decision: domain.DecisionPending,
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "not found",
			reg:      &domain.TeamRegistration{ID: "r1", DecisionStatus: domain.DecisionPending},
			id:       "missing",
			decision: domain.DecisionAccepted,
			wantErr:  domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regRepo := &mockRegistrationRepository{byID: map[string]*domain.TeamRegistration{tt.reg.ID: tt.reg}}
			svc := NewRegistrationService(regRepo, &mockEventRepository{}, fixedClock(now), time.Second)

			out, err := svc.Decide(context.Background(), tt.id, tt.decision, nil, "admin-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.decision, out.Registration.DecisionStatus)
			require.NotNil(t, out.Registration.DecidedAt)
			assert.True(t, out.Registration.DecidedAt.Equal(now))
			require.NotNil(t, out.Registration.DecidedBy)
			assert.Equal(t, "admin-1", *out.Registration.DecidedBy)
			// Rating axis untouched.
			assert.Equal(t, domain.RatingYellow, out.Registration.RatingStatus)
		})
	}
}

func TestRegistrationService_ListRegistrations_RepoError(t *testing.T) {
	regRepo := &listErrRepo{err: errors.New("db down")}
	svc := NewRegistrationService(regRepo, &mockEventRepository{}, fixedClock(time.Now()), time.Second)
	_, _, err := svc.ListRegistrations(context.Background(), domain.RegistrationFilter{}, domain.PaginationParams{Page: 1, PageSize: 20})
	require.Error(t, err)
}

type listErrRepo struct {
	mockRegistrationRepository
	err error
}

func (r *listErrRepo) List(ctx context.Context, filter domain.RegistrationFilter, params domain.PaginationParams) ([]*domain.RegistrationWithEvent, int, error) {
	return nil, 0, r.err
}

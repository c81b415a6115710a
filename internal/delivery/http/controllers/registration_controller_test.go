package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"legalclub/internal/delivery/http/helpers"
	"legalclub/internal/delivery/http/middleware"
	"legalclub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeRegistrationService implements domain.RegistrationService for handler tests.
type fakeRegistrationService struct {
	registerErr        error
	registerResult     *domain.RegistrationWithEvent
	listErr            error
	listResult         []*domain.RegistrationWithEvent
	listTotal          int
	setRatingErr       error
	setRatingResult    *domain.RegistrationWithEvent
	decideErr          error
	decideResult       *domain.RegistrationWithEvent
	lastEventID        string
	lastTeamName       string
	lastMembersCount   int
	lastLeaderID       string
	lastFilter         domain.RegistrationFilter
	lastParams         domain.PaginationParams
	lastRatingID       string
	lastRating         domain.RatingStatus
	lastNotes          string
	lastDecisionID     string
	lastDecision       domain.DecisionStatus
	lastDecisionNote   *string
	lastDeciderID      string
}

func (f *fakeRegistrationService) Register(_ context.Context, eventID, teamName string, membersCount int, leaderID string) (*domain.RegistrationWithEvent, error) {
	f.lastEventID = eventID
	f.lastTeamName = teamName
	f.lastMembersCount = membersCount
	f.lastLeaderID = leaderID
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registerResult, nil
}

func (f *fakeRegistrationService) ListRegistrations(_ context.Context, filter domain.RegistrationFilter, params domain.PaginationParams) ([]*domain.RegistrationWithEvent, int, error) {
	f.lastFilter = filter
	f.lastParams = params
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.listResult, f.listTotal, nil
}

func (f *fakeRegistrationService) SetRating(_ context.Context, id string, rating domain.RatingStatus, notes string) (*domain.RegistrationWithEvent, error) {
	f.lastRatingID = id
	f.lastRating = rating
	f.lastNotes = notes
	if f.setRatingErr != nil {
		return nil, f.setRatingErr
	}
	return f.setRatingResult, nil
}

func (f *fakeRegistrationService) Decide(_ context.Context, id string, decision domain.DecisionStatus, note *string, deciderID string) (*domain.RegistrationWithEvent, error) {
	f.lastDecisionID = id
	f.lastDecision = decision
	f.lastDecisionNote = note
	f.lastDeciderID = deciderID
	if f.decideErr != nil {
		return nil, f.decideErr
	}
	return f.decideResult, nil
}

func sampleRegistration() *domain.RegistrationWithEvent {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.RegistrationWithEvent{
		Registration: &domain.TeamRegistration{
			ID:             "reg-1",
			EventID:        "ev-1",
			LeaderID:       "user-1",
			TeamName:       "Huquqchilar jamoasi",
			MembersCount:   4,
			RatingStatus:   domain.RatingYellow,
			DecisionStatus: domain.DecisionPending,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		EventTitleUz:   "Sud jarayoni",
		EventTitleEn:   "Moot court",
		LeaderUsername: "leader1",
	}
}

func authedRequest(method, target string, body any, userID string, role domain.Role) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	if userID != "" {
		req = req.WithContext(middleware.SetIdentity(req.Context(), userID, role))
	}
	return req
}

func decodeError(t *testing.T, body []byte) *helpers.APIError {
	t.Helper()
	var resp helpers.APIResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Error
}

func TestRegistrationController_RegisterTeam(t *testing.T) {
	tests := []struct {
		name         string
		body         any
		svc          *fakeRegistrationService
		wantStatus   int
		wantErrCode  string
	}{
		{
			name:       "created",
			body:       RegisterTeamRequest{EventID: "ev-1", TeamName: "Huquqchilar jamoasi", MembersCount: 4},
			svc:        &fakeRegistrationService{registerResult: sampleRegistration()},
			wantStatus: http.StatusCreated,
		},
		{
			name:        "missing team name",
			body:        RegisterTeamRequest{EventID: "ev-1", MembersCount: 4},
			svc:         &fakeRegistrationService{},
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "event not found",
			body:        RegisterTeamRequest{EventID: "missing", TeamName: "Team", MembersCount: 4},
			svc:         &fakeRegistrationService{registerErr: domain.ErrNotFound},
			wantStatus:  http.StatusNotFound,
			wantErrCode: helpers.ErrCodeNotFound,
		},
		{
			name:        "event closed",
			body:        RegisterTeamRequest{EventID: "ev-1", TeamName: "Team", MembersCount: 4},
			svc:         &fakeRegistrationService{registerErr: domain.ErrEventClosed},
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "deadline passed",
			body:        RegisterTeamRequest{EventID: "ev-1", TeamName: "Team", MembersCount: 4},
			svc:         &fakeRegistrationService{registerErr: domain.ErrDeadlinePassed},
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "duplicate team name",
			body:        RegisterTeamRequest{EventID: "ev-1", TeamName: "Huquqchilar jamoasi", MembersCount: 4},
			svc:         &fakeRegistrationService{registerErr: domain.ErrDuplicateTeamName},
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "members count rejected",
			body:        RegisterTeamRequest{EventID: "ev-1", TeamName: "Team", MembersCount: 21},
			svc:         &fakeRegistrationService{registerErr: domain.ErrInvalidInput},
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewRegistrationController(testLogger, tt.svc)
			req := authedRequest(http.MethodPost, "/registrations", tt.body, "user-1", domain.RoleMember)
			rr := httptest.NewRecorder()
			ctrl.RegisterTeam(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantErrCode != "" {
				apiErr := decodeError(t, rr.Body.Bytes())
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantErrCode, apiErr.Code)
				return
			}
			var resp struct {
				Data *domain.RegistrationWithEvent `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			require.NotNil(t, resp.Data)
			assert.Equal(t, domain.RatingYellow, resp.Data.Registration.RatingStatus)
			assert.Equal(t, domain.DecisionPending, resp.Data.Registration.DecisionStatus)
			assert.Equal(t, "user-1", tt.svc.lastLeaderID)
		})
	}
}

func TestRegistrationController_InternalErrorBodyStaysGeneric(t *testing.T) {
	// Storage failures carry connection detail that must never reach the
	// client; only the log line gets the wrapped error.
	svc := &fakeRegistrationService{
		registerErr: errors.New("create registration: pq: connection refused host=db-internal.local"),
	}
	ctrl := NewRegistrationController(testLogger, svc)
	req := authedRequest(http.MethodPost, "/registrations",
		RegisterTeamRequest{EventID: "ev-1", TeamName: "Team", MembersCount: 3},
		"user-1", domain.RoleMember)
	rr := httptest.NewRecorder()
	ctrl.RegisterTeam(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	apiErr := decodeError(t, rr.Body.Bytes())
	require.NotNil(t, apiErr)
	assert.Equal(t, helpers.ErrCodeInternalError, apiErr.Code)
	assert.Equal(t, "internal server error", apiErr.Message)
	assert.NotContains(t, rr.Body.String(), "db-internal")
	assert.NotContains(t, rr.Body.String(), "pq:")
}

func TestRegistrationController_RegisterTeam_Unauthenticated(t *testing.T) {
	ctrl := NewRegistrationController(testLogger, &fakeRegistrationService{})
	req := authedRequest(http.MethodPost, "/registrations",
		RegisterTeamRequest{EventID: "ev-1", TeamName: "Team", MembersCount: 3}, "", "")
	rr := httptest.NewRecorder()
	ctrl.RegisterTeam(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRegistrationController_ListRegistrations(t *testing.T) {
	t.Run("filters are parsed", func(t *testing.T) {
		svc := &fakeRegistrationService{listResult: []*domain.RegistrationWithEvent{sampleRegistration()}, listTotal: 1}
		ctrl := NewRegistrationController(testLogger, svc)
		req := authedRequest(http.MethodGet,
			"/registrations?event_id=ev-1&rating_status=GREEN&decision_status=PENDING&page=2&page_size=10",
			nil, "admin-1", domain.RoleAdmin)
		rr := httptest.NewRecorder()
		ctrl.ListRegistrations(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, svc.lastFilter.EventID)
		assert.Equal(t, "ev-1", *svc.lastFilter.EventID)
		require.NotNil(t, svc.lastFilter.RatingStatus)
		assert.Equal(t, domain.RatingGreen, *svc.lastFilter.RatingStatus)
		require.NotNil(t, svc.lastFilter.DecisionStatus)
		assert.Equal(t, domain.DecisionPending, *svc.lastFilter.DecisionStatus)
		assert.Equal(t, 2, svc.lastParams.Page)
		assert.Equal(t, 10, svc.lastParams.PageSize)
	})

	t.Run("unknown rating filter is rejected", func(t *testing.T) {
		ctrl := NewRegistrationController(testLogger, &fakeRegistrationService{})
		req := authedRequest(http.MethodGet, "/registrations?rating_status=BLUE", nil, "admin-1", domain.RoleAdmin)
		rr := httptest.NewRecorder()
		ctrl.ListRegistrations(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("empty list serializes as empty array", func(t *testing.T) {
		ctrl := NewRegistrationController(testLogger, &fakeRegistrationService{})
		req := authedRequest(http.MethodGet, "/registrations", nil, "admin-1", domain.RoleAdmin)
		rr := httptest.NewRecorder()
		ctrl.ListRegistrations(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"items":[]`)
	})
}

func TestRegistrationController_SetRating(t *testing.T) {
	t.Run("rating updated", func(t *testing.T) {
		updated := sampleRegistration()
		updated.Registration.RatingStatus = domain.RatingGreen
		svc := &fakeRegistrationService{setRatingResult: updated}
		ctrl := NewRegistrationController(testLogger, svc)

		req := authedRequest(http.MethodPatch, "/registrations/reg-1/rating",
			SetRatingRequest{RatingStatus: domain.RatingGreen, Notes: "strong team"},
			"admin-1", domain.RoleAdmin)
		req.SetPathValue("registrationID", "reg-1")
		rr := httptest.NewRecorder()
		ctrl.SetRating(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "reg-1", svc.lastRatingID)
		assert.Equal(t, domain.RatingGreen, svc.lastRating)
		assert.Equal(t, "strong team", svc.lastNotes)
	})

	t.Run("unknown rating value fails validation", func(t *testing.T) {
		ctrl := NewRegistrationController(testLogger, &fakeRegistrationService{})
		req := authedRequest(http.MethodPatch, "/registrations/reg-1/rating",
			map[string]string{"rating_status": "BLUE"}, "admin-1", domain.RoleAdmin)
		req.SetPathValue("registrationID", "reg-1")
		rr := httptest.NewRecorder()
		ctrl.SetRating(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("registration not found", func(t *testing.T) {
		ctrl := NewRegistrationController(testLogger, &fakeRegistrationService{setRatingErr: domain.ErrNotFound})
		req := authedRequest(http.MethodPatch, "/registrations/missing/rating",
			SetRatingRequest{RatingStatus: domain.RatingRed}, "admin-1", domain.RoleAdmin)
		req.SetPathValue("registrationID", "missing")
		rr := httptest.NewRecorder()
		ctrl.SetRating(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRegistrationController_Decide(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		decided := sampleRegistration()
		decided.Registration.DecisionStatus = domain.DecisionAccepted
		svc := &fakeRegistrationService{decideResult: decided}
		ctrl := NewRegistrationController(testLogger, svc)

		note := "welcome aboard"
		req := authedRequest(http.MethodPatch, "/registrations/reg-1/decision",
			DecideRequest{DecisionStatus: domain.DecisionAccepted, DecisionNote: &note},
			"admin-1", domain.RoleAdmin)
		req.SetPathValue("registrationID", "reg-1")
		rr := httptest.NewRecorder()
		ctrl.Decide(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, domain.DecisionAccepted, svc.lastDecision)
		assert.Equal(t, "admin-1", svc.lastDeciderID)
		require.NotNil(t, svc.lastDecisionNote)
		assert.Equal(t, "welcome aboard", *svc.lastDecisionNote)
	})

	t.Run("already decided returns conflict", func(t *testing.T) {
		ctrl := NewRegistrationController(testLogger, &fakeRegistrationService{decideErr: domain.ErrAlreadyDecided})
		req := authedRequest(http.MethodPatch, "/registrations/reg-1/decision",
			DecideRequest{DecisionStatus: domain.DecisionDeclined}, "admin-1", domain.RoleAdmin)
		req.SetPathValue("registrationID", "reg-1")
		rr := httptest.NewRecorder()
		ctrl.Decide(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		apiErr := decodeError(t, rr.Body.Bytes())
		require.NotNil(t, apiErr)
		assert.Equal(t, helpers.ErrCodeConflict, apiErr.Code)
	})

	t.Run("pending is not a valid decision", func(t *testing.T) {
		ctrl := NewRegistrationController(testLogger, &fakeRegistrationService{})
		req := authedRequest(http.MethodPatch, "/registrations/reg-1/decision",
			DecideRequest{DecisionStatus: domain.DecisionPending}, "admin-1", domain.RoleAdmin)
		req.SetPathValue("registrationID", "reg-1")
		rr := httptest.NewRecorder()
		ctrl.Decide(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

// fakeAdminVerifier lets the role gate tests drive the full middleware chain.
type fakeAdminVerifier struct {
	userID string
	role   domain.Role
}

func (f *fakeAdminVerifier) Verify(_ string) (string, domain.Role, error) {
	return f.userID, f.role, nil
}

func TestRegistrationController_AdminGate(t *testing.T) {
	svc := &fakeRegistrationService{decideResult: sampleRegistration()}
	ctrl := NewRegistrationController(testLogger, svc)

	t.Run("member cannot decide", func(t *testing.T) {
		gate := middleware.RequireAdmin(&fakeAdminVerifier{userID: "user-1", role: domain.RoleMember}, testLogger)
		handler := gate(ctrl.Decide)

		var buf bytes.Buffer
		_ = json.NewEncoder(&buf).Encode(DecideRequest{DecisionStatus: domain.DecisionAccepted})
		req := httptest.NewRequest(http.MethodPatch, "/registrations/reg-1/decision", &buf)
		req.Header.Set("Authorization", "Bearer member-token")
		req.SetPathValue("registrationID", "reg-1")
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("admin passes the gate", func(t *testing.T) {
		gate := middleware.RequireAdmin(&fakeAdminVerifier{userID: "admin-1", role: domain.RoleAdmin}, testLogger)
		handler := gate(ctrl.Decide)

		var buf bytes.Buffer
		_ = json.NewEncoder(&buf).Encode(DecideRequest{DecisionStatus: domain.DecisionAccepted})
		req := httptest.NewRequest(http.MethodPatch, "/registrations/reg-1/decision", &buf)
		req.Header.Set("Authorization", "Bearer admin-token")
		req.SetPathValue("registrationID", "reg-1")
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "admin-1", svc.lastDeciderID)
	})
}

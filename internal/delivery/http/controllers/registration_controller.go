package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"legalclub/internal/delivery/http/helpers"
	"legalclub/internal/delivery/http/middleware"
	"legalclub/internal/domain"
)

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// RegisterTeamRequest is the request body for POST /registrations.
type RegisterTeamRequest struct {
	EventID      string `json:"event_id"`
	TeamName     string `json:"team_name"`
	MembersCount int    `json:"members_count"`
}

// Validate implements Validator. Team size bounds are re-checked by the
// service; this catches the obvious cases before the gate runs.
func (r RegisterTeamRequest) Validate() []string {
	var errs []string
	if r.EventID == "" {
		errs = append(errs, "event_id is required")
	}
	if strings.TrimSpace(r.TeamName) == "" {
		errs = append(errs, "team_name is required")
	}
	return errs
}

// RegistrationSuccessResponse is the success response envelope for endpoints
// returning a single registration with event context.
type RegistrationSuccessResponse struct {
	Data  *domain.RegistrationWithEvent `json:"data"`
	Error *helpers.APIError             `json:"error"`
}

// RegisterTeam godoc
// @Summary Register a team for an event
// @Description Submits a team registration for an event. The admission checks run in order: event exists, event is still upcoming at submission time, registration deadline has not passed, team name is unique for the event, member count is within bounds. On success the registration starts with rating YELLOW and decision PENDING. Requires authentication.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RegisterTeamRequest true "Registration data"
// @Success 201 {object} controllers.RegistrationSuccessResponse "data contains the created registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (event closed, deadline passed, duplicate team name, or bad member count)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (no such event)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations [post]
func (c *RegistrationController) RegisterTeam(w http.ResponseWriter, r *http.Request) {
	var req RegisterTeamRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	leaderID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	reg, err := c.Service.Register(r.Context(), req.EventID, req.TeamName, req.MembersCount, leaderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		if errors.Is(err, domain.ErrEventClosed) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "event is no longer open for registration")
			return
		}
		if errors.Is(err, domain.ErrDeadlinePassed) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "registration deadline has passed")
			return
		}
		if errors.Is(err, domain.ErrDuplicateTeamName) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "a team with that name is already registered for this event")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// ListRegistrationsResponse is the data payload for GET /registrations (200).
type ListRegistrationsResponse struct {
	Items      []*domain.RegistrationWithEvent `json:"items"`
	Pagination helpers.PaginationMeta          `json:"pagination"`
}

// ListRegistrationsSuccessResponse is the success response envelope for GET /registrations (200).
type ListRegistrationsSuccessResponse struct {
	Data  ListRegistrationsResponse `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// ListRegistrations godoc
// @Summary List team registrations
// @Description Returns a paginated list of registrations with event and leader context, filterable by event, rating status, and decision status. Admin only.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param event_id query string false "Filter by event ID"
// @Param rating_status query string false "Filter by rating (GREEN, YELLOW, RED)"
// @Param decision_status query string false "Filter by decision (PENDING, ACCEPTED, DECLINED)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListRegistrationsSuccessResponse "data contains items and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (unknown filter value)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations [get]
func (c *RegistrationController) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	var filter domain.RegistrationFilter
	q := r.URL.Query()
	if v := q.Get("event_id"); v != "" {
		filter.EventID = &v
	}
	if v := q.Get("rating_status"); v != "" {
		rating := domain.RatingStatus(v)
		if !domain.ValidRatingStatus(rating) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "rating_status must be GREEN, YELLOW, or RED")
			return
		}
		filter.RatingStatus = &rating
	}
	if v := q.Get("decision_status"); v != "" {
		decision := domain.DecisionStatus(v)
		if decision != domain.DecisionPending && decision != domain.DecisionAccepted && decision != domain.DecisionDeclined {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "decision_status must be PENDING, ACCEPTED, or DECLINED")
			return
		}
		filter.DecisionStatus = &decision
	}
	params := helpers.ParsePagination(r)
	list, total, err := c.Service.ListRegistrations(r.Context(), filter, params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	if list == nil {
		list = []*domain.RegistrationWithEvent{}
	}
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListRegistrationsResponse{Items: list, Pagination: meta})
}

// SetRatingRequest is the request body for PATCH /registrations/{registrationID}/rating.
type SetRatingRequest struct {
	RatingStatus domain.RatingStatus `json:"rating_status"`
	Notes        string              `json:"notes"`
}

// Validate implements Validator.
func (s SetRatingRequest) Validate() []string {
	var errs []string
	if s.RatingStatus == "" {
		errs = append(errs, "rating_status is required")
	} else if !domain.ValidRatingStatus(s.RatingStatus) {
		errs = append(errs, "rating_status must be GREEN, YELLOW, or RED")
	}
	return errs
}

// SetRating godoc
// @Summary Set the rating of a registration
// @Description Updates the traffic-light rating and its notes. Any rating may move to any other at any time; the decision axis is untouched. Admin only.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param registrationID path string true "Registration ID"
// @Param body body SetRatingRequest true "New rating and notes"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data contains the updated registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations/{registrationID}/rating [patch]
func (c *RegistrationController) SetRating(w http.ResponseWriter, r *http.Request) {
	registrationID := r.PathValue("registrationID")
	if registrationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing registrationID")
		return
	}
	var req SetRatingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reg, err := c.Service.SetRating(r.Context(), registrationID, req.RatingStatus, req.Notes)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "registration not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reg)
}

// DecideRequest is the request body for PATCH /registrations/{registrationID}/decision.
type DecideRequest struct {
	DecisionStatus domain.DecisionStatus `json:"decision_status"`
	DecisionNote   *string               `json:"decision_note"`
}

// Validate implements Validator. Only the two terminal outcomes are accepted;
// a registration cannot be moved back to PENDING.
func (d DecideRequest) Validate() []string {
	var errs []string
	if d.DecisionStatus == "" {
		errs = append(errs, "decision_status is required")
	} else if d.DecisionStatus != domain.DecisionAccepted && d.DecisionStatus != domain.DecisionDeclined {
		errs = append(errs, "decision_status must be ACCEPTED or DECLINED")
	}
	return errs
}

// Decide godoc
// @Summary Decide on a registration
// @Description Resolves a PENDING registration to ACCEPTED or DECLINED, recording who decided and when. The decision is terminal: deciding an already-decided registration returns 409. The rating axis is untouched. Admin only.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param registrationID path string true "Registration ID"
// @Param body body DecideRequest true "Decision and optional note"
// @Success 200 {object} controllers.RegistrationSuccessResponse "data contains the decided registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already decided)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations/{registrationID}/decision [patch]
func (c *RegistrationController) Decide(w http.ResponseWriter, r *http.Request) {
	registrationID := r.PathValue("registrationID")
	if registrationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing registrationID")
		return
	}
	var req DecideRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	deciderID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	reg, err := c.Service.Decide(r.Context(), registrationID, req.DecisionStatus, req.DecisionNote, deciderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "registration not found")
			return
		}
		if errors.Is(err, domain.ErrAlreadyDecided) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "registration is already decided")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reg)
}

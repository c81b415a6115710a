package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"legalclub/internal/delivery/http/helpers"
	"legalclub/internal/domain"
)

type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{
		Logger:  logger,
		Service: svc,
	}
}

// SubmitContactMessageRequest is the request body for POST /contact.
type SubmitContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate implements Validator.
func (s SubmitContactMessageRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, "name is required")
	}
	if s.Email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(strings.TrimSpace(s.Email)) {
		errs = append(errs, "email must be a valid email address")
	}
	if strings.TrimSpace(s.Message) == "" {
		errs = append(errs, "message is required")
	}
	return errs
}

// SubmitContactMessageSuccessResponse is the success response envelope for POST /contact (201).
type SubmitContactMessageSuccessResponse struct {
	Data  *domain.ContactMessage `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// SubmitMessage godoc
// @Summary Submit a contact message
// @Description Stores a message from the public contact form and notifies the club inbox by email. The notification is best-effort; a mail failure does not fail the request. Public.
// @Tags contact
// @Accept json
// @Produce json
// @Param body body SubmitContactMessageRequest true "Message data"
// @Success 201 {object} controllers.SubmitContactMessageSuccessResponse "data contains the stored message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /contact [post]
func (c *ContactController) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	var req SubmitContactMessageRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	msg, err := c.Service.SubmitMessage(r.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, msg)
}

// ListContactMessagesResponse is the data payload for GET /contact (200).
type ListContactMessagesResponse struct {
	Items      []*domain.ContactMessage `json:"items"`
	Pagination helpers.PaginationMeta   `json:"pagination"`
}

// ListContactMessagesSuccessResponse is the success response envelope for GET /contact (200).
type ListContactMessagesSuccessResponse struct {
	Data  ListContactMessagesResponse `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

// ListMessages godoc
// @Summary List contact messages
// @Description Returns a paginated list of submitted contact messages, newest first. Admin only.
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListContactMessagesSuccessResponse "data contains items and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /contact [get]
func (c *ContactController) ListMessages(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	list, total, err := c.Service.ListMessages(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}
	if list == nil {
		list = []*domain.ContactMessage{}
	}
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListContactMessagesResponse{Items: list, Pagination: meta})
}

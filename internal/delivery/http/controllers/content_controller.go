package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"legalclub/internal/delivery/http/helpers"
	"legalclub/internal/domain"
)

// ContentController serves the public content collections: resources,
// videos, reports, partners, and club members. Reads are public, writes
// are admin only.
type ContentController struct {
	Logger  *slog.Logger
	Service domain.ContentService
}

func NewContentController(logger *slog.Logger, svc domain.ContentService) *ContentController {
	return &ContentController{
		Logger:  logger,
		Service: svc,
	}
}

// DeletedResponse is the data payload for content DELETE endpoints (200).
type DeletedResponse struct {
	Status string `json:"status"`
}

func (c *ContentController) writeServiceError(w http.ResponseWriter, r *http.Request, err error, noun string) {
	if errors.Is(err, domain.ErrNotFound) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, noun+" not found")
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
}

// ResourceRequest is the request body for resource create and update.
type ResourceRequest struct {
	TitleUz       string `json:"title_uz"`
	TitleEn       string `json:"title_en"`
	DescriptionUz string `json:"description_uz"`
	DescriptionEn string `json:"description_en"`
	FileURL       string `json:"file_url"`
	Category      string `json:"category"`
}

// Validate implements Validator.
func (r ResourceRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.TitleUz) == "" {
		errs = append(errs, "title_uz is required")
	}
	if strings.TrimSpace(r.TitleEn) == "" {
		errs = append(errs, "title_en is required")
	}
	if strings.TrimSpace(r.FileURL) == "" {
		errs = append(errs, "file_url is required")
	}
	return errs
}

// CreateResource godoc
// @Summary Create a resource
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ResourceRequest true "Resource data"
// @Success 201 {object} helpers.APIResponse "data contains the created resource"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /resources [post]
func (c *ContentController) CreateResource(w http.ResponseWriter, r *http.Request) {
	var req ResourceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res := &domain.Resource{
		TitleUz:       req.TitleUz,
		TitleEn:       req.TitleEn,
		DescriptionUz: req.DescriptionUz,
		DescriptionEn: req.DescriptionEn,
		FileURL:       req.FileURL,
		Category:      req.Category,
	}
	if err := c.Service.CreateResource(r.Context(), res); err != nil {
		c.writeServiceError(w, r, err, "resource")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, res)
}

// ListResources godoc
// @Summary List resources
// @Tags content
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of resources"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /resources [get]
func (c *ContentController) ListResources(w http.ResponseWriter, r *http.Request) {
	list, err := c.Service.ListResources(r.Context())
	if err != nil {
		c.writeServiceError(w, r, err, "resource")
		return
	}
	if list == nil {
		list = []*domain.Resource{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// UpdateResource godoc
// @Summary Update a resource
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param resourceID path string true "Resource ID"
// @Param body body ResourceRequest true "Resource data"
// @Success 200 {object} helpers.APIResponse "data contains the updated resource"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /resources/{resourceID} [put]
func (c *ContentController) UpdateResource(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("resourceID")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing resourceID")
		return
	}
	var req ResourceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res := &domain.Resource{
		ID:            id,
		TitleUz:       req.TitleUz,
		TitleEn:       req.TitleEn,
		DescriptionUz: req.DescriptionUz,
		DescriptionEn: req.DescriptionEn,
		FileURL:       req.FileURL,
		Category:      req.Category,
	}
	updated, err := c.Service.UpdateResource(r.Context(), res)
	if err != nil {
		c.writeServiceError(w, r, err, "resource")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteResource godoc
// @Summary Delete a resource
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param resourceID path string true "Resource ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /resources/{resourceID} [delete]
func (c *ContentController) DeleteResource(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("resourceID")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing resourceID")
		return
	}
	if err := c.Service.DeleteResource(r.Context(), id); err != nil {
		c.writeServiceError(w, r, err, "resource")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeletedResponse{Status: "deleted"})
}

// VideoRequest is the request body for video create and update.
type VideoRequest struct {
	TitleUz   string  `json:"title_uz"`
	TitleEn   string  `json:"title_en"`
	VideoURL  string  `json:"video_url"`
	Thumbnail *string `json:"thumbnail"`
}

// Validate implements Validator.
func (v VideoRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(v.TitleUz) == "" {
		errs = append(errs, "title_uz is required")
	}
	if strings.TrimSpace(v.TitleEn) == "" {
		errs = append(errs, "title_en is required")
	}
	if strings.TrimSpace(v.VideoURL) == "" {
		errs = append(errs, "video_url is required")
	}
	return errs
}

// CreateVideo godoc
// @Summary Create a video
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body VideoRequest true "Video data"
// @Success 201 {object} helpers.APIResponse "data contains the created video"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /videos [post]
func (c *ContentController) CreateVideo(w http.ResponseWriter, r *http.Request) {
	var req VideoRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	video := &domain.Video{
		TitleUz:   req.TitleUz,
		TitleEn:   req.TitleEn,
		VideoURL:  req.VideoURL,
		Thumbnail: req.Thumbnail,
	}
	if err := c.Service.CreateVideo(r.Context(), video); err != nil {
		c.writeServiceError(w, r, err, "video")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, video)
}

// ListVideos godoc
// @Summary List videos
// @Tags content
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of videos"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /videos [get]
func (c *ContentController) ListVideos(w http.ResponseWriter, r *http.Request) {
	list, err := c.Service.ListVideos(r.Context())
	if err != nil {
		c.writeServiceError(w, r, err, "video")
		return
	}
	if list == nil {
		list = []*domain.Video{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// UpdateVideo godoc
// @Summary Update a video
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param videoID path string true "Video ID"
// @Param body body VideoRequest true "Video data"
// @Success 200 {object} helpers.APIResponse "data contains the updated video"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /videos/{videoID} [put]
func (c *ContentController) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("videoID")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing videoID")
		return
	}
	var req VideoRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	video := &domain.Video{
		ID:        id,
		TitleUz:   req.TitleUz,
		TitleEn:   req.TitleEn,
		VideoURL:  req.VideoURL,
		Thumbnail: req.Thumbnail,
	}
	updated, err := c.Service.UpdateVideo(r.Context(), video)
	if err != nil {
		c.writeServiceError(w, r, err, "video")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteVideo godoc
// @Summary Delete a video
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param videoID path string true "Video ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /videos/{videoID} [delete]
func (c *ContentController) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("videoID")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing videoID")
		return
	}
	if err := c.Service.DeleteVideo(r.Context(), id); err != nil {
		c.writeServiceError(w, r, err, "video")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeletedResponse{Status: "deleted"})
}

// ReportRequest is the request body for report create and update.
type ReportRequest struct {
	TitleUz     string `json:"title_uz"`
	TitleEn     string `json:"title_en"`
	Year        int    `json:"year"`
	DocumentURL string `json:"document_url"`
}

// Validate implements Validator.
func (r ReportRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.TitleUz) == "" {
		errs = append(errs, "title_uz is required")
	}
	if strings.TrimSpace(r.TitleEn) == "" {
		errs = append(errs, "title_en is required")
	}
	if r.Year < 1900 || r.Year > time.Now().Year()+1 {
		errs = append(errs, "year is out of range")
	}
	if strings.TrimSpace(r.DocumentURL) == "" {
		errs = append(errs, "document_url is required")
	}
	return errs
}

// CreateReport godoc
// @Summary Create a report
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ReportRequest true "Report data"
// @Success 201 {object} helpers.APIResponse "data contains the created report"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reports [post]
func (c *ContentController) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	report := &domain.Report{
		TitleUz:     req.TitleUz,
		TitleEn:     req.TitleEn,
		Year:        req.Year,
		DocumentURL: req.DocumentURL,
	}
	if err := c.Service.CreateReport(r.Context(), report); err != nil {
		c.writeServiceError(w, r, err, "report")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, report)
}

// ListReports godoc
// @Summary List reports
// @Tags content
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of reports"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reports [get]
func (c *ContentController) ListReports(w http.ResponseWriter, r *http.Request) {
	list, err := c.Service.ListReports(r.Context())
	if err != nil {
		c.writeServiceError(w, r, err, "report")
		return
	}
	if list == nil {
		list = []*domain.Report{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// UpdateReport godoc
// @Summary Update a report
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reportID path string true "Report ID"
// @Param body body ReportRequest true "Report data"
// @Success 200 {object} helpers.APIResponse "data contains the updated report"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reports/{reportID} [put]
func (c *ContentController) UpdateReport(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("reportID")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing reportID")
		return
	}
	var req ReportRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	report := &domain.Report{
		ID:          id,
		TitleUz:     req.TitleUz,
		TitleEn:     req.TitleEn,
		Year:        req.Year,
		DocumentURL: req.DocumentURL,
	}
	updated, err := c.Service.UpdateReport(r.Context(), report)
	if err != nil {
		c.writeServiceError(w, r, err, "report")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteReport godoc
// @Summary Delete a report
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param reportID path string true "Report ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reports/{reportID} [delete]
func (c *ContentController) DeleteReport(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("reportID")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing reportID")
		return
	}
	if err := c.Service.DeleteReport(r.Context(), id); err != nil {
		c.writeServiceError(w, r, err, "report")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeletedResponse{Status: "deleted"})
}

// PartnerRequest is the request body for partner create and update.
type PartnerRequest struct {
	Name       string `json:"name"`
	LogoURL    string `json:"logo_url"`
	WebsiteURL string `json:"website_url"`
}

// Validate implements Validator.
func (p PartnerRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(p.LogoURL) == "" {
		errs = append(errs, "logo_url is required")
	}
	return errs
}

// CreatePartner godoc
// @Summary Create a partner
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body PartnerRequest true "Partner data"
// @Success 201 {object} helpers.APIResponse "data contains the created partner"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /partners [post]
func (c *ContentController) CreatePartner(w http.ResponseWriter, r *http.Request) {
	var req PartnerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	partner := &domain.Partner{
		Name:       req.Name,
		LogoURL:    req.LogoURL,
		WebsiteURL: req.WebsiteURL,
	}
	if err := c.Service.CreatePartner(r.Context(), partner); err != nil {
		c.writeServiceError(w, r, err, "partner")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, partner)
}

// ListPartners godoc
// @Summary List partners
// @Tags content
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of partners"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /partners [get]
func (c *ContentController) ListPartners(w http.ResponseWriter, r *http.Request) {
	list, err := c.Service.ListPartners(r.Context())
	if err != nil {
		c.writeServiceError(w, r, err, "partner")
		return
	}
	if list == nil {
		list = []*domain.Partner{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// UpdatePartner godoc
// @Summary Update a partner
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param partnerID path string true "Partner ID"
// @Param body body PartnerRequest true "Partner data"
// @Success 200 {object} helpers.APIResponse "data contains the updated partner"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /partners/{partnerID} [put]
func (c *ContentController) UpdatePartner(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("partnerID")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing partnerID")
		return
	}
	var req PartnerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	partner := &domain.Partner{
		ID:         id,
		Name:       req.Name,
		LogoURL:    req.LogoURL,
		WebsiteURL: req.WebsiteURL,
	}
	updated, err := c.Service.UpdatePartner(r.Context(), partner)
	if err != nil {
		c.writeServiceError(w, r, err, "partner")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeletePartner godoc
// @Summary Delete a partner
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param partnerID path string true "Partner ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /partners/{partnerID} [delete]
func (c *ContentController) DeletePartner(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("partnerID")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing partnerID")
		return
	}
	if err := c.Service.DeletePartner(r.Context(), id); err != nil {
		c.writeServiceError(w, r, err, "partner")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeletedResponse{Status: "deleted"})
}

// ClubMemberRequest is the request body for club member create and update.
type ClubMemberRequest struct {
	FullName     string  `json:"full_name"`
	RoleUz       string  `json:"role_uz"`
	RoleEn       string  `json:"role_en"`
	PhotoURL     *string `json:"photo_url"`
	DisplayOrder int     `json:"display_order"`
}

// Validate implements Validator.
func (m ClubMemberRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(m.FullName) == "" {
		errs = append(errs, "full_name is required")
	}
	if m.DisplayOrder < 0 {
		errs = append(errs, "display_order must be non-negative")
	}
	return errs
}

// CreateClubMember godoc
// @Summary Create a club member entry
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ClubMemberRequest true "Club member data"
// @Success 201 {object} helpers.APIResponse "data contains the created club member"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /club-members [post]
func (c *ContentController) CreateClubMember(w http.ResponseWriter, r *http.Request) {
	var req ClubMemberRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	member := &domain.ClubMember{
		FullName:     req.FullName,
		RoleUz:       req.RoleUz,
		RoleEn:       req.RoleEn,
		PhotoURL:     req.PhotoURL,
		DisplayOrder: req.DisplayOrder,
	}
	if err := c.Service.CreateClubMember(r.Context(), member); err != nil {
		c.writeServiceError(w, r, err, "club member")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, member)
}

// ListClubMembers godoc
// @Summary List club members
// @Description Returns club members ordered by display_order. Public.
// @Tags content
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of club members"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /club-members [get]
func (c *ContentController) ListClubMembers(w http.ResponseWriter, r *http.Request) {
	list, err := c.Service.ListClubMembers(r.Context())
	if err != nil {
		c.writeServiceError(w, r, err, "club member")
		return
	}
	if list == nil {
		list = []*domain.ClubMember{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// UpdateClubMember godoc
// @Summary Update a club member entry
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param memberID path string true "Club member ID"
// @Param body body ClubMemberRequest true "Club member data"
// @Success 200 {object} helpers.APIResponse "data contains the updated club member"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /club-members/{memberID} [put]
func (c *ContentController) UpdateClubMember(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("memberID")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing memberID")
		return
	}
	var req ClubMemberRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	member := &domain.ClubMember{
		ID:           id,
		FullName:     req.FullName,
		RoleUz:       req.RoleUz,
		RoleEn:       req.RoleEn,
		PhotoURL:     req.PhotoURL,
		DisplayOrder: req.DisplayOrder,
	}
	updated, err := c.Service.UpdateClubMember(r.Context(), member)
	if err != nil {
		c.writeServiceError(w, r, err, "club member")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteClubMember godoc
// @Summary Delete a club member entry
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param memberID path string true "Club member ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /club-members/{memberID} [delete]
func (c *ContentController) DeleteClubMember(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("memberID")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing memberID")
		return
	}
	if err := c.Service.DeleteClubMember(r.Context(), id); err != nil {
		c.writeServiceError(w, r, err, "club member")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeletedResponse{Status: "deleted"})
}

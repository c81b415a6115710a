package domain

import (
	"context"
	"time"
)

// Resource is a downloadable study material with bilingual text.
// swagger:model Resource
type Resource struct {
	ID            string    `json:"id"`
	TitleUz       string    `json:"title_uz"`
	TitleEn       string    `json:"title_en"`
	DescriptionUz string    `json:"description_uz"`
	DescriptionEn string    `json:"description_en"`
	FileURL       string    `json:"file_url"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Video is an embedded or hosted video entry.
// swagger:model Video
type Video struct {
	ID        string    `json:"id"`
	TitleUz   string    `json:"title_uz"`
	TitleEn   string    `json:"title_en"`
	VideoURL  string    `json:"video_url"`
	Thumbnail *string   `json:"thumbnail"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Report is an annual or activity report document.
// swagger:model Report
type Report struct {
	ID          string    `json:"id"`
	TitleUz     string    `json:"title_uz"`
	TitleEn     string    `json:"title_en"`
	Year        int       `json:"year"`
	DocumentURL string    `json:"document_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Partner is a partner organization shown on the public site.
// swagger:model Partner
type Partner struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	LogoURL    string    `json:"logo_url"`
	WebsiteURL string    `json:"website_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ClubMember is an entry on the club's team page.
// swagger:model ClubMember
type ClubMember struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	RoleUz       string    `json:"role_uz"`
	RoleEn       string    `json:"role_en"`
	PhotoURL     *string   `json:"photo_url"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ContentRepository defines storage for the public content collections.
// All lists are ordered newest-first except club members, ordered by
// display_order.
type ContentRepository interface {
	CreateResource(ctx context.Context, r *Resource) error
	ListResources(ctx context.Context) ([]*Resource, error)
	UpdateResource(ctx context.Context, r *Resource) error
	DeleteResource(ctx context.Context, id string) error

	CreateVideo(ctx context.Context, v *Video) error
	ListVideos(ctx context.Context) ([]*Video, error)
	UpdateVideo(ctx context.Context, v *Video) error
	DeleteVideo(ctx context.Context, id string) error

	CreateReport(ctx context.Context, r *Report) error
	ListReports(ctx context.Context) ([]*Report, error)
	UpdateReport(ctx context.Context, r *Report) error
	DeleteReport(ctx context.Context, id string) error

	CreatePartner(ctx context.Context, p *Partner) error
	ListPartners(ctx context.Context) ([]*Partner, error)
	UpdatePartner(ctx context.Context, p *Partner) error
	DeletePartner(ctx context.Context, id string) error

	CreateClubMember(ctx context.Context, m *ClubMember) error
	ListClubMembers(ctx context.Context) ([]*ClubMember, error)
	UpdateClubMember(ctx context.Context, m *ClubMember) error
	DeleteClubMember(ctx context.Context, id string) error
}

// ContentService defines the business logic for the content collections.
// Reads are public; writes are admin-only (enforced at the delivery layer).
type ContentService interface {
	CreateResource(ctx context.Context, r *Resource) error
	ListResources(ctx context.Context) ([]*Resource, error)
	UpdateResource(ctx context.Context, r *Resource) (*Resource, error)
	DeleteResource(ctx context.Context, id string) error

	CreateVideo(ctx context.Context, v *Video) error
	ListVideos(ctx context.Context) ([]*Video, error)
	UpdateVideo(ctx context.Context, v *Video) (*Video, error)
	DeleteVideo(ctx context.Context, id string) error

	CreateReport(ctx context.Context, r *Report) error
	ListReports(ctx context.Context) ([]*Report, error)
	UpdateReport(ctx context.Context, r *Report) (*Report, error)
	DeleteReport(ctx context.Context, id string) error

	CreatePartner(ctx context.Context, p *Partner) error
	ListPartners(ctx context.Context) ([]*Partner, error)
	UpdatePartner(ctx context.Context, p *Partner) (*Partner, error)
	DeletePartner(ctx context.Context, id string) error

	CreateClubMember(ctx context.Context, m *ClubMember) error
	ListClubMembers(ctx context.Context) ([]*ClubMember, error)
	UpdateClubMember(ctx context.Context, m *ClubMember) (*ClubMember, error)
	DeleteClubMember(ctx context.Context, id string) error
}

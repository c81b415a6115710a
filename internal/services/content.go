package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"legalclub/internal/domain"
)

type contentService struct {
	repo           domain.ContentRepository
	contextTimeout time.Duration
}

// NewContentService creates a ContentService over the content repository.
func NewContentService(repo domain.ContentRepository, timeout time.Duration) domain.ContentService {
	return &contentService{repo: repo, contextTimeout: timeout}
}

func (s *contentService) CreateResource(ctx context.Context, r *domain.Resource) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	return s.repo.CreateResource(ctx, r)
}

func (s *contentService) ListResources(ctx context.Context) ([]*domain.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.ListResources(ctx)
}

func (s *contentService) UpdateResource(ctx context.Context, r *domain.Resource) (*domain.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	r.UpdatedAt = time.Now()
	if err := s.repo.UpdateResource(ctx, r); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update resource: %w", err)
	}
	return r, nil
}

func (s *contentService) DeleteResource(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.DeleteResource(ctx, id)
}

func (s *contentService) CreateVideo(ctx context.Context, v *domain.Video) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now
	return s.repo.CreateVideo(ctx, v)
}

func (s *contentService) ListVideos(ctx context.Context) ([]*domain.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.ListVideos(ctx)
}

func (s *contentService) UpdateVideo(ctx context.Context, v *domain.Video) (*domain.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	v.UpdatedAt = time.Now()
	if err := s.repo.UpdateVideo(ctx, v); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update video: %w", err)
	}
	return v, nil
}

func (s *contentService) DeleteVideo(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.DeleteVideo(ctx, id)
}

func (s *contentService) CreateReport(ctx context.Context, r *domain.Report) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	return s.repo.CreateReport(ctx, r)
}

func (s *contentService) ListReports(ctx context.Context) ([]*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.ListReports(ctx)
}

func (s *contentService) UpdateReport(ctx context.Context, r *domain.Report) (*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	r.UpdatedAt = time.Now()
	if err := s.repo.UpdateReport(ctx, r); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update report: %w", err)
	}
	return r, nil
}

func (s *contentService) DeleteReport(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.DeleteReport(ctx, id)
}

func (s *contentService) CreatePartner(ctx context.Context, p *domain.Partner) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.repo.CreatePartner(ctx, p)
}

func (s *contentService) ListPartners(ctx context.Context) ([]*domain.Partner, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.ListPartners(ctx)
}

func (s *contentService) UpdatePartner(ctx context.Context, p *domain.Partner) (*domain.Partner, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	p.UpdatedAt = time.Now()
	if err := s.repo.UpdatePartner(ctx, p); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update partner: %w", err)
	}
	return p, nil
}

func (s *contentService) DeletePartner(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.DeletePartner(ctx, id)
}

func (s *contentService) CreateClubMember(ctx context.Context, m *domain.ClubMember) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	return s.repo.CreateClubMember(ctx, m)
}

func (s *contentService) ListClubMembers(ctx context.Context) ([]*domain.ClubMember, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.ListClubMembers(ctx)
}

func (s *contentService) UpdateClubMember(ctx context.Context, m *domain.ClubMember) (*domain.ClubMember, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	m.UpdatedAt = time.Now()
	if err := s.repo.UpdateClubMember(ctx, m); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update club member: %w", err)
	}
	return m, nil
}

func (s *contentService) DeleteClubMember(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.DeleteClubMember(ctx, id)
}

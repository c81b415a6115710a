package postgres

import (
	"context"
	"database/sql"

	"legalclub/internal/domain"
)

type contentRepository struct {
	DB *sql.DB
}

func NewContentRepository(db *sql.DB) domain.ContentRepository {
	return &contentRepository{DB: db}
}

func (r *contentRepository) exec(ctx context.Context, query string, args ...any) error {
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Resources

func (r *contentRepository) CreateResource(ctx context.Context, res *domain.Resource) error {
	query := `
		INSERT INTO resources (title_uz, title_en, description_uz, description_en, file_url, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		res.TitleUz, res.TitleEn, res.DescriptionUz, res.DescriptionEn,
		res.FileURL, res.Category, res.CreatedAt, res.UpdatedAt,
	).Scan(&res.ID)
}

func (r *contentRepository) ListResources(ctx context.Context) ([]*domain.Resource, error) {
	query := `
		SELECT id, title_uz, title_en, description_uz, description_en, file_url, category, created_at, updated_at
		FROM resources
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.Resource, 0)
	for rows.Next() {
		res := &domain.Resource{}
		if err := rows.Scan(&res.ID, &res.TitleUz, &res.TitleEn, &res.DescriptionUz, &res.DescriptionEn,
			&res.FileURL, &res.Category, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *contentRepository) UpdateResource(ctx context.Context, res *domain.Resource) error {
	query := `
		UPDATE resources
		SET title_uz = $1, title_en = $2, description_uz = $3, description_en = $4,
			file_url = $5, category = $6, updated_at = $7
		WHERE id = $8
	`
	return r.exec(ctx, query, res.TitleUz, res.TitleEn, res.DescriptionUz, res.DescriptionEn,
		res.FileURL, res.Category, res.UpdatedAt, res.ID)
}

func (r *contentRepository) DeleteResource(ctx context.Context, id string) error {
	return r.exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
}

// Videos

func (r *contentRepository) CreateVideo(ctx context.Context, v *domain.Video) error {
	query := `
		INSERT INTO videos (title_uz, title_en, video_url, thumbnail, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		v.TitleUz, v.TitleEn, v.VideoURL, v.Thumbnail, v.CreatedAt, v.UpdatedAt,
	).Scan(&v.ID)
}

func (r *contentRepository) ListVideos(ctx context.Context) ([]*domain.Video, error) {
	query := `
		SELECT id, title_uz, title_en, video_url, thumbnail, created_at, updated_at
		FROM videos
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.Video, 0)
	for rows.Next() {
		v := &domain.Video{}
		var thumbNull sql.NullString
		if err := rows.Scan(&v.ID, &v.TitleUz, &v.TitleEn, &v.VideoURL, &thumbNull, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		if thumbNull.Valid {
			s := thumbNull.String
			v.Thumbnail = &s
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *contentRepository) UpdateVideo(ctx context.Context, v *domain.Video) error {
	query := `
		UPDATE videos
		SET title_uz = $1, title_en = $2, video_url = $3, thumbnail = $4, updated_at = $5
		WHERE id = $6
	`
	return r.exec(ctx, query, v.TitleUz, v.TitleEn, v.VideoURL, v.Thumbnail, v.UpdatedAt, v.ID)
}

func (r *contentRepository) DeleteVideo(ctx context.Context, id string) error {
	return r.exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
}

// Reports

func (r *contentRepository) CreateReport(ctx context.Context, rep *domain.Report) error {
	query := `
		INSERT INTO reports (title_uz, title_en, year, document_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		rep.TitleUz, rep.TitleEn, rep.Year, rep.DocumentURL, rep.CreatedAt, rep.UpdatedAt,
	).Scan(&rep.ID)
}

func (r *contentRepository) ListReports(ctx context.Context) ([]*domain.Report, error) {
	query := `
		SELECT id, title_uz, title_en, year, document_url, created_at, updated_at
		FROM reports
		ORDER BY year DESC, created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.Report, 0)
	for rows.Next() {
		rep := &domain.Report{}
		if err := rows.Scan(&rep.ID, &rep.TitleUz, &rep.TitleEn, &rep.Year, &rep.DocumentURL, &rep.CreatedAt, &rep.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func (r *contentRepository) UpdateReport(ctx context.Context, rep *domain.Report) error {
	query := `
		UPDATE reports
		SET title_uz = $1, title_en = $2, year = $3, document_url = $4, updated_at = $5
		WHERE id = $6
	`
	return r.exec(ctx, query, rep.TitleUz, rep.TitleEn, rep.Year, rep.DocumentURL, rep.UpdatedAt, rep.ID)
}

func (r *contentRepository) DeleteReport(ctx context.Context, id string) error {
	return r.exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
}

// Partners

func (r *contentRepository) CreatePartner(ctx context.Context, p *domain.Partner) error {
	query := `
		INSERT INTO partners (name, logo_url, website_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		p.Name, p.LogoURL, p.WebsiteURL, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
}

func (r *contentRepository) ListPartners(ctx context.Context) ([]*domain.Partner, error) {
	query := `
		SELECT id, name, logo_url, website_url, created_at, updated_at
		FROM partners
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.Partner, 0)
	for rows.Next() {
		p := &domain.Partner{}
		if err := rows.Scan(&p.ID, &p.Name, &p.LogoURL, &p.WebsiteURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *contentRepository) UpdatePartner(ctx context.Context, p *domain.Partner) error {
	query := `
		UPDATE partners
		SET name = $1, logo_url = $2, website_url = $3, updated_at = $4
		WHERE id = $5
	`
	return r.exec(ctx, query, p.Name, p.LogoURL, p.WebsiteURL, p.UpdatedAt, p.ID)
}

func (r *contentRepository) DeletePartner(ctx context.Context, id string) error {
	return r.exec(ctx, `DELETE FROM partners WHERE id = $1`, id)
}

// Club members

func (r *contentRepository) CreateClubMember(ctx context.Context, m *domain.ClubMember) error {
	query := `
		INSERT INTO club_members (full_name, role_uz, role_en, photo_url, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		m.FullName, m.RoleUz, m.RoleEn, m.PhotoURL, m.DisplayOrder, m.CreatedAt, m.UpdatedAt,
	).Scan(&m.ID)
}

func (r *contentRepository) ListClubMembers(ctx context.Context) ([]*domain.ClubMember, error) {
	query := `
		SELECT id, full_name, role_uz, role_en, photo_url, display_order, created_at, updated_at
		FROM club_members
		ORDER BY display_order, created_at
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.ClubMember, 0)
	for rows.Next() {
		m := &domain.ClubMember{}
		var photoNull sql.NullString
		if err := rows.Scan(&m.ID, &m.FullName, &m.RoleUz, &m.RoleEn, &photoNull, &m.DisplayOrder, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		if photoNull.Valid {
			s := photoNull.String
			m.PhotoURL = &s
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *contentRepository) UpdateClubMember(ctx context.Context, m *domain.ClubMember) error {
	query := `
		UPDATE club_members
		SET full_name = $1, role_uz = $2, role_en = $3, photo_url = $4, display_order = $5, updated_at = $6
		WHERE id = $7
	`
	return r.exec(ctx, query, m.FullName, m.RoleUz, m.RoleEn, m.PhotoURL, m.DisplayOrder, m.UpdatedAt, m.ID)
}

func (r *contentRepository) DeleteClubMember(ctx context.Context, id string) error {
	return r.exec(ctx, `DELETE FROM club_members WHERE id = $1`, id)
}

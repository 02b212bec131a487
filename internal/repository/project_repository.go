package repository // repository for portfolio project persistence

import (
	"context"
	"database/sql"

	"github.com/arefins/consultation-booking/internal/model"
)

// ProjectRepo encapsulates database operations for consultation_projects.
type ProjectRepo struct {
	db *sql.DB
}

// NewProjectRepo constructs a ProjectRepo given a DB handle.
func NewProjectRepo(db *sql.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// List returns all projects in display order.
func (r *ProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, image_url, link, display_order
		FROM consultation_projects ORDER BY display_order ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]model.Project, 0)
	for rows.Next() {
		var (
			p     model.Project
			image sql.NullString
			link  sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &image, &link, &p.DisplayOrder); err != nil {
			return nil, err
		}
		if image.Valid {
			p.ImageURL = &image.String
		}
		if link.Valid {
			p.Link = &link.String
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Create inserts a project and populates its ID.
func (r *ProjectRepo) Create(ctx context.Context, p *model.Project) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO consultation_projects (title, description, image_url, link, display_order)
		VALUES (?,?,?,?,?)`,
		p.Title, p.Description, p.ImageURL, p.Link, p.DisplayOrder)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// Update replaces all editable fields of a project.
func (r *ProjectRepo) Update(ctx context.Context, p *model.Project) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE consultation_projects
		SET title = ?, description = ?, image_url = ?, link = ?, display_order = ?
		WHERE id = ?`,
		p.Title, p.Description, p.ImageURL, p.Link, p.DisplayOrder, p.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx,
			`SELECT 1 FROM consultation_projects WHERE id = ?`, p.ID).Scan(&one); err == sql.ErrNoRows {
			return ErrProjectNotFound
		}
	}
	return nil
}

// Delete removes a project.
func (r *ProjectRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM consultation_projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrProjectNotFound
	}
	return nil
}

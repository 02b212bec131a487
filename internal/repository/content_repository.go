package repository // repository for the per-section content documents

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/arefins/consultation-booking/internal/model"
)

// ContentRepo persists the administrator-edited content sections.  The
// booking flow only ever reads them; writes come from the admin surface.
type ContentRepo struct {
	db *sql.DB
}

// NewContentRepo constructs a ContentRepo given a DB handle.
func NewContentRepo(db *sql.DB) *ContentRepo {
	return &ContentRepo{db: db}
}

// GetSection loads the document stored for a section.  Returns
// ErrSectionNotFound when the administrator has not saved one yet;
// callers supply their own default in that case.
func (r *ContentRepo) GetSection(ctx context.Context, section string) (model.ContentSection, error) {
	var (
		cs  model.ContentSection
		doc []byte
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, section, content, updated_at FROM consultation_content WHERE section = ?`,
		section).Scan(&cs.ID, &cs.Section, &doc, &cs.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.ContentSection{}, ErrSectionNotFound
	}
	if err != nil {
		return model.ContentSection{}, err
	}
	cs.Content = json.RawMessage(doc)
	return cs, nil
}

// UpsertSection stores the document for a section, replacing any
// previous version.  One row per section.
func (r *ContentRepo) UpsertSection(ctx context.Context, section string, doc json.RawMessage) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO consultation_content (section, content) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE content = VALUES(content), updated_at = NOW()`,
		section, []byte(doc))
	return err
}

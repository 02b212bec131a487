package repository // repository for testimonial persistence

import (
	"context"
	"database/sql"

	"github.com/arefins/consultation-booking/internal/model"
)

// ReviewRepo encapsulates database operations for consultation_reviews.
type ReviewRepo struct {
	db *sql.DB
}

// NewReviewRepo constructs a ReviewRepo given a DB handle.
func NewReviewRepo(db *sql.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// List returns all reviews in display order.
func (r *ReviewRepo) List(ctx context.Context) ([]model.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, client_name, client_company, client_photo, review_text, rating, display_order
		FROM consultation_reviews ORDER BY display_order ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]model.Review, 0)
	for rows.Next() {
		var (
			rv      model.Review
			company sql.NullString
			photo   sql.NullString
		)
		if err := rows.Scan(&rv.ID, &rv.ClientName, &company, &photo, &rv.ReviewText, &rv.Rating, &rv.DisplayOrder); err != nil {
			return nil, err
		}
		if company.Valid {
			rv.ClientCompany = &company.String
		}
		if photo.Valid {
			rv.ClientPhoto = &photo.String
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

// Create inserts a review and populates its ID.
func (r *ReviewRepo) Create(ctx context.Context, rv *model.Review) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO consultation_reviews
			(client_name, client_company, client_photo, review_text, rating, display_order)
		VALUES (?,?,?,?,?,?)`,
		rv.ClientName, rv.ClientCompany, rv.ClientPhoto, rv.ReviewText, rv.Rating, rv.DisplayOrder)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rv.ID = uint64(id)
	return nil
}

// Update replaces all editable fields of a review.
func (r *ReviewRepo) Update(ctx context.Context, rv *model.Review) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE consultation_reviews
		SET client_name = ?, client_company = ?, client_photo = ?, review_text = ?, rating = ?, display_order = ?
		WHERE id = ?`,
		rv.ClientName, rv.ClientCompany, rv.ClientPhoto, rv.ReviewText, rv.Rating, rv.DisplayOrder, rv.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx,
			`SELECT 1 FROM consultation_reviews WHERE id = ?`, rv.ID).Scan(&one); err == sql.ErrNoRows {
			return ErrReviewNotFound
		}
	}
	return nil
}

// Delete removes a review.
func (r *ReviewRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM consultation_reviews WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrReviewNotFound
	}
	return nil
}

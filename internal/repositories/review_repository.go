package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"ayudamosBack/internal/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

const reviewSelectColumns = `
	r.id, r.reviewer_id, r.service_id, r.rating, r.comment, r.images,
	u.first_name, u.last_name, u.profile_image,
	r.created_at, r.updated_at`

func scanReview(scan func(dest ...interface{}) error) (models.Review, error) {
	var (
		rev    models.Review
		images []byte
	)
	err := scan(&rev.ID, &rev.ReviewerID, &rev.ServiceID, &rev.Rating,
		&rev.Comment, &images,
		&rev.Reviewer.FirstName, &rev.Reviewer.LastName, &rev.Reviewer.ProfileImage,
		&rev.CreatedAt, &rev.UpdatedAt)
	if err != nil {
		return models.Review{}, err
	}
	rev.Images = decodeStringList(images)
	return rev, nil
}

// CreateReview inserts the review and refreshes the provider's rating
// aggregate in the same transaction, so readers never observe one without
// the other. A second review by the same user on the same service is
// rejected here, inside the transaction.
func (r *ReviewRepository) CreateReview(ctx context.Context, rev models.Review, providerID int) (models.Review, error) {
	images, err := encodeJSON(rev.Images)
	if err != nil {
		return models.Review{}, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Review{}, err
	}
	defer tx.Rollback()

	var existing int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reviews WHERE reviewer_id = ? AND service_id = ?`,
		rev.ReviewerID, rev.ServiceID).Scan(&existing)
	if err != nil {
		return models.Review{}, err
	}
	if existing > 0 {
		return models.Review{}, models.ErrAlreadyReviewed
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO reviews (reviewer_id, service_id, rating, comment, images, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, NOW(), NOW())`,
		rev.ReviewerID, rev.ServiceID, rev.Rating, rev.Comment, images)
	if err != nil {
		// Two first reviews racing past the COUNT check both reach the
		// insert; uq_reviews_reviewer_service stops the loser.
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return models.Review{}, models.ErrAlreadyReviewed
		}
		return models.Review{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Review{}, err
	}

	if err := recomputeProviderRating(ctx, tx, providerID); err != nil {
		return models.Review{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Review{}, err
	}
	return r.GetReviewByID(ctx, int(id))
}

func (r *ReviewRepository) GetReviewByID(ctx context.Context, id int) (models.Review, error) {
	query := `SELECT ` + reviewSelectColumns + `
		FROM reviews r
		JOIN users u ON r.reviewer_id = u.id
		WHERE r.id = ?`
	rev, err := scanReview(r.DB.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return models.Review{}, models.ErrReviewNotFound
	}
	if err != nil {
		return models.Review{}, err
	}
	return rev, nil
}

// UpdateReview rewrites the stored review and, when the star rating itself
// changed, re-runs the provider aggregate in the same transaction.
func (r *ReviewRepository) UpdateReview(ctx context.Context, rev models.Review, providerID int, ratingChanged bool) (models.Review, error) {
	images, err := encodeJSON(rev.Images)
	if err != nil {
		return models.Review{}, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Review{}, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE reviews SET rating = ?, comment = ?, images = ?, updated_at = NOW()
		WHERE id = ?`,
		rev.Rating, rev.Comment, images, rev.ID)
	if err != nil {
		return models.Review{}, err
	}
	if _, err := result.RowsAffected(); err != nil {
		return models.Review{}, err
	}

	if ratingChanged {
		if err := recomputeProviderRating(ctx, tx, providerID); err != nil {
			return models.Review{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return models.Review{}, err
	}
	return r.GetReviewByID(ctx, rev.ID)
}

// DeleteReview removes the review and refreshes the provider aggregate
// atomically; deleting a provider's last review NULLs the stored rating.
func (r *ReviewRepository) DeleteReview(ctx context.Context, id, providerID int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrReviewNotFound
	}

	if err := recomputeProviderRating(ctx, tx, providerID); err != nil {
		return err
	}
	return tx.Commit()
}

// ListByServiceID pages through a service's reviews newest first.
func (r *ReviewRepository) ListByServiceID(ctx context.Context, serviceID, page, limit int) ([]models.Review, int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reviews WHERE service_id = ?`, serviceID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + reviewSelectColumns + `
		FROM reviews r
		JOIN users u ON r.reviewer_id = u.id
		WHERE r.service_id = ?
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT ? OFFSET ?`
	rows, err := r.DB.QueryContext(ctx, query, serviceID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		rev, err := scanReview(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, total, rows.Err()
}

// ListByProviderID pages through every review left on any of the provider's
// services; each row carries the service title it was left on.
func (r *ReviewRepository) ListByProviderID(ctx context.Context, providerID, page, limit int) ([]models.Review, int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM reviews r
		JOIN services s ON r.service_id = s.id
		WHERE s.provider_id = ?`, providerID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + reviewSelectColumns + `, s.title
		FROM reviews r
		JOIN users u ON r.reviewer_id = u.id
		JOIN services s ON r.service_id = s.id
		WHERE s.provider_id = ?
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT ? OFFSET ?`
	rows, err := r.DB.QueryContext(ctx, query, providerID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var (
			rev    models.Review
			images []byte
		)
		if err := rows.Scan(&rev.ID, &rev.ReviewerID, &rev.ServiceID, &rev.Rating,
			&rev.Comment, &images,
			&rev.Reviewer.FirstName, &rev.Reviewer.LastName, &rev.Reviewer.ProfileImage,
			&rev.CreatedAt, &rev.UpdatedAt, &rev.ServiceTitle); err != nil {
			return nil, 0, err
		}
		rev.Images = decodeStringList(images)
		reviews = append(reviews, rev)
	}
	return reviews, total, rows.Err()
}

// GetServiceReviewStats summarizes a service's reviews: count, average
// rounded to one decimal, and a 1..5 star distribution with zero-filled
// buckets. An unreviewed service reports average 0.
func (r *ReviewRepository) GetServiceReviewStats(ctx context.Context, serviceID int) (models.ReviewStats, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT rating FROM reviews WHERE service_id = ?`, serviceID)
	if err != nil {
		return models.ReviewStats{}, err
	}
	defer rows.Close()

	ratings := []int{}
	for rows.Next() {
		var rating int
		if err := rows.Scan(&rating); err != nil {
			return models.ReviewStats{}, err
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return models.ReviewStats{}, err
	}

	stats := models.ReviewStats{
		Total:        len(ratings),
		Distribution: buildDistribution(ratings),
	}
	if len(ratings) > 0 {
		sum := 0
		for _, rating := range ratings {
			sum += rating
		}
		stats.Average = roundRating(float64(sum) / float64(len(ratings)))
	}
	return stats, nil
}

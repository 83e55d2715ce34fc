package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"ayudamosBack/internal/models"
)

func newMockDB(t *testing.T) (*ReviewRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return &ReviewRepository{DB: db}, mock
}

func reviewRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "reviewer_id", "service_id", "rating", "comment", "images",
		"first_name", "last_name", "profile_image", "created_at", "updated_at",
	})
}

func TestCreateReviewRejectsDuplicateInTx(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM reviews WHERE reviewer_id = ? AND service_id = ?`)).
		WithArgs(5, 10).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := repo.CreateReview(context.Background(),
		models.Review{ReviewerID: 5, ServiceID: 10, Rating: 4, Images: []string{}}, 3)
	if !errors.Is(err, models.ErrAlreadyReviewed) {
		t.Fatalf("err = %v, want ErrAlreadyReviewed", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// Two first reviews racing past the COUNT check both reach the insert; the
// unique key stops the loser and the caller still sees the duplicate error,
// not a 500.
func TestCreateReviewDuplicateKeyRace(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM reviews WHERE reviewer_id = ? AND service_id = ?`)).
		WithArgs(5, 10).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO reviews`)).
		WillReturnError(&mysql.MySQLError{
			Number:  1062,
			Message: "Duplicate entry '5-10' for key 'uq_reviews_reviewer_service'",
		})
	mock.ExpectRollback()

	_, err := repo.CreateReview(context.Background(),
		models.Review{ReviewerID: 5, ServiceID: 10, Rating: 4, Images: []string{}}, 3)
	if !errors.Is(err, models.ErrAlreadyReviewed) {
		t.Fatalf("err = %v, want ErrAlreadyReviewed", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// A new review and the provider's refreshed aggregate commit together, with
// the average rounded to one decimal.
func TestCreateReviewRefreshesProviderAggregate(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM reviews WHERE reviewer_id = ? AND service_id = ?`)).
		WithArgs(5, 10).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO reviews`)).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT AVG(r.rating), COUNT(*)`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(4.25, 2))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET rating = ?, total_reviews = ?, updated_at = NOW() WHERE id = ?`)).
		WithArgs(4.3, 2, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`(?s)SELECT.+FROM reviews r\s+JOIN users u`).
		WithArgs(7).
		WillReturnRows(reviewRows().AddRow(
			7, 5, 10, 4, "great work", []byte(`[]`),
			"Ana", "Diaz", nil, time.Now(), nil))

	rev, err := repo.CreateReview(context.Background(),
		models.Review{ReviewerID: 5, ServiceID: 10, Rating: 4, Comment: nil, Images: []string{}}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if rev.ID != 7 {
		t.Errorf("ID = %d, want 7", rev.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// Deleting a provider's last review clears the stored rating to NULL
// instead of leaving a stale 0.
func TestDeleteLastReviewClearsRating(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM reviews WHERE id = ?`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT AVG(r.rating), COUNT(*)`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(nil, 0))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET rating = NULL, total_reviews = 0, updated_at = NOW() WHERE id = ?`)).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeleteReview(context.Background(), 7, 3); err != nil {
		t.Fatal(err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestDeleteReviewMissing(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM reviews WHERE id = ?`)).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if err := repo.DeleteReview(context.Background(), 99, 3); !errors.Is(err, models.ErrReviewNotFound) {
		t.Fatalf("err = %v, want ErrReviewNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

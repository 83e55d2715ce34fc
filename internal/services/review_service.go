package services

import (
	"context"

	"ayudamosBack/internal/models"
)

// ReviewStore is the slice of the review repository the review rules need;
// *repositories.ReviewRepository satisfies it.
type ReviewStore interface {
	CreateReview(ctx context.Context, rev models.Review, providerID int) (models.Review, error)
	GetReviewByID(ctx context.Context, id int) (models.Review, error)
	UpdateReview(ctx context.Context, rev models.Review, providerID int, ratingChanged bool) (models.Review, error)
	DeleteReview(ctx context.Context, id, providerID int) error
	ListByServiceID(ctx context.Context, serviceID, page, limit int) ([]models.Review, int, error)
	ListByProviderID(ctx context.Context, providerID, page, limit int) ([]models.Review, int, error)
	GetServiceReviewStats(ctx context.Context, serviceID int) (models.ReviewStats, error)
}

// ServiceRowFinder resolves the bare service row for ownership and
// self-review checks.
type ServiceRowFinder interface {
	GetServiceRow(ctx context.Context, id int) (models.Service, error)
}

type ReviewService struct {
	ReviewRepo  ReviewStore
	ServiceRepo ServiceRowFinder
}

// CreateReview stores a 1-5 star review on a service. A provider cannot
// review their own listing, and each user gets at most one review per
// service.
func (s *ReviewService) CreateReview(ctx context.Context, reviewerID int, req models.CreateReviewRequest) (models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return models.Review{}, models.ErrInvalidRating
	}
	service, err := s.ServiceRepo.GetServiceRow(ctx, req.ServiceID)
	if err != nil {
		return models.Review{}, err
	}
	if service.ProviderID == reviewerID {
		return models.Review{}, models.ErrOwnServiceReview
	}

	review := models.Review{
		ReviewerID: reviewerID,
		ServiceID:  req.ServiceID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Images:     req.Images,
	}
	if review.Images == nil {
		review.Images = []string{}
	}
	return s.ReviewRepo.CreateReview(ctx, review, service.ProviderID)
}

// applyReviewUpdate merges a partial update into the stored review and
// reports whether the star rating moved.
func applyReviewUpdate(rev models.Review, req models.UpdateReviewRequest) (models.Review, bool, error) {
	ratingChanged := false
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return models.Review{}, false, models.ErrInvalidRating
		}
		ratingChanged = *req.Rating != rev.Rating
		rev.Rating = *req.Rating
	}
	if req.Comment != nil {
		rev.Comment = req.Comment
	}
	if req.Images != nil {
		rev.Images = *req.Images
	}
	return rev, ratingChanged, nil
}

// UpdateReview lets the author revise their review. The provider aggregate
// is recomputed only when the rating actually changed.
func (s *ReviewService) UpdateReview(ctx context.Context, id, userID int, req models.UpdateReviewRequest) (models.Review, error) {
	rev, err := s.ReviewRepo.GetReviewByID(ctx, id)
	if err != nil {
		return models.Review{}, err
	}
	if rev.ReviewerID != userID {
		return models.Review{}, models.ErrNotReviewAuthor
	}
	service, err := s.ServiceRepo.GetServiceRow(ctx, rev.ServiceID)
	if err != nil {
		return models.Review{}, err
	}

	updated, ratingChanged, err := applyReviewUpdate(rev, req)
	if err != nil {
		return models.Review{}, err
	}
	return s.ReviewRepo.UpdateReview(ctx, updated, service.ProviderID, ratingChanged)
}

// DeleteReview removes the author's review and refreshes the provider
// aggregate.
func (s *ReviewService) DeleteReview(ctx context.Context, id, userID int) error {
	rev, err := s.ReviewRepo.GetReviewByID(ctx, id)
	if err != nil {
		return err
	}
	if rev.ReviewerID != userID {
		return models.ErrNotReviewAuthor
	}
	service, err := s.ServiceRepo.GetServiceRow(ctx, rev.ServiceID)
	if err != nil {
		return err
	}
	return s.ReviewRepo.DeleteReview(ctx, id, service.ProviderID)
}

func (s *ReviewService) ListServiceReviews(ctx context.Context, serviceID, page, limit int) (models.ReviewListResponse, error) {
	if _, err := s.ServiceRepo.GetServiceRow(ctx, serviceID); err != nil {
		return models.ReviewListResponse{}, err
	}
	page, limit = normalizePage(page, limit)
	reviews, total, err := s.ReviewRepo.ListByServiceID(ctx, serviceID, page, limit)
	if err != nil {
		return models.ReviewListResponse{}, err
	}
	return models.ReviewListResponse{
		Reviews:    reviews,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

func (s *ReviewService) ListProviderReviews(ctx context.Context, providerID, page, limit int) (models.ReviewListResponse, error) {
	page, limit = normalizePage(page, limit)
	reviews, total, err := s.ReviewRepo.ListByProviderID(ctx, providerID, page, limit)
	if err != nil {
		return models.ReviewListResponse{}, err
	}
	return models.ReviewListResponse{
		Reviews:    reviews,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// GetServiceStats summarizes a service's reviews. An id with no reviews,
// including one that never existed, reports zeroed stats rather than an
// error.
func (s *ReviewService) GetServiceStats(ctx context.Context, serviceID int) (models.ReviewStats, error) {
	return s.ReviewRepo.GetServiceReviewStats(ctx, serviceID)
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

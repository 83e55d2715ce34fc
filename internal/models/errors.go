package models

import (
	"errors"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicatePhone     = errors.New("phone already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPassword    = errors.New("current password is incorrect")
	ErrPasswordTooShort   = errors.New("new password must be at least 6 characters")
	ErrMissingFields      = errors.New("all required fields must be provided")

	ErrCategoryNotFound  = errors.New("category not found")
	ErrServiceNotFound   = errors.New("service not found")
	ErrNotServiceOwner   = errors.New("service belongs to another user")
	ErrPriceRange        = errors.New("min price cannot exceed max price")

	ErrReviewNotFound   = errors.New("review not found")
	ErrNotReviewAuthor  = errors.New("review belongs to another user")
	ErrAlreadyReviewed  = errors.New("service already reviewed by this user")
	ErrOwnServiceReview = errors.New("cannot review own service")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")

	ErrPortfolioNotFound = errors.New("portfolio entry not found")

	ErrNoFiles          = errors.New("no files were uploaded")
	ErrTooManyFiles     = errors.New("too many files in one request")
	ErrFileTooLarge     = errors.New("file exceeds the maximum allowed size")
	ErrBadFileType      = errors.New("only JPEG, PNG and WebP images are allowed")
	ErrInvalidFilename  = errors.New("invalid file name")
)

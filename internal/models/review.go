package models

import (
	"time"
)

type Review struct {
	ID           int        `json:"id"`
	ReviewerID   int        `json:"reviewer_id"`
	ServiceID    int        `json:"service_id"`
	Rating       int        `json:"rating"`
	Comment      *string    `json:"comment"`
	Images       []string   `json:"images"`
	Reviewer     Reviewer   `json:"reviewer"`
	ServiceTitle string     `json:"service_title,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// Reviewer is the display subset of the authoring user.
type Reviewer struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

type CreateReviewRequest struct {
	ServiceID int      `json:"service_id"`
	Rating    int      `json:"rating"`
	Comment   *string  `json:"comment"`
	Images    []string `json:"images"`
}

type UpdateReviewRequest struct {
	Rating  *int      `json:"rating"`
	Comment *string   `json:"comment"`
	Images  *[]string `json:"images"`
}

type ReviewListResponse struct {
	Reviews    []Review   `json:"reviews"`
	Pagination Pagination `json:"pagination"`
}

// ReviewStats always carries every star bucket, zero-filled.
type ReviewStats struct {
	Total        int         `json:"total"`
	Average      float64     `json:"average"`
	Distribution map[int]int `json:"distribution"`
}

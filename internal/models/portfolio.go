package models

import (
	"time"
)

type Portfolio struct {
	ID          int        `json:"id"`
	ServiceID   int        `json:"service_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Images      []string   `json:"images"`
	Link        *string    `json:"link"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type CreatePortfolioRequest struct {
	ServiceID   int        `json:"service_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Images      []string   `json:"images"`
	Link        *string    `json:"link"`
	CompletedAt *time.Time `json:"completed_at"`
}

type UpdatePortfolioRequest struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Images      *[]string   `json:"images"`
	Link        *string     `json:"link"`
	CompletedAt *time.Time  `json:"completed_at"`
}

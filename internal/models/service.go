package models

import (
	"encoding/json"
	"time"
)

// HourRange is a weekday availability window, e.g. {"from":"09:00","to":"18:00"}.
type HourRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Service struct {
	ID             int                  `json:"id"`
	ProviderID     int                  `json:"provider_id"`
	CategoryID     int                  `json:"category_id"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Location       string               `json:"location"`
	MinPrice       *float64             `json:"min_price"`
	MaxPrice       *float64             `json:"max_price"`
	Images         []string             `json:"images"`
	ServiceAreas   []string             `json:"service_areas"`
	AvailableHours map[string]HourRange `json:"available_hours"`
	IsActive       bool                 `json:"is_active"`
	Views          int                  `json:"views"`
	Provider       ProviderSummary      `json:"provider"`
	Category       CategorySummary      `json:"category"`
	Reviews        []Review             `json:"reviews,omitempty"`
	Portfolios     []Portfolio          `json:"portfolios,omitempty"`
	ContactLogs    []ContactLog         `json:"contact_logs,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      *time.Time           `json:"updated_at,omitempty"`
}

type ProviderSummary struct {
	ID           int        `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Phone        string     `json:"phone"`
	Email        string     `json:"email"`
	ProfileImage *string    `json:"profile_image,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Rating       *float64   `json:"rating"`
	TotalReviews int        `json:"total_reviews"`
	IsVerified   bool       `json:"is_verified"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

type CategorySummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// ServiceFilter is the parsed query of GET /api/services.
type ServiceFilter struct {
	CategoryID   int
	Search       string
	Location     string
	MinPrice     *float64
	MaxPrice     *float64
	VerifiedOnly bool
	Page         int
	Limit        int
	SortBy       string
}

type ServiceListResponse struct {
	Services   []Service  `json:"services"`
	Pagination Pagination `json:"pagination"`
}

type CreateServiceRequest struct {
	CategoryID     int                  `json:"category_id"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Location       string               `json:"location"`
	MinPrice       *float64             `json:"min_price"`
	MaxPrice       *float64             `json:"max_price"`
	Images         []string             `json:"images"`
	ServiceAreas   []string             `json:"service_areas"`
	AvailableHours map[string]HourRange `json:"available_hours"`
}

// OptFloat distinguishes an absent update field from an explicit null, so a
// client can clear a price without tripping the usual "nil means untouched"
// pointer convention.
type OptFloat struct {
	Set   bool
	Value *float64
}

func (o *OptFloat) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// UpdateServiceRequest is a partial update: nil (or unset) fields leave the
// stored value untouched.
type UpdateServiceRequest struct {
	Title          *string               `json:"title"`
	Description    *string               `json:"description"`
	Location       *string               `json:"location"`
	MinPrice       OptFloat              `json:"min_price"`
	MaxPrice       OptFloat              `json:"max_price"`
	Images         *[]string             `json:"images"`
	ServiceAreas   *[]string             `json:"service_areas"`
	AvailableHours *map[string]HourRange `json:"available_hours"`
	IsActive       *bool                 `json:"is_active"`
}

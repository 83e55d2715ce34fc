package models

import (
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	UserTypeClient   = "CLIENT"
	UserTypeProvider = "PROVIDER"
	UserTypeBoth     = "BOTH"
)

type User struct {
	ID           int        `json:"id"`
	Email        string     `json:"email"`
	Password     string     `json:"password,omitempty"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Phone        string     `json:"phone"`
	UserType     string     `json:"user_type"`
	IsVerified   bool       `json:"is_verified"`
	Rating       *float64   `json:"rating"`
	TotalReviews int        `json:"total_reviews"`
	Location     *string    `json:"location,omitempty"`
	Description  *string    `json:"description,omitempty"`
	ProfileImage *string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type Claims struct {
	UserID int `json:"user_id"`
	jwt.StandardClaims
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest carries only the fields the client actually sent;
// a nil field is "not supplied", never "reset".
type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Phone        *string `json:"phone"`
	Location     *string `json:"location"`
	Description  *string `json:"description"`
	ProfileImage *string `json:"profile_image"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

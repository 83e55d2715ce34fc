package models

import (
	"time"
)

// ContactLog records a client's intent to reach a provider off-platform.
// Append-only; creating one bumps the service view counter.
type ContactLog struct {
	ID            int       `json:"id"`
	ClientID      int       `json:"client_id"`
	ServiceID     int       `json:"service_id"`
	ContactMethod string    `json:"contact_method"`
	ClientName    string    `json:"client_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

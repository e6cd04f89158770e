package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User rows are created by the external auth provider; this service only
// reads them and, for admins, updates or deletes them.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"emailVerified"`
	Image         *string   `json:"image"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

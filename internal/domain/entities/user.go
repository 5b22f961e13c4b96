package entities

import "time"

type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// ParseRole falls back to RoleClient for anything that is not "admin".
func ParseRole(raw string) Role {
	if Role(raw) == RoleAdmin {
		return RoleAdmin
	}
	return RoleClient
}

// User is the profile document keyed by the auth provider uid.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Phone       string    `json:"phone,omitempty"`
	Company     string    `json:"company,omitempty"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfileUpdate holds the fields a user may edit on their own profile.
type ProfileUpdate struct {
	DisplayName string
	Phone       string
	Company     string
}

// Principal is the authenticated caller as seen by the usecases.
type Principal struct {
	ID          string
	Email       string
	DisplayName string
	Role        Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p Principal) Actor() Actor {
	return Actor{ID: p.ID, Name: p.DisplayName}
}

// CanView reports whether p may read the order and its thread.
func (p Principal) CanView(o Order) bool {
	return p.IsAdmin() || o.IsOwnedBy(p.ID)
}

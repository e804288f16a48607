package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleSuperAdmin Role = "super-admin"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
	RoleGuest      Role = "guest"
)

// Identity represents the authenticated principal returned by the platform API
// on a successful credential login, together with the issued bearer token.
type Identity struct {
	UserID    string
	Name      string
	Email     string
	Phone     string
	Role      string // raw role string from the API; mapped to Role by an adapter
	AvatarURL string
	Token     string
	IssuedAt  time.Time
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier (e.g., random URL-safe string).
// Token is the platform API bearer token; User fields and Token are written
// and deleted as a single record, so neither can outlive the other.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Token     string    `json:"token"`
	Theme     string    `json:"theme,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsGuest returns true if the session role is guest.
func (s Session) IsGuest() bool { return s.Role == RoleGuest }

// IsAdmin returns true for roles allowed into the admin console.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin || s.Role == RoleSuperAdmin }

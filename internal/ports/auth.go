package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters and internal/apiclient;
// orchestration in internal/service.

import (
	"context"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	domainauth "github.com/adhyanguru/admin-go/internal/domain/auth"
	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// CredentialAuthenticator exchanges credentials for a bearer token against
// the platform API and invalidates tokens on logout.
type CredentialAuthenticator interface {
	// Login exchanges an identifier/password pair for a token and profile.
	Login(ctx context.Context, identifier, password string) (*apiclient.LoginResult, error)

	// Signup creates a new admin account; it does not issue a token.
	Signup(ctx context.Context, in apiclient.SignupInput, picture *apiclient.FileUpload) (*model.User, error)

	// Logout invalidates the bearer token server-side.
	Logout(ctx context.Context, token string) error
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// RoleMapper maps the platform API's raw role string to an application role.
type RoleMapper interface {
	Map(role string) domainauth.Role
}

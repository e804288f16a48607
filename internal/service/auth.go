package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	domainauth "github.com/adhyanguru/admin-go/internal/domain/auth"
	"github.com/adhyanguru/admin-go/internal/domain/model"
	"github.com/adhyanguru/admin-go/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Authenticator ports.CredentialAuthenticator
	Sessions      ports.SessionStore
	Roles         ports.RoleMapper
	SessionTTL    time.Duration
	Logger        *slog.Logger
}

// AuthService orchestrates credential login against the platform API and
// session persistence. A session only ever exists fully formed: profile
// and bearer token are saved as one record, and deleted as one record.
type AuthService struct {
	authenticator ports.CredentialAuthenticator
	sessions      ports.SessionStore
	roles         ports.RoleMapper
	sessionTTL    time.Duration
	logger        *slog.Logger
}

var errSessionExpired = errors.New("session expired")

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		authenticator: opts.Authenticator,
		sessions:      opts.Sessions,
		roles:         opts.Roles,
		sessionTTL:    ttl,
		logger:        logger,
	}
}

// Login exchanges credentials for a bearer token and persists a new
// session. On any failure no session state is left behind.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*domainauth.Session, error) {
	if identifier == "" || password == "" {
		return nil, errors.New("identifier and password are required")
	}

	result, err := s.authenticator.Login(ctx, identifier, password)
	if err != nil {
		return nil, err
	}
	if result.Token == "" {
		return nil, errors.New("platform api returned no token")
	}

	session := domainauth.Session{
		ID:        generateSessionID(),
		UserID:    result.User.ID,
		Name:      result.User.DisplayName(),
		Email:     result.User.Email,
		Role:      s.roles.Map(result.User.Role),
		AvatarURL: result.User.ProfilePicture,
		Token:     result.Token,
		Theme:     model.DefaultThemeID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}
	return &session, nil
}

// SignupInput carries the self-service signup form fields.
type SignupInput struct {
	Email          string
	MobileNumber   string
	Password       string
	FirstName      string
	LastName       string
	ProfilePicture *apiclient.FileUpload
}

// Signup creates the account, then logs in with the same credentials so the
// new user lands authenticated. No partial-success state is retained: if
// either step fails the caller gets an error and no session exists.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*domainauth.Session, error) {
	_, err := s.authenticator.Signup(ctx, apiclient.SignupInput{
		Email:        in.Email,
		MobileNumber: in.MobileNumber,
		Password:     in.Password,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	}, in.ProfilePicture)
	if err != nil {
		return nil, err
	}

	return s.Login(ctx, in.Email, in.Password)
}

// GetSession rehydrates a session by ID with a single store read; the
// bearer token is trusted without a platform API round trip.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	// Check if session is expired
	if time.Now().After(session.ExpiresAt) {
		// Clean up expired session
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	return &session, nil
}

// Logout invalidates the bearer token best-effort, then unconditionally
// deletes the session record. A platform API failure is logged and
// swallowed so the client can never get stuck authenticated.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}

	if session, err := s.sessions.Get(ctx, sessionID); err == nil && session.Token != "" {
		if logoutErr := s.authenticator.Logout(ctx, session.Token); logoutErr != nil {
			s.logger.WarnContext(ctx, "platform logout failed", "error", logoutErr)
		}
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// SetTheme persists the selected palette on the session record.
// Reselecting the active theme re-saves the record.
func (s *AuthService) SetTheme(ctx context.Context, sessionID, themeID string) (*domainauth.Session, error) {
	if _, ok := model.ThemeByID(themeID); !ok {
		return nil, fmt.Errorf("unknown theme %q", themeID)
	}

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Theme = themeID
	if saveErr := s.sessions.Save(ctx, *session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}
	return session, nil
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	// Use UUID for session ID - it's URL-safe and has good entropy
	id := uuid.New()
	return id.String()
}

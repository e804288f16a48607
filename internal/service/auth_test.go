package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	domainauth "github.com/adhyanguru/admin-go/internal/domain/auth"
	"github.com/adhyanguru/admin-go/internal/domain/model"
	"github.com/adhyanguru/admin-go/internal/mocks"
)

type authMocks struct {
	authenticator *mocks.MockCredentialAuthenticator
	sessions      *mocks.MockSessionStore
	roles         *mocks.MockRoleMapper
}

func newAuthService(t *testing.T) (*AuthService, authMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := authMocks{
		authenticator: mocks.NewMockCredentialAuthenticator(ctrl),
		sessions:      mocks.NewMockSessionStore(ctrl),
		roles:         mocks.NewMockRoleMapper(ctrl),
	}
	svc := NewAuthService(AuthServiceOptions{
		Authenticator: m.authenticator,
		Sessions:      m.sessions,
		Roles:         m.roles,
		SessionTTL:    time.Hour,
	})
	return svc, m
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()
	svc, m := newAuthService(t)

	m.authenticator.EXPECT().
		Login(gomock.Any(), "admin@example.com", "secret").
		Return(&apiclient.LoginResult{
			Token: "tok-123",
			User: model.User{
				ID:        "u1",
				Email:     "admin@example.com",
				FirstName: "Asha",
				LastName:  "Nair",
				Role:      "superAdmin",
			},
		}, nil)
	m.roles.EXPECT().Map("superAdmin").Return(domainauth.RoleSuperAdmin)

	var saved domainauth.Session
	m.sessions.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sess domainauth.Session) error {
			saved = sess
			return nil
		})

	session, err := svc.Login(context.Background(), "admin@example.com", "secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "tok-123", session.Token)
	assert.Equal(t, "Asha Nair", session.Name)
	assert.Equal(t, domainauth.RoleSuperAdmin, session.Role)
	assert.Equal(t, model.DefaultThemeID, session.Theme)
	assert.Equal(t, saved.ID, session.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, time.Minute)
}

func TestAuthService_Login_MissingCredentials(t *testing.T) {
	t.Parallel()
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), "", "secret")
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), "admin@example.com", "")
	assert.Error(t, err)
}

func TestAuthService_Login_NoToken(t *testing.T) {
	t.Parallel()
	svc, m := newAuthService(t)

	m.authenticator.EXPECT().
		Login(gomock.Any(), "admin@example.com", "secret").
		Return(&apiclient.LoginResult{User: model.User{ID: "u1"}}, nil)

	_, err := svc.Login(context.Background(), "admin@example.com", "secret")
	assert.Error(t, err)
}

func TestAuthService_Login_SaveFails(t *testing.T) {
	t.Parallel()
	svc, m := newAuthService(t)

	m.authenticator.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&apiclient.LoginResult{Token: "tok", User: model.User{ID: "u1"}}, nil)
	m.roles.EXPECT().Map(gomock.Any()).Return(domainauth.RoleAdmin)
	m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	_, err := svc.Login(context.Background(), "admin@example.com", "secret")
	assert.ErrorContains(t, err, "save session")
}

func TestAuthService_Signup_LogsInAfterCreate(t *testing.T) {
	t.Parallel()
	svc, m := newAuthService(t)

	in := SignupInput{
		Email:        "new@example.com",
		MobileNumber: "9000000000",
		Password:     "secret12",
		FirstName:    "New",
	}

	m.authenticator.EXPECT().
		Signup(gomock.Any(), apiclient.SignupInput{
			Email:        in.Email,
			MobileNumber: in.MobileNumber,
			Password:     in.Password,
			FirstName:    in.FirstName,
		}, nil).
		Return(&model.User{ID: "u2", Email: in.Email}, nil)
	m.authenticator.EXPECT().
		Login(gomock.Any(), in.Email, in.Password).
		Return(&apiclient.LoginResult{Token: "tok", User: model.User{ID: "u2", Email: in.Email, Role: "admin"}}, nil)
	m.roles.EXPECT().Map("admin").Return(domainauth.RoleAdmin)
	m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	session, err := svc.Signup(context.Background(), in)
	assert.NoError(t, err)
	assert.Equal(t, "u2", session.UserID)
}

func TestAuthService_Signup_CreateFails(t *testing.T) {
	t.Parallel()
	svc, m := newAuthService(t)

	m.authenticator.EXPECT().
		Signup(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("email taken"))

	_, err := svc.Signup(context.Background(), SignupInput{Email: "dup@example.com", Password: "x"})
	assert.Error(t, err)
}

func TestAuthService_GetSession(t *testing.T) {
	t.Parallel()
	svc, m := newAuthService(t)

	stored := domainauth.Session{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}
	m.sessions.EXPECT().Get(gomock.Any(), "s1").Return(stored, nil)

	session, err := svc.GetSession(context.Background(), "s1")
	assert.NoError(t, err)
	assert.Equal(t, "u1", session.UserID)
}

func TestAuthService_GetSession_ExpiredIsDeleted(t *testing.T) {
	t.Parallel()
	svc, m := newAuthService(t)

	stored := domainauth.Session{ID: "s1", ExpiresAt: time.Now().Add(-time.Minute)}
	m.sessions.EXPECT().Get(gomock.Any(), "s1").Return(stored, nil)
	m.sessions.EXPECT().Delete(gomock.Any(), "s1").Return(nil)

	_, err := svc.GetSession(context.Background(), "s1")
	assert.ErrorIs(t, err, errSessionExpired)
}

func TestAuthService_Logout_SwallowsPlatformFailure(t *testing.T) {
	t.Parallel()
	svc, m := newAuthService(t)

	stored := domainauth.Session{ID: "s1", Token: "tok"}
	m.sessions.EXPECT().Get(gomock.Any(), "s1").Return(stored, nil)
	m.authenticator.EXPECT().Logout(gomock.Any(), "tok").Return(errors.New("api unreachable"))
	m.sessions.EXPECT().Delete(gomock.Any(), "s1").Return(nil)

	assert.NoError(t, svc.Logout(context.Background(), "s1"))
}

func TestAuthService_Logout_EmptyIDIsNoop(t *testing.T) {
	t.Parallel()
	svc, _ := newAuthService(t)
	assert.NoError(t, svc.Logout(context.Background(), ""))
}

func TestAuthService_SetTheme(t *testing.T) {
	t.Parallel()
	svc, m := newAuthService(t)

	stored := domainauth.Session{ID: "s1", Theme: model.DefaultThemeID, ExpiresAt: time.Now().Add(time.Hour)}
	m.sessions.EXPECT().Get(gomock.Any(), "s1").Return(stored, nil)
	m.sessions.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sess domainauth.Session) error {
			assert.Equal(t, "dark", sess.Theme)
			return nil
		})

	session, err := svc.SetTheme(context.Background(), "s1", "dark")
	assert.NoError(t, err)
	assert.Equal(t, "dark", session.Theme)
}

func TestAuthService_SetTheme_UnknownTheme(t *testing.T) {
	t.Parallel()
	svc, _ := newAuthService(t)

	_, err := svc.SetTheme(context.Background(), "s1", "neon")
	assert.Error(t, err)
}

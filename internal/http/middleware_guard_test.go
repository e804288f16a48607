package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/adhyanguru/admin-go/internal/domain/auth"
	"github.com/adhyanguru/admin-go/internal/service"
)

// stubAuthService satisfies AuthServiceInterface with a fixed session map.
type stubAuthService struct {
	sessions map[string]*domainauth.Session
}

func (s *stubAuthService) Login(context.Context, string, string) (*domainauth.Session, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) Signup(context.Context, service.SignupInput) (*domainauth.Session, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) GetSession(_ context.Context, id string) (*domainauth.Session, error) {
	if sess, ok := s.sessions[id]; ok {
		return sess, nil
	}
	return nil, errors.New("session not found")
}

func (s *stubAuthService) Logout(context.Context, string) error { return nil }

func (s *stubAuthService) SetTheme(context.Context, string, string) (*domainauth.Session, error) {
	return nil, errors.New("not implemented")
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuthBrowser_RedirectsAnonymousBrowser(t *testing.T) {
	t.Parallel()
	handler := RequireAuthBrowser(&stubAuthService{})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/users?q=asha", nil)
	req.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fusers%3Fq%3Dasha", w.Header().Get("Location"))
}

func TestRequireAuthBrowser_HTMXGetsHxRedirect(t *testing.T) {
	t.Parallel()
	handler := RequireAuthBrowser(&stubAuthService{})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Hx-Request", "true")
	req.Header.Set("Hx-Current-Url", "http://localhost:8080/users")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fusers", w.Header().Get("Hx-Redirect"))
}

func TestRequireAuthBrowser_NonBrowserGets401(t *testing.T) {
	t.Parallel()
	handler := RequireAuthBrowser(&stubAuthService{})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthBrowser_ValidSessionPassesThrough(t *testing.T) {
	t.Parallel()
	svc := &stubAuthService{sessions: map[string]*domainauth.Session{
		"s1": {ID: "s1", Role: domainauth.RoleUser},
	}}
	var sawSession bool
	handler := RequireAuthBrowser(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawSession = GetSessionFromContext(r.Context()) != nil
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Accept", "text/html")
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "s1"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, sawSession)
}

func TestRequireRoleBrowser_RoleHierarchy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		role     domainauth.Role
		required domainauth.Role
		want     int
	}{
		{"user blocked from admin route", domainauth.RoleUser, domainauth.RoleAdmin, http.StatusForbidden},
		{"admin allowed on admin route", domainauth.RoleAdmin, domainauth.RoleAdmin, http.StatusOK},
		{"super admin allowed on admin route", domainauth.RoleSuperAdmin, domainauth.RoleAdmin, http.StatusOK},
		{"guest blocked from user route", domainauth.RoleGuest, domainauth.RoleUser, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubAuthService{sessions: map[string]*domainauth.Session{
				"s1": {ID: "s1", Role: tt.role},
			}}
			handler := RequireRoleBrowser(svc, tt.required)(okHandler())

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			req.Header.Set("Accept", "text/html")
			req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "s1"})
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRedirectIfAuthenticated(t *testing.T) {
	t.Parallel()
	svc := &stubAuthService{sessions: map[string]*domainauth.Session{
		"s1": {ID: "s1", Role: domainauth.RoleAdmin},
	}}
	handler := RedirectIfAuthenticated(svc)(okHandler())

	// Signed-in user hitting /login is sent to the dashboard.
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "s1"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	// Anonymous user reaches the login page normally.
	req = httptest.NewRequest(http.MethodGet, "/login", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

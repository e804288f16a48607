package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCSRFHandler() http.Handler {
	cfg := CSRFConfig{
		CookieName:    DefaultCSRFCookieName,
		HeaderName:    DefaultCSRFHeaderName,
		FormFieldName: DefaultCSRFCookieName,
		TokenLength:   DefaultCSRFTokenLength,
	}
	return CSRFProtection(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("saved"))
	}))
}

func csrfCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	resp := rec.Result()
	defer resp.Body.Close()
	for _, c := range resp.Cookies() {
		if c.Name == DefaultCSRFCookieName {
			return c
		}
	}
	return nil
}

// issueCSRFToken performs the initial GET a browser would make and returns
// the token the middleware minted.
func issueCSRFToken(t *testing.T, handler http.Handler) string {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/board", nil))
	c := csrfCookieFrom(t, rec)
	require.NotNil(t, c, "token cookie not issued on GET")
	require.NotEmpty(t, c.Value)
	return c.Value
}

func TestCSRFProtection_GetIssuesTokenAndExposesItInContext(t *testing.T) {
	t.Parallel()

	cfg := CSRFConfig{CookieName: DefaultCSRFCookieName, TokenLength: DefaultCSRFTokenLength}
	var seen string
	handler := CSRFProtection(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetCSRFToken(r)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/board", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	c := csrfCookieFrom(t, rec)
	require.NotNil(t, c)
	// Templates read the token from context; it must match the cookie.
	assert.Equal(t, c.Value, seen)
	assert.NotEmpty(t, seen)
}

func TestCSRFProtection_MutationsRequireMatchingToken(t *testing.T) {
	t.Parallel()

	handler := newCSRFHandler()
	token := issueCSRFToken(t, handler)

	tests := []struct {
		name    string
		request func() *http.Request
		want    int
	}{
		{
			name: "no token",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/board", nil)
			},
			want: http.StatusForbidden,
		},
		{
			name: "header token matches cookie",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/board", nil)
				req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: token})
				req.Header.Set(DefaultCSRFHeaderName, token)
				return req
			},
			want: http.StatusOK,
		},
		{
			name: "form field token matches cookie",
			request: func() *http.Request {
				form := url.Values{DefaultCSRFCookieName: {token}}
				req := httptest.NewRequest(http.MethodPost, "/board", strings.NewReader(form.Encode()))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: token})
				return req
			},
			want: http.StatusOK,
		},
		{
			name: "header token mismatch",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/board", nil)
				req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: token})
				req.Header.Set(DefaultCSRFHeaderName, "forged")
				return req
			},
			want: http.StatusForbidden,
		},
		{
			name: "json body needs the header",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/board", strings.NewReader(`{"name":"CBSE"}`))
				req.Header.Set("Content-Type", "application/json")
				req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: token})
				return req
			},
			want: http.StatusForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, tt.request())
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestCSRFProtection_SafeMethodsExempt(t *testing.T) {
	t.Parallel()

	handler := newCSRFHandler()
	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		t.Run(method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(method, "/board", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestCSRFProtection_CookieAttributes(t *testing.T) {
	t.Parallel()

	cfg := CSRFConfig{
		CookieName:   DefaultCSRFCookieName,
		CookieDomain: "admin.adhyan.local",
		TokenLength:  DefaultCSRFTokenLength,
	}
	handler := CSRFProtection(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "https://admin.adhyan.local/board", nil))

	c := csrfCookieFrom(t, rec)
	require.NotNil(t, c)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	// The hx-headers snippet in the layout reads this cookie from script.
	assert.False(t, c.HttpOnly)
	assert.Equal(t, "admin.adhyan.local", c.Domain)
	assert.Equal(t, "/", c.Path)
}

func TestCSRFProtection_SecureBehindProxy(t *testing.T) {
	t.Parallel()

	handler := newCSRFHandler()
	req := httptest.NewRequest(http.MethodGet, "http://admin.adhyan.local/board", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	c := csrfCookieFrom(t, rec)
	require.NotNil(t, c)
	assert.True(t, c.Secure)
}

func TestCSRFProtection_ExistingTokenNotReissued(t *testing.T) {
	t.Parallel()

	handler := newCSRFHandler()
	token := issueCSRFToken(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/board", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCSRFCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Nil(t, csrfCookieFrom(t, rec), "token cookie must not be reissued while one exists")
}

func TestGetCSRFToken_NoToken(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetCSRFToken(httptest.NewRequest(http.MethodGet, "/board", nil)))
}

package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	domainauth "github.com/adhyanguru/admin-go/internal/domain/auth"
	"github.com/adhyanguru/admin-go/internal/http/validation"
	"github.com/adhyanguru/admin-go/internal/service"
)

// sessionCookieName is the browser cookie carrying the session ID.
const sessionCookieName = "session_id"

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	Login(ctx context.Context, identifier, password string) (*domainauth.Session, error)
	Signup(ctx context.Context, in service.SignupInput) (*domainauth.Session, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
	SetTheme(ctx context.Context, sessionID, themeID string) (*domainauth.Session, error)
}

// AuthHandlers provides HTTP handlers for the credential login and signup pages.
type AuthHandlers struct {
	Svc           AuthServiceInterface
	T             *TemplateRenderer
	CookieDomain  string
	SignupEnabled bool
	Logger        *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// LoginPage renders the sign-in form.
// GET /login?redirect_uri=<optional_redirect>.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := basePageData(r, PageMeta{Title: "Sign In", PageTitle: "Sign In", CurrentPage: PageLogin})
	data["RedirectURI"] = safeRedirectPath(r.URL.Query().Get("redirect_uri"))
	data["SignupEnabled"] = h.SignupEnabled
	h.render(w, r, data)
}

// LoginSubmit exchanges the submitted credentials for a session.
// POST /login.
func (h *AuthHandlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	identifier := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	redirectURI := safeRedirectPath(r.PostFormValue("redirect_uri"))

	errs := validation.New().
		Validate("email", identifier, validation.Required("Email", 255)).
		Validate("password", password, validation.Required("Password", 255)).
		Errors()
	if len(errs) > 0 {
		h.renderLoginError(w, r, loginErrorParams{
			FieldErrors: errs,
			Message:     errMsgFixBelow,
			Email:       identifier,
			RedirectURI: redirectURI,
		})
		return
	}

	session, err := h.Svc.Login(r.Context(), identifier, password)
	if err != nil {
		h.logger().WarnContext(r.Context(), "login failed", "error", err)
		h.renderLoginError(w, r, loginErrorParams{
			Message:     apiclient.UserMessage(err, "Unable to sign in. Please try again."),
			Email:       identifier,
			RedirectURI: redirectURI,
		})
		return
	}

	setSessionCookie(w, r, h.CookieDomain, *session)
	h.redirectAfterAuth(w, r, redirectURI)
}

// SignupPage renders the account creation form.
// GET /signup.
func (h *AuthHandlers) SignupPage(w http.ResponseWriter, r *http.Request) {
	if !h.SignupEnabled {
		http.NotFound(w, r)
		return
	}
	data := basePageData(r, PageMeta{Title: "Sign Up", PageTitle: "Sign Up", CurrentPage: PageSignup})
	h.render(w, r, data)
}

// SignupSubmit creates the account and signs the new user in.
// POST /signup.
func (h *AuthHandlers) SignupSubmit(w http.ResponseWriter, r *http.Request) {
	if !h.SignupEnabled {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	in := service.SignupInput{
		Email:        strings.TrimSpace(r.PostFormValue("email")),
		MobileNumber: strings.TrimSpace(r.PostFormValue("mobileNumber")),
		Password:     r.PostFormValue("password"),
		FirstName:    strings.TrimSpace(r.PostFormValue("firstName")),
		LastName:     strings.TrimSpace(r.PostFormValue("lastName")),
	}

	errs := validation.New().
		Validate("email", in.Email, validation.Required("Email", 255), validation.Email("Email")).
		Validate("mobileNumber", in.MobileNumber, validation.Required("Mobile number", 20)).
		Validate("password", in.Password, validation.RequiredRange("Password", 6, 128)).
		Validate("firstName", in.FirstName, validation.Required("First name", 100)).
		Validate("lastName", in.LastName, validation.Optional("Last name", 100)).
		Errors()

	picture, uploadErr := parseUpload(r, "profilePicture", validation.KindImage)
	if uploadErr != "" {
		errs["profilePicture"] = uploadErr
	}
	if len(errs) > 0 {
		h.renderSignupError(w, r, errs, errMsgFixBelow, in)
		return
	}
	in.ProfilePicture = picture

	session, err := h.Svc.Signup(r.Context(), in)
	if err != nil {
		h.logger().WarnContext(r.Context(), "signup failed", "error", err)
		h.renderSignupError(w, r, nil, apiclient.UserMessage(err, "Unable to create your account. Please try again."), in)
		return
	}

	setSessionCookie(w, r, h.CookieDomain, *session)
	h.redirectAfterAuth(w, r, "/dashboard")
}

// Logout invalidates the session and clears the cookie.
// The cookie is cleared even when server-side invalidation fails, so the
// browser can never stay signed in.
// POST /logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionCookie, err := r.Cookie(sessionCookieName); err == nil {
		if logoutErr := h.Svc.Logout(r.Context(), sessionCookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}

	clearSessionCookie(w, r, h.CookieDomain)

	if IsHTMX(r) {
		SetHXRedirect(w, "/login")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// redirectAfterAuth navigates to the post-login destination.
func (h *AuthHandlers) redirectAfterAuth(w http.ResponseWriter, r *http.Request, redirectURI string) {
	target := safeRedirectPath(redirectURI)
	if IsHTMX(r) {
		SetHXRedirect(w, target)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

type loginErrorParams struct {
	FieldErrors map[string]string
	Message     string
	Email       string
	RedirectURI string
}

func (h *AuthHandlers) renderLoginError(w http.ResponseWriter, r *http.Request, p loginErrorParams) {
	data := basePageData(r, PageMeta{Title: "Sign In", PageTitle: "Sign In", CurrentPage: PageLogin})
	data["Error"] = true
	data["ErrorMessage"] = p.Message
	if len(p.FieldErrors) > 0 {
		data["Errors"] = p.FieldErrors
	}
	data["Email"] = p.Email
	data["RedirectURI"] = safeRedirectPath(p.RedirectURI)
	data["SignupEnabled"] = h.SignupEnabled
	w.WriteHeader(http.StatusUnprocessableEntity)
	h.render(w, r, data)
}

func (h *AuthHandlers) renderSignupError(
	w http.ResponseWriter,
	r *http.Request,
	fieldErrors map[string]string,
	message string,
	in service.SignupInput,
) {
	data := basePageData(r, PageMeta{Title: "Sign Up", PageTitle: "Sign Up", CurrentPage: PageSignup})
	data["Error"] = true
	data["ErrorMessage"] = message
	if len(fieldErrors) > 0 {
		data["Errors"] = fieldErrors
	}
	// Preserve the draft so a failed submit never wipes the form.
	data["FormData"] = in
	w.WriteHeader(http.StatusUnprocessableEntity)
	h.render(w, r, data)
}

func (h *AuthHandlers) render(w http.ResponseWriter, r *http.Request, data map[string]any) {
	var err error
	if WantsPartial(r) {
		err = h.T.RenderPartial(w, r, data)
	} else {
		err = h.T.RenderFull(w, r, data)
	}
	if err != nil {
		h.logger().ErrorContext(r.Context(), "auth page render failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// clearSessionCookie clears the session cookie by setting it to expire immediately.
// It mirrors key attributes (Secure, Path, Domain, SameSite) used when setting cookies
// to maximize compatibility across browsers during deletion.
func clearSessionCookie(w http.ResponseWriter, r *http.Request, cookieDomain string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   cookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// setSessionCookie writes the session cookie based on the session's expiry.
func setSessionCookie(w http.ResponseWriter, r *http.Request, cookieDomain string, s domainauth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    s.ID,
		Path:     "/",
		Domain:   cookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
	})
}

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// safeRedirectPath ensures the provided redirect is a same-origin relative path
// starting with "/" and not an absolute URL. Returns "/dashboard" when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/dashboard"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/dashboard"
	}
	// Never bounce back to the credential forms after auth.
	if u.Path == "/login" || u.Path == "/signup" {
		return "/dashboard"
	}
	return candidate
}

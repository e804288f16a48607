package httpx

import (
	"context"
	"errors"
	"html"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	domainauth "github.com/adhyanguru/admin-go/internal/domain/auth"
	"github.com/adhyanguru/admin-go/internal/domain/model"
	"github.com/adhyanguru/admin-go/internal/http/ui/viewmodel"
	"github.com/adhyanguru/admin-go/internal/service"
)

const errMsgFixBelow = "Please fix the errors below."

// UsersService is a minimal interface for UI needs.
type UsersService interface {
	List(ctx context.Context, token string) ([]model.User, int, error)
	GetByID(ctx context.Context, token, id string, includePassword bool) (*model.User, error)
	CreateUser(ctx context.Context, token string, in model.CreateUserInput, picture *apiclient.FileUpload) (*model.User, error)
	CreateAdmin(ctx context.Context, token string, in model.CreateAdminInput, picture *apiclient.FileUpload) (*model.User, error)
	Update(ctx context.Context, token, id string, in model.UpdateUserInput, picture *apiclient.FileUpload) (*model.User, error)
	Delete(ctx context.Context, token, id string) error
}

// CategoriesService is a minimal interface for the two-level category UI.
type CategoriesService interface {
	ListMain(ctx context.Context, token string, isActive *bool) ([]model.MainCategory, int, error)
	CreateMain(ctx context.Context, token string, in model.CategoryInput, image *apiclient.FileUpload) (*model.MainCategory, error)
	UpdateMain(ctx context.Context, token, id string, in model.CategoryInput, image *apiclient.FileUpload) (*model.MainCategory, error)
	DeleteMain(ctx context.Context, token, id string) error
	ListSub(ctx context.Context, token string, opts model.CategoryListOptions) ([]model.SubCategory, int, error)
	CreateSub(ctx context.Context, token string, in model.SubCategoryInput, image *apiclient.FileUpload) (*model.SubCategory, error)
	UpdateSub(ctx context.Context, token, id string, in model.SubCategoryInput, image *apiclient.FileUpload) (*model.SubCategory, error)
	DeleteSub(ctx context.Context, token, id string) error
}

// SubjectsService is a minimal interface for UI needs.
type SubjectsService interface {
	List(ctx context.Context, token string, opts model.SubjectListOptions) ([]model.Subject, int, error)
	GetByID(ctx context.Context, token, id string) (*model.Subject, error)
	Create(ctx context.Context, token string, in model.SubjectInput, thumbnail *apiclient.FileUpload) (*model.Subject, error)
	Update(ctx context.Context, token, id string, in model.SubjectInput, thumbnail *apiclient.FileUpload) (*model.Subject, error)
	Delete(ctx context.Context, token, id string) error
}

// ChaptersService is a minimal interface for UI needs.
type ChaptersService interface {
	ListBySubject(ctx context.Context, token, subjectID string, isActive *bool) ([]model.Chapter, int, error)
	GetByID(ctx context.Context, token, id string) (*model.Chapter, error)
	Create(ctx context.Context, token string, in model.ChapterInput, pdf, video *apiclient.FileUpload) (*model.Chapter, error)
	Update(ctx context.Context, token, id string, in model.ChapterInput, pdf, video *apiclient.FileUpload) (*model.Chapter, error)
	Delete(ctx context.Context, token, id string) error
}

// BoardsService is a minimal interface for UI needs.
type BoardsService interface {
	List(ctx context.Context, token string, isActive *bool) ([]model.Board, int, error)
	GetByID(ctx context.Context, token, id string) (*model.Board, error)
	Create(ctx context.Context, token string, in model.BoardInput) (*model.Board, error)
	Update(ctx context.Context, token, id string, in model.BoardInput) (*model.Board, error)
	Delete(ctx context.Context, token, id string) error
}

// PlansService is a minimal interface for the plan cascade on the categories page.
type PlansService interface {
	ListBySubCategory(ctx context.Context, token, subCategoryID string, isActive *bool) ([]model.Plan, int, error)
	GetByID(ctx context.Context, token, id string) (*model.Plan, error)
	Create(ctx context.Context, token string, in model.PlanInput) (*model.Plan, error)
	CreateBulk(ctx context.Context, token, subCategoryID string, specs []model.PlanSpec) ([]model.Plan, int, error)
	Update(ctx context.Context, token, id string, in model.PlanInput) (*model.Plan, error)
	Delete(ctx context.Context, token, id string) error
}

// CoursesService is a minimal interface for courses and their chapters.
type CoursesService interface {
	List(ctx context.Context, token string, isActive *bool) ([]model.Course, int, error)
	GetByID(ctx context.Context, token, id string) (*model.Course, error)
	Create(ctx context.Context, token string, in model.CourseInput, thumbnail *apiclient.FileUpload) (*model.Course, error)
	Update(ctx context.Context, token, id string, in model.CourseInput, thumbnail *apiclient.FileUpload) (*model.Course, error)
	Delete(ctx context.Context, token, id string) error
	ListChapters(ctx context.Context, token, courseID string, isActive *bool) ([]model.CourseChapter, int, error)
	GetChapterByID(ctx context.Context, token, id string) (*model.CourseChapter, error)
	CreateChapter(ctx context.Context, token string, in model.CourseChapterInput, pdf, video *apiclient.FileUpload) (*model.CourseChapter, error)
	UpdateChapter(ctx context.Context, token, id string, in model.CourseChapterInput, pdf, video *apiclient.FileUpload) (*model.CourseChapter, error)
	DeleteChapter(ctx context.Context, token, id string) error
}

// CommissionSettingsService is a minimal interface for UI needs.
type CommissionSettingsService interface {
	Get(ctx context.Context, token string) (*model.CommissionSettings, error)
	Save(ctx context.Context, token string, in model.CommissionSettingsInput, exists bool) (*model.CommissionSettings, error)
}

// ThumbnailsService is a minimal interface for UI needs.
type ThumbnailsService interface {
	List(ctx context.Context, token string, opts model.ThumbnailListOptions) (*apiclient.ThumbnailPage, error)
	GetByID(ctx context.Context, token, id string) (*model.Thumbnail, error)
	Create(ctx context.Context, token string, in model.ThumbnailInput, image *apiclient.FileUpload) (*model.Thumbnail, error)
	Update(ctx context.Context, token, id string, in model.ThumbnailInput, image *apiclient.FileUpload) (*model.Thumbnail, error)
	Delete(ctx context.Context, token, id string) error
}

// DashboardCountsService is a minimal interface for UI needs.
type DashboardCountsService interface {
	Counts(ctx context.Context, token string) (*model.DashboardCounts, error)
}

// AnalyticsReportService is a minimal interface for UI needs.
type AnalyticsReportService interface {
	Report(ctx context.Context, token string, query model.AnalyticsQuery) ([]model.AnalyticsMetric, error)
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ UsersService              = (*service.UserService)(nil)
	_ CategoriesService         = (*service.CategoryService)(nil)
	_ SubjectsService           = (*service.SubjectService)(nil)
	_ ChaptersService           = (*service.ChapterService)(nil)
	_ BoardsService             = (*service.BoardService)(nil)
	_ PlansService              = (*service.PlanService)(nil)
	_ CoursesService            = (*service.CourseService)(nil)
	_ CommissionSettingsService = (*service.CommissionService)(nil)
	_ ThumbnailsService         = (*service.ThumbnailService)(nil)
	_ DashboardCountsService    = (*service.DashboardService)(nil)
	_ AnalyticsReportService    = (*service.AnalyticsService)(nil)
	_ AuthServiceInterface      = (*service.AuthService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T             *TemplateRenderer
	Auth          AuthServiceInterface
	UserSvc       UsersService
	CategorySvc   CategoriesService
	SubjectSvc    SubjectsService
	ChapterSvc    ChaptersService
	BoardSvc      BoardsService
	PlanSvc       PlansService
	CourseSvc     CoursesService
	CommissionSvc CommissionSettingsService
	ThumbnailSvc  ThumbnailsService
	DashboardSvc  DashboardCountsService
	AnalyticsSvc  AnalyticsReportService
	CookieDomain  string
	IsDev         bool // Development mode flag for enhanced error reporting
	Logger        *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// forceLogout tears down the local session after the platform API rejected
// the bearer token. The cookie is cleared and the browser is sent to the
// login page; there is no point keeping a session whose token is dead.
func (h *UIHandlers) forceLogout(w http.ResponseWriter, r *http.Request) {
	if h.Auth != nil {
		if sessionCookie, err := r.Cookie(sessionCookieName); err == nil {
			if logoutErr := h.Auth.Logout(r.Context(), sessionCookie.Value); logoutErr != nil {
				h.logger().WarnContext(r.Context(), "forced logout failed", "error", logoutErr)
			}
		}
	}
	clearSessionCookie(w, r, h.CookieDomain)
	forceLogoutResponse(w, r)
}

// forceLogoutResponse navigates the browser to the login page after a
// token rejection.
func forceLogoutResponse(w http.ResponseWriter, r *http.Request) {
	if IsHTMX(r) {
		SetHXRedirect(w, "/login")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// getPageParams parses pagination params from URL query with sane defaults.
func getPageParams(q url.Values) (int, int) {
	page := 1
	pageSize := 10
	if p := q.Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
		}
	}
	if s := q.Get("page_size"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			pageSize = n
		}
	}
	return page, pageSize
}

// pageOpts represents pagination options for list views.
type pageOpts struct {
	Page     int
	PageSize int
}

// deleteHandlerOpts encapsulates common delete-handling behavior for UI endpoints.
type deleteHandlerOpts struct {
	Delete       func(ctx context.Context, token, id string) error
	RedirectPath string
	SuccessToast string
	ErrorMessage string
}

// handleDelete coordinates delete flows shared across UI handlers.
// Deletion only proceeds when the submitted form confirms it; a bare POST
// is rejected so nothing is ever destroyed by accident.
func (h *UIHandlers) handleDelete(w http.ResponseWriter, r *http.Request, opts deleteHandlerOpts) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil || r.PostFormValue("confirm") != StrTrue {
		triggerToast(w, "Deletion requires confirmation.", "error")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := opts.Delete(r.Context(), SessionToken(r.Context()), id); err != nil {
		if isUnauthorized(err) {
			h.forceLogout(w, r)
			return
		}
		msg := opts.ErrorMessage
		if msg == "" {
			msg = "Unable to delete resource."
		}
		triggerToast(w, apiclient.UserMessage(err, msg), "error")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if opts.SuccessToast != "" {
		triggerToast(w, opts.SuccessToast, "success")
	}
	if opts.RedirectPath != "" {
		HTMX(w).Redirect(opts.RedirectPath)
	}
}

// isUnauthorized reports whether the platform API rejected the bearer token.
func isUnauthorized(err error) bool {
	if errors.Is(err, apiclient.ErrUnauthorized) {
		return true
	}
	var apiErr *apiclient.APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// triggerToast sends a standardized HX-Trigger payload for toast notifications.
// Centralizing this avoids repeating the boilerplate map construction across handlers.
func triggerToast(w http.ResponseWriter, message, toastType string) {
	if w == nil || strings.TrimSpace(message) == "" {
		return
	}
	HTMX(w).Trigger("showToast", map[string]any{
		"message": message,
		"type":    strings.TrimSpace(toastType),
	})
}

// FormFrameOpts captures the parameters required to normalize common form data.
type FormFrameOpts struct {
	R           *http.Request
	Data        map[string]any
	DefaultMode FormMode
	MetaForMode func(FormMode) PageMeta
}

// prepareFormFrame normalizes common form rendering fields (Errors, Mode, base layout).
// Returns the hydrated data map and the resolved form mode for further customization.
func prepareFormFrame(opts FormFrameOpts) (map[string]any, FormMode) {
	data := opts.Data
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Errors"]; !ok || data["Errors"] == nil {
		data["Errors"] = map[string]string{}
	}

	mode := resolveFormMode(data["Mode"], opts.DefaultMode)
	data["Mode"] = string(mode)

	if opts.MetaForMode != nil && opts.R != nil {
		maps.Copy(data, basePageData(opts.R, opts.MetaForMode(mode)))
	}

	return data, mode
}

// resolveFormMode coerces assorted Mode representations to a FormMode value.
func resolveFormMode(raw any, fallback FormMode) FormMode {
	switch v := raw.(type) {
	case FormMode:
		if v != "" {
			return v
		}
	case string:
		candidate := FormMode(strings.TrimSpace(v))
		if candidate != "" {
			return candidate
		}
	}
	return fallback
}

// buildPageURL returns a URL with page and page_size set, preserving other query params.
// basePath should be the path without query string (e.g., "/users", "/subjects").
func buildPageURL(basePath string, q url.Values, p pageOpts) string {
	qq := make(url.Values, len(q))
	for k, v := range q {
		// drop transient/htmx params and empty keys
		if strings.HasPrefix(k, "hx-") || strings.HasPrefix(k, "hx_") || k == "seq" {
			continue
		}
		if len(v) == 0 {
			continue
		}
		// filter out empty values while cloning
		tmp := make([]string, 0, len(v))
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				tmp = append(tmp, s)
			}
		}
		if len(tmp) > 0 {
			qq[k] = tmp
		}
	}
	qq.Set("page", strconv.Itoa(p.Page))
	qq.Set("page_size", strconv.Itoa(p.PageSize))
	if enc := qq.Encode(); enc != "" {
		return basePath + "?" + enc
	}
	return basePath
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// buildLayout constructs shared layout metadata from the request/session context.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
		ThemeID:     model.DefaultThemeID,
	}

	if csrfToken := GetCSRFToken(r); csrfToken != "" {
		layout.CSRFToken = csrfToken
	}

	if session := GetSessionFromContext(r.Context()); session != nil {
		role := string(session.Role)
		layout.User = &viewmodel.User{
			Name:      session.Name,
			Email:     session.Email,
			Role:      role,
			AvatarURL: session.AvatarURL,
		}
		layout.IsAuthenticated = true
		layout.ThemeID = session.Theme
		if session.Role == domainauth.RoleSuperAdmin || session.Role == domainauth.RoleAdmin {
			layout.CanManageUsers = true
		}
	}

	return layout
}

// basePageData constructs the common page data map with user context.
// The resolved theme rides along so the layout can emit its CSS variables.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	data := map[string]any{
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"CurrentPage":     layout.CurrentPage,
		"IsAuthenticated": layout.IsAuthenticated,
		"CanManageUsers":  layout.CanManageUsers,
		"Theme":           model.ResolveTheme(layout.ThemeID),
	}

	if layout.CSRFToken != "" {
		data["CSRFToken"] = layout.CSRFToken
	}
	if layout.User != nil {
		data["User"] = layout.User
	}

	return data
}

// PageSpec defines metadata and an optional fetch for page-specific data.
type PageSpec struct {
	Meta  PageMeta
	Fetch func(ctx context.Context, data map[string]any) error
}

// Page builds base data, optionally fetches content data, and renders.
func (h *UIHandlers) Page(w http.ResponseWriter, r *http.Request, spec PageSpec) {
	data := basePageData(r, spec.Meta)
	if spec.Fetch != nil {
		if err := spec.Fetch(r.Context(), data); err != nil {
			if isUnauthorized(err) {
				h.forceLogout(w, r)
				return
			}
			markPageError(data, err)
		}
	}
	h.renderDashboardPage(w, r, data)
}

// renderDashboardPage renders a dashboard page with proper HTMX partial support.
func (h *UIHandlers) renderDashboardPage(w http.ResponseWriter, r *http.Request, data any) {
	// Handle full page requests first (early return) to reduce nesting
	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	// For HTMX requests, render the content plus out-of-band header updates
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// Hint client JS to update nav active state based on current path
	SetHXTrigger(w, "nav:activate", map[string]string{"path": r.URL.Path})

	layout := extractLayoutInfo(data)

	// Include a <title> element so htmx updates document.title on partial swaps
	safeDocTitle := html.EscapeString(layout.Title)
	if _, err := w.Write([]byte(`<title>` + safeDocTitle + `</title>`)); err != nil {
		h.logger().Error("failed to write partial document title", "error", err)
		return
	}

	// Out-of-band update for the header title
	safeTitle := html.EscapeString(layout.PageTitle)
	if _, err := w.Write([]byte(`<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` + safeTitle + `</h1>`)); err != nil {
		h.logger().Error("failed to write partial header title", "error", err)
		return
	}

	if err := h.T.t.ExecuteTemplate(w, ContentTemplateFor(layout.CurrentPage), data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
		return
	}
}

func markPageError(data map[string]any, err error) {
	data["Error"] = true
	if _, ok := data["ErrorMessage"]; ok {
		return
	}
	data["ErrorMessage"] = apiclient.UserMessage(err, "An unexpected error occurred. Please try again.")
}

func layoutFromProvider(data any) *viewmodel.Layout {
	provider, ok := data.(viewmodel.LayoutProvider)
	if !ok {
		return nil
	}
	return provider.LayoutData()
}

func layoutFromPointer(data any) *viewmodel.Layout {
	layout, ok := data.(*viewmodel.Layout)
	if !ok || layout == nil {
		return nil
	}
	return layout
}

func layoutFromMap(data any) viewmodel.Layout {
	m, mapOK := data.(map[string]any)
	if !mapOK {
		return viewmodel.Layout{}
	}

	layout := viewmodel.Layout{}
	if v, titleOK := m["Title"].(string); titleOK {
		layout.Title = v
	}
	if v, pageTitleOK := m["PageTitle"].(string); pageTitleOK {
		layout.PageTitle = v
	}
	if v, currentPageOK := m["CurrentPage"].(string); currentPageOK {
		layout.CurrentPage = v
	}
	return layout
}

func extractLayoutInfo(data any) viewmodel.Layout {
	if layout := layoutFromProvider(data); layout != nil {
		return *layout
	}

	if layout, ok := data.(viewmodel.Layout); ok {
		return layout
	}

	if layout := layoutFromPointer(data); layout != nil {
		return *layout
	}

	return layoutFromMap(data)
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	// In dev mode, show detailed error in the response
	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		errHTML := html.EscapeString(err.Error())
		pathHTML := html.EscapeString(r.URL.Path)
		contextHTML := html.EscapeString(context)
		if _, writeErr := w.Write([]byte(`
			<div style="padding: 20px; background: #fee; border: 2px solid #c33; border-radius: 4px; margin: 20px; font-family: monospace;">
				<h2 style="color: #c33; margin-top: 0;">Template Rendering Error</h2>
				<p><strong>Context:</strong> ` + contextHTML + `</p>
				<p><strong>Path:</strong> ` + pathHTML + `</p>
				<p><strong>Error:</strong></p>
				<pre style="background: #fff; padding: 10px; border: 1px solid #ccc; overflow-x: auto;">` + errHTML + `</pre>
			</div>
		`)); writeErr != nil {
			h.logger().Error("failed to write template error response", "error", writeErr)
		}
		return
	}

	// In production, show generic error
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

package httpx

import (
	"bytes"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	adminui "github.com/adhyanguru/admin-go"
	domainauth "github.com/adhyanguru/admin-go/internal/domain/auth"
	"github.com/adhyanguru/admin-go/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth       *service.AuthService
	Users      *service.UserService
	Categories *service.CategoryService
	Subjects   *service.SubjectService
	Chapters   *service.ChapterService
	Boards     *service.BoardService
	Plans      *service.PlanService
	Courses    *service.CourseService
	Commission *service.CommissionService
	Thumbnails *service.ThumbnailService
	Dashboard  *service.DashboardService
	Analytics  *service.AnalyticsService
	// Configuration
	CookieDomain  string
	SignupEnabled bool
	IsDev         bool         // Development mode flag for hot reloading, etc.
	Logger        *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router with browser middleware.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Static assets at /static
	// Dev mode: serve from disk for hot reloading
	// Prod mode: serve from embedded FS
	mux.Handle("GET /static/", staticWithFallback(services.IsDev))

	// UI routes with template renderer
	uiHandlers := setupUIHandlers(services)
	if uiHandlers != nil {
		cfg := uiRouteConfig{Auth: services.Auth, CookieDomain: services.CookieDomain}
		registerAuthRoutes(mux, &AuthHandlers{
			Svc:           services.Auth,
			T:             uiHandlers.T,
			CookieDomain:  services.CookieDomain,
			SignupEnabled: services.SignupEnabled,
			Logger:        services.Logger,
		}, cfg)
		registerUIRoutes(mux, uiHandlers, cfg)
	}

	// Wrap with NotFound handler and browser detection middleware
	handler := &notFoundHandler{
		mux:        mux,
		uiHandlers: uiHandlers,
	}

	// Apply browser detection middleware
	return BrowserDetection()(handler)
}

// setupDevMode configures template FS, critical CSS FS, and asset resolver for dev mode.
func setupDevMode(diskManifestPath string) (fs.FS, fs.FS, *AssetResolver) {
	templateFS := os.DirFS(TemplatePathFromRoot)
	criticalCSSFS := os.DirFS("frontend/public")

	resolver, err := NewAssetResolverFromDisk(diskManifestPath)
	if err != nil {
		log.Printf(
			"failed to load asset manifest %s: %v; falling back to logical asset names",
			diskManifestPath,
			err,
		)
	}
	return templateFS, criticalCSSFS, resolver
}

// setupProdMode configures template FS, critical CSS FS, and asset resolver for production mode.
func setupProdMode(diskManifestPath string) (fs.FS, fs.FS, *AssetResolver) {
	templateFS, err := fs.Sub(adminui.TemplateFS, "frontend/templates")
	if err != nil {
		log.Printf("failed to create sub-filesystem for templates: %v; falling back to disk", err)
		templateFS = os.DirFS(TemplatePathFromRoot)
	}

	criticalCSSFS, resolver := setupProdAssets(diskManifestPath)
	return templateFS, criticalCSSFS, resolver
}

// setupProdAssets configures critical CSS FS and asset resolver for production mode.
func setupProdAssets(diskManifestPath string) (fs.FS, *AssetResolver) {
	staticSub, err := fs.Sub(adminui.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		return nil, tryDiskManifest(diskManifestPath)
	}

	resolver, err := NewAssetResolverFromFS(staticSub, "manifest.json")
	if err != nil {
		log.Printf("failed to load asset manifest from embedded FS: %v", err)
		return staticSub, tryDiskManifest(diskManifestPath)
	}

	return staticSub, resolver
}

// tryDiskManifest attempts to load the asset manifest from disk as a fallback.
func tryDiskManifest(diskManifestPath string) *AssetResolver {
	resolver, err := NewAssetResolverFromDisk(diskManifestPath)
	if err != nil {
		log.Printf(
			"failed to load asset manifest %s: %v; falling back to logical asset names",
			diskManifestPath,
			err,
		)
	}
	return resolver
}

// setupUIHandlers creates UI handlers with template renderer and asset resolver.
// In dev mode (services.IsDev=true), templates are loaded from disk for hot reloading.
// In production mode (services.IsDev=false), templates are loaded from embedded FS.
func setupUIHandlers(services RouterServices) *UIHandlers {
	// Choose template filesystem based on dev mode
	var templateFS fs.FS
	var criticalCSSFS fs.FS
	var resolver *AssetResolver

	diskManifestPath := filepath.Join("frontend", "static", "manifest.json")

	if services.IsDev {
		templateFS, criticalCSSFS, resolver = setupDevMode(diskManifestPath)
	} else {
		templateFS, criticalCSSFS, resolver = setupProdMode(diskManifestPath)
	}

	if resolver == nil {
		resolver = &AssetResolver{}
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS:    templateFS,
		Resolver:      resolver,
		CriticalCSSFS: criticalCSSFS,
		DevMode:       services.IsDev,
		Logger:        services.Logger,
	})
	if err != nil {
		if services.Logger != nil {
			services.Logger.Error("failed to create template renderer", slog.Any("error", err))
		} else {
			log.Printf("ERROR: failed to create template renderer: %v", err)
		}
		return nil
	}

	return &UIHandlers{
		T:             tr,
		Auth:          services.Auth,
		UserSvc:       services.Users,
		CategorySvc:   services.Categories,
		SubjectSvc:    services.Subjects,
		ChapterSvc:    services.Chapters,
		BoardSvc:      services.Boards,
		PlanSvc:       services.Plans,
		CourseSvc:     services.Courses,
		CommissionSvc: services.Commission,
		ThumbnailSvc:  services.Thumbnails,
		DashboardSvc:  services.Dashboard,
		AnalyticsSvc:  services.Analytics,
		CookieDomain:  services.CookieDomain,
		IsDev:         services.IsDev,
		Logger:        services.Logger,
	}
}

// staticWithFallback serves /static/* assets.
// In dev mode (isDev=true), serves from disk with fallback for hot reloading.
// In production mode (isDev=false), serves from embedded FS.
func staticWithFallback(isDev bool) http.Handler {
	if isDev {
		// Dev mode: serve from disk with fallback for hot reloading
		mfs := multiFS{
			http.Dir("frontend/static"),
			http.Dir("frontend/public"),
			devCSSFS{},
		}
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(mfs)))
	}

	// Production mode: serve from embedded FS
	staticSub, err := fs.Sub(adminui.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		// Fallback to disk serving if embed fails
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
}

// multiFS provides fallback filesystem for dev mode.
type multiFS []http.FileSystem

func (m multiFS) Open(name string) (http.File, error) {
	for _, fsys := range m {
		f, err := fsys.Open(name)
		if err == nil {
			return f, nil
		}
		// ignore not-exist and try next, but return early on other errors
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return nil, os.ErrNotExist
}

// devCSSFS maps a single CSS path used during dev to the source stylesheet.
type devCSSFS struct{}

func (devCSSFS) Open(name string) (http.File, error) {
	if strings.TrimPrefix(name, "/") == "css/styles.css" || name == "css/styles.css" {
		return os.Open("frontend/styles/index.css")
	}
	return nil, os.ErrNotExist
}

// staticWithCacheHeaders wraps a static file handler to add appropriate cache headers.
func staticWithCacheHeaders(handler http.Handler) http.Handler {
	// Regex to match content-hashed filenames including optional .map (e.g., app.abc123.js, styles.def456.css, app.abc123.js.map)
	hashedFilePattern := regexp.MustCompile(`\.[a-f0-9]{8}\.(?:js|css)(?:\.map)?$`)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check if this is a content-hashed asset
		if hashedFilePattern.MatchString(r.URL.Path) {
			// Hashed assets can be cached for a long time (1 year)
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			// Non-hashed assets (dev mode) should not be cached
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}

		handler.ServeHTTP(w, r)
	})
}

// notFoundHandler wraps a ServeMux and provides custom 404 handling.
type notFoundHandler struct {
	mux        *http.ServeMux
	uiHandlers *UIHandlers
}

// ServeHTTP implements http.Handler and provides custom 404 handling.
func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cw := newCaptureWriter(w)
	// Serve the request through the mux, capturing status, headers, and body
	h.mux.ServeHTTP(cw, r)

	// If the mux didn't handle the request (404), use our custom handler
	if cw.status == http.StatusNotFound {
		// For missing static assets, preserve the default file server response
		if strings.HasPrefix(r.URL.Path, "/static/") {
			cw.flushTo(w)
			return
		}
		if h.uiHandlers != nil {
			h.uiHandlers.NotFound(w, r)
			return
		}
		http.NotFound(w, r)
		return
	}

	// Not a 404: write the captured response
	cw.flushTo(w)
}

// captureWriter buffers headers, status and body so we can decide post-dispatch.
type captureWriter struct {
	rw     http.ResponseWriter
	header http.Header
	status int
	buf    bytes.Buffer
}

func newCaptureWriter(w http.ResponseWriter) *captureWriter {
	return &captureWriter{rw: w, header: make(http.Header), status: http.StatusOK}
}

func (c *captureWriter) Header() http.Header         { return c.header }
func (c *captureWriter) WriteHeader(code int)        { c.status = code }
func (c *captureWriter) Write(b []byte) (int, error) { return c.buf.Write(b) }

func (c *captureWriter) flushTo(w http.ResponseWriter) {
	for k, vs := range c.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(c.status)
	if _, err := w.Write(c.buf.Bytes()); err != nil {
		log.Printf("failed to write captured response: %v", err)
	}
}

// uiRouteConfig holds configuration for UI route registration.
type uiRouteConfig struct {
	Auth         *service.AuthService
	CookieDomain string
}

// authWrap returns a no-op wrapper when auth is nil, otherwise applies RequireAuthBrowser.
func (cfg uiRouteConfig) authWrap() func(http.Handler) http.Handler {
	if cfg.Auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return RequireAuthBrowser(cfg.Auth)
}

// adminWrap returns a no-op wrapper when auth is nil, otherwise applies RequireRoleBrowser with CSRF protection.
func (cfg uiRouteConfig) adminWrap() func(http.Handler) http.Handler {
	if cfg.Auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	// Chain CSRF protection with admin role requirement
	csrf := CSRFProtection(CSRFConfig{CookieDomain: cfg.CookieDomain})
	roleCheck := RequireRoleBrowser(cfg.Auth, domainauth.RoleAdmin)
	return func(h http.Handler) http.Handler {
		return roleCheck(csrf(h))
	}
}

// guestWrap bounces already-authenticated sessions off the login and signup
// pages so the guard works in both directions.
func (cfg uiRouteConfig) guestWrap() func(http.Handler) http.Handler {
	if cfg.Auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return RedirectIfAuthenticated(cfg.Auth)
}

// registerAuthRoutes wires the public login/signup/logout endpoints.
func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, cfg uiRouteConfig) {
	guest := cfg.guestWrap()
	mux.Handle("GET /login", guest(http.HandlerFunc(h.LoginPage)))
	mux.Handle("POST /login", guest(http.HandlerFunc(h.LoginSubmit)))
	mux.Handle("GET /signup", guest(http.HandlerFunc(h.SignupPage)))
	mux.Handle("POST /signup", guest(http.HandlerFunc(h.SignupSubmit)))
	mux.HandleFunc("POST /logout", h.Logout)
}

// registerUIRoutes delegates to per-domain UI route registration functions.
func registerUIRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	registerUIDashboardRoutes(mux, h, cfg)
	registerUIUserRoutes(mux, h, cfg)
	registerUICategoryRoutes(mux, h, cfg)
	registerUISubjectRoutes(mux, h, cfg)
	registerUIChapterRoutes(mux, h, cfg)
	registerUIBoardRoutes(mux, h, cfg)
	registerUICourseRoutes(mux, h, cfg)
	registerUIPlatformRoutes(mux, h, cfg)
}

// registerUIDashboardRoutes wires main dashboard/navigation pages.
func registerUIDashboardRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	mux.Handle("GET /", wrap(http.HandlerFunc(h.Index)))
	mux.Handle("GET /dashboard", wrap(http.HandlerFunc(h.Dashboard)))
	mux.Handle("GET /dashboard/counts", wrap(http.HandlerFunc(h.DashboardCountsFragment)))
	mux.Handle("GET /settings", wrap(http.HandlerFunc(h.Settings)))
	mux.Handle("POST /settings/theme", wrap(http.HandlerFunc(h.SettingsTheme)))
}

// registerUIUserRoutes wires the account management pages (admin-only).
func registerUIUserRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrapAdmin := cfg.adminWrap()
	mux.Handle("GET /users", wrapAdmin(http.HandlerFunc(h.Users)))
	mux.Handle("GET /users/new", wrapAdmin(http.HandlerFunc(h.UserNew)))
	mux.Handle("GET /users/{id}", wrapAdmin(http.HandlerFunc(h.UserView)))
	mux.Handle("POST /users", wrapAdmin(http.HandlerFunc(h.UserCreate)))
	mux.Handle("POST /users/{id}", wrapAdmin(http.HandlerFunc(h.UserUpdate)))
	mux.Handle("POST /users/{id}/delete", wrapAdmin(http.HandlerFunc(h.UserDelete)))
}

// registerUICategoryRoutes wires the category page along with its nested
// sub-category and plan fragments.
func registerUICategoryRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	wrapAdmin := cfg.adminWrap()

	mux.Handle("GET /categories", wrap(http.HandlerFunc(h.Categories)))
	mux.Handle("GET /categories/{id}/subcategories", wrap(http.HandlerFunc(h.SubCategoriesFragment)))
	mux.Handle("POST /categories", wrapAdmin(http.HandlerFunc(h.CategoryCreate)))
	mux.Handle("POST /categories/{id}", wrapAdmin(http.HandlerFunc(h.CategoryUpdate)))
	mux.Handle("POST /categories/{id}/delete", wrapAdmin(http.HandlerFunc(h.CategoryDelete)))

	mux.Handle("POST /subcategories", wrapAdmin(http.HandlerFunc(h.SubCategoryCreate)))
	mux.Handle("POST /subcategories/{id}", wrapAdmin(http.HandlerFunc(h.SubCategoryUpdate)))
	mux.Handle("POST /subcategories/{id}/delete", wrapAdmin(http.HandlerFunc(h.SubCategoryDelete)))
	mux.Handle("GET /subcategories/{id}/plans", wrap(http.HandlerFunc(h.PlansFragment)))

	mux.Handle("POST /plans", wrapAdmin(http.HandlerFunc(h.PlanCreate)))
	mux.Handle("POST /plans/bulk", wrapAdmin(http.HandlerFunc(h.PlanCreateBulk)))
	mux.Handle("POST /plans/{id}", wrapAdmin(http.HandlerFunc(h.PlanUpdate)))
	mux.Handle("POST /plans/{id}/delete", wrapAdmin(http.HandlerFunc(h.PlanDelete)))
}

// registerUISubjectRoutes wires the subject pages.
func registerUISubjectRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	wrapAdmin := cfg.adminWrap()

	mux.Handle("GET /subjects", wrap(http.HandlerFunc(h.Subjects)))
	mux.Handle("GET /subjects/new", wrapAdmin(http.HandlerFunc(h.SubjectNew)))
	mux.Handle("GET /subjects/{id}/edit", wrapAdmin(http.HandlerFunc(h.SubjectEdit)))
	mux.Handle("POST /subjects", wrapAdmin(http.HandlerFunc(h.SubjectCreate)))
	mux.Handle("POST /subjects/{id}", wrapAdmin(http.HandlerFunc(h.SubjectUpdate)))
	mux.Handle("POST /subjects/{id}/delete", wrapAdmin(http.HandlerFunc(h.SubjectDelete)))
}

// registerUIChapterRoutes wires the subject chapter pages.
func registerUIChapterRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	wrapAdmin := cfg.adminWrap()

	mux.Handle("GET /chapters/{subjectId}", wrap(http.HandlerFunc(h.Chapters)))
	mux.Handle("POST /chapters", wrapAdmin(http.HandlerFunc(h.ChapterCreate)))
	mux.Handle("POST /chapters/{id}", wrapAdmin(http.HandlerFunc(h.ChapterUpdate)))
	mux.Handle("POST /chapters/{id}/delete", wrapAdmin(http.HandlerFunc(h.ChapterDelete)))
}

// registerUIBoardRoutes wires the examination board pages.
func registerUIBoardRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	wrapAdmin := cfg.adminWrap()

	mux.Handle("GET /board", wrap(http.HandlerFunc(h.Boards)))
	mux.Handle("POST /board", wrapAdmin(http.HandlerFunc(h.BoardCreate)))
	mux.Handle("POST /board/{id}", wrapAdmin(http.HandlerFunc(h.BoardUpdate)))
	mux.Handle("POST /board/{id}/delete", wrapAdmin(http.HandlerFunc(h.BoardDelete)))
}

// registerUICourseRoutes wires the course and course chapter pages.
func registerUICourseRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	wrapAdmin := cfg.adminWrap()

	mux.Handle("GET /courses", wrap(http.HandlerFunc(h.Courses)))
	mux.Handle("POST /courses", wrapAdmin(http.HandlerFunc(h.CourseCreate)))
	mux.Handle("POST /courses/{id}", wrapAdmin(http.HandlerFunc(h.CourseUpdate)))
	mux.Handle("POST /courses/{id}/delete", wrapAdmin(http.HandlerFunc(h.CourseDelete)))

	mux.Handle("GET /course-chapters/{courseId}", wrap(http.HandlerFunc(h.CourseChapters)))
	mux.Handle("POST /course-chapters", wrapAdmin(http.HandlerFunc(h.CourseChapterCreate)))
	mux.Handle("POST /course-chapters/{id}", wrapAdmin(http.HandlerFunc(h.CourseChapterUpdate)))
	mux.Handle("POST /course-chapters/{id}/delete", wrapAdmin(http.HandlerFunc(h.CourseChapterDelete)))
}

// registerUIPlatformRoutes wires commission, thumbnails, and analytics.
func registerUIPlatformRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	wrapAdmin := cfg.adminWrap()

	mux.Handle("GET /commission-settings", wrapAdmin(http.HandlerFunc(h.Commission)))
	mux.Handle("POST /commission-settings", wrapAdmin(http.HandlerFunc(h.CommissionSave)))

	mux.Handle("GET /thumbnails", wrap(http.HandlerFunc(h.Thumbnails)))
	mux.Handle("POST /thumbnails", wrapAdmin(http.HandlerFunc(h.ThumbnailCreate)))
	mux.Handle("POST /thumbnails/{id}", wrapAdmin(http.HandlerFunc(h.ThumbnailUpdate)))
	mux.Handle("POST /thumbnails/{id}/delete", wrapAdmin(http.HandlerFunc(h.ThumbnailDelete)))

	mux.Handle("GET /analytics", wrapAdmin(http.HandlerFunc(h.Analytics)))
}

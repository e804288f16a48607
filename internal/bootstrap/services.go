package bootstrap

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/adhyanguru/admin-go/config"
	"github.com/adhyanguru/admin-go/internal/adapters/mockapi"
	"github.com/adhyanguru/admin-go/internal/apiclient"
	"github.com/adhyanguru/admin-go/internal/observability/statsd"
	"github.com/adhyanguru/admin-go/internal/ports"
	"github.com/adhyanguru/admin-go/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
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

	Metrics *statsd.Client
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// platformAPI is the full surface of the super-admin REST API as the
// services consume it. Both the live client and the in-process mock
// implement it.
type platformAPI interface {
	ports.CredentialAuthenticator
	service.UsersAPI
	service.CategoriesAPI
	service.SubjectsAPI
	service.ChaptersAPI
	service.BoardsAPI
	service.PlansAPI
	service.CoursesAPI
	service.CommissionAPI
	service.ThumbnailsAPI
	service.DashboardAPI
	service.AnalyticsAPI
}

var (
	_ platformAPI = (*apiclient.Client)(nil)
	_ platformAPI = (*mockapi.Server)(nil)
)

// buildMetrics configures the StatsD sink, nil-safe when disabled.
func buildMetrics(cfg config.ObservabilityMetricsConfig, logger *slog.Logger) *statsd.Client {
	if !cfg.IsEnabled() {
		return nil
	}
	client, err := statsd.NewClient(statsd.Config{
		Enabled: true,
		Address: cfg.StatsdAddress,
		Prefix:  cfg.Prefix,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to initialise statsd client", "error", err)
		return nil
	}
	return client
}

// buildPlatformAPI selects the live client or the seeded in-process mock.
func buildPlatformAPI(cfg *config.AppConfig, metrics *statsd.Client, logger *slog.Logger) platformAPI {
	if cfg.Upstream.Mode == config.UpstreamModeMock {
		logger.Warn("upstream mode is mock: all platform data is in-memory and seeded",
			"admin_email", mockapi.DefaultAdminEmail)
		return mockapi.New()
	}

	opts := apiclient.Options{
		BaseURL:       cfg.Upstream.BaseURL,
		Timeout:       cfg.Upstream.Timeout,
		UploadTimeout: cfg.Upstream.UploadTimeout,
		Logger:        logger,
	}
	if metrics != nil {
		opts.Metrics = metrics
	}
	return apiclient.New(opts)
}

// NewServices wires the service layer against the selected platform API.
func NewServices(deps *ServiceDeps) ServiceContainer {
	if deps == nil {
		return ServiceContainer{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.AppConfig{}
	}

	metrics := buildMetrics(cfg.Observability.Metrics, logger)
	api := buildPlatformAPI(cfg, metrics, logger)

	return ServiceContainer{
		Auth: BuildAuthService(AuthConfig{
			Auth:          cfg.Auth,
			Authenticator: api,
			RedisClient:   deps.RedisClient,
			Logger:        logger,
		}),
		Users:      service.NewUserService(service.UserServiceOptions{API: api}),
		Categories: service.NewCategoryService(service.CategoryServiceOptions{API: api}),
		Subjects:   service.NewSubjectService(service.SubjectServiceOptions{API: api}),
		Chapters:   service.NewChapterService(service.ChapterServiceOptions{API: api}),
		Boards:     service.NewBoardService(service.BoardServiceOptions{API: api}),
		Plans:      service.NewPlanService(service.PlanServiceOptions{API: api}),
		Courses:    service.NewCourseService(service.CourseServiceOptions{API: api}),
		Commission: service.NewCommissionService(service.CommissionServiceOptions{API: api}),
		Thumbnails: service.NewThumbnailService(service.ThumbnailServiceOptions{API: api}),
		Dashboard:  service.NewDashboardService(service.DashboardServiceOptions{API: api}),
		Analytics:  service.NewAnalyticsService(service.AnalyticsServiceOptions{API: api}),
		Metrics:    metrics,
	}
}

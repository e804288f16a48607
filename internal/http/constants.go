package httpx

// CurrentPage constants define the page identifiers used in templates and navigation.
// These constants ensure consistency across UI handlers and template mapping.
const (
	// Main navigation pages.
	PageHome      = "home"
	PageDashboard = "dashboard"

	// Account pages.
	PageUsers    = "users"
	PageUserView = "user-view" // account detail view
	PageUserForm = "user-form"

	// Catalog pages. Plans are managed inside the categories page.
	PageCategories  = "categories"
	PageSubjects    = "subjects"
	PageSubjectForm = "subject-form"
	PageChapters    = "chapters"
	PageBoards      = "boards"

	// Course pages.
	PageCourses        = "courses"
	PageCourseChapters = "course-chapters"

	// Platform settings pages.
	PageCommission = "commission-settings"
	PageThumbnails = "thumbnails"
	PageSettings   = "settings"
	PageAnalytics  = "analytics"

	// Public pages.
	PageLogin  = "login"
	PageSignup = "signup"
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)

// FormMode represents the mode of a form (create or edit).
// Using a dedicated type improves compile-time checks and prevents typos.
type FormMode string

const (
	// FormModeEdit indicates the form is in edit mode.
	FormModeEdit FormMode = "edit"
	// FormModeCreate indicates the form is in create mode.
	FormModeCreate FormMode = "create"
)

// Content templates are defined once and reused to avoid per-call allocations.
//
//nolint:gochecknoglobals // static read-only lookup for templates; avoids per-call allocations
var contentTemplates = map[string]string{
	PageHome:           "dashboard-content", // Home page shows the dashboard
	PageDashboard:      "dashboard-content",
	PageUsers:          "users-content",
	PageUserView:       "user-view-content",
	PageUserForm:       "user-form-content",
	PageCategories:     "categories-content",
	PageSubjects:       "subjects-content",
	PageSubjectForm:    "subject-form-content",
	PageChapters:       "chapters-content",
	PageBoards:         "boards-content",
	PageCourses:        "courses-content",
	PageCourseChapters: "course-chapters-content",
	PageCommission:     "commission-content",
	PageThumbnails:     "thumbnails-content",
	PageSettings:       "settings-content",
	PageAnalytics:      "analytics-content",
	PageLogin:          "login-content",
	PageSignup:         "signup-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
// This is the single source of truth for page-to-template mapping.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to dashboard-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := ContentTemplateMap()[currentPage]; ok {
		return name
	}
	return "dashboard-content"
}

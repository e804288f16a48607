package httpx

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adhyanguru/admin-go/internal/domain/model"
	"github.com/adhyanguru/admin-go/internal/http/ui/viewmodel"
)

// fragmentTemplates are rendered standalone by handlers, outside the
// content-template map.
var fragmentTemplates = []string{
	"dashboard-counts-fragment",
	"subcategories-fragment",
	"plans-fragment",
	"category-form-fragment",
	"subcategory-form-fragment",
	"plan-form-fragment",
	"plan-bulk-form-fragment",
	"board-form-fragment",
	"course-form-fragment",
	"chapter-form-fragment",
	"course-chapter-form-fragment",
	"thumbnail-form-fragment",
	"user-edit-form-fragment",
}

func TestAllContentTemplatesDefined(t *testing.T) {
	tr := RequireTemplateRenderer(t)
	if tr == nil {
		return
	}

	for page, name := range ContentTemplateMap() {
		assert.NotNil(t, tr.t.Lookup(name), "missing content template %q for page %q", name, page)
	}
	for _, name := range fragmentTemplates {
		assert.NotNil(t, tr.t.Lookup(name), "missing fragment template %q", name)
	}
	for _, name := range []string{"layout", "content", "sidebar", "error-layout", "pagination"} {
		assert.NotNil(t, tr.t.Lookup(name), "missing template %q", name)
	}
}

func loginPageData() map[string]any {
	return map[string]any{
		"Title":           "Sign In",
		"PageTitle":       "Sign In",
		"CurrentPage":     PageLogin,
		"IsAuthenticated": false,
		"CanManageUsers":  false,
		"Theme":           model.ResolveTheme(model.DefaultThemeID),
		"RedirectURI":     "/dashboard",
		"SignupEnabled":   true,
	}
}

func TestRenderFull_LoginPage(t *testing.T) {
	tr := RequireTemplateRenderer(t)
	if tr == nil {
		return
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/login", nil)
	err := tr.RenderFull(w, req, loginPageData())
	assert.NoError(t, err)

	body := w.Body.String()
	assert.True(t, ContainsAll(body, []string{
		"<!DOCTYPE html>",
		`action="/login"`,
		`name="redirect_uri"`,
		"Create an account",
		"auth-shell",
	}), "unexpected login page body:\n%s", body)
	// No sidebar for anonymous visitors.
	assert.NotContains(t, body, "sidebar-nav")
}

func TestRenderFull_DashboardForAdmin(t *testing.T) {
	tr := RequireTemplateRenderer(t)
	if tr == nil {
		return
	}

	data := map[string]any{
		"Title":           "Adhyan Guru - Dashboard",
		"PageTitle":       "Dashboard",
		"CurrentPage":     PageDashboard,
		"IsAuthenticated": true,
		"CanManageUsers":  true,
		"Theme":           model.ResolveTheme("dark"),
		"CSRFToken":       "tok-csrf",
		"User":            &viewmodel.User{Name: "Asha", Email: "asha@example.com", Role: "super-admin"},
		"Counts":          &model.DashboardCounts{Users: 1200, Courses: 34},
		"CountsError":     "",
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/dashboard", nil)
	err := tr.RenderFull(w, req, data)
	assert.NoError(t, err)

	body := w.Body.String()
	assert.True(t, ContainsAll(body, []string{
		"sidebar-nav",
		"asha@example.com",
		"1,200",
		"X-Csrf-Token",
		"/commission-settings", // admin-only nav entry
	}), "unexpected dashboard body:\n%s", body)
}

func TestRenderContent_UsersList(t *testing.T) {
	tr := RequireTemplateRenderer(t)
	if tr == nil {
		return
	}

	data := map[string]any{
		"Title":           "Adhyan Guru - Users",
		"PageTitle":       "Users",
		"CurrentPage":     PageUsers,
		"IsAuthenticated": true,
		"CanManageUsers":  true,
		"Theme":           model.ResolveTheme(model.DefaultThemeID),
		"Query":           "asha",
		"Page":            1,
		"PageSize":        10,
		"HasPrev":         false,
		"HasNext":         false,
		"StartIndex":      1,
		"EndIndex":        1,
		"TotalCount":      1,
		"Users": []model.User{{
			ID:        "u1",
			Email:     "asha@example.com",
			FirstName: "Asha",
			LastName:  "Nair",
			Role:      "coordinator",
			District:  "Kollam",
			IsActive:  true,
			CreatedAt: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		}},
	}

	var buf bytes.Buffer
	err := tr.t.ExecuteTemplate(&buf, "users-content", data)
	assert.NoError(t, err)

	body := buf.String()
	assert.True(t, ContainsAll(body, []string{
		"Asha Nair",
		"asha@example.com",
		"/users/u1",
		"badge-success",
	}), "unexpected users list body:\n%s", body)
}

func TestRenderContent_CategoryFormEditMode(t *testing.T) {
	tr := RequireTemplateRenderer(t)
	if tr == nil {
		return
	}

	data := map[string]any{
		"Mode":       "edit",
		"CategoryID": "c1",
		"Error":      true,
		"ErrorMessage": "Please fix the errors below.",
		"Errors":     map[string]string{"name": "Name is required."},
		"CSRFToken":  "tok",
		"FormData": map[string]any{
			"Input": map[string]any{"Name": "", "Description": "d", "IsActive": true},
		},
	}

	var buf bytes.Buffer
	err := tr.t.ExecuteTemplate(&buf, "category-form-fragment", data)
	assert.NoError(t, err)

	body := buf.String()
	assert.True(t, ContainsAll(body, []string{
		`hx-post="/categories/c1"`,
		"Name is required.",
		"modal open",
	}), "unexpected category form body:\n%s", body)
}

func TestRenderError_Page(t *testing.T) {
	tr := RequireTemplateRenderer(t)
	if tr == nil {
		return
	}

	data := map[string]any{
		"Title":     "Page Not Found",
		"Code":      404,
		"Message":   "The page you are looking for does not exist.",
		"ShowLogin": false,
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/nope", nil)
	err := tr.RenderError(w, req, data)
	assert.NoError(t, err)
	assert.Contains(t, w.Body.String(), "404")
}

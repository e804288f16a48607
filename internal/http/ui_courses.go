package httpx

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	"github.com/adhyanguru/admin-go/internal/domain/model"
	"github.com/adhyanguru/admin-go/internal/http/validation"
)

// Courses serves the standalone course list page.
func (h *UIHandlers) Courses(w http.ResponseWriter, r *http.Request) {
	isActive := ParseBoolFilter(r.URL.Query(), "active")

	HandleList(ListHandlerOpts[model.Course]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context, token string) ([]model.Course, int, error) {
			return h.CourseSvc.List(ctx, token, isActive)
		},
		SearchFields: func(c model.Course) []string {
			return []string{c.Title, c.Description}
		},
		BasePath:     "/courses",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Courses", PageTitle: "Courses", CurrentPage: PageCourses},
		ItemsKey:     "Courses",
		ErrorMessage: "Unable to load courses.",
	})
}

// courseFormData bundles the parsed course fields with the optional
// thumbnail upload.
type courseFormData struct {
	Input     model.CourseInput
	Thumbnail *apiclient.FileUpload
}

func parseCourseForm(r *http.Request) (courseFormData, map[string]string) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return courseFormData{}, map[string]string{"_": "Invalid form submission."}
	}

	priceRaw := strings.TrimSpace(r.FormValue("price"))

	input := model.CourseInput{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		IsActive:    checkboxValue(r, "isActive"),
	}

	errs := validation.New().
		Validate("title", input.Title, validation.Required("Title", 200)).
		Validate("price", priceRaw, validation.FloatRange("Price", 0, 10_000_000)).
		Validate("description", input.Description, validation.Optional("Description", 2000)).
		Errors()

	if price, err := strconv.ParseFloat(priceRaw, 64); err == nil {
		input.Price = &price
	}

	thumbnail, msg := parseUpload(r, "thumbnail", validation.KindImage)
	if msg != "" {
		errs["thumbnail"] = msg
	}

	return courseFormData{Input: input, Thumbnail: thumbnail}, errs
}

// CourseCreate handles POST to create a course.
func (h *UIHandlers) CourseCreate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[courseFormData]{
		W:      w,
		R:      r,
		Mode:   FormModeCreate,
		Parser: parseCourseForm,
		Create: func(ctx context.Context, token string, data courseFormData) error {
			_, err := h.CourseSvc.Create(ctx, token, data.Input, data.Thumbnail)
			return err
		},
		Renderer:     h.renderCourseForm,
		SuccessURL:   "/courses",
		SuccessToast: "Course created.",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Courses", PageTitle: "Courses", CurrentPage: PageCourses},
	})
}

// CourseUpdate handles POST to update a course.
func (h *UIHandlers) CourseUpdate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[courseFormData]{
		W:      w,
		R:      r,
		Mode:   FormModeEdit,
		Parser: parseCourseForm,
		Update: func(ctx context.Context, token, id string, data courseFormData) error {
			_, err := h.CourseSvc.Update(ctx, token, id, data.Input, data.Thumbnail)
			return err
		},
		Renderer:     h.renderCourseForm,
		ExtraData:    map[string]any{"CourseID": r.PathValue("id")},
		SuccessURL:   "/courses",
		SuccessToast: "Course updated.",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Courses", PageTitle: "Courses", CurrentPage: PageCourses},
	})
}

// CourseDelete handles POST to delete a course.
func (h *UIHandlers) CourseDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Delete:       h.CourseSvc.Delete,
		RedirectPath: "/courses",
		SuccessToast: "Course deleted.",
		ErrorMessage: "Unable to delete course. It may have chapters.",
	})
}

func (h *UIHandlers) renderCourseForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{R: r, Data: data, DefaultMode: FormModeCreate})
	h.renderFragment(w, r, fragmentRenderOptions{Template: "course-form-fragment", Data: data})
}

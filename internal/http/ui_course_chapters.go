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

// CourseChapters serves the chapter list for one course.
func (h *UIHandlers) CourseChapters(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("courseId")
	if courseID == "" {
		h.NotFound(w, r)
		return
	}

	course, err := h.CourseSvc.GetByID(r.Context(), SessionToken(r.Context()), courseID)
	if err != nil {
		if isUnauthorized(err) {
			h.forceLogout(w, r)
			return
		}
		h.NotFound(w, r)
		return
	}

	HandleList(ListHandlerOpts[model.CourseChapter]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context, token string) ([]model.CourseChapter, int, error) {
			return h.CourseSvc.ListChapters(ctx, token, courseID, nil)
		},
		SearchFields: func(c model.CourseChapter) []string {
			return []string{c.Title, c.Description, c.Content.Text}
		},
		EnrichData: func(builder *TemplateDataBuilder, _ []model.CourseChapter) {
			builder.With("Course", course).With("CourseID", courseID)
		},
		BasePath:     "/course-chapters/" + courseID,
		PageMeta:     PageMeta{Title: "Adhyan Guru - Course Chapters", PageTitle: "Chapters: " + course.Title, CurrentPage: PageCourseChapters},
		ItemsKey:     "Chapters",
		ErrorMessage: "Unable to load course chapters.",
	})
}

// courseChapterFormData bundles the parsed chapter fields with the optional
// pdf and video uploads.
type courseChapterFormData struct {
	Input model.CourseChapterInput
	PDF   *apiclient.FileUpload
	Video *apiclient.FileUpload
}

func parseCourseChapterForm(r *http.Request) (courseChapterFormData, map[string]string) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return courseChapterFormData{}, map[string]string{"_": "Invalid form submission."}
	}

	input := model.CourseChapterInput{
		CourseID:    strings.TrimSpace(r.FormValue("course")),
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Text:        strings.TrimSpace(r.FormValue("textContent")),
		IsActive:    checkboxValue(r, "isActive"),
	}

	errs := validation.New().
		Validate("title", input.Title, validation.Required("Title", 200)).
		Validate("course", input.CourseID, validation.Required("Course", 64)).
		Validate("description", input.Description, validation.Optional("Description", 2000)).
		Errors()

	if raw := strings.TrimSpace(r.FormValue("order")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			errs["order"] = "Order must be a non-negative number."
		} else {
			input.Order = &n
		}
	}

	pdf, msg := parseUpload(r, "pdf", validation.KindPDF)
	if msg != "" {
		errs["pdf"] = msg
	}
	video, msg := parseUpload(r, "video", validation.KindVideo)
	if msg != "" {
		errs["video"] = msg
	}

	return courseChapterFormData{Input: input, PDF: pdf, Video: video}, errs
}

// CourseChapterCreate handles POST to create a course chapter.
func (h *UIHandlers) CourseChapterCreate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[courseChapterFormData]{
		W:      w,
		R:      r,
		Mode:   FormModeCreate,
		Parser: parseCourseChapterForm,
		Create: func(ctx context.Context, token string, data courseChapterFormData) error {
			_, err := h.CourseSvc.CreateChapter(ctx, token, data.Input, data.PDF, data.Video)
			return err
		},
		Renderer:     h.renderCourseChapterForm,
		SuccessURL:   courseChaptersPathFor(r),
		SuccessToast: "Chapter created.",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Course Chapters", PageTitle: "Course Chapters", CurrentPage: PageCourseChapters},
	})
}

// CourseChapterUpdate handles POST to update a course chapter.
func (h *UIHandlers) CourseChapterUpdate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[courseChapterFormData]{
		W:      w,
		R:      r,
		Mode:   FormModeEdit,
		Parser: parseCourseChapterForm,
		Update: func(ctx context.Context, token, id string, data courseChapterFormData) error {
			_, err := h.CourseSvc.UpdateChapter(ctx, token, id, data.Input, data.PDF, data.Video)
			return err
		},
		Renderer:     h.renderCourseChapterForm,
		ExtraData:    map[string]any{"ChapterID": r.PathValue("id")},
		SuccessURL:   courseChaptersPathFor(r),
		SuccessToast: "Chapter updated.",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Course Chapters", PageTitle: "Course Chapters", CurrentPage: PageCourseChapters},
	})
}

// CourseChapterDelete handles POST to delete a course chapter.
func (h *UIHandlers) CourseChapterDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Delete:       h.CourseSvc.DeleteChapter,
		RedirectPath: courseChaptersPathFor(r),
		SuccessToast: "Chapter deleted.",
		ErrorMessage: "Unable to delete chapter.",
	})
}

// courseChaptersPathFor rebuilds the course's chapter list path from the form.
func courseChaptersPathFor(r *http.Request) string {
	courseID := strings.TrimSpace(r.FormValue("course"))
	if courseID == "" {
		return "/courses"
	}
	return "/course-chapters/" + courseID
}

func (h *UIHandlers) renderCourseChapterForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{R: r, Data: data, DefaultMode: FormModeCreate})
	h.renderFragment(w, r, fragmentRenderOptions{Template: "course-chapter-form-fragment", Data: data})
}

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

// Chapters serves the chapter list for one subject. The subject itself is
// refetched so the page header reflects the current upstream title.
func (h *UIHandlers) Chapters(w http.ResponseWriter, r *http.Request) {
	subjectID := r.PathValue("subjectId")
	if subjectID == "" {
		h.NotFound(w, r)
		return
	}

	subject, err := h.SubjectSvc.GetByID(r.Context(), SessionToken(r.Context()), subjectID)
	if err != nil {
		if isUnauthorized(err) {
			h.forceLogout(w, r)
			return
		}
		h.NotFound(w, r)
		return
	}

	HandleList(ListHandlerOpts[model.Chapter]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context, token string) ([]model.Chapter, int, error) {
			return h.ChapterSvc.ListBySubject(ctx, token, subjectID, nil)
		},
		SearchFields: func(c model.Chapter) []string {
			return []string{c.Title, c.Description, c.Content.Text}
		},
		EnrichData: func(builder *TemplateDataBuilder, _ []model.Chapter) {
			builder.With("Subject", subject).With("SubjectID", subjectID)
		},
		BasePath:     "/chapters/" + subjectID,
		PageMeta:     PageMeta{Title: "Adhyan Guru - Chapters", PageTitle: "Chapters: " + subject.Title, CurrentPage: PageChapters},
		ItemsKey:     "Chapters",
		ErrorMessage: "Unable to load chapters.",
	})
}

// chapterFormData bundles the parsed chapter fields with the optional pdf
// and video uploads.
type chapterFormData struct {
	Input model.ChapterInput
	PDF   *apiclient.FileUpload
	Video *apiclient.FileUpload
}

func parseChapterForm(r *http.Request) (chapterFormData, map[string]string) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return chapterFormData{}, map[string]string{"_": "Invalid form submission."}
	}

	input := model.ChapterInput{
		Title:       strings.TrimSpace(r.FormValue("title")),
		SubjectID:   strings.TrimSpace(r.FormValue("subject")),
		Description: strings.TrimSpace(r.FormValue("description")),
		TextContent: strings.TrimSpace(r.FormValue("textContent")),
		IsActive:    checkboxValue(r, "isActive"),
	}

	errs := validation.New().
		Validate("title", input.Title, validation.Required("Title", 200)).
		Validate("subject", input.SubjectID, validation.Required("Subject", 64)).
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

	return chapterFormData{Input: input, PDF: pdf, Video: video}, errs
}

// ChapterCreate handles POST to create a chapter.
func (h *UIHandlers) ChapterCreate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[chapterFormData]{
		W:      w,
		R:      r,
		Mode:   FormModeCreate,
		Parser: parseChapterForm,
		Create: func(ctx context.Context, token string, data chapterFormData) error {
			_, err := h.ChapterSvc.Create(ctx, token, data.Input, data.PDF, data.Video)
			return err
		},
		Renderer:     h.renderChapterForm,
		SuccessURL:   chaptersPathFor(r),
		SuccessToast: "Chapter created.",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Chapters", PageTitle: "Chapters", CurrentPage: PageChapters},
	})
}

// ChapterUpdate handles POST to update a chapter.
func (h *UIHandlers) ChapterUpdate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[chapterFormData]{
		W:      w,
		R:      r,
		Mode:   FormModeEdit,
		Parser: parseChapterForm,
		Update: func(ctx context.Context, token, id string, data chapterFormData) error {
			_, err := h.ChapterSvc.Update(ctx, token, id, data.Input, data.PDF, data.Video)
			return err
		},
		Renderer:     h.renderChapterForm,
		ExtraData:    map[string]any{"ChapterID": r.PathValue("id")},
		SuccessURL:   chaptersPathFor(r),
		SuccessToast: "Chapter updated.",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Chapters", PageTitle: "Chapters", CurrentPage: PageChapters},
	})
}

// ChapterDelete handles POST to delete a chapter.
func (h *UIHandlers) ChapterDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Delete:       h.ChapterSvc.Delete,
		RedirectPath: chaptersPathFor(r),
		SuccessToast: "Chapter deleted.",
		ErrorMessage: "Unable to delete chapter.",
	})
}

// chaptersPathFor rebuilds the subject's chapter list path from the form.
// The subject id travels in the form so chapter actions can navigate back.
func chaptersPathFor(r *http.Request) string {
	subjectID := strings.TrimSpace(r.FormValue("subject"))
	if subjectID == "" {
		return "/subjects"
	}
	return "/chapters/" + subjectID
}

func (h *UIHandlers) renderChapterForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{R: r, Data: data, DefaultMode: FormModeCreate})
	h.renderFragment(w, r, fragmentRenderOptions{Template: "chapter-form-fragment", Data: data})
}

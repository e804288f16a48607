package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	"github.com/adhyanguru/admin-go/internal/domain/model"
	"github.com/adhyanguru/admin-go/internal/http/validation"
)

// Subjects serves the subject list page with local search and optional
// category filters.
func (h *UIHandlers) Subjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := model.SubjectListOptions{
		MainCategoryID: strings.TrimSpace(q.Get("mainCategory")),
		SubCategoryID:  strings.TrimSpace(q.Get("subCategory")),
		IsActive:       ParseBoolFilter(q, "active"),
	}

	HandleList(ListHandlerOpts[model.Subject]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context, token string) ([]model.Subject, int, error) {
			return h.SubjectSvc.List(ctx, token, opts)
		},
		SearchFields: func(s model.Subject) []string {
			return []string{s.Title, s.Description, s.MainCategory.Name, s.SubCategory.Name}
		},
		EnrichData: func(builder *TemplateDataBuilder, _ []model.Subject) {
			builder.With("MainCategoryFilter", opts.MainCategoryID).
				With("SubCategoryFilter", opts.SubCategoryID)
		},
		BasePath:     "/subjects",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Subjects", PageTitle: "Subjects", CurrentPage: PageSubjects},
		ItemsKey:     "Subjects",
		ErrorMessage: "Unable to load subjects.",
	})
}

// subjectFormData bundles the parsed subject fields with the optional
// thumbnail upload.
type subjectFormData struct {
	Input     model.SubjectInput
	Thumbnail *apiclient.FileUpload
}

func parseSubjectForm(r *http.Request) (subjectFormData, map[string]string) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return subjectFormData{}, map[string]string{"_": "Invalid form submission."}
	}

	input := model.SubjectInput{
		Title:          strings.TrimSpace(r.FormValue("title")),
		MainCategoryID: strings.TrimSpace(r.FormValue("mainCategory")),
		SubCategoryID:  strings.TrimSpace(r.FormValue("subCategory")),
		BoardID:        strings.TrimSpace(r.FormValue("board")),
		Description:    strings.TrimSpace(r.FormValue("description")),
		IsActive:       checkboxValue(r, "isActive"),
	}

	errs := validation.New().
		Validate("title", input.Title, validation.Required("Title", 200)).
		Validate("mainCategory", input.MainCategoryID, validation.Required("Main category", 64)).
		Validate("subCategory", input.SubCategoryID, validation.Required("Sub category", 64)).
		Validate("description", input.Description, validation.Optional("Description", 2000)).
		Errors()

	thumbnail, msg := parseUpload(r, "thumbnail", validation.KindImage)
	if msg != "" {
		errs["thumbnail"] = msg
	}

	return subjectFormData{Input: input, Thumbnail: thumbnail}, errs
}

func subjectFormTitles(mode FormMode) (string, string) {
	if mode == FormModeEdit {
		return "Adhyan Guru - Edit Subject", "Edit Subject"
	}
	return "Adhyan Guru - New Subject", "New Subject"
}

// SubjectNew renders the subject create form.
func (h *UIHandlers) SubjectNew(w http.ResponseWriter, r *http.Request) {
	h.renderSubjectForm(w, r, map[string]any{
		"Mode": FormModeCreate,
	})
}

// SubjectEdit renders the edit form. The subject is always refetched by id
// so the form reflects the current upstream state, not a cached list row.
func (h *UIHandlers) SubjectEdit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	subject, err := h.SubjectSvc.GetByID(r.Context(), SessionToken(r.Context()), id)
	if err != nil {
		if isUnauthorized(err) {
			h.forceLogout(w, r)
			return
		}
		h.NotFound(w, r)
		return
	}

	boardID := ""
	if subject.Board != nil {
		boardID = subject.Board.ID
	}
	h.renderSubjectForm(w, r, map[string]any{
		"Mode":      FormModeEdit,
		"SubjectID": subject.ID,
		"FormData": subjectFormData{Input: model.SubjectInput{
			Title:          subject.Title,
			MainCategoryID: subject.MainCategory.ID,
			SubCategoryID:  subject.SubCategory.ID,
			BoardID:        boardID,
			Description:    subject.Description,
			IsActive:       &subject.IsActive,
		}},
		"CurrentThumbnail": subject.Thumbnail,
	})
}

// SubjectCreate handles POST to create a subject.
func (h *UIHandlers) SubjectCreate(w http.ResponseWriter, r *http.Request) {
	title, pageTitle := subjectFormTitles(FormModeCreate)
	HandleForm(FormHandlerOpts[subjectFormData]{
		W:      w,
		R:      r,
		Mode:   FormModeCreate,
		Parser: parseSubjectForm,
		Create: func(ctx context.Context, token string, data subjectFormData) error {
			_, err := h.SubjectSvc.Create(ctx, token, data.Input, data.Thumbnail)
			return err
		},
		Renderer:     h.renderSubjectForm,
		SuccessURL:   "/subjects",
		SuccessToast: "Subject created.",
		PageMeta:     PageMeta{Title: title, PageTitle: pageTitle, CurrentPage: PageSubjectForm},
	})
}

// SubjectUpdate handles POST to update an existing subject.
func (h *UIHandlers) SubjectUpdate(w http.ResponseWriter, r *http.Request) {
	title, pageTitle := subjectFormTitles(FormModeEdit)
	HandleForm(FormHandlerOpts[subjectFormData]{
		W:      w,
		R:      r,
		Mode:   FormModeEdit,
		Parser: parseSubjectForm,
		Update: func(ctx context.Context, token, id string, data subjectFormData) error {
			_, err := h.SubjectSvc.Update(ctx, token, id, data.Input, data.Thumbnail)
			return err
		},
		Renderer:     h.renderSubjectForm,
		ExtraData:    map[string]any{"SubjectID": r.PathValue("id")},
		SuccessURL:   "/subjects",
		SuccessToast: "Subject updated.",
		PageMeta:     PageMeta{Title: title, PageTitle: pageTitle, CurrentPage: PageSubjectForm},
	})
}

// SubjectDelete handles POST to delete a subject.
func (h *UIHandlers) SubjectDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Delete:       h.SubjectSvc.Delete,
		RedirectPath: "/subjects",
		SuccessToast: "Subject deleted.",
		ErrorMessage: "Unable to delete subject. It may have chapters.",
	})
}

// renderSubjectForm renders the subject form page with the category and
// board select options loaded.
func (h *UIHandlers) renderSubjectForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{
		R:           r,
		Data:        data,
		DefaultMode: FormModeCreate,
		MetaForMode: func(mode FormMode) PageMeta {
			title, pageTitle := subjectFormTitles(mode)
			return PageMeta{Title: title, PageTitle: pageTitle, CurrentPage: PageSubjectForm}
		},
	})
	h.loadSubjectFormOptions(r.Context(), data)
	h.renderDashboardPage(w, r, data)
}

// loadSubjectFormOptions fetches the main/sub category and board selects.
// Option failures degrade the form rather than blocking it.
func (h *UIHandlers) loadSubjectFormOptions(ctx context.Context, data map[string]any) {
	token := SessionToken(ctx)

	mains, _, mainErr := h.CategorySvc.ListMain(ctx, token, nil)
	subs, _, subErr := h.CategorySvc.ListSub(ctx, token, model.CategoryListOptions{})
	boards, _, boardErr := h.BoardSvc.List(ctx, token, nil)

	data["MainCategoryOptions"] = mains
	data["SubCategoryOptions"] = subs
	data["BoardOptions"] = boards

	if mainErr != nil || subErr != nil || boardErr != nil {
		h.logger().WarnContext(ctx, "failed to load subject form options",
			"main_err", mainErr, "sub_err", subErr, "board_err", boardErr)
		data["Error"] = true
		data["ErrorMessage"] = "Some select options failed to load. Reload the page and try again."
	}
}

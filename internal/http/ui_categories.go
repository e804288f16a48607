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

// Categories serves the two-level category page. Sub categories and plans
// load lazily into the page as HTMX fragments when a row is expanded.
func (h *UIHandlers) Categories(w http.ResponseWriter, r *http.Request) {
	isActive := ParseBoolFilter(r.URL.Query(), "active")

	HandleList(ListHandlerOpts[model.MainCategory]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context, token string) ([]model.MainCategory, int, error) {
			return h.CategorySvc.ListMain(ctx, token, isActive)
		},
		SearchFields: func(c model.MainCategory) []string {
			return []string{c.Name, c.Description}
		},
		EnrichData: func(builder *TemplateDataBuilder, _ []model.MainCategory) {
			if isActive != nil {
				builder.With("ActiveFilterSet", true).With("Active", strconv.FormatBool(*isActive))
			}
		},
		BasePath:     "/categories",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Categories", PageTitle: "Categories", CurrentPage: PageCategories},
		ItemsKey:     "Categories",
		ErrorMessage: "Unable to load categories.",
	})
}

// SubCategoriesFragment serves the sub-category rows nested under one main
// category.
func (h *UIHandlers) SubCategoriesFragment(w http.ResponseWriter, r *http.Request) {
	mainID := r.PathValue("id")
	if mainID == "" {
		h.NotFound(w, r)
		return
	}

	data := basePageData(r, PageMeta{})
	data["MainCategoryID"] = mainID
	EchoListSeq(w, r)

	subs, _, err := h.CategorySvc.ListSub(r.Context(), SessionToken(r.Context()), model.CategoryListOptions{MainCategoryID: mainID})
	if err != nil {
		if isUnauthorized(err) {
			h.forceLogout(w, r)
			return
		}
		data["Error"] = true
		data["ErrorMessage"] = apiclient.UserMessage(err, "Unable to load sub categories.")
	} else {
		data["SubCategories"] = subs
	}

	h.renderFragment(w, r, fragmentRenderOptions{Template: "subcategories-fragment", Data: data})
}

// PlansFragment serves the plan rows nested under one sub category.
func (h *UIHandlers) PlansFragment(w http.ResponseWriter, r *http.Request) {
	subID := r.PathValue("id")
	if subID == "" {
		h.NotFound(w, r)
		return
	}

	data := basePageData(r, PageMeta{})
	data["SubCategoryID"] = subID
	data["PlanDurations"] = model.PlanDurations()
	EchoListSeq(w, r)

	plans, _, err := h.PlanSvc.ListBySubCategory(r.Context(), SessionToken(r.Context()), subID, nil)
	if err != nil {
		if isUnauthorized(err) {
			h.forceLogout(w, r)
			return
		}
		data["Error"] = true
		data["ErrorMessage"] = apiclient.UserMessage(err, "Unable to load plans.")
	} else {
		data["Plans"] = plans
	}

	h.renderFragment(w, r, fragmentRenderOptions{Template: "plans-fragment", Data: data})
}

// --- Main category forms ---

// categoryFormData bundles the parsed main-category fields with the
// optional image upload.
type categoryFormData struct {
	Input model.CategoryInput
	Image *apiclient.FileUpload
}

func parseCategoryForm(r *http.Request) (categoryFormData, map[string]string) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return categoryFormData{}, map[string]string{"_": "Invalid form submission."}
	}

	input := model.CategoryInput{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: strings.TrimSpace(r.FormValue("description")),
		IsActive:    checkboxValue(r, "isActive"),
	}

	errs := validation.New().
		Validate("name", input.Name, validation.Required("Name", 150)).
		Validate("description", input.Description, validation.Optional("Description", 1000)).
		Errors()

	image, msg := parseUpload(r, "image", validation.KindImage)
	if msg != "" {
		errs["image"] = msg
	}

	return categoryFormData{Input: input, Image: image}, errs
}

// checkboxValue maps an HTML checkbox to a tri-state flag. An absent field
// leaves the upstream value untouched on update.
func checkboxValue(r *http.Request, field string) *bool {
	if _, ok := r.Form[field]; !ok {
		return nil
	}
	b := r.FormValue(field) == "on" || r.FormValue(field) == StrTrue
	return &b
}

// CategoryCreate handles POST to create a main category.
func (h *UIHandlers) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[categoryFormData]{
		W:      w,
		R:      r,
		Mode:   FormModeCreate,
		Parser: parseCategoryForm,
		Create: func(ctx context.Context, token string, data categoryFormData) error {
			_, err := h.CategorySvc.CreateMain(ctx, token, data.Input, data.Image)
			return err
		},
		Renderer:     h.renderCategoryForm,
		SuccessURL:   "/categories",
		SuccessToast: "Category created.",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Categories", PageTitle: "Categories", CurrentPage: PageCategories},
	})
}

// CategoryUpdate handles POST to update a main category.
func (h *UIHandlers) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[categoryFormData]{
		W:      w,
		R:      r,
		Mode:   FormModeEdit,
		Parser: parseCategoryForm,
		Update: func(ctx context.Context, token, id string, data categoryFormData) error {
			_, err := h.CategorySvc.UpdateMain(ctx, token, id, data.Input, data.Image)
			return err
		},
		Renderer:     h.renderCategoryForm,
		ExtraData:    map[string]any{"CategoryID": r.PathValue("id")},
		SuccessURL:   "/categories",
		SuccessToast: "Category updated.",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Categories", PageTitle: "Categories", CurrentPage: PageCategories},
	})
}

// CategoryDelete handles POST to delete a main category.
func (h *UIHandlers) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Delete:       h.CategorySvc.DeleteMain,
		RedirectPath: "/categories",
		SuccessToast: "Category deleted.",
		ErrorMessage: "Unable to delete category. It may have sub categories.",
	})
}

// renderCategoryForm re-renders the category modal fragment, preserving
// the submitted draft.
func (h *UIHandlers) renderCategoryForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{R: r, Data: data, DefaultMode: FormModeCreate})
	h.renderFragment(w, r, fragmentRenderOptions{Template: "category-form-fragment", Data: data})
}

// --- Sub category forms ---

type subCategoryFormData struct {
	Input model.SubCategoryInput
	Image *apiclient.FileUpload
}

func parseSubCategoryForm(r *http.Request) (subCategoryFormData, map[string]string) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return subCategoryFormData{}, map[string]string{"_": "Invalid form submission."}
	}

	input := model.SubCategoryInput{
		Name:           strings.TrimSpace(r.FormValue("name")),
		MainCategoryID: strings.TrimSpace(r.FormValue("mainCategory")),
		Description:    strings.TrimSpace(r.FormValue("description")),
		IsActive:       checkboxValue(r, "isActive"),
	}

	errs := validation.New().
		Validate("name", input.Name, validation.Required("Name", 150)).
		Validate("mainCategory", input.MainCategoryID, validation.Required("Main category", 64)).
		Validate("description", input.Description, validation.Optional("Description", 1000)).
		Errors()

	image, msg := parseUpload(r, "image", validation.KindImage)
	if msg != "" {
		errs["image"] = msg
	}

	return subCategoryFormData{Input: input, Image: image}, errs
}

// SubCategoryCreate handles POST to create a sub category.
func (h *UIHandlers) SubCategoryCreate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[subCategoryFormData]{
		W:      w,
		R:      r,
		Mode:   FormModeCreate,
		Parser: parseSubCategoryForm,
		Create: func(ctx context.Context, token string, data subCategoryFormData) error {
			_, err := h.CategorySvc.CreateSub(ctx, token, data.Input, data.Image)
			return err
		},
		Renderer:     h.renderSubCategoryForm,
		SuccessURL:   "/categories",
		SuccessToast: "Sub category created.",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Categories", PageTitle: "Categories", CurrentPage: PageCategories},
	})
}

// SubCategoryUpdate handles POST to update a sub category.
func (h *UIHandlers) SubCategoryUpdate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[subCategoryFormData]{
		W:      w,
		R:      r,
		Mode:   FormModeEdit,
		Parser: parseSubCategoryForm,
		Update: func(ctx context.Context, token, id string, data subCategoryFormData) error {
			_, err := h.CategorySvc.UpdateSub(ctx, token, id, data.Input, data.Image)
			return err
		},
		Renderer:     h.renderSubCategoryForm,
		ExtraData:    map[string]any{"SubCategoryID": r.PathValue("id")},
		SuccessURL:   "/categories",
		SuccessToast: "Sub category updated.",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Categories", PageTitle: "Categories", CurrentPage: PageCategories},
	})
}

// SubCategoryDelete handles POST to delete a sub category.
func (h *UIHandlers) SubCategoryDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Delete:       h.CategorySvc.DeleteSub,
		RedirectPath: "/categories",
		SuccessToast: "Sub category deleted.",
		ErrorMessage: "Unable to delete sub category. It may have subjects or plans.",
	})
}

func (h *UIHandlers) renderSubCategoryForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{R: r, Data: data, DefaultMode: FormModeCreate})
	h.renderFragment(w, r, fragmentRenderOptions{Template: "subcategory-form-fragment", Data: data})
}

// --- Plan forms ---

type planFormData struct {
	Input model.PlanInput
}

func parsePlanForm(r *http.Request) (planFormData, map[string]string) {
	if err := r.ParseForm(); err != nil {
		return planFormData{}, map[string]string{"_": "Invalid form submission."}
	}

	amountRaw := strings.TrimSpace(r.FormValue("amount"))
	durationRaw := strings.TrimSpace(r.FormValue("duration"))

	errs := validation.New().
		Validate("subCategoryId", strings.TrimSpace(r.FormValue("subCategoryId")), validation.Required("Sub category", 64)).
		Validate("amount", amountRaw, validation.FloatRange("Amount", 0, 10_000_000)).
		Validate("description", r.FormValue("description"), validation.Optional("Description", 500)).
		Errors()

	duration, ok := model.ParsePlanDuration(durationRaw)
	if !ok {
		errs["duration"] = "Select a valid duration."
	}

	input := model.PlanInput{
		SubCategoryID: strings.TrimSpace(r.FormValue("subCategoryId")),
		Duration:      duration,
		Description:   strings.TrimSpace(r.FormValue("description")),
		IsActive:      checkboxValue(r, "isActive"),
	}
	if amount, err := strconv.ParseFloat(amountRaw, 64); err == nil {
		input.Amount = &amount
	}

	return planFormData{Input: input}, errs
}

// PlanCreate handles POST to create one plan under a sub category.
func (h *UIHandlers) PlanCreate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[planFormData]{
		W:      w,
		R:      r,
		Mode:   FormModeCreate,
		Parser: parsePlanForm,
		Create: func(ctx context.Context, token string, data planFormData) error {
			_, err := h.PlanSvc.Create(ctx, token, data.Input)
			return err
		},
		Renderer:     h.renderPlanForm,
		SuccessURL:   "/categories",
		SuccessToast: "Plan created.",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Categories", PageTitle: "Categories", CurrentPage: PageCategories},
	})
}

// PlanUpdate handles POST to update one plan.
func (h *UIHandlers) PlanUpdate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[planFormData]{
		W:      w,
		R:      r,
		Mode:   FormModeEdit,
		Parser: parsePlanForm,
		Update: func(ctx context.Context, token, id string, data planFormData) error {
			_, err := h.PlanSvc.Update(ctx, token, id, data.Input)
			return err
		},
		Renderer:     h.renderPlanForm,
		ExtraData:    map[string]any{"PlanID": r.PathValue("id")},
		SuccessURL:   "/categories",
		SuccessToast: "Plan updated.",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Categories", PageTitle: "Categories", CurrentPage: PageCategories},
	})
}

// PlanDelete handles POST to delete one plan.
func (h *UIHandlers) PlanDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Delete:       h.PlanSvc.Delete,
		RedirectPath: "/categories",
		SuccessToast: "Plan deleted.",
		ErrorMessage: "Unable to delete plan.",
	})
}

func (h *UIHandlers) renderPlanForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{R: r, Data: data, DefaultMode: FormModeCreate})
	data["PlanDurations"] = model.PlanDurations()
	h.renderFragment(w, r, fragmentRenderOptions{Template: "plan-form-fragment", Data: data})
}

// --- Bulk plan creation ---

// planBulkFormData carries the duration grid from the bulk plan form.
type planBulkFormData struct {
	SubCategoryID string
	Specs         []model.PlanSpec
}

// parsePlanBulkForm reads one amount field per supported duration. Empty
// amounts mean the duration is skipped; at least one must be filled in.
func parsePlanBulkForm(r *http.Request) (planBulkFormData, map[string]string) {
	if err := r.ParseForm(); err != nil {
		return planBulkFormData{}, map[string]string{"_": "Invalid form submission."}
	}

	data := planBulkFormData{
		SubCategoryID: strings.TrimSpace(r.FormValue("subCategoryId")),
	}

	errs := validation.New().
		Validate("subCategoryId", data.SubCategoryID, validation.Required("Sub category", 64)).
		Errors()

	for _, d := range model.PlanDurations() {
		field := "amount_" + strings.ToLower(string(d))
		raw := strings.TrimSpace(r.FormValue(field))
		if raw == "" {
			continue
		}
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil || amount < 0 {
			errs[field] = "Amount must be a non-negative number."
			continue
		}
		data.Specs = append(data.Specs, model.PlanSpec{
			Duration:    d,
			Amount:      amount,
			Description: strings.TrimSpace(r.FormValue("description")),
		})
	}

	if len(data.Specs) == 0 && len(errs) == 0 {
		errs["_"] = "Enter an amount for at least one duration."
	}

	return data, errs
}

// PlanCreateBulk handles POST to create several plans for one sub category
// in a single request.
func (h *UIHandlers) PlanCreateBulk(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[planBulkFormData]{
		W:      w,
		R:      r,
		Mode:   FormModeCreate,
		Parser: parsePlanBulkForm,
		Create: func(ctx context.Context, token string, data planBulkFormData) error {
			_, _, err := h.PlanSvc.CreateBulk(ctx, token, data.SubCategoryID, data.Specs)
			return err
		},
		Renderer:     h.renderPlanBulkForm,
		SuccessURL:   "/categories",
		SuccessToast: "Plans created.",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Categories", PageTitle: "Categories", CurrentPage: PageCategories},
	})
}

func (h *UIHandlers) renderPlanBulkForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{R: r, Data: data, DefaultMode: FormModeCreate})
	data["PlanDurations"] = model.PlanDurations()
	h.renderFragment(w, r, fragmentRenderOptions{Template: "plan-bulk-form-fragment", Data: data})
}

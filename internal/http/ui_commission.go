package httpx

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// Commission serves the commission split page. An empty upstream record is
// a normal first-run state and renders the form with zeroes.
func (h *UIHandlers) Commission(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Adhyan Guru - Commission", PageTitle: "Commission Settings", CurrentPage: PageCommission},
		Fetch: func(ctx context.Context, data map[string]any) error {
			settings, err := h.CommissionSvc.Get(ctx, SessionToken(ctx))
			if err != nil {
				return err
			}
			data["Settings"] = settings
			data["Exists"] = settings != nil
			return nil
		},
	})
}

// commissionFormData carries the parsed split and whether a record already
// exists upstream, which decides create versus update.
type commissionFormData struct {
	Input  model.CommissionSettingsInput
	Exists bool
}

func parseCommissionForm(r *http.Request) (commissionFormData, map[string]string) {
	if err := r.ParseForm(); err != nil {
		return commissionFormData{}, map[string]string{"_": "Invalid form submission."}
	}

	errs := map[string]string{}
	parsePct := func(field string) float64 {
		raw := strings.TrimSpace(r.FormValue(field))
		if raw == "" {
			return 0
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs[field] = "Percentage must be a number."
			return 0
		}
		return f
	}

	data := commissionFormData{
		Input: model.CommissionSettingsInput{
			CoordinatorPercentage:         parsePct("coordinatorPercentage"),
			DistrictCoordinatorPercentage: parsePct("districtCoordinatorPercentage"),
			TeamLeaderPercentage:          parsePct("teamLeaderPercentage"),
			FieldEmployeePercentage:       parsePct("fieldEmployeePercentage"),
		},
		Exists: r.FormValue("exists") == StrTrue,
	}

	for field, msg := range data.Input.Validate() {
		if _, taken := errs[field]; !taken {
			errs[field] = msg
		}
	}

	return data, errs
}

// CommissionSave handles POST to write the commission split.
func (h *UIHandlers) CommissionSave(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[commissionFormData]{
		W:      w,
		R:      r,
		Mode:   FormModeCreate,
		Parser: parseCommissionForm,
		Create: func(ctx context.Context, token string, data commissionFormData) error {
			_, err := h.CommissionSvc.Save(ctx, token, data.Input, data.Exists)
			return err
		},
		Renderer:     h.renderCommissionForm,
		SuccessURL:   "/commission-settings",
		SuccessToast: "Commission settings saved.",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Commission", PageTitle: "Commission Settings", CurrentPage: PageCommission},
	})
}

func (h *UIHandlers) renderCommissionForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{
		R:           r,
		Data:        data,
		DefaultMode: FormModeCreate,
		MetaForMode: func(FormMode) PageMeta {
			return PageMeta{Title: "Adhyan Guru - Commission", PageTitle: "Commission Settings", CurrentPage: PageCommission}
		},
	})
	h.renderDashboardPage(w, r, data)
}

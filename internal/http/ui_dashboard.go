package httpx

import (
	"bytes"
	"context"
	"net/http"

	"github.com/adhyanguru/admin-go/internal/apiclient"
)

const errMsgUnableLoadCounts = "Unable to load dashboard counts."

// Index serves the root path. The console has no landing page of its own,
// so the root simply forwards to the dashboard.
func (h *UIHandlers) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusMovedPermanently)
}

// Dashboard serves the dashboard page with per-entity count tiles.
func (h *UIHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Adhyan Guru - Dashboard", PageTitle: "Dashboard", CurrentPage: PageDashboard},
		Fetch: func(ctx context.Context, data map[string]any) error {
			return h.populateCounts(ctx, data)
		},
	})
}

// populateCounts loads the aggregate tiles. Count failures degrade the page
// rather than blanking it, except when the token itself is rejected.
func (h *UIHandlers) populateCounts(ctx context.Context, data map[string]any) error {
	data["Counts"] = nil
	data["CountsError"] = ""

	if h.DashboardSvc == nil {
		data["CountsError"] = errMsgUnableLoadCounts
		return nil
	}

	counts, err := h.DashboardSvc.Counts(ctx, SessionToken(ctx))
	if err != nil {
		if isUnauthorized(err) {
			return err
		}
		h.logger().WarnContext(ctx, "failed to fetch dashboard counts", "error", err)
		data["CountsError"] = apiclient.UserMessage(err, errMsgUnableLoadCounts)
		return nil
	}

	data["Counts"] = counts
	return nil
}

// DashboardCountsFragment serves the count tiles for HTMX polling refresh.
func (h *UIHandlers) DashboardCountsFragment(w http.ResponseWriter, r *http.Request) {
	data := basePageData(r, PageMeta{})
	if err := h.populateCounts(r.Context(), data); err != nil {
		h.forceLogout(w, r)
		return
	}

	h.renderFragment(w, r, fragmentRenderOptions{
		Template: "dashboard-counts-fragment",
		Data:     data,
	})
}

// fragmentRenderOptions describes an HTMX fragment render.
type fragmentRenderOptions struct {
	Template string
	Data     map[string]any
}

// renderFragment renders an HTMX fragment with consistent headers and logging.
func (h *UIHandlers) renderFragment(w http.ResponseWriter, r *http.Request, opts fragmentRenderOptions) {
	var buf bytes.Buffer
	if err := h.T.t.ExecuteTemplate(&buf, opts.Template, opts.Data); err != nil {
		h.logger().ErrorContext(r.Context(), "failed to render fragment",
			"template", opts.Template,
			"error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Vary", "HX-Request")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger().ErrorContext(r.Context(), "failed to write fragment",
			"template", opts.Template,
			"error", err)
	}
}

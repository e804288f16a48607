package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// Settings serves the appearance settings page with the palette picker.
func (h *UIHandlers) Settings(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Adhyan Guru - Settings", PageTitle: "Settings", CurrentPage: PageSettings},
		Fetch: func(_ context.Context, data map[string]any) error {
			data["Themes"] = model.Themes()
			return nil
		},
	})
}

// SettingsTheme handles POST to switch the session's palette. The new
// palette takes effect on the next full render; the handler reloads the
// page so the swap is immediate.
func (h *UIHandlers) SettingsTheme(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		triggerToast(w, "Invalid form submission.", "error")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	themeID := strings.TrimSpace(r.PostFormValue("theme"))
	if _, ok := model.ThemeByID(themeID); !ok {
		triggerToast(w, "Select a valid theme.", "error")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	session := GetSessionFromContext(r.Context())
	if session == nil {
		forceLogoutResponse(w, r)
		return
	}

	if _, err := h.Auth.SetTheme(r.Context(), session.ID, themeID); err != nil {
		h.logger().ErrorContext(r.Context(), "failed to save theme", "error", err)
		triggerToast(w, apiclient.UserMessage(err, "Unable to save theme."), "error")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	triggerToast(w, "Theme updated.", "success")
	if IsHTMX(r) {
		SetHXRedirect(w, "/settings")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/settings", http.StatusSeeOther)
}

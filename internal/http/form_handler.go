package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	apperrors "github.com/adhyanguru/admin-go/internal/errors"
)

// FormParser parses form data from an HTTP request and returns the parsed data
// along with any field-level validation errors.
type FormParser[T any] func(r *http.Request) (T, map[string]string)

// FormRenderer is a function that renders the form template with the given data.
// This allows the form handler to work with different rendering strategies.
type FormRenderer func(w http.ResponseWriter, r *http.Request, data map[string]any)

// FormHandlerOpts contains all options needed to handle a form submission.
type FormHandlerOpts[T any] struct {
	W      http.ResponseWriter // Response writer
	R      *http.Request       // Request
	Mode   FormMode            // "create" or "edit"
	Parser FormParser[T]       // Function to parse form data
	// Create sends the parsed data to the platform API (create mode).
	Create func(ctx context.Context, token string, data T) error
	// Update sends the parsed data to the platform API (edit mode).
	Update func(ctx context.Context, token, id string, data T) error
	// Renderer re-renders the form, preserving the draft, on failure.
	Renderer FormRenderer
	// SuccessURL is where the browser navigates after a successful save.
	SuccessURL string
	// SuccessToast is shown after a successful save. Optional.
	SuccessToast string
	// PageMeta contains page metadata for rendering
	PageMeta PageMeta
	// Optional: additional data to pass to template on error
	ExtraData map[string]any
	// Optional: function to extract ID from request (defaults to r.PathValue("id"))
	GetID func(r *http.Request) string
	// Optional: HTTP status code to set on validation errors (defaults to 200 for HTMX compatibility)
	ErrorStatus int
}

// HandleForm is a generic form handler that processes Create and Update workflows.
// It handles form parsing, validation, platform API calls, error handling,
// and redirects. On any failure the submitted draft is re-rendered so the
// user's input survives the round trip.
func HandleForm[T any](opts FormHandlerOpts[T]) {
	if !validateFormOptions(opts) {
		return
	}

	// For edit mode, check ID first before parsing
	id, ok := checkFormID(opts)
	if !ok {
		return
	}

	data, fieldErrors := opts.Parser(opts.R)

	// If validation errors exist, re-render form with errors
	if len(fieldErrors) > 0 {
		opts.renderFormError(fieldErrors, "", data)
		return
	}

	err := executeFormOperation(opts, id, data)
	if err != nil {
		handleFormServiceError(opts, err, data)
		return
	}

	// Success: one toast, one navigation. The list refreshes exactly once.
	if opts.SuccessToast != "" {
		HTMX(opts.W).Toast(opts.SuccessToast, "success")
	}
	HTMX(opts.W).Redirect(opts.SuccessURL)
}

// validateFormOptions validates required options and mode.
func validateFormOptions[T any](opts FormHandlerOpts[T]) bool {
	if opts.Parser == nil || opts.Renderer == nil || (opts.Create == nil && opts.Update == nil) {
		http.Error(opts.W, "misconfigured form handler", http.StatusInternalServerError)
		return false
	}

	switch opts.Mode {
	case FormModeEdit, FormModeCreate:
		return true
	default:
		http.Error(opts.W, "invalid form mode", http.StatusBadRequest)
		return false
	}
}

// checkFormID checks and returns the ID for edit mode. Returns empty string and true for create mode.
func checkFormID[T any](opts FormHandlerOpts[T]) (string, bool) {
	if opts.Mode != FormModeEdit {
		return "", true
	}

	id := getFormID(opts)
	if id == "" {
		http.NotFound(opts.W, opts.R)
		return "", false
	}
	return id, true
}

// executeFormOperation executes the create or update operation based on mode.
func executeFormOperation[T any](opts FormHandlerOpts[T], id string, data T) error {
	token := SessionToken(opts.R.Context())
	if opts.Mode == FormModeEdit {
		if opts.Update == nil {
			return errors.New("update not supported")
		}
		return opts.Update(opts.R.Context(), token, id, data)
	}
	if opts.Create == nil {
		return errors.New("create not supported")
	}
	return opts.Create(opts.R.Context(), token, data)
}

// getFormID extracts the ID from the request, using custom getter if provided.
func getFormID[T any](opts FormHandlerOpts[T]) string {
	if opts.GetID != nil {
		return opts.GetID(opts.R)
	}
	return opts.R.PathValue("id")
}

// handleFormServiceError maps service and platform API errors onto the form.
func handleFormServiceError[T any](opts FormHandlerOpts[T], err error, data T) {
	// Special-case context cancellation/timeouts to avoid noisy UX
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		http.Error(opts.W, "request canceled", http.StatusRequestTimeout)
		return
	}

	// An expired or revoked token invalidates the whole session.
	if errors.Is(err, apiclient.ErrUnauthorized) {
		forceLogoutResponse(opts.W, opts.R)
		return
	}

	// Service-side validation carries the offending field.
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code == apperrors.ErrCodeValidation {
		if appErr.Field != "" {
			opts.renderFormError(map[string]string{appErr.Field: appErr.Message}, "", data)
			return
		}
		opts.renderFormError(nil, appErr.Message, data)
		return
	}

	// Platform API rejections surface their own message; network failures
	// fall back to the standard connectivity message.
	opts.renderFormError(nil, apiclient.UserMessage(err, "Unable to save. Please try again."), data)
}

// renderFormError renders the form with errors and preserves form data.
func (fh FormHandlerOpts[T]) renderFormError(fieldErrors map[string]string, generalError string, data T) {
	// Set HTTP status code for validation errors if configured
	if fh.ErrorStatus != 0 && len(fieldErrors) > 0 {
		fh.W.WriteHeader(fh.ErrorStatus)
	}

	templateData := NewTemplateData(fh.R, fh.PageMeta)

	if len(fieldErrors) > 0 {
		templateData.WithFieldErrors(fieldErrors)
	}

	if generalError != "" {
		templateData.WithError(generalError)
	} else if len(fieldErrors) > 0 {
		templateData.WithError(errMsgFixBelow)
	}

	templateData.With("Mode", fh.Mode)

	// Add any extra data first (so FormData can override if needed)
	if fh.ExtraData != nil {
		for k, v := range fh.ExtraData {
			templateData.With(k, v)
		}
	}

	// The parsed draft rides along so templates can re-fill every input.
	templateData.With("FormData", data)

	fh.Renderer(fh.W, fh.R, templateData.Build())
}

package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adhyanguru/admin-go/internal/apiclient"
)

func deleteRequest(t *testing.T, id, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/board/"+id+"/delete", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", id)
	return req
}

func TestHandleDelete_RequiresConfirmation(t *testing.T) {
	t.Parallel()
	h := &UIHandlers{}
	called := false

	w := httptest.NewRecorder()
	h.handleDelete(w, deleteRequest(t, "b1", ""), deleteHandlerOpts{
		Delete: func(context.Context, string, string) error {
			called = true
			return nil
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
	assert.Contains(t, w.Header().Get("Hx-Trigger"), "Deletion requires confirmation.")
}

func TestHandleDelete_ConfirmedDeletesAndRedirects(t *testing.T) {
	t.Parallel()
	h := &UIHandlers{}
	var gotID string

	w := httptest.NewRecorder()
	h.handleDelete(w, deleteRequest(t, "b1", "confirm=true"), deleteHandlerOpts{
		Delete: func(_ context.Context, _ string, id string) error {
			gotID = id
			return nil
		},
		RedirectPath: "/board",
		SuccessToast: "Board deleted.",
	})

	assert.Equal(t, "b1", gotID)
	assert.Equal(t, "/board", w.Header().Get("Hx-Redirect"))
	assert.Contains(t, w.Header().Get("Hx-Trigger"), "Board deleted.")
}

func TestHandleDelete_SurfacesAPIMessage(t *testing.T) {
	t.Parallel()
	h := &UIHandlers{}

	w := httptest.NewRecorder()
	h.handleDelete(w, deleteRequest(t, "b1", "confirm=true"), deleteHandlerOpts{
		Delete: func(context.Context, string, string) error {
			return &apiclient.APIError{Status: 409, Message: "Board is in use."}
		},
		ErrorMessage: "Unable to delete board.",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Header().Get("Hx-Trigger"), "Board is in use.")
}

func TestHandleDelete_MissingID(t *testing.T) {
	t.Parallel()
	h := CreateUIHandlersForTest(t)
	if h == nil {
		return
	}

	req := httptest.NewRequest(http.MethodPost, "/board//delete", nil)
	w := httptest.NewRecorder()
	h.handleDelete(w, req, deleteHandlerOpts{
		Delete: func(context.Context, string, string) error {
			t.Fatal("delete must not run without an id")
			return nil
		},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBuildPageURL(t *testing.T) {
	t.Parallel()

	q := url.Values{
		"q":      {"maths"},
		"seq":    {"7"},
		"hx-foo": {"x"},
		"empty":  {""},
	}
	got := buildPageURL("/subjects", q, pageOpts{Page: 3, PageSize: 25})

	u, err := url.Parse(got)
	assert.NoError(t, err)
	assert.Equal(t, "/subjects", u.Path)
	parsed := u.Query()
	assert.Equal(t, "maths", parsed.Get("q"))
	assert.Equal(t, "3", parsed.Get("page"))
	assert.Equal(t, "25", parsed.Get("page_size"))
	assert.Empty(t, parsed.Get("seq"))
	assert.Empty(t, parsed.Get("hx-foo"))
	assert.NotContains(t, got, "empty")
}

func TestGetPageParams(t *testing.T) {
	t.Parallel()

	page, size := getPageParams(url.Values{})
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, size)

	page, size = getPageParams(url.Values{"page": {"4"}, "page_size": {"50"}})
	assert.Equal(t, 4, page)
	assert.Equal(t, 50, size)

	// Out-of-range values fall back to defaults.
	page, size = getPageParams(url.Values{"page": {"-1"}, "page_size": {"500"}})
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, size)
}

func TestPrepareFormFrame(t *testing.T) {
	t.Parallel()

	data, mode := prepareFormFrame(FormFrameOpts{
		Data:        map[string]any{"Mode": "edit"},
		DefaultMode: FormModeCreate,
	})
	assert.Equal(t, FormModeEdit, mode)
	assert.Equal(t, "edit", data["Mode"])
	assert.NotNil(t, data["Errors"])

	data, mode = prepareFormFrame(FormFrameOpts{DefaultMode: FormModeCreate})
	assert.Equal(t, FormModeCreate, mode)
	assert.Equal(t, map[string]string{}, data["Errors"])
}

func TestIsUnauthorized(t *testing.T) {
	t.Parallel()

	assert.True(t, isUnauthorized(&apiclient.APIError{Status: http.StatusUnauthorized, Message: "nope"}))
	assert.True(t, isUnauthorized(apiclient.ErrUnauthorized))
	assert.False(t, isUnauthorized(&apiclient.APIError{Status: http.StatusForbidden}))
	assert.False(t, isUnauthorized(errors.New("other")))
}

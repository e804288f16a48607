package httpx

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// stubUsersService satisfies UsersService and records mutation calls.
type stubUsersService struct {
	updateCalls int
	deleteCalls int
	lastID      string
	lastInput   model.UpdateUserInput
	err         error
}

func (s *stubUsersService) List(context.Context, string) ([]model.User, int, error) {
	return nil, 0, errors.New("not implemented")
}

func (s *stubUsersService) GetByID(context.Context, string, string, bool) (*model.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUsersService) CreateUser(context.Context, string, model.CreateUserInput, *apiclient.FileUpload) (*model.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUsersService) CreateAdmin(context.Context, string, model.CreateAdminInput, *apiclient.FileUpload) (*model.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUsersService) Update(_ context.Context, _, id string, in model.UpdateUserInput, _ *apiclient.FileUpload) (*model.User, error) {
	s.updateCalls++
	s.lastID = id
	s.lastInput = in
	if s.err != nil {
		return nil, s.err
	}
	return &model.User{ID: id, FirstName: in.FirstName}, nil
}

func (s *stubUsersService) Delete(_ context.Context, _, id string) error {
	s.deleteCalls++
	s.lastID = id
	return s.err
}

func userEditRequest(t *testing.T, id string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		assert.NoError(t, mw.WriteField(k, v))
	}
	assert.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/users/"+id, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.SetPathValue("id", id)
	return req
}

func TestUserUpdate_SavesAndRedirectsToDetail(t *testing.T) {
	t.Parallel()
	stub := &stubUsersService{}
	h := &UIHandlers{UserSvc: stub}

	w := httptest.NewRecorder()
	h.UserUpdate(w, userEditRequest(t, "u1", map[string]string{
		"firstName":    "Meera",
		"lastName":     "Pillai",
		"mobileNumber": "9876543210",
		"district":     "Thrissur",
		"isActive":     "on",
	}))

	assert.Equal(t, 1, stub.updateCalls)
	assert.Equal(t, "u1", stub.lastID)
	assert.Equal(t, "Meera", stub.lastInput.FirstName)
	assert.Equal(t, "Thrissur", stub.lastInput.District)
	if assert.NotNil(t, stub.lastInput.IsActive) {
		assert.True(t, *stub.lastInput.IsActive)
	}
	assert.Equal(t, "/users/u1", w.Header().Get("Hx-Redirect"))
	assert.Contains(t, w.Header().Get("Hx-Trigger"), "Account updated.")
}

func TestUserUpdate_InvalidMobileNeverHitsBackend(t *testing.T) {
	h := CreateUIHandlersForTest(t)
	if h == nil {
		return
	}
	stub := &stubUsersService{}
	h.UserSvc = stub

	w := httptest.NewRecorder()
	h.UserUpdate(w, userEditRequest(t, "u1", map[string]string{
		"firstName":    "Meera",
		"mobileNumber": "12345",
	}))

	assert.Equal(t, 0, stub.updateCalls)
	assert.Empty(t, w.Header().Get("Hx-Redirect"))
	assert.Contains(t, w.Body.String(), "Mobile number must be between 8 and 15 characters.")
}

func TestUserDelete_ConfirmedDeletesAndRedirects(t *testing.T) {
	t.Parallel()
	stub := &stubUsersService{}
	h := &UIHandlers{UserSvc: stub}

	req := httptest.NewRequest(http.MethodPost, "/users/u1/delete", strings.NewReader("confirm=true"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", "u1")
	w := httptest.NewRecorder()
	h.UserDelete(w, req)

	assert.Equal(t, 1, stub.deleteCalls)
	assert.Equal(t, "u1", stub.lastID)
	assert.Equal(t, "/users", w.Header().Get("Hx-Redirect"))
	assert.Contains(t, w.Header().Get("Hx-Trigger"), "Account deleted.")
}

package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// stubBoardsService records calls so tests can assert exactly how often the
// backend was hit.
type stubBoardsService struct {
	createCalls int
	updateCalls int
	lastID      string
	lastInput   model.BoardInput
	err         error
}

func (s *stubBoardsService) List(context.Context, string, *bool) ([]model.Board, int, error) {
	return nil, 0, errors.New("not implemented")
}

func (s *stubBoardsService) GetByID(context.Context, string, string) (*model.Board, error) {
	return nil, errors.New("not implemented")
}

func (s *stubBoardsService) Create(_ context.Context, _ string, in model.BoardInput) (*model.Board, error) {
	s.createCalls++
	s.lastInput = in
	if s.err != nil {
		return nil, s.err
	}
	return &model.Board{ID: "b1", Name: in.Name}, nil
}

func (s *stubBoardsService) Update(_ context.Context, _, id string, in model.BoardInput) (*model.Board, error) {
	s.updateCalls++
	s.lastID = id
	s.lastInput = in
	if s.err != nil {
		return nil, s.err
	}
	return &model.Board{ID: id, Name: in.Name}, nil
}

func (s *stubBoardsService) Delete(context.Context, string, string) error { return nil }

func boardFormRequest(t *testing.T, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestBoardCreate_SavesOnceAndRedirectsToList(t *testing.T) {
	t.Parallel()
	stub := &stubBoardsService{}
	h := &UIHandlers{BoardSvc: stub}

	w := httptest.NewRecorder()
	h.BoardCreate(w, boardFormRequest(t, "/board", "name=CBSE&code=CBSE&description=National+board&isActive=on"))

	assert.Equal(t, 1, stub.createCalls)
	assert.Equal(t, "CBSE", stub.lastInput.Name)
	if assert.NotNil(t, stub.lastInput.IsActive) {
		assert.True(t, *stub.lastInput.IsActive)
	}
	assert.Equal(t, "/board", w.Header().Get("Hx-Redirect"))
	assert.Contains(t, w.Header().Get("Hx-Trigger"), "Board created.")
}

func TestBoardCreate_InvalidInputNeverHitsBackend(t *testing.T) {
	h := CreateUIHandlersForTest(t)
	if h == nil {
		return
	}
	stub := &stubBoardsService{}
	h.BoardSvc = stub

	w := httptest.NewRecorder()
	h.BoardCreate(w, boardFormRequest(t, "/board", "name=&code=CBSE"))

	assert.Equal(t, 0, stub.createCalls)
	assert.Empty(t, w.Header().Get("Hx-Redirect"))
	assert.Contains(t, w.Body.String(), "Name is required.")
}

func TestBoardCreate_BackendRejectionRerendersForm(t *testing.T) {
	h := CreateUIHandlersForTest(t)
	if h == nil {
		return
	}
	stub := &stubBoardsService{err: &apiclient.APIError{Status: 409, Message: "Board already exists."}}
	h.BoardSvc = stub

	w := httptest.NewRecorder()
	h.BoardCreate(w, boardFormRequest(t, "/board", "name=CBSE"))

	assert.Equal(t, 1, stub.createCalls)
	assert.Empty(t, w.Header().Get("Hx-Redirect"))
	assert.Contains(t, w.Body.String(), "Board already exists.")
	// The draft survives the round trip.
	assert.Contains(t, w.Body.String(), `value="CBSE"`)
}

func TestBoardUpdate_SavesAndRedirectsToList(t *testing.T) {
	t.Parallel()
	stub := &stubBoardsService{}
	h := &UIHandlers{BoardSvc: stub}

	req := boardFormRequest(t, "/board/b7", "name=ICSE")
	req.SetPathValue("id", "b7")
	w := httptest.NewRecorder()
	h.BoardUpdate(w, req)

	assert.Equal(t, 1, stub.updateCalls)
	assert.Equal(t, "b7", stub.lastID)
	assert.Equal(t, "/board", w.Header().Get("Hx-Redirect"))
	assert.Contains(t, w.Header().Get("Hx-Trigger"), "Board updated.")
}

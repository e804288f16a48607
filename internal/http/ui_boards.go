package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// Boards serves the examination board list page.
func (h *UIHandlers) Boards(w http.ResponseWriter, r *http.Request) {
	isActive := ParseBoolFilter(r.URL.Query(), "active")

	HandleList(ListHandlerOpts[model.Board]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context, token string) ([]model.Board, int, error) {
			return h.BoardSvc.List(ctx, token, isActive)
		},
		SearchFields: func(b model.Board) []string {
			return []string{b.Name, b.Code, b.Description}
		},
		BasePath:     "/board",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Boards", PageTitle: "Boards", CurrentPage: PageBoards},
		ItemsKey:     "Boards",
		ErrorMessage: "Unable to load boards.",
	})
}

// boardFormData carries the parsed board fields. Boards are JSON only,
// no uploads.
type boardFormData struct {
	Input model.BoardInput
}

func parseBoardForm(r *http.Request) (boardFormData, map[string]string) {
	if err := r.ParseForm(); err != nil {
		return boardFormData{}, map[string]string{"_": "Invalid form submission."}
	}

	input := model.BoardInput{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Code:        strings.TrimSpace(r.FormValue("code")),
		IsActive:    checkboxValue(r, "isActive"),
	}

	return boardFormData{Input: input}, input.Validate()
}

// BoardCreate handles POST to create a board.
func (h *UIHandlers) BoardCreate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[boardFormData]{
		W:      w,
		R:      r,
		Mode:   FormModeCreate,
		Parser: parseBoardForm,
		Create: func(ctx context.Context, token string, data boardFormData) error {
			_, err := h.BoardSvc.Create(ctx, token, data.Input)
			return err
		},
		Renderer:     h.renderBoardForm,
		SuccessURL:   "/board",
		SuccessToast: "Board created.",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Boards", PageTitle: "Boards", CurrentPage: PageBoards},
	})
}

// BoardUpdate handles POST to update a board.
func (h *UIHandlers) BoardUpdate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[boardFormData]{
		W:      w,
		R:      r,
		Mode:   FormModeEdit,
		Parser: parseBoardForm,
		Update: func(ctx context.Context, token, id string, data boardFormData) error {
			_, err := h.BoardSvc.Update(ctx, token, id, data.Input)
			return err
		},
		Renderer:     h.renderBoardForm,
		ExtraData:    map[string]any{"BoardID": r.PathValue("id")},
		SuccessURL:   "/board",
		SuccessToast: "Board updated.",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Boards", PageTitle: "Boards", CurrentPage: PageBoards},
	})
}

// BoardDelete handles POST to delete a board.
func (h *UIHandlers) BoardDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Delete:       h.BoardSvc.Delete,
		RedirectPath: "/board",
		SuccessToast: "Board deleted.",
		ErrorMessage: "Unable to delete board. It may be assigned to subjects.",
	})
}

func (h *UIHandlers) renderBoardForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{R: r, Data: data, DefaultMode: FormModeCreate})
	h.renderFragment(w, r, fragmentRenderOptions{Template: "board-form-fragment", Data: data})
}

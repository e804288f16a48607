package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// CreateBoard creates an examination board.
func (c *Client) CreateBoard(ctx context.Context, token string, in model.BoardInput) (*model.Board, error) {
	board, _, err := doJSON[model.Board](ctx, c, call{
		method:   http.MethodPost,
		path:     "/board",
		token:    token,
		endpoint: "board_create",
		fallback: "Failed to create board. Please try again.",
	}, in)
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// ListBoards fetches boards, optionally filtered by active state.
func (c *Client) ListBoards(ctx context.Context, token string, isActive *bool) ([]model.Board, int, error) {
	q := url.Values{}
	boolQuery(q, "isActive", isActive)
	return doJSON[[]model.Board](ctx, c, call{
		method:   http.MethodGet,
		path:     withQuery("/board", q),
		token:    token,
		endpoint: "board_list",
		fallback: "Failed to fetch boards. Please try again.",
	}, nil)
}

// GetBoard fetches one board fresh by id.
func (c *Client) GetBoard(ctx context.Context, token, id string) (*model.Board, error) {
	board, _, err := doJSON[model.Board](ctx, c, call{
		method:   http.MethodGet,
		path:     "/board/" + url.PathEscape(id),
		token:    token,
		endpoint: "board_get",
		fallback: "Failed to fetch board details. Please try again.",
	}, nil)
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// UpdateBoard updates a board.
func (c *Client) UpdateBoard(ctx context.Context, token, id string, in model.BoardInput) (*model.Board, error) {
	board, _, err := doJSON[model.Board](ctx, c, call{
		method:   http.MethodPut,
		path:     "/board/" + url.PathEscape(id),
		token:    token,
		endpoint: "board_update",
		fallback: "Failed to update board. Please try again.",
	}, in)
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// DeleteBoard removes a board.
func (c *Client) DeleteBoard(ctx context.Context, token, id string) error {
	_, _, err := doJSON[map[string]any](ctx, c, call{
		method:   http.MethodDelete,
		path:     "/board/" + url.PathEscape(id),
		token:    token,
		endpoint: "board_delete",
		fallback: "Failed to delete board. Please try again.",
	}, nil)
	return err
}

package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// CreateChapter creates a chapter under a subject; pdf and video are
// optional attachments.
func (c *Client) CreateChapter(ctx context.Context, token string, in model.ChapterInput, pdf, video *FileUpload) (*model.Chapter, error) {
	form := NewForm().
		Set("title", in.Title).
		Set("subjectId", in.SubjectID).
		SetInt("order", in.Order).
		SetOptional("description", in.Description).
		SetOptional("textContent", in.TextContent).
		SetBool("isActive", in.IsActive).
		AddFile(pdf).
		AddFile(video)

	chapter, _, err := doForm[model.Chapter](ctx, c, call{
		method:   http.MethodPost,
		path:     "/chapter",
		token:    token,
		endpoint: "chapter_create",
		fallback: "Failed to create chapter. Please try again.",
	}, form)
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

// ListChapters fetches the chapters of one subject in order.
func (c *Client) ListChapters(ctx context.Context, token, subjectID string, isActive *bool) ([]model.Chapter, int, error) {
	q := url.Values{}
	boolQuery(q, "isActive", isActive)
	return doJSON[[]model.Chapter](ctx, c, call{
		method:   http.MethodGet,
		path:     withQuery("/chapter/subject/"+url.PathEscape(subjectID), q),
		token:    token,
		endpoint: "chapter_list",
		fallback: "Failed to fetch chapters. Please try again.",
	}, nil)
}

// GetChapter fetches one chapter fresh by id, including its full content.
func (c *Client) GetChapter(ctx context.Context, token, id string) (*model.Chapter, error) {
	chapter, _, err := doJSON[model.Chapter](ctx, c, call{
		method:   http.MethodGet,
		path:     "/chapter/" + url.PathEscape(id),
		token:    token,
		endpoint: "chapter_get",
		fallback: "Failed to fetch chapter details. Please try again.",
	}, nil)
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

// UpdateChapter updates a chapter.
func (c *Client) UpdateChapter(ctx context.Context, token, id string, in model.ChapterInput, pdf, video *FileUpload) (*model.Chapter, error) {
	form := NewForm().
		SetOptional("title", in.Title).
		SetInt("order", in.Order).
		SetOptional("description", in.Description).
		SetOptional("textContent", in.TextContent).
		SetBool("isActive", in.IsActive).
		AddFile(pdf).
		AddFile(video)

	chapter, _, err := doForm[model.Chapter](ctx, c, call{
		method:   http.MethodPut,
		path:     "/chapter/" + url.PathEscape(id),
		token:    token,
		endpoint: "chapter_update",
		fallback: "Failed to update chapter. Please try again.",
	}, form)
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

// DeleteChapter removes a chapter.
func (c *Client) DeleteChapter(ctx context.Context, token, id string) error {
	_, _, err := doJSON[map[string]any](ctx, c, call{
		method:   http.MethodDelete,
		path:     "/chapter/" + url.PathEscape(id),
		token:    token,
		endpoint: "chapter_delete",
		fallback: "Failed to delete chapter. Please try again.",
	}, nil)
	return err
}

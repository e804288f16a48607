package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// CreateSubject creates a subject; the thumbnail is optional.
func (c *Client) CreateSubject(ctx context.Context, token string, in model.SubjectInput, thumbnail *FileUpload) (*model.Subject, error) {
	form := NewForm().
		Set("title", in.Title).
		Set("mainCategoryId", in.MainCategoryID).
		Set("subCategoryId", in.SubCategoryID).
		SetOptional("description", in.Description).
		SetOptional("boardId", in.BoardID).
		SetBool("isActive", in.IsActive).
		AddFile(thumbnail)

	subject, _, err := doForm[model.Subject](ctx, c, call{
		method:   http.MethodPost,
		path:     "/subject",
		token:    token,
		endpoint: "subject_create",
		fallback: "Failed to create subject. Please try again.",
	}, form)
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

// ListSubjects fetches subjects filtered by category hierarchy and active
// state.
func (c *Client) ListSubjects(ctx context.Context, token string, opts model.SubjectListOptions) ([]model.Subject, int, error) {
	q := url.Values{}
	if opts.MainCategoryID != "" {
		q.Set("mainCategoryId", opts.MainCategoryID)
	}
	if opts.SubCategoryID != "" {
		q.Set("subCategoryId", opts.SubCategoryID)
	}
	boolQuery(q, "isActive", opts.IsActive)
	return doJSON[[]model.Subject](ctx, c, call{
		method:   http.MethodGet,
		path:     withQuery("/subject", q),
		token:    token,
		endpoint: "subject_list",
		fallback: "Failed to fetch subjects. Please try again.",
	}, nil)
}

// GetSubject fetches one subject fresh by id, including its chapters.
func (c *Client) GetSubject(ctx context.Context, token, id string) (*model.Subject, error) {
	subject, _, err := doJSON[model.Subject](ctx, c, call{
		method:   http.MethodGet,
		path:     "/subject/" + url.PathEscape(id),
		token:    token,
		endpoint: "subject_get",
		fallback: "Failed to fetch subject details. Please try again.",
	}, nil)
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

// UpdateSubject updates a subject.
func (c *Client) UpdateSubject(ctx context.Context, token, id string, in model.SubjectInput, thumbnail *FileUpload) (*model.Subject, error) {
	form := NewForm().
		SetOptional("title", in.Title).
		SetOptional("mainCategoryId", in.MainCategoryID).
		SetOptional("subCategoryId", in.SubCategoryID).
		SetOptional("description", in.Description).
		SetOptional("boardId", in.BoardID).
		SetBool("isActive", in.IsActive).
		AddFile(thumbnail)

	subject, _, err := doForm[model.Subject](ctx, c, call{
		method:   http.MethodPut,
		path:     "/subject/" + url.PathEscape(id),
		token:    token,
		endpoint: "subject_update",
		fallback: "Failed to update subject. Please try again.",
	}, form)
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

// DeleteSubject removes a subject.
func (c *Client) DeleteSubject(ctx context.Context, token, id string) error {
	_, _, err := doJSON[map[string]any](ctx, c, call{
		method:   http.MethodDelete,
		path:     "/subject/" + url.PathEscape(id),
		token:    token,
		endpoint: "subject_delete",
		fallback: "Failed to delete subject. Please try again.",
	}, nil)
	return err
}

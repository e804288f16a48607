package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// ThumbnailPage is the payload of the paginated thumbnail list endpoint.
type ThumbnailPage struct {
	Thumbnails []model.Thumbnail `json:"thumbnails"`
	Pagination model.Pagination  `json:"pagination"`
}

// ListThumbnails fetches one page of thumbnails with paging metadata.
func (c *Client) ListThumbnails(ctx context.Context, token string, opts model.ThumbnailListOptions) (*ThumbnailPage, error) {
	q := url.Values{}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	boolQuery(q, "isActive", opts.IsActive)
	if opts.SortBy != "" {
		q.Set("sortBy", opts.SortBy)
	}
	if opts.SortOrder != "" {
		q.Set("sortOrder", opts.SortOrder)
	}

	page, _, err := doJSON[ThumbnailPage](ctx, c, call{
		method:   http.MethodGet,
		path:     withQuery("/thumbnail", q),
		token:    token,
		endpoint: "thumbnail_list",
		fallback: "Failed to fetch thumbnails. Please try again.",
	}, nil)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetThumbnail fetches one thumbnail fresh by id.
func (c *Client) GetThumbnail(ctx context.Context, token, id string) (*model.Thumbnail, error) {
	thumb, _, err := doJSON[model.Thumbnail](ctx, c, call{
		method:   http.MethodGet,
		path:     "/thumbnail/" + url.PathEscape(id),
		token:    token,
		endpoint: "thumbnail_get",
		fallback: "Failed to fetch thumbnail details. Please try again.",
	}, nil)
	if err != nil {
		return nil, err
	}
	return &thumb, nil
}

// CreateThumbnail uploads a new banner image; the image part is required.
func (c *Client) CreateThumbnail(ctx context.Context, token string, in model.ThumbnailInput, image *FileUpload) (*model.Thumbnail, error) {
	form := NewForm().
		Set("title", in.Title).
		SetOptional("description", in.Description).
		SetInt("order", in.Order).
		AddFile(image)

	thumb, _, err := doForm[model.Thumbnail](ctx, c, call{
		method:   http.MethodPost,
		path:     "/thumbnail",
		token:    token,
		endpoint: "thumbnail_create",
		fallback: "Failed to create thumbnail. Please try again.",
	}, form)
	if err != nil {
		return nil, err
	}
	return &thumb, nil
}

// UpdateThumbnail updates a thumbnail; the image part is optional.
func (c *Client) UpdateThumbnail(ctx context.Context, token, id string, in model.ThumbnailInput, image *FileUpload) (*model.Thumbnail, error) {
	form := NewForm().
		SetOptional("title", in.Title).
		SetOptional("description", in.Description).
		SetInt("order", in.Order).
		SetBool("isActive", in.IsActive).
		AddFile(image)

	thumb, _, err := doForm[model.Thumbnail](ctx, c, call{
		method:   http.MethodPut,
		path:     "/thumbnail/" + url.PathEscape(id),
		token:    token,
		endpoint: "thumbnail_update",
		fallback: "Failed to update thumbnail. Please try again.",
	}, form)
	if err != nil {
		return nil, err
	}
	return &thumb, nil
}

// DeleteThumbnail removes a thumbnail.
func (c *Client) DeleteThumbnail(ctx context.Context, token, id string) error {
	_, _, err := doJSON[map[string]any](ctx, c, call{
		method:   http.MethodDelete,
		path:     "/thumbnail/" + url.PathEscape(id),
		token:    token,
		endpoint: "thumbnail_delete",
		fallback: "Failed to delete thumbnail. Please try again.",
	}, nil)
	return err
}

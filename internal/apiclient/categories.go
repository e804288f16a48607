package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// CreateMainCategory creates a top-level category; the image is optional.
func (c *Client) CreateMainCategory(ctx context.Context, token string, in model.CategoryInput, image *FileUpload) (*model.MainCategory, error) {
	form := NewForm().
		Set("name", in.Name).
		SetOptional("description", in.Description).
		AddFile(image)

	cat, _, err := doForm[model.MainCategory](ctx, c, call{
		method:   http.MethodPost,
		path:     "/main-category",
		token:    token,
		endpoint: "main_category_create",
		fallback: "Failed to create main category. Please try again.",
	}, form)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// ListMainCategories fetches main categories, optionally filtered by
// active state.
func (c *Client) ListMainCategories(ctx context.Context, token string, isActive *bool) ([]model.MainCategory, int, error) {
	q := url.Values{}
	boolQuery(q, "isActive", isActive)
	return doJSON[[]model.MainCategory](ctx, c, call{
		method:   http.MethodGet,
		path:     withQuery("/main-category", q),
		token:    token,
		endpoint: "main_category_list",
		fallback: "Failed to fetch main categories. Please try again.",
	}, nil)
}

// UpdateMainCategory updates name/description/image/active state.
func (c *Client) UpdateMainCategory(ctx context.Context, token, id string, in model.CategoryInput, image *FileUpload) (*model.MainCategory, error) {
	form := NewForm().
		SetOptional("name", in.Name).
		SetOptional("description", in.Description).
		SetBool("isActive", in.IsActive).
		AddFile(image)

	cat, _, err := doForm[model.MainCategory](ctx, c, call{
		method:   http.MethodPut,
		path:     "/main-category/" + url.PathEscape(id),
		token:    token,
		endpoint: "main_category_update",
		fallback: "Failed to update main category. Please try again.",
	}, form)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// DeleteMainCategory removes a main category.
func (c *Client) DeleteMainCategory(ctx context.Context, token, id string) error {
	_, _, err := doJSON[map[string]any](ctx, c, call{
		method:   http.MethodDelete,
		path:     "/main-category/" + url.PathEscape(id),
		token:    token,
		endpoint: "main_category_delete",
		fallback: "Failed to delete main category. Please try again.",
	}, nil)
	return err
}

// CreateSubCategory creates a sub category under a main category.
func (c *Client) CreateSubCategory(ctx context.Context, token string, in model.SubCategoryInput, image *FileUpload) (*model.SubCategory, error) {
	form := NewForm().
		Set("name", in.Name).
		Set("mainCategoryId", in.MainCategoryID).
		SetOptional("description", in.Description).
		AddFile(image)

	sub, _, err := doForm[model.SubCategory](ctx, c, call{
		method:   http.MethodPost,
		path:     "/sub-category",
		token:    token,
		endpoint: "sub_category_create",
		fallback: "Failed to create sub category. Please try again.",
	}, form)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// ListSubCategories fetches sub categories filtered by parent and active
// state.
func (c *Client) ListSubCategories(ctx context.Context, token string, opts model.CategoryListOptions) ([]model.SubCategory, int, error) {
	q := url.Values{}
	if opts.MainCategoryID != "" {
		q.Set("mainCategoryId", opts.MainCategoryID)
	}
	boolQuery(q, "isActive", opts.IsActive)
	return doJSON[[]model.SubCategory](ctx, c, call{
		method:   http.MethodGet,
		path:     withQuery("/sub-category", q),
		token:    token,
		endpoint: "sub_category_list",
		fallback: "Failed to fetch sub categories. Please try again.",
	}, nil)
}

// UpdateSubCategory updates a sub category.
func (c *Client) UpdateSubCategory(ctx context.Context, token, id string, in model.SubCategoryInput, image *FileUpload) (*model.SubCategory, error) {
	form := NewForm().
		SetOptional("name", in.Name).
		SetOptional("mainCategoryId", in.MainCategoryID).
		SetOptional("description", in.Description).
		SetBool("isActive", in.IsActive).
		AddFile(image)

	sub, _, err := doForm[model.SubCategory](ctx, c, call{
		method:   http.MethodPut,
		path:     "/sub-category/" + url.PathEscape(id),
		token:    token,
		endpoint: "sub_category_update",
		fallback: "Failed to update sub category. Please try again.",
	}, form)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// DeleteSubCategory removes a sub category.
func (c *Client) DeleteSubCategory(ctx context.Context, token, id string) error {
	_, _, err := doJSON[map[string]any](ctx, c, call{
		method:   http.MethodDelete,
		path:     "/sub-category/" + url.PathEscape(id),
		token:    token,
		endpoint: "sub_category_delete",
		fallback: "Failed to delete sub category. Please try again.",
	}, nil)
	return err
}

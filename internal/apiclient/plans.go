package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// CreatePlan creates one subscription plan for a sub category.
func (c *Client) CreatePlan(ctx context.Context, token string, in model.PlanInput) (*model.Plan, error) {
	plan, _, err := doJSON[model.Plan](ctx, c, call{
		method:   http.MethodPost,
		path:     "/plan",
		token:    token,
		endpoint: "plan_create",
		fallback: "Failed to create plan. Please try again.",
	}, in)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// CreatePlans bulk-creates several duration/amount pairs for one sub
// category in a single call.
func (c *Client) CreatePlans(ctx context.Context, token, subCategoryID string, specs []model.PlanSpec) ([]model.Plan, int, error) {
	body := map[string]any{
		"subCategoryId": subCategoryID,
		"plans":         specs,
	}
	return doJSON[[]model.Plan](ctx, c, call{
		method:   http.MethodPost,
		path:     "/plan/multiple",
		token:    token,
		endpoint: "plan_create_multiple",
		fallback: "Failed to create plans. Please try again.",
	}, body)
}

// ListPlans fetches plans filtered by sub category, duration, and active
// state.
func (c *Client) ListPlans(ctx context.Context, token string, opts model.PlanListOptions) ([]model.Plan, int, error) {
	q := url.Values{}
	if opts.SubCategoryID != "" {
		q.Set("subCategoryId", opts.SubCategoryID)
	}
	if opts.Duration != "" {
		q.Set("duration", string(opts.Duration))
	}
	boolQuery(q, "isActive", opts.IsActive)
	return doJSON[[]model.Plan](ctx, c, call{
		method:   http.MethodGet,
		path:     withQuery("/plan", q),
		token:    token,
		endpoint: "plan_list",
		fallback: "Failed to fetch plans. Please try again.",
	}, nil)
}

// ListPlansBySubCategory fetches the plans of one sub category.
func (c *Client) ListPlansBySubCategory(ctx context.Context, token, subCategoryID string, isActive *bool) ([]model.Plan, int, error) {
	q := url.Values{}
	boolQuery(q, "isActive", isActive)
	return doJSON[[]model.Plan](ctx, c, call{
		method:   http.MethodGet,
		path:     withQuery("/plan/sub-category/"+url.PathEscape(subCategoryID), q),
		token:    token,
		endpoint: "plan_list_by_sub_category",
		fallback: "Failed to fetch plans. Please try again.",
	}, nil)
}

// GetPlan fetches one plan fresh by id, including its nested sub category.
func (c *Client) GetPlan(ctx context.Context, token, id string) (*model.Plan, error) {
	plan, _, err := doJSON[model.Plan](ctx, c, call{
		method:   http.MethodGet,
		path:     "/plan/" + url.PathEscape(id),
		token:    token,
		endpoint: "plan_get",
		fallback: "Failed to fetch plan details. Please try again.",
	}, nil)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdatePlan updates a plan; only the set fields are sent.
func (c *Client) UpdatePlan(ctx context.Context, token, id string, in model.PlanInput) (*model.Plan, error) {
	body := map[string]any{}
	if in.Duration != "" {
		body["duration"] = in.Duration
	}
	if in.Amount != nil {
		body["amount"] = *in.Amount
	}
	if in.Description != "" {
		body["description"] = in.Description
	}
	if in.IsActive != nil {
		body["isActive"] = *in.IsActive
	}

	plan, _, err := doJSON[model.Plan](ctx, c, call{
		method:   http.MethodPut,
		path:     "/plan/" + url.PathEscape(id),
		token:    token,
		endpoint: "plan_update",
		fallback: "Failed to update plan. Please try again.",
	}, body)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// DeletePlan removes a plan.
func (c *Client) DeletePlan(ctx context.Context, token, id string) error {
	_, _, err := doJSON[map[string]any](ctx, c, call{
		method:   http.MethodDelete,
		path:     "/plan/" + url.PathEscape(id),
		token:    token,
		endpoint: "plan_delete",
		fallback: "Failed to delete plan. Please try again.",
	}, nil)
	return err
}

package apiclient

import (
	"context"
	"net/http"

	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// GetCommissionSettings fetches the platform-wide commission split.
// A NotFound-style rejection means no settings record exists yet.
func (c *Client) GetCommissionSettings(ctx context.Context, token string) (*model.CommissionSettings, error) {
	settings, _, err := doJSON[model.CommissionSettings](ctx, c, call{
		method:   http.MethodGet,
		path:     "/commission-settings",
		token:    token,
		endpoint: "commission_get",
		fallback: "Failed to fetch commission settings. Please try again.",
	}, nil)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// CreateCommissionSettings writes the initial commission split.
func (c *Client) CreateCommissionSettings(ctx context.Context, token string, in model.CommissionSettingsInput) (*model.CommissionSettings, error) {
	settings, _, err := doJSON[model.CommissionSettings](ctx, c, call{
		method:   http.MethodPost,
		path:     "/commission-settings",
		token:    token,
		endpoint: "commission_create",
		fallback: "Failed to create commission settings. Please try again.",
	}, in)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateCommissionSettings replaces the existing commission split.
func (c *Client) UpdateCommissionSettings(ctx context.Context, token string, in model.CommissionSettingsInput) (*model.CommissionSettings, error) {
	settings, _, err := doJSON[model.CommissionSettings](ctx, c, call{
		method:   http.MethodPut,
		path:     "/commission-settings",
		token:    token,
		endpoint: "commission_update",
		fallback: "Failed to update commission settings. Please try again.",
	}, in)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

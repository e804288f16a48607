package service

import (
	"context"
	"errors"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// CommissionAPI is the slice of the platform API the commission service needs.
type CommissionAPI interface {
	GetCommissionSettings(ctx context.Context, token string) (*model.CommissionSettings, error)
	CreateCommissionSettings(ctx context.Context, token string, in model.CommissionSettingsInput) (*model.CommissionSettings, error)
	UpdateCommissionSettings(ctx context.Context, token string, in model.CommissionSettingsInput) (*model.CommissionSettings, error)
}

// CommissionServiceOptions groups dependencies for CommissionService.
type CommissionServiceOptions struct {
	API CommissionAPI
}

// CommissionService manages the single platform-wide commission split.
type CommissionService struct {
	api CommissionAPI
}

// NewCommissionService constructs a new CommissionService.
func NewCommissionService(opts CommissionServiceOptions) *CommissionService {
	return &CommissionService{api: opts.API}
}

// Get fetches the current split. A missing record is reported as
// (nil, nil) so the page can render the empty state.
func (s *CommissionService) Get(ctx context.Context, token string) (*model.CommissionSettings, error) {
	settings, err := s.api.GetCommissionSettings(ctx, token)
	if err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return nil, nil
		}
		return nil, err
	}
	return settings, nil
}

// Save writes the split, creating the record on first save and updating
// it afterwards. The platform keeps at most one record.
func (s *CommissionService) Save(ctx context.Context, token string, in model.CommissionSettingsInput, exists bool) (*model.CommissionSettings, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return nil, fieldErrors(errs)
	}
	if exists {
		return s.api.UpdateCommissionSettings(ctx, token, in)
	}
	return s.api.CreateCommissionSettings(ctx, token, in)
}

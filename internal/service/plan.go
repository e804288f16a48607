package service

import (
	"context"

	"github.com/adhyanguru/admin-go/internal/domain/model"
	apperrors "github.com/adhyanguru/admin-go/internal/errors"
)

// PlansAPI is the slice of the platform API the plan service needs.
type PlansAPI interface {
	CreatePlan(ctx context.Context, token string, in model.PlanInput) (*model.Plan, error)
	CreatePlans(ctx context.Context, token, subCategoryID string, specs []model.PlanSpec) ([]model.Plan, int, error)
	ListPlans(ctx context.Context, token string, opts model.PlanListOptions) ([]model.Plan, int, error)
	ListPlansBySubCategory(ctx context.Context, token, subCategoryID string, isActive *bool) ([]model.Plan, int, error)
	GetPlan(ctx context.Context, token, id string) (*model.Plan, error)
	UpdatePlan(ctx context.Context, token, id string, in model.PlanInput) (*model.Plan, error)
	DeletePlan(ctx context.Context, token, id string) error
}

// PlanServiceOptions groups dependencies for PlanService.
type PlanServiceOptions struct {
	API PlansAPI
}

// PlanService manages subscription plans scoped to sub categories.
type PlanService struct {
	api PlansAPI
}

// NewPlanService constructs a new PlanService.
func NewPlanService(opts PlanServiceOptions) *PlanService {
	return &PlanService{api: opts.API}
}

func (s *PlanService) List(ctx context.Context, token string, opts model.PlanListOptions) ([]model.Plan, int, error) {
	return s.api.ListPlans(ctx, token, opts)
}

// ListBySubCategory fetches the plans of one sub category via the
// dedicated scoped endpoint.
func (s *PlanService) ListBySubCategory(ctx context.Context, token, subCategoryID string, isActive *bool) ([]model.Plan, int, error) {
	if subCategoryID == "" {
		return nil, 0, apperrors.NotFound("sub category not found")
	}
	return s.api.ListPlansBySubCategory(ctx, token, subCategoryID, isActive)
}

func (s *PlanService) GetByID(ctx context.Context, token, id string) (*model.Plan, error) {
	if id == "" {
		return nil, apperrors.NotFound("plan not found")
	}
	return s.api.GetPlan(ctx, token, id)
}

func (s *PlanService) Create(ctx context.Context, token string, in model.PlanInput) (*model.Plan, error) {
	if in.SubCategoryID == "" {
		return nil, apperrors.ValidationField("subCategory", "Select a sub category.")
	}
	if !in.Duration.Valid() {
		return nil, apperrors.ValidationField("duration", "Select a valid duration.")
	}
	if in.Amount == nil || *in.Amount <= 0 {
		return nil, apperrors.ValidationField("amount", "Amount must be greater than zero.")
	}
	return s.api.CreatePlan(ctx, token, in)
}

// CreateBulk creates several plans for one sub category in a single
// request. Every spec is validated before anything is sent so a bad row
// cannot leave a partial batch behind.
func (s *PlanService) CreateBulk(ctx context.Context, token, subCategoryID string, specs []model.PlanSpec) ([]model.Plan, int, error) {
	if subCategoryID == "" {
		return nil, 0, apperrors.ValidationField("subCategory", "Select a sub category.")
	}
	if len(specs) == 0 {
		return nil, 0, apperrors.ValidationField("plans", "Add at least one plan.")
	}
	seen := map[model.PlanDuration]bool{}
	for _, spec := range specs {
		if !spec.Duration.Valid() {
			return nil, 0, apperrors.ValidationField("duration", "Select a valid duration.")
		}
		if spec.Amount <= 0 {
			return nil, 0, apperrors.ValidationField("amount", "Amount must be greater than zero.")
		}
		if seen[spec.Duration] {
			return nil, 0, apperrors.ValidationField("duration", "Each duration may appear only once.")
		}
		seen[spec.Duration] = true
	}
	return s.api.CreatePlans(ctx, token, subCategoryID, specs)
}

// Update sends only the fields present in the input; zero-valued fields
// are left out of the request body.
func (s *PlanService) Update(ctx context.Context, token, id string, in model.PlanInput) (*model.Plan, error) {
	if id == "" {
		return nil, apperrors.NotFound("plan not found")
	}
	if in.Duration != "" && !in.Duration.Valid() {
		return nil, apperrors.ValidationField("duration", "Select a valid duration.")
	}
	if in.Amount != nil && *in.Amount <= 0 {
		return nil, apperrors.ValidationField("amount", "Amount must be greater than zero.")
	}
	return s.api.UpdatePlan(ctx, token, id, in)
}

func (s *PlanService) Delete(ctx context.Context, token, id string) error {
	if id == "" {
		return apperrors.NotFound("plan not found")
	}
	return s.api.DeletePlan(ctx, token, id)
}

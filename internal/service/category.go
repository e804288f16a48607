package service

import (
	"context"
	"strings"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	"github.com/adhyanguru/admin-go/internal/domain/model"
	apperrors "github.com/adhyanguru/admin-go/internal/errors"
)

// CategoriesAPI is the slice of the platform API the category service needs.
type CategoriesAPI interface {
	CreateMainCategory(ctx context.Context, token string, in model.CategoryInput, image *apiclient.FileUpload) (*model.MainCategory, error)
	ListMainCategories(ctx context.Context, token string, isActive *bool) ([]model.MainCategory, int, error)
	UpdateMainCategory(ctx context.Context, token, id string, in model.CategoryInput, image *apiclient.FileUpload) (*model.MainCategory, error)
	DeleteMainCategory(ctx context.Context, token, id string) error
	CreateSubCategory(ctx context.Context, token string, in model.SubCategoryInput, image *apiclient.FileUpload) (*model.SubCategory, error)
	ListSubCategories(ctx context.Context, token string, opts model.CategoryListOptions) ([]model.SubCategory, int, error)
	UpdateSubCategory(ctx context.Context, token, id string, in model.SubCategoryInput, image *apiclient.FileUpload) (*model.SubCategory, error)
	DeleteSubCategory(ctx context.Context, token, id string) error
}

// CategoryServiceOptions groups dependencies for CategoryService.
type CategoryServiceOptions struct {
	API CategoriesAPI
}

// CategoryService manages the two-level category tree: main categories and
// the sub categories nested under them.
type CategoryService struct {
	api CategoriesAPI
}

// NewCategoryService constructs a new CategoryService.
func NewCategoryService(opts CategoryServiceOptions) *CategoryService {
	return &CategoryService{api: opts.API}
}

func (s *CategoryService) ListMain(ctx context.Context, token string, isActive *bool) ([]model.MainCategory, int, error) {
	return s.api.ListMainCategories(ctx, token, isActive)
}

func (s *CategoryService) CreateMain(ctx context.Context, token string, in model.CategoryInput, image *apiclient.FileUpload) (*model.MainCategory, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, apperrors.ValidationField("name", "Name is required.")
	}
	return s.api.CreateMainCategory(ctx, token, in, image)
}

func (s *CategoryService) UpdateMain(ctx context.Context, token, id string, in model.CategoryInput, image *apiclient.FileUpload) (*model.MainCategory, error) {
	if id == "" {
		return nil, apperrors.NotFound("category not found")
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, apperrors.ValidationField("name", "Name is required.")
	}
	return s.api.UpdateMainCategory(ctx, token, id, in, image)
}

func (s *CategoryService) DeleteMain(ctx context.Context, token, id string) error {
	if id == "" {
		return apperrors.NotFound("category not found")
	}
	return s.api.DeleteMainCategory(ctx, token, id)
}

func (s *CategoryService) ListSub(ctx context.Context, token string, opts model.CategoryListOptions) ([]model.SubCategory, int, error) {
	return s.api.ListSubCategories(ctx, token, opts)
}

func (s *CategoryService) CreateSub(ctx context.Context, token string, in model.SubCategoryInput, image *apiclient.FileUpload) (*model.SubCategory, error) {
	if err := validateSubCategoryInput(&in); err != nil {
		return nil, err
	}
	return s.api.CreateSubCategory(ctx, token, in, image)
}

func (s *CategoryService) UpdateSub(ctx context.Context, token, id string, in model.SubCategoryInput, image *apiclient.FileUpload) (*model.SubCategory, error) {
	if id == "" {
		return nil, apperrors.NotFound("sub category not found")
	}
	if err := validateSubCategoryInput(&in); err != nil {
		return nil, err
	}
	return s.api.UpdateSubCategory(ctx, token, id, in, image)
}

func (s *CategoryService) DeleteSub(ctx context.Context, token, id string) error {
	if id == "" {
		return apperrors.NotFound("sub category not found")
	}
	return s.api.DeleteSubCategory(ctx, token, id)
}

func validateSubCategoryInput(in *model.SubCategoryInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return apperrors.ValidationField("name", "Name is required.")
	}
	if in.MainCategoryID == "" {
		return apperrors.ValidationField("mainCategory", "Select a main category.")
	}
	return nil
}

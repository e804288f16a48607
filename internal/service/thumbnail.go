package service

import (
	"context"
	"strings"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	"github.com/adhyanguru/admin-go/internal/domain/model"
	apperrors "github.com/adhyanguru/admin-go/internal/errors"
)

// ThumbnailsAPI is the slice of the platform API the thumbnail service needs.
type ThumbnailsAPI interface {
	ListThumbnails(ctx context.Context, token string, opts model.ThumbnailListOptions) (*apiclient.ThumbnailPage, error)
	GetThumbnail(ctx context.Context, token, id string) (*model.Thumbnail, error)
	CreateThumbnail(ctx context.Context, token string, in model.ThumbnailInput, image *apiclient.FileUpload) (*model.Thumbnail, error)
	UpdateThumbnail(ctx context.Context, token, id string, in model.ThumbnailInput, image *apiclient.FileUpload) (*model.Thumbnail, error)
	DeleteThumbnail(ctx context.Context, token, id string) error
}

// ThumbnailServiceOptions groups dependencies for ThumbnailService.
type ThumbnailServiceOptions struct {
	API ThumbnailsAPI
}

// ThumbnailService manages the ordered promotional banners. Listing is
// paginated server-side, unlike every other entity.
type ThumbnailService struct {
	api ThumbnailsAPI
}

// NewThumbnailService constructs a new ThumbnailService.
func NewThumbnailService(opts ThumbnailServiceOptions) *ThumbnailService {
	return &ThumbnailService{api: opts.API}
}

func (s *ThumbnailService) List(ctx context.Context, token string, opts model.ThumbnailListOptions) (*apiclient.ThumbnailPage, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 || opts.Limit > 100 {
		opts.Limit = 10
	}
	return s.api.ListThumbnails(ctx, token, opts)
}

func (s *ThumbnailService) GetByID(ctx context.Context, token, id string) (*model.Thumbnail, error) {
	if id == "" {
		return nil, apperrors.NotFound("thumbnail not found")
	}
	return s.api.GetThumbnail(ctx, token, id)
}

// Create requires an image; the platform has nothing to show without one.
func (s *ThumbnailService) Create(ctx context.Context, token string, in model.ThumbnailInput, image *apiclient.FileUpload) (*model.Thumbnail, error) {
	if err := validateThumbnailInput(&in); err != nil {
		return nil, err
	}
	if image == nil {
		return nil, apperrors.ValidationField("image", "An image is required.")
	}
	return s.api.CreateThumbnail(ctx, token, in, image)
}

func (s *ThumbnailService) Update(ctx context.Context, token, id string, in model.ThumbnailInput, image *apiclient.FileUpload) (*model.Thumbnail, error) {
	if id == "" {
		return nil, apperrors.NotFound("thumbnail not found")
	}
	if err := validateThumbnailInput(&in); err != nil {
		return nil, err
	}
	return s.api.UpdateThumbnail(ctx, token, id, in, image)
}

func (s *ThumbnailService) Delete(ctx context.Context, token, id string) error {
	if id == "" {
		return apperrors.NotFound("thumbnail not found")
	}
	return s.api.DeleteThumbnail(ctx, token, id)
}

func validateThumbnailInput(in *model.ThumbnailInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return apperrors.ValidationField("title", "Title is required.")
	}
	if in.Order != nil && *in.Order < 0 {
		return apperrors.ValidationField("order", "Order cannot be negative.")
	}
	return nil
}

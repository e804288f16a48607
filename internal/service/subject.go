package service

import (
	"context"
	"strings"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	"github.com/adhyanguru/admin-go/internal/domain/model"
	apperrors "github.com/adhyanguru/admin-go/internal/errors"
)

// SubjectsAPI is the slice of the platform API the subject service needs.
type SubjectsAPI interface {
	CreateSubject(ctx context.Context, token string, in model.SubjectInput, thumbnail *apiclient.FileUpload) (*model.Subject, error)
	ListSubjects(ctx context.Context, token string, opts model.SubjectListOptions) ([]model.Subject, int, error)
	GetSubject(ctx context.Context, token, id string) (*model.Subject, error)
	UpdateSubject(ctx context.Context, token, id string, in model.SubjectInput, thumbnail *apiclient.FileUpload) (*model.Subject, error)
	DeleteSubject(ctx context.Context, token, id string) error
}

// SubjectServiceOptions groups dependencies for SubjectService.
type SubjectServiceOptions struct {
	API SubjectsAPI
}

// SubjectService manages subjects and their category/board bindings.
type SubjectService struct {
	api SubjectsAPI
}

// NewSubjectService constructs a new SubjectService.
func NewSubjectService(opts SubjectServiceOptions) *SubjectService {
	return &SubjectService{api: opts.API}
}

func (s *SubjectService) List(ctx context.Context, token string, opts model.SubjectListOptions) ([]model.Subject, int, error) {
	return s.api.ListSubjects(ctx, token, opts)
}

// GetByID fetches one subject fresh; the detail payload includes chapters.
func (s *SubjectService) GetByID(ctx context.Context, token, id string) (*model.Subject, error) {
	if id == "" {
		return nil, apperrors.NotFound("subject not found")
	}
	return s.api.GetSubject(ctx, token, id)
}

func (s *SubjectService) Create(ctx context.Context, token string, in model.SubjectInput, thumbnail *apiclient.FileUpload) (*model.Subject, error) {
	if err := validateSubjectInput(&in); err != nil {
		return nil, err
	}
	return s.api.CreateSubject(ctx, token, in, thumbnail)
}

func (s *SubjectService) Update(ctx context.Context, token, id string, in model.SubjectInput, thumbnail *apiclient.FileUpload) (*model.Subject, error) {
	if id == "" {
		return nil, apperrors.NotFound("subject not found")
	}
	if err := validateSubjectInput(&in); err != nil {
		return nil, err
	}
	return s.api.UpdateSubject(ctx, token, id, in, thumbnail)
}

func (s *SubjectService) Delete(ctx context.Context, token, id string) error {
	if id == "" {
		return apperrors.NotFound("subject not found")
	}
	return s.api.DeleteSubject(ctx, token, id)
}

func validateSubjectInput(in *model.SubjectInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return apperrors.ValidationField("title", "Title is required.")
	}
	if in.MainCategoryID == "" {
		return apperrors.ValidationField("mainCategory", "Select a main category.")
	}
	if in.SubCategoryID == "" {
		return apperrors.ValidationField("subCategory", "Select a sub category.")
	}
	return nil
}

package service

import (
	"context"
	"strings"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	"github.com/adhyanguru/admin-go/internal/domain/model"
	apperrors "github.com/adhyanguru/admin-go/internal/errors"
)

// ChaptersAPI is the slice of the platform API the chapter service needs.
type ChaptersAPI interface {
	CreateChapter(ctx context.Context, token string, in model.ChapterInput, pdf, video *apiclient.FileUpload) (*model.Chapter, error)
	ListChapters(ctx context.Context, token, subjectID string, isActive *bool) ([]model.Chapter, int, error)
	GetChapter(ctx context.Context, token, id string) (*model.Chapter, error)
	UpdateChapter(ctx context.Context, token, id string, in model.ChapterInput, pdf, video *apiclient.FileUpload) (*model.Chapter, error)
	DeleteChapter(ctx context.Context, token, id string) error
}

// ChapterServiceOptions groups dependencies for ChapterService.
type ChapterServiceOptions struct {
	API ChaptersAPI
}

// ChapterService manages subject chapters and their text/pdf/video content.
type ChapterService struct {
	api ChaptersAPI
}

// NewChapterService constructs a new ChapterService.
func NewChapterService(opts ChapterServiceOptions) *ChapterService {
	return &ChapterService{api: opts.API}
}

// ListBySubject fetches the chapters of one subject.
func (s *ChapterService) ListBySubject(ctx context.Context, token, subjectID string, isActive *bool) ([]model.Chapter, int, error) {
	if subjectID == "" {
		return nil, 0, apperrors.NotFound("subject not found")
	}
	return s.api.ListChapters(ctx, token, subjectID, isActive)
}

func (s *ChapterService) GetByID(ctx context.Context, token, id string) (*model.Chapter, error) {
	if id == "" {
		return nil, apperrors.NotFound("chapter not found")
	}
	return s.api.GetChapter(ctx, token, id)
}

func (s *ChapterService) Create(ctx context.Context, token string, in model.ChapterInput, pdf, video *apiclient.FileUpload) (*model.Chapter, error) {
	if err := validateChapterInput(&in); err != nil {
		return nil, err
	}
	return s.api.CreateChapter(ctx, token, in, pdf, video)
}

func (s *ChapterService) Update(ctx context.Context, token, id string, in model.ChapterInput, pdf, video *apiclient.FileUpload) (*model.Chapter, error) {
	if id == "" {
		return nil, apperrors.NotFound("chapter not found")
	}
	if err := validateChapterInput(&in); err != nil {
		return nil, err
	}
	return s.api.UpdateChapter(ctx, token, id, in, pdf, video)
}

func (s *ChapterService) Delete(ctx context.Context, token, id string) error {
	if id == "" {
		return apperrors.NotFound("chapter not found")
	}
	return s.api.DeleteChapter(ctx, token, id)
}

func validateChapterInput(in *model.ChapterInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return apperrors.ValidationField("title", "Title is required.")
	}
	if in.SubjectID == "" {
		return apperrors.ValidationField("subject", "Select a subject.")
	}
	if in.Order != nil && *in.Order < 0 {
		return apperrors.ValidationField("order", "Order cannot be negative.")
	}
	return nil
}

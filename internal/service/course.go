package service

import (
	"context"
	"strings"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	"github.com/adhyanguru/admin-go/internal/domain/model"
	apperrors "github.com/adhyanguru/admin-go/internal/errors"
)

// CoursesAPI is the slice of the platform API the course service needs.
type CoursesAPI interface {
	CreateCourse(ctx context.Context, token string, in model.CourseInput, thumbnail *apiclient.FileUpload) (*model.Course, error)
	ListCourses(ctx context.Context, token string, isActive *bool) ([]model.Course, int, error)
	GetCourse(ctx context.Context, token, id string) (*model.Course, error)
	UpdateCourse(ctx context.Context, token, id string, in model.CourseInput, thumbnail *apiclient.FileUpload) (*model.Course, error)
	DeleteCourse(ctx context.Context, token, id string) error
	CreateCourseChapter(ctx context.Context, token string, in model.CourseChapterInput, pdf, video *apiclient.FileUpload) (*model.CourseChapter, error)
	ListCourseChapters(ctx context.Context, token, courseID string, isActive *bool) ([]model.CourseChapter, int, error)
	GetCourseChapter(ctx context.Context, token, id string) (*model.CourseChapter, error)
	UpdateCourseChapter(ctx context.Context, token, id string, in model.CourseChapterInput, pdf, video *apiclient.FileUpload) (*model.CourseChapter, error)
	DeleteCourseChapter(ctx context.Context, token, id string) error
}

// CourseServiceOptions groups dependencies for CourseService.
type CourseServiceOptions struct {
	API CoursesAPI
}

// CourseService manages standalone courses and their chapters.
type CourseService struct {
	api CoursesAPI
}

// NewCourseService constructs a new CourseService.
func NewCourseService(opts CourseServiceOptions) *CourseService {
	return &CourseService{api: opts.API}
}

func (s *CourseService) List(ctx context.Context, token string, isActive *bool) ([]model.Course, int, error) {
	return s.api.ListCourses(ctx, token, isActive)
}

func (s *CourseService) GetByID(ctx context.Context, token, id string) (*model.Course, error) {
	if id == "" {
		return nil, apperrors.NotFound("course not found")
	}
	return s.api.GetCourse(ctx, token, id)
}

func (s *CourseService) Create(ctx context.Context, token string, in model.CourseInput, thumbnail *apiclient.FileUpload) (*model.Course, error) {
	if err := validateCourseInput(&in); err != nil {
		return nil, err
	}
	return s.api.CreateCourse(ctx, token, in, thumbnail)
}

func (s *CourseService) Update(ctx context.Context, token, id string, in model.CourseInput, thumbnail *apiclient.FileUpload) (*model.Course, error) {
	if id == "" {
		return nil, apperrors.NotFound("course not found")
	}
	if err := validateCourseInput(&in); err != nil {
		return nil, err
	}
	return s.api.UpdateCourse(ctx, token, id, in, thumbnail)
}

func (s *CourseService) Delete(ctx context.Context, token, id string) error {
	if id == "" {
		return apperrors.NotFound("course not found")
	}
	return s.api.DeleteCourse(ctx, token, id)
}

// ListChapters fetches the chapters of one course in order.
func (s *CourseService) ListChapters(ctx context.Context, token, courseID string, isActive *bool) ([]model.CourseChapter, int, error) {
	if courseID == "" {
		return nil, 0, apperrors.NotFound("course not found")
	}
	return s.api.ListCourseChapters(ctx, token, courseID, isActive)
}

func (s *CourseService) GetChapterByID(ctx context.Context, token, id string) (*model.CourseChapter, error) {
	if id == "" {
		return nil, apperrors.NotFound("course chapter not found")
	}
	return s.api.GetCourseChapter(ctx, token, id)
}

func (s *CourseService) CreateChapter(ctx context.Context, token string, in model.CourseChapterInput, pdf, video *apiclient.FileUpload) (*model.CourseChapter, error) {
	if err := validateCourseChapterInput(&in); err != nil {
		return nil, err
	}
	return s.api.CreateCourseChapter(ctx, token, in, pdf, video)
}

func (s *CourseService) UpdateChapter(ctx context.Context, token, id string, in model.CourseChapterInput, pdf, video *apiclient.FileUpload) (*model.CourseChapter, error) {
	if id == "" {
		return nil, apperrors.NotFound("course chapter not found")
	}
	if err := validateCourseChapterInput(&in); err != nil {
		return nil, err
	}
	return s.api.UpdateCourseChapter(ctx, token, id, in, pdf, video)
}

func (s *CourseService) DeleteChapter(ctx context.Context, token, id string) error {
	if id == "" {
		return apperrors.NotFound("course chapter not found")
	}
	return s.api.DeleteCourseChapter(ctx, token, id)
}

func validateCourseInput(in *model.CourseInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return apperrors.ValidationField("title", "Title is required.")
	}
	if in.Price != nil && *in.Price < 0 {
		return apperrors.ValidationField("price", "Price cannot be negative.")
	}
	return nil
}

func validateCourseChapterInput(in *model.CourseChapterInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return apperrors.ValidationField("title", "Title is required.")
	}
	if in.CourseID == "" {
		return apperrors.ValidationField("course", "Select a course.")
	}
	if in.Order != nil && *in.Order < 0 {
		return apperrors.ValidationField("order", "Order cannot be negative.")
	}
	return nil
}

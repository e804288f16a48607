package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// DashboardAPI is the slice of the platform API the dashboard service
// needs. The API has no aggregate endpoint, so the counts come from the
// per-entity list endpoints.
type DashboardAPI interface {
	ListUsers(ctx context.Context, token string) ([]model.User, int, error)
	ListMainCategories(ctx context.Context, token string, isActive *bool) ([]model.MainCategory, int, error)
	ListSubCategories(ctx context.Context, token string, opts model.CategoryListOptions) ([]model.SubCategory, int, error)
	ListSubjects(ctx context.Context, token string, opts model.SubjectListOptions) ([]model.Subject, int, error)
	ListBoards(ctx context.Context, token string, isActive *bool) ([]model.Board, int, error)
	ListCourses(ctx context.Context, token string, isActive *bool) ([]model.Course, int, error)
	ListThumbnails(ctx context.Context, token string, opts model.ThumbnailListOptions) (*apiclient.ThumbnailPage, error)
}

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	API DashboardAPI
}

// DashboardService assembles the entity totals shown on the landing page.
type DashboardService struct {
	api DashboardAPI
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	return &DashboardService{api: opts.API}
}

// Counts fetches every entity total in parallel. One failing fetch fails
// the whole dashboard; a page of mostly-zero tiles would be misleading.
func (s *DashboardService) Counts(ctx context.Context, token string) (*model.DashboardCounts, error) {
	var counts model.DashboardCounts

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, n, err := s.api.ListUsers(gctx, token)
		counts.Users = n
		return err
	})
	g.Go(func() error {
		_, n, err := s.api.ListMainCategories(gctx, token, nil)
		counts.MainCategories = n
		return err
	})
	g.Go(func() error {
		_, n, err := s.api.ListSubCategories(gctx, token, model.CategoryListOptions{})
		counts.SubCategories = n
		return err
	})
	g.Go(func() error {
		_, n, err := s.api.ListSubjects(gctx, token, model.SubjectListOptions{})
		counts.Subjects = n
		return err
	})
	g.Go(func() error {
		_, n, err := s.api.ListBoards(gctx, token, nil)
		counts.Boards = n
		return err
	})
	g.Go(func() error {
		_, n, err := s.api.ListCourses(gctx, token, nil)
		counts.Courses = n
		return err
	})
	g.Go(func() error {
		page, err := s.api.ListThumbnails(gctx, token, model.ThumbnailListOptions{Page: 1, Limit: 1})
		if err != nil {
			return err
		}
		counts.Thumbnails = page.Pagination.Total
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &counts, nil
}

package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// CreateCourse creates a public course; the thumbnail is optional.
func (c *Client) CreateCourse(ctx context.Context, token string, in model.CourseInput, thumbnail *FileUpload) (*model.Course, error) {
	form := NewForm().
		Set("title", in.Title).
		SetFloat("price", in.Price).
		SetOptional("description", in.Description).
		AddFile(thumbnail)

	course, _, err := doForm[model.Course](ctx, c, call{
		method:   http.MethodPost,
		path:     "/course",
		token:    token,
		endpoint: "course_create",
		fallback: "Failed to create course. Please try again.",
	}, form)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// ListCourses fetches courses, optionally filtered by active state.
func (c *Client) ListCourses(ctx context.Context, token string, isActive *bool) ([]model.Course, int, error) {
	q := url.Values{}
	boolQuery(q, "isActive", isActive)
	return doJSON[[]model.Course](ctx, c, call{
		method:   http.MethodGet,
		path:     withQuery("/course", q),
		token:    token,
		endpoint: "course_list",
		fallback: "Failed to fetch courses. Please try again.",
	}, nil)
}

// GetCourse fetches one course fresh by id.
func (c *Client) GetCourse(ctx context.Context, token, id string) (*model.Course, error) {
	course, _, err := doJSON[model.Course](ctx, c, call{
		method:   http.MethodGet,
		path:     "/course/" + url.PathEscape(id),
		token:    token,
		endpoint: "course_get",
		fallback: "Failed to fetch course details. Please try again.",
	}, nil)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// UpdateCourse updates a course.
func (c *Client) UpdateCourse(ctx context.Context, token, id string, in model.CourseInput, thumbnail *FileUpload) (*model.Course, error) {
	form := NewForm().
		SetOptional("title", in.Title).
		SetFloat("price", in.Price).
		SetOptional("description", in.Description).
		SetBool("isActive", in.IsActive).
		AddFile(thumbnail)

	course, _, err := doForm[model.Course](ctx, c, call{
		method:   http.MethodPut,
		path:     "/course/" + url.PathEscape(id),
		token:    token,
		endpoint: "course_update",
		fallback: "Failed to update course. Please try again.",
	}, form)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// DeleteCourse removes a course.
func (c *Client) DeleteCourse(ctx context.Context, token, id string) error {
	_, _, err := doJSON[map[string]any](ctx, c, call{
		method:   http.MethodDelete,
		path:     "/course/" + url.PathEscape(id),
		token:    token,
		endpoint: "course_delete",
		fallback: "Failed to delete course. Please try again.",
	}, nil)
	return err
}

// CreateCourseChapter creates a chapter under a course.
func (c *Client) CreateCourseChapter(ctx context.Context, token string, in model.CourseChapterInput, pdf, video *FileUpload) (*model.CourseChapter, error) {
	form := NewForm().
		Set("courseId", in.CourseID).
		Set("title", in.Title).
		SetInt("order", in.Order).
		SetOptional("description", in.Description).
		SetOptional("text", in.Text).
		AddFile(pdf).
		AddFile(video)

	chapter, _, err := doForm[model.CourseChapter](ctx, c, call{
		method:   http.MethodPost,
		path:     "/course-chapter",
		token:    token,
		endpoint: "course_chapter_create",
		fallback: "Failed to create course chapter. Please try again.",
	}, form)
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

// ListCourseChapters fetches the chapters of one course in order.
func (c *Client) ListCourseChapters(ctx context.Context, token, courseID string, isActive *bool) ([]model.CourseChapter, int, error) {
	q := url.Values{}
	boolQuery(q, "isActive", isActive)
	return doJSON[[]model.CourseChapter](ctx, c, call{
		method:   http.MethodGet,
		path:     withQuery("/course/"+url.PathEscape(courseID)+"/chapters", q),
		token:    token,
		endpoint: "course_chapter_list",
		fallback: "Failed to fetch course chapters. Please try again.",
	}, nil)
}

// GetCourseChapter fetches one course chapter fresh by id.
func (c *Client) GetCourseChapter(ctx context.Context, token, id string) (*model.CourseChapter, error) {
	chapter, _, err := doJSON[model.CourseChapter](ctx, c, call{
		method:   http.MethodGet,
		path:     "/course-chapter/" + url.PathEscape(id),
		token:    token,
		endpoint: "course_chapter_get",
		fallback: "Failed to fetch course chapter details. Please try again.",
	}, nil)
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

// UpdateCourseChapter updates a course chapter.
func (c *Client) UpdateCourseChapter(ctx context.Context, token, id string, in model.CourseChapterInput, pdf, video *FileUpload) (*model.CourseChapter, error) {
	form := NewForm().
		SetOptional("title", in.Title).
		SetInt("order", in.Order).
		SetOptional("description", in.Description).
		SetOptional("text", in.Text).
		SetBool("isActive", in.IsActive).
		AddFile(pdf).
		AddFile(video)

	chapter, _, err := doForm[model.CourseChapter](ctx, c, call{
		method:   http.MethodPut,
		path:     "/course-chapter/" + url.PathEscape(id),
		token:    token,
		endpoint: "course_chapter_update",
		fallback: "Failed to update course chapter. Please try again.",
	}, form)
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

// DeleteCourseChapter removes a course chapter.
func (c *Client) DeleteCourseChapter(ctx context.Context, token, id string) error {
	_, _, err := doJSON[map[string]any](ctx, c, call{
		method:   http.MethodDelete,
		path:     "/course-chapter/" + url.PathEscape(id),
		token:    token,
		endpoint: "course_chapter_delete",
		fallback: "Failed to delete course chapter. Please try again.",
	}, nil)
	return err
}

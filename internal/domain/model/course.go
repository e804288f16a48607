//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// Course is a standalone public course with its own chapters, priced
// independently of category subscription plans.
type Course struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Thumbnail   string     `json:"thumbnail,omitempty"`
	Price       float64    `json:"price"`
	IsActive    bool       `json:"isActive"`
	CreatedBy   *UserRef   `json:"createdBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// CourseRef is the abbreviated course reference embedded in course chapters.
type CourseRef struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// CourseInput carries the multipart fields for creating or updating a
// course. The thumbnail travels separately as a FileUpload.
type CourseInput struct {
	Title       string
	Price       *float64
	Description string
	IsActive    *bool
}

// CourseChapterContent groups a course chapter's text and attachment URLs.
// Unlike subject chapters, attachments are plain URLs without filenames.
type CourseChapterContent struct {
	Text  string `json:"text,omitempty"`
	PDF   string `json:"pdf,omitempty"`
	Video string `json:"video,omitempty"`
}

// CourseChapter is an ordered unit of content within a course.
type CourseChapter struct {
	ID          string               `json:"_id"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Course      *CourseRef           `json:"course,omitempty"`
	Order       int                  `json:"order"`
	Content     CourseChapterContent `json:"content"`
	IsActive    bool                 `json:"isActive"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   *time.Time           `json:"updatedAt,omitempty"`
}

// CourseChapterInput carries the multipart fields for a course chapter.
// The pdf and video travel separately as FileUploads.
type CourseChapterInput struct {
	CourseID    string
	Title       string
	Order       *int
	Description string
	Text        string
	IsActive    *bool
}

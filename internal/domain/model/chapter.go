//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// ChapterFile is an uploaded pdf or video attached to a chapter.
type ChapterFile struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
}

// ChapterContent groups a chapter's text body and file attachments.
type ChapterContent struct {
	Text  string       `json:"text,omitempty"`
	PDF   *ChapterFile `json:"pdf,omitempty"`
	Video *ChapterFile `json:"video,omitempty"`
}

// SubjectRef is the abbreviated subject reference embedded in chapters.
type SubjectRef struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// Chapter is an ordered unit of content within a subject.
type Chapter struct {
	ID          string         `json:"_id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Subject     *SubjectRef    `json:"subject,omitempty"`
	Order       int            `json:"order"`
	Content     ChapterContent `json:"content"`
	IsActive    bool           `json:"isActive"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   *time.Time     `json:"updatedAt,omitempty"`
}

// ChapterInput carries the multipart fields for creating or updating a
// chapter. The pdf and video travel separately as FileUploads.
type ChapterInput struct {
	Title       string
	SubjectID   string
	Order       *int
	Description string
	TextContent string
	IsActive    *bool
}

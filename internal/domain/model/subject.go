//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// Subject is a course of study tied to a main category, sub category, and
// optionally an examination board. Detail fetches include its chapters.
type Subject struct {
	ID           string      `json:"_id"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	Thumbnail    string      `json:"thumbnail,omitempty"`
	MainCategory CategoryRef `json:"mainCategory"`
	SubCategory  CategoryRef `json:"subCategory"`
	Board        *BoardRef   `json:"board,omitempty"`
	IsActive     bool        `json:"isActive"`
	CreatedBy    *UserRef    `json:"createdBy,omitempty"`
	Chapters     []Chapter   `json:"chapters,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    *time.Time  `json:"updatedAt,omitempty"`
}

// SubjectInput carries the multipart fields for creating or updating a
// subject. The thumbnail travels separately as a FileUpload.
type SubjectInput struct {
	Title          string
	MainCategoryID string
	SubCategoryID  string
	BoardID        string
	Description    string
	IsActive       *bool
}

// SubjectListOptions filters subject list fetches.
type SubjectListOptions struct {
	MainCategoryID string
	SubCategoryID  string
	IsActive       *bool
}

//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// Thumbnail is a promotional banner image shown in the mobile apps,
// ordered by the Order field.
type Thumbnail struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Image       string     `json:"image"`
	Description string     `json:"description,omitempty"`
	Order       int        `json:"order"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// ThumbnailInput carries the multipart fields for creating or updating a
// thumbnail. The image travels separately as a FileUpload.
type ThumbnailInput struct {
	Title       string
	Description string
	Order       *int
	IsActive    *bool
}

// ThumbnailListOptions controls paging, filtering and sorting for the
// thumbnail list endpoint, the only paginated endpoint the API exposes.
type ThumbnailListOptions struct {
	Page      int
	Limit     int
	IsActive  *bool
	SortBy    string
	SortOrder string
}

// Pagination is the paging block returned by paginated list endpoints.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

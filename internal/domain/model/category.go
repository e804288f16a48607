//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// MainCategory is a top-level content category.
type MainCategory struct {
	ID          string     `json:"_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Image       string     `json:"image,omitempty"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// CategoryRef is the abbreviated category reference embedded in child entities.
type CategoryRef struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// SubCategory is a second-level category nested under a MainCategory.
type SubCategory struct {
	ID           string      `json:"_id"`
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	Image        string      `json:"image,omitempty"`
	MainCategory CategoryRef `json:"mainCategory"`
	IsActive     bool        `json:"isActive"`
	CreatedBy    *UserRef    `json:"createdBy,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    *time.Time  `json:"updatedAt,omitempty"`
}

// CategoryInput carries the multipart fields for creating or updating a
// main category. The image travels separately as a FileUpload.
type CategoryInput struct {
	Name        string
	Description string
	IsActive    *bool
}

// SubCategoryInput carries the multipart fields for a sub category.
type SubCategoryInput struct {
	Name           string
	MainCategoryID string
	Description    string
	IsActive       *bool
}

// CategoryListOptions filters category list fetches.
type CategoryListOptions struct {
	MainCategoryID string
	IsActive       *bool
}

//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"
)

const (
	maxBoardNameLen = 255
	maxBoardCodeLen = 32
)

// Board is an examination board (e.g. CBSE) subjects can be tied to.
type Board struct {
	ID          string     `json:"_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Code        string     `json:"code,omitempty"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// BoardRef is the abbreviated board reference embedded in subjects.
type BoardRef struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Code        string `json:"code,omitempty"`
}

// BoardInput carries the JSON fields for creating or updating a board.
type BoardInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Code        string `json:"code,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// Validate normalizes the input and reports field-level problems.
func (in *BoardInput) Validate() map[string]string {
	errs := map[string]string{}
	in.Name = strings.TrimSpace(in.Name)
	in.Code = strings.TrimSpace(in.Code)
	if in.Name == "" {
		errs["name"] = "Name is required."
	} else if len(in.Name) > maxBoardNameLen {
		errs["name"] = "Name is too long."
	}
	if len(in.Code) > maxBoardCodeLen {
		errs["code"] = "Code is too long."
	}
	return errs
}

//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"
)

// PlanDuration is the subscription length of a plan.
type PlanDuration string

const (
	PlanDurationOneMonth    PlanDuration = "1_MONTH"
	PlanDurationThreeMonths PlanDuration = "3_MONTHS"
	PlanDurationSixMonths   PlanDuration = "6_MONTHS"
	PlanDurationOneYear     PlanDuration = "1_YEAR"
)

// Valid reports whether the duration is one of the supported values.
func (d PlanDuration) Valid() bool {
	switch d {
	case PlanDurationOneMonth, PlanDurationThreeMonths, PlanDurationSixMonths, PlanDurationOneYear:
		return true
	default:
		return false
	}
}

// Label returns a human-readable form for list rows and selects.
func (d PlanDuration) Label() string {
	switch d {
	case PlanDurationOneMonth:
		return "1 Month"
	case PlanDurationThreeMonths:
		return "3 Months"
	case PlanDurationSixMonths:
		return "6 Months"
	case PlanDurationOneYear:
		return "1 Year"
	default:
		return string(d)
	}
}

// ParsePlanDuration normalizes a duration string and reports whether it is supported.
func ParsePlanDuration(value string) (PlanDuration, bool) {
	d := PlanDuration(strings.ToUpper(strings.TrimSpace(value)))
	if d.Valid() {
		return d, true
	}
	return "", false
}

// PlanDurations lists the supported durations in display order.
func PlanDurations() []PlanDuration {
	return []PlanDuration{
		PlanDurationOneMonth,
		PlanDurationThreeMonths,
		PlanDurationSixMonths,
		PlanDurationOneYear,
	}
}

// PlanSubCategoryRef is the sub-category reference embedded in plans,
// which also carries its parent main category name.
type PlanSubCategoryRef struct {
	ID           string      `json:"_id"`
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	Image        string      `json:"image,omitempty"`
	MainCategory CategoryRef `json:"mainCategory"`
}

// Plan is a paid subscription option scoped to a sub category.
type Plan struct {
	ID          string             `json:"_id"`
	SubCategory PlanSubCategoryRef `json:"subCategory"`
	Duration    PlanDuration       `json:"duration"`
	Amount      float64            `json:"amount"`
	Description string             `json:"description,omitempty"`
	IsActive    bool               `json:"isActive"`
	CreatedBy   *UserRef           `json:"createdBy,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   *time.Time         `json:"updatedAt,omitempty"`
}

// PlanInput carries the JSON fields for creating or updating one plan.
type PlanInput struct {
	SubCategoryID string       `json:"subCategoryId,omitempty"`
	Duration      PlanDuration `json:"duration,omitempty"`
	Amount        *float64     `json:"amount,omitempty"`
	Description   string       `json:"description,omitempty"`
	IsActive      *bool        `json:"isActive,omitempty"`
}

// PlanSpec is one duration/amount pair within a bulk create request.
type PlanSpec struct {
	Duration    PlanDuration `json:"duration"`
	Amount      float64      `json:"amount"`
	Description string       `json:"description,omitempty"`
}

// PlanListOptions filters plan list fetches.
type PlanListOptions struct {
	SubCategoryID string
	Duration      PlanDuration
	IsActive      *bool
}

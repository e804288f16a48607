//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// CommissionSettings holds the platform-wide commission percentage split
// across the four field roles. There is at most one record.
type CommissionSettings struct {
	ID                            string     `json:"_id"`
	CoordinatorPercentage         float64    `json:"coordinatorPercentage"`
	DistrictCoordinatorPercentage float64    `json:"districtCoordinatorPercentage"`
	TeamLeaderPercentage          float64    `json:"teamLeaderPercentage"`
	FieldEmployeePercentage       float64    `json:"fieldEmployeePercentage"`
	UpdatedBy                     *UserRef   `json:"updatedBy,omitempty"`
	UpdatedByModel                string     `json:"updatedByModel,omitempty"`
	CreatedAt                     time.Time  `json:"createdAt"`
	UpdatedAt                     *time.Time `json:"updatedAt,omitempty"`
}

// CommissionSettingsInput carries the JSON fields for writing the split.
type CommissionSettingsInput struct {
	CoordinatorPercentage         float64 `json:"coordinatorPercentage"`
	DistrictCoordinatorPercentage float64 `json:"districtCoordinatorPercentage"`
	TeamLeaderPercentage          float64 `json:"teamLeaderPercentage"`
	FieldEmployeePercentage       float64 `json:"fieldEmployeePercentage"`
}

// Validate reports field-level problems; each percentage must sit in [0,100].
func (in CommissionSettingsInput) Validate() map[string]string {
	errs := map[string]string{}
	check := func(field string, v float64) {
		if v < 0 || v > 100 {
			errs[field] = "Percentage must be between 0 and 100."
		}
	}
	check("coordinatorPercentage", in.CoordinatorPercentage)
	check("districtCoordinatorPercentage", in.DistrictCoordinatorPercentage)
	check("teamLeaderPercentage", in.TeamLeaderPercentage)
	check("fieldEmployeePercentage", in.FieldEmployeePercentage)
	return errs
}

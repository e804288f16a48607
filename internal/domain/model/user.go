//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// UserType distinguishes the account kinds the platform can create.
type UserType string

const (
	UserTypeCoordinator         UserType = "coordinator"
	UserTypeDistrictCoordinator UserType = "district-coordinator"
	UserTypeTeamLeader          UserType = "team-leader"
	UserTypeFieldEmployee       UserType = "field-employee"
)

// Valid reports whether the user type is supported.
func (t UserType) Valid() bool {
	switch t {
	case UserTypeCoordinator, UserTypeDistrictCoordinator, UserTypeTeamLeader, UserTypeFieldEmployee:
		return true
	default:
		return false
	}
}

// User is a platform account as returned by the super-admin API.
// Detail fetches may carry fields the list endpoint omits (password reveal,
// geolocation, timestamps).
type User struct {
	ID             string     `json:"_id"`
	UserID         string     `json:"userId"`
	Email          string     `json:"email"`
	MobileNumber   string     `json:"mobileNumber"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Role           string     `json:"role"`
	District       string     `json:"district,omitempty"`
	ProfilePicture string     `json:"profilePicture,omitempty"`
	IsActive       bool       `json:"isActive"`
	Latitude       *float64   `json:"latitude,omitempty"`
	Longitude      *float64   `json:"longitude,omitempty"`
	Password       string     `json:"password,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

// DisplayName joins first and last name for list rows and greetings.
func (u User) DisplayName() string {
	switch {
	case u.FirstName == "" && u.LastName == "":
		return u.Email
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// UserRef is the abbreviated creator reference embedded in other entities.
type UserRef struct {
	ID        string `json:"_id"`
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// DisplayName joins the reference's name fields.
func (u UserRef) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// CreateUserInput carries the multipart fields for creating a platform account.
// ProfilePicture travels separately as a FileUpload.
type CreateUserInput struct {
	UserType     UserType
	Email        string
	MobileNumber string
	Password     string
	FirstName    string
	LastName     string
	District     string
	Latitude     *float64
	Longitude    *float64
}

// UpdateUserInput carries the mutable account fields. Empty strings and nil
// pointers leave the stored value unchanged.
type UpdateUserInput struct {
	FirstName    string
	LastName     string
	MobileNumber string
	District     string
	IsActive     *bool
}

// CreateAdminInput carries the multipart fields for creating an admin account.
type CreateAdminInput struct {
	Email        string
	MobileNumber string
	Password     string
	FirstName    string
	LastName     string
	Latitude     *float64
	Longitude    *float64
}

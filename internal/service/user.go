package service

import (
	"context"
	"strings"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	"github.com/adhyanguru/admin-go/internal/domain/model"
	apperrors "github.com/adhyanguru/admin-go/internal/errors"
)

// UsersAPI is the slice of the platform API the user service needs.
type UsersAPI interface {
	ListUsers(ctx context.Context, token string) ([]model.User, int, error)
	GetUser(ctx context.Context, token, userID string, includePassword bool) (*model.User, error)
	CreateUser(ctx context.Context, token string, in model.CreateUserInput, picture *apiclient.FileUpload) (*model.User, error)
	CreateAdmin(ctx context.Context, token string, in model.CreateAdminInput, picture *apiclient.FileUpload) (*model.User, error)
	UpdateUser(ctx context.Context, token, userID string, in model.UpdateUserInput, picture *apiclient.FileUpload) (*model.User, error)
	DeleteUser(ctx context.Context, token, userID string) error
}

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	API UsersAPI
}

// UserService manages platform accounts through the super-admin API.
type UserService struct {
	api UsersAPI
}

// NewUserService constructs a new UserService.
func NewUserService(opts UserServiceOptions) *UserService {
	return &UserService{api: opts.API}
}

// List fetches every account with the server-reported count.
func (s *UserService) List(ctx context.Context, token string) ([]model.User, int, error) {
	return s.api.ListUsers(ctx, token)
}

// GetByID fetches one account fresh; includePassword reveals the stored
// credential on the detail view.
func (s *UserService) GetByID(ctx context.Context, token, id string, includePassword bool) (*model.User, error) {
	if id == "" {
		return nil, apperrors.NotFound("user not found")
	}
	return s.api.GetUser(ctx, token, id, includePassword)
}

// CreateUser validates and provisions a field account.
func (s *UserService) CreateUser(ctx context.Context, token string, in model.CreateUserInput, picture *apiclient.FileUpload) (*model.User, error) {
	if errs := validateAccountFields(in.Email, in.MobileNumber, in.Password, in.FirstName); len(errs) > 0 {
		return nil, fieldErrors(errs)
	}
	if !in.UserType.Valid() {
		return nil, apperrors.ValidationField("userType", "Select a valid user type.")
	}
	return s.api.CreateUser(ctx, token, in, picture)
}

// CreateAdmin validates and provisions an admin account.
func (s *UserService) CreateAdmin(ctx context.Context, token string, in model.CreateAdminInput, picture *apiclient.FileUpload) (*model.User, error) {
	if errs := validateAccountFields(in.Email, in.MobileNumber, in.Password, in.FirstName); len(errs) > 0 {
		return nil, fieldErrors(errs)
	}
	return s.api.CreateAdmin(ctx, token, in, picture)
}

// Update validates and saves the mutable account fields.
func (s *UserService) Update(ctx context.Context, token, id string, in model.UpdateUserInput, picture *apiclient.FileUpload) (*model.User, error) {
	if id == "" {
		return nil, apperrors.NotFound("user not found")
	}
	if strings.TrimSpace(in.FirstName) == "" {
		return nil, apperrors.ValidationField("firstName", "First name is required.")
	}
	return s.api.UpdateUser(ctx, token, id, in, picture)
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, token, id string) error {
	if id == "" {
		return apperrors.NotFound("user not found")
	}
	return s.api.DeleteUser(ctx, token, id)
}

// validateAccountFields applies the shared pre-network checks for account
// creation. The platform API remains the authority on uniqueness.
func validateAccountFields(email, mobile, password, firstName string) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		errs["email"] = "A valid email address is required."
	}
	if strings.TrimSpace(mobile) == "" {
		errs["mobileNumber"] = "Mobile number is required."
	}
	if len(password) < 6 {
		errs["password"] = "Password must be at least 6 characters."
	}
	if strings.TrimSpace(firstName) == "" {
		errs["firstName"] = "First name is required."
	}
	return errs
}

// fieldErrors wraps a field error map in a validation AppError carrying the
// first field for display.
func fieldErrors(errs map[string]string) error {
	for field, msg := range errs {
		return apperrors.ValidationField(field, msg)
	}
	return nil
}

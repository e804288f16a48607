package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// CreateAdmin provisions a new admin account on behalf of the caller.
func (c *Client) CreateAdmin(ctx context.Context, token string, in model.CreateAdminInput, picture *FileUpload) (*model.User, error) {
	form := NewForm().
		Set("email", in.Email).
		Set("mobileNumber", in.MobileNumber).
		Set("password", in.Password).
		Set("firstName", in.FirstName).
		Set("lastName", in.LastName).
		SetFloat("latitude", in.Latitude).
		SetFloat("longitude", in.Longitude).
		AddFile(picture)

	user, _, err := doForm[model.User](ctx, c, call{
		method:   http.MethodPost,
		path:     "/create-admin",
		token:    token,
		endpoint: "admin_create",
		fallback: "Failed to create admin. Please try again.",
	}, form)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser provisions a field account (coordinator, team leader, etc.).
func (c *Client) CreateUser(ctx context.Context, token string, in model.CreateUserInput, picture *FileUpload) (*model.User, error) {
	form := NewForm().
		Set("userType", string(in.UserType)).
		Set("email", in.Email).
		Set("mobileNumber", in.MobileNumber).
		Set("password", in.Password).
		Set("firstName", in.FirstName).
		Set("lastName", in.LastName).
		SetOptional("district", in.District).
		SetFloat("latitude", in.Latitude).
		SetFloat("longitude", in.Longitude).
		AddFile(picture)

	user, _, err := doForm[model.User](ctx, c, call{
		method:   http.MethodPost,
		path:     "/create-user",
		token:    token,
		endpoint: "user_create",
		fallback: "Failed to create user. Please try again.",
	}, form)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers fetches every platform account with its count.
func (c *Client) ListUsers(ctx context.Context, token string) ([]model.User, int, error) {
	return doJSON[[]model.User](ctx, c, call{
		method:   http.MethodGet,
		path:     "/all-users",
		token:    token,
		endpoint: "users_list",
		fallback: "Failed to fetch users. Please try again.",
	}, nil)
}

// GetUser fetches one account fresh by id; includePassword reveals the
// stored credential on the detail view.
func (c *Client) GetUser(ctx context.Context, token, userID string, includePassword bool) (*model.User, error) {
	q := url.Values{}
	if includePassword {
		q.Set("includePassword", "true")
	}
	user, _, err := doJSON[model.User](ctx, c, call{
		method:   http.MethodGet,
		path:     withQuery("/user/"+url.PathEscape(userID), q),
		token:    token,
		endpoint: "user_get",
		fallback: "Failed to fetch user details. Please try again.",
	}, nil)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser saves the mutable account fields. The optional picture
// replaces the stored profile picture.
func (c *Client) UpdateUser(ctx context.Context, token, userID string, in model.UpdateUserInput, picture *FileUpload) (*model.User, error) {
	form := NewForm().
		SetOptional("firstName", in.FirstName).
		SetOptional("lastName", in.LastName).
		SetOptional("mobileNumber", in.MobileNumber).
		SetOptional("district", in.District).
		SetBool("isActive", in.IsActive).
		AddFile(picture)

	user, _, err := doForm[model.User](ctx, c, call{
		method:   http.MethodPut,
		path:     "/update-user/" + url.PathEscape(userID),
		token:    token,
		endpoint: "user_update",
		fallback: "Failed to update user. Please try again.",
	}, form)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, token, userID string) error {
	_, _, err := doJSON[map[string]any](ctx, c, call{
		method:   http.MethodDelete,
		path:     "/delete-user/" + url.PathEscape(userID),
		token:    token,
		endpoint: "user_delete",
		fallback: "Failed to delete user. Please try again.",
	}, nil)
	return err
}

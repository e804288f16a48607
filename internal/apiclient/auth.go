package apiclient

import (
	"context"
	"net/http"

	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// LoginResult is the payload of a successful credential login.
type LoginResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// SignupInput carries the multipart fields for self-service admin signup.
// The profile picture travels separately as a FileUpload.
type SignupInput struct {
	Email        string
	MobileNumber string
	Password     string
	FirstName    string
	LastName     string
}

// Login exchanges credentials for a bearer token. The identifier may be an
// email address, mobile number, or user id.
func (c *Client) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	body := map[string]string{
		"identifier": identifier,
		"password":   password,
	}
	result, _, err := doJSON[LoginResult](ctx, c, call{
		method:   http.MethodPost,
		path:     "/login",
		endpoint: "login",
		fallback: "Login failed. Please try again.",
	}, body)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Signup creates a new admin account. The caller logs in separately; signup
// itself does not issue a token.
func (c *Client) Signup(ctx context.Context, in SignupInput, picture *FileUpload) (*model.User, error) {
	form := NewForm().
		Set("email", in.Email).
		Set("mobileNumber", in.MobileNumber).
		Set("password", in.Password).
		Set("firstName", in.FirstName).
		Set("lastName", in.LastName).
		AddFile(picture)

	user, _, err := doForm[model.User](ctx, c, call{
		method:   http.MethodPost,
		path:     "/signup",
		endpoint: "signup",
		fallback: "Signup failed. Please try again.",
	}, form)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout invalidates the bearer token server-side. Callers clear local
// session state regardless of the outcome.
func (c *Client) Logout(ctx context.Context, token string) error {
	_, _, err := doJSON[map[string]any](ctx, c, call{
		method:   http.MethodPost,
		path:     "/logout",
		token:    token,
		endpoint: "logout",
		fallback: "Logout failed. Please try again.",
	}, map[string]any{})
	return err
}

// Package mockapi is a seeded in-memory stand-in for the Adhyan Guru
// platform API. It implements the same API slices the services consume,
// plus ports.CredentialAuthenticator, so a development deployment can run
// the full console without network access to the real platform.
//
// Enabled with UPSTREAM_MODE=mock. Never use in production: passwords are
// stored in plain text and all data lives in process memory.
package mockapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// DefaultAdminEmail and DefaultAdminPassword are the seeded credentials.
const (
	DefaultAdminEmail    = "admin@adhyan.local"
	DefaultAdminPassword = "admin123"
)

// Server holds all mock state behind one mutex. Every method takes the
// bearer token first, mirroring the real client's contract: an unknown
// token yields a 401 that callers translate into a forced logout.
type Server struct {
	mu  sync.Mutex
	now func() time.Time

	tokens    map[string]string // token -> user id
	passwords map[string]string // user id -> plain password

	users          []model.User
	mains          []model.MainCategory
	subs           []model.SubCategory
	subjects       []model.Subject
	chapters       []model.Chapter
	boards         []model.Board
	courses        []model.Course
	courseChapters []model.CourseChapter
	plans          []model.Plan
	thumbnails     []model.Thumbnail
	commission     *model.CommissionSettings
}

// New creates a seeded mock server.
func New() *Server {
	s := &Server{
		now:       time.Now,
		tokens:    map[string]string{},
		passwords: map[string]string{},
	}
	s.seed()
	return s
}

func (s *Server) nextID() string { return uuid.NewString() }

func errUnauthorized() error {
	return &apiclient.APIError{Status: http.StatusUnauthorized, Message: "Session expired. Please log in again."}
}

func errNotFound(what string) error {
	return &apiclient.APIError{Status: http.StatusNotFound, Message: what + " not found"}
}

func errBadRequest(msg string) error {
	return &apiclient.APIError{Status: http.StatusBadRequest, Message: msg}
}

// checkToken must be called with the lock held.
func (s *Server) checkToken(token string) error {
	if _, ok := s.tokens[token]; !ok {
		return errUnauthorized()
	}
	return nil
}

// fileURL fabricates a stable-looking CDN URL for an uploaded file.
func (s *Server) fileURL(kind, name string) string {
	if name == "" {
		name = "file"
	}
	return "https://cdn.adhyan.local/mock/" + kind + "/" + uuid.NewString() + "/" + name
}

func matchActive(isActive *bool, v bool) bool {
	return isActive == nil || *isActive == v
}

// Login implements ports.CredentialAuthenticator. The identifier may be an
// email address, mobile number, or user id.
func (s *Server) Login(_ context.Context, identifier, password string) (*apiclient.LoginResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(strings.TrimSpace(identifier))
	for _, u := range s.users {
		if strings.ToLower(u.Email) != needle && u.MobileNumber != needle && strings.ToLower(u.UserID) != needle {
			continue
		}
		if s.passwords[u.ID] != password {
			break
		}
		token := uuid.NewString()
		s.tokens[token] = u.ID
		return &apiclient.LoginResult{Token: token, User: u}, nil
	}
	return nil, &apiclient.APIError{Status: http.StatusUnauthorized, Message: "Invalid credentials."}
}

// Logout implements ports.CredentialAuthenticator.
func (s *Server) Logout(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

// Signup implements ports.CredentialAuthenticator. Mirrors the platform's
// behavior: signup creates an admin account but issues no token.
func (s *Server) Signup(_ context.Context, in apiclient.SignupInput, picture *apiclient.FileUpload) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, in.Email) {
			return nil, errBadRequest("An account with this email already exists.")
		}
	}

	user := model.User{
		ID:           s.nextID(),
		UserID:       fmt.Sprintf("ADM%04d", len(s.users)+1),
		Email:        in.Email,
		MobileNumber: in.MobileNumber,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         "admin",
		IsActive:     true,
		CreatedAt:    s.now(),
	}
	if picture != nil {
		user.ProfilePicture = s.fileURL("profile", picture.FileName)
	}
	s.users = append(s.users, user)
	s.passwords[user.ID] = in.Password
	return &user, nil
}

// ListUsers returns every account with the total count.
func (s *Server) ListUsers(_ context.Context, token string) ([]model.User, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, 0, err
	}
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	for i := range out {
		out[i].Password = "" // list endpoint never carries credentials
	}
	return out, len(out), nil
}

// GetUser returns one account; includePassword reveals the stored credential.
func (s *Server) GetUser(_ context.Context, token, userID string, includePassword bool) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	for _, u := range s.users {
		if u.ID == userID {
			out := u
			if includePassword {
				out.Password = s.passwords[u.ID]
			} else {
				out.Password = ""
			}
			return &out, nil
		}
	}
	return nil, errNotFound("user")
}

// CreateUser provisions a field account of the given type.
func (s *Server) CreateUser(_ context.Context, token string, in model.CreateUserInput, picture *apiclient.FileUpload) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	user := model.User{
		ID:           s.nextID(),
		UserID:       fmt.Sprintf("USR%04d", len(s.users)+1),
		Email:        in.Email,
		MobileNumber: in.MobileNumber,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         string(in.UserType),
		District:     in.District,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		IsActive:     true,
		CreatedAt:    s.now(),
	}
	if picture != nil {
		user.ProfilePicture = s.fileURL("profile", picture.FileName)
	}
	s.users = append(s.users, user)
	s.passwords[user.ID] = in.Password
	return &user, nil
}

// CreateAdmin provisions an admin account.
func (s *Server) CreateAdmin(_ context.Context, token string, in model.CreateAdminInput, picture *apiclient.FileUpload) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	user := model.User{
		ID:           s.nextID(),
		UserID:       fmt.Sprintf("ADM%04d", len(s.users)+1),
		Email:        in.Email,
		MobileNumber: in.MobileNumber,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         "admin",
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		IsActive:     true,
		CreatedAt:    s.now(),
	}
	if picture != nil {
		user.ProfilePicture = s.fileURL("profile", picture.FileName)
	}
	s.users = append(s.users, user)
	s.passwords[user.ID] = in.Password
	return &user, nil
}

// UpdateUser applies the mutable fields to a stored account.
func (s *Server) UpdateUser(_ context.Context, token, userID string, in model.UpdateUserInput, picture *apiclient.FileUpload) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	for i := range s.users {
		if s.users[i].ID != userID {
			continue
		}
		u := &s.users[i]
		if in.FirstName != "" {
			u.FirstName = in.FirstName
		}
		if in.LastName != "" {
			u.LastName = in.LastName
		}
		if in.MobileNumber != "" {
			u.MobileNumber = in.MobileNumber
		}
		if in.District != "" {
			u.District = in.District
		}
		if in.IsActive != nil {
			u.IsActive = *in.IsActive
		}
		if picture != nil {
			u.ProfilePicture = s.fileURL("profile", picture.FileName)
		}
		now := s.now()
		u.UpdatedAt = &now
		out := *u
		out.Password = ""
		return &out, nil
	}
	return nil, errNotFound("user")
}

// DeleteUser removes a stored account.
func (s *Server) DeleteUser(_ context.Context, token, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return err
	}
	for i := range s.users {
		if s.users[i].ID == userID {
			delete(s.passwords, userID)
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return errNotFound("user")
}

// ListThumbnails pages, filters and sorts the seeded banners.
func (s *Server) ListThumbnails(_ context.Context, token string, opts model.ThumbnailListOptions) (*apiclient.ThumbnailPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}

	filtered := make([]model.Thumbnail, 0, len(s.thumbnails))
	for _, t := range s.thumbnails {
		if matchActive(opts.IsActive, t.IsActive) {
			filtered = append(filtered, t)
		}
	}
	sortThumbnails(filtered, opts.SortBy, opts.SortOrder)

	page, limit := opts.Page, opts.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	total := len(filtered)
	pages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &apiclient.ThumbnailPage{
		Thumbnails: filtered[start:end],
		Pagination: model.Pagination{Page: page, Limit: limit, Total: total, Pages: pages},
	}, nil
}

func sortThumbnails(items []model.Thumbnail, sortBy, sortOrder string) {
	desc := strings.EqualFold(sortOrder, "desc")
	less := func(a, b model.Thumbnail) bool {
		switch sortBy {
		case "createdAt":
			return a.CreatedAt.Before(b.CreatedAt)
		case "title":
			return a.Title < b.Title
		default:
			return a.Order < b.Order
		}
	}
	// insertion sort keeps this dependency-free and stable for small sets
	for i := 1; i < len(items); i++ {
		for j := i; j > 0; j-- {
			a, b := items[j-1], items[j]
			swap := less(b, a)
			if desc {
				swap = less(a, b)
			}
			if !swap {
				break
			}
			items[j-1], items[j] = b, a
		}
	}
}

// GetThumbnail returns one banner by id.
func (s *Server) GetThumbnail(_ context.Context, token, id string) (*model.Thumbnail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	for _, t := range s.thumbnails {
		if t.ID == id {
			out := t
			return &out, nil
		}
	}
	return nil, errNotFound("thumbnail")
}

// CreateThumbnail appends a new banner.
func (s *Server) CreateThumbnail(_ context.Context, token string, in model.ThumbnailInput, image *apiclient.FileUpload) (*model.Thumbnail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	if image == nil {
		return nil, errBadRequest("An image is required.")
	}
	t := model.Thumbnail{
		ID:          s.nextID(),
		Title:       in.Title,
		Description: in.Description,
		Image:       s.fileURL("thumbnail", image.FileName),
		IsActive:    boolOrDefault(in.IsActive, true),
		CreatedAt:   s.now(),
	}
	if in.Order != nil {
		t.Order = *in.Order
	} else {
		t.Order = len(s.thumbnails) + 1
	}
	s.thumbnails = append(s.thumbnails, t)
	return &t, nil
}

// UpdateThumbnail patches a banner in place.
func (s *Server) UpdateThumbnail(_ context.Context, token, id string, in model.ThumbnailInput, image *apiclient.FileUpload) (*model.Thumbnail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	for i := range s.thumbnails {
		if s.thumbnails[i].ID != id {
			continue
		}
		t := &s.thumbnails[i]
		if in.Title != "" {
			t.Title = in.Title
		}
		t.Description = in.Description
		if in.Order != nil {
			t.Order = *in.Order
		}
		if in.IsActive != nil {
			t.IsActive = *in.IsActive
		}
		if image != nil {
			t.Image = s.fileURL("thumbnail", image.FileName)
		}
		t.UpdatedAt = timePtr(s.now())
		out := *t
		return &out, nil
	}
	return nil, errNotFound("thumbnail")
}

// DeleteThumbnail removes a banner.
func (s *Server) DeleteThumbnail(_ context.Context, token, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return err
	}
	for i := range s.thumbnails {
		if s.thumbnails[i].ID == id {
			s.thumbnails = append(s.thumbnails[:i], s.thumbnails[i+1:]...)
			return nil
		}
	}
	return errNotFound("thumbnail")
}

// GetAnalytics fabricates a report payload shaped like the live API's,
// scaled down for narrower periods so the page visibly reacts to filters.
func (s *Server) GetAnalytics(_ context.Context, token string, query model.AnalyticsQuery) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkToken(token); err != nil {
		return nil, err
	}

	scale := 1.0
	switch query.Period {
	case model.AnalyticsPeriodToday:
		scale = 0.01
	case model.AnalyticsPeriodWeek:
		scale = 0.05
	case model.AnalyticsPeriodMonth:
		scale = 0.2
	case model.AnalyticsPeriodYear:
		scale = 0.8
	}

	payload := map[string]any{
		"revenue":       map[string]any{"total": 1250000 * scale},
		"orders":        map[string]any{"total": int(4200 * scale)},
		"subscriptions": map[string]any{"active": int(1800 * scale)},
		"users":         map[string]any{"new": int(300 * scale), "total": len(s.users)},
		"plans": map[string]any{
			"top": []string{"JEE 1 Year", "NEET 6 Months", "CBSE X 3 Months"},
		},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func boolOrDefault(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}

func timePtr(t time.Time) *time.Time { return &t }

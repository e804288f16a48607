package mockapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	"github.com/adhyanguru/admin-go/internal/domain/model"
)

func loginDefaultAdmin(t *testing.T, s *Server) string {
	t.Helper()
	result, err := s.Login(context.Background(), DefaultAdminEmail, DefaultAdminPassword)
	assert.NoError(t, err)
	return result.Token
}

func TestLogin_SeededAdmin(t *testing.T) {
	t.Parallel()
	s := New()

	result, err := s.Login(context.Background(), DefaultAdminEmail, DefaultAdminPassword)
	assert.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, DefaultAdminEmail, result.User.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	s := New()

	_, err := s.Login(context.Background(), DefaultAdminEmail, "wrong")
	var apiErr *apiclient.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
}

func TestLogout_InvalidatesToken(t *testing.T) {
	t.Parallel()
	s := New()
	token := loginDefaultAdmin(t, s)

	assert.NoError(t, s.Logout(context.Background(), token))

	_, _, err := s.ListUsers(context.Background(), token)
	assert.ErrorIs(t, err, apiclient.ErrUnauthorized)
}

func TestSignup_RejectsDuplicateEmail(t *testing.T) {
	t.Parallel()
	s := New()

	_, err := s.Signup(context.Background(), apiclient.SignupInput{Email: DefaultAdminEmail, Password: "x"}, nil)
	assert.Error(t, err)
}

func TestSignup_ThenLogin(t *testing.T) {
	t.Parallel()
	s := New()

	user, err := s.Signup(context.Background(), apiclient.SignupInput{
		Email:        "fresh@adhyan.local",
		MobileNumber: "9111111111",
		Password:     "secret12",
		FirstName:    "Fresh",
	}, nil)
	assert.NoError(t, err)
	assert.Equal(t, "admin", user.Role)

	result, err := s.Login(context.Background(), "fresh@adhyan.local", "secret12")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)
}

func TestGetUser_PasswordReveal(t *testing.T) {
	t.Parallel()
	s := New()
	token := loginDefaultAdmin(t, s)

	users, total, err := s.ListUsers(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, len(users), total)
	assert.NotEmpty(t, users)
	for _, u := range users {
		assert.Empty(t, u.Password, "list endpoint must never carry credentials")
	}

	hidden, err := s.GetUser(context.Background(), token, users[0].ID, false)
	assert.NoError(t, err)
	assert.Empty(t, hidden.Password)

	revealed, err := s.GetUser(context.Background(), token, users[0].ID, true)
	assert.NoError(t, err)
	assert.NotEmpty(t, revealed.Password)
}

func TestUpdateUser_AppliesMutableFields(t *testing.T) {
	t.Parallel()
	s := New()
	token := loginDefaultAdmin(t, s)
	ctx := context.Background()

	created, err := s.CreateUser(ctx, token, model.CreateUserInput{
		UserType:     model.UserTypeCoordinator,
		Email:        "coord@adhyan.local",
		MobileNumber: "9222222222",
		Password:     "secret12",
		FirstName:    "Meera",
		District:     "Kollam",
	}, nil)
	assert.NoError(t, err)

	inactive := false
	updated, err := s.UpdateUser(ctx, token, created.ID, model.UpdateUserInput{
		FirstName: "Meera",
		LastName:  "Pillai",
		District:  "Thrissur",
		IsActive:  &inactive,
	}, nil)
	assert.NoError(t, err)
	assert.Equal(t, "Pillai", updated.LastName)
	assert.Equal(t, "Thrissur", updated.District)
	assert.False(t, updated.IsActive)
	assert.NotNil(t, updated.UpdatedAt)
	assert.Empty(t, updated.Password)
}

func TestDeleteUser_RemovesAccount(t *testing.T) {
	t.Parallel()
	s := New()
	token := loginDefaultAdmin(t, s)
	ctx := context.Background()

	created, err := s.CreateUser(ctx, token, model.CreateUserInput{
		UserType:     model.UserTypeTeamLeader,
		Email:        "lead@adhyan.local",
		MobileNumber: "9333333333",
		Password:     "secret12",
		FirstName:    "Ravi",
		District:     "Kochi",
	}, nil)
	assert.NoError(t, err)

	assert.NoError(t, s.DeleteUser(ctx, token, created.ID))
	_, err = s.GetUser(ctx, token, created.ID, false)
	assert.Error(t, err)
	assert.Error(t, s.DeleteUser(ctx, token, created.ID))
}

func TestThumbnailLifecycle(t *testing.T) {
	t.Parallel()
	s := New()
	token := loginDefaultAdmin(t, s)
	ctx := context.Background()

	created, err := s.CreateThumbnail(ctx, token, model.ThumbnailInput{Title: "Festival offer"},
		&apiclient.FileUpload{FieldName: "image", FileName: "offer.png"})
	assert.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.NotEmpty(t, created.Image)

	_, err = s.CreateThumbnail(ctx, token, model.ThumbnailInput{Title: "No image"}, nil)
	assert.Error(t, err)

	order := 1
	updated, err := s.UpdateThumbnail(ctx, token, created.ID, model.ThumbnailInput{Title: "Festival offer v2", Order: &order}, nil)
	assert.NoError(t, err)
	assert.Equal(t, "Festival offer v2", updated.Title)
	assert.Equal(t, 1, updated.Order)
	assert.NotNil(t, updated.UpdatedAt)

	assert.NoError(t, s.DeleteThumbnail(ctx, token, created.ID))
	_, err = s.GetThumbnail(ctx, token, created.ID)
	assert.Error(t, err)
}

func TestListThumbnails_PaginationAndFilter(t *testing.T) {
	t.Parallel()
	s := New()
	token := loginDefaultAdmin(t, s)
	ctx := context.Background()

	page, err := s.ListThumbnails(ctx, token, model.ThumbnailListOptions{Page: 1, Limit: 2})
	assert.NoError(t, err)
	assert.LessOrEqual(t, len(page.Thumbnails), 2)
	assert.Equal(t, 1, page.Pagination.Page)
	assert.Positive(t, page.Pagination.Total)

	active := true
	filtered, err := s.ListThumbnails(ctx, token, model.ThumbnailListOptions{Page: 1, Limit: 50, IsActive: &active})
	assert.NoError(t, err)
	for _, th := range filtered.Thumbnails {
		assert.True(t, th.IsActive)
	}
}

func TestGetAnalytics_ScalesWithPeriod(t *testing.T) {
	t.Parallel()
	s := New()
	token := loginDefaultAdmin(t, s)
	ctx := context.Background()

	all, err := s.GetAnalytics(ctx, token, model.AnalyticsQuery{Period: model.AnalyticsPeriodAll})
	assert.NoError(t, err)
	today, err := s.GetAnalytics(ctx, token, model.AnalyticsQuery{Period: model.AnalyticsPeriodToday})
	assert.NoError(t, err)
	assert.NotEqual(t, string(all), string(today))
}

func TestSeededCatalog(t *testing.T) {
	t.Parallel()
	s := New()
	token := loginDefaultAdmin(t, s)
	ctx := context.Background()

	mains, _, err := s.ListMainCategories(ctx, token, nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, mains)

	subs, _, err := s.ListSubCategories(ctx, token, model.CategoryListOptions{})
	assert.NoError(t, err)
	assert.NotEmpty(t, subs)

	boards, _, err := s.ListBoards(ctx, token, nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, boards)
}

package httpx

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/adhyanguru/admin-go/internal/apiclient"
	"github.com/adhyanguru/admin-go/internal/domain/model"
	"github.com/adhyanguru/admin-go/internal/http/validation"
)

// accountKindAdmin is the form value selecting the admin creation endpoint.
// Every other accepted value is a model.UserType.
const accountKindAdmin = "admin"

// Users serves the account list page with local search.
func (h *UIHandlers) Users(w http.ResponseWriter, r *http.Request) {
	HandleList(ListHandlerOpts[model.User]{
		Handler: h,
		W:       w,
		R:       r,
		Fetcher: func(ctx context.Context, token string) ([]model.User, int, error) {
			return h.UserSvc.List(ctx, token)
		},
		SearchFields: func(u model.User) []string {
			return []string{u.FirstName, u.LastName, u.Email, u.MobileNumber, u.UserID, u.Role, u.District}
		},
		BasePath:     "/users",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Users", PageTitle: "Users", CurrentPage: PageUsers},
		ItemsKey:     "Users",
		ErrorMessage: "Unable to load users.",
	})
}

// UserView serves the account detail page. The password reveal is an
// explicit opt-in via the reveal query param; the default fetch never
// carries the credential.
func (h *UIHandlers) UserView(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}
	reveal := r.URL.Query().Get("reveal") == StrTrue

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Adhyan Guru - User", PageTitle: "User Details", CurrentPage: PageUserView},
		Fetch: func(ctx context.Context, data map[string]any) error {
			user, err := h.UserSvc.GetByID(ctx, SessionToken(ctx), id, reveal)
			if err != nil {
				return err
			}
			data["User"] = user
			data["Reveal"] = reveal
			return nil
		},
	})
}

// UserNew renders the account creation form.
func (h *UIHandlers) UserNew(w http.ResponseWriter, r *http.Request) {
	h.renderUserForm(w, r, map[string]any{
		"Mode": FormModeCreate,
	})
}

// userFormData bundles the parsed account fields with the optional
// profile picture upload.
type userFormData struct {
	Kind         string
	Email        string
	MobileNumber string
	Password     string
	FirstName    string
	LastName     string
	District     string
	Latitude     *float64
	Longitude    *float64
	Picture      *apiclient.FileUpload
}

func accountKindOptions() []string {
	return []string{
		accountKindAdmin,
		string(model.UserTypeCoordinator),
		string(model.UserTypeDistrictCoordinator),
		string(model.UserTypeTeamLeader),
		string(model.UserTypeFieldEmployee),
	}
}

func parseOptionalFloat(raw string, field string, errs map[string]string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errs[field] = "Must be a number."
		return nil
	}
	return &f
}

// parseUserForm parses and validates the multipart account creation form.
func parseUserForm(r *http.Request) (userFormData, map[string]string) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return userFormData{}, map[string]string{"_": "Invalid form submission."}
	}

	data := userFormData{
		Kind:         strings.ToLower(strings.TrimSpace(r.FormValue("accountKind"))),
		Email:        strings.TrimSpace(r.FormValue("email")),
		MobileNumber: strings.TrimSpace(r.FormValue("mobileNumber")),
		Password:     r.FormValue("password"),
		FirstName:    strings.TrimSpace(r.FormValue("firstName")),
		LastName:     strings.TrimSpace(r.FormValue("lastName")),
		District:     strings.TrimSpace(r.FormValue("district")),
	}

	errs := validation.New().
		Validate("accountKind", data.Kind, validation.OneOf("Account type", accountKindOptions())).
		Validate("email", data.Email, validation.Required("Email", 255), validation.Email("Email")).
		Validate("mobileNumber", data.MobileNumber, validation.RequiredRange("Mobile number", 8, 15)).
		Validate("password", data.Password, validation.RequiredRange("Password", 6, 128)).
		Validate("firstName", data.FirstName, validation.Required("First name", 100)).
		Validate("lastName", data.LastName, validation.Optional("Last name", 100)).
		Validate("district", data.District, validation.Optional("District", 120)).
		Errors()

	data.Latitude = parseOptionalFloat(r.FormValue("latitude"), "latitude", errs)
	data.Longitude = parseOptionalFloat(r.FormValue("longitude"), "longitude", errs)

	if data.Kind != accountKindAdmin && data.Kind != "" && data.District == "" {
		errs["district"] = "District is required for this account type."
	}

	upload, msg := parseUpload(r, "profilePicture", validation.KindImage)
	if msg != "" {
		errs["profilePicture"] = msg
	}
	data.Picture = upload

	return data, errs
}

// UserCreate handles POST to create an account. Admin accounts go through
// the dedicated admin endpoint; everything else is a typed platform user.
func (h *UIHandlers) UserCreate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[userFormData]{
		W:      w,
		R:      r,
		Mode:   FormModeCreate,
		Parser: parseUserForm,
		Create: func(ctx context.Context, token string, data userFormData) error {
			if data.Kind == accountKindAdmin {
				_, err := h.UserSvc.CreateAdmin(ctx, token, model.CreateAdminInput{
					Email:        data.Email,
					MobileNumber: data.MobileNumber,
					Password:     data.Password,
					FirstName:    data.FirstName,
					LastName:     data.LastName,
					Latitude:     data.Latitude,
					Longitude:    data.Longitude,
				}, data.Picture)
				return err
			}
			_, err := h.UserSvc.CreateUser(ctx, token, model.CreateUserInput{
				UserType:     model.UserType(data.Kind),
				Email:        data.Email,
				MobileNumber: data.MobileNumber,
				Password:     data.Password,
				FirstName:    data.FirstName,
				LastName:     data.LastName,
				District:     data.District,
				Latitude:     data.Latitude,
				Longitude:    data.Longitude,
			}, data.Picture)
			return err
		},
		Renderer:     h.renderUserForm,
		SuccessURL:   "/users",
		SuccessToast: "Account created.",
		PageMeta:     PageMeta{Title: "Adhyan Guru - New User", PageTitle: "New User", CurrentPage: PageUserForm},
	})
}

// userEditFormData carries the editable account fields with the optional
// replacement profile picture.
type userEditFormData struct {
	Input   model.UpdateUserInput
	Picture *apiclient.FileUpload
}

// parseUserEditForm parses and validates the multipart account edit form.
func parseUserEditForm(r *http.Request) (userEditFormData, map[string]string) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return userEditFormData{}, map[string]string{"_": "Invalid form submission."}
	}

	input := model.UpdateUserInput{
		FirstName:    strings.TrimSpace(r.FormValue("firstName")),
		LastName:     strings.TrimSpace(r.FormValue("lastName")),
		MobileNumber: strings.TrimSpace(r.FormValue("mobileNumber")),
		District:     strings.TrimSpace(r.FormValue("district")),
		IsActive:     checkboxValue(r, "isActive"),
	}

	errs := validation.New().
		Validate("firstName", input.FirstName, validation.Required("First name", 100)).
		Validate("lastName", input.LastName, validation.Optional("Last name", 100)).
		Validate("mobileNumber", input.MobileNumber, validation.RequiredRange("Mobile number", 8, 15)).
		Validate("district", input.District, validation.Optional("District", 120)).
		Errors()

	upload, msg := parseUpload(r, "profilePicture", validation.KindImage)
	if msg != "" {
		errs["profilePicture"] = msg
	}

	return userEditFormData{Input: input, Picture: upload}, errs
}

// UserUpdate handles POST to save the editable account fields.
func (h *UIHandlers) UserUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	HandleForm(FormHandlerOpts[userEditFormData]{
		W:      w,
		R:      r,
		Mode:   FormModeEdit,
		Parser: parseUserEditForm,
		Update: func(ctx context.Context, token, id string, data userEditFormData) error {
			_, err := h.UserSvc.Update(ctx, token, id, data.Input, data.Picture)
			return err
		},
		Renderer:     h.renderUserEditForm,
		ExtraData:    map[string]any{"UserID": id},
		SuccessURL:   "/users/" + id,
		SuccessToast: "Account updated.",
		PageMeta:     PageMeta{Title: "Adhyan Guru - User", PageTitle: "User Details", CurrentPage: PageUserView},
	})
}

func (h *UIHandlers) renderUserEditForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{R: r, Data: data, DefaultMode: FormModeEdit})
	h.renderFragment(w, r, fragmentRenderOptions{Template: "user-edit-form-fragment", Data: data})
}

// UserDelete handles POST to remove an account.
func (h *UIHandlers) UserDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Delete:       h.UserSvc.Delete,
		RedirectPath: "/users",
		SuccessToast: "Account deleted.",
		ErrorMessage: "Unable to delete account.",
	})
}

// renderUserForm renders the account form page with common framing data.
func (h *UIHandlers) renderUserForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{
		R:           r,
		Data:        data,
		DefaultMode: FormModeCreate,
		MetaForMode: func(FormMode) PageMeta {
			return PageMeta{Title: "Adhyan Guru - New User", PageTitle: "New User", CurrentPage: PageUserForm}
		},
	})
	data["AccountKinds"] = accountKindOptions()
	h.renderDashboardPage(w, r, data)
}

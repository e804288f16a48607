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

// Thumbnails serves the banner list page. Unlike the other entities this
// endpoint paginates upstream, so paging is passed through instead of
// applied locally.
func (h *UIHandlers) Thumbnails(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pageNum, pageSize := getPageParams(q)
	opts := model.ThumbnailListOptions{
		Page:      pageNum,
		Limit:     pageSize,
		IsActive:  ParseBoolFilter(q, "active"),
		SortBy:    "order",
		SortOrder: SortDirAsc,
	}
	if sortBy, dir := ParseSortParam(q, "sort", "dir"); sortBy != "" {
		opts.SortBy = sortBy
		if dir != "" {
			opts.SortOrder = dir
		}
	}

	EchoListSeq(w, r)

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Adhyan Guru - Thumbnails", PageTitle: "Thumbnails", CurrentPage: PageThumbnails},
		Fetch: func(ctx context.Context, data map[string]any) error {
			page, err := h.ThumbnailSvc.List(ctx, SessionToken(ctx), opts)
			if err != nil {
				return err
			}

			data["Thumbnails"] = page.Thumbnails
			data["Page"] = page.Pagination.Page
			data["PageSize"] = page.Pagination.Limit
			data["TotalCount"] = page.Pagination.Total
			data["HasPrev"] = page.Pagination.Page > 1
			data["HasNext"] = page.Pagination.Page < page.Pagination.Pages
			if page.Pagination.Page > 1 {
				data["PrevURL"] = buildPageURL("/thumbnails", q, pageOpts{Page: page.Pagination.Page - 1, PageSize: pageSize})
			}
			if page.Pagination.Page < page.Pagination.Pages {
				data["NextURL"] = buildPageURL("/thumbnails", q, pageOpts{Page: page.Pagination.Page + 1, PageSize: pageSize})
			}
			return nil
		},
	})
}

// thumbnailFormData bundles the parsed banner fields with the image upload.
type thumbnailFormData struct {
	Input model.ThumbnailInput
	Image *apiclient.FileUpload
}

func parseThumbnailForm(r *http.Request) (thumbnailFormData, map[string]string) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return thumbnailFormData{}, map[string]string{"_": "Invalid form submission."}
	}

	input := model.ThumbnailInput{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		IsActive:    checkboxValue(r, "isActive"),
	}

	errs := validation.New().
		Validate("title", input.Title, validation.Required("Title", 200)).
		Validate("description", input.Description, validation.Optional("Description", 1000)).
		Errors()

	if raw := strings.TrimSpace(r.FormValue("order")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			errs["order"] = "Order must be a non-negative number."
		} else {
			input.Order = &n
		}
	}

	image, msg := parseUpload(r, "image", validation.KindImage)
	if msg != "" {
		errs["image"] = msg
	}

	return thumbnailFormData{Input: input, Image: image}, errs
}

// ThumbnailCreate handles POST to create a banner. The image is mandatory
// on create; the service enforces it as well.
func (h *UIHandlers) ThumbnailCreate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[thumbnailFormData]{
		W:    w,
		R:    r,
		Mode: FormModeCreate,
		Parser: func(r *http.Request) (thumbnailFormData, map[string]string) {
			data, errs := parseThumbnailForm(r)
			if data.Image == nil {
				if _, taken := errs["image"]; !taken {
					errs["image"] = "An image is required."
				}
			}
			return data, errs
		},
		Create: func(ctx context.Context, token string, data thumbnailFormData) error {
			_, err := h.ThumbnailSvc.Create(ctx, token, data.Input, data.Image)
			return err
		},
		Renderer:     h.renderThumbnailForm,
		SuccessURL:   "/thumbnails",
		SuccessToast: "Thumbnail created.",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Thumbnails", PageTitle: "Thumbnails", CurrentPage: PageThumbnails},
	})
}

// ThumbnailUpdate handles POST to update a banner.
func (h *UIHandlers) ThumbnailUpdate(w http.ResponseWriter, r *http.Request) {
	HandleForm(FormHandlerOpts[thumbnailFormData]{
		W:      w,
		R:      r,
		Mode:   FormModeEdit,
		Parser: parseThumbnailForm,
		Update: func(ctx context.Context, token, id string, data thumbnailFormData) error {
			_, err := h.ThumbnailSvc.Update(ctx, token, id, data.Input, data.Image)
			return err
		},
		Renderer:     h.renderThumbnailForm,
		ExtraData:    map[string]any{"ThumbnailID": r.PathValue("id")},
		SuccessURL:   "/thumbnails",
		SuccessToast: "Thumbnail updated.",
		PageMeta:     PageMeta{Title: "Adhyan Guru - Thumbnails", PageTitle: "Thumbnails", CurrentPage: PageThumbnails},
	})
}

// ThumbnailDelete handles POST to delete a banner.
func (h *UIHandlers) ThumbnailDelete(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteHandlerOpts{
		Delete:       h.ThumbnailSvc.Delete,
		RedirectPath: "/thumbnails",
		SuccessToast: "Thumbnail deleted.",
		ErrorMessage: "Unable to delete thumbnail.",
	})
}

func (h *UIHandlers) renderThumbnailForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{R: r, Data: data, DefaultMode: FormModeCreate})
	h.renderFragment(w, r, fragmentRenderOptions{Template: "thumbnail-form-fragment", Data: data})
}

package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/adhyanguru/admin-go/internal/apiclient"
)

// ListFetcher fetches the full collection for a list page from the platform
// API along with the server-reported total count. Upstream list endpoints
// are not paginated, so paging and searching happen locally on the result.
type ListFetcher[T any] func(ctx context.Context, token string) ([]T, int, error)

// DataEnricher adds custom data to the template after fetching items.
// This allows domain-specific data enrichment (e.g., parent entity lookups).
type DataEnricher[T any] func(builder *TemplateDataBuilder, items []T)

// ListHandlerOpts contains all options needed for the generic list handler.
type ListHandlerOpts[T any] struct {
	// Handler is the UIHandlers instance for rendering (required)
	Handler *UIHandlers
	// W is the HTTP response writer (required)
	W http.ResponseWriter
	// R is the HTTP request (required)
	R *http.Request
	// Fetcher loads the collection from the platform API (required).
	// Query-string filters should be bound into the closure by the caller.
	Fetcher ListFetcher[T]
	// SearchFields returns the strings matched by the local `q` search.
	// When nil the page has no search box.
	SearchFields func(T) []string
	// EnrichData is an optional function to add custom data to the template after fetching
	EnrichData DataEnricher[T]
	// BasePath is the base URL path for pagination links (e.g., "/users", "/subjects")
	BasePath string
	// PageMeta contains page metadata for rendering
	PageMeta PageMeta
	// ItemsKey is the template data key for the items (e.g., "Users", "Subjects")
	ItemsKey string
	// ErrorMessage is the fallback message to display when data fetching fails
	ErrorMessage string
}

// HandleList is the generic list view handler shared by every entity page.
// It fetches the collection, applies the local search term to the loaded
// items, pages the result, and renders. The client's request sequence
// number is echoed back so stale fragment swaps can be dropped.
func HandleList[T any](opts ListHandlerOpts[T]) {
	if !validateListHandlerDeps(opts) {
		return
	}

	page, pageSize := getPageParams(opts.R.URL.Query())
	query := SearchQuery(opts.R.URL.Query())

	EchoListSeq(opts.W, opts.R)

	items, total, err := opts.Fetcher(opts.R.Context(), SessionToken(opts.R.Context()))
	if err != nil {
		if errors.Is(err, apiclient.ErrUnauthorized) {
			opts.Handler.forceLogout(opts.W, opts.R)
			return
		}
		opts.renderListError(page, pageSize, apiclient.UserMessage(err, opts.ErrorMessage))
		return
	}

	if opts.SearchFields != nil && query != "" {
		items = FilterLocal(items, query, opts.SearchFields)
		total = len(items)
	}

	renderListSuccess(listRenderCtx[T]{
		Opts:     opts,
		Page:     page,
		PageSize: pageSize,
		Items:    items,
		Total:    total,
		Query:    query,
	})
}

// listRenderCtx consolidates parameters for rendering list success.
type listRenderCtx[T any] struct {
	Opts     ListHandlerOpts[T]
	Page     int
	PageSize int
	Items    []T
	Total    int
	Query    string
}

// validateListHandlerDeps checks required dependencies and returns false if any are nil.
func validateListHandlerDeps[T any](opts ListHandlerOpts[T]) bool {
	if opts.W == nil || opts.R == nil || opts.Handler == nil || opts.Fetcher == nil {
		if opts.W != nil {
			http.Error(opts.W, "Internal configuration error", http.StatusInternalServerError)
		}
		return false
	}
	return true
}

// renderListError renders an error page with pagination metadata.
func (lh *ListHandlerOpts[T]) renderListError(page, pageSize int, errMsg string) {
	builder := NewTemplateData(lh.R, lh.PageMeta).
		WithPagination(PaginationData{Page: page, PageSize: pageSize, BasePath: lh.BasePath}).
		WithSearch(SearchQuery(lh.R.URL.Query())).
		WithError(errMsg)
	lh.Handler.renderDashboardPage(lh.W, lh.R, builder.Build())
}

// renderListSuccess slices the current page out of the filtered collection
// and renders the list view with pagination metadata.
func renderListSuccess[T any](ctx listRenderCtx[T]) {
	offset := (ctx.Page - 1) * ctx.PageSize
	if offset > len(ctx.Items) {
		offset = len(ctx.Items)
	}
	end := offset + ctx.PageSize
	if end > len(ctx.Items) {
		end = len(ctx.Items)
	}
	pageItems := ctx.Items[offset:end]

	var start, stop int
	if len(pageItems) > 0 {
		start = offset + 1
		stop = offset + len(pageItems)
	}

	builder := NewTemplateData(ctx.Opts.R, ctx.Opts.PageMeta).
		WithPagination(PaginationData{
			Page:       ctx.Page,
			PageSize:   ctx.PageSize,
			HasPrev:    ctx.Page > 1,
			HasNext:    end < len(ctx.Items),
			StartIndex: start,
			EndIndex:   stop,
			TotalCount: ctx.Total,
			BasePath:   ctx.Opts.BasePath,
		}).
		WithSearch(ctx.Query).
		With(ctx.Opts.ItemsKey, pageItems)

	// Allow domain-specific data enrichment
	if ctx.Opts.EnrichData != nil {
		ctx.Opts.EnrichData(builder, pageItems)
	}

	ctx.Opts.Handler.renderDashboardPage(ctx.Opts.W, ctx.Opts.R, builder.Build())
}

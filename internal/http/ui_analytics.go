package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// analyticsPeriodOptions lists the selectable reporting windows.
func analyticsPeriodOptions() []model.AnalyticsPeriod {
	return []model.AnalyticsPeriod{
		model.AnalyticsPeriodAll,
		model.AnalyticsPeriodToday,
		model.AnalyticsPeriodWeek,
		model.AnalyticsPeriodMonth,
		model.AnalyticsPeriodYear,
	}
}

// Analytics serves the analytics report page. Metric values are extracted
// from the raw upstream payload by expression, so new metrics are a data
// change rather than a code change.
func (h *UIHandlers) Analytics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := model.AnalyticsQuery{
		Period:    model.AnalyticsPeriod(strings.TrimSpace(q.Get("period"))),
		StartDate: strings.TrimSpace(q.Get("startDate")),
		EndDate:   strings.TrimSpace(q.Get("endDate")),
	}
	if !query.Period.Valid() {
		query.Period = model.AnalyticsPeriodAll
	}

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Adhyan Guru - Analytics", PageTitle: "Analytics", CurrentPage: PageAnalytics},
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Period"] = string(query.Period)
			data["StartDate"] = query.StartDate
			data["EndDate"] = query.EndDate
			data["PeriodOptions"] = analyticsPeriodOptions()

			metrics, err := h.AnalyticsSvc.Report(ctx, SessionToken(ctx), query)
			if err != nil {
				return err
			}
			data["Metrics"] = metrics
			return nil
		},
	})
}

package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// GetAnalytics fetches the financial analytics report for the selected
// window. The payload shape varies by deployment, so it is returned raw
// for JMESPath extraction by the analytics service.
func (c *Client) GetAnalytics(ctx context.Context, token string, query model.AnalyticsQuery) (json.RawMessage, error) {
	q := url.Values{}
	if query.Period != "" {
		q.Set("period", string(query.Period))
	}
	if query.StartDate != "" {
		q.Set("startDate", query.StartDate)
	}
	if query.EndDate != "" {
		q.Set("endDate", query.EndDate)
	}

	raw, _, err := doJSON[json.RawMessage](ctx, c, call{
		method:   http.MethodGet,
		path:     withQuery("/analytics", q),
		token:    token,
		endpoint: "analytics_get",
		fallback: "Failed to fetch analytics. Please try again.",
	}, nil)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

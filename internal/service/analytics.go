package service

import (
	"context"
	"encoding/json"
	"fmt"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/adhyanguru/admin-go/internal/domain/model"
)

// AnalyticsAPI is the slice of the platform API the analytics service needs.
type AnalyticsAPI interface {
	GetAnalytics(ctx context.Context, token string, query model.AnalyticsQuery) (json.RawMessage, error)
}

// JMESPathEvaluator evaluates a JMESPath expression against decoded JSON.
type JMESPathEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements JMESPathEvaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Validate(expr string) error {
	if expr == "" {
		return fmt.Errorf("expression is empty")
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// defaultAnalyticsMetrics are the values surfaced on the analytics page,
// extracted from the raw report payload by JMESPath.
func defaultAnalyticsMetrics() []model.AnalyticsMetric {
	return []model.AnalyticsMetric{
		{Key: "totalRevenue", Label: "Total Revenue", Expression: "revenue.total"},
		{Key: "totalOrders", Label: "Total Orders", Expression: "orders.total"},
		{Key: "activeSubscriptions", Label: "Active Subscriptions", Expression: "subscriptions.active"},
		{Key: "newUsers", Label: "New Users", Expression: "users.new"},
		{Key: "totalUsers", Label: "Total Users", Expression: "users.total"},
		{Key: "topPlans", Label: "Top Plans", Expression: "plans.top[:5]"},
	}
}

// AnalyticsServiceOptions groups dependencies for AnalyticsService.
type AnalyticsServiceOptions struct {
	API AnalyticsAPI

	// Evaluator overrides the JMESPath evaluator, mainly for tests.
	Evaluator JMESPathEvaluator

	// Metrics overrides the extracted metric set.
	Metrics []model.AnalyticsMetric
}

// AnalyticsService fetches the raw analytics report and extracts the
// displayed metrics from it.
type AnalyticsService struct {
	api     AnalyticsAPI
	jems    JMESPathEvaluator
	metrics []model.AnalyticsMetric
}

// NewAnalyticsService constructs a new AnalyticsService.
func NewAnalyticsService(opts AnalyticsServiceOptions) *AnalyticsService {
	jems := opts.Evaluator
	if jems == nil {
		jems = jmespathLibEvaluator{}
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = defaultAnalyticsMetrics()
	}
	return &AnalyticsService{api: opts.API, jems: jems, metrics: metrics}
}

// Report fetches the analytics payload for the query window and resolves
// each configured metric. A metric whose path is absent resolves to nil
// and renders as a dash; a malformed expression is a hard error.
func (s *AnalyticsService) Report(ctx context.Context, token string, query model.AnalyticsQuery) ([]model.AnalyticsMetric, error) {
	if query.Period == "" {
		query.Period = model.AnalyticsPeriodAll
	}
	if !query.Period.Valid() {
		return nil, fmt.Errorf("unsupported analytics period %q", query.Period)
	}

	raw, err := s.api.GetAnalytics(ctx, token, query)
	if err != nil {
		return nil, err
	}

	var data any
	if len(raw) > 0 {
		if unmarshalErr := json.Unmarshal(raw, &data); unmarshalErr != nil {
			return nil, fmt.Errorf("decode analytics payload: %w", unmarshalErr)
		}
	}

	out := make([]model.AnalyticsMetric, 0, len(s.metrics))
	for _, metric := range s.metrics {
		value, evalErr := s.jems.Evaluate(metric.Expression, data)
		if evalErr != nil {
			return nil, fmt.Errorf("evaluate metric %s: %w", metric.Key, evalErr)
		}
		metric.Value = value
		out = append(out, metric)
	}
	return out, nil
}

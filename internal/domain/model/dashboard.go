//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// DashboardCounts aggregates per-entity totals for the dashboard tiles.
// The API exposes only per-entity lists, so the counts are assembled from
// parallel list fetches.
type DashboardCounts struct {
	Users          int
	MainCategories int
	SubCategories  int
	Subjects       int
	Boards         int
	Courses        int
	Thumbnails     int
}

// AnalyticsPeriod restricts the analytics report to a date window.
type AnalyticsPeriod string

const (
	AnalyticsPeriodAll   AnalyticsPeriod = "all"
	AnalyticsPeriodToday AnalyticsPeriod = "today"
	AnalyticsPeriodWeek  AnalyticsPeriod = "week"
	AnalyticsPeriodMonth AnalyticsPeriod = "month"
	AnalyticsPeriodYear  AnalyticsPeriod = "year"
)

// Valid reports whether the period is supported.
func (p AnalyticsPeriod) Valid() bool {
	switch p {
	case AnalyticsPeriodAll, AnalyticsPeriodToday, AnalyticsPeriodWeek, AnalyticsPeriodMonth, AnalyticsPeriodYear:
		return true
	default:
		return false
	}
}

// AnalyticsQuery selects the reporting window for the analytics endpoint.
type AnalyticsQuery struct {
	Period    AnalyticsPeriod
	StartDate string // YYYY-MM-DD, optional
	EndDate   string // YYYY-MM-DD, optional
}

// AnalyticsMetric is one value extracted from the raw analytics payload
// by a JMESPath expression.
type AnalyticsMetric struct {
	Key        string
	Label      string
	Expression string
	Value      any
}

package dashboard

import "context"

// AttendanceService aggregates the daily roster against employee master
// data. All methods are read-only over an in-memory snapshot of the
// store.
type AttendanceService interface {
	// PresenceSeries counts present roster rows per day within
	// [start, end] inclusive ("YYYY-MM-DD"; empty bounds widen the
	// range). Days with no present rows are omitted.
	PresenceSeries(ctx context.Context, start, end string) ([]PresencePoint, error)

	// SituationBreakdown groups non-present rows of the latest roster
	// date by situation label, resolving names per grouping key.
	SituationBreakdown(ctx context.Context) (SituationBreakdownResponse, error)

	// GetDashboard assembles both attendance queries concurrently.
	GetDashboard(ctx context.Context, start, end string) (*AttendanceDashboardResponse, error)
}

// ProductivityService aggregates time entries per month bucket.
type ProductivityService interface {
	// Months lists the distinct "MM/YYYY" buckets, most recent first.
	Months(ctx context.Context) ([]string, error)

	// GetDashboard computes the per-bucket hour aggregates. month
	// selects the bucket ("MM/YYYY", empty means the most recent);
	// groupKey optionally restricts the equipment breakdown.
	GetDashboard(ctx context.Context, month, groupKey string) (*ProductivityResponse, error)
}

package attendance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/grupo-santin/obras-backend-go/internal/domain/dashboard"
	"github.com/grupo-santin/obras-backend-go/internal/domain/employee"
	"github.com/grupo-santin/obras-backend-go/internal/domain/roster"
	"github.com/grupo-santin/obras-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type attendanceServiceImpl struct {
	rosterRepo   roster.RosterRepository
	employeeRepo employee.EmployeeRepository
}

func NewAttendanceService(rosterRepo roster.RosterRepository, employeeRepo employee.EmployeeRepository) dashboard.AttendanceService {
	return &attendanceServiceImpl{
		rosterRepo:   rosterRepo,
		employeeRepo: employeeRepo,
	}
}

const dateLayout = "2006-01-02"

// parseBound parses an optional range bound; empty means unbounded.
func parseBound(s string, field string) (time.Time, bool, error) {
	if s == "" {
		return time.Time{}, false, nil
	}
	d, ok := validator.IsValidDate(s)
	if !ok {
		return time.Time{}, false, validator.ValidationErrors{{
			Field:   field,
			Message: "date must be in YYYY-MM-DD format",
		}}
	}
	return d, true, nil
}

// PresenceSeries implements dashboard.AttendanceService. Only rows with
// the present status code count; dates without present rows are omitted
// rather than zero-filled.
func (s *attendanceServiceImpl) PresenceSeries(ctx context.Context, start, end string) ([]dashboard.PresencePoint, error) {
	startDate, hasStart, err := parseBound(start, "start")
	if err != nil {
		return nil, err
	}
	endDate, hasEnd, err := parseBound(end, "end")
	if err != nil {
		return nil, err
	}

	snapshots, err := s.rosterRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster snapshots: %w", err)
	}

	counts := make(map[string]int)
	for _, snap := range snapshots {
		if snap.StatusCode != roster.StatusPresent {
			continue
		}
		if hasStart && snap.Date.Before(startDate) {
			continue
		}
		if hasEnd && snap.Date.After(endDate) {
			continue
		}
		counts[snap.Date.Format(dateLayout)]++
	}

	series := make([]dashboard.PresencePoint, 0, len(counts))
	for date, count := range counts {
		series = append(series, dashboard.PresencePoint{Date: date, Count: count})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })

	return series, nil
}

// SituationBreakdown implements dashboard.AttendanceService. The
// breakdown always covers the single maximum date across the full
// roster, not any requested range.
func (s *attendanceServiceImpl) SituationBreakdown(ctx context.Context) (dashboard.SituationBreakdownResponse, error) {
	snapshots, err := s.rosterRepo.List(ctx)
	if err != nil {
		return dashboard.SituationBreakdownResponse{}, fmt.Errorf("failed to list roster snapshots: %w", err)
	}
	if len(snapshots) == 0 {
		return dashboard.SituationBreakdownResponse{Situations: []dashboard.SituationGroup{}}, nil
	}

	var latest time.Time
	for _, snap := range snapshots {
		if snap.Date.After(latest) {
			latest = snap.Date
		}
	}

	groupKeys, err := s.groupingKeys(ctx)
	if err != nil {
		return dashboard.SituationBreakdownResponse{}, err
	}

	// situation -> grouping key -> names, preserving roster row order
	// within each group.
	type groupAcc struct {
		total  int
		groups map[string][]string
	}
	bySituation := make(map[string]*groupAcc)

	for _, snap := range snapshots {
		if !snap.Date.Equal(latest) || snap.StatusCode == roster.StatusPresent {
			continue
		}

		key, ok := groupKeys[snap.Matricula]
		if !ok {
			// No master-data match: the roster row's own function keeps
			// the person visible in the breakdown.
			key = snap.JobFunction
		}

		acc := bySituation[snap.SituationLabel]
		if acc == nil {
			acc = &groupAcc{groups: make(map[string][]string)}
			bySituation[snap.SituationLabel] = acc
		}
		acc.total++
		acc.groups[key] = append(acc.groups[key], snap.EmployeeName)
	}

	situations := make([]dashboard.SituationGroup, 0, len(bySituation))
	for label, acc := range bySituation {
		groups := make([]dashboard.GroupedNames, 0, len(acc.groups))
		for key, names := range acc.groups {
			groups = append(groups, dashboard.GroupedNames{GroupingKey: key, Names: names})
		}
		sort.Slice(groups, func(i, j int) bool { return groups[i].GroupingKey < groups[j].GroupingKey })

		situations = append(situations, dashboard.SituationGroup{
			Situation: label,
			Total:     acc.total,
			Groups:    groups,
		})
	}
	sort.Slice(situations, func(i, j int) bool {
		if situations[i].Total != situations[j].Total {
			return situations[i].Total > situations[j].Total
		}
		return situations[i].Situation < situations[j].Situation
	})

	return dashboard.SituationBreakdownResponse{
		Date:       latest.Format(dateLayout),
		Situations: situations,
	}, nil
}

// GetDashboard implements dashboard.AttendanceService, assembling both
// queries concurrently.
func (s *attendanceServiceImpl) GetDashboard(ctx context.Context, start, end string) (*dashboard.AttendanceDashboardResponse, error) {
	var (
		series    []dashboard.PresencePoint
		breakdown dashboard.SituationBreakdownResponse
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		series, err = s.PresenceSeries(gCtx, start, end)
		return err
	})

	g.Go(func() error {
		var err error
		breakdown, err = s.SituationBreakdown(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.AttendanceDashboardResponse{
		PresenceSeries:     series,
		SituationBreakdown: breakdown,
	}, nil
}

// groupingKeys maps each matricula to its chart grouping key.
func (s *attendanceServiceImpl) groupingKeys(ctx context.Context) (map[string]string, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	keys := make(map[string]string, len(employees))
	for _, emp := range employees {
		keys[emp.Matricula] = emp.GroupingKey()
	}
	return keys, nil
}

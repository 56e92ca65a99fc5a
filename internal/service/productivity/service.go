package productivity

import (
	"context"
	"fmt"
	"sort"

	"github.com/grupo-santin/obras-backend-go/internal/domain/dashboard"
	"github.com/grupo-santin/obras-backend-go/internal/domain/employee"
	"github.com/grupo-santin/obras-backend-go/internal/domain/timeentry"
	"github.com/grupo-santin/obras-backend-go/internal/pkg/timesheet"
)

type productivityServiceImpl struct {
	timeEntryRepo timeentry.TimeEntryRepository
	employeeRepo  employee.EmployeeRepository
}

func NewProductivityService(timeEntryRepo timeentry.TimeEntryRepository, employeeRepo employee.EmployeeRepository) dashboard.ProductivityService {
	return &productivityServiceImpl{
		timeEntryRepo: timeEntryRepo,
		employeeRepo:  employeeRepo,
	}
}

// monthLayout matches the selectable bucket format, e.g. "02/2024".
const monthLayout = "01/2006"

const dateLayout = "2006-01-02"

// Months implements dashboard.ProductivityService, most recent bucket
// first.
func (s *productivityServiceImpl) Months(ctx context.Context) ([]string, error) {
	entries, err := s.timeEntryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	return monthBuckets(entries), nil
}

// GetDashboard implements dashboard.ProductivityService. An empty month
// selects the most recent bucket; groupKey optionally restricts the
// equipment breakdown and is a pure filter over the same bucket.
func (s *productivityServiceImpl) GetDashboard(ctx context.Context, month, groupKey string) (*dashboard.ProductivityResponse, error) {
	entries, err := s.timeEntryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	buckets := monthBuckets(entries)
	if month == "" && len(buckets) > 0 {
		month = buckets[0]
	}

	filtered := make([]timeentry.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if e.EntryDate.Format(monthLayout) == month {
			filtered = append(filtered, e)
		}
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].EntryDate.Before(filtered[j].EntryDate) })

	groupKeys, err := s.groupingKeys(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dashboard.ProductivityResponse{
		Month:       month,
		HoursPerDay: hoursPerDay(filtered),
		HoursGroup:  hoursPerGroup(filtered, groupKeys),
		HoursEquip:  hoursPerEquipment(filtered, groupKeys, groupKey),
		GroupFilter: groupKey,
	}
	return resp, nil
}

func hoursPerDay(entries []timeentry.TimeEntry) []dashboard.DailyHours {
	totals := make(map[string]float64)
	for _, e := range entries {
		totals[e.EntryDate.Format(dateLayout)] += timesheet.ToDecimalHours(e.TotalDuration)
	}

	days := make([]dashboard.DailyHours, 0, len(totals))
	for date, hours := range totals {
		days = append(days, dashboard.DailyHours{Date: date, Hours: hours})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// hoursPerGroup sums hours by grouping key. Entries whose matricula has
// no master-data match are excluded from this view; the per-equipment
// view still covers them when unfiltered.
func hoursPerGroup(entries []timeentry.TimeEntry, groupKeys map[string]string) []dashboard.GroupHours {
	totals := make(map[string]float64)
	for _, e := range entries {
		key, ok := groupKeys[e.Matricula]
		if !ok {
			continue
		}
		totals[key] += timesheet.ToDecimalHours(e.TotalDuration)
	}

	groups := make([]dashboard.GroupHours, 0, len(totals))
	for key, hours := range totals {
		groups = append(groups, dashboard.GroupHours{GroupingKey: key, Hours: hours})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].GroupingKey < groups[j].GroupingKey })
	return groups
}

func hoursPerEquipment(entries []timeentry.TimeEntry, groupKeys map[string]string, groupFilter string) []dashboard.EquipmentHours {
	totals := make(map[string]float64)
	for _, e := range entries {
		if groupFilter != "" && groupKeys[e.Matricula] != groupFilter {
			continue
		}
		totals[e.EquipmentTag] += timesheet.ToDecimalHours(e.TotalDuration)
	}

	equip := make([]dashboard.EquipmentHours, 0, len(totals))
	for tag, hours := range totals {
		equip = append(equip, dashboard.EquipmentHours{EquipmentTag: tag, Hours: hours})
	}
	sort.Slice(equip, func(i, j int) bool { return equip[i].EquipmentTag < equip[j].EquipmentTag })
	return equip
}

// monthBuckets returns the distinct MM/YYYY buckets, most recent first.
func monthBuckets(entries []timeentry.TimeEntry) []string {
	type bucket struct {
		label string
		year  int
		month int
	}

	seen := make(map[string]bool)
	var buckets []bucket
	for _, e := range entries {
		label := e.EntryDate.Format(monthLayout)
		if seen[label] {
			continue
		}
		seen[label] = true
		buckets = append(buckets, bucket{
			label: label,
			year:  e.EntryDate.Year(),
			month: int(e.EntryDate.Month()),
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].year != buckets[j].year {
			return buckets[i].year > buckets[j].year
		}
		return buckets[i].month > buckets[j].month
	})

	labels := make([]string, 0, len(buckets))
	for _, b := range buckets {
		labels = append(labels, b.label)
	}
	return labels
}

func (s *productivityServiceImpl) groupingKeys(ctx context.Context) (map[string]string, error) {
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

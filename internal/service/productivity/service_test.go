package productivity

import (
	"context"
	"testing"
	"time"

	"github.com/grupo-santin/obras-backend-go/internal/domain/dashboard"
	"github.com/grupo-santin/obras-backend-go/internal/domain/employee"
	"github.com/grupo-santin/obras-backend-go/internal/domain/timeentry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimeEntryRepo struct {
	entries []timeentry.TimeEntry
}

func (f *fakeTimeEntryRepo) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	entry.ID = int64(len(f.entries) + 1)
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeTimeEntryRepo) List(ctx context.Context) ([]timeentry.TimeEntry, error) {
	out := make([]timeentry.TimeEntry, len(f.entries))
	for i, e := range f.entries {
		e.ID = 0
		out[i] = e
	}
	return out, nil
}

func (f *fakeTimeEntryRepo) ListWithID(ctx context.Context) ([]timeentry.TimeEntry, error) {
	return append([]timeentry.TimeEntry(nil), f.entries...), nil
}

func (f *fakeTimeEntryRepo) DeleteByID(ctx context.Context, id int64) error {
	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByMatricula(ctx context.Context, matricula string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Matricula == matricula {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return append([]employee.Employee(nil), f.employees...), nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) Delete(ctx context.Context, matricula string) error { return nil }

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func entry(matricula, equip, total string, date string) timeentry.TimeEntry {
	return timeentry.TimeEntry{
		Matricula:     matricula,
		EquipmentTag:  equip,
		TotalDuration: total,
		EntryDate:     day(date),
	}
}

func seededRepos() (*fakeTimeEntryRepo, *fakeEmployeeRepo) {
	timeEntryRepo := &fakeTimeEntryRepo{entries: []timeentry.TimeEntry{
		entry("100", "TQ-01", "08:30", "2024-02-01"),
		entry("101", "TQ-02", "08:00", "2024-02-02"),
		entry("100", "TQ-01", "09:00", "2024-01-15"),
		entry("999", "TQ-03", "04:00", "2024-02-02"),
	}}
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{Matricula: "100", JobFunction: "Montador", Abbreviation: "MONT"},
		{Matricula: "101", JobFunction: "Soldador"},
	}}
	return timeEntryRepo, employeeRepo
}

func TestMonths(t *testing.T) {
	timeEntryRepo, employeeRepo := seededRepos()
	svc := NewProductivityService(timeEntryRepo, employeeRepo)

	months, err := svc.Months(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"02/2024", "01/2024"}, months, "most recent bucket first")
}

func TestGetDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit month bucket", func(t *testing.T) {
		timeEntryRepo, employeeRepo := seededRepos()
		svc := NewProductivityService(timeEntryRepo, employeeRepo)

		result, err := svc.GetDashboard(ctx, "02/2024", "")
		require.NoError(t, err)

		assert.Equal(t, "02/2024", result.Month)
		assert.Equal(t, []dashboard.DailyHours{
			{Date: "2024-02-01", Hours: 8.5},
			{Date: "2024-02-02", Hours: 12.0},
		}, result.HoursPerDay)

		// Matricula 999 has no master-data match and is excluded from
		// the group view.
		assert.Equal(t, []dashboard.GroupHours{
			{GroupingKey: "MONT", Hours: 8.5},
			{GroupingKey: "SOLDADOR", Hours: 8.0},
		}, result.HoursGroup)

		// The unfiltered equipment view still covers it.
		assert.Equal(t, []dashboard.EquipmentHours{
			{EquipmentTag: "TQ-01", Hours: 8.5},
			{EquipmentTag: "TQ-02", Hours: 8.0},
			{EquipmentTag: "TQ-03", Hours: 4.0},
		}, result.HoursEquip)
	})

	t.Run("empty month selects the most recent bucket", func(t *testing.T) {
		timeEntryRepo, employeeRepo := seededRepos()
		svc := NewProductivityService(timeEntryRepo, employeeRepo)

		result, err := svc.GetDashboard(ctx, "", "")
		require.NoError(t, err)
		assert.Equal(t, "02/2024", result.Month)
	})

	t.Run("group filter narrows the equipment view only", func(t *testing.T) {
		timeEntryRepo, employeeRepo := seededRepos()
		svc := NewProductivityService(timeEntryRepo, employeeRepo)

		result, err := svc.GetDashboard(ctx, "02/2024", "MONT")
		require.NoError(t, err)

		assert.Equal(t, "MONT", result.GroupFilter)
		assert.Equal(t, []dashboard.EquipmentHours{
			{EquipmentTag: "TQ-01", Hours: 8.5},
		}, result.HoursEquip)
		// Day and group views ignore the filter.
		assert.Len(t, result.HoursPerDay, 2)
		assert.Len(t, result.HoursGroup, 2)
	})

	t.Run("no entries yields empty aggregates", func(t *testing.T) {
		svc := NewProductivityService(&fakeTimeEntryRepo{}, &fakeEmployeeRepo{})

		result, err := svc.GetDashboard(ctx, "", "")
		require.NoError(t, err)
		assert.Empty(t, result.Month)
		assert.Empty(t, result.HoursPerDay)
		assert.Empty(t, result.HoursGroup)
		assert.Empty(t, result.HoursEquip)
	})
}

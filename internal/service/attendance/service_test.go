package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/grupo-santin/obras-backend-go/internal/domain/dashboard"
	"github.com/grupo-santin/obras-backend-go/internal/domain/employee"
	"github.com/grupo-santin/obras-backend-go/internal/domain/roster"
	"github.com/grupo-santin/obras-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRosterRepo struct {
	rows []roster.Snapshot
}

func (f *fakeRosterRepo) List(ctx context.Context) ([]roster.Snapshot, error) {
	return append([]roster.Snapshot(nil), f.rows...), nil
}

func (f *fakeRosterRepo) BulkInsert(ctx context.Context, rows []roster.Snapshot) error {
	f.rows = append(f.rows, rows...)
	return nil
}

func (f *fakeRosterRepo) DeleteByDate(ctx context.Context, date time.Time) error {
	kept := f.rows[:0]
	for _, row := range f.rows {
		if !row.Date.Equal(date) {
			kept = append(kept, row)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakeRosterRepo) ReplaceForDates(ctx context.Context, dates []time.Time, rows []roster.Snapshot) error {
	for _, d := range dates {
		_ = f.DeleteByDate(ctx, d)
	}
	return f.BulkInsert(ctx, rows)
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

func TestPresenceSeries(t *testing.T) {
	ctx := context.Background()

	rosterRepo := &fakeRosterRepo{rows: []roster.Snapshot{
		{Date: day("2024-03-01"), Matricula: "100", StatusCode: roster.StatusPresent},
		{Date: day("2024-03-01"), Matricula: "101", StatusCode: roster.StatusPresent},
		{Date: day("2024-03-01"), Matricula: "102", StatusCode: 2, SituationLabel: "Atestado"},
		{Date: day("2024-03-02"), Matricula: "102", StatusCode: 3, SituationLabel: "Falta"},
		{Date: day("2024-03-03"), Matricula: "100", StatusCode: roster.StatusPresent},
	}}
	svc := NewAttendanceService(rosterRepo, &fakeEmployeeRepo{})

	t.Run("counts present rows per day", func(t *testing.T) {
		series, err := svc.PresenceSeries(ctx, "", "")
		require.NoError(t, err)

		// 2024-03-02 has no present rows and is omitted, not zeroed.
		assert.Equal(t, []dashboard.PresencePoint{
			{Date: "2024-03-01", Count: 2},
			{Date: "2024-03-03", Count: 1},
		}, series)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		series, err := svc.PresenceSeries(ctx, "2024-03-03", "2024-03-03")
		require.NoError(t, err)
		assert.Equal(t, []dashboard.PresencePoint{{Date: "2024-03-03", Count: 1}}, series)
	})

	t.Run("malformed bound is rejected", func(t *testing.T) {
		_, err := svc.PresenceSeries(ctx, "03/01/2024", "")
		var errs validator.ValidationErrors
		assert.ErrorAs(t, err, &errs)
	})
}

func TestSituationBreakdown(t *testing.T) {
	ctx := context.Background()

	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{Matricula: "100", FullName: "Ana Souza", JobFunction: "Montador", Abbreviation: "mont"},
		{Matricula: "101", FullName: "Bia Costa", JobFunction: "Soldador"},
	}}

	rosterRepo := &fakeRosterRepo{rows: []roster.Snapshot{
		// Older date must be ignored entirely.
		{Date: day("2024-03-01"), Matricula: "100", EmployeeName: "Ana Souza", JobFunction: "Montador", StatusCode: 2, SituationLabel: "Atestado"},

		{Date: day("2024-03-02"), Matricula: "100", EmployeeName: "Ana Souza", JobFunction: "Montador", StatusCode: 2, SituationLabel: "Atestado"},
		{Date: day("2024-03-02"), Matricula: "101", EmployeeName: "Bia Costa", JobFunction: "Soldador", StatusCode: 2, SituationLabel: "Atestado"},
		{Date: day("2024-03-02"), Matricula: "999", EmployeeName: "Caio Dias", JobFunction: "Vigia", StatusCode: 3, SituationLabel: "Falta"},
		{Date: day("2024-03-02"), Matricula: "100", EmployeeName: "Ana Souza", JobFunction: "Montador", StatusCode: roster.StatusPresent},
	}}

	svc := NewAttendanceService(rosterRepo, employeeRepo)

	result, err := svc.SituationBreakdown(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-02", result.Date)

	require.Len(t, result.Situations, 2)

	// Largest situation first.
	atestado := result.Situations[0]
	assert.Equal(t, "Atestado", atestado.Situation)
	assert.Equal(t, 2, atestado.Total)
	// Ana groups by uppercased abbreviation, Bia has none and falls
	// back to her uppercased function.
	assert.Equal(t, []dashboard.GroupedNames{
		{GroupingKey: "MONT", Names: []string{"Ana Souza"}},
		{GroupingKey: "SOLDADOR", Names: []string{"Bia Costa"}},
	}, atestado.Groups)

	// Unmatched matricula keeps the roster row's own function.
	falta := result.Situations[1]
	assert.Equal(t, "Falta", falta.Situation)
	assert.Equal(t, []dashboard.GroupedNames{
		{GroupingKey: "Vigia", Names: []string{"Caio Dias"}},
	}, falta.Groups)
}

func TestSituationBreakdownEmptyStore(t *testing.T) {
	svc := NewAttendanceService(&fakeRosterRepo{}, &fakeEmployeeRepo{})

	result, err := svc.SituationBreakdown(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Date)
	assert.Empty(t, result.Situations)
}

func TestGetDashboard(t *testing.T) {
	rosterRepo := &fakeRosterRepo{rows: []roster.Snapshot{
		{Date: day("2024-03-01"), Matricula: "100", EmployeeName: "Ana Souza", JobFunction: "Montador", StatusCode: roster.StatusPresent},
		{Date: day("2024-03-01"), Matricula: "101", EmployeeName: "Bia Costa", JobFunction: "Soldador", StatusCode: 2, SituationLabel: "Atestado"},
	}}
	svc := NewAttendanceService(rosterRepo, &fakeEmployeeRepo{})

	result, err := svc.GetDashboard(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, []dashboard.PresencePoint{{Date: "2024-03-01", Count: 1}}, result.PresenceSeries)
	assert.Equal(t, "2024-03-01", result.SituationBreakdown.Date)
	require.Len(t, result.SituationBreakdown.Situations, 1)
	assert.Equal(t, "Atestado", result.SituationBreakdown.Situations[0].Situation)
}

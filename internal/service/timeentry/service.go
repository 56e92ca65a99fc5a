package timeentry

import (
	"context"
	"fmt"
	"time"

	"github.com/grupo-santin/obras-backend-go/internal/domain/employee"
	"github.com/grupo-santin/obras-backend-go/internal/domain/timeentry"
	"github.com/grupo-santin/obras-backend-go/internal/pkg/timesheet"
)

type TimeEntryService interface {
	// Create records one worked day. Employee name and function are
	// snapshotted from the employee record at submission time.
	Create(ctx context.Context, req timeentry.CreateTimeEntryRequest) (timeentry.TimeEntryResponse, error)

	// History lists entries with ids, optionally filtered to one date
	// ("YYYY-MM-DD", empty means all).
	History(ctx context.Context, date string) ([]timeentry.TimeEntryResponse, error)

	// Delete removes one entry by surrogate id; missing ids succeed.
	Delete(ctx context.Context, id int64) error
}

type timeEntryServiceImpl struct {
	timeEntryRepo timeentry.TimeEntryRepository
	employeeRepo  employee.EmployeeRepository
}

func NewTimeEntryService(timeEntryRepo timeentry.TimeEntryRepository, employeeRepo employee.EmployeeRepository) TimeEntryService {
	return &timeEntryServiceImpl{
		timeEntryRepo: timeEntryRepo,
		employeeRepo:  employeeRepo,
	}
}

// Create implements TimeEntryService. Malformed punches never fail the
// submission; the derived duration degrades to "00:00".
func (s *timeEntryServiceImpl) Create(ctx context.Context, req timeentry.CreateTimeEntryRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	emp, err := s.employeeRepo.GetByMatricula(ctx, req.Matricula)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entryDate, err := time.Parse("2006-01-02", req.EntryDate)
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("invalid entry date: %w", err)
	}

	entry := timeentry.TimeEntry{
		Matricula:     req.Matricula,
		EmployeeName:  emp.FullName,
		JobFunction:   emp.JobFunction,
		EquipmentTag:  req.EquipmentTag,
		Activity:      req.Activity,
		ClockStart:    req.ClockStart,
		LunchOut:      req.LunchOut,
		LunchIn:       req.LunchIn,
		ClockEnd:      req.ClockEnd,
		TotalDuration: timesheet.ComputeWorkedDuration(req.ClockStart, req.LunchOut, req.LunchIn, req.ClockEnd),
		EntryDate:     entryDate,
	}

	created, err := s.timeEntryRepo.Create(ctx, entry)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	return toResponse(created), nil
}

// History implements TimeEntryService.
func (s *timeEntryServiceImpl) History(ctx context.Context, date string) ([]timeentry.TimeEntryResponse, error) {
	entries, err := s.timeEntryRepo.ListWithID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for _, e := range entries {
		if date != "" && e.EntryDate.Format("2006-01-02") != date {
			continue
		}
		responses = append(responses, toResponse(e))
	}
	return responses, nil
}

// Delete implements TimeEntryService.
func (s *timeEntryServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.timeEntryRepo.DeleteByID(ctx, id)
}

func toResponse(e timeentry.TimeEntry) timeentry.TimeEntryResponse {
	return timeentry.TimeEntryResponse{
		ID:            e.ID,
		Matricula:     e.Matricula,
		EmployeeName:  e.EmployeeName,
		JobFunction:   e.JobFunction,
		EquipmentTag:  e.EquipmentTag,
		Activity:      e.Activity,
		ClockStart:    e.ClockStart,
		LunchOut:      e.LunchOut,
		LunchIn:       e.LunchIn,
		ClockEnd:      e.ClockEnd,
		TotalDuration: e.TotalDuration,
		EntryDate:     e.EntryDate.Format("2006-01-02"),
	}
}

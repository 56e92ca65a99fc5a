package employee

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/grupo-santin/obras-backend-go/internal/domain/employee"
)

type EmployeeService interface {
	Register(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	Get(ctx context.Context, matricula string) (employee.EmployeeResponse, error)
	List(ctx context.Context) ([]employee.EmployeeResponse, error)
	Update(ctx context.Context, req employee.UpdateEmployeeRequest) error
	Delete(ctx context.Context, matricula string) error
	HeadcountSummary(ctx context.Context) (employee.HeadcountSummaryResponse, error)
}

type employeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) EmployeeService {
	return &employeeServiceImpl{employeeRepo: employeeRepo}
}

// Register implements EmployeeService. A duplicate matricula surfaces as
// employee.ErrMatriculaExists with no partial write.
func (s *employeeServiceImpl) Register(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	entity := employee.Employee{
		Matricula:     req.Matricula,
		FullName:      req.FullName,
		JobFunction:   req.JobFunction,
		Abbreviation:  req.Abbreviation,
		AdmissionDate: parseAdmissionDate(req.AdmissionDate),
		LaborClass:    employee.LaborClass(req.LaborClass),
		Status:        employee.Status(req.Status),
	}

	created, err := s.employeeRepo.Create(ctx, entity)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(created), nil
}

// Get implements EmployeeService.
func (s *employeeServiceImpl) Get(ctx context.Context, matricula string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByMatricula(ctx, matricula)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// List implements EmployeeService.
func (s *employeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}
	return responses, nil
}

// Update implements EmployeeService as a full-record update.
func (s *employeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity := employee.Employee{
		Matricula:     req.Matricula,
		FullName:      req.FullName,
		JobFunction:   req.JobFunction,
		Abbreviation:  req.Abbreviation,
		AdmissionDate: parseAdmissionDate(req.AdmissionDate),
		LaborClass:    employee.LaborClass(req.LaborClass),
		Status:        employee.Status(req.Status),
	}

	return s.employeeRepo.Update(ctx, entity)
}

// Delete implements EmployeeService; deleting a missing matricula is a
// no-op success.
func (s *employeeServiceImpl) Delete(ctx context.Context, matricula string) error {
	return s.employeeRepo.Delete(ctx, matricula)
}

// HeadcountSummary implements EmployeeService, feeding the headcount
// cards and the per-abbreviation chart.
func (s *employeeServiceImpl) HeadcountSummary(ctx context.Context) (employee.HeadcountSummaryResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.HeadcountSummaryResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	summary := employee.HeadcountSummaryResponse{Total: len(employees)}
	counts := make(map[string]int)
	for _, emp := range employees {
		switch emp.Status {
		case employee.StatusActive:
			summary.Active++
		case employee.StatusInactive:
			summary.Inactive++
		}
		counts[emp.GroupingKey()]++
	}

	summary.ByGroup = make([]employee.GroupHeadcount, 0, len(counts))
	for key, count := range counts {
		summary.ByGroup = append(summary.ByGroup, employee.GroupHeadcount{GroupingKey: key, Count: count})
	}
	sort.Slice(summary.ByGroup, func(i, j int) bool {
		if summary.ByGroup[i].Count != summary.ByGroup[j].Count {
			return summary.ByGroup[i].Count > summary.ByGroup[j].Count
		}
		return summary.ByGroup[i].GroupingKey < summary.ByGroup[j].GroupingKey
	})

	return summary, nil
}

func parseAdmissionDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &d
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		Matricula:    emp.Matricula,
		FullName:     emp.FullName,
		JobFunction:  emp.JobFunction,
		Abbreviation: emp.Abbreviation,
		LaborClass:   string(emp.LaborClass),
		Status:       string(emp.Status),
	}
	if emp.AdmissionDate != nil {
		resp.AdmissionDate = emp.AdmissionDate.Format("2006-01-02")
	}
	return resp
}

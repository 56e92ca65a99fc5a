package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/grupo-santin/obras-backend-go/internal/domain/employee"
	"github.com/grupo-santin/obras-backend-go/internal/domain/timeentry"
	"github.com/xuri/excelize/v2"
)

// ExportService renders the already-aggregated records as downloadable
// .xlsx workbooks. All string fields are uppercased, matching the
// reporting convention used on site.
type ExportService interface {
	// EmployeeWorkbook returns the full employee roster as a workbook
	// plus a suggested filename.
	EmployeeWorkbook(ctx context.Context) (*bytes.Buffer, string, error)

	// TimeEntryWorkbook returns the time entry history as a workbook
	// plus a suggested filename.
	TimeEntryWorkbook(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	timeEntryRepo timeentry.TimeEntryRepository
}

func NewExportService(employeeRepo employee.EmployeeRepository, timeEntryRepo timeentry.TimeEntryRepository) ExportService {
	return &exportServiceImpl{
		employeeRepo:  employeeRepo,
		timeEntryRepo: timeEntryRepo,
	}
}

// EmployeeWorkbook implements ExportService.
func (s *exportServiceImpl) EmployeeWorkbook(ctx context.Context) (*bytes.Buffer, string, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list employees: %w", err)
	}

	header := []interface{}{"Matricula", "Nome", "Funcao", "Abreviacao", "Admissao", "MO", "Status"}
	rows := make([][]interface{}, 0, len(employees))
	for _, emp := range employees {
		admission := ""
		if emp.AdmissionDate != nil {
			admission = emp.AdmissionDate.Format("2006-01-02")
		}
		rows = append(rows, []interface{}{
			strings.ToUpper(emp.Matricula),
			strings.ToUpper(emp.FullName),
			strings.ToUpper(emp.JobFunction),
			strings.ToUpper(emp.Abbreviation),
			admission,
			strings.ToUpper(string(emp.LaborClass)),
			strings.ToUpper(string(emp.Status)),
		})
	}

	buf, err := buildWorkbook("Efetivo", header, rows)
	if err != nil {
		return nil, "", err
	}
	return buf, exportFilename("efetivo"), nil
}

// TimeEntryWorkbook implements ExportService.
func (s *exportServiceImpl) TimeEntryWorkbook(ctx context.Context) (*bytes.Buffer, string, error) {
	entries, err := s.timeEntryRepo.ListWithID(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list time entries: %w", err)
	}

	header := []interface{}{
		"ID", "Matricula", "Nome", "Funcao", "Equipamento", "Atividade",
		"Entrada", "SaidaAlmoco", "RetornoAlmoco", "SaidaFinal", "TotalHoras", "Data",
	}
	rows := make([][]interface{}, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []interface{}{
			e.ID,
			strings.ToUpper(e.Matricula),
			strings.ToUpper(e.EmployeeName),
			strings.ToUpper(e.JobFunction),
			strings.ToUpper(e.EquipmentTag),
			strings.ToUpper(e.Activity),
			e.ClockStart,
			e.LunchOut,
			e.LunchIn,
			e.ClockEnd,
			e.TotalDuration,
			e.EntryDate.Format("2006-01-02"),
		})
	}

	buf, err := buildWorkbook("Apontamentos", header, rows)
	if err != nil {
		return nil, "", err
	}
	return buf, exportFilename("apontamentos"), nil
}

func buildWorkbook(sheet string, header []interface{}, rows [][]interface{}) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheet)

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to generate workbook: %w", err)
	}
	return buf, nil
}

// exportFilename suffixes a short unique id so repeated downloads never
// collide in the browser's download directory.
func exportFilename(prefix string) string {
	return fmt.Sprintf("%s_%s.xlsx", prefix, uuid.New().String()[:8])
}

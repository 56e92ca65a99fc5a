package roster

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/grupo-santin/obras-backend-go/internal/domain/roster"
	"github.com/grupo-santin/obras-backend-go/internal/pkg/validator"
)

// IngestionService validates uploaded roster batches and replaces the
// stored snapshot for every date present in the batch.
type IngestionService interface {
	Ingest(ctx context.Context, batch roster.UploadBatch) (roster.IngestResult, error)
	List(ctx context.Context) ([]roster.SnapshotResponse, error)
	DeleteDate(ctx context.Context, date string) error
}

type ingestionServiceImpl struct {
	rosterRepo roster.RosterRepository
}

func NewIngestionService(rosterRepo roster.RosterRepository) IngestionService {
	return &ingestionServiceImpl{rosterRepo: rosterRepo}
}

// Accepted date formats for uploaded roster cells. Spreadsheets exported
// from site tooling carry either ISO or Brazilian day-first dates.
var uploadDateLayouts = []string{"2006-01-02", "02/01/2006"}

func parseUploadDate(s string) (time.Time, bool) {
	for _, layout := range uploadDateLayouts {
		if d, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// Ingest implements IngestionService. A valid batch replaces all stored
// rows for each date it contains; re-uploading the same file is
// idempotent. Nothing is written when validation fails.
func (s *ingestionServiceImpl) Ingest(ctx context.Context, batch roster.UploadBatch) (roster.IngestResult, error) {
	if err := validateColumns(batch.Columns); err != nil {
		return roster.IngestResult{}, err
	}
	if len(batch.Rows) == 0 {
		return roster.IngestResult{}, roster.ErrEmptyBatch
	}

	colIdx := make(map[string]int, len(batch.Columns))
	for i, c := range batch.Columns {
		colIdx[c] = i
	}

	cell := func(row []string, column string) string {
		idx := colIdx[column]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var errs validator.ValidationErrors
	snapshots := make([]roster.Snapshot, 0, len(batch.Rows))
	var dates []time.Time
	seenDates := make(map[string]bool)

	for i, row := range batch.Rows {
		rowField := fmt.Sprintf("row %d", i+2) // +2: 1-based, after header

		date, ok := parseUploadDate(cell(row, "Date"))
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   rowField,
				Message: fmt.Sprintf("invalid date %q", cell(row, "Date")),
			})
			continue
		}

		statusCode, err := strconv.Atoi(cell(row, "StatusCode"))
		if err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   rowField,
				Message: fmt.Sprintf("invalid status code %q", cell(row, "StatusCode")),
			})
			continue
		}

		matricula := cell(row, "EmployeeID")
		if matricula == "" {
			errs = append(errs, validator.ValidationError{
				Field:   rowField,
				Message: "employee id is required",
			})
			continue
		}

		snapshots = append(snapshots, roster.Snapshot{
			Date:           date,
			Matricula:      matricula,
			EmployeeName:   cell(row, "Name"),
			JobFunction:    cell(row, "Function"),
			StatusCode:     statusCode,
			SituationLabel: cell(row, "SituationLabel"),
		})

		key := date.Format("2006-01-02")
		if !seenDates[key] {
			seenDates[key] = true
			dates = append(dates, date)
		}
	}

	if len(errs) > 0 {
		return roster.IngestResult{}, errs
	}

	if err := s.rosterRepo.ReplaceForDates(ctx, dates, snapshots); err != nil {
		return roster.IngestResult{}, fmt.Errorf("failed to replace roster snapshots: %w", err)
	}

	replaced := make([]string, 0, len(dates))
	for _, d := range dates {
		replaced = append(replaced, d.Format("2006-01-02"))
	}

	return roster.IngestResult{
		RowsInserted:  len(snapshots),
		DatesReplaced: replaced,
	}, nil
}

// List implements IngestionService.
func (s *ingestionServiceImpl) List(ctx context.Context) ([]roster.SnapshotResponse, error) {
	snapshots, err := s.rosterRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster snapshots: %w", err)
	}

	responses := make([]roster.SnapshotResponse, 0, len(snapshots))
	for _, snap := range snapshots {
		responses = append(responses, roster.SnapshotResponse{
			Date:           snap.Date.Format("2006-01-02"),
			Matricula:      snap.Matricula,
			EmployeeName:   snap.EmployeeName,
			JobFunction:    snap.JobFunction,
			StatusCode:     snap.StatusCode,
			SituationLabel: snap.SituationLabel,
		})
	}
	return responses, nil
}

// DeleteDate implements IngestionService.
func (s *ingestionServiceImpl) DeleteDate(ctx context.Context, date string) error {
	d, ok := validator.IsValidDate(date)
	if !ok {
		return validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}
	return s.rosterRepo.DeleteByDate(ctx, d)
}

func validateColumns(columns []string) error {
	var errs validator.ValidationErrors
	for _, required := range roster.RequiredColumns {
		if !validator.IsInSlice(required, columns) {
			errs = append(errs, validator.ValidationError{
				Field:   required,
				Message: "required column is missing",
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

package postgresql

import (
	"context"
	"fmt"

	"github.com/grupo-santin/obras-backend-go/internal/domain/timeentry"
	"github.com/grupo-santin/obras-backend-go/internal/pkg/database"
)

type timeEntryRepositoryImpl struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepositoryImpl{db: db}
}

// Create implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (
			matricula, employee_name, job_function, equipment_tag, activity,
			clock_start, lunch_out, lunch_in, clock_end, total_duration, entry_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	created := entry
	err := q.QueryRow(ctx, query,
		entry.Matricula, entry.EmployeeName, entry.JobFunction, entry.EquipmentTag, entry.Activity,
		entry.ClockStart, entry.LunchOut, entry.LunchIn, entry.ClockEnd, entry.TotalDuration, entry.EntryDate,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return timeentry.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}
	return created, nil
}

// List implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) List(ctx context.Context) ([]timeentry.TimeEntry, error) {
	return r.list(ctx, false)
}

// ListWithID implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) ListWithID(ctx context.Context) ([]timeentry.TimeEntry, error) {
	return r.list(ctx, true)
}

func (r *timeEntryRepositoryImpl) list(ctx context.Context, withID bool) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, matricula, employee_name, job_function, equipment_tag, activity,
			clock_start, lunch_out, lunch_in, clock_end, total_duration, entry_date, created_at
		FROM time_entries
		ORDER BY entry_date, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		var e timeentry.TimeEntry
		err := rows.Scan(
			&e.ID, &e.Matricula, &e.EmployeeName, &e.JobFunction, &e.EquipmentTag, &e.Activity,
			&e.ClockStart, &e.LunchOut, &e.LunchIn, &e.ClockEnd, &e.TotalDuration, &e.EntryDate, &e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if !withID {
			e.ID = 0
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// DeleteByID implements timeentry.TimeEntryRepository. Deleting a missing
// id succeeds.
func (r *timeEntryRepositoryImpl) DeleteByID(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry %d: %w", id, err)
	}
	return nil
}

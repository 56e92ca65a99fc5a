package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/grupo-santin/obras-backend-go/internal/domain/roster"
	"github.com/grupo-santin/obras-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type rosterRepositoryImpl struct {
	db *database.DB
}

func NewRosterRepository(db *database.DB) roster.RosterRepository {
	return &rosterRepositoryImpl{db: db}
}

// List implements roster.RosterRepository.
func (r *rosterRepositoryImpl) List(ctx context.Context) ([]roster.Snapshot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT roster_date, matricula, employee_name, job_function, status_code, situation_label
		FROM roster_snapshots
		ORDER BY roster_date, matricula
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []roster.Snapshot
	for rows.Next() {
		var s roster.Snapshot
		err := rows.Scan(&s.Date, &s.Matricula, &s.EmployeeName, &s.JobFunction, &s.StatusCode, &s.SituationLabel)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}

// BulkInsert implements roster.RosterRepository using pgx CopyFrom.
func (r *rosterRepositoryImpl) BulkInsert(ctx context.Context, rows []roster.Snapshot) error {
	q := GetQuerier(ctx, r.db)
	return bulkInsertRoster(ctx, q, rows)
}

// DeleteByDate implements roster.RosterRepository.
func (r *rosterRepositoryImpl) DeleteByDate(ctx context.Context, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM roster_snapshots WHERE roster_date = $1`, date)
	if err != nil {
		return fmt.Errorf("failed to delete roster for %s: %w", date.Format("2006-01-02"), err)
	}
	return nil
}

// ReplaceForDates implements roster.RosterRepository. Delete and insert
// run in one transaction so a failed insert leaves the dates empty, never
// mixed.
func (r *rosterRepositoryImpl) ReplaceForDates(ctx context.Context, dates []time.Time, rows []roster.Snapshot) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		for _, d := range dates {
			if _, err := tx.Exec(ctx, `DELETE FROM roster_snapshots WHERE roster_date = $1`, d); err != nil {
				return fmt.Errorf("failed to purge roster for %s: %w", d.Format("2006-01-02"), err)
			}
		}
		return bulkInsertRoster(ctx, tx, rows)
	})
}

func bulkInsertRoster(ctx context.Context, q database.Querier, rows []roster.Snapshot) error {
	if len(rows) == 0 {
		return nil
	}

	// CopyFrom is only available on pgx connections and transactions;
	// fall back to batched inserts when given the generic querier.
	if src, ok := q.(interface {
		CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	}); ok {
		copyRows := make([][]interface{}, 0, len(rows))
		for _, s := range rows {
			copyRows = append(copyRows, []interface{}{
				s.Date, s.Matricula, s.EmployeeName, s.JobFunction, s.StatusCode, s.SituationLabel,
			})
		}
		_, err := src.CopyFrom(ctx,
			pgx.Identifier{"roster_snapshots"},
			[]string{"roster_date", "matricula", "employee_name", "job_function", "status_code", "situation_label"},
			pgx.CopyFromRows(copyRows),
		)
		if err != nil {
			return fmt.Errorf("failed to bulk insert roster rows: %w", err)
		}
		return nil
	}

	for _, s := range rows {
		_, err := q.Exec(ctx, `
			INSERT INTO roster_snapshots (roster_date, matricula, employee_name, job_function, status_code, situation_label)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, s.Date, s.Matricula, s.EmployeeName, s.JobFunction, s.StatusCode, s.SituationLabel)
		if err != nil {
			return fmt.Errorf("failed to insert roster row: %w", err)
		}
	}
	return nil
}

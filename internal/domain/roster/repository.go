package roster

import (
	"context"
	"time"
)

type RosterRepository interface {
	// List returns every stored roster row across all dates.
	List(ctx context.Context) ([]Snapshot, error)

	// BulkInsert writes a batch of rows in one operation.
	BulkInsert(ctx context.Context, rows []Snapshot) error

	// DeleteByDate purges all rows for one date.
	DeleteByDate(ctx context.Context, date time.Time) error

	// ReplaceForDates deletes all rows for the given dates and inserts
	// the new batch as a single transaction. A failed insert leaves the
	// dates empty rather than mixing stale and new rows.
	ReplaceForDates(ctx context.Context, dates []time.Time, rows []Snapshot) error
}

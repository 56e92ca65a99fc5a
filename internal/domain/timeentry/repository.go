package timeentry

import "context"

type TimeEntryRepository interface {
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)

	// List returns all entries without the surrogate id, oldest first.
	List(ctx context.Context) ([]TimeEntry, error)

	// ListWithID returns all entries including the surrogate id, for
	// precise deletion from the history view.
	ListWithID(ctx context.Context) ([]TimeEntry, error)

	// DeleteByID removes one entry. Deleting a missing id is a no-op
	// success.
	DeleteByID(ctx context.Context, id int64) error
}

package jobfunction

import "context"

// JobFunctionRepository manages the reference list of job titles. Names
// are stored uppercased and trimmed.
type JobFunctionRepository interface {
	List(ctx context.Context) ([]string, error)
	Insert(ctx context.Context, name string) error

	// Delete removes the function. Deleting a missing name is a no-op
	// success.
	Delete(ctx context.Context, name string) error
}

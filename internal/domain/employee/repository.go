package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByMatricula(ctx context.Context, matricula string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error

	// Delete removes the employee. Deleting a missing matricula is a
	// no-op success.
	Delete(ctx context.Context, matricula string) error
}

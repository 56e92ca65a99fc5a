package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrMatriculaExists  = errors.New("employee with this matricula already exists")
)

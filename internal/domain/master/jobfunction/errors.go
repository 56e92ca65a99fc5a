package jobfunction

import "errors"

var (
	ErrFunctionExists = errors.New("job function already exists")
	ErrEmptyName      = errors.New("job function name must not be empty")
)

package roster

import "errors"

var (
	ErrEmptyBatch    = errors.New("roster batch contains no rows")
	ErrSheetNotFound = errors.New("workbook does not contain the roster sheet")
)

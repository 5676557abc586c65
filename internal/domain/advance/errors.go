package advance

import "errors"

// Salary advance domain errors
var (
	ErrAdvanceNotFound = errors.New("salary advance not found")
)

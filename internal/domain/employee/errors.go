package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidStatus    = errors.New("invalid employee status")
	ErrExitBeforeJoin   = errors.New("exit date must be on or after join date")
)

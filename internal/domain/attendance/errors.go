package attendance

import "errors"

// Attendance domain errors
var (
	ErrObservationNotFound = errors.New("attendance observation not found")
	ErrInvalidDate         = errors.New("invalid attendance date")
)

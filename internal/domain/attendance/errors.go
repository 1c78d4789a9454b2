package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidEventKind = errors.New("invalid punch event kind")
	ErrEventNotFound    = errors.New("attendance event not found")
)

package leave

import "errors"

var (
	ErrRecordNotFound = errors.New("leave record not found")
	ErrInvalidRange   = errors.New("leave end date is before start date")
)

package holiday

import "errors"

var (
	ErrHolidayNotFound     = errors.New("holiday not found")
	ErrPoolAlreadyAssigned = errors.New("pool holiday already assigned for this date")
)

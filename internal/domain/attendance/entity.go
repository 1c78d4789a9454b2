package attendance

import (
	"time"
)

// EventKind is the punch action recorded by an attendance device or app.
type EventKind string

const (
	EventCheckIn  EventKind = "check_in"
	EventCheckOut EventKind = "check_out"
	EventBreakIn  EventKind = "break_in"
	EventBreakOut EventKind = "break_out"
)

// Valid reports whether k is one of the four punch kinds.
func (k EventKind) Valid() bool {
	switch k {
	case EventCheckIn, EventCheckOut, EventBreakIn, EventBreakOut:
		return true
	}
	return false
}

// Event is one immutable punch. Multiple events may land on the same
// calendar day; ordering by Timestamp is significant downstream.
type Event struct {
	ID         string
	EmployeeID string
	Timestamp  time.Time
	Kind       EventKind
	Source     *string
	CreatedAt  time.Time
}

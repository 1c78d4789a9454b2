package leave

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Record is one leave request spanning [StartDate, EndDate] inclusive.
// Only approved records participate in attendance classification.
type Record struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	LeaveType  string
	Status     Status
	Reason     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Covers reports whether the record's interval contains the given calendar
// day. Comparison is by local calendar day, not instant.
func (r Record) Covers(date time.Time) bool {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, date.Location())

	sy, sm, sd := r.StartDate.Date()
	start := time.Date(sy, sm, sd, 0, 0, 0, 0, date.Location())

	ey, em, ed := r.EndDate.Date()
	end := time.Date(ey, em, ed, 0, 0, 0, 0, date.Location())

	return !day.Before(start) && !day.After(end)
}

// Kind is the normalized leave classification used by the classifier.
type Kind string

const (
	KindSick         Kind = "sick"
	KindCompOff      Kind = "comp_off"
	KindFloating     Kind = "floating"
	KindLossOfPay    Kind = "loss_of_pay"
	KindWorkFromHome Kind = "work_from_home"
	KindEarned       Kind = "earned"
)

// NormalizeKind maps a free-form stored leave type to its Kind. Unrecognized
// types fall back to earned leave.
func NormalizeKind(leaveType string) Kind {
	switch t := strings.ToLower(strings.TrimSpace(leaveType)); {
	case strings.Contains(t, "sick"):
		return KindSick
	case strings.Contains(t, "comp"):
		return KindCompOff
	case strings.Contains(t, "float"):
		return KindFloating
	case strings.Contains(t, "loss of pay"), strings.Contains(t, "loss_of_pay"), t == "lop":
		return KindLossOfPay
	case strings.Contains(t, "work from home"), strings.Contains(t, "work_from_home"), t == "wfh":
		return KindWorkFromHome
	default:
		return KindEarned
	}
}

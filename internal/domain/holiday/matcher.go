package holiday

import (
	"strings"
	"time"
)

// Matches compares a stored holiday date string against a calendar day.
// Stored values are heterogeneous (legacy data): full dates, year-agnostic
// month-day patterns, and bare partial suffixes all occur. Precedence:
//
//  1. exact date: stored == "2006-01-02" rendering of the day
//  2. month-day: stored == "01-02" rendering (applies every year)
//  3. suffix: the full rendering ends with the stored value
//
// An empty stored value never matches.
func Matches(stored string, date time.Time) bool {
	stored = strings.TrimSpace(stored)
	if stored == "" {
		return false
	}

	full := date.Format("2006-01-02")
	if stored == full {
		return true
	}

	if stored == date.Format("01-02") {
		return true
	}

	return strings.HasSuffix(full, stored)
}

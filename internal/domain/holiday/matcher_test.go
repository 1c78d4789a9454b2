package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	t.Parallel()
	republicDay := time.Date(2024, time.January, 26, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		stored string
		date   time.Time
		want   bool
	}{
		{"exact date", "2024-01-26", republicDay, true},
		{"exact date other year", "2023-01-26", republicDay, false},
		{"month-day applies every year", "01-26", republicDay, true},
		{"month-day wrong day", "01-25", republicDay, false},
		{"bare day suffix", "26", republicDay, true},
		{"bare day suffix no match", "27", republicDay, false},
		{"empty never matches", "", republicDay, false},
		{"whitespace never matches", "   ", republicDay, false},
		{"surrounding whitespace trimmed", " 01-26 ", republicDay, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Matches(tc.stored, tc.date))
		})
	}
}

func TestRecurringRule_MatchesDate(t *testing.T) {
	t.Parallel()

	secondSaturday := RecurringRule{Weekday: time.Saturday, Ordinal: 2}

	// June 2024: Saturdays fall on the 1st, 8th, 15th, 22nd, 29th
	assert.True(t, secondSaturday.MatchesDate(time.Date(2024, time.June, 8, 0, 0, 0, 0, time.UTC)))
	assert.False(t, secondSaturday.MatchesDate(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, secondSaturday.MatchesDate(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)))
	// right ordinal, wrong weekday
	assert.False(t, secondSaturday.MatchesDate(time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC)))

	fourthSaturday := RecurringRule{Weekday: time.Saturday, Ordinal: 4}
	assert.True(t, fourthSaturday.MatchesDate(time.Date(2024, time.June, 22, 0, 0, 0, 0, time.UTC)))
	assert.False(t, fourthSaturday.MatchesDate(time.Date(2024, time.June, 29, 0, 0, 0, 0, time.UTC)))
}

func TestCalendar_StaticAndRecurringMatch(t *testing.T) {
	t.Parallel()

	cal := Calendar{
		Fixed:      []FixedHoliday{{Date: "01-26", Name: "Republic Day"}},
		Pool:       []PoolHoliday{{EmployeeID: "emp-1", Date: "2024-03-08", Name: "Holi"}},
		Configured: []ConfiguredHoliday{{Date: "2024-04-01", Name: "Site Maintenance"}},
		Recurring:  []RecurringRule{{Weekday: time.Saturday, Ordinal: 2, Name: "Second Saturday"}},
	}

	assert.True(t, cal.StaticMatch(time.Date(2024, time.January, 26, 0, 0, 0, 0, time.UTC)))
	assert.True(t, cal.StaticMatch(time.Date(2025, time.January, 26, 0, 0, 0, 0, time.UTC)))
	assert.True(t, cal.StaticMatch(time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC)))
	assert.True(t, cal.StaticMatch(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, cal.StaticMatch(time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)))

	assert.True(t, cal.RecurringMatch(time.Date(2024, time.June, 8, 0, 0, 0, 0, time.UTC)))
	assert.False(t, cal.RecurringMatch(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)))
}

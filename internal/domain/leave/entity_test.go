package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		leaveType string
		want      Kind
	}{
		{"Sick Leave", KindSick},
		{"sick", KindSick},
		{"Comp Off", KindCompOff},
		{"compensatory off", KindCompOff},
		{"Floating Holiday", KindFloating},
		{"Loss of Pay", KindLossOfPay},
		{"loss_of_pay", KindLossOfPay},
		{"LOP", KindLossOfPay},
		{"Work From Home", KindWorkFromHome},
		{"WFH", KindWorkFromHome},
		{"Earned Leave", KindEarned},
		{"Casual Leave", KindEarned},
		{"", KindEarned},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeKind(tc.leaveType), "leave type %q", tc.leaveType)
	}
}

func TestRecord_Covers(t *testing.T) {
	t.Parallel()

	rec := Record{
		StartDate: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC),
	}

	assert.False(t, rec.Covers(time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC)))
	assert.True(t, rec.Covers(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, rec.Covers(time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC)))
	assert.True(t, rec.Covers(time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)))
	assert.False(t, rec.Covers(time.Date(2024, time.June, 13, 0, 0, 0, 0, time.UTC)))

	// comparison is by calendar day, not instant
	assert.True(t, rec.Covers(time.Date(2024, time.June, 12, 23, 59, 0, 0, time.UTC)))
}

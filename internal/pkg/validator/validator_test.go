package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsNumeric(t *testing.T) {
	t.Parallel()
	assert.True(t, IsNumeric("12345"))
	assert.True(t, IsNumeric("0"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("12a45"))
	assert.False(t, IsNumeric("-1"))
	assert.False(t, IsNumeric("1.5"))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	date, ok := IsValidDate("2024-02-29")
	assert.True(t, ok)
	assert.Equal(t, 29, date.Day())

	_, ok = IsValidDate("2023-02-29")
	assert.False(t, ok)

	_, ok = IsValidDate("29-02-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidDateTime(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDateTime("2024-01-15T10:30:00Z")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2024-01-15T10:30:00+07:00")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2024-01-15T10:30:00.123456789Z")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2024-01-15 10:30:00")
	assert.False(t, ok)

	_, ok = IsValidDateTime("")
	assert.False(t, ok)
}

func TestIsValidEmployeeCode(t *testing.T) {
	t.Parallel()
	assert.True(t, IsValidEmployeeCode("2024-0001"))
	assert.False(t, IsValidEmployeeCode("2024-001"))
	assert.False(t, IsValidEmployeeCode("20240001"))
	assert.False(t, IsValidEmployeeCode("abcd-0001"))
}

func TestIsInSlice(t *testing.T) {
	t.Parallel()
	statuses := []string{"pending", "approved", "rejected"}
	assert.True(t, IsInSlice("approved", statuses))
	assert.False(t, IsInSlice("Approved", statuses))
	assert.False(t, IsInSlice("", statuses))
}

func TestValidationErrors_ErrorAndToMap(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "month", Message: "month must be between 1 and 12"},
		{Field: "year", Message: "year must be 2020 or later"},
	}

	assert.Contains(t, errs.Error(), "month: month must be between 1 and 12")
	assert.Contains(t, errs.Error(), "year: year must be 2020 or later")

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "month must be between 1 and 12", m["month"])
}

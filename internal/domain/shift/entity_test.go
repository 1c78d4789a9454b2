package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryForRole(t *testing.T) {
	t.Parallel()

	assert.Equal(t, CategorySite, CategoryForRole("site_engineer"))
	assert.Equal(t, CategorySite, CategoryForRole("site_supervisor"))
	assert.Equal(t, CategoryField, CategoryForRole("field_agent"))
	assert.Equal(t, CategoryField, CategoryForRole("surveyor"))
	assert.Equal(t, CategoryOffice, CategoryForRole("hr_manager"))
	assert.Equal(t, CategoryOffice, CategoryForRole(""))
	assert.Equal(t, CategoryOffice, CategoryForRole("unknown_role"))
}

func TestUpsertRulesRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := UpsertRulesRequest{
		Category:      "office",
		FullDayHours:  8,
		HalfDayHours:  4,
		MaxDailyHours: 9,
	}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.Category = "remote"
	assert.Error(t, bad.Validate())

	bad = valid
	bad.FullDayHours = 0
	assert.Error(t, bad.Validate())

	bad = valid
	bad.MaxDailyHours = 25
	assert.Error(t, bad.Validate())
}

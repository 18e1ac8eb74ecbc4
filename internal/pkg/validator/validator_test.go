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

func TestIsValidEmployeeNo(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidEmployeeNo("E1001"))
	assert.True(t, IsValidEmployeeNo("E123"))
	assert.False(t, IsValidEmployeeNo("1001"))
	assert.False(t, IsValidEmployeeNo("E12"))
	assert.False(t, IsValidEmployeeNo("e1001"))
	assert.False(t, IsValidEmployeeNo("E1001X"))
	assert.False(t, IsValidEmployeeNo(""))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	date, ok := IsValidDate("2025-03-15")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("15-03-2025")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidMonth(t *testing.T) {
	t.Parallel()

	_, ok := IsValidMonth("2025-03")
	assert.True(t, ok)
	_, ok = IsValidMonth("2025-3")
	assert.False(t, ok)
	_, ok = IsValidMonth("2025-03-01")
	assert.False(t, ok)
}

func TestIsValidPhoneNumber(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidPhoneNumber("010-1234-5678"))
	assert.True(t, IsValidPhoneNumber("01012345678"))
	assert.True(t, IsValidPhoneNumber("055 123 4567"))
	assert.False(t, IsValidPhoneNumber("010-1234"))
	assert.False(t, IsValidPhoneNumber("010-1234-56789012"))
	assert.False(t, IsValidPhoneNumber("010-abcd-5678"))
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "grade", Message: "must be between 1 and 4"},
	}

	assert.Equal(t, "name: is required; grade: must be between 1 and 4", errs.Error())
	assert.Equal(t, map[string]string{
		"name":  "is required",
		"grade": "must be between 1 and 4",
	}, errs.ToMap())
}

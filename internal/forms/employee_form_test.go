package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/staff-planner/internal/domain"
)

func TestParseEmployeeFormValid(t *testing.T) {
	emp, values, errs := ParseEmployeeForm(EmployeeFormValues{
		Name:           "  Ana Martins  ",
		Email:          " ana@example.com ",
		EmploymentType: "full_time",
		HoursPerMonth:  "160.5",
		DepartmentID:   "3",
	})

	require.Empty(t, errs)
	assert.Equal(t, "Ana Martins", emp.Name)
	require.NotNil(t, emp.Email)
	assert.Equal(t, "ana@example.com", *emp.Email)
	assert.Equal(t, domain.EmploymentFullTime, emp.EmploymentType)
	require.NotNil(t, emp.HoursPerMonth)
	assert.Equal(t, 160.5, *emp.HoursPerMonth)
	require.NotNil(t, emp.DepartmentID)
	assert.Equal(t, int64(3), *emp.DepartmentID)
	assert.Equal(t, "Ana Martins", values.Name)
}

func TestParseEmployeeFormOptionalFieldsAbsent(t *testing.T) {
	emp, _, errs := ParseEmployeeForm(EmployeeFormValues{
		Name:           "Bo",
		EmploymentType: "part_time",
	})

	require.Empty(t, errs)
	assert.Nil(t, emp.Email)
	assert.Nil(t, emp.HoursPerMonth)
	assert.Nil(t, emp.DepartmentID)
}

func TestParseEmployeeFormCollectsEveryViolation(t *testing.T) {
	_, _, errs := ParseEmployeeForm(EmployeeFormValues{
		Name:           "   ",
		Email:          "not-an-email",
		EmploymentType: "freelance",
		HoursPerMonth:  "-4",
		DepartmentID:   "zero",
	})

	assert.Equal(t, []string{
		"name must not be empty",
		"invalid email address",
		"invalid employment type",
		"hours must be a positive number",
		"invalid department selection",
	}, errs)
}

func TestParseEmployeeFormEmailShape(t *testing.T) {
	cases := map[string]bool{
		"ana@example.com":   true,
		"a.b+c@mail.co":     true,
		"ana@example":       false,
		"ana example@x.com": false,
		"ana@@example.com":  false,
		"@example.com":      false,
	}
	for email, ok := range cases {
		_, _, errs := ParseEmployeeForm(EmployeeFormValues{
			Name:           "Ana",
			Email:          email,
			EmploymentType: "full_time",
		})
		if ok {
			assert.Empty(t, errs, "email %q should be accepted", email)
		} else {
			assert.Contains(t, errs, "invalid email address", "email %q should be rejected", email)
		}
	}
}

func TestParseEmployeeFormZeroHoursAllowed(t *testing.T) {
	emp, _, errs := ParseEmployeeForm(EmployeeFormValues{
		Name:           "Ana",
		EmploymentType: "part_time",
		HoursPerMonth:  "0",
	})

	require.Empty(t, errs)
	require.NotNil(t, emp.HoursPerMonth)
	assert.Zero(t, *emp.HoursPerMonth)
}

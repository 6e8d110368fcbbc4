package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func TestResolveMonthYearDefaults(t *testing.T) {
	year, month := ResolveMonthYear("", "", fixedNow)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 3, month)
}

func TestResolveMonthYearExplicit(t *testing.T) {
	year, month := ResolveMonthYear("11", "2022", fixedNow)
	assert.Equal(t, 2022, year)
	assert.Equal(t, 11, month)
}

func TestResolveMonthYearOutOfRangeFallsBack(t *testing.T) {
	cases := []struct {
		month, year string
	}{
		{"0", "2024"},
		{"13", "2024"},
		{"-1", "2024"},
		{"abc", "2024"},
		{"5", "1969"},
		{"5", "year"},
	}
	for _, tc := range cases {
		year, month := ResolveMonthYear(tc.month, tc.year, fixedNow)
		if tc.month == "5" {
			assert.Equal(t, 5, month)
		} else {
			assert.Equal(t, 3, month, "month %q should fall back", tc.month)
		}
		if tc.year == "2024" {
			assert.Equal(t, 2024, year)
		} else {
			assert.Equal(t, 2024, year, "year %q should fall back", tc.year)
		}
	}
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "January", MonthLabel(1))
	assert.Equal(t, "December", MonthLabel(12))
}

func TestNavigationTargetsYearRollover(t *testing.T) {
	prev, next := NavigationTargets(2024, 1)
	assert.Equal(t, MonthTarget{Year: 2023, Month: 12}, prev)
	assert.Equal(t, MonthTarget{Year: 2024, Month: 2}, next)

	prev, next = NavigationTargets(2024, 12)
	assert.Equal(t, MonthTarget{Year: 2024, Month: 11}, prev)
	assert.Equal(t, MonthTarget{Year: 2025, Month: 1}, next)
}

func TestNavigationTargetsMidYear(t *testing.T) {
	prev, next := NavigationTargets(2024, 6)
	assert.Equal(t, MonthTarget{Year: 2024, Month: 5}, prev)
	assert.Equal(t, MonthTarget{Year: 2024, Month: 7}, next)
}

func TestDefaultShiftFormValuesCurrentMonth(t *testing.T) {
	defaults := DefaultShiftFormValues(2024, 3, fixedNow)
	assert.Equal(t, "2024-03-15", defaults.Date)
	assert.Equal(t, "09:00", defaults.StartTime)
	assert.Equal(t, "17:00", defaults.EndTime)
}

func TestDefaultShiftFormValuesOtherMonth(t *testing.T) {
	defaults := DefaultShiftFormValues(2024, 5, fixedNow)
	assert.Equal(t, "2024-05-01", defaults.Date)
}

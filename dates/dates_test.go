package dates

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, Zone)

func TestValidDate(t *testing.T) {
	cases := map[string]bool{
		"25.12":  true,
		"99.99":  true, // lexically fine; DueAt decides if it's real
		"5.12":   false,
		"25:12":  false,
		"25.123": false,
		"":       false,
		"сегодня": false,
	}
	for in, want := range cases {
		assert.Equal(t, want, ValidDate(in), "ValidDate(%q)", in)
	}
}

func TestValidTime(t *testing.T) {
	cases := map[string]bool{
		"14:30":  true,
		"99:99":  true,
		"9:30":   false,
		"14.30":  false,
		"14:300": false,
		"":       false,
	}
	for in, want := range cases {
		assert.Equal(t, want, ValidTime(in), "ValidTime(%q)", in)
	}
}

func TestDueAtThisYear(t *testing.T) {
	at, rolled, err := DueAt("25.12", "14:30", testNow)
	require.NoError(t, err)
	assert.False(t, rolled)
	assert.Equal(t, time.Date(2026, 12, 25, 14, 30, 0, 0, Zone), at)
	assert.True(t, at.After(testNow))
}

func TestDueAtRollsToNextYear(t *testing.T) {
	at, rolled, err := DueAt("01.01", "10:00", testNow)
	require.NoError(t, err)
	assert.True(t, rolled)
	assert.Equal(t, time.Date(2027, 1, 1, 10, 0, 0, 0, Zone), at)
	assert.True(t, at.After(testNow))
}

func TestDueAtExactNowRolls(t *testing.T) {
	// "at or before now" rolls, so the very minute of now goes next year.
	at, rolled, err := DueAt("15.06", "12:00", testNow)
	require.NoError(t, err)
	assert.True(t, rolled)
	assert.Equal(t, 2027, at.Year())
}

func TestDueAtAlwaysStrictlyAfterNow(t *testing.T) {
	for month := 1; month <= 12; month++ {
		for _, day := range []int{1, 15, 28} {
			for _, hm := range []string{"00:00", "11:59", "23:30"} {
				date := fmt.Sprintf("%02d.%02d", day, month)
				at, _, err := DueAt(date, hm, testNow)
				require.NoError(t, err, "DueAt(%q, %q)", date, hm)
				assert.True(t, at.After(testNow), "DueAt(%q, %q) = %v", date, hm, at)
			}
		}
	}
}

func TestDueAtImpossibleValues(t *testing.T) {
	for _, tc := range []struct{ date, tm string }{
		{"99.99", "14:30"},
		{"31.02", "14:30"},
		{"00.06", "14:30"},
		{"25.13", "14:30"},
		{"25.12", "25:00"},
		{"25.12", "14:70"},
	} {
		_, _, err := DueAt(tc.date, tc.tm, testNow)
		assert.Error(t, err, "DueAt(%q, %q)", tc.date, tc.tm)
	}
}

func TestLiteral(t *testing.T) {
	assert.Equal(t, "99.99.2026 14:30", Literal("99.99", "14:30", 2026))
}

func TestNowIsInFixedZone(t *testing.T) {
	_, offset := Now().Zone()
	assert.Equal(t, 3*60*60, offset)
}

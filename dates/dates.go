// Package dates interprets the bot's two-field date/time input in the
// fixed UTC+3 zone.
//
// Users enter only day and month, so the year is inferred: the current
// one, or the next one when the composed instant has already passed.
package dates

import (
	"fmt"
	"time"

	"github.com/jmhodges/clock"
)

const (
	DateLayout  = "02.01"
	TimeLayout  = "15:04"
	StampLayout = "02.01.2006 15:04"
)

// Zone is the single zone all input is interpreted and displayed in.
// Fixed offset, no daylight saving.
var Zone = time.FixedZone("UTC+3", 3*60*60)

var clk = clock.New()

// Now returns the current instant in Zone.
func Now() time.Time {
	return clk.Now().In(Zone)
}

// ValidDate reports whether s is lexically a DD.MM value.
func ValidDate(s string) bool {
	return len(s) == 5 && s[2] == '.'
}

// ValidTime reports whether s is lexically a HH:MM value.
func ValidTime(s string) bool {
	return len(s) == 5 && s[2] == ':'
}

// DueAt composes date (DD.MM) and tm (HH:MM) into an absolute instant in
// Zone, assuming the year of now. When that instant is not strictly after
// now it is moved to the next year, and rolled reports the move. A non-nil
// error means the numbers don't form a real date (month 13, hour 25, 31st
// of February); callers keep the literal text instead.
func DueAt(date, tm string, now time.Time) (at time.Time, rolled bool, err error) {
	at, err = parseStamp(date, tm, now.Year())
	if err != nil {
		return time.Time{}, false, err
	}

	if at.After(now) {
		return at, false, nil
	}

	at, err = parseStamp(date, tm, now.Year()+1)
	if err != nil {
		return time.Time{}, false, err
	}
	return at, true, nil
}

// Literal is the best-effort stored representation used when DueAt fails.
func Literal(date, tm string, year int) string {
	return fmt.Sprintf("%s.%d %s", date, year, tm)
}

func parseStamp(date, tm string, year int) (time.Time, error) {
	return time.ParseInLocation(StampLayout, fmt.Sprintf("%s.%d %s", date, year, tm), Zone)
}

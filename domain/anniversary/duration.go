// Package anniversary computes calendar-accurate membership durations.
package anniversary

import (
	"fmt"
	"strings"
	"time"
)

// Duration is the calendar-field difference between an account's creation
// date and now. Immutable once computed.
type Duration struct {
	Years  int
	Months int
	Days   int
	Label  string
}

// NotYetJoined marks a creation timestamp in the future relative to now.
type NotYetJoined struct{}

// Label returns the display text for the future-join case.
func (NotYetJoined) String() string {
	return "Not joined yet"
}

// Compute calculates the calendar difference between createdAt and now.
// It works on calendar fields rather than elapsed seconds, so a full year
// between the same month/day always yields an exact year regardless of leap
// days in between. The second return value is true when createdAt is after
// now, in which case the Duration is meaningless.
func Compute(createdAt, now time.Time) (Duration, bool) {
	createdAt = createdAt.UTC()
	now = now.UTC()

	if createdAt.After(now) {
		return Duration{}, true
	}

	years := now.Year() - createdAt.Year()
	months := int(now.Month()) - int(createdAt.Month())
	days := now.Day() - createdAt.Day()

	if months < 0 || (months == 0 && days < 0) {
		years--
		months += 12
	}

	if days < 0 {
		// Borrow from the month immediately preceding now's month.
		days += daysInPreviousMonth(now)
		months--
		if days < 0 {
			// An end-of-month start crossing a shorter month can leave a
			// residue after the borrow. Days never goes negative.
			days = 0
		}
	}

	d := Duration{Years: years, Months: months, Days: days}
	d.Label = formatLabel(d)
	return d, false
}

// daysInPreviousMonth returns the day count of the month before now's month.
// Day zero of the current month is the last day of the previous one.
func daysInPreviousMonth(now time.Time) int {
	return time.Date(now.Year(), now.Month(), 0, 0, 0, 0, 0, time.UTC).Day()
}

// formatLabel joins the non-zero components in years, months, days order,
// each pluralized. An all-zero duration reads "Today".
func formatLabel(d Duration) string {
	var parts []string
	if d.Years > 0 {
		parts = append(parts, pluralize(d.Years, "year"))
	}
	if d.Months > 0 {
		parts = append(parts, pluralize(d.Months, "month"))
	}
	if d.Days > 0 {
		parts = append(parts, pluralize(d.Days, "day"))
	}
	if len(parts) == 0 {
		return "Today"
	}
	return strings.Join(parts, " ")
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatJoinDate renders a creation timestamp the way the card displays it,
// e.g. "January 15, 2021".
func FormatJoinDate(t time.Time) string {
	return t.UTC().Format("January 2, 2006")
}

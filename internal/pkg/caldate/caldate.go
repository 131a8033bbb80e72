// Package caldate handles calendar dates carried as UTC-midnight time.Time values.
package caldate

import (
	"math"
	"time"
)

const Layout = "2006-01-02"

const day = 24 * time.Hour

// Normalize drops the clock part of t, keeping the calendar date as seen in t's location.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, time.UTC)
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

func SameDay(a, b time.Time) bool {
	return Normalize(a).Equal(Normalize(b))
}

// DaysBetween returns the number of whole-or-partial days from -> to, rounded up.
func DaysBetween(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}

func AddDays(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * day)
}

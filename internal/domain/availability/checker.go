package availability

import (
	"time"

	"event-marketplace/internal/pkg/caldate"
)

// IsAvailable decides whether date is bookable under rules.
// Precedence: blocked date, then a custom entry for that exact date, then the
// recurring schedule of the weekday. A weekday without any recurring entry is open.
func IsAvailable(rules *Rules, date time.Time) bool {
	if rules == nil {
		return true
	}
	day := caldate.Normalize(date)

	for _, r := range rules.rules {
		if b, ok := r.(Blocked); ok && caldate.SameDay(b.Date, day) {
			return false
		}
	}
	for _, r := range rules.rules {
		if c, ok := r.(Custom); ok && caldate.SameDay(c.Date, day) {
			return c.Available
		}
	}
	for _, r := range rules.rules {
		if rec, ok := r.(Recurring); ok && rec.Weekday == day.Weekday() {
			return len(rec.Slots) > 0
		}
	}
	return true
}

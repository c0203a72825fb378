// Package fine computes overdue fines. The function is pure: the daily
// rate comes in as an argument, read by callers from the settings store at
// call time, so a rate change never touches amounts already frozen on
// returned loans.
package fine

import (
	"math"
	"time"
)

// Calculate returns the fine for a loan due on due and assessed on today,
// in whole overdue days at ratePerDay, rounded to two decimals. A zero due
// date yields 0 rather than an error.
func Calculate(due, today time.Time, ratePerDay float64) float64 {
	if due.IsZero() {
		return 0
	}
	d := dateOnly(due)
	t := dateOnly(today)
	if !t.After(d) {
		return 0
	}
	overdueDays := int(t.Sub(d).Hours() / 24)
	return math.Round(float64(overdueDays)*ratePerDay*100) / 100
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

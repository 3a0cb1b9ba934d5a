package domain

import "time"

// Frequency represents how often a recurring task repeats.
type Frequency string

// Possible frequency values
const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Days returns the fixed number of days a frequency advances a task's
// next occurrence: 1 for daily, 7 for weekly, 30 for monthly. Monthly is
// a deliberate 30-day approximation, not calendar-month arithmetic.
// Unrecognized frequencies advance zero days, so the next occurrence
// stays at "now".
func (f Frequency) Days() int {
	switch f {
	case FrequencyDaily:
		return 1
	case FrequencyWeekly:
		return 7
	case FrequencyMonthly:
		return 30
	default:
		return 0
	}
}

// Valid reports whether f is one of the recognized frequency values.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

// Next computes the next occurrence for a task with this frequency,
// counting from now. It is a pure function of (now, frequency).
func (f Frequency) Next(now time.Time) time.Time {
	return now.AddDate(0, 0, f.Days())
}

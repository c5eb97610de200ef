package tracker

import "github.com/DKushman/calorie-tracker/date"

// CalendarWindow is the fixed size of the calendar rollup, in days.
const CalendarWindow = 30

// DayStatus classifies a day's total calories against the calorie goal.
type DayStatus string

const (
	// StatusNone means no calorie goal is set, so no classification applies.
	StatusNone DayStatus = ""
	// StatusOver means the day's total strictly exceeds the calorie goal.
	StatusOver DayStatus = "over"
	// StatusUnder means the day's total is at or below the calorie goal.
	// A total exactly equal to the goal classifies as under; there is no
	// separate "met" state.
	StatusUnder DayStatus = "under"
)

// DayEntry is one day of the calendar rollup.
type DayEntry struct {
	Date       date.Date
	Total      Amount
	Status     DayStatus
	IsToday    bool
	IsSelected bool
}

// dayStatus classifies total against the calorie goal, if any. Only the
// calorie goal affects status.
func dayStatus(total Amount, g Goals) DayStatus {
	goal, set := g.Calories()
	if !set {
		return StatusNone
	}
	if total.GreaterThan(goal) {
		return StatusOver
	}
	return StatusUnder
}

// Calendar builds the trailing 30-day rollup ending at today inclusive,
// oldest first. The window is always anchored to today, independent of the
// selected day; selected only drives the IsSelected mark.
func Calendar(today, selected date.Date, l *Ledger, g Goals) []DayEntry {
	entries := make([]DayEntry, 0, CalendarWindow)
	for day := range today.Trailing(CalendarWindow) {
		total := l.TotalCaloriesOn(day)
		entries = append(entries, DayEntry{
			Date:       day,
			Total:      total,
			Status:     dayStatus(total, g),
			IsToday:    day == today,
			IsSelected: day == selected,
		})
	}
	return entries
}

package tracker

import (
	"testing"

	"github.com/DKushman/calorie-tracker/date"
)

func TestCalendar_windowShape(t *testing.T) {
	today := date.MustParse("2025-06-30")
	entries := Calendar(today, today, NewLedger(), Goals{})

	if len(entries) != CalendarWindow {
		t.Fatalf("len(entries) = %d, want %d", len(entries), CalendarWindow)
	}
	if entries[0].Date != today.Add(-29) {
		t.Errorf("first entry = %s, want %s", entries[0].Date, today.Add(-29))
	}
	if entries[len(entries)-1].Date != today {
		t.Errorf("last entry = %s, want today %s", entries[len(entries)-1].Date, today)
	}
	for i := 1; i < len(entries); i++ {
		if !entries[i-1].Date.Before(entries[i].Date) {
			t.Fatalf("entries not strictly increasing at %d: %s then %s", i, entries[i-1].Date, entries[i].Date)
		}
	}
}

func TestCalendar_marks(t *testing.T) {
	today := date.MustParse("2025-06-30")
	selected := date.MustParse("2025-06-15")
	entries := Calendar(today, selected, NewLedger(), Goals{})

	for _, e := range entries {
		wantToday := e.Date == today
		wantSelected := e.Date == selected
		if e.IsToday != wantToday {
			t.Errorf("%s IsToday = %v, want %v", e.Date, e.IsToday, wantToday)
		}
		if e.IsSelected != wantSelected {
			t.Errorf("%s IsSelected = %v, want %v", e.Date, e.IsSelected, wantSelected)
		}
	}
}

func TestCalendar_windowAnchoredToToday(t *testing.T) {
	today := date.MustParse("2025-06-30")
	// A selection far outside the window must not shift it.
	selected := date.MustParse("2025-01-01")
	entries := Calendar(today, selected, NewLedger(), Goals{})

	if entries[len(entries)-1].Date != today {
		t.Errorf("last entry = %s, want today %s", entries[len(entries)-1].Date, today)
	}
	for _, e := range entries {
		if e.IsSelected {
			t.Errorf("%s marked selected, selection is outside the window", e.Date)
		}
	}
}

func TestDayStatus(t *testing.T) {
	var withGoal Goals
	withGoal.SetCalories(A(2000))

	testCases := []struct {
		name  string
		total Amount
		goals Goals
		want  DayStatus
	}{
		{name: "no goal", total: A(2500), goals: Goals{}, want: StatusNone},
		{name: "under goal", total: A(1500), goals: withGoal, want: StatusUnder},
		{name: "exactly on goal counts as under", total: A(2000), goals: withGoal, want: StatusUnder},
		{name: "over goal", total: A(2001), goals: withGoal, want: StatusOver},
		{name: "empty day with goal", total: A(0), goals: withGoal, want: StatusUnder},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := dayStatus(tc.total, tc.goals); got != tc.want {
				t.Errorf("dayStatus(%s) = %q, want %q", tc.total, got, tc.want)
			}
		})
	}
}

func TestCalendar_totals(t *testing.T) {
	today := date.MustParse("2025-06-30")
	l := NewLedger()
	l.Add(today, Draft{Name: "Lunch", Calories: A(800)})
	l.Add(today.Add(-1), Draft{Name: "Dinner", Calories: A(2500)})
	// Outside the window, must not appear.
	l.Add(today.Add(-30), Draft{Name: "Old", Calories: A(9999)})

	var g Goals
	g.SetCalories(A(2000))

	entries := Calendar(today, today, l, g)

	last := entries[len(entries)-1]
	if !last.Total.Equal(A(800)) || last.Status != StatusUnder {
		t.Errorf("today = %s/%q, want 800/under", last.Total, last.Status)
	}
	yesterday := entries[len(entries)-2]
	if !yesterday.Total.Equal(A(2500)) || yesterday.Status != StatusOver {
		t.Errorf("yesterday = %s/%q, want 2500/over", yesterday.Total, yesterday.Status)
	}
	for _, e := range entries {
		if e.Total.Equal(A(9999)) {
			t.Errorf("day %s outside the window leaked in", e.Date)
		}
	}
}

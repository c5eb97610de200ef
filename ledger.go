package tracker

import (
	"iter"
	"slices"
	"time"

	"github.com/DKushman/calorie-tracker/date"
)

// Ledger holds every logged meal, newest first.
//
// Newest-first is the list's natural order: a new record is inserted at the
// front, not appended, and queries preserve that order. There is exactly one
// logical writer, so no locking is needed.
type Ledger struct {
	meals  []MealRecord
	lastID int64
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{meals: make([]MealRecord, 0)}
}

// restoredLedger builds a ledger from persisted records, keeping their stored
// order and re-seeding the id watermark.
func restoredLedger(meals []MealRecord) *Ledger {
	l := &Ledger{meals: meals}
	for _, m := range meals {
		if m.ID > l.lastID {
			l.lastID = m.ID
		}
	}
	return l
}

// nextID returns a fresh unique id: milliseconds since epoch, bumped when two
// creations land on the same millisecond so ids stay strictly increasing.
func (l *Ledger) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}

// Add validates the draft and prepends a new record dated on day. The ledger
// is never partially updated: an invalid draft returns an error wrapping
// ErrValidation and leaves the ledger untouched.
func (l *Ledger) Add(day date.Date, d Draft) (MealRecord, error) {
	if err := d.validate(); err != nil {
		return MealRecord{}, err
	}
	m := MealRecord{
		ID:       l.nextID(),
		Name:     d.Name,
		Calories: d.Calories,
		Protein:  d.Protein,
		Carbs:    d.Carbs,
		Fat:      d.Fat,
		Image:    d.Image,
		Time:     timeLabel(),
		Date:     day,
	}
	l.meals = slices.Insert(l.meals, 0, m)
	return m, nil
}

// QuickAdd logs a calories-only record named "Quick Add" with zero macros.
// It refuses (no-op, ok=false) when calories is not strictly positive.
func (l *Ledger) QuickAdd(day date.Date, calories Amount) (MealRecord, bool) {
	if !calories.IsPositive() {
		return MealRecord{}, false
	}
	m, err := l.Add(day, Draft{Name: QuickAddName, Calories: calories})
	if err != nil {
		// The draft is built here and always valid.
		return MealRecord{}, false
	}
	return m, true
}

// Delete removes the record with the given id. Deleting an unknown id is an
// idempotent no-op, reported by the returned bool.
func (l *Ledger) Delete(id int64) bool {
	for i, m := range l.meals {
		if m.ID == id {
			l.meals = slices.Delete(l.meals, i, i+1)
			return true
		}
	}
	return false
}

// Len returns the number of records in the ledger.
func (l *Ledger) Len() int { return len(l.meals) }

// Meals returns an iterator over all records in ledger order (newest first).
func (l *Ledger) Meals() iter.Seq[MealRecord] {
	return func(yield func(MealRecord) bool) {
		for _, m := range l.meals {
			if !yield(m) {
				return
			}
		}
	}
}

// MealsOn returns an iterator over the records logged under the given day
// key, in ledger order. Matching is exact day-key equality.
func (l *Ledger) MealsOn(day date.Date) iter.Seq[MealRecord] {
	return func(yield func(MealRecord) bool) {
		for _, m := range l.meals {
			if m.Date != day {
				continue
			}
			if !yield(m) {
				return
			}
		}
	}
}

// TotalCaloriesOn sums calories over the given day key. It is independent of
// any selected day; the calendar rollup calls it for each day of its window.
func (l *Ledger) TotalCaloriesOn(day date.Date) Amount {
	var total Amount
	for m := range l.MealsOn(day) {
		total = total.Add(m.Calories)
	}
	return total
}

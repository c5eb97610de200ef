package tracker

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/DKushman/calorie-tracker/date"
	"github.com/DKushman/calorie-tracker/store"
)

// Persisted keys. One record per concern, each independently read/written.
const (
	KeyMeals        = "meals"
	KeyCalorieGoal  = "goal.calories"
	KeyProteinGoal  = "goal.protein"
	KeyCarbsGoal    = "goal.carbs"
	KeyFatGoal      = "goal.fat"
	KeySelectedDate = "selected-date"
)

// Session owns the in-memory state of one run: the ledger, the goals, and
// the selected-day cursor. It hydrates from the store exactly once, then
// write-through persists each piece of state on every mutation.
//
// While hydrating no write-back occurs, so a transient default can never
// overwrite a previously saved value. Once ready, persistence is
// fire-and-forget: a failed write is reported but never rolls back the
// in-memory mutation, and the in-memory state remains the source of truth.
type Session struct {
	store store.Store
	ready bool

	ledger   *Ledger
	goals    Goals
	selected date.Date
}

// OpenSession hydrates a session from the store and transitions it to ready.
//
// Each key is read and parsed independently: a corrupt meals blob must not
// prevent a stored goal from loading, and vice versa. A failed key logs and
// falls back to its default (empty ledger, unset goal, today).
func OpenSession(s store.Store) *Session {
	session := &Session{
		store:    s,
		ledger:   NewLedger(),
		selected: date.Today(),
	}
	session.hydrate()
	session.ready = true
	return session
}

func (s *Session) hydrate() {
	if raw, ok := s.read(KeyMeals); ok {
		ledger, err := DecodeMeals(strings.NewReader(raw))
		if err != nil {
			log.Printf("warning, could not load stored meals, starting empty: %v", err)
		} else {
			s.ledger = ledger
		}
	}

	s.hydrateGoal(KeyCalorieGoal, s.goals.SetCalories)
	s.hydrateGoal(KeyProteinGoal, s.goals.SetProtein)
	s.hydrateGoal(KeyCarbsGoal, s.goals.SetCarbs)
	s.hydrateGoal(KeyFatGoal, s.goals.SetFat)

	if raw, ok := s.read(KeySelectedDate); ok {
		d, err := date.Parse(raw)
		if err != nil {
			log.Printf("warning, could not load selected date, using today: %v", err)
		} else {
			s.selected = d
		}
	}
}

// read fetches one key, folding store errors into "absent" with a log line.
func (s *Session) read(key string) (string, bool) {
	raw, ok, err := s.store.Get(key)
	if err != nil {
		log.Printf("warning, could not read %q: %v", key, err)
		return "", false
	}
	return raw, ok
}

// hydrateGoal loads one goal value through its setter, so a stored zero or
// negative value is rejected the same way user input would be.
func (s *Session) hydrateGoal(key string, setter func(Amount) bool) {
	raw, ok := s.read(key)
	if !ok {
		return
	}
	v, err := ParseAmount(raw)
	if err != nil {
		log.Printf("warning, could not load %q, leaving unset: %v", key, err)
		return
	}
	if !setter(v) {
		log.Printf("warning, stored %q = %s is not a valid goal, leaving unset", key, v)
	}
}

// persist writes the value for one key. Before the session is ready it is a
// no-op: hydration must never be raced by a premature save.
func (s *Session) persist(key, value string) error {
	if !s.ready {
		return nil
	}
	if err := s.store.Set(key, value); err != nil {
		return fmt.Errorf("could not persist %q: %w", key, err)
	}
	return nil
}

func (s *Session) persistMeals() error {
	var sb strings.Builder
	if err := EncodeMeals(&sb, s.ledger); err != nil {
		return fmt.Errorf("could not encode meals: %w", err)
	}
	return s.persist(KeyMeals, sb.String())
}

// AddMeal logs a draft against the selected day. A validation error means
// nothing was mutated. Any other returned error is a persistence failure:
// the meal IS in the ledger, only the durable copy is behind.
func (s *Session) AddMeal(d Draft) (MealRecord, error) {
	m, err := s.ledger.Add(s.selected, d)
	if err != nil {
		return MealRecord{}, err
	}
	return m, s.persistMeals()
}

// QuickAdd logs a calories-only meal against the selected day. ok is false
// when calories is not strictly positive (nothing mutated).
func (s *Session) QuickAdd(calories Amount) (MealRecord, bool, error) {
	m, ok := s.ledger.QuickAdd(s.selected, calories)
	if !ok {
		return MealRecord{}, false, nil
	}
	return m, true, s.persistMeals()
}

// DeleteMeal removes the record with the given id; unknown ids are a no-op.
func (s *Session) DeleteMeal(id int64) error {
	if !s.ledger.Delete(id) {
		return nil // nothing changed, nothing to persist
	}
	return s.persistMeals()
}

// GoalUpdate is a partial goal assignment: zero-valued fields are left
// untouched, strictly positive ones are applied. Invalid values (zero or
// negative) can thus never reach the store.
type GoalUpdate struct {
	Calories Amount
	Protein  Amount
	Carbs    Amount
	Fat      Amount
}

// SetGoals applies a partial goal update. Every applied field persists its
// own key; failures are joined but never undo the in-memory change.
func (s *Session) SetGoals(u GoalUpdate) error {
	var errs error
	apply := func(key string, v Amount, setter func(Amount) bool) {
		if setter(v) {
			errs = errors.Join(errs, s.persist(key, v.String()))
		}
	}
	apply(KeyCalorieGoal, u.Calories, s.goals.SetCalories)
	apply(KeyProteinGoal, u.Protein, s.goals.SetProtein)
	apply(KeyCarbsGoal, u.Carbs, s.goals.SetCarbs)
	apply(KeyFatGoal, u.Fat, s.goals.SetFat)
	return errs
}

// SelectDate moves the selected-day cursor.
func (s *Session) SelectDate(d date.Date) error {
	s.selected = d
	return s.persist(KeySelectedDate, d.String())
}

// Navigate moves the selected-day cursor by a number of days (usually ±1).
func (s *Session) Navigate(days int) error {
	return s.SelectDate(s.selected.Add(days))
}

// Selected returns the day the ledger view is currently scoped to.
func (s *Session) Selected() date.Date { return s.selected }

// Goals returns the current goal set.
func (s *Session) Goals() Goals { return s.goals }

// Ledger exposes the underlying ledger for read-only queries.
func (s *Session) Ledger() *Ledger { return s.ledger }

// DayView aggregates consumption for the selected day.
func (s *Session) DayView() DayView { return Aggregate(s.ledger, s.selected, s.goals) }

// DayViewOn aggregates consumption for an arbitrary day.
func (s *Session) DayViewOn(day date.Date) DayView { return Aggregate(s.ledger, day, s.goals) }

// CalendarWindow builds the trailing 30-day rollup anchored to today.
func (s *Session) CalendarWindow() []DayEntry {
	return Calendar(date.Today(), s.selected, s.ledger, s.goals)
}

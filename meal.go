// Package tracker implements a personal nutrition ledger: meals logged
// against calendar days, daily nutrient goals, and the derived consumption
// figures the presentation layer renders.
package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/DKushman/calorie-tracker/date"
)

// ErrValidation marks a rejected mutation. A mutation that fails validation
// never touches the ledger.
var ErrValidation = errors.New("validation")

// QuickAddName is the fixed name of records created by QuickAdd.
const QuickAddName = "Quick Add"

// timeLabelFormat is the wall-clock label stamped on a record at creation,
// localized 24-hour HH:MM.
const timeLabelFormat = "15:04"

// MealRecord is one logged meal. Records are immutable once created, except
// for deletion; the Date key is fixed at creation to the day selected at
// logging time and is never recomputed.
type MealRecord struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Calories Amount    `json:"calories"`
	Protein  Amount    `json:"protein"`
	Carbs    Amount    `json:"carbs"`
	Fat      Amount    `json:"fat"`
	Image    string    `json:"image,omitempty"`
	Time     string    `json:"time"`
	Date     date.Date `json:"date"`
}

// Draft carries the user-supplied fields of a meal before it becomes a
// record. Name and Calories are the only required fields; absent macros
// default to zero. Image, when present, is an encoded data URL produced by
// the ingest package.
type Draft struct {
	Name     string
	Calories Amount
	Protein  Amount
	Carbs    Amount
	Fat      Amount
	Image    string
}

// validate checks the draft, returning a ErrValidation-wrapped error on the
// first problem found.
func (d Draft) validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: meal name is required", ErrValidation)
	}
	if d.Calories.IsNegative() {
		return fmt.Errorf("%w: calories must not be negative, got %s", ErrValidation, d.Calories)
	}
	if d.Protein.IsNegative() || d.Carbs.IsNegative() || d.Fat.IsNegative() {
		return fmt.Errorf("%w: macros must not be negative", ErrValidation)
	}
	return nil
}

// timeLabel returns the HH:MM label for the current wall clock.
func timeLabel() string { return time.Now().Format(timeLabelFormat) }

package tracker

import "github.com/DKushman/calorie-tracker/date"

// Nutrients groups one figure per tracked nutrient: kilocalories for
// Calories, grams for the macros.
type Nutrients struct {
	Calories Amount
	Protein  Amount
	Carbs    Amount
	Fat      Amount
}

// Progress groups the per-nutrient completion ratios, each clamped to
// [0,100]. A ratio is only meaningful when the matching goal is set.
type Progress struct {
	Calories Percent
	Protein  Percent
	Carbs    Percent
	Fat      Percent
}

// DayView is the derived aggregate for a single day. It is computed on
// demand and never persisted.
//
// Remaining carries the raw goal-minus-consumed value, which may be
// negative when the day ran over; display code floors it at zero with
// Amount.Floor. For a nutrient without a set goal there is nothing to
// subtract from, so Remaining reports the raw consumption itself.
type DayView struct {
	Date      date.Date
	Consumed  Nutrients
	Remaining Nutrients
	Percents  Progress
	Meals     []MealRecord
}

// remaining computes goal-consumed for a set goal, or falls back to the
// consumption itself when no goal exists.
func remaining(consumed, goal Amount, set bool) Amount {
	if !set {
		return consumed
	}
	return goal.Sub(consumed)
}

// Aggregate sums every nutrient over the meals logged under day and derives
// remaining and percentage figures from the goals. It is a pure function of
// its inputs.
func Aggregate(l *Ledger, day date.Date, g Goals) DayView {
	v := DayView{Date: day}
	for m := range l.MealsOn(day) {
		v.Consumed.Calories = v.Consumed.Calories.Add(m.Calories)
		v.Consumed.Protein = v.Consumed.Protein.Add(m.Protein)
		v.Consumed.Carbs = v.Consumed.Carbs.Add(m.Carbs)
		v.Consumed.Fat = v.Consumed.Fat.Add(m.Fat)
		v.Meals = append(v.Meals, m)
	}

	calGoal, calSet := g.Calories()
	proGoal, proSet := g.Protein()
	carbGoal, carbSet := g.Carbs()
	fatGoal, fatSet := g.Fat()

	v.Remaining.Calories = remaining(v.Consumed.Calories, calGoal, calSet)
	v.Remaining.Protein = remaining(v.Consumed.Protein, proGoal, proSet)
	v.Remaining.Carbs = remaining(v.Consumed.Carbs, carbGoal, carbSet)
	v.Remaining.Fat = remaining(v.Consumed.Fat, fatGoal, fatSet)

	if calSet {
		v.Percents.Calories = ratio(v.Consumed.Calories, calGoal)
	}
	if proSet {
		v.Percents.Protein = ratio(v.Consumed.Protein, proGoal)
	}
	if carbSet {
		v.Percents.Carbs = ratio(v.Consumed.Carbs, carbGoal)
	}
	if fatSet {
		v.Percents.Fat = ratio(v.Consumed.Fat, fatGoal)
	}
	return v
}

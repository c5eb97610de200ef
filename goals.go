package tracker

// Goals holds the daily nutrient targets. Every field is independently
// optional: absence means "untracked", never zero. A goal, once set, is
// strictly positive; setters silently ignore zero, negative, or otherwise
// invalid values and keep the prior state.
//
// Internally an unset goal is the zero Amount, which is safe because no valid
// goal can ever be zero.
type Goals struct {
	calories Amount
	protein  Amount
	carbs    Amount
	fat      Amount
}

// set installs v as the new value when strictly positive, otherwise keeps old.
func set(old, v Amount) (Amount, bool) {
	if !v.IsPositive() {
		return old, false
	}
	return v, true
}

// SetCalories sets the daily calorie goal. It reports false, without storing
// anything, when v is not strictly positive.
func (g *Goals) SetCalories(v Amount) (ok bool) { g.calories, ok = set(g.calories, v); return }

// SetProtein sets the daily protein goal in grams.
func (g *Goals) SetProtein(v Amount) (ok bool) { g.protein, ok = set(g.protein, v); return }

// SetCarbs sets the daily carbohydrate goal in grams.
func (g *Goals) SetCarbs(v Amount) (ok bool) { g.carbs, ok = set(g.carbs, v); return }

// SetFat sets the daily fat goal in grams.
func (g *Goals) SetFat(v Amount) (ok bool) { g.fat, ok = set(g.fat, v); return }

// Calories returns the calorie goal and whether one is set. The calorie goal
// gates all progress rendering and the calendar over/under status.
func (g Goals) Calories() (Amount, bool) { return g.calories, g.calories.IsPositive() }

// Protein returns the protein goal and whether one is set.
func (g Goals) Protein() (Amount, bool) { return g.protein, g.protein.IsPositive() }

// Carbs returns the carbs goal and whether one is set.
func (g Goals) Carbs() (Amount, bool) { return g.carbs, g.carbs.IsPositive() }

// Fat returns the fat goal and whether one is set.
func (g Goals) Fat() (Amount, bool) { return g.fat, g.fat.IsPositive() }

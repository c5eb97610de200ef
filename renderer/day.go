// Package renderer builds the markdown reports the CLI prints. It is pure
// presentation: every function maps an already-computed view to a string.
package renderer

import (
	"bytes"
	"fmt"

	tracker "github.com/DKushman/calorie-tracker"
	md "github.com/nao1215/markdown"
)

// DayMarkdown renders the day view: the calorie progress summary, the macro
// progress lines, and the list of logged meals, newest first.
//
// Without a calorie goal the progress section is suppressed entirely and a
// hint to set one is shown instead.
func DayMarkdown(v *tracker.DayView, goals tracker.Goals) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Meals on %s", v.Date))

	if _, ok := goals.Calories(); ok {
		doc.Table(progressTable(v, goals))
	} else {
		doc.PlainText("No daily calorie goal set. Set one with `caltrack goals -calories <kcal>`.")
	}

	doc.H2("Logged Meals")
	if len(v.Meals) == 0 {
		doc.PlainText("No meals logged for this day yet.")
	} else {
		doc.Table(mealsTable(v.Meals))
	}

	return doc.String()
}

// progressTable builds one row per tracked nutrient: consumed, remaining
// (floored at zero for display) and the clamped completion percentage.
func progressTable(v *tracker.DayView, goals tracker.Goals) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Nutrient", "Goal", "Consumed", "Left", "Progress"},
	}

	row := func(name string, goal tracker.Amount, set bool, consumed, remaining tracker.Amount, p tracker.Percent, unit string) {
		if !set {
			return
		}
		table.Rows = append(table.Rows, []string{
			name,
			goal.String() + unit,
			consumed.String() + unit,
			remaining.Floor().String() + unit,
			p.String(),
		})
	}

	calGoal, calSet := goals.Calories()
	proGoal, proSet := goals.Protein()
	carbGoal, carbSet := goals.Carbs()
	fatGoal, fatSet := goals.Fat()

	row("Calories", calGoal, calSet, v.Consumed.Calories, v.Remaining.Calories, v.Percents.Calories, " kcal")
	row("Protein", proGoal, proSet, v.Consumed.Protein, v.Remaining.Protein, v.Percents.Protein, "g")
	row("Carbs", carbGoal, carbSet, v.Consumed.Carbs, v.Remaining.Carbs, v.Percents.Carbs, "g")
	row("Fat", fatGoal, fatSet, v.Consumed.Fat, v.Remaining.Fat, v.Percents.Fat, "g")

	return table
}

func mealsTable(meals []tracker.MealRecord) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"ID", "Time", "Name", "Calories", "Protein", "Carbs", "Fat"},
	}
	for _, m := range meals {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", m.ID),
			m.Time,
			m.Name,
			m.Calories.String(),
			m.Protein.String(),
			m.Carbs.String(),
			m.Fat.String(),
		})
	}
	return table
}

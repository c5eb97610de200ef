package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tracker "github.com/DKushman/calorie-tracker"
	"github.com/DKushman/calorie-tracker/renderer"
	"github.com/google/subcommands"
)

// goalsCmd holds the flags for the 'goals' subcommand.
type goalsCmd struct {
	calories string
	protein  string
	carbs    string
	fat      string
}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "show or set the daily nutrient goals" }
func (*goalsCmd) Usage() string {
	return `caltrack goals [-calories <kcal>] [-protein <g>] [-carbs <g>] [-fat <g>]

  Sets the daily goals for the given nutrients. Goals must be positive,
  anything else leaves the goal untouched. Without flags, shows the goals.
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.calories, "calories", "", "Daily calorie goal in kcal")
	f.StringVar(&c.protein, "protein", "", "Daily protein goal in grams")
	f.StringVar(&c.carbs, "carbs", "", "Daily carbohydrate goal in grams")
	f.StringVar(&c.fat, "fat", "", "Daily fat goal in grams")
}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, db, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	update := tracker.GoalUpdate{
		Calories: goal(c.calories, "calories"),
		Protein:  goal(c.protein, "protein"),
		Carbs:    goal(c.carbs, "carbs"),
		Fat:      goal(c.fat, "fat"),
	}

	if err := session.SetGoals(update); err != nil {
		return warnOrFail(err)
	}

	printMarkdown(renderer.GoalsMarkdown(session.Goals()))
	return subcommands.ExitSuccess
}

// goal parses a goal flag. Zero value means the flag was absent or malformed
// and the goal is left untouched.
func goal(s, name string) tracker.Amount {
	if s == "" {
		return tracker.Amount{}
	}
	a, err := tracker.ParseAmount(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid -%s %q, ignored\n", name, s)
		return tracker.Amount{}
	}
	return a
}

package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	tracker "github.com/DKushman/calorie-tracker"
	"github.com/DKushman/calorie-tracker/ingest"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	name     string
	calories string
	protein  string
	carbs    string
	fat      string
	image    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "log a meal on the selected day" }
func (*addCmd) Usage() string {
	return `caltrack add -name <name> -calories <kcal> [-protein <g>] [-carbs <g>] [-fat <g>] [-image <file>]

  Logs a meal on the selected day. Name and calories are required, macro
  grams default to 0. An image file is compressed before it is attached.

Usage Examples:
$ caltrack add -name "Chicken Salad" -calories 450 -protein 35
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Meal name (required)")
	f.StringVar(&c.calories, "calories", "", "Kilocalories (required)")
	f.StringVar(&c.protein, "protein", "", "Protein grams")
	f.StringVar(&c.carbs, "carbs", "", "Carbohydrate grams")
	f.StringVar(&c.fat, "fat", "", "Fat grams")
	f.StringVar(&c.image, "image", "", "Path to a photo of the meal")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	calories, err := tracker.ParseAmount(c.calories)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -calories %q: %v\n", c.calories, err)
		return subcommands.ExitUsageError
	}

	draft := tracker.Draft{
		Name:     c.name,
		Calories: calories,
		Protein:  macro(c.protein),
		Carbs:    macro(c.carbs),
		Fat:      macro(c.fat),
	}

	if c.image != "" {
		img, err := ingest.File(c.image)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading image %q: %v\n", c.image, err)
			return subcommands.ExitFailure
		}
		draft.Image = img
	}

	session, db, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	m, err := session.AddMeal(draft)
	if err != nil {
		if errors.Is(err, tracker.ErrValidation) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		return warnOrFail(err)
	}

	fmt.Printf("Logged %q (%s kcal) on %s with id %d\n", m.Name, m.Calories, m.Date, m.ID)
	return subcommands.ExitSuccess
}

// macro parses an optional nutrient flag. An absent or malformed value counts
// as 0, only calories are strict.
func macro(s string) tracker.Amount {
	if s == "" {
		return tracker.Amount{}
	}
	a, err := tracker.ParseAmount(s)
	if err != nil {
		return tracker.Amount{}
	}
	return a
}

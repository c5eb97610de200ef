package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/DKushman/calorie-tracker/date"
	"github.com/DKushman/calorie-tracker/renderer"
	"github.com/google/subcommands"
)

// dayCmd holds the flags for the 'day' subcommand.
type dayCmd struct {
	date string
}

func (*dayCmd) Name() string     { return "day" }
func (*dayCmd) Synopsis() string { return "display meals and goal progress for a day" }
func (*dayCmd) Usage() string {
	return `caltrack day [-d <date>]

  Displays the meals logged on a day, the nutrient totals, and the progress
  against the daily goals. Defaults to the selected day.
`
}

func (c *dayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day to report on, YYYY-MM-DD (defaults to the selected day)")
}

func (c *dayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, db, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	day := session.Selected()
	if c.date != "" {
		day, err = date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	view := session.DayViewOn(day)
	printMarkdown(renderer.DayMarkdown(&view, session.Goals()))
	return subcommands.ExitSuccess
}

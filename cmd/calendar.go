package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/DKushman/calorie-tracker/renderer"
	"github.com/google/subcommands"
)

type calendarCmd struct{}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "display the last 30 days at a glance" }
func (*calendarCmd) Usage() string {
	return `caltrack calendar

  Displays the trailing 30 days ending today, with the calorie total and the
  over/under goal status of each day.
`
}

func (*calendarCmd) SetFlags(f *flag.FlagSet) {}

func (c *calendarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, db, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	printMarkdown(renderer.CalendarMarkdown(session.CalendarWindow()))
	return subcommands.ExitSuccess
}

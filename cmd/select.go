package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/DKushman/calorie-tracker/date"
	"github.com/google/subcommands"
)

// selectCmd holds the flags for the 'select' subcommand.
type selectCmd struct {
	date string
	next bool
	prev bool
}

func (*selectCmd) Name() string     { return "select" }
func (*selectCmd) Synopsis() string { return "change the selected day" }
func (*selectCmd) Usage() string {
	return `caltrack select [-d <date> | -next | -prev]

  Changes the day that add, quick and day operate on. The selection is
  remembered between runs. Without flags, prints the selected day.
`
}

func (c *selectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day to select, YYYY-MM-DD")
	f.BoolVar(&c.next, "next", false, "Select the day after the current selection")
	f.BoolVar(&c.prev, "prev", false, "Select the day before the current selection")
}

func (c *selectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, db, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	switch {
	case c.date != "":
		day, err := date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		err = session.SelectDate(day)
		if err != nil {
			return warnOrFail(err)
		}
	case c.next:
		if err := session.Navigate(1); err != nil {
			return warnOrFail(err)
		}
	case c.prev:
		if err := session.Navigate(-1); err != nil {
			return warnOrFail(err)
		}
	}

	fmt.Printf("Selected day: %s\n", session.Selected())
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tracker "github.com/DKushman/calorie-tracker"
	"github.com/google/subcommands"
)

type quickCmd struct {
	calories string
}

func (*quickCmd) Name() string     { return "quick" }
func (*quickCmd) Synopsis() string { return "log calories without naming a meal" }
func (*quickCmd) Usage() string {
	return `caltrack quick -calories <kcal>

  Logs a calories-only entry named "Quick Add" on the selected day.
`
}

func (c *quickCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.calories, "calories", "", "Kilocalories (required, positive)")
}

func (c *quickCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	calories, err := tracker.ParseAmount(c.calories)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -calories %q: %v\n", c.calories, err)
		return subcommands.ExitUsageError
	}

	session, db, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	m, ok, err := session.QuickAdd(calories)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: -calories must be positive, got %s\n", calories)
		return subcommands.ExitUsageError
	}
	if err != nil {
		return warnOrFail(err)
	}

	fmt.Printf("Logged %s kcal on %s with id %d\n", m.Calories, m.Date, m.ID)
	return subcommands.ExitSuccess
}

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

// lookupCmd holds the flags for the 'lookup' subcommand.
type lookupCmd struct {
	grams float64
	log   bool
}

func (*lookupCmd) Name() string     { return "lookup" }
func (*lookupCmd) Synopsis() string { return "look up a food product by barcode" }
func (*lookupCmd) Usage() string {
	return `caltrack lookup [-grams <g>] [-log] <barcode>

  Looks up a product in the Open Food Facts database and displays its
  nutrition facts per 100g. With -log, logs it as a meal of the given
  portion on the selected day.

Usage Examples:
$ caltrack lookup 3017620422003
$ caltrack lookup -grams 30 -log 3017620422003
`
}

func (c *lookupCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.grams, "grams", 100, "Portion size in grams")
	f.BoolVar(&c.log, "log", false, "Log the portion as a meal on the selected day")
}

func (c *lookupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: lookup takes exactly one barcode")
		return subcommands.ExitUsageError
	}

	product, err := tracker.LookupProduct(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error looking up %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ProductMarkdown(product))

	if !c.log {
		return subcommands.ExitSuccess
	}

	session, db, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	m, err := session.AddMeal(product.Draft(c.grams))
	if err != nil {
		return warnOrFail(err)
	}
	fmt.Printf("Logged %q (%s kcal) on %s with id %d\n", m.Name, m.Calories, m.Date, m.ID)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	tracker "github.com/DKushman/calorie-tracker"
	"github.com/DKushman/calorie-tracker/store"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the stored meals in a canonical form"
}
func (*fmtCmd) Usage() string {
	return `caltrack fmt

  Validates the stored meal records and writes them back in a canonical
  JSONL form. Fails without touching the store when any record is invalid.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := store.Open(*storeFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open store %q: %v\n", *storeFile, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	raw, ok, err := db.Get(tracker.KeyMeals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading meals: %v\n", err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "Warning: no meals to format.")
		return subcommands.ExitSuccess
	}

	ledger, err := tracker.DecodeMeals(strings.NewReader(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: meals do not validate: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	if err := tracker.EncodeMeals(&b, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding meals: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := db.Set(tracker.KeyMeals, b.String()); err != nil {
		return warnOrFail(err)
	}

	fmt.Printf("Formatted %d meal records.\n", ledger.Len())
	return subcommands.ExitSuccess
}

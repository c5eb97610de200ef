package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a logged meal by id" }
func (*rmCmd) Usage() string {
	return `caltrack rm <id>

  Deletes the meal with the given id. Deleting an unknown id is not an error.
`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: rm takes exactly one meal id")
		return subcommands.ExitUsageError
	}
	id, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid id %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}

	session, db, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	if err := session.DeleteMeal(id); err != nil {
		return warnOrFail(err)
	}
	fmt.Printf("Deleted meal %d\n", id)
	return subcommands.ExitSuccess
}

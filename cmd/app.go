// Package cmd implements the CLI application to manage a meal ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tracker "github.com/DKushman/calorie-tracker"
	"github.com/DKushman/calorie-tracker/store"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application.
// A main package registers them all and Execute() the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&quickCmd{},
	&rmCmd{},
	&dayCmd{},
	&calendarCmd{},
	&selectCmd{},
	&goalsCmd{},
	&lookupCmd{},
	&fmtCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store-file", defaultStoreFile(), "Path to the tracker database file")

func defaultStoreFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "caltrack.db"
	}
	return home + "/.caltrack.db"
}

// openSession is the central function to open the tracker database and load
// the session from it. Callers must Close the returned store.
func openSession() (*tracker.Session, *store.Sqlite, error) {
	db, err := store.Open(*storeFile)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open store %q: %w", *storeFile, err)
	}
	return tracker.OpenSession(db), db, nil
}

// warnOrFail decides the exit status of a command whose mutation succeeded in
// memory but may have failed to persist. A full store is reported as a warning,
// the meal is still part of the session for this run.
func warnOrFail(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	if errors.Is(err, store.ErrQuotaExceeded) {
		fmt.Fprintf(os.Stderr, "Warning: %v. The change is not saved.\n", err)
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(os.Stderr, "Error saving: %v\n", err)
	return subcommands.ExitFailure
}

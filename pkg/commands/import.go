package commands

import (
	"database/sql"
	"fmt"
	"os"

	"pairplan/pkg/config"
	"pairplan/pkg/plan"
	"pairplan/pkg/store"
)

// HandleImportCommand processes --import commands. The file must hold a
// plan snapshot record; anything else leaves the stored plan untouched.
func HandleImportCommand(db *sql.DB, cfg config.Config, filename string) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	state, ok := plan.UnmarshalSnapshot(content, DefaultState(cfg))
	if !ok {
		fmt.Printf("%s is not a pairplan snapshot; keeping the current plan\n", filename)
		os.Exit(1)
	}

	if err := store.Save(db, cfg.StoreDriver, state); err != nil {
		fmt.Printf("Error saving plan: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d activities from %s\n", len(state.Items), filename)
}

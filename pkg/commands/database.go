package commands

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"pairplan/pkg/config"
	"pairplan/pkg/store"
)

// HandleDatabaseCommand processes --database commands
func HandleDatabaseCommand(db *sql.DB, cfg config.Config, cmd, status string, skipConfirm bool) {
	if cmd != "purge" {
		fmt.Printf("Unknown database command: %s\n", cmd)
		os.Exit(1)
	}

	// Show confirmation unless --yes flag is used
	if !skipConfirm {
		target := "all activities"
		if status != "" {
			target = fmt.Sprintf("all %s activities", status)
		}
		fmt.Printf("Are you sure you want to delete %s? (y/N): ", target)
		var response string
		fmt.Scanln(&response)
		if strings.ToLower(response) != "y" && strings.ToLower(response) != "yes" {
			fmt.Println("Operation cancelled.")
			return
		}
	}

	deleted, err := store.Purge(db, cfg.StoreDriver, status)
	if err != nil {
		fmt.Printf("Error purging activities: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully deleted %d activities\n", deleted)
}

package commands

import (
	"database/sql"
	"fmt"
	"os"

	"pairplan/pkg/config"
	"pairplan/pkg/plan"
	"pairplan/pkg/store"
)

// HandleSyncCommand processes the --sync command: it runs the frictionless
// sync allocator headless and prints what landed on the timeline.
func HandleSyncCommand(db *sql.DB, cfg config.Config) {
	state := mustLoadState(db, cfg)

	before := countByStatus(state, plan.StatusApproved)
	state, _ = plan.Allocate(state, pairOf(cfg))
	after := countByStatus(state, plan.StatusApproved)

	if err := store.Save(db, cfg.StoreDriver, state); err != nil {
		fmt.Printf("Error saving plan: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Frictionless sync complete: %d activities on the plan (was %d)\n", after, before)
	for _, p := range plan.PackState(state) {
		fmt.Printf("  %s-%s  %s\n", p.Item.StartTime, p.Item.EndTime, p.Item.Name)
	}
}

func countByStatus(state plan.State, status plan.Status) int {
	n := 0
	for _, it := range state.Items {
		if it.Status == status {
			n++
		}
	}
	return n
}

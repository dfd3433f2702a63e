package commands

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"pairplan/pkg/config"
	"pairplan/pkg/plan"
	"pairplan/pkg/store"
)

// AddItemArgs carries the --add flag group.
type AddItemArgs struct {
	Name     string
	From     string
	To       string
	Location string
	Energy   string
	Solo     bool
	Priority bool
}

// HandleAddItem processes the --add command
func HandleAddItem(db *sql.DB, cfg config.Config, args AddItemArgs) {
	state := mustLoadState(db, cfg)

	energy := plan.EnergyLow
	if strings.EqualFold(args.Energy, string(plan.EnergyHigh)) {
		energy = plan.EnergyHigh
	}

	state, item, err := state.Create(plan.Candidate{
		Name:      args.Name,
		Location:  args.Location,
		StartTime: args.From,
		EndTime:   args.To,
		Energy:    energy,
		Solo:      args.Solo,
		Priority:  args.Priority,
	})
	if err != nil {
		fmt.Printf("Error adding activity: %v\n", err)
		os.Exit(1)
	}

	if err := store.Save(db, cfg.StoreDriver, state); err != nil {
		fmt.Printf("Error saving plan: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Added %q (%s-%s, %s)\n", item.Name, item.StartTime, item.EndTime, item.Status)
}

package commands

import (
	"database/sql"
	"fmt"
	"os"

	"pairplan/pkg/config"
	"pairplan/pkg/plan"
	"pairplan/pkg/store"
)

// pairOf builds the core's participant pair from configuration.
func pairOf(cfg config.Config) plan.Pair {
	return plan.Pair{
		A: plan.Participant(cfg.ParticipantA),
		B: plan.Participant(cfg.ParticipantB),
	}
}

// DefaultState builds the state a fresh installation starts from.
func DefaultState(cfg config.Config) plan.State {
	return plan.State{
		DayStart:    cfg.DayStart,
		DayEnd:      cfg.DayEnd,
		EnergyMode:  plan.Mode(cfg.EnergyMode),
		CurrentUser: plan.Participant(cfg.CurrentUser),
	}
}

// mustLoadState loads the plan or exits; one-shot commands have no UI to
// report into.
func mustLoadState(db *sql.DB, cfg config.Config) plan.State {
	state, err := store.Load(db, cfg.StoreDriver, DefaultState(cfg))
	if err != nil {
		fmt.Printf("Error loading plan: %v\n", err)
		os.Exit(1)
	}
	return state
}

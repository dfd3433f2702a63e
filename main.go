package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pairplan/pkg/cli"
	"pairplan/pkg/commands"
	"pairplan/pkg/config"
	"pairplan/pkg/store"
	"pairplan/pkg/ui"
	"pairplan/pkg/utils"
)

func main() {
	// Parse command line arguments
	args := cli.ParseArgs()

	utils.InitLogger(args.Verbose)
	defer utils.CloseLogger()

	// Load configuration
	cfg, styles, err := config.Load(args.ConfigPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		os.Exit(1)
	}

	// Connect to the plan store
	db, err := store.Open(cfg.StoreDriver, cfg.Database)
	if err != nil {
		fmt.Printf("Error connecting to store: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := store.EnsureSchema(db); err != nil {
		fmt.Printf("Error creating schema: %v\n", err)
		os.Exit(1)
	}

	// One-shot CLI commands run without the TUI
	if cli.HandleCommands(db, cfg, args) {
		return
	}

	// Load the plan; unreadable state degrades to a fresh default
	state, err := store.Load(db, cfg.StoreDriver, commands.DefaultState(cfg))
	if err != nil {
		fmt.Printf("Error loading plan: %v\n", err)
		os.Exit(1)
	}

	// Create and run the Bubble Tea program
	p := tea.NewProgram(ui.NewModel(db, cfg, styles, state), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

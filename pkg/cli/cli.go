package cli

import (
	"database/sql"
	"flag"

	"pairplan/pkg/commands"
	"pairplan/pkg/config"
)

// Args represents parsed command line arguments
type Args struct {
	ConfigPath string
	Verbose    bool

	// Item operations
	AddItem      string
	FromFlag     string
	ToFlag       string
	LocationFlag string
	EnergyFlag   string
	SoloFlag     bool
	PriorityFlag bool

	// Allocator
	SyncFlag bool

	// Database operations
	DatabaseCmd string
	StatusFlag  string
	YesFlag     bool

	// Import/Export operations
	ImportFile string
	ExportFile string
	TypeFlag   string
}

// ParseArgs parses command line arguments and returns Args struct
func ParseArgs() *Args {
	args := &Args{}

	// Define command line flags
	flag.StringVar(&args.ConfigPath, "config", "", "Path to configuration file")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")

	// Item operations
	flag.StringVar(&args.AddItem, "add", "", "Add a new activity with the given name")
	flag.StringVar(&args.FromFlag, "from", "", "Activity start time (HH:MM)")
	flag.StringVar(&args.ToFlag, "to", "", "Activity end time (HH:MM)")
	flag.StringVar(&args.LocationFlag, "location", "", "Activity location")
	flag.StringVar(&args.EnergyFlag, "energy", "", "Energy level (high, low)")
	flag.BoolVar(&args.SoloFlag, "solo", false, "Mark the activity as solo")
	flag.BoolVar(&args.PriorityFlag, "priority", false, "Pin the activity at its declared time")

	// Allocator
	flag.BoolVar(&args.SyncFlag, "sync", false, "Run a frictionless sync and exit")

	// Database operations
	flag.StringVar(&args.DatabaseCmd, "database", "", "Database command (purge)")
	flag.StringVar(&args.StatusFlag, "status", "", "Restrict purge to one status")
	flag.BoolVar(&args.YesFlag, "yes", false, "Skip confirmation")

	// Import/Export operations
	flag.StringVar(&args.ImportFile, "import", "", "Import a plan snapshot from file")
	flag.StringVar(&args.ExportFile, "export", "", "Export the plan to file")
	flag.StringVar(&args.TypeFlag, "type", "json", "Export file type (json, txt)")

	flag.Parse()
	return args
}

// HandleCommands processes CLI commands and returns true if a command was handled
func HandleCommands(db *sql.DB, cfg config.Config, args *Args) bool {
	if args.AddItem != "" {
		commands.HandleAddItem(db, cfg, commands.AddItemArgs{
			Name:     args.AddItem,
			From:     args.FromFlag,
			To:       args.ToFlag,
			Location: args.LocationFlag,
			Energy:   args.EnergyFlag,
			Solo:     args.SoloFlag,
			Priority: args.PriorityFlag,
		})
		return true
	}

	if args.SyncFlag {
		commands.HandleSyncCommand(db, cfg)
		return true
	}

	if args.DatabaseCmd != "" {
		commands.HandleDatabaseCommand(db, cfg, args.DatabaseCmd, args.StatusFlag, args.YesFlag)
		return true
	}

	if args.ImportFile != "" {
		commands.HandleImportCommand(db, cfg, args.ImportFile)
		return true
	}

	if args.ExportFile != "" {
		commands.HandleExportCommand(db, cfg, args.ExportFile, args.TypeFlag)
		return true
	}

	// No CLI command was handled
	return false
}

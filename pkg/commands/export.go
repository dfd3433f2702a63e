package commands

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pairplan/pkg/config"
	"pairplan/pkg/plan"
	"pairplan/pkg/timeline"
)

// HandleExportCommand processes --export commands
func HandleExportCommand(db *sql.DB, cfg config.Config, filename, exportType string) {
	state := mustLoadState(db, cfg)

	// Ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		os.Exit(1)
	}

	var content []byte
	var err error

	switch exportType {
	case "json":
		content, err = plan.MarshalSnapshot(state)
		if err != nil {
			fmt.Printf("Error marshaling plan to JSON: %v\n", err)
			os.Exit(1)
		}
	case "txt":
		content = []byte(renderScheduleText(state))
	default:
		fmt.Printf("Unknown export type: %s\n", exportType)
		os.Exit(1)
	}

	if err := os.WriteFile(filename, content, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully exported %d activities to %s\n", len(state.Items), filename)
}

// renderScheduleText dumps the packed timeline plus the remaining backlog
// as a readable text file.
func renderScheduleText(state plan.State) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("Plan %s-%s (%s mode):", state.DayStart, state.DayEnd, state.EnergyMode))
	for _, p := range plan.PackState(state) {
		marker := " "
		if p.Item.Status == plan.StatusFixed {
			marker = "*"
		}
		line := fmt.Sprintf("- [%s] %s-%s %s", marker,
			timeline.MinutesToTime(p.Start), timeline.MinutesToTime(p.End), p.Item.Name)
		if p.Item.Location != "" {
			line += " @ " + p.Item.Location
		}
		lines = append(lines, line)
	}

	var backlog []string
	for _, it := range state.Items {
		if it.Status == plan.StatusBacklog {
			backlog = append(backlog, fmt.Sprintf("- %s (%s-%s)", it.Name, it.StartTime, it.EndTime))
		}
	}
	if len(backlog) > 0 {
		lines = append(lines, "", "Backlog:")
		lines = append(lines, backlog...)
	}

	return strings.Join(lines, "\n") + "\n"
}

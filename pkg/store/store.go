package store

import (
	"database/sql"
	"strings"

	"pairplan/pkg/plan"
	"pairplan/pkg/utils"
)

// Load reads the whole plan state from the database. A missing day config
// row or rows that no longer scan are degraded, not fatal: the provided
// defaults fill the holes so the app always starts with a usable state.
func Load(db *sql.DB, driver string, defaults plan.State) (plan.State, error) {
	state := defaults
	state.Items = nil

	rows, err := db.Query(rebind(driver, `
		SELECT id, name, location, start_time, end_time, status, energy, solo, approved_by, created_at
		FROM items
		ORDER BY created_at ASC
	`))
	if err != nil {
		return state, err
	}
	defer rows.Close()

	for rows.Next() {
		var item plan.Item
		var approvedBy string

		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Location,
			&item.StartTime,
			&item.EndTime,
			&item.Status,
			&item.Energy,
			&item.Solo,
			&approvedBy,
			&item.CreatedAt,
		); err != nil {
			utils.Log("Skipping unreadable item row: %v", err)
			continue
		}

		item.ApprovedBy = splitParticipants(approvedBy)
		state.Items = append(state.Items, item)
	}
	if err := rows.Err(); err != nil {
		return state, err
	}

	row := db.QueryRow(rebind(driver, `
		SELECT day_start, day_end, energy_mode, current_user_id
		FROM day_config WHERE id = ?
	`), 1)

	var dayStart, dayEnd, mode, current string
	switch err := row.Scan(&dayStart, &dayEnd, &mode, &current); err {
	case nil:
		state.DayStart = dayStart
		state.DayEnd = dayEnd
		state.EnergyMode = plan.Mode(mode)
		state.CurrentUser = plan.Participant(current)
	case sql.ErrNoRows:
		// First run: keep the defaults.
	default:
		utils.Log("Day config unreadable, using defaults: %v", err)
	}

	utils.Log("Loaded %d items from store", len(state.Items))
	return state, nil
}

// Save rewrites the database to match the given state. The plan is one
// small aggregate, so a full rewrite in one transaction is both simple and
// atomic; partial state is never visible to another reader.
func Save(db *sql.DB, driver string, state plan.State) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM items`); err != nil {
		return err
	}
	insert := rebind(driver, `
		INSERT INTO items (id, name, location, start_time, end_time, status, energy, solo, approved_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	for _, item := range state.Items {
		if _, err := tx.Exec(insert,
			item.ID,
			item.Name,
			item.Location,
			item.StartTime,
			item.EndTime,
			string(item.Status),
			string(item.Energy),
			item.Solo,
			joinParticipants(item.ApprovedBy),
			item.CreatedAt,
		); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`DELETE FROM day_config`); err != nil {
		return err
	}
	if _, err := tx.Exec(rebind(driver, `
		INSERT INTO day_config (id, day_start, day_end, energy_mode, current_user_id)
		VALUES (?, ?, ?, ?, ?)
	`), 1, state.DayStart, state.DayEnd, string(state.EnergyMode), string(state.CurrentUser)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	utils.Log("Saved %d items to store", len(state.Items))
	return nil
}

// Purge deletes items, optionally restricted to one status. It returns the
// number of rows removed.
func Purge(db *sql.DB, driver string, status string) (int64, error) {
	query := `DELETE FROM items`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	result, err := db.Exec(rebind(driver, query), args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Approvals are stored as a comma-separated list; the set never holds more
// than the two participant ids.
func joinParticipants(ps []plan.Participant) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = string(p)
	}
	return strings.Join(parts, ",")
}

func splitParticipants(s string) []plan.Participant {
	if s == "" {
		return nil
	}
	var ps []plan.Participant
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			ps = append(ps, plan.Participant(part))
		}
	}
	return ps
}

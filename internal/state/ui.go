package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/kemureco/internal/db"
)

// UIState is the part of the TUI restored on the next start.
type UIState struct {
	Screen        string // "mixes" or "flavors"
	SelectedMixID *int64
	TagFilter     string
	FlavorQuery   string
	FlavorSort    string // "name", "brand" or "popular"
}

func getUIState(db *sql.DB) (*UIState, error) {
	row := db.QueryRow(`
		SELECT screen, selected_mix_id, tag_filter, flavor_query, flavor_sort
		FROM ui_state WHERE id = 1
	`)

	var state UIState
	var selectedMixID sql.NullInt64
	var tagFilter, flavorQuery, flavorSort sql.NullString

	err := row.Scan(&state.Screen, &selectedMixID, &tagFilter, &flavorQuery, &flavorSort)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.SelectedMixID = dbutil.NullInt64ToPtr(selectedMixID)
	state.TagFilter = dbutil.NullStringValue(tagFilter)
	state.FlavorQuery = dbutil.NullStringValue(flavorQuery)
	state.FlavorSort = dbutil.NullStringValue(flavorSort)

	return &state, nil
}

func saveUIState(db *sql.DB, state UIState) error {
	_, err := db.Exec(`
		INSERT INTO ui_state (id, screen, selected_mix_id, tag_filter, flavor_query, flavor_sort)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			screen = excluded.screen,
			selected_mix_id = excluded.selected_mix_id,
			tag_filter = excluded.tag_filter,
			flavor_query = excluded.flavor_query,
			flavor_sort = excluded.flavor_sort
	`, state.Screen, state.SelectedMixID,
		dbutil.StringToNull(state.TagFilter),
		dbutil.StringToNull(state.FlavorQuery),
		dbutil.StringToNull(state.FlavorSort))

	return err
}

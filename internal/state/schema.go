package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS ui_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			screen TEXT NOT NULL DEFAULT 'mixes',
			selected_mix_id INTEGER,
			tag_filter TEXT,
			flavor_query TEXT,
			flavor_sort TEXT
		);

		CREATE TABLE IF NOT EXISTS brands (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			jp_available INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS flavors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			brand_id INTEGER NOT NULL REFERENCES brands(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			UNIQUE(brand_id, name)
		);

		CREATE TABLE IF NOT EXISTS flavor_tags (
			flavor_id INTEGER NOT NULL REFERENCES flavors(id) ON DELETE CASCADE,
			tag TEXT NOT NULL,
			PRIMARY KEY (flavor_id, tag)
		);

		CREATE INDEX IF NOT EXISTS idx_flavor_tags_tag ON flavor_tags(tag);

		CREATE TABLE IF NOT EXISTS mixes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			created_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_mixes_created_at ON mixes(created_at DESC);

		CREATE TABLE IF NOT EXISTS mix_components (
			mix_id INTEGER NOT NULL REFERENCES mixes(id) ON DELETE CASCADE,
			flavor_id INTEGER NOT NULL REFERENCES flavors(id),
			ratio_percent INTEGER NOT NULL CHECK (ratio_percent BETWEEN 0 AND 100),
			layer_order INTEGER NOT NULL,
			PRIMARY KEY (mix_id, layer_order)
		);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}

package state

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	if err := configure(db); err != nil {
		db.Close()
		t.Fatalf("failed to configure db: %v", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}

	return db
}

func TestGetUIState_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	st, err := getUIState(db)
	if err != nil {
		t.Fatalf("getUIState failed: %v", err)
	}
	if st != nil {
		t.Errorf("expected nil state on empty db, got %+v", st)
	}
}

func TestSaveAndGetUIState(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	id := int64(12)
	saved := UIState{Screen: "flavors", SelectedMixID: &id, TagFilter: "mint", FlavorQuery: "apple", FlavorSort: "popular"}
	if err := saveUIState(db, saved); err != nil {
		t.Fatalf("saveUIState failed: %v", err)
	}

	st, err := getUIState(db)
	if err != nil {
		t.Fatalf("getUIState failed: %v", err)
	}
	if st == nil {
		t.Fatal("expected state, got nil")
	}
	if st.Screen != "flavors" {
		t.Errorf("Screen = %q, want %q", st.Screen, "flavors")
	}
	if st.SelectedMixID == nil || *st.SelectedMixID != 12 {
		t.Errorf("SelectedMixID = %v, want 12", st.SelectedMixID)
	}
	if st.TagFilter != "mint" {
		t.Errorf("TagFilter = %q, want %q", st.TagFilter, "mint")
	}
	if st.FlavorQuery != "apple" {
		t.Errorf("FlavorQuery = %q, want %q", st.FlavorQuery, "apple")
	}
	if st.FlavorSort != "popular" {
		t.Errorf("FlavorSort = %q, want %q", st.FlavorSort, "popular")
	}

	// Overwrite clears optional fields
	if err := saveUIState(db, UIState{Screen: "mixes"}); err != nil {
		t.Fatalf("saveUIState failed: %v", err)
	}
	st, err = getUIState(db)
	if err != nil {
		t.Fatalf("getUIState failed: %v", err)
	}
	if st.SelectedMixID != nil {
		t.Errorf("SelectedMixID = %v, want nil", *st.SelectedMixID)
	}
	if st.TagFilter != "" || st.FlavorQuery != "" || st.FlavorSort != "" {
		t.Errorf("filters = %q %q %q, want empty", st.TagFilter, st.FlavorQuery, st.FlavorSort)
	}
}

func TestInitSchema_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := initSchema(db); err != nil {
		t.Fatalf("second initSchema failed: %v", err)
	}

	var version int
	if err := db.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&version); err != nil {
		t.Fatalf("read version: %v", err)
	}
	if version != currentSchemaVersion {
		t.Errorf("version = %d, want %d", version, currentSchemaVersion)
	}

	var rows int
	if err := db.QueryRow(`SELECT COUNT(*) FROM schema_version`).Scan(&rows); err != nil {
		t.Fatalf("count versions: %v", err)
	}
	if rows != 1 {
		t.Errorf("schema_version rows = %d, want 1", rows)
	}
}

func TestSchema_RatioCheck(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	mustExec(t, db, `INSERT INTO brands (id, name) VALUES (1, 'Al Fakher')`)
	mustExec(t, db, `INSERT INTO flavors (id, brand_id, name, created_at) VALUES (1, 1, 'Mint', 0)`)
	mustExec(t, db, `INSERT INTO mixes (id, title, created_at) VALUES (1, 'x', 0)`)

	if _, err := db.Exec(`INSERT INTO mix_components VALUES (1, 1, 101, 1)`); err == nil {
		t.Error("expected CHECK violation for ratio_percent 101")
	}
}

func TestSchema_DeleteMixCascades(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	mustExec(t, db, `INSERT INTO brands (id, name) VALUES (1, 'Al Fakher')`)
	mustExec(t, db, `INSERT INTO flavors (id, brand_id, name, created_at) VALUES (1, 1, 'Mint', 0)`)
	mustExec(t, db, `INSERT INTO mixes (id, title, created_at) VALUES (1, 'x', 0)`)
	mustExec(t, db, `INSERT INTO mix_components VALUES (1, 1, 100, 1)`)
	mustExec(t, db, `DELETE FROM mixes WHERE id = 1`)

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM mix_components`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("mix_components rows = %d, want 0", n)
	}
}

func TestManager_DebouncedSaveFlushedOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kemureco.db")

	mgr, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	mgr.SaveUIState(UIState{Screen: "flavors"})
	if err := mgr.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	mgr, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer mgr.Close()

	st, err := mgr.GetUIState()
	if err != nil {
		t.Fatalf("GetUIState failed: %v", err)
	}
	if st == nil || st.Screen != "flavors" {
		t.Errorf("state = %+v, want screen flavors", st)
	}
}

func TestManager_DebouncedSave(t *testing.T) {
	mgr, err := Open(filepath.Join(t.TempDir(), "kemureco.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer mgr.Close()

	mgr.SaveUIState(UIState{Screen: "mixes"})
	mgr.SaveUIState(UIState{Screen: "flavors"})

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		st, err := mgr.GetUIState()
		if err != nil {
			t.Fatalf("GetUIState failed: %v", err)
		}
		if st != nil {
			if st.Screen != "flavors" {
				t.Errorf("Screen = %q, want latest %q", st.Screen, "flavors")
			}
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("debounced state was never written")
}

func TestMock(t *testing.T) {
	m := NewMock(nil)
	m.SaveUIState(UIState{Screen: "flavors"})

	st, _ := m.GetUIState()
	if st == nil || st.Screen != "flavors" {
		t.Errorf("GetUIState() = %+v", st)
	}
	if len(m.Saved()) != 1 {
		t.Errorf("Saved() len = %d, want 1", len(m.Saved()))
	}
	_ = m.Close()
	if !m.IsClosed() {
		t.Error("IsClosed() = false after Close")
	}
}

func mustExec(t *testing.T, db *sql.DB, query string) {
	t.Helper()
	if _, err := db.Exec(query); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}

package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "kemureco"
	dbFileName   = "kemureco.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *UIState
}

// Open opens the database at path, or at the XDG data location when path
// is empty, and brings its schema up to date.
func Open(path string) (*Manager, error) {
	if path == "" {
		var err error
		path, err = getDBPath()
		if err != nil {
			return nil, err
		}
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := configure(db); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

// configure applies per-connection pragmas. SQLite only honors
// foreign_keys per connection, so the pool is pinned to one.
func configure(db *sql.DB) error {
	db.SetMaxOpenConns(1)
	for _, pragma := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	// Flush pending state
	if pending != nil {
		_ = saveUIState(m.db, *pending)
	}

	return m.db.Close()
}

func (m *Manager) GetUIState() (*UIState, error) {
	return getUIState(m.db)
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// SaveUIState stores the UI state after a short debounce so rapid cursor
// moves produce a single write.
func (m *Manager) SaveUIState(state UIState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &state

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveUIState(m.db, *pending)
		}
	})
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

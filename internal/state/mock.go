// internal/state/mock.go
package state

import (
	"database/sql"
)

// Mock is a test double for Manager.
type Mock struct {
	db      *sql.DB
	uiState *UIState
	saved   []UIState
	closed  bool
}

// NewMock creates a new mock state manager for testing. db may be nil.
func NewMock(db *sql.DB) *Mock {
	return &Mock{db: db}
}

func (m *Mock) DB() *sql.DB { return m.db }

func (m *Mock) SaveUIState(state UIState) {
	m.saved = append(m.saved, state)
	m.uiState = &state
}

func (m *Mock) GetUIState() (*UIState, error) {
	return m.uiState, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetUIState(state *UIState) { m.uiState = state }

func (m *Mock) Saved() []UIState { return m.saved }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)

// Package app is the root bubbletea model of kemureco.
package app

import (
	"github.com/llehouerou/kemureco/internal/catalog"
	"github.com/llehouerou/kemureco/internal/mixes"
)

// MixesLoadedMsg carries the saved mixes. SelectID, when non-zero, is
// the mix to put the cursor on.
type MixesLoadedMsg struct {
	Mixes    []mixes.Mix
	SelectID int64
	Err      error
}

// CatalogLoadedMsg carries the flavor catalog.
type CatalogLoadedMsg struct {
	Items []catalog.Item
	Err   error
}

// MixOpenedMsg carries a saved mix to edit.
type MixOpenedMsg struct {
	Mix *mixes.Mix
	Err error
}

// MixSavedMsg reports the outcome of creating or updating a mix.
type MixSavedMsg struct {
	ID      int64
	Title   string
	Created bool
	Err     error
}

// MixDeletedMsg reports the outcome of deleting a mix.
type MixDeletedMsg struct {
	ID    int64
	Title string
	Err   error
}

// deleteRequest is the confirm context of a pending deletion.
type deleteRequest struct {
	ID    int64
	Title string
}

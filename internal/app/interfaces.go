package app

import (
	"github.com/llehouerou/kemureco/internal/mixes"
	"github.com/llehouerou/kemureco/internal/ratio"
)

// MixStore persists mixes.
type MixStore interface {
	Create(title, description string, set ratio.Set) (int64, error)
	Update(id int64, title, description string, set ratio.Set) error
	Delete(id int64) error
	Get(id int64) (*mixes.Mix, error)
	List() ([]mixes.Mix, error)
}

// Verify mixes.Store implements MixStore at compile time.
var _ MixStore = (*mixes.Store)(nil)

// Package ratio keeps the flavor percentages of a mix summing to 100.
//
// A Set is an ordered list of components, each holding an item identifier
// and an integer percentage. Every operation returns a new Set and leaves
// its input untouched, so callers can replace their state wholesale on
// each UI event.
package ratio

import "math"

const (
	// Total is the sum every non-empty Set holds after an operation.
	Total = 100

	// MinComponents is the smallest allowed Set size.
	MinComponents = 1

	// DefaultMaxComponents is the default capacity of a Set.
	DefaultMaxComponents = 3

	// DefaultInitialComponents is the size of a freshly created Set.
	DefaultInitialComponents = 2
)

// Component is one flavor slot of a mix.
type Component struct {
	ItemID string // empty until the user picks an item
	Ratio  int    // 0..100
}

// HasItem reports whether an item has been selected.
func (c Component) HasItem() bool {
	return c.ItemID != ""
}

// Set is an ordered sequence of components.
type Set []Component

// Sum returns the sum of all ratios.
func (s Set) Sum() int {
	sum := 0
	for _, c := range s {
		sum += c.Ratio
	}
	return sum
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	copy(out, s)
	return out
}

// Submittable reports whether the set can be persisted: every component
// has an item, every ratio is positive and the ratios sum to exactly 100.
func (s Set) Submittable() bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if !c.HasItem() || c.Ratio <= 0 {
			return false
		}
	}
	return s.Sum() == Total
}

// EvenSplit returns a copy of s with ratios split evenly. When 100 does
// not divide evenly, the first components each get one extra point.
func EvenSplit(s Set) Set {
	out := s.Clone()
	n := len(out)
	if n == 0 {
		return out
	}
	equal := Total / n
	remainder := Total - equal*n
	for i := range out {
		out[i].Ratio = equal
		if i < remainder {
			out[i].Ratio++
		}
	}
	return out
}

// NewSet returns count unselected components split evenly.
func NewSet(count int) Set {
	if count <= 0 {
		return Set{}
	}
	return EvenSplit(make(Set, count))
}

// Clamp rounds raw to the nearest integer and bounds it to [0, 100].
// NaN maps to 0.
func Clamp(raw float64) int {
	if math.IsNaN(raw) {
		return 0
	}
	v := math.Round(raw)
	if v < 0 {
		return 0
	}
	if v > Total {
		return Total
	}
	return int(v)
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

package ratio

import (
	"fmt"
	"math"
)

// Allocator applies the three mutating operations of a mix editor while
// holding the sum-to-100 invariant.
type Allocator struct {
	// MaxComponents caps the Set size. Values below MinComponents fall
	// back to DefaultMaxComponents.
	MaxComponents int

	// Strict makes contract violations (out-of-range indices) panic
	// instead of returning the input unchanged.
	Strict bool
}

// New returns an allocator with the given capacity.
func New(maxComponents int) Allocator {
	return Allocator{MaxComponents: maxComponents}
}

// Capacity returns the effective maximum Set size.
func (a Allocator) Capacity() int {
	if a.MaxComponents < MinComponents {
		return DefaultMaxComponents
	}
	return a.MaxComponents
}

// CanAdd reports whether another component fits.
func (a Allocator) CanAdd(s Set) bool {
	return len(s) < a.Capacity()
}

// CanRemove reports whether a component may be removed.
func (a Allocator) CanRemove(s Set) bool {
	return len(s) > MinComponents
}

// Redistribute sets the ratio of component target to raw (clamped and
// rounded) and rescales the other components proportionally to their
// previous values so the set still sums to 100. A single-component set is
// always forced to 100.
func (a Allocator) Redistribute(s Set, target int, raw float64) Set {
	if len(s) == 0 {
		return s
	}
	if target < 0 || target >= len(s) {
		a.violation("redistribute: index %d out of range [0,%d)", target, len(s))
		return s
	}

	clamped := Clamp(raw)
	next := s.Clone()

	if len(next) == 1 {
		next[0].Ratio = Total
		return next
	}

	next[target].Ratio = clamped

	others := make([]int, 0, len(next)-1)
	for i := range next {
		if i != target {
			others = append(others, i)
		}
	}

	remaining := max(0, Total-clamped)
	prevOthersTotal := 0
	for _, i := range others {
		prevOthersTotal += s[i].Ratio
	}

	distributed := 0
	for _, i := range others {
		var share int
		if prevOthersTotal == 0 {
			share = remaining / len(others)
		} else {
			share = int(math.Round(float64(s[i].Ratio) / float64(prevOthersTotal) * float64(remaining)))
			share = max(0, share)
		}
		next[i].Ratio = share
		distributed += share
	}

	// Walk the others in order until the rounding drift is absorbed.
	// Every pass over the others moves diff toward zero: positive steps
	// always succeed, and a negative diff implies some other is above 0.
	diff := remaining - distributed
	for pointer := 0; diff != 0; pointer++ {
		i := others[pointer%len(others)]
		step := sign(diff)
		if proposed := next[i].Ratio + step; proposed >= 0 {
			next[i].Ratio = proposed
			diff -= step
		}
	}

	if total := next.Sum(); total != Total {
		last := len(next) - 1
		next[last].Ratio = max(0, next[last].Ratio+Total-total)
	}

	return next
}

// Add appends an unselected component and splits the set evenly. The
// boolean is false, and s is returned unchanged, when the set is full.
func (a Allocator) Add(s Set) (Set, bool) {
	if !a.CanAdd(s) {
		return s, false
	}
	next := append(s.Clone(), Component{})
	return EvenSplit(next), true
}

// Remove drops the component at index and splits the remainder evenly.
// The boolean is false when the set is at its minimum size or index is
// out of range.
func (a Allocator) Remove(s Set, index int) (Set, bool) {
	if !a.CanRemove(s) {
		return s, false
	}
	if index < 0 || index >= len(s) {
		a.violation("remove: index %d out of range [0,%d)", index, len(s))
		return s, false
	}
	next := make(Set, 0, len(s)-1)
	next = append(next, s[:index]...)
	next = append(next, s[index+1:]...)
	return EvenSplit(next), true
}

// SetItem binds an item to the component at index. Ratios are unchanged.
func (a Allocator) SetItem(s Set, index int, itemID string) Set {
	if index < 0 || index >= len(s) {
		a.violation("set item: index %d out of range [0,%d)", index, len(s))
		return s
	}
	next := s.Clone()
	next[index].ItemID = itemID
	return next
}

func (a Allocator) violation(format string, args ...any) {
	if a.Strict {
		panic(fmt.Sprintf("ratio: "+format, args...))
	}
}

package catalog

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort orders a flavor listing.
type Sort string

const (
	SortName    Sort = "name"
	SortBrand   Sort = "brand"
	SortPopular Sort = "popular"
)

// Sorts lists the orders in cycling order.
var Sorts = []Sort{SortName, SortBrand, SortPopular}

// ParseSort returns the named order, or SortName.
func ParseSort(s string) Sort {
	if slices.Contains(Sorts, Sort(s)) {
		return Sort(s)
	}
	return SortName
}

// Next returns the order after s, wrapping around.
func (s Sort) Next() Sort {
	i := slices.Index(Sorts, s)
	return Sorts[(i+1)%len(Sorts)]
}

// Popularity scores an item for SortPopular: 10 when the brand is sold
// in Japan, one point per tag, plus the creation time in Unix
// milliseconds divided by 1e9. Flavors imported together share a
// creation time, so brand availability and tags decide between them.
func (i Item) Popularity() float64 {
	score := float64(len(i.Tags))
	if i.JPAvailable {
		score += 10
	}
	if !i.CreatedAt.IsZero() {
		score += float64(i.CreatedAt.UnixMilli()) / 1e9
	}
	return score
}

// SortItems returns a sorted copy of items. Names break ties in every
// order, compared with Japanese collation.
func SortItems(items []Item, order Sort) []Item {
	col := collate.New(language.Japanese)
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b Item) int {
		switch order {
		case SortBrand:
			if c := col.CompareString(a.Brand, b.Brand); c != 0 {
				return c
			}
		case SortPopular:
			pa, pb := a.Popularity(), b.Popularity()
			if pa > pb {
				return -1
			}
			if pa < pb {
				return 1
			}
		case SortName:
		}
		return col.CompareString(a.Name, b.Name)
	})
	return out
}

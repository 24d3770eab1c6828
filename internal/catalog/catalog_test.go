//nolint:goconst // test files commonly repeat strings for test data
package catalog

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/kemureco/internal/state"
)

const seedTOML = `
[[brands]]
name = "Al Fakher"
jp_available = true

  [[brands.flavors]]
  name = "Double Apple"
  tags = ["fruit", "anise"]

  [[brands.flavors]]
  name = "Mint"
  tags = ["mint"]

[[brands]]
name = "Darkside"

  [[brands.flavors]]
  name = "Bananapapa"
  tags = ["fruit", " "]
`

// setupTestDB opens a fresh database with the application schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	mgr, err := state.Open(filepath.Join(t.TempDir(), "kemureco.db"))
	require.NoError(t, err)
	t.Cleanup(func() { mgr.Close() })
	return mgr.DB()
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func seededCatalog(t *testing.T) *Catalog {
	t.Helper()
	db := setupTestDB(t)

	seed, err := LoadSeed(writeSeed(t, seedTOML))
	require.NoError(t, err)
	_, err = Import(db, seed)
	require.NoError(t, err)

	return New(db)
}

func TestLoadSeed(t *testing.T) {
	seed, err := LoadSeed(writeSeed(t, seedTOML))
	require.NoError(t, err)

	require.Len(t, seed.Brands, 2)
	assert.Equal(t, "Al Fakher", seed.Brands[0].Name)
	assert.True(t, seed.Brands[0].JPAvailable)
	require.Len(t, seed.Brands[0].Flavors, 2)
	assert.Equal(t, []string{"fruit", "anise"}, seed.Brands[0].Flavors[0].Tags)
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestImport_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	seed, err := LoadSeed(writeSeed(t, seedTOML))
	require.NoError(t, err)

	first, err := Import(db, seed)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Brands: 2, Flavors: 3, Tags: 4}, first)

	second, err := Import(db, seed)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{}, second)
}

func TestImport_RejectsUnnamedBrand(t *testing.T) {
	db := setupTestDB(t)

	_, err := Import(db, Seed{Brands: []BrandSeed{
		{Name: "Ok", Flavors: []FlavorSeed{{Name: "Lemon"}}},
		{Name: "  "},
	}})
	require.Error(t, err)

	items, err := New(db).Items()
	require.NoError(t, err)
	assert.Empty(t, items, "failed import is rolled back")
}

func TestItems_OrderedByBrandThenName(t *testing.T) {
	c := seededCatalog(t)

	items, err := c.Items()
	require.NoError(t, err)

	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Label()
	}
	assert.Equal(t, []string{
		"Al Fakher / Double Apple",
		"Al Fakher / Mint",
		"Darkside / Bananapapa",
	}, labels)
	assert.Equal(t, []string{"anise", "fruit"}, items[0].Tags)
	assert.Equal(t, []string{"fruit"}, items[2].Tags)
}

func TestGet(t *testing.T) {
	c := seededCatalog(t)
	items, err := c.Items()
	require.NoError(t, err)

	got, err := c.Get(items[1].ID)
	require.NoError(t, err)
	assert.Equal(t, items[1], *got)

	_, err = c.Get(9999)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLookupTagsFilter(t *testing.T) {
	items := []Item{
		{ID: 1, Name: "Double Apple", Brand: "Al Fakher", Tags: []string{"anise", "fruit"}},
		{ID: 2, Name: "Mint", Brand: "Al Fakher", Tags: []string{"mint"}},
		{ID: 3, Name: "Bananapapa", Brand: "Darkside", Tags: []string{"fruit"}},
		{ID: 4, Name: "House blend"},
	}

	it, ok := Lookup(items, "3")
	require.True(t, ok)
	assert.Equal(t, "Bananapapa", it.Name)
	_, ok = Lookup(items, "")
	assert.False(t, ok)

	assert.Equal(t, []string{"anise", "fruit", "mint"}, Tags(items))

	assert.Len(t, Filter(items, "", ""), 4)
	assert.Len(t, Filter(items, "fruit", ""), 2)
	assert.Len(t, Filter(items, "fruit", "DARK"), 1)
	assert.Len(t, Filter(items, "", "al fakher /"), 2)
	assert.Empty(t, Filter(items, "smoke", ""))

	assert.Equal(t, "House blend", items[3].Label())
	assert.Equal(t, "4", items[3].Key())
}

func TestItems_ReadsBrandAvailabilityAndCreation(t *testing.T) {
	c := seededCatalog(t)

	items, err := c.Items()
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.True(t, items[0].JPAvailable, "Al Fakher is sold in Japan")
	assert.False(t, items[2].JPAvailable)
	for _, it := range items {
		assert.False(t, it.CreatedAt.IsZero(), it.Label())
	}

	got, err := c.Get(items[0].ID)
	require.NoError(t, err)
	assert.True(t, got.JPAvailable)
	assert.Equal(t, items[0].CreatedAt, got.CreatedAt)
}

func TestParseSort(t *testing.T) {
	assert.Equal(t, SortBrand, ParseSort("brand"))
	assert.Equal(t, SortPopular, ParseSort("popular"))
	assert.Equal(t, SortName, ParseSort(""))
	assert.Equal(t, SortName, ParseSort("rating"))

	assert.Equal(t, SortBrand, SortName.Next())
	assert.Equal(t, SortPopular, SortBrand.Next())
	assert.Equal(t, SortName, SortPopular.Next())
}

func TestSortItems(t *testing.T) {
	imported := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	items := []Item{
		{ID: 1, Name: "Mint", Brand: "Zomo", Tags: []string{"mint", "cool", "fresh"}, CreatedAt: imported},
		{ID: 2, Name: "Bananapapa", Brand: "Darkside", Tags: []string{"fruit"}, CreatedAt: imported},
		{ID: 3, Name: "Lemon", Brand: "Al Fakher", JPAvailable: true, CreatedAt: imported},
		{ID: 4, Name: "Apple", Brand: "Darkside", Tags: []string{"fruit"}, CreatedAt: imported},
	}
	ids := func(list []Item) []int64 {
		out := make([]int64, len(list))
		for i, it := range list {
			out[i] = it.ID
		}
		return out
	}

	assert.Equal(t, []int64{4, 2, 3, 1}, ids(SortItems(items, SortName)))
	assert.Equal(t, []int64{3, 4, 2, 1}, ids(SortItems(items, SortBrand)))
	assert.Equal(t, []int64{3, 1, 4, 2}, ids(SortItems(items, SortPopular)))
	assert.Equal(t, int64(1), items[0].ID, "input is not reordered")
}

func TestSortItems_NewerFlavorsArePopular(t *testing.T) {
	older := Item{ID: 1, Name: "Apple", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := Item{ID: 2, Name: "Berry", CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	got := SortItems([]Item{older, newer}, SortPopular)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Greater(t, newer.Popularity(), older.Popularity())
}

// Package catalog provides the selectable flavors a mix is composed of.
package catalog

import (
	"database/sql"
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound is returned when a flavor id does not exist.
var ErrNotFound = errors.New("flavor not found")

// Item is a selectable flavor.
type Item struct {
	ID          int64
	Name        string
	Brand       string // empty when the flavor has no brand name
	Tags        []string
	JPAvailable bool // the brand is sold in Japan
	CreatedAt   time.Time
}

// Key returns the opaque identifier stored in a ratio.Component.
func (i Item) Key() string {
	return strconv.FormatInt(i.ID, 10)
}

// Label returns "Brand / Name", or just the name without a brand.
func (i Item) Label() string {
	if i.Brand == "" {
		return i.Name
	}
	return i.Brand + " / " + i.Name
}

// HasTag reports whether the item carries tag.
func (i Item) HasTag(tag string) bool {
	return slices.Contains(i.Tags, tag)
}

// Provider supplies catalog items.
type Provider interface {
	Items() ([]Item, error)
	Get(id int64) (*Item, error)
}

// Catalog reads flavors from the database.
type Catalog struct {
	db *sql.DB
}

// New creates a catalog backed by db.
func New(db *sql.DB) *Catalog {
	return &Catalog{db: db}
}

// Verify Catalog implements Provider at compile time.
var _ Provider = (*Catalog)(nil)

// Items returns every flavor ordered by brand then name.
func (c *Catalog) Items() ([]Item, error) {
	rows, err := c.db.Query(`
		SELECT f.id, f.name, b.name, b.jp_available, f.created_at
		FROM flavors f
		JOIN brands b ON b.id = f.brand_id
		ORDER BY b.name COLLATE NOCASE, f.name COLLATE NOCASE
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	index := make(map[int64]int)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		index[it.ID] = len(items)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tags, err := c.tags("")
	if err != nil {
		return nil, err
	}
	for id, list := range tags {
		if i, ok := index[id]; ok {
			items[i].Tags = list
		}
	}

	return items, nil
}

// Get returns a single flavor.
func (c *Catalog) Get(id int64) (*Item, error) {
	row := c.db.QueryRow(`
		SELECT f.id, f.name, b.name, b.jp_available, f.created_at
		FROM flavors f
		JOIN brands b ON b.id = f.brand_id
		WHERE f.id = ?
	`, id)

	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	tags, err := c.tags("WHERE flavor_id = ?", id)
	if err != nil {
		return nil, err
	}
	it.Tags = tags[id]

	return &it, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (Item, error) {
	var it Item
	var createdAt int64
	if err := row.Scan(&it.ID, &it.Name, &it.Brand, &it.JPAvailable, &createdAt); err != nil {
		return Item{}, err
	}
	if createdAt > 0 {
		it.CreatedAt = time.Unix(createdAt, 0)
	}
	return it, nil
}

func (c *Catalog) tags(where string, args ...any) (map[int64][]string, error) {
	rows, err := c.db.Query(`SELECT flavor_id, tag FROM flavor_tags `+where+` ORDER BY tag`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make(map[int64][]string)
	for rows.Next() {
		var id int64
		var tag string
		if err := rows.Scan(&id, &tag); err != nil {
			return nil, err
		}
		tags[id] = append(tags[id], tag)
	}
	return tags, rows.Err()
}

// Lookup finds an item by its ratio.Component key.
func Lookup(items []Item, key string) (Item, bool) {
	for _, it := range items {
		if it.Key() == key {
			return it, true
		}
	}
	return Item{}, false
}

// Tags returns the distinct tags of items, sorted.
func Tags(items []Item) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, it := range items {
		for _, tag := range it.Tags {
			if _, ok := seen[tag]; !ok {
				seen[tag] = struct{}{}
				out = append(out, tag)
			}
		}
	}
	slices.Sort(out)
	return out
}

// Filter returns items carrying tag whose label contains query
// (case-insensitive). Empty tag or query matches everything.
func Filter(items []Item, tag, query string) []Item {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []Item
	for _, it := range items {
		if tag != "" && !it.HasTag(tag) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(it.Label()), query) {
			continue
		}
		out = append(out, it)
	}
	return out
}

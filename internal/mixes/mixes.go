// Package mixes persists flavor mixes and their component ratios.
package mixes

import (
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	dbutil "github.com/llehouerou/kemureco/internal/db"
	"github.com/llehouerou/kemureco/internal/ratio"
)

var (
	ErrEmptyTitle = errors.New("title is required")
	ErrInvalidSet = errors.New("every flavor must be selected and ratios must total 100%")
	ErrNotFound   = errors.New("mix not found")
)

// Mix is a saved mix with its components ordered by layer.
type Mix struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   time.Time
	Components  []Component
}

// Component is one persisted flavor of a mix.
type Component struct {
	FlavorID   int64
	FlavorName string
	BrandName  string
	Ratio      int
	Layer      int
}

// Label returns "Brand / Flavor", or the flavor name alone.
func (c Component) Label() string {
	if c.BrandName == "" {
		return c.FlavorName
	}
	return c.BrandName + " / " + c.FlavorName
}

// Record is a mix_components row.
type Record struct {
	MixID        int64
	FlavorID     int64
	RatioPercent int
	LayerOrder   int
}

// Records serializes a validated set. Layer order is the 1-indexed
// position in the set.
func Records(mixID int64, set ratio.Set) ([]Record, error) {
	if !set.Submittable() {
		return nil, ErrInvalidSet
	}
	records := make([]Record, len(set))
	for i, c := range set {
		flavorID, err := strconv.ParseInt(c.ItemID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: flavor id %q", ErrInvalidSet, c.ItemID)
		}
		records[i] = Record{
			MixID:        mixID,
			FlavorID:     flavorID,
			RatioPercent: c.Ratio,
			LayerOrder:   i + 1,
		}
	}
	return records, nil
}

// EditSet rebuilds an editable set from a saved mix. A mix without
// components yields a single unselected component at 100%.
func EditSet(m Mix) ratio.Set {
	if len(m.Components) == 0 {
		return ratio.Set{{Ratio: ratio.Total}}
	}
	components := slices.Clone(m.Components)
	slices.SortStableFunc(components, func(a, b Component) int {
		return a.Layer - b.Layer
	})
	set := make(ratio.Set, len(components))
	for i, c := range components {
		set[i] = ratio.Component{
			ItemID: strconv.FormatInt(c.FlavorID, 10),
			Ratio:  c.Ratio,
		}
	}
	return set
}

// Store provides database operations for mixes.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a Store backed by db.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Create validates and inserts a mix with its components in one
// transaction.
func (s *Store) Create(title, description string, set ratio.Set) (int64, error) {
	title, description, err := validate(title, description, set)
	if err != nil {
		return 0, err
	}

	var id int64
	err = dbutil.WithTx(s.db, func(tx *sql.Tx) error {
		result, err := tx.Exec(`
			INSERT INTO mixes (title, description, created_at)
			VALUES (?, ?, ?)
		`, title, dbutil.StringToNull(description), s.now().Unix())
		if err != nil {
			return err
		}
		id, err = result.LastInsertId()
		if err != nil {
			return err
		}
		return insertComponents(tx, id, set)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update replaces the title, description and components of a mix.
func (s *Store) Update(id int64, title, description string, set ratio.Set) error {
	title, description, err := validate(title, description, set)
	if err != nil {
		return err
	}

	return dbutil.WithTx(s.db, func(tx *sql.Tx) error {
		result, err := tx.Exec(`
			UPDATE mixes SET title = ?, description = ? WHERE id = ?
		`, title, dbutil.StringToNull(description), id)
		if err != nil {
			return err
		}
		if n, err := result.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return ErrNotFound
		}

		if _, err := tx.Exec(`DELETE FROM mix_components WHERE mix_id = ?`, id); err != nil {
			return err
		}
		return insertComponents(tx, id, set)
	})
}

// Delete deletes a mix and its components.
func (s *Store) Delete(id int64) error {
	result, err := s.db.Exec(`DELETE FROM mixes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Get returns a mix with its components.
func (s *Store) Get(id int64) (*Mix, error) {
	row := s.db.QueryRow(`
		SELECT id, title, description, created_at FROM mixes WHERE id = ?
	`, id)

	m, err := scanMix(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	components, err := s.components(`WHERE mc.mix_id = ?`, id)
	if err != nil {
		return nil, err
	}
	m.Components = components[id]
	return &m, nil
}

// List returns all mixes, newest first.
func (s *Store) List() ([]Mix, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, created_at
		FROM mixes
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Mix
	for rows.Next() {
		m, err := scanMix(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	components, err := s.components("")
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Components = components[list[i].ID]
	}
	return list, nil
}

func (s *Store) components(where string, args ...any) (map[int64][]Component, error) {
	rows, err := s.db.Query(`
		SELECT mc.mix_id, mc.flavor_id, f.name, b.name, mc.ratio_percent, mc.layer_order
		FROM mix_components mc
		JOIN flavors f ON f.id = mc.flavor_id
		JOIN brands b ON b.id = f.brand_id
		`+where+`
		ORDER BY mc.mix_id, mc.layer_order
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]Component)
	for rows.Next() {
		var mixID int64
		var c Component
		if err := rows.Scan(&mixID, &c.FlavorID, &c.FlavorName, &c.BrandName, &c.Ratio, &c.Layer); err != nil {
			return nil, err
		}
		out[mixID] = append(out[mixID], c)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMix(row scanner) (Mix, error) {
	var m Mix
	var description sql.NullString
	var createdAt int64
	if err := row.Scan(&m.ID, &m.Title, &description, &createdAt); err != nil {
		return Mix{}, err
	}
	m.Description = dbutil.NullStringValue(description)
	m.CreatedAt = time.Unix(createdAt, 0)
	return m, nil
}

func insertComponents(tx *sql.Tx, mixID int64, set ratio.Set) error {
	records, err := Records(mixID, set)
	if err != nil {
		return err
	}
	for _, r := range records {
		if _, err := tx.Exec(`
			INSERT INTO mix_components (mix_id, flavor_id, ratio_percent, layer_order)
			VALUES (?, ?, ?, ?)
		`, r.MixID, r.FlavorID, r.RatioPercent, r.LayerOrder); err != nil {
			return fmt.Errorf("insert layer %d: %w", r.LayerOrder, err)
		}
	}
	return nil
}

func validate(title, description string, set ratio.Set) (string, string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "", ErrEmptyTitle
	}
	if !set.Submittable() {
		return "", "", ErrInvalidSet
	}
	return title, strings.TrimSpace(description), nil
}

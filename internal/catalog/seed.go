package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	dbutil "github.com/llehouerou/kemureco/internal/db"
)

// Seed is the content of a catalog seed file:
//
//	[[brands]]
//	name = "Al Fakher"
//	jp_available = true
//
//	  [[brands.flavors]]
//	  name = "Double Apple"
//	  tags = ["fruit", "anise"]
type Seed struct {
	Brands []BrandSeed `koanf:"brands"`
}

// BrandSeed is one brand with its flavors.
type BrandSeed struct {
	Name        string       `koanf:"name"`
	JPAvailable bool         `koanf:"jp_available"`
	Flavors     []FlavorSeed `koanf:"flavors"`
}

// FlavorSeed is one flavor of a brand.
type FlavorSeed struct {
	Name string   `koanf:"name"`
	Tags []string `koanf:"tags"`
}

// ImportResult counts rows created by Import.
type ImportResult struct {
	Brands  int
	Flavors int
	Tags    int
}

// LoadSeed parses a TOML seed file.
func LoadSeed(path string) (Seed, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return Seed{}, fmt.Errorf("read seed %s: %w", path, err)
	}

	var seed Seed
	if err := k.Unmarshal("", &seed); err != nil {
		return Seed{}, fmt.Errorf("decode seed %s: %w", path, err)
	}
	return seed, nil
}

// Import inserts the brands, flavors and tags of seed. Existing rows are
// kept, so importing the same seed twice is a no-op.
func Import(db *sql.DB, seed Seed) (ImportResult, error) {
	var res ImportResult
	now := time.Now().Unix()

	err := dbutil.WithTx(db, func(tx *sql.Tx) error {
		for _, b := range seed.Brands {
			name := strings.TrimSpace(b.Name)
			if name == "" {
				return errors.New("brand without a name")
			}

			brandID, created, err := upsertBrand(tx, name, b.JPAvailable)
			if err != nil {
				return fmt.Errorf("brand %q: %w", name, err)
			}
			if created {
				res.Brands++
			}

			for _, f := range b.Flavors {
				flavorName := strings.TrimSpace(f.Name)
				if flavorName == "" {
					return fmt.Errorf("brand %q: flavor without a name", name)
				}

				flavorID, created, err := insertFlavor(tx, brandID, flavorName, now)
				if err != nil {
					return fmt.Errorf("flavor %q: %w", flavorName, err)
				}
				if created {
					res.Flavors++
				}

				for _, tag := range f.Tags {
					tag = strings.TrimSpace(tag)
					if tag == "" {
						continue
					}
					r, err := tx.Exec(`INSERT OR IGNORE INTO flavor_tags (flavor_id, tag) VALUES (?, ?)`, flavorID, tag)
					if err != nil {
						return fmt.Errorf("tag %q: %w", tag, err)
					}
					if n, _ := r.RowsAffected(); n > 0 {
						res.Tags++
					}
				}
			}
		}
		return nil
	})

	return res, err
}

func upsertBrand(tx *sql.Tx, name string, jpAvailable bool) (id int64, created bool, err error) {
	err = tx.QueryRow(`SELECT id FROM brands WHERE name = ?`, name).Scan(&id)
	if err == nil {
		_, err = tx.Exec(`UPDATE brands SET jp_available = ? WHERE id = ?`, jpAvailable, id)
		return id, false, err
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, false, err
	}

	r, err := tx.Exec(`INSERT INTO brands (name, jp_available) VALUES (?, ?)`, name, jpAvailable)
	if err != nil {
		return 0, false, err
	}
	id, err = r.LastInsertId()
	return id, true, err
}

func insertFlavor(tx *sql.Tx, brandID int64, name string, now int64) (id int64, created bool, err error) {
	err = tx.QueryRow(`SELECT id FROM flavors WHERE brand_id = ? AND name = ?`, brandID, name).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, false, err
	}

	r, err := tx.Exec(`INSERT INTO flavors (brand_id, name, created_at) VALUES (?, ?, ?)`, brandID, name, now)
	if err != nil {
		return 0, false, err
	}
	id, err = r.LastInsertId()
	return id, true, err
}

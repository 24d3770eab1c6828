package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llehouerou/kemureco/internal/catalog"
	"github.com/llehouerou/kemureco/internal/errmsg"
)

var seedCmd = &cobra.Command{
	Use:   "seed [file]",
	Short: "Import a flavor catalog from a TOML file",
	Long: `Import brands, flavors and tags from a TOML seed file.

Without an argument the file configured as catalog_seed is used.
Existing brands and flavors are kept, so a seed can be imported again
after adding entries to it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, stateMgr, err := setup()
	if err != nil {
		return err
	}
	defer stateMgr.Close()

	path := cfg.CatalogSeed
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return errors.New("no seed file given and catalog_seed is not configured")
	}

	seed, err := catalog.LoadSeed(path)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpCatalogSeed, err))
	}

	res, err := catalog.Import(stateMgr.DB(), seed)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpCatalogSeed, err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d brands, %d flavors, %d tags from %s\n",
		res.Brands, res.Flavors, res.Tags, path)
	return nil
}

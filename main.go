package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/kemureco/internal/app"
	"github.com/llehouerou/kemureco/internal/config"
	"github.com/llehouerou/kemureco/internal/errmsg"
	"github.com/llehouerou/kemureco/internal/logging"
	"github.com/llehouerou/kemureco/internal/state"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "kemureco",
	Short: "Compose and keep shisha flavor mixes",
	Long: `kemureco is a terminal app for composing shisha mixes.

Each mix combines up to a few flavors whose ratios always total 100%.
Import a flavor catalog with 'kemureco seed' before creating mixes.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file (overrides db_path)")
	rootCmd.AddCommand(seedCmd, mixesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and opens the database.
func setup() (*config.Config, *state.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	stateMgr, err := state.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return cfg, stateMgr, nil
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, stateMgr, err := setup()
	if err != nil {
		return err
	}
	defer stateMgr.Close()

	logger, err := logging.New(cfg.LogPath, cfg.Debug)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting", zap.String("db", cfg.DBPath))

	m := app.New(cfg, stateMgr, logger)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	return nil
}

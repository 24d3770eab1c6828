package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/kemureco/internal/app/navctl"
	"github.com/llehouerou/kemureco/internal/app/popupctl"
	"github.com/llehouerou/kemureco/internal/catalog"
	"github.com/llehouerou/kemureco/internal/config"
	"github.com/llehouerou/kemureco/internal/keymap"
	"github.com/llehouerou/kemureco/internal/mixes"
	"github.com/llehouerou/kemureco/internal/ratio"
	"github.com/llehouerou/kemureco/internal/state"
	"github.com/llehouerou/kemureco/internal/toast"
)

// Model is the root application model.
type Model struct {
	Config     *config.Config
	StateMgr   state.Interface
	Catalog    catalog.Provider
	Mixes      MixStore
	Allocator  ratio.Allocator
	Toasts     *toast.Registry
	Navigation *navctl.Manager
	Popups     *popupctl.Manager
	Keys       *keymap.Resolver
	Logger     *zap.Logger

	watcher    *toast.Watcher
	toastState toast.State
	items      []catalog.Item

	// restored from the previous session, applied once data is loaded
	pendingMixID *int64
	pendingTag   string

	Width  int
	Height int
}

// New creates the application model. The database behind stateMgr must
// carry the application schema.
func New(cfg *config.Config, stateMgr state.Interface, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	mixCfg := cfg.GetMixConfig()
	toastCfg := cfg.GetToastConfig()

	toasts := toast.NewRegistry(toast.Options{
		Limit:       toastCfg.Limit,
		Duration:    toastCfg.Duration(),
		RemoveDelay: toastCfg.RemoveDelay(),
	})

	m := Model{
		Config:     cfg,
		StateMgr:   stateMgr,
		Catalog:    catalog.New(stateMgr.DB()),
		Mixes:      mixes.New(stateMgr.DB()),
		Allocator:  ratio.New(mixCfg.MaxComponents),
		Toasts:     toasts,
		Navigation: navctl.New(mixCfg.MaxComponents),
		Popups:     popupctl.New(),
		Keys:       keymap.Default(),
		Logger:     logger,
		watcher:    toast.Watch(toasts),
	}

	saved, err := stateMgr.GetUIState()
	if err != nil {
		logger.Warn("restore ui state", zap.Error(err))
	}
	if saved != nil {
		m.Navigation.SetScreen(navctl.ParseScreen(saved.Screen))
		flavors := m.Navigation.Flavors()
		flavors.SetQuery(saved.FlavorQuery)
		flavors.SetSort(catalog.ParseSort(saved.FlavorSort))
		m.pendingTag = saved.TagFilter
		m.pendingMixID = saved.SelectedMixID
	}

	return m
}

// Init loads mixes and the catalog and starts listening for toasts.
func (m Model) Init() tea.Cmd {
	var selectID int64
	if m.pendingMixID != nil {
		selectID = *m.pendingMixID
	}
	return tea.Batch(
		m.loadMixesCmd(selectID),
		m.loadCatalogCmd(),
		m.watcher.Next(),
	)
}

// Close stops the toast timers and releases the watcher.
func (m Model) Close() {
	m.watcher.Close()
	m.Toasts.Close()
}

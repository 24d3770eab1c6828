package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/kemureco/internal/app/handler"
	"github.com/llehouerou/kemureco/internal/ui/confirm"
	"github.com/llehouerou/kemureco/internal/ui/helpbindings"
	"github.com/llehouerou/kemureco/internal/ui/popup"
)

// Manager holds the visible popups.
type Manager struct {
	popups map[Type]popup.Popup
	sizes  map[Type]popup.SizeConfig
	width  int
	height int
}

// New creates a manager with no visible popup.
func New() *Manager {
	return &Manager{
		popups: make(map[Type]popup.Popup),
		sizes: map[Type]popup.SizeConfig{
			Help: popup.SizeLarge,
			// Confirm defaults to SizeAuto
		},
	}
}

// SetSize updates the screen dimensions used for popup rendering.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for t, pop := range p.popups {
		w, h := p.contentSize(p.size(t))
		pop.SetSize(w, h)
	}
}

// IsVisible reports whether a popup of type t is shown.
func (p *Manager) IsVisible(t Type) bool {
	return p.popups[t] != nil
}

// ActivePopup returns the popup receiving keys, or None.
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show displays pop as type t.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	w, h := p.contentSize(p.size(t))
	pop.SetSize(w, h)
	p.popups[t] = pop
	return pop.Init()
}

// Hide removes the popup of type t.
func (p *Manager) Hide(t Type) {
	delete(p.popups, t)
}

// ShowHelp lists the bindings of contexts.
func (p *Manager) ShowHelp(contexts []string) tea.Cmd {
	help := helpbindings.New()
	help.SetContexts(contexts)
	return p.Show(Help, &help)
}

// ShowConfirm asks a yes/no question. context comes back in
// confirm.Result.
func (p *Manager) ShowConfirm(title, message string, context any) tea.Cmd {
	c := confirm.New()
	c.Show(title, message, context)
	return p.Show(Confirm, &c)
}

// ShowDestructiveConfirm is ShowConfirm for irreversible actions.
func (p *Manager) ShowDestructiveConfirm(title, message string, context any) tea.Cmd {
	c := confirm.New()
	c.ShowDestructive(title, message, context)
	return p.Show(Confirm, &c)
}

// HandleKey routes key to the active popup. Any visible popup is modal
// and consumes the key.
func (p *Manager) HandleKey(key tea.KeyMsg) handler.Result {
	active := p.ActivePopup()
	if active == None {
		return handler.NotHandled
	}
	updated, cmd := p.popups[active].Update(key)
	p.popups[active] = updated
	return handler.Handled(cmd)
}

// RenderOverlay draws the visible popups over base.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		pop := p.popups[t]
		if pop == nil {
			continue
		}
		rendered := popup.RenderBordered(pop.View(), p.width, p.height, p.size(t))
		base = popup.Compose(base, rendered, p.width)
	}
	return base
}

func (p *Manager) size(t Type) popup.SizeConfig {
	if size, ok := p.sizes[t]; ok {
		return size
	}
	return popup.SizeAuto
}

// contentSize returns the space handed to a popup for layout.
func (p *Manager) contentSize(size popup.SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return p.width * size.WidthPct / 100, p.height * size.HeightPct / 100
	}
	return p.width, p.height
}

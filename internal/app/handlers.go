package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/kemureco/internal/app/popupctl"
	"github.com/llehouerou/kemureco/internal/errmsg"
	"github.com/llehouerou/kemureco/internal/mixes"
	"github.com/llehouerou/kemureco/internal/ui/action"
	"github.com/llehouerou/kemureco/internal/ui/confirm"
	"github.com/llehouerou/kemureco/internal/ui/flavorlist"
	"github.com/llehouerou/kemureco/internal/ui/helpbindings"
	"github.com/llehouerou/kemureco/internal/ui/mixform"
	"github.com/llehouerou/kemureco/internal/ui/mixlist"
)

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case mixlist.NewMix:
		form := mixform.New(m.Allocator, m.items, m.Config.GetMixConfig().InitialComponents)
		return m, m.Navigation.OpenEditor(form)

	case mixlist.Edit:
		return m, m.openMixCmd(a.ID)

	case mixlist.Delete:
		cmd := m.Popups.ShowDestructiveConfirm(
			"Delete mix",
			fmt.Sprintf("Delete %q? This cannot be undone.", a.Title),
			deleteRequest{ID: a.ID, Title: a.Title},
		)
		return m, cmd

	case mixlist.SelectionChanged:
		m.SaveUIState()
		return m, nil

	case mixform.Submit:
		return m, m.saveMixCmd(a)

	case mixform.Cancel:
		m.Navigation.CloseEditor()
		return m, nil

	case flavorlist.FiltersChanged:
		m.SaveUIState()
		return m, nil

	case confirm.Result:
		m.Popups.Hide(popupctl.Confirm)
		if req, ok := a.Context.(deleteRequest); ok && a.Confirmed {
			return m, m.deleteMixCmd(req)
		}
		return m, nil

	case helpbindings.Close:
		m.Popups.Hide(popupctl.Help)
		return m, nil
	}

	m.Logger.Warn("unhandled action", zap.String("source", msg.Source), zap.String("action", msg.Action.ActionType()))
	return m, nil
}

func (m Model) handleMixesLoaded(msg MixesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.fail(errmsg.OpMixLoad, "", msg.Err)
		return m, nil
	}
	list := m.Navigation.MixList()
	list.SetMixes(msg.Mixes)
	if msg.SelectID != 0 {
		list.SelectByID(msg.SelectID)
	}
	m.pendingMixID = nil
	return m, nil
}

func (m Model) handleCatalogLoaded(msg CatalogLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.fail(errmsg.OpCatalogLoad, "", msg.Err)
		return m, nil
	}
	m.items = msg.Items
	flavors := m.Navigation.Flavors()
	flavors.SetItems(msg.Items)
	if m.pendingTag != "" {
		flavors.SetTag(m.pendingTag)
		m.pendingTag = ""
	}
	if editor := m.Navigation.Editor(); editor != nil {
		editor.SetItems(msg.Items)
	}
	return m, nil
}

func (m Model) handleMixOpened(msg MixOpenedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.fail(errmsg.OpMixOpen, "", msg.Err)
		if errors.Is(msg.Err, mixes.ErrNotFound) {
			return m, m.loadMixesCmd(0)
		}
		return m, nil
	}
	mix := msg.Mix
	form := mixform.Edit(m.Allocator, m.items, mix.ID, mix.Title, mix.Description, mixes.EditSet(*mix))
	return m, m.Navigation.OpenEditor(form)
}

func (m Model) handleMixSaved(msg MixSavedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		op := errmsg.OpMixUpdate
		if msg.Created {
			op = errmsg.OpMixCreate
		}
		m.fail(op, msg.Title, msg.Err)
		if editor := m.Navigation.Editor(); editor != nil {
			editor.SaveFailed()
		}
		return m, nil
	}

	title := "Mix updated"
	if msg.Created {
		title = "Mix saved"
	}
	m.Logger.Info(title, zap.Int64("mix_id", msg.ID))
	m.Toasts.Success(title, msg.Title)
	m.Navigation.CloseEditor()
	return m, m.loadMixesCmd(msg.ID)
}

func (m Model) handleMixDeleted(msg MixDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.fail(errmsg.OpMixDelete, msg.Title, msg.Err)
		return m, nil
	}
	m.Logger.Info("mix deleted", zap.Int64("mix_id", msg.ID))
	m.Toasts.Success("Mix deleted", msg.Title)
	return m, m.loadMixesCmd(0)
}

// fail logs err and shows it as a destructive toast. subject names the
// affected mix, if any.
func (m Model) fail(op errmsg.Op, subject string, err error) {
	m.Logger.Error(string(op), zap.String("subject", subject), zap.Error(err))
	m.Toasts.Failure(errmsg.FormatWith(op, subject, err), "")
}

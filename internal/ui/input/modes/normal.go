package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"procura/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	k := m.keys
	switch {
	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, k.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, k.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, k.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, k.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, k.Enter):
		return []types.Action{types.ActivateAction{}}, true
	case key.Matches(msg, k.Back):
		return []types.Action{types.BackAction{}}, true
	case key.Matches(msg, k.Focus):
		return []types.Action{types.SwitchFocusAction{}}, true
	case key.Matches(msg, k.Sidebar):
		return []types.Action{types.ToggleSidebarAction{}}, true
	case key.Matches(msg, k.Goto):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoto}}, true

	case key.Matches(msg, k.Filter):
		if !ctx.CanFilter() {
			return nil, false
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter, Data: ctx.FilterText()}}, true
	case key.Matches(msg, k.Category):
		if !ctx.CanFilter() {
			return nil, false
		}
		return []types.Action{types.CycleCategoryAction{}}, true
	case key.Matches(msg, k.Clear):
		// Esc only means something when a filter is applied
		if !ctx.CanFilter() {
			return nil, false
		}
		return []types.Action{types.ClearFilterAction{}}, true

	case key.Matches(msg, k.Delete):
		if !ctx.CanDelete() || ctx.DeleteTarget() == "" {
			return nil, false
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeConfirm}}, true
	case key.Matches(msg, k.Export):
		if !ctx.CanExport() {
			return nil, false
		}
		return []types.Action{types.ExportAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}

package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"procura/internal/ui/input/types"
)

type ConfirmMode struct {
	target string
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "delete-confirm"
}

// Target is the row awaiting confirmation
func (m *ConfirmMode) Target() string {
	return m.target
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	m.target = ctx.DeleteTarget()
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	m.target = ""
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y":
		return []types.Action{
			types.DeleteAction{Target: m.target},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "n", "N", "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	// Swallow everything else while the prompt is open
	return nil, true
}

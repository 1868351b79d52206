package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"procura/internal/ui/input/modes"
	"procura/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
	keys        types.KeyMap
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = ""
	keys := types.DefaultKeyMap()

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode(keys)
	h.modes[types.ModeFilter] = modes.NewFilterMode(h.textInput)
	h.modes[types.ModeGoto] = modes.NewGotoMode(h.textInput)
	h.modes[types.ModeConfirm] = modes.NewConfirmMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}

		allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
		oldMode := h.currentMode
		h.currentMode = changeMode.Mode
		if next := h.modes[h.currentMode]; next != nil {
			allActions = append(allActions, next.Enter(ctx)...)
		}

		if h.isTextMode(h.currentMode) {
			h.textInput.SetValue(changeMode.Data)
			h.textInput.CursorEnd()
			cmd = h.textInput.Focus()
		} else if h.isTextMode(oldMode) {
			h.textInput.Blur()
		}
		allActions = append(allActions, action)
	}

	// Keys the text mode did not handle go to the text input
	if h.isTextMode(h.currentMode) && !consumed {
		before := h.textInput.Value()
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		if v := h.textInput.Value(); v != before {
			allActions = append(allActions, types.UpdateTextAction{Text: v, Mode: h.currentMode})
		}
	}

	return allActions, cmd
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// Prompt returns the label of the current text mode, "" otherwise
func (h *Handler) Prompt() string {
	if p, ok := h.modes[h.currentMode].(interface{ Prompt() string }); ok {
		return p.Prompt()
	}
	return ""
}

// ConfirmTarget returns the row awaiting delete confirmation
func (h *Handler) ConfirmTarget() string {
	if c, ok := h.modes[types.ModeConfirm].(*modes.ConfirmMode); ok {
		return c.Target()
	}
	return ""
}

// TextInput returns the shared input while a text mode is active
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

// Keys returns the normal mode bindings, for the help view
func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	switch mode {
	case types.ModeFilter, types.ModeGoto:
		return true
	default:
		return false
	}
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	h.textInput.Reset()
	h.textInput.Blur()
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

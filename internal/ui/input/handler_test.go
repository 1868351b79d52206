package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procura/internal/ui/input/types"
)

type fakeContext struct {
	sidebar   bool
	filter    bool
	deletable bool
	export    bool
	text      string
	target    string
}

func (c fakeContext) SidebarFocused() bool { return c.sidebar }
func (c fakeContext) CanFilter() bool      { return c.filter }
func (c fakeContext) CanDelete() bool      { return c.deletable }
func (c fakeContext) CanExport() bool      { return c.export }
func (c fakeContext) FilterText() string   { return c.text }
func (c fakeContext) DeleteTarget() string { return c.target }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func find[T types.Action](actions []types.Action) (T, bool) {
	for _, a := range actions {
		if t, ok := a.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

func TestNormalModeBindings(t *testing.T) {
	h := New()
	ctx := fakeContext{filter: true, export: true}

	cases := []struct {
		msg  tea.KeyMsg
		want types.Action
	}{
		{runes("j"), types.NavigateAction{Direction: "down"}},
		{tea.KeyMsg{Type: tea.KeyUp}, types.NavigateAction{Direction: "up"}},
		{tea.KeyMsg{Type: tea.KeyEnter}, types.ActivateAction{}},
		{tea.KeyMsg{Type: tea.KeyTab}, types.SwitchFocusAction{}},
		{runes("["), types.ToggleSidebarAction{}},
		{tea.KeyMsg{Type: tea.KeyBackspace}, types.BackAction{}},
		{runes("c"), types.CycleCategoryAction{}},
		{runes("e"), types.ExportAction{}},
		{runes("?"), types.ToggleHelpAction{}},
		{runes("q"), types.QuitAction{}},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, types.QuitAction{Force: true}},
	}
	for _, tc := range cases {
		actions, _ := h.HandleKey(tc.msg, ctx)
		require.Len(t, actions, 1, tc.msg.String())
		assert.Equal(t, tc.want, actions[0], tc.msg.String())
	}
}

func TestNormalModeIgnoresUnavailableCommands(t *testing.T) {
	h := New()
	ctx := fakeContext{}

	for _, k := range []string{"/", "c", "e", "d", "x"} {
		actions, _ := h.HandleKey(runes(k), ctx)
		assert.Empty(t, actions, k)
	}
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestFilterModeUpdatesLive(t *testing.T) {
	h := New()
	ctx := fakeContext{filter: true, text: "ga"}

	actions, _ := h.HandleKey(runes("/"), ctx)
	change, ok := find[types.ChangeModeAction](actions)
	require.True(t, ok)
	assert.Equal(t, types.ModeFilter, change.Mode)
	assert.Equal(t, types.ModeFilter, h.CurrentMode())
	assert.Equal(t, "Filter: ", h.Prompt())
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "ga", h.TextInput().Value())

	// q is text here, not quit
	actions, _ = h.HandleKey(runes("q"), ctx)
	update, ok := find[types.UpdateTextAction](actions)
	require.True(t, ok)
	assert.Equal(t, types.UpdateTextAction{Text: "gaq", Mode: types.ModeFilter}, update)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	submit, ok := find[types.SubmitTextAction](actions)
	require.True(t, ok)
	assert.Equal(t, "gaq", submit.Text)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestFilterModeEscCancels(t *testing.T) {
	h := New()
	ctx := fakeContext{filter: true}

	h.HandleKey(runes("/"), ctx)
	h.HandleKey(runes("x"), ctx)
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)

	cancel, ok := find[types.CancelTextAction](actions)
	require.True(t, ok)
	assert.Equal(t, types.ModeFilter, cancel.Mode)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestGotoMode(t *testing.T) {
	h := New()
	ctx := fakeContext{}

	h.HandleKey(runes("g"), ctx)
	assert.Equal(t, types.ModeGoto, h.CurrentMode())
	assert.Empty(t, h.TextInput().Value())

	for _, r := range "/items" {
		h.HandleKey(runes(string(r)), ctx)
	}
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	submit, ok := find[types.SubmitTextAction](actions)
	require.True(t, ok)
	assert.Equal(t, types.SubmitTextAction{Text: "/items", Mode: types.ModeGoto}, submit)
}

func TestConfirmMode(t *testing.T) {
	h := New()
	ctx := fakeContext{deletable: true, target: "PT Sumber Gas"}

	h.HandleKey(runes("d"), ctx)
	assert.Equal(t, types.ModeConfirm, h.CurrentMode())
	assert.Equal(t, "PT Sumber Gas", h.ConfirmTarget())

	// other keys are swallowed
	actions, _ := h.HandleKey(runes("q"), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeConfirm, h.CurrentMode())

	actions, _ = h.HandleKey(runes("y"), ctx)
	del, ok := find[types.DeleteAction](actions)
	require.True(t, ok)
	assert.Equal(t, "PT Sumber Gas", del.Target)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())

	h.HandleKey(runes("d"), ctx)
	actions, _ = h.HandleKey(runes("n"), ctx)
	_, ok = find[types.DeleteAction](actions)
	assert.False(t, ok)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestDeleteNeedsTarget(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(runes("d"), fakeContext{deletable: true})
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

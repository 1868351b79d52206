package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// ActivateAction opens the row under the cursor: a sidebar group toggles, a
// link or a content row navigates.
type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

type SwitchFocusAction struct{}

func (a SwitchFocusAction) Type() string { return "switch_focus" }

type ToggleSidebarAction struct{}

func (a ToggleSidebarAction) Type() string { return "toggle_sidebar" }

type BackAction struct{}

func (a BackAction) Type() string { return "back" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Filter actions
type CycleCategoryAction struct{}

func (a CycleCategoryAction) Type() string { return "cycle_category" }

type ClearFilterAction struct{}

func (a ClearFilterAction) Type() string { return "clear_filter" }

// Command actions
type ExportAction struct{}

func (a ExportAction) Type() string { return "export" }

type DeleteAction struct {
	Target string
}

func (a DeleteAction) Type() string { return "delete" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

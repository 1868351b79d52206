package state

// Focus is the pane receiving movement keys
type Focus int

const (
	FocusContent Focus = iota
	FocusSidebar
)

// AppState contains the UI state that is not owned by a service
type AppState struct {
	Width  int
	Height int

	Focus         Focus
	SidebarCursor int // selected sidebar row
	ContentCursor int // selected table row

	ShowHelp      bool
	StatusMessage string // status bar message
	StatusIsError bool

	// Goto prompt feedback
	Suggestion string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Width:  100,
		Height: 30,
	}
}

// SetStatus shows an informational message in the status bar
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
}

// SetError shows an error message in the status bar
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = true
}

// ClearStatus removes the status bar message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
	s.Suggestion = ""
}

// ClampCursor keeps a cursor inside [0, n)
func ClampCursor(cursor, n int) int {
	if n <= 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

// MoveCursor applies a navigation direction to a cursor over n rows
func MoveCursor(cursor, n, page int, direction string) int {
	if page < 1 {
		page = 1
	}
	switch direction {
	case "up":
		cursor--
	case "down":
		cursor++
	case "pageup":
		cursor -= page
	case "pagedown":
		cursor += page
	case "home":
		cursor = 0
	case "end":
		cursor = n - 1
	}
	return ClampCursor(cursor, n)
}

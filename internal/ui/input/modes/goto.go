package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"procura/internal/ui/input/types"
)

// GotoMode reads a route path to navigate to
type GotoMode struct {
	TextInputMode
}

func NewGotoMode(ti *textinput.Model) *GotoMode {
	return &GotoMode{
		TextInputMode: NewTextInputMode(types.ModeGoto, "goto", "Go to: ", ti),
	}
}

package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"procura/internal/ui/input/types"
)

// FilterMode edits the free-text criteria; every keystroke is applied live
type FilterMode struct {
	TextInputMode
}

func NewFilterMode(ti *textinput.Model) *FilterMode {
	return &FilterMode{
		TextInputMode: NewTextInputMode(types.ModeFilter, "filter", "Filter: ", ti),
	}
}

package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width   int
	Height  int
	Sidebar SidebarState
	Page    PageState

	// Bottom area
	ConfirmTarget string
	GotoPrompt    string // "" unless the goto prompt is open
	GotoInput     string
	Suggestion    string
	StatusMessage string
	StatusIsError bool
	HelpModel     help.Model
	Keys          help.KeyMap
	ShowHelp      bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}
	height := state.Height
	if height <= 0 {
		height = 24
	}

	bottom := r.bottom(state, width)
	bodyHeight := height - lipgloss.Height(bottom)
	if bodyHeight < 5 {
		bodyHeight = 5
	}

	sb := state.Sidebar
	sb.Height = bodyHeight
	sidebar := r.RenderSidebar(sb)

	page := state.Page
	page.Width = width - lipgloss.Width(sidebar) - r.styles.Main.GetHorizontalFrameSize()
	page.Height = bodyHeight
	content := r.styles.Main.Render(r.RenderPage(page))

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	body = lipgloss.NewStyle().MaxHeight(bodyHeight).Render(body)
	return body + "\n" + bottom
}

func (r *Renderer) bottom(state ViewState, width int) string {
	var lines []string

	switch {
	case state.ConfirmTarget != "":
		lines = append(lines, r.styles.Confirm.Render(fmt.Sprintf("Delete %s? (y/n): ", state.ConfirmTarget)))
	case state.GotoPrompt != "":
		line := r.styles.Filter.Render(state.GotoPrompt) + state.GotoInput
		lines = append(lines, line)
	}

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		msg := style.Render(state.StatusMessage)
		if state.Suggestion != "" {
			msg += r.styles.Dim.Render(fmt.Sprintf("  did you mean %s?", state.Suggestion))
		}
		lines = append(lines, msg)
	}

	if state.Keys != nil {
		h := state.HelpModel
		h.ShowAll = state.ShowHelp
		h.Width = width
		lines = append(lines, r.styles.Help.Render(h.View(state.Keys)))
	}
	return strings.Join(lines, "\n")
}

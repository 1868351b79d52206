package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"procura/internal/ui/input/types"
)

// Pager shows long text outside the main screen
type Pager interface {
	Show(content string) error
}

// PagerOps shows content in the ov pager, handing the terminal over while it runs
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{program: program}
}

// Show runs ov over content until the user quits it
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Let ov finish with the screen before bubbletea takes it back
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// RenderHelpContent renders the key bindings for the pager
func RenderHelpContent(keys types.KeyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	sections := []string{"Movement", "Pages", "Filter", "Other"}

	var help strings.Builder
	help.WriteString(titleStyle.Render("Procura Help"))
	help.WriteString("\n")

	for i, group := range keys.FullHelp() {
		if i < len(sections) {
			help.WriteString(sectionStyle.Render(sections[i]))
			help.WriteString("\n")
		}
		for _, b := range group {
			writeBinding(&help, b, keyStyle, descStyle)
		}
	}

	help.WriteString("\n")
	help.WriteString(sectionStyle.Render("Prompts"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("enter"), descStyle.Render("Apply filter or go to path")))
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("esc"), descStyle.Render("Cancel, clearing the filter text")))
	help.WriteString(fmt.Sprintf("  %s%s", keyStyle.Render("y/n"), descStyle.Render("Answer a delete prompt")))

	return help.String()
}

func writeBinding(b *strings.Builder, binding key.Binding, keyStyle, descStyle lipgloss.Style) {
	h := binding.Help()
	b.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
}

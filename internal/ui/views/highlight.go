package views

import (
	"github.com/charmbracelet/lipgloss"

	"procura/internal/ui/services/search"
)

// HighlightMatch renders the first case-insensitive match of query in text
func HighlightMatch(text, query string, style lipgloss.Style) string {
	start, end, ok := search.HighlightSpan(text, query)
	if !ok {
		return text
	}
	return text[:start] + style.Render(text[start:end]) + text[end:]
}

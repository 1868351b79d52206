package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	uilogic "procura/internal/ui/logic"
	"procura/internal/ui/pages"
)

// PageState is what the content pane renderer needs
type PageState struct {
	Path        string
	View        pages.View
	Criteria    uilogic.Criteria
	Cursor      int
	Focused     bool
	ShowSummary bool
	Prompt      string // filter prompt while editing, "" otherwise
	Input       string
	Width       int
	Height      int
}

// cellPadding is the horizontal padding bubbles/table adds around each cell
const cellPadding = 2

// RenderPage draws the header, filter bar, tiles and table of the current page
func (r *Renderer) RenderPage(s PageState) string {
	v := s.View
	var parts []string

	header := r.styles.Title.Render(v.Title)
	if s.Path != "" {
		header += "  " + r.styles.Path.Render(s.Path)
	}
	parts = append(parts, header)

	for _, d := range v.Details {
		parts = append(parts, r.styles.Detail.Render(HighlightMatch(d, s.Criteria.Text, r.styles.Highlight)))
	}

	if v.Filterable() {
		parts = append(parts, r.filterBar(s))
	}

	if s.ShowSummary && len(v.Tiles) > 0 {
		parts = append(parts, r.tiles(v.Tiles, s.Width))
	}

	var footer []string
	if len(v.Rows) == 0 && v.Empty != "" {
		footer = append(footer, r.styles.Dim.Render(v.Empty))
	}
	if v.Footer != "" {
		footer = append(footer, r.styles.Dim.Render(v.Footer))
	}

	used := 0
	for _, p := range parts {
		used += lipgloss.Height(p)
	}
	tableHeight := s.Height - used - len(footer)
	if tableHeight < 3 {
		tableHeight = 3
	}

	if len(v.Columns) > 0 {
		parts = append(parts, r.RenderTable(v.Columns, v.Rows, s.Cursor, s.Focused, s.Width, tableHeight))
	}
	parts = append(parts, footer...)
	return strings.Join(parts, "\n")
}

func (r *Renderer) filterBar(s PageState) string {
	label := s.View.FilterLabel
	count := fmt.Sprintf("%d of %d", s.View.Matched, s.View.Total)

	if s.Prompt != "" {
		return r.styles.Filter.Render(s.Prompt) + s.Input + "  " + r.styles.Dim.Render(count)
	}

	var b strings.Builder
	if s.Criteria.Text != "" {
		b.WriteString(r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", s.Criteria.Text)))
		b.WriteString("  ")
	}
	category := s.Criteria.Category
	if category == "" {
		category = uilogic.All
	}
	b.WriteString(fmt.Sprintf("%s: ", label))
	if category == uilogic.All {
		b.WriteString(r.styles.Dim.Render(category))
	} else {
		b.WriteString(r.styles.Filter.Render(category))
	}
	b.WriteString("  ")
	b.WriteString(r.styles.Dim.Render(count))
	return b.String()
}

func (r *Renderer) tiles(tiles []pages.Tile, width int) string {
	boxes := make([]string, 0, len(tiles))
	for _, t := range tiles {
		boxes = append(boxes, r.styles.Tile.Render(t.Label+"\n"+r.styles.TileValue.Render(fmt.Sprint(t.Count))))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
	if lipgloss.Width(row) <= width {
		return row
	}

	// Not enough room for boxes
	compact := make([]string, 0, len(tiles))
	for _, t := range tiles {
		compact = append(compact, fmt.Sprintf("%s %s", t.Label, r.styles.TileValue.Render(fmt.Sprint(t.Count))))
	}
	return strings.Join(compact, r.styles.Dim.Render(" · "))
}

// RenderTable draws rows with bubbles/table. The cursor row is only styled
// while the table has focus.
func (r *Renderer) RenderTable(titles []string, rows [][]string, cursor int, focused bool, width, height int) string {
	trows := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		trows = append(trows, table.Row(row))
	}

	styles := r.styles.Table
	if !focused {
		styles.Selected = lipgloss.NewStyle()
	}

	t := table.New(
		table.WithColumns(FitColumns(titles, rows, width)),
		table.WithRows(trows),
		table.WithHeight(height),
		table.WithFocused(focused),
		table.WithStyles(styles),
	)
	t.SetCursor(cursor)
	return t.View()
}

// FitColumns sizes each column to its widest cell, then narrows the widest
// columns until the table fits in width.
func FitColumns(titles []string, rows [][]string, width int) []table.Column {
	widths := make([]int, len(titles))
	for i, title := range titles {
		widths[i] = lipgloss.Width(title)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const minWidth = 3
	avail := width - cellPadding*len(titles)
	for sum(widths) > avail {
		widest := 0
		for i, w := range widths {
			if w > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minWidth {
			break
		}
		widths[widest]--
	}

	cols := make([]table.Column, len(titles))
	for i, title := range titles {
		cols[i] = table.Column{Title: title, Width: widths[i]}
	}
	return cols
}

func sum(ns []int) int {
	total := 0
	for _, n := range ns {
		total += n
	}
	return total
}

package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with two decimals, thousands separators and
// an optional currency prefix: "Rp 1,250,000.00".
func FormatMoney(d decimal.Decimal, currency string) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	if currency != "" {
		out = currency + " " + out
	}
	return out
}

// FormatDate renders a date as YYYY-MM-DD, or "-" when unset
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func itoa(n int) string { return strconv.Itoa(n) }

// Render produces the plain-text export of a report, used by the pager
func Render(r Report, currency string, generated time.Time) string {
	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, Cells(r.Kind, row, currency))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Columns(r.Kind)...).
		Rows(rows...)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.Kind)
	fmt.Fprintf(&b, "Generated %s\n\n", generated.Format("2006-01-02 15:04"))
	b.WriteString(t.String())
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Orders: %d\n", r.Count)
	fmt.Fprintf(&b, "Total:  %s\n", FormatMoney(r.Total, currency))
	return b.String()
}

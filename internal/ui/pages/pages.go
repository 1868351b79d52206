// Package pages turns a route and the current filter criteria into the table
// a page shows.
package pages

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"procura/internal/logic"
	"procura/internal/report"
	uilogic "procura/internal/ui/logic"
	"procura/internal/ui/services/navigation"
)

// Context is the input of a page build
type Context struct {
	Path     string
	Title    string
	Data     logic.DataSource
	Criteria uilogic.Criteria
	Currency string
}

// Tile is one summary count above a table
type Tile struct {
	Label string
	Count int
}

// View is everything the renderer needs for one page
type View struct {
	Title       string   // route label
	Details     []string // key/value lines shown above the table on detail pages
	FilterLabel string   // "" when the page has no filter bar
	Options     []string
	Columns     []string
	Rows        [][]string
	Targets     []string // route opened by each row, "" when the row has none
	Tiles       []Tile
	Total       int
	Matched     int
	Footer      string
	Empty       string
	Report      *report.Report // recap pages only, used for export
	Deletable   bool
	IDs         []string // entity id per row on deletable pages
}

// Filterable reports whether the page accepts filter input
func (v View) Filterable() bool {
	return v.FilterLabel != ""
}

type builder func(ctx Context) View

// Build renders the page for ctx.Path. A panic while building is turned into
// an error and an empty view.
func Build(ctx Context) (v View, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Page %s panicked: %v", ctx.Path, r)
			v = View{Title: ctx.Title, Empty: "Nothing to show"}
			err = fmt.Errorf("failed to build page %s: %v", ctx.Path, r)
		}
	}()

	v = resolve(ctx.Path)(ctx)
	v.Title = ctx.Title
	return v, nil
}

func resolve(path string) builder {
	switch path {
	case navigation.PathDashboard:
		return dashboard
	case navigation.PathVendors:
		return vendors
	case navigation.PathItems:
		return items
	case navigation.PathPurchases:
		return purchases
	case navigation.PathTenders:
		return tenders
	case navigation.PathReports:
		return reportsIndex
	case navigation.PathInvoiceTabung:
		return recap(report.InvoiceTabung)
	case navigation.PathPurchaseRecap:
		return recap(report.PurchaseRecap)
	case navigation.PathVendorRecap:
		return recap(report.VendorRecap)
	}
	if id, ok := detailID(path, navigation.PathVendors); ok {
		return vendorDetail(id)
	}
	if id, ok := detailID(path, navigation.PathItems); ok {
		return itemDetail(id)
	}
	return notFound
}

func detailID(path, base string) (string, bool) {
	id, ok := strings.CutPrefix(path, base+"/")
	if !ok || id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

// table runs the filter engine over a collection and fills the row part of v
func table[T any](v *View, entities []T, c uilogic.Criteria, fs uilogic.FieldSet[T], tiles uilogic.DiscreteField[T], cells func(T) []string, target func(T) string) []T {
	visible := uilogic.Filter(entities, c, fs)
	summary := uilogic.Summarize(entities, c, fs, tiles)

	v.Options = uilogic.CategoryOptions(entities, fs)
	v.Total = summary.Total
	v.Matched = summary.Matched
	for _, g := range summary.Groups {
		v.Tiles = append(v.Tiles, Tile{Label: g.Value, Count: g.Count})
	}
	v.Rows = make([][]string, 0, len(visible))
	v.Targets = make([]string, 0, len(visible))
	for _, e := range visible {
		v.Rows = append(v.Rows, cells(e))
		t := ""
		if target != nil {
			t = target(e)
		}
		v.Targets = append(v.Targets, t)
	}
	if len(visible) == 0 {
		if len(entities) == 0 {
			v.Empty = "No records"
		} else {
			v.Empty = "No records match the filter"
		}
	}
	return visible
}

func orDash(s string) string {
	if s == "" {
		return uilogic.Unset
	}
	return s
}

func itoa(n int) string { return strconv.Itoa(n) }

func notFound(ctx Context) View {
	return View{Empty: fmt.Sprintf("No page at %s", ctx.Path)}
}

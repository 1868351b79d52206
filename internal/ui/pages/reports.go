package pages

import (
	"fmt"

	"github.com/shopspring/decimal"

	"procura/internal/report"
	uilogic "procura/internal/ui/logic"
	"procura/internal/ui/services/navigation"
)

func reportsIndex(ctx Context) View {
	v := View{Columns: []string{"Report", "Rows", "Total"}}
	for _, e := range []struct {
		kind report.Kind
		path string
	}{
		{report.InvoiceTabung, navigation.PathInvoiceTabung},
		{report.PurchaseRecap, navigation.PathPurchaseRecap},
		{report.VendorRecap, navigation.PathVendorRecap},
	} {
		r := report.Build(e.kind, ctx.Data)
		v.Rows = append(v.Rows, []string{e.kind.String(), itoa(len(r.Rows)), money(r.Total, ctx.Currency)})
		v.Targets = append(v.Targets, e.path)
		v.Tiles = append(v.Tiles, Tile{Label: e.kind.String(), Count: r.Count})
	}
	v.Total = len(v.Rows)
	v.Matched = v.Total
	return v
}

func recap(kind report.Kind) builder {
	return func(ctx Context) View {
		r := report.Build(kind, ctx.Data)
		label := "Category"
		if kind == report.PurchaseRecap {
			label = "Status"
		}
		v := View{
			FilterLabel: label,
			Columns:     report.Columns(kind),
		}
		visible := table(&v, r.Rows, ctx.Criteria, uilogic.RecapFields, nil,
			func(row report.Row) []string { return report.Cells(kind, row, ctx.Currency) },
			nil,
		)
		// export what is on screen
		shown := r.Subset(visible)
		v.Report = &shown
		v.Footer = fmt.Sprintf("%d of %d rows · total %s", len(visible), len(r.Rows), money(shown.Total, ctx.Currency))
		return v
	}
}

func money(d decimal.Decimal, currency string) string {
	return report.FormatMoney(d, currency)
}

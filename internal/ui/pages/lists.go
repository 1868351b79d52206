package pages

import (
	"procura/internal/domain"
	"procura/internal/report"
	uilogic "procura/internal/ui/logic"
	"procura/internal/ui/services/navigation"
)

func dashboard(ctx Context) View {
	ds := ctx.Data
	counts := []struct {
		label string
		path  string
		n     int
	}{
		{"Vendors", navigation.PathVendors, len(ds.Vendors())},
		{"Items", navigation.PathItems, len(ds.Items())},
		{"Purchases", navigation.PathPurchases, len(ds.Purchases())},
		{"Tenders", navigation.PathTenders, len(ds.Tenders())},
	}

	v := View{Columns: []string{"Collection", "Records"}}
	for _, c := range counts {
		v.Tiles = append(v.Tiles, Tile{Label: c.label, Count: c.n})
		v.Rows = append(v.Rows, []string{c.label, itoa(c.n)})
		v.Targets = append(v.Targets, c.path)
		v.Total += c.n
	}
	v.Matched = v.Total
	return v
}

func vendors(ctx Context) View {
	v := View{
		FilterLabel: "Category",
		Columns:     []string{"Code", "Name", "Category", "Status", "Phone", "Email"},
		Deletable:   true,
	}
	visible := table(&v, ctx.Data.Vendors(), ctx.Criteria, uilogic.VendorFields, uilogic.VendorStatus,
		func(x domain.Vendor) []string {
			return []string{orDash(x.Code), x.Name, orDash(x.Category), orDash(x.Status), orDash(x.Phone), orDash(x.Email)}
		},
		func(x domain.Vendor) string { return navigation.PathVendors + "/" + x.ID },
	)
	for _, x := range visible {
		v.IDs = append(v.IDs, x.ID)
	}
	return v
}

func items(ctx Context) View {
	v := View{
		FilterLabel: "Category",
		Columns:     []string{"Code", "Name", "Category", "Unit", "Stock", "Price"},
		Deletable:   true,
	}
	visible := table(&v, ctx.Data.Items(), ctx.Criteria, uilogic.ItemFields, uilogic.ItemStatus,
		func(x domain.Item) []string {
			return []string{orDash(x.Code), x.Name, orDash(x.Category), orDash(x.Unit), itoa(x.Stock), money(x.Price, ctx.Currency)}
		},
		func(x domain.Item) string { return navigation.PathItems + "/" + x.ID },
	)
	for _, x := range visible {
		v.IDs = append(v.IDs, x.ID)
	}
	return v
}

func purchases(ctx Context) View {
	v := View{
		FilterLabel: "Status",
		Columns:     []string{"Number", "Date", "Vendor", "Item", "Qty", "Total", "Status"},
		Deletable:   true,
	}
	visible := table(&v, ctx.Data.PurchaseLines(), ctx.Criteria, uilogic.PurchaseFields, uilogic.PurchaseStatus,
		func(x domain.PurchaseLine) []string {
			return []string{
				x.Number,
				report.FormatDate(x.Date),
				orDash(x.VendorName),
				orDash(x.ItemName),
				itoa(x.Quantity),
				money(x.Total(), ctx.Currency),
				orDash(x.Status),
			}
		},
		func(x domain.PurchaseLine) string { return navigation.PathVendors + "/" + x.VendorID },
	)
	for _, x := range visible {
		v.IDs = append(v.IDs, x.ID)
	}
	return v
}

func tenders(ctx Context) View {
	v := View{
		FilterLabel: "Status",
		Columns:     []string{"Number", "Title", "Category", "Status", "Deadline"},
		Deletable:   true,
	}
	visible := table(&v, ctx.Data.Tenders(), ctx.Criteria, uilogic.TenderFields, uilogic.TenderStatus,
		func(x domain.Tender) []string {
			return []string{x.Number, x.Title, orDash(x.Category), orDash(x.Status), report.FormatDate(x.Deadline)}
		},
		nil,
	)
	for _, x := range visible {
		v.IDs = append(v.IDs, x.ID)
	}
	return v
}

// Package report builds the recap reports shown under /reports.
package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"procura/internal/logic"
)

// Kind identifies a recap report
type Kind int

const (
	InvoiceTabung Kind = iota
	PurchaseRecap
	VendorRecap
)

// GasCategory is the item category invoiced on the tabung (gas cylinder) recap
const GasCategory = "Gas"

func (k Kind) String() string {
	switch k {
	case InvoiceTabung:
		return "Invoice Tabung"
	case PurchaseRecap:
		return "Purchase Recap"
	case VendorRecap:
		return "Vendor Recap"
	default:
		return "Unknown"
	}
}

// Row is one line of a recap report. Unused fields stay zero for a given Kind.
type Row struct {
	Reference string // PO number, purchase status or vendor code
	Vendor    string
	Item      string
	Category  string
	Date      time.Time
	Quantity  int
	UnitPrice decimal.Decimal
	Count     int
	Amount    decimal.Decimal
}

// Report is a computed recap
type Report struct {
	Kind  Kind
	Rows  []Row
	Count int
	Total decimal.Decimal
}

// Subset returns the report restricted to rows, with count and total
// recomputed from them.
func (r Report) Subset(rows []Row) Report {
	sub := Report{Kind: r.Kind, Rows: make([]Row, len(rows)), Total: decimal.Zero}
	copy(sub.Rows, rows)
	for _, row := range rows {
		sub.Count += row.Count
		sub.Total = sub.Total.Add(row.Amount)
	}
	return sub
}

// Build computes the report of the given kind
func Build(kind Kind, ds logic.DataSource) Report {
	switch kind {
	case PurchaseRecap:
		return BuildPurchaseRecap(ds)
	case VendorRecap:
		return BuildVendorRecap(ds)
	default:
		return BuildInvoiceTabung(ds)
	}
}

// BuildInvoiceTabung lists every non-cancelled purchase of gas items
func BuildInvoiceTabung(ds logic.DataSource) Report {
	r := Report{Kind: InvoiceTabung, Rows: []Row{}}
	for _, p := range ds.PurchaseLines() {
		if !strings.EqualFold(p.ItemCategory, GasCategory) || p.Status == "cancelled" {
			continue
		}
		row := Row{
			Reference: p.Number,
			Vendor:    p.VendorName,
			Item:      p.ItemName,
			Category:  p.ItemCategory,
			Date:      p.Date,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
			Count:     1,
			Amount:    p.Total(),
		}
		r.Rows = append(r.Rows, row)
		r.Count++
		r.Total = r.Total.Add(row.Amount)
	}
	return r
}

// BuildPurchaseRecap totals purchases per status, in first-seen status order
func BuildPurchaseRecap(ds logic.DataSource) Report {
	r := Report{Kind: PurchaseRecap, Rows: []Row{}}
	index := make(map[string]int)
	for _, p := range ds.PurchaseLines() {
		i, ok := index[p.Status]
		if !ok {
			i = len(r.Rows)
			index[p.Status] = i
			r.Rows = append(r.Rows, Row{Reference: p.Status, Category: p.Status})
		}
		amount := p.Total()
		r.Rows[i].Count++
		r.Rows[i].Quantity += p.Quantity
		r.Rows[i].Amount = r.Rows[i].Amount.Add(amount)
		r.Count++
		r.Total = r.Total.Add(amount)
	}
	return r
}

// BuildVendorRecap totals purchases per vendor, in vendor order. Vendors
// without purchases are listed with zero totals.
func BuildVendorRecap(ds logic.DataSource) Report {
	r := Report{Kind: VendorRecap, Rows: []Row{}}
	index := make(map[string]int)
	for _, v := range ds.Vendors() {
		index[v.ID] = len(r.Rows)
		r.Rows = append(r.Rows, Row{Reference: v.Code, Vendor: v.Name, Category: v.Category})
	}
	for _, p := range ds.Purchases() {
		i, ok := index[p.VendorID]
		if !ok || p.Status == "cancelled" {
			continue
		}
		amount := p.Total()
		r.Rows[i].Count++
		r.Rows[i].Quantity += p.Quantity
		r.Rows[i].Amount = r.Rows[i].Amount.Add(amount)
		r.Count++
		r.Total = r.Total.Add(amount)
	}
	return r
}

// Columns returns the table headers for a report kind
func Columns(kind Kind) []string {
	switch kind {
	case PurchaseRecap:
		return []string{"Status", "Orders", "Qty", "Amount"}
	case VendorRecap:
		return []string{"Code", "Vendor", "Category", "Orders", "Qty", "Amount"}
	default:
		return []string{"PO", "Date", "Vendor", "Item", "Qty", "Unit Price", "Amount"}
	}
}

// Cells formats a row for the columns of its kind
func Cells(kind Kind, row Row, currency string) []string {
	switch kind {
	case PurchaseRecap:
		return []string{
			orDash(row.Reference),
			itoa(row.Count),
			itoa(row.Quantity),
			FormatMoney(row.Amount, currency),
		}
	case VendorRecap:
		return []string{
			orDash(row.Reference),
			row.Vendor,
			orDash(row.Category),
			itoa(row.Count),
			itoa(row.Quantity),
			FormatMoney(row.Amount, currency),
		}
	default:
		return []string{
			row.Reference,
			FormatDate(row.Date),
			row.Vendor,
			row.Item,
			itoa(row.Quantity),
			FormatMoney(row.UnitPrice, currency),
			FormatMoney(row.Amount, currency),
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

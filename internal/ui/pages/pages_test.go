package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procura/internal/dataset"
	"procura/internal/logic"
	uilogic "procura/internal/ui/logic"
)

func sampleData(t *testing.T) logic.DataSource {
	t.Helper()
	ds, err := dataset.Default()
	require.NoError(t, err)
	return logic.NewMemoryDataSource(*ds)
}

func build(t *testing.T, path, text, category string) View {
	t.Helper()
	v, err := Build(Context{
		Path:     path,
		Title:    "Title",
		Data:     sampleData(t),
		Criteria: uilogic.Criteria{Text: text, Category: category},
		Currency: "Rp",
	})
	require.NoError(t, err)
	return v
}

func column(v View, i int) []string {
	out := make([]string, 0, len(v.Rows))
	for _, r := range v.Rows {
		out = append(out, r[i])
	}
	return out
}

func TestDashboard(t *testing.T) {
	v := build(t, "/", "", uilogic.All)
	assert.Equal(t, "Title", v.Title)
	assert.Equal(t, []Tile{{"Vendors", 4}, {"Items", 5}, {"Purchases", 5}, {"Tenders", 3}}, v.Tiles)
	assert.Equal(t, []string{"/vendors", "/items", "/purchases", "/tenders"}, v.Targets)
	assert.False(t, v.Filterable())
}

func TestVendors_Unfiltered(t *testing.T) {
	v := build(t, "/vendors", "", uilogic.All)
	assert.Len(t, v.Rows, 4)
	assert.Equal(t, 4, v.Total)
	assert.Equal(t, 4, v.Matched)
	assert.Equal(t, []string{uilogic.All, "Gas", "Parts"}, v.Options)
	assert.Equal(t, []Tile{{"active", 3}, {"inactive", 1}}, v.Tiles)
	assert.Equal(t, "Category", v.FilterLabel)
	assert.True(t, v.Deletable)
	assert.Equal(t, []string{"v1", "v2", "v3", "v4"}, v.IDs)
	assert.Equal(t, "-", v.Rows[3][2])
}

func TestVendors_TextAndCategory(t *testing.T) {
	v := build(t, "/vendors", "GAS", uilogic.All)
	assert.Equal(t, []string{"PT Sumber Gas Nusantara"}, column(v, 1))
	assert.Equal(t, 4, v.Total)
	assert.Equal(t, 1, v.Matched)

	v = build(t, "/vendors", "", "Gas")
	assert.Equal(t, []string{"PT Sumber Gas Nusantara", "CV Tabung Jaya"}, column(v, 1))

	v = build(t, "/vendors", "", "Parts")
	assert.Equal(t, []string{"/vendors/v3"}, v.Targets)

	v = build(t, "/vendors", "zzz", uilogic.All)
	assert.Empty(t, v.Rows)
	assert.Equal(t, "No records match the filter", v.Empty)
	// tiles stay over the whole collection
	assert.Equal(t, []Tile{{"active", 3}, {"inactive", 1}}, v.Tiles)
}

func TestVendors_SearchByCode(t *testing.T) {
	v := build(t, "/vendors", "vnd-003", uilogic.All)
	assert.Equal(t, []string{"VND-003"}, column(v, 0))
	assert.Equal(t, []string{"v3"}, v.IDs)
}

func TestPurchases_StatusFilter(t *testing.T) {
	v := build(t, "/purchases", "", "received")
	assert.Equal(t, []string{"PO-2025-001", "PO-2025-002"}, column(v, 0))
	assert.Equal(t, "Status", v.FilterLabel)
	assert.Equal(t, []Tile{{"received", 2}, {"ordered", 1}, {"cancelled", 1}, {"draft", 1}}, v.Tiles)
	assert.Equal(t, "Rp 3,600,000.00", v.Rows[0][5])
	assert.Equal(t, "2025-01-06", v.Rows[0][1])
}

func TestItemsAndTenders(t *testing.T) {
	v := build(t, "/items", "tabung", uilogic.All)
	assert.Equal(t, []string{"ITM-001", "ITM-002", "ITM-003"}, column(v, 0))
	assert.Equal(t, "/items/i1", v.Targets[0])

	v = build(t, "/tenders", "", "open")
	assert.Equal(t, []string{"TDR-2025-01"}, column(v, 0))
	assert.Equal(t, []string{""}, v.Targets)
	assert.Equal(t, []Tile{{"open", 1}, {"evaluation", 1}, {"awarded", 1}}, v.Tiles)
}

func TestVendorDetail(t *testing.T) {
	v := build(t, "/vendors/v1", "", uilogic.All)
	require.NotEmpty(t, v.Details)
	assert.Equal(t, "Vendor: PT Sumber Gas Nusantara", v.Details[0])
	assert.Equal(t, []string{"/items/i1", "/items/i2"}, v.Targets)
	assert.Equal(t, "Rp 180,000.00", v.Rows[0][3])

	v = build(t, "/vendors/v3", "hose", uilogic.All)
	assert.Equal(t, []string{"Gas Hose 1.8 m"}, column(v, 1))
}

func TestItemDetail(t *testing.T) {
	v := build(t, "/items/i1", "", uilogic.All)
	assert.Equal(t, []string{"PT Sumber Gas Nusantara", "CV Tabung Jaya"}, column(v, 1))
	assert.Equal(t, []string{"/vendors/v1", "/vendors/v2"}, v.Targets)
}

func TestDetailNotFound(t *testing.T) {
	v := build(t, "/vendors/nope", "", uilogic.All)
	assert.Empty(t, v.Rows)
	assert.Contains(t, v.Empty, "not found")
	assert.Equal(t, "Title", v.Title)

	v = build(t, "/vendors/v1/extra", "", uilogic.All)
	assert.Equal(t, "No page at /vendors/v1/extra", v.Empty)
}

func TestReportsIndex(t *testing.T) {
	v := build(t, "/reports", "", uilogic.All)
	assert.Equal(t, []string{"Invoice Tabung", "Purchase Recap", "Vendor Recap"}, column(v, 0))
	assert.Equal(t, []string{"/reports/invoice-tabung", "/reports/purchase-recap", "/reports/vendor-recap"}, v.Targets)
}

func TestInvoiceTabungRecap(t *testing.T) {
	v := build(t, "/reports/invoice-tabung", "", uilogic.All)
	require.NotNil(t, v.Report)
	assert.Equal(t, []string{"PO-2025-001", "PO-2025-002", "PO-2025-005"}, column(v, 0))
	assert.Equal(t, "3 of 3 rows · total Rp 6,927,500.00", v.Footer)

	v = build(t, "/reports/invoice-tabung", "po-2025-005", uilogic.All)
	assert.Equal(t, "1 of 3 rows · total Rp 2,737,500.00", v.Footer)

	// the exported report carries only the visible rows
	require.NotNil(t, v.Report)
	require.Len(t, v.Report.Rows, 1)
	assert.Equal(t, "PO-2025-005", v.Report.Rows[0].Reference)
	assert.Equal(t, 1, v.Report.Count)
	assert.Equal(t, "Rp 2,737,500.00", money(v.Report.Total, "Rp"))
}

func TestPurchaseRecapFiltersByStatus(t *testing.T) {
	v := build(t, "/reports/purchase-recap", "", "cancelled")
	assert.Equal(t, "Status", v.FilterLabel)
	assert.Equal(t, []string{"cancelled"}, column(v, 0))
}

func TestBuildRecoversPanic(t *testing.T) {
	v, err := Build(Context{Path: "/vendors", Title: "Vendors"})
	require.Error(t, err)
	assert.Equal(t, "Vendors", v.Title)
	assert.Empty(t, v.Rows)
	assert.Equal(t, "Nothing to show", v.Empty)
}

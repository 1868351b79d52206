package logic

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procura/internal/domain"
)

func fixture() domain.Dataset {
	return domain.Dataset{
		Vendors: []domain.Vendor{
			{ID: "v1", Name: "PT Gas Jaya", Category: "Gas"},
			{ID: "v2", Name: "CV Valve Mandiri", Category: "Parts"},
		},
		Items: []domain.Item{
			{ID: "i1", Name: "Gas Tank A", Category: "Gas"},
			{ID: "i2", Name: "Valve B", Category: "Parts"},
			{ID: "i3", Name: "Regulator C", Category: "Parts"},
		},
		Offers: []domain.Offer{
			{VendorID: "v1", ItemID: "i1", Price: decimal.NewFromInt(150000)},
			{VendorID: "v2", ItemID: "i3", Price: decimal.NewFromInt(90000)},
			{VendorID: "v2", ItemID: "i2", Price: decimal.NewFromInt(45000)},
			{VendorID: "v1", ItemID: "i2", Price: decimal.NewFromInt(47000)},
		},
		Purchases: []domain.Purchase{
			{ID: "p1", Number: "PO-001", VendorID: "v1", ItemID: "i1", Quantity: 3, UnitPrice: decimal.NewFromInt(150000)},
			{ID: "p2", Number: "PO-002", VendorID: "v9", ItemID: "i2", Quantity: 1, UnitPrice: decimal.NewFromInt(45000)},
		},
	}
}

func TestMemoryDataSource_ItemsByVendorKeepsOfferOrder(t *testing.T) {
	ds := NewMemoryDataSource(fixture())

	lines := ds.ItemsByVendor("v2")
	require.Len(t, lines, 2)
	assert.Equal(t, "Regulator C", lines[0].Item.Name)
	assert.Equal(t, "Valve B", lines[1].Item.Name)
	assert.Equal(t, "CV Valve Mandiri", lines[0].Vendor.Name)
}

func TestMemoryDataSource_VendorsByItem(t *testing.T) {
	ds := NewMemoryDataSource(fixture())

	lines := ds.VendorsByItem("i2")
	require.Len(t, lines, 2)
	assert.Equal(t, "v2", lines[0].Vendor.ID)
	assert.Equal(t, "v1", lines[1].Vendor.ID)
	assert.True(t, lines[1].Price.Equal(decimal.NewFromInt(47000)))

	assert.Empty(t, ds.VendorsByItem("missing"))
	assert.NotNil(t, ds.VendorsByItem("missing"))
}

func TestMemoryDataSource_ReturnsCopies(t *testing.T) {
	ds := NewMemoryDataSource(fixture())

	vendors := ds.Vendors()
	vendors[0].Name = "mutated"

	v, ok := ds.Vendor("v1")
	require.True(t, ok)
	assert.Equal(t, "PT Gas Jaya", v.Name)
	assert.Equal(t, "PT Gas Jaya", ds.Vendors()[0].Name)
}

func TestMemoryDataSource_Lookup(t *testing.T) {
	ds := NewMemoryDataSource(fixture())

	_, ok := ds.Item("i3")
	assert.True(t, ok)
	_, ok = ds.Item("nope")
	assert.False(t, ok)
	_, ok = ds.Vendor("")
	assert.False(t, ok)
}

func TestMemoryDataSource_PurchaseLines(t *testing.T) {
	ds := NewMemoryDataSource(fixture())

	lines := ds.PurchaseLines()
	require.Len(t, lines, 2)
	assert.Equal(t, "PT Gas Jaya", lines[0].VendorName)
	assert.Equal(t, "Gas", lines[0].ItemCategory)
	assert.True(t, lines[0].Total().Equal(decimal.NewFromInt(450000)))

	// unknown vendor leaves the name empty rather than failing
	assert.Equal(t, "", lines[1].VendorName)
	assert.Equal(t, "Valve B", lines[1].ItemName)
}

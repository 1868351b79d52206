package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vendor represents a supplier of items
type Vendor struct {
	ID          string `toml:"id"`
	Code        string `toml:"code"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Category    string `toml:"category"` // "" if uncategorised
	Status      string `toml:"status"`   // active, inactive, blacklisted
	Phone       string `toml:"phone"`
	Address     string `toml:"address"`
	Email       string `toml:"email"`
}

// Item represents a stocked or purchasable item
type Item struct {
	ID          string          `toml:"id"`
	Code        string          `toml:"code"`
	Name        string          `toml:"name"`
	Description string          `toml:"description"`
	Category    string          `toml:"category"`
	Status      string          `toml:"status"`
	Unit        string          `toml:"unit"`
	Price       decimal.Decimal `toml:"price"` // list price
	Stock       int             `toml:"stock"`
}

// Offer links a vendor to an item it supplies
type Offer struct {
	VendorID string          `toml:"vendor_id"`
	ItemID   string          `toml:"item_id"`
	Price    decimal.Decimal `toml:"price"`
}

// Purchase is a single-line purchase order
type Purchase struct {
	ID        string          `toml:"id"`
	Number    string          `toml:"number"`
	VendorID  string          `toml:"vendor_id"`
	ItemID    string          `toml:"item_id"`
	Quantity  int             `toml:"quantity"`
	UnitPrice decimal.Decimal `toml:"unit_price"`
	Date      time.Time       `toml:"date"`
	Status    string          `toml:"status"` // draft, ordered, received, cancelled
	Notes     string          `toml:"notes"`
}

// Total returns quantity times unit price
func (p Purchase) Total() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Tender is a call for bids
type Tender struct {
	ID          string    `toml:"id"`
	Number      string    `toml:"number"`
	Title       string    `toml:"title"`
	Description string    `toml:"description"`
	Category    string    `toml:"category"`
	Status      string    `toml:"status"` // open, evaluation, awarded, closed
	Deadline    time.Time `toml:"deadline"`
}

// Dataset is the whole read-only snapshot shown by the application
type Dataset struct {
	Vendors   []Vendor   `toml:"vendors"`
	Items     []Item     `toml:"items"`
	Offers    []Offer    `toml:"offers"`
	Purchases []Purchase `toml:"purchases"`
	Tenders   []Tender   `toml:"tenders"`
}

// PurchaseLine is a purchase joined with its vendor and item for display
type PurchaseLine struct {
	Purchase
	VendorName   string
	ItemName     string
	ItemCategory string
}

// OfferLine is an offer joined with the other side of the relation
type OfferLine struct {
	Offer
	Vendor Vendor
	Item   Item
}

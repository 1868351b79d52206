package logic

import "procura/internal/domain"

// DataSource provides read-only access to the procurement dataset.
// Collections keep seed order and every call returns a fresh copy.
type DataSource interface {
	Vendors() []domain.Vendor
	Items() []domain.Item
	Offers() []domain.Offer
	Purchases() []domain.Purchase
	Tenders() []domain.Tender

	Vendor(id string) (domain.Vendor, bool)
	Item(id string) (domain.Item, bool)

	// ItemsByVendor returns the items offered by a vendor, in offer order
	ItemsByVendor(vendorID string) []domain.OfferLine
	// VendorsByItem returns the vendors offering an item, in offer order
	VendorsByItem(itemID string) []domain.OfferLine
	// PurchaseLines returns purchases joined with vendor and item names
	PurchaseLines() []domain.PurchaseLine
}

// Router owns the current path
type Router interface {
	CurrentPath() string
	Navigate(path string)
}

package pages

import (
	"fmt"

	"procura/internal/domain"
	uilogic "procura/internal/ui/logic"
	"procura/internal/ui/services/navigation"
)

func vendorDetail(id string) builder {
	return func(ctx Context) View {
		vendor, ok := ctx.Data.Vendor(id)
		if !ok {
			return View{Empty: fmt.Sprintf("Vendor %q not found", id)}
		}
		v := View{
			Details: []string{
				"Vendor: " + vendor.Name,
				"Code: " + orDash(vendor.Code),
				"Category: " + orDash(vendor.Category),
				"Status: " + orDash(vendor.Status),
				"Phone: " + orDash(vendor.Phone),
				"Email: " + orDash(vendor.Email),
				"Address: " + orDash(vendor.Address),
			},
			FilterLabel: "Category",
			Columns:     []string{"Code", "Item", "Category", "Offer", "List Price"},
		}
		table(&v, ctx.Data.ItemsByVendor(id), ctx.Criteria, uilogic.OfferFields, nil,
			func(o domain.OfferLine) []string {
				return []string{
					orDash(o.Item.Code),
					o.Item.Name,
					orDash(o.Item.Category),
					money(o.Price, ctx.Currency),
					money(o.Item.Price, ctx.Currency),
				}
			},
			func(o domain.OfferLine) string { return navigation.PathItems + "/" + o.Item.ID },
		)
		return v
	}
}

func itemDetail(id string) builder {
	return func(ctx Context) View {
		item, ok := ctx.Data.Item(id)
		if !ok {
			return View{Empty: fmt.Sprintf("Item %q not found", id)}
		}
		v := View{
			Details: []string{
				"Item: " + item.Name,
				"Code: " + orDash(item.Code),
				"Category: " + orDash(item.Category),
				"Unit: " + orDash(item.Unit),
				"Stock: " + itoa(item.Stock),
				"List price: " + money(item.Price, ctx.Currency),
			},
			FilterLabel: "Category",
			Columns:     []string{"Code", "Vendor", "Status", "Offer"},
		}
		table(&v, ctx.Data.VendorsByItem(id), ctx.Criteria, offerVendorFields, nil,
			func(o domain.OfferLine) []string {
				return []string{orDash(o.Vendor.Code), o.Vendor.Name, orDash(o.Vendor.Status), money(o.Price, ctx.Currency)}
			},
			func(o domain.OfferLine) string { return navigation.PathVendors + "/" + o.Vendor.ID },
		)
		return v
	}
}

// offerVendorFields filters an item's offers by the vendor's category
var offerVendorFields = uilogic.FieldSet[domain.OfferLine]{
	Search:   uilogic.OfferFields.Search,
	Category: uilogic.Discrete(func(o domain.OfferLine) string { return o.Vendor.Category }),
}

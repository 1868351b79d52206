package logic

import (
	"procura/internal/domain"
	"procura/internal/report"
)

// Field tables: the searchable and categorical fields of each list page.

var VendorFields = FieldSet[domain.Vendor]{
	Search: []TextField[domain.Vendor]{
		func(v domain.Vendor) string { return v.Code },
		func(v domain.Vendor) string { return v.Name },
		func(v domain.Vendor) string { return v.Description },
		func(v domain.Vendor) string { return v.Phone },
		func(v domain.Vendor) string { return v.Address },
		func(v domain.Vendor) string { return v.Email },
	},
	Category: Discrete(func(v domain.Vendor) string { return v.Category }),
}

// VendorStatus groups vendors for the summary tiles
var VendorStatus = Discrete(func(v domain.Vendor) string { return v.Status })

var ItemFields = FieldSet[domain.Item]{
	Search: []TextField[domain.Item]{
		func(i domain.Item) string { return i.Code },
		func(i domain.Item) string { return i.Name },
		func(i domain.Item) string { return i.Description },
		func(i domain.Item) string { return i.Unit },
	},
	Category: Discrete(func(i domain.Item) string { return i.Category }),
}

var ItemStatus = Discrete(func(i domain.Item) string { return i.Status })

// PurchaseFields filters purchases by status; the tiles group them the same way
var PurchaseFields = FieldSet[domain.PurchaseLine]{
	Search: []TextField[domain.PurchaseLine]{
		func(p domain.PurchaseLine) string { return p.Number },
		func(p domain.PurchaseLine) string { return p.VendorName },
		func(p domain.PurchaseLine) string { return p.ItemName },
		func(p domain.PurchaseLine) string { return p.Notes },
	},
	Category: Discrete(func(p domain.PurchaseLine) string { return p.Status }),
}

// PurchaseStatus groups purchases for the summary tiles
var PurchaseStatus = Discrete(func(p domain.PurchaseLine) string { return p.Status })

var TenderFields = FieldSet[domain.Tender]{
	Search: []TextField[domain.Tender]{
		func(t domain.Tender) string { return t.Number },
		func(t domain.Tender) string { return t.Title },
		func(t domain.Tender) string { return t.Description },
	},
	Category: Discrete(func(t domain.Tender) string { return t.Status }),
}

// TenderStatus groups tenders for the summary tiles
var TenderStatus = Discrete(func(t domain.Tender) string { return t.Status })

// OfferFields is used on the vendor and item detail pages
var OfferFields = FieldSet[domain.OfferLine]{
	Search: []TextField[domain.OfferLine]{
		func(o domain.OfferLine) string { return o.Vendor.Name },
		func(o domain.OfferLine) string { return o.Item.Name },
		func(o domain.OfferLine) string { return o.Item.Code },
	},
	Category: Discrete(func(o domain.OfferLine) string { return o.Item.Category }),
}

var RecapFields = FieldSet[report.Row]{
	Search: []TextField[report.Row]{
		func(r report.Row) string { return r.Reference },
		func(r report.Row) string { return r.Vendor },
		func(r report.Row) string { return r.Item },
	},
	Category: Discrete(func(r report.Row) string { return r.Category }),
}

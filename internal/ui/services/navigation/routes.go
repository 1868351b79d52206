package navigation

import (
	"strings"
)

// Route paths
const (
	PathDashboard     = "/"
	PathVendors       = "/vendors"
	PathItems         = "/items"
	PathPurchases     = "/purchases"
	PathTenders       = "/tenders"
	PathReports       = "/reports"
	PathInvoiceTabung = "/reports/invoice-tabung"
	PathPurchaseRecap = "/reports/purchase-recap"
	PathVendorRecap   = "/reports/vendor-recap"
)

// Menu group names
const (
	GroupMasterData  = "masterdata"
	GroupProcurement = "procurement"
	GroupReports     = "reports"
)

// HomeLabel is the title shown for the dashboard and for unknown paths
const HomeLabel = "Dashboard"

// DefaultMenu returns the application sidebar
func DefaultMenu() Menu {
	return Menu{
		{Link: &Link{Label: "Dashboard", Path: PathDashboard, Icon: "◆"}},
		{Group: &Group{Name: GroupMasterData, Label: "Master Data", Icon: "▤", Links: []Link{
			{Label: "Vendors", Path: PathVendors},
			{Label: "Items", Path: PathItems},
		}}},
		{Group: &Group{Name: GroupProcurement, Label: "Procurement", Icon: "⇄", Links: []Link{
			{Label: "Purchases", Path: PathPurchases},
			{Label: "Tenders", Path: PathTenders},
		}}},
		{Group: &Group{Name: GroupReports, Label: "Reports", Icon: "≡", Links: []Link{
			{Label: "Recap", Path: PathReports},
			{Label: "Invoice Tabung", Path: PathInvoiceTabung},
			{Label: "Purchase Recap", Path: PathPurchaseRecap},
			{Label: "Vendor Recap", Path: PathVendorRecap},
		}}},
	}
}

// DefaultRoutes returns the page title table, most specific paths first
func DefaultRoutes() RouteTable {
	return RouteTable{
		Routes: []Route{
			{Path: PathInvoiceTabung, Label: "Invoice Tabung Recap"},
			{Path: PathPurchaseRecap, Label: "Purchase Recap"},
			{Path: PathVendorRecap, Label: "Vendor Recap"},
			{Path: PathReports, Label: "Reports"},
			{Path: PathPurchases, Label: "Purchases"},
			{Path: PathTenders, Label: "Tenders"},
			{Path: PathVendors + "/", Label: "Vendor Detail"},
			{Path: PathVendors, Label: "Vendors"},
			{Path: PathItems + "/", Label: "Item Detail"},
			{Path: PathItems, Label: "Items"},
			{Path: PathDashboard, Label: HomeLabel},
		},
		Default: HomeLabel,
	}
}

// IsActivePath reports whether candidate should be highlighted while current
// is the route. The root only matches itself; any other candidate also
// matches its sub-routes ("/vendors" matches "/vendors/5" but not
// "/vendors-archive"). A candidate ending in "/" matches only sub-routes.
func IsActivePath(current, candidate string) bool {
	if candidate == "" {
		return false
	}
	if current == candidate {
		return true
	}
	if candidate == "/" {
		return false
	}
	if strings.HasSuffix(candidate, "/") {
		return strings.HasPrefix(current, candidate) && len(current) > len(candidate)
	}
	return strings.HasPrefix(current, candidate+"/")
}

// LabelFor returns the label of the first route matching path, or Default
func (t RouteTable) LabelFor(path string) string {
	if r, ok := t.Lookup(path); ok {
		return r.Label
	}
	return t.Default
}

// Lookup returns the first route matching path
func (t RouteTable) Lookup(path string) (Route, bool) {
	for _, r := range t.Routes {
		if IsActivePath(path, r.Path) {
			return r, true
		}
	}
	return Route{}, false
}

// Shadowed lists routes that can never be returned because an earlier route
// already matches every path they match.
func (t RouteTable) Shadowed() []Route {
	var shadowed []Route
	for i, r := range t.Routes {
		probe := r.Path
		if r.Path != "/" && strings.HasSuffix(r.Path, "/") {
			// sub-route only entries are reached through a child path
			probe = r.Path + "x"
		}
		for _, earlier := range t.Routes[:i] {
			if IsActivePath(probe, earlier.Path) {
				shadowed = append(shadowed, r)
				break
			}
		}
	}
	return shadowed
}

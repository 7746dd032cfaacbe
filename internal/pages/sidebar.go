package pages

import "github.com/leapstack-labs/lustre/internal/nav"

// Section is one category of the top navigation with its sidebar items.
type Section struct {
	Category string
	Items    []string
}

var sidebar = []Section{
	{Category: nav.CategoryHome},
	{Category: nav.CategoryMarketing, Items: []string{"Campaigns", "Email Marketing", "Social Media", "Promotions", "Influencer Hub", "Marketing Calendar"}},
	{Category: nav.CategoryCRM, Items: []string{"Customers", "Leads", "Segments", "Loyalty Program", "Support Tickets", "Customer Insights"}},
	{Category: nav.CategoryProducts, Items: []string{"Catalog", "Materials", "Gemstones", "Collections", "Pricing", "Inventory"}},
	{Category: nav.CategoryOrders, Items: []string{nav.ItemOverview, "All Orders", "Pre-Orders", "Custom Orders", "Returns", "Invoices"}},
	{Category: nav.CategoryFulfilment, Items: []string{nav.ItemOverview, "Production Queue", "Quality Control", "Engraving", "Packaging"}},
	{Category: nav.CategoryLogistics, Items: []string{nav.ItemOverview, nav.ItemShipping, "Warehouses", "Carriers", "Tracking"}},
	{Category: nav.CategoryReports, Items: []string{"Sales Reports", "Inventory Reports", "Financial Reports"}},
	{Category: nav.CategoryAdministration, Items: []string{"Users & Roles", "Teams", "Integrations", "Audit Log", "Settings", "Billing"}},
	{Category: nav.CategoryWorkspace, Items: []string{nav.ItemMyWorkspace, "Tasks", "Calendar", "Documents", "Messages"}},
}

// Sidebar returns the navigation sections in display order.
// The returned slice is a copy.
func Sidebar() []Section {
	out := make([]Section, len(sidebar))
	for i, s := range sidebar {
		out[i] = Section{Category: s.Category, Items: append([]string(nil), s.Items...)}
	}
	return out
}

// Categories returns the category names in display order.
func Categories() []string {
	out := make([]string, len(sidebar))
	for i, s := range sidebar {
		out[i] = s.Category
	}
	return out
}

// ItemsFor returns the sidebar items of a category, or nil when the category
// is unknown or has none.
func ItemsFor(category string) []string {
	for _, s := range sidebar {
		if s.Category == category {
			return append([]string(nil), s.Items...)
		}
	}
	return nil
}

// CategoryOf returns the first category listing item. It is used to turn a
// page link into a full navigation target.
func CategoryOf(item string) (string, bool) {
	for _, s := range sidebar {
		for _, it := range s.Items {
			if it == item {
				return s.Category, true
			}
		}
	}
	return "", false
}

// offCatalogProbes are keys the sidebar never produces but page links and
// configuration can: a cross-linked item and an unknown department.
var offCatalogProbes = []Key{
	{Category: nav.CategoryOrders, Item: nav.ItemShipping},
	{Category: nav.CategoryFulfilment, Item: nav.ItemShipping},
	{Category: "Boutique Ops"},
	{Category: "Boutique Ops", Item: "Catalog"},
}

// Probes returns every (category, item) pair the sidebar can produce,
// including each category with no item selected, followed by a few keys
// outside the sidebar catalog.
func Probes() []Key {
	var keys []Key
	for _, s := range sidebar {
		keys = append(keys, Key{Category: s.Category})
		for _, it := range s.Items {
			keys = append(keys, Key{Category: s.Category, Item: it})
		}
	}
	return append(keys, offCatalogProbes...)
}

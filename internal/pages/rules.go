package pages

import (
	"strings"

	"github.com/leapstack-labs/lustre/internal/nav"
)

// Key is the navigation pair a page is resolved for. An empty Item means no
// sidebar item is selected.
type Key struct {
	Category string
	Item     string
}

// Predicate reports whether a rule applies to a key.
type Predicate func(Key) bool

// Rule maps matching keys to a page.
type Rule struct {
	Name  string
	Match Predicate
	Page  PageID
}

// Table is an ordered rule list. The first matching rule wins.
type Table []Rule

// Category matches any key in one of the categories, whatever the item.
func Category(categories ...string) Rule {
	set := toSet(categories)
	return Rule{
		Name:  "category:" + strings.Join(categories, "|"),
		Match: func(k Key) bool { return set[k.Category] },
	}
}

// Landing matches a key in one of the categories with no item selected.
func Landing(categories ...string) Rule {
	set := toSet(categories)
	return Rule{
		Name:  "landing:" + strings.Join(categories, "|"),
		Match: func(k Key) bool { return k.Item == "" && set[k.Category] },
	}
}

// Item matches an item in any category.
func Item(item string) Rule {
	return Rule{
		Name:  "item:" + item,
		Match: func(k Key) bool { return k.Item == item },
	}
}

// At matches exactly one category and item.
func At(category, item string) Rule {
	return Rule{
		Name:  "at:" + category + "/" + item,
		Match: func(k Key) bool { return k.Category == category && k.Item == item },
	}
}

// To sets the page a rule resolves to.
func (r Rule) To(page PageID) Rule {
	r.Page = page
	return r
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// DefaultTable returns the shell's rule table.
func DefaultTable() Table {
	return Table{
		// Home short-circuits everything else.
		Category(nav.CategoryHome).To(HomePage),

		// Shipping opens the board from wherever it is linked.
		Item(nav.ItemShipping).To(ShippingBoard),

		Landing(nav.CategoryMarketing, nav.CategoryCRM).To(DepartmentAgentPage),

		Landing(nav.CategoryProducts).To(ProductsMainPage),
		Landing(nav.CategoryOrders).To(OrderMainPage),
		Landing(nav.CategoryLogistics).To(LogisticsMainPage),
		Landing(nav.CategoryReports).To(ReportsMainPage),
		Landing(nav.CategoryAdministration).To(AdministrationMainPage),
		Landing(nav.CategoryFulfilment).To(FulfilmentMainPage),

		At(nav.CategoryOrders, nav.ItemOverview).To(OrderMainPage),
		At(nav.CategoryFulfilment, nav.ItemOverview).To(FulfilmentMainPage),
		At(nav.CategoryLogistics, nav.ItemOverview).To(LogisticsMainPage),
		At(nav.CategoryWorkspace, nav.ItemMyWorkspace).To(MyWorkspacePage),

		Item("Campaigns").To(CampaignsPage),
		Item("Email Marketing").To(EmailMarketingPage),
		Item("Social Media").To(SocialMediaPage),
		Item("Promotions").To(PromotionsPage),
		Item("Influencer Hub").To(InfluencerHubPage),
		Item("Marketing Calendar").To(MarketingCalendarPage),

		Item("Customers").To(CustomersPage),
		Item("Leads").To(LeadsPage),
		Item("Segments").To(SegmentsPage),
		Item("Loyalty Program").To(LoyaltyProgramPage),
		Item("Support Tickets").To(SupportTicketsPage),
		Item("Customer Insights").To(CustomerInsightsPage),

		Item("Catalog").To(CatalogPage),
		Item("Materials").To(MaterialsPage),
		Item("Gemstones").To(GemstonesPage),
		Item("Collections").To(CollectionsPage),
		Item("Pricing").To(PricingPage),
		Item("Inventory").To(InventoryPage),

		Item("All Orders").To(AllOrdersPage),
		Item("Pre-Orders").To(PreOrderBoardPage),
		Item("Custom Orders").To(CustomOrdersPage),
		Item("Returns").To(ReturnsPage),
		Item("Invoices").To(InvoicesPage),

		Item("Production Queue").To(ProductionQueuePage),
		Item("Quality Control").To(QualityControlPage),
		Item("Engraving").To(EngravingPage),
		Item("Packaging").To(PackagingPage),

		Item("Warehouses").To(WarehousesPage),
		Item("Carriers").To(CarriersPage),
		Item("Tracking").To(TrackingPage),

		Item("Sales Reports").To(SalesReportsPage),
		Item("Inventory Reports").To(InventoryReportsPage),
		Item("Financial Reports").To(FinancialReportsPage),

		Item("Users & Roles").To(UsersRolesPage),
		Item("Teams").To(TeamsPage),
		Item("Integrations").To(IntegrationsPage),
		Item("Audit Log").To(AuditLogPage),
		Item("Settings").To(SettingsPage),
		Item("Billing").To(BillingPage),

		Item("Tasks").To(TasksPage),
		Item("Calendar").To(CalendarPage),
		Item("Documents").To(DocumentsPage),
		Item("Messages").To(MessagesPage),
	}
}

// Package pages maps navigation state to the page the shell renders.
//
// Pages are identified by PageID and described by a Descriptor. Selection is
// done by an ordered rule Table: the first rule whose predicate matches the
// (category, sidebar item) pair wins, and unmatched pairs fall back to the
// generic category page, so resolution is total.
package pages

// PageID identifies a render target.
type PageID string

// Shell-level pages.
const (
	HomePage            PageID = "HomePage"
	DepartmentAgentPage PageID = "DepartmentAgentPage"
	GenericCategoryPage PageID = "GenericCategoryPage"
	ShippingBoard       PageID = "ShippingBoard"
	MyWorkspacePage     PageID = "MyWorkspacePage"
)

// Department main pages.
const (
	ProductsMainPage       PageID = "ProductsMainPage"
	OrderMainPage          PageID = "OrderMainPage"
	LogisticsMainPage      PageID = "LogisticsMainPage"
	ReportsMainPage        PageID = "ReportsMainPage"
	AdministrationMainPage PageID = "AdministrationMainPage"
	FulfilmentMainPage     PageID = "FulfilmentMainPage"
)

// Marketing.
const (
	CampaignsPage         PageID = "CampaignsPage"
	EmailMarketingPage    PageID = "EmailMarketingPage"
	SocialMediaPage       PageID = "SocialMediaPage"
	PromotionsPage        PageID = "PromotionsPage"
	InfluencerHubPage     PageID = "InfluencerHubPage"
	MarketingCalendarPage PageID = "MarketingCalendarPage"
)

// CRM.
const (
	CustomersPage        PageID = "CustomersPage"
	LeadsPage            PageID = "LeadsPage"
	SegmentsPage         PageID = "SegmentsPage"
	LoyaltyProgramPage   PageID = "LoyaltyProgramPage"
	SupportTicketsPage   PageID = "SupportTicketsPage"
	CustomerInsightsPage PageID = "CustomerInsightsPage"
)

// Products.
const (
	CatalogPage     PageID = "CatalogPage"
	MaterialsPage   PageID = "MaterialsPage"
	GemstonesPage   PageID = "GemstonesPage"
	CollectionsPage PageID = "CollectionsPage"
	PricingPage     PageID = "PricingPage"
	InventoryPage   PageID = "InventoryPage"
)

// Orders.
const (
	AllOrdersPage     PageID = "AllOrdersPage"
	PreOrderBoardPage PageID = "PreOrderBoardPage"
	CustomOrdersPage  PageID = "CustomOrdersPage"
	ReturnsPage       PageID = "ReturnsPage"
	InvoicesPage      PageID = "InvoicesPage"
)

// Fulfilment.
const (
	ProductionQueuePage PageID = "ProductionQueuePage"
	QualityControlPage  PageID = "QualityControlPage"
	EngravingPage       PageID = "EngravingPage"
	PackagingPage       PageID = "PackagingPage"
)

// Logistics.
const (
	WarehousesPage PageID = "WarehousesPage"
	CarriersPage   PageID = "CarriersPage"
	TrackingPage   PageID = "TrackingPage"
)

// Reports.
const (
	SalesReportsPage     PageID = "SalesReportsPage"
	InventoryReportsPage PageID = "InventoryReportsPage"
	FinancialReportsPage PageID = "FinancialReportsPage"
)

// Administration.
const (
	UsersRolesPage   PageID = "UsersRolesPage"
	TeamsPage        PageID = "TeamsPage"
	IntegrationsPage PageID = "IntegrationsPage"
	AuditLogPage     PageID = "AuditLogPage"
	SettingsPage     PageID = "SettingsPage"
	BillingPage      PageID = "BillingPage"
)

// Workspace.
const (
	TasksPage     PageID = "TasksPage"
	CalendarPage  PageID = "CalendarPage"
	DocumentsPage PageID = "DocumentsPage"
	MessagesPage  PageID = "MessagesPage"
)

// Meta is the static description of a page.
type Meta struct {
	Title       string
	Description string
	// Links are sidebar items the page offers to navigate to.
	Links []string
}

// Descriptor is the resolved page for one navigation state.
// It is recomputed on every change and never stored.
type Descriptor struct {
	ID PageID
	Meta
	// Rule names the table entry that selected the page; empty for the fallback.
	Rule string
	// Department is the category the page was resolved for.
	Department string
	// SidebarItem is the item the page was resolved for, if any.
	SidebarItem string
}

var catalog = map[PageID]Meta{
	HomePage:            {Title: "Home", Description: "Daily snapshot across every department for the selected team."},
	DepartmentAgentPage: {Title: "Department Assistant", Description: "Ask the department agent about campaigns, customers and next steps."},
	GenericCategoryPage: {Title: "Department", Description: "Department content."},
	ShippingBoard:       {Title: "Shipping Board", Description: "Parcels waiting for labels, pickup and hand-off.", Links: []string{"Carriers", "Tracking"}},
	MyWorkspacePage:     {Title: "My Work Space", Description: "Your tasks, meetings and pinned documents.", Links: []string{"Tasks", "Calendar"}},

	ProductsMainPage:       {Title: "Products", Description: "Catalog health, low stock and new designs.", Links: []string{"Catalog", "Inventory"}},
	OrderMainPage:          {Title: "Orders Overview", Description: "Open, pre-ordered and custom orders at a glance.", Links: []string{"All Orders", "Pre-Orders", "Custom Orders"}},
	LogisticsMainPage:      {Title: "Logistics Overview", Description: "Shipments in flight and warehouse load.", Links: []string{"Shipping", "Warehouses"}},
	ReportsMainPage:        {Title: "Reports", Description: "Sales, inventory and financial reporting.", Links: []string{"Sales Reports", "Financial Reports"}},
	AdministrationMainPage: {Title: "Administration", Description: "Tenant users, teams and integrations.", Links: []string{"Users & Roles", "Settings"}},
	FulfilmentMainPage:     {Title: "Fulfilment Overview", Description: "Bench work in progress from casting to packaging.", Links: []string{"Production Queue", "Quality Control"}},

	CampaignsPage:         {Title: "Campaigns", Description: "Seasonal collection launches and their performance.", Links: []string{"Promotions"}},
	EmailMarketingPage:    {Title: "Email Marketing", Description: "Newsletters, drips and abandoned-cart flows."},
	SocialMediaPage:       {Title: "Social Media", Description: "Scheduled posts and engagement by channel."},
	PromotionsPage:        {Title: "Promotions", Description: "Discount codes and bundle offers."},
	InfluencerHubPage:     {Title: "Influencer Hub", Description: "Partner creators, gifting and affiliate codes."},
	MarketingCalendarPage: {Title: "Marketing Calendar", Description: "Launch dates, holidays and trunk shows."},

	CustomersPage:        {Title: "Customers", Description: "Client book with ring sizes, anniversaries and preferences.", Links: []string{"Segments"}},
	LeadsPage:            {Title: "Leads", Description: "Bridal consultations and showroom enquiries."},
	SegmentsPage:         {Title: "Segments", Description: "Audience groups for targeting."},
	LoyaltyProgramPage:   {Title: "Loyalty Program", Description: "Tiers, points and member rewards."},
	SupportTicketsPage:   {Title: "Support Tickets", Description: "Resizing, repairs and warranty claims.", Links: []string{"Returns"}},
	CustomerInsightsPage: {Title: "Customer Insights", Description: "Lifetime value and purchase patterns."},

	CatalogPage:     {Title: "Catalog", Description: "Every piece with variants, metals and stones.", Links: []string{"Collections", "Pricing"}},
	MaterialsPage:   {Title: "Materials", Description: "Gold, silver and platinum stock with current spot prices."},
	GemstonesPage:   {Title: "Gemstones", Description: "Certified stones by cut, carat, colour and clarity."},
	CollectionsPage: {Title: "Collections", Description: "Curated product lines."},
	PricingPage:     {Title: "Pricing", Description: "Price lists, metal surcharges and margins."},
	InventoryPage:   {Title: "Inventory", Description: "Stock by location with reorder points.", Links: []string{"Warehouses"}},

	AllOrdersPage:     {Title: "All Orders", Description: "Every order across channels."},
	PreOrderBoardPage: {Title: "Pre-Order Board", Description: "Pre-orders grouped by expected availability.", Links: []string{"Production Queue"}},
	CustomOrdersPage:  {Title: "Custom Orders", Description: "Bespoke commissions from sketch to delivery.", Links: []string{"Engraving"}},
	ReturnsPage:       {Title: "Returns", Description: "Return requests, inspections and refunds."},
	InvoicesPage:      {Title: "Invoices", Description: "Issued, paid and overdue invoices."},

	ProductionQueuePage: {Title: "Production Queue", Description: "Bench jobs ordered by due date."},
	QualityControlPage:  {Title: "Quality Control", Description: "Inspections, hallmarking and rework."},
	EngravingPage:       {Title: "Engraving", Description: "Engraving jobs and proofs."},
	PackagingPage:       {Title: "Packaging", Description: "Boxes, certificates and gift wrap.", Links: []string{"Shipping"}},

	WarehousesPage: {Title: "Warehouses", Description: "Vaults and stock rooms by capacity."},
	CarriersPage:   {Title: "Carriers", Description: "Insured carriers and service levels."},
	TrackingPage:   {Title: "Tracking", Description: "Live parcel tracking."},

	SalesReportsPage:     {Title: "Sales Reports", Description: "Revenue by channel, collection and team."},
	InventoryReportsPage: {Title: "Inventory Reports", Description: "Stock turn, ageing and shrinkage."},
	FinancialReportsPage: {Title: "Financial Reports", Description: "Margins, cash flow and metal exposure."},

	UsersRolesPage:   {Title: "Users & Roles", Description: "Who can see and change what."},
	TeamsPage:        {Title: "Teams", Description: "Boutique and studio teams."},
	IntegrationsPage: {Title: "Integrations", Description: "Storefront, accounting and carrier connections."},
	AuditLogPage:     {Title: "Audit Log", Description: "Sensitive changes across the tenant."},
	SettingsPage:     {Title: "Settings", Description: "Tenant preferences and branding."},
	BillingPage:      {Title: "Billing", Description: "Plan, seats and invoices."},

	TasksPage:     {Title: "Tasks", Description: "Assigned and followed tasks."},
	CalendarPage:  {Title: "Calendar", Description: "Appointments and fittings."},
	DocumentsPage: {Title: "Documents", Description: "Certificates, appraisals and contracts."},
	MessagesPage:  {Title: "Messages", Description: "Team conversations."},
}

// Lookup returns the static description of a page.
func Lookup(id PageID) (Meta, bool) {
	m, ok := catalog[id]
	return m, ok
}

// All returns every known page ID.
func All() []PageID {
	ids := make([]PageID, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	return ids
}

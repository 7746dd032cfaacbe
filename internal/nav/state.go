// Package nav holds the navigation and UI view state of the dashboard shell.
//
// A Store is the single source of truth for which department (category) and
// sidebar item a visitor is looking at, plus the shell-level UI flags. State
// only changes through the Store's named transitions; after every transition
// the assistant/sidebar coordinator is re-evaluated.
package nav

// Well-known categories. Any string is a valid category; these are the ones
// the shell has special behavior for.
const (
	CategoryHome           = "Home"
	CategoryMarketing      = "Marketing"
	CategoryCRM            = "CRM"
	CategoryProducts       = "Products"
	CategoryOrders         = "Orders"
	CategoryFulfilment     = "Fulfilment"
	CategoryLogistics      = "Logistics"
	CategoryReports        = "Reports"
	CategoryAdministration = "Administration"
	CategoryWorkspace      = "Workspace"
)

// Sidebar items with special behavior in the store.
const (
	ItemOverview    = "Overview"
	ItemMyWorkspace = "My Work Space"
	ItemShipping    = "Shipping"
)

// State is a snapshot of the navigation state.
//
// SidebarItem is empty when no sidebar item is selected.
// SidebarCollapsedByAutomation implies SidebarCollapsed.
type State struct {
	Category                     string `json:"category"`
	SidebarItem                  string `json:"sidebarItem,omitempty"`
	Team                         string `json:"team"`
	SidebarCollapsed             bool   `json:"sidebarCollapsed"`
	SidebarCollapsedByAutomation bool   `json:"sidebarCollapsedByAutomation"`
	AIAssistantOpen              bool   `json:"aiAssistantOpen"`
	DarkMode                     bool   `json:"darkMode"`
}

// HasSidebarItem reports whether a sidebar item is selected.
func (s State) HasSidebarItem() bool {
	return s.SidebarItem != ""
}

// defaultLanding maps categories to the sidebar item selected on entry.
var defaultLanding = map[string]string{
	CategoryOrders:     ItemOverview,
	CategoryFulfilment: ItemOverview,
	CategoryLogistics:  ItemOverview,
	CategoryWorkspace:  ItemMyWorkspace,
}

// DefaultLanding returns the sidebar item a category lands on, or "" when the
// category has none.
func DefaultLanding(category string) string {
	return defaultLanding[category]
}

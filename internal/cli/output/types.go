package output

// RuleInfo describes one rule of the page table.
type RuleInfo struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Page  string `json:"page"`
	Title string `json:"title"`
}

// PagesOutput is the JSON shape of `lustre pages`.
type PagesOutput struct {
	Rules   []RuleInfo    `json:"rules"`
	Sidebar []SectionInfo `json:"sidebar"`
}

// SectionInfo is one sidebar category and its items.
type SectionInfo struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// ResolveOutput is the JSON shape of `lustre resolve`.
type ResolveOutput struct {
	Category    string `json:"category"`
	Item        string `json:"item,omitempty"`
	Page        string `json:"page"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Rule        string `json:"rule,omitempty"`
}

// FindingInfo is one rule table problem.
type FindingInfo struct {
	Kind     string   `json:"kind"`
	Category string   `json:"category,omitempty"`
	Item     string   `json:"item,omitempty"`
	Rules    []string `json:"rules"`
	Pages    []string `json:"pages"`
	Message  string   `json:"message"`
}

// CheckOutput is the JSON shape of `lustre check`.
type CheckOutput struct {
	Rules    int           `json:"rules"`
	Probes   int           `json:"probes"`
	Findings []FindingInfo `json:"findings"`
}

// StateOutput is the JSON shape of a navigation state.
type StateOutput struct {
	Category                     string `json:"category"`
	SidebarItem                  string `json:"sidebarItem,omitempty"`
	Team                         string `json:"team"`
	SidebarCollapsed             bool   `json:"sidebarCollapsed"`
	SidebarCollapsedByAutomation bool   `json:"sidebarCollapsedByAutomation"`
	AIAssistantOpen              bool   `json:"aiAssistantOpen"`
	DarkMode                     bool   `json:"darkMode"`
	Page                         string `json:"page"`
}

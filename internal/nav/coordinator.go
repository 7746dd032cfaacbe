package nav

// coordinator couples the assistant panel to the sidebar.
//
// It runs after every store mutation but only acts on assistant transitions:
// opening the assistant over an expanded sidebar collapses it and marks the
// collapse as automatic; closing the assistant undoes an automatic collapse.
// A manual toggle in between clears the mark, so closing is then a no-op.
type coordinator struct {
	aiOpen bool
}

func (c *coordinator) apply(st *State) {
	if st.AIAssistantOpen == c.aiOpen {
		return
	}
	c.aiOpen = st.AIAssistantOpen

	switch {
	case st.AIAssistantOpen && !st.SidebarCollapsed:
		st.SidebarCollapsed = true
		st.SidebarCollapsedByAutomation = true
	case !st.AIAssistantOpen && st.SidebarCollapsedByAutomation:
		st.SidebarCollapsed = false
		st.SidebarCollapsedByAutomation = false
	}
}

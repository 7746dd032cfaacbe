package nav

import "sync"

// Store holds one visitor's navigation state and exposes its transitions.
// It is safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	state State
	coord coordinator
}

// NewStore creates a store seeded from defaults. Empty default fields fall
// back to DefaultCategory and DefaultTeam; anything else is taken verbatim.
// The initial category lands on its default tab, as if it had been selected.
func NewStore(d Defaults) *Store {
	d = d.withFallbacks()
	return &Store{
		state: State{
			Category:    d.Category,
			SidebarItem: DefaultLanding(d.Category),
			Team:        d.Team,
			DarkMode:    d.DarkMode,
		},
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetCategory switches department. Categories with a landing tab select it,
// every other category clears the sidebar item.
func (s *Store) SetCategory(category string) State {
	return s.mutate(func(st *State) {
		selectCategory(st, category)
	})
}

// SetSidebarItem selects a sidebar item within the current category.
// Shipping always collapses the sidebar. Any other item re-expands a sidebar
// the user collapsed, but leaves one collapsed for the assistant alone.
func (s *Store) SetSidebarItem(item string) State {
	return s.mutate(func(st *State) {
		selectItem(st, item)
	})
}

// Navigate moves to category and, when item is not empty, to item within it.
func (s *Store) Navigate(category, item string) State {
	return s.mutate(func(st *State) {
		selectCategory(st, category)
		if item != "" {
			selectItem(st, item)
		}
	})
}

// SetTeam selects the team shown in the header.
func (s *Store) SetTeam(team string) State {
	return s.mutate(func(st *State) {
		st.Team = team
	})
}

// ToggleAIAssistant opens or closes the assistant panel.
func (s *Store) ToggleAIAssistant(open bool) State {
	return s.mutate(func(st *State) {
		st.AIAssistantOpen = open
	})
}

// ToggleSidebarCollapse flips the sidebar. A manual toggle always wins over
// automation, so the automation flag is cleared.
func (s *Store) ToggleSidebarCollapse() State {
	return s.mutate(func(st *State) {
		st.SidebarCollapsed = !st.SidebarCollapsed
		st.SidebarCollapsedByAutomation = false
	})
}

// ToggleDarkMode flips the theme. Applying it is up to the renderer.
func (s *Store) ToggleDarkMode() State {
	return s.mutate(func(st *State) {
		st.DarkMode = !st.DarkMode
	})
}

// mutate applies fn and then lets the coordinator react to the new state.
func (s *Store) mutate(fn func(*State)) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.state)
	s.coord.apply(&s.state)
	return s.state
}

func selectCategory(st *State, category string) {
	st.Category = category
	st.SidebarItem = DefaultLanding(category)
}

func selectItem(st *State, item string) {
	st.SidebarItem = item
	switch {
	case item == ItemShipping:
		st.SidebarCollapsed = true
	case st.SidebarCollapsed && !st.SidebarCollapsedByAutomation:
		st.SidebarCollapsed = false
	}
}

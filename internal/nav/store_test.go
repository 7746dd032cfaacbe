package nav

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore(Defaults{})
}

func TestNewStore_Defaults(t *testing.T) {
	tests := []struct {
		name     string
		defaults Defaults
		want     State
	}{
		{
			name:     "empty defaults fall back",
			defaults: Defaults{},
			want:     State{Category: DefaultCategory, Team: DefaultTeam},
		},
		{
			name:     "configured values are kept verbatim",
			defaults: Defaults{Category: "  crm ", Team: "Atelier East", DarkMode: true},
			want:     State{Category: "  crm ", Team: "Atelier East", DarkMode: true},
		},
		{
			name:     "workspace lands on its default tab",
			defaults: Defaults{Category: CategoryWorkspace},
			want:     State{Category: CategoryWorkspace, SidebarItem: ItemMyWorkspace, Team: DefaultTeam},
		},
		{
			name:     "orders lands on overview",
			defaults: Defaults{Category: CategoryOrders},
			want:     State{Category: CategoryOrders, SidebarItem: ItemOverview, Team: DefaultTeam},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(tt.defaults)
			assert.Equal(t, tt.want, s.Snapshot())
		})
	}
}

func TestNewStore_MatchesSelectingInitialCategory(t *testing.T) {
	for _, category := range []string{CategoryHome, CategoryOrders, CategoryFulfilment, CategoryLogistics, CategoryWorkspace, "Boutique Ops"} {
		t.Run(category, func(t *testing.T) {
			s := NewStore(Defaults{Category: category})
			initial := s.Snapshot()
			assert.Equal(t, initial, s.SetCategory(category))
		})
	}
}

func TestStore_SetCategory_Landing(t *testing.T) {
	tests := []struct {
		category string
		wantItem string
	}{
		{CategoryOrders, ItemOverview},
		{CategoryFulfilment, ItemOverview},
		{CategoryLogistics, ItemOverview},
		{CategoryWorkspace, ItemMyWorkspace},
		{CategoryHome, ""},
		{CategoryMarketing, ""},
		{CategoryCRM, ""},
		{CategoryProducts, ""},
		{CategoryReports, ""},
		{CategoryAdministration, ""},
		{"orders", ""},
		{"Does Not Exist", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			s := newTestStore()
			s.SetSidebarItem("Catalog")

			st := s.SetCategory(tt.category)
			assert.Equal(t, tt.category, st.Category)
			assert.Equal(t, tt.wantItem, st.SidebarItem)
		})
	}
}

func TestStore_SetCategory_Idempotent(t *testing.T) {
	for _, category := range []string{CategoryOrders, CategoryCRM, CategoryWorkspace, "Unknown"} {
		t.Run(category, func(t *testing.T) {
			once := newTestStore()
			once.SetCategory(category)

			twice := newTestStore()
			twice.SetCategory(category)
			twice.SetCategory(category)

			assert.Equal(t, once.Snapshot(), twice.Snapshot())
		})
	}
}

func TestStore_SetSidebarItem(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(s *Store)
		item          string
		wantCollapsed bool
		wantAuto      bool
	}{
		{
			name:          "shipping collapses an expanded sidebar",
			item:          ItemShipping,
			wantCollapsed: true,
		},
		{
			name:          "other item keeps an expanded sidebar",
			item:          "Catalog",
			wantCollapsed: false,
		},
		{
			name:          "other item expands a manually collapsed sidebar",
			setup:         func(s *Store) { s.ToggleSidebarCollapse() },
			item:          "Catalog",
			wantCollapsed: false,
		},
		{
			name:          "other item expands a sidebar collapsed by shipping",
			setup:         func(s *Store) { s.SetSidebarItem(ItemShipping) },
			item:          "Carriers",
			wantCollapsed: false,
		},
		{
			name:          "other item leaves an automated collapse alone",
			setup:         func(s *Store) { s.ToggleAIAssistant(true) },
			item:          "Catalog",
			wantCollapsed: true,
			wantAuto:      true,
		},
		{
			name:          "shipping keeps the automation flag",
			setup:         func(s *Store) { s.ToggleAIAssistant(true) },
			item:          ItemShipping,
			wantCollapsed: true,
			wantAuto:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore()
			if tt.setup != nil {
				tt.setup(s)
			}

			st := s.SetSidebarItem(tt.item)
			assert.Equal(t, tt.item, st.SidebarItem)
			assert.Equal(t, tt.wantCollapsed, st.SidebarCollapsed)
			assert.Equal(t, tt.wantAuto, st.SidebarCollapsedByAutomation)
		})
	}
}

func TestStore_Navigate(t *testing.T) {
	s := newTestStore()

	st := s.Navigate(CategoryOrders, "")
	assert.Equal(t, ItemOverview, st.SidebarItem)

	st = s.Navigate(CategoryLogistics, ItemShipping)
	assert.Equal(t, CategoryLogistics, st.Category)
	assert.Equal(t, ItemShipping, st.SidebarItem)
	assert.True(t, st.SidebarCollapsed)
}

func TestStore_ToggleSidebarCollapse_ClearsAutomation(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *Store)
	}{
		{name: "from expanded"},
		{name: "from manual collapse", setup: func(s *Store) { s.ToggleSidebarCollapse() }},
		{name: "from automated collapse", setup: func(s *Store) { s.ToggleAIAssistant(true) }},
		{name: "from shipping collapse", setup: func(s *Store) { s.SetSidebarItem(ItemShipping) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore()
			if tt.setup != nil {
				tt.setup(s)
			}
			before := s.Snapshot().SidebarCollapsed

			st := s.ToggleSidebarCollapse()
			assert.False(t, st.SidebarCollapsedByAutomation)
			assert.Equal(t, !before, st.SidebarCollapsed)
		})
	}
}

func TestStore_ToggleDarkModeAndTeam(t *testing.T) {
	s := newTestStore()

	assert.True(t, s.ToggleDarkMode().DarkMode)
	assert.False(t, s.ToggleDarkMode().DarkMode)

	st := s.SetTeam("Bridal Studio")
	assert.Equal(t, "Bridal Studio", st.Team)
}

func TestStore_ConcurrentTransitions(t *testing.T) {
	s := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				switch (i + j) % 4 {
				case 0:
					s.ToggleAIAssistant(j%2 == 0)
				case 1:
					s.ToggleSidebarCollapse()
				case 2:
					s.SetSidebarItem(ItemShipping)
				default:
					s.SetCategory(CategoryOrders)
				}
			}
		}(i)
	}
	wg.Wait()

	st := s.Snapshot()
	if st.SidebarCollapsedByAutomation {
		assert.True(t, st.SidebarCollapsed)
	}
}

// TestStore_AutomationImpliesCollapsed drives random transition sequences and
// checks the invariant after every step.
func TestStore_AutomationImpliesCollapsed(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	items := []string{ItemShipping, ItemOverview, "Catalog", "Pre-Orders", ""}
	categories := []string{CategoryOrders, CategoryCRM, CategoryWorkspace, CategoryHome, "Elsewhere"}

	for run := 0; run < 200; run++ {
		s := newTestStore()
		for step := 0; step < 50; step++ {
			var st State
			switch rng.Intn(7) {
			case 0:
				st = s.SetCategory(categories[rng.Intn(len(categories))])
			case 1:
				st = s.SetSidebarItem(items[rng.Intn(len(items))])
			case 2:
				st = s.ToggleAIAssistant(rng.Intn(2) == 0)
			case 3:
				st = s.ToggleSidebarCollapse()
			case 4:
				st = s.ToggleDarkMode()
			case 5:
				st = s.Navigate(categories[rng.Intn(len(categories))], items[rng.Intn(len(items))])
			default:
				st = s.SetTeam("Team")
			}
			require.Falsef(t, st.SidebarCollapsedByAutomation && !st.SidebarCollapsed,
				"run %d step %d: automation flag set on an expanded sidebar: %+v", run, step, st)
		}
	}
}

package nav

// Default values used when configuration leaves them unset.
const (
	DefaultCategory = CategoryHome
	DefaultTeam     = "All Teams"
)

// Teams lists the team filter options offered by the header. The team is a
// free-form string; values outside this list are kept as given.
var Teams = []string{DefaultTeam, "Atelier", "Flagship Boutique", "Online Store", "Wholesale"}

// Defaults seeds a new Store.
type Defaults struct {
	Category string
	Team     string
	DarkMode bool
}

// withFallbacks fills empty fields with the package defaults.
// Non-empty values are kept verbatim.
func (d Defaults) withFallbacks() Defaults {
	if d.Category == "" {
		d.Category = DefaultCategory
	}
	if d.Team == "" {
		d.Team = DefaultTeam
	}
	return d
}

package pages

// Resolver selects the page for a navigation pair.
type Resolver struct {
	table Table
}

// NewResolver creates a resolver over table. A nil table resolves everything
// to the generic category page.
func NewResolver(table Table) *Resolver {
	return &Resolver{table: table}
}

// Default is the resolver over DefaultTable.
var Default = NewResolver(DefaultTable())

// Resolve returns the page for category and item. It always returns a
// descriptor; pairs no rule matches get the generic category page.
func (r *Resolver) Resolve(category, item string) Descriptor {
	k := Key{Category: category, Item: item}
	for _, rule := range r.table {
		if rule.Match(k) {
			return describe(rule.Page, rule.Name, k)
		}
	}
	return describe(GenericCategoryPage, "", k)
}

// Table returns the resolver's rules.
func (r *Resolver) Table() Table {
	return r.table
}

// Resolve resolves with the default resolver.
func Resolve(category, item string) Descriptor {
	return Default.Resolve(category, item)
}

func describe(id PageID, rule string, k Key) Descriptor {
	meta, ok := Lookup(id)
	if !ok {
		meta = Meta{Title: string(id)}
	}
	// The generic page is titled after whatever category it stands in for.
	if id == GenericCategoryPage && k.Category != "" {
		meta.Title = k.Category
	}
	return Descriptor{
		ID:          id,
		Meta:        meta,
		Rule:        rule,
		Department:  k.Category,
		SidebarItem: k.Item,
	}
}

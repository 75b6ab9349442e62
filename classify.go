package symaudit

// Membership records, for one extracted symbol occurrence, which of the
// supplied catalogs list it.
type Membership struct {
	Symbol string
	In     map[string]bool
}

// MembershipTable holds one Membership per extracted symbol occurrence,
// in extraction order. It is built once by Classify and not modified after.
type MembershipTable []Membership

// Classify checks every symbol against every supplied catalog.
// Duplicate symbols produce duplicate rows.
func Classify(symbols []string, indexes []NamedIndex) MembershipTable {
	table := make(MembershipTable, 0, len(symbols))
	for _, sym := range symbols {
		in := make(map[string]bool, len(indexes))
		for _, ni := range indexes {
			in[ni.Name] = ni.Index.Contains(sym)
		}
		table = append(table, Membership{Symbol: sym, In: in})
	}
	return table
}

// Has reports whether row i is a member of the named catalog.
// Catalogs that were not supplied to Classify are never members.
func (t MembershipTable) Has(i int, catalog string) bool {
	if i < 0 || i >= len(t) {
		return false
	}
	return t[i].In[catalog]
}

// Members returns the symbols listed in the named catalog in extraction order.
func (t MembershipTable) Members(catalog string) []string {
	var out []string
	for i := range t {
		if t.Has(i, catalog) {
			out = append(out, t[i].Symbol)
		}
	}
	return out
}

// Symbols returns every symbol in the table in extraction order.
func (t MembershipTable) Symbols() []string {
	out := make([]string, 0, len(t))
	for _, m := range t {
		out = append(out, m.Symbol)
	}
	return out
}

package symaudit

// Derived set names.
const (
	SetSharedGTK30 = "gtk2x-gtk30-shared"
	SetSharedGTK3x = "gtk2x-gtk3x-shared"
)

// DerivedSet is a named list of symbols computed from catalog memberships.
// Symbols keep the order in which they were encountered during the scan.
type DerivedSet struct {
	Name    string
	Symbols []string
}

// SharedSets is the result of ReduceShared.
type SharedSets struct {
	// With30 lists symbols present in both gtk2-stable and gtk3.0.
	With30 DerivedSet

	// With3x lists symbols present in both gtk2-stable and gtk3-stable.
	// When the reduction is exclusive, symbols already in With30 are left out.
	With3x DerivedSet

	// Overlap counts rows that satisfy both conditions. In an exclusive
	// reduction these rows appear only in With30.
	Overlap int
}

// SharedConditions evaluates the two shared-set conditions for row i
// independently of each other.
func SharedConditions(t MembershipTable, i int) (with30, with3x bool) {
	gtk2 := t.Has(i, CatalogGTK2Stable)
	with30 = gtk2 && t.Has(i, CatalogGTK30)
	with3x = gtk2 && t.Has(i, CatalogGTK3Stable)
	return with30, with3x
}

// ReduceShared scans the table once and builds the GTK2/GTK3 shared sets.
// With exclusive set, a row placed in With30 is not considered for With3x.
func ReduceShared(t MembershipTable, exclusive bool) SharedSets {
	sets := SharedSets{
		With30: DerivedSet{Name: SetSharedGTK30},
		With3x: DerivedSet{Name: SetSharedGTK3x},
	}
	for i, m := range t {
		with30, with3x := SharedConditions(t, i)
		if with30 && with3x {
			sets.Overlap++
		}
		switch {
		case with30 && exclusive:
			sets.With30.Symbols = append(sets.With30.Symbols, m.Symbol)
		case with30:
			sets.With30.Symbols = append(sets.With30.Symbols, m.Symbol)
			if with3x {
				sets.With3x.Symbols = append(sets.With3x.Symbols, m.Symbol)
			}
		case with3x:
			sets.With3x.Symbols = append(sets.With3x.Symbols, m.Symbol)
		}
	}
	return sets
}

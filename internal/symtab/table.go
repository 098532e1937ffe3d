package symtab

// Table is a flat list of symbol descriptors. Lookup is a linear scan
// over Entries, matching the reference implementation's approach: the
// table is small (a few dozen operators, functions, and constants at
// most) and rebuilt rarely, so there is no call for an index.
type Table struct {
	Entries []Node
}

// FindOperator looks up a builtin Function keyed by a single operator
// character. It returns a fresh copy of the matching descriptor so the
// caller can fill in Args/NInt without mutating the table.
func (t *Table) FindOperator(ch string) (*Node, bool) {
	for i := range t.Entries {
		e := &t.Entries[i]
		if e.Kind == Function && e.Builtin && e.Key == ch {
			return e.Clone(), true
		}
	}
	return nil, false
}

// FindIdentifier looks up a non-builtin symbol (Function, Constant, or
// Macro) by its exact spelling, including dotted field-access names
// such as "cam.pos" when the table happens to define one. It returns a
// fresh copy of the matching descriptor.
func (t *Table) FindIdentifier(name string) (*Node, bool) {
	for i := range t.Entries {
		e := &t.Entries[i]
		if e.Kind != Function && e.Kind != Constant && e.Kind != Macro {
			continue
		}
		if e.Builtin {
			continue
		}
		if e.Key == name {
			return e.Clone(), true
		}
	}
	return nil, false
}

// Add appends a descriptor to the table, overwriting nothing. Earlier
// entries shadow later ones with a duplicate key during lookup, since
// FindOperator/FindIdentifier return on first match.
func (t *Table) Add(entries ...Node) {
	t.Entries = append(t.Entries, entries...)
}

// Package lookup provides precomputed byte classification tables.
//
// A Table maps each of the 256 byte values to a membership flag, so scanning
// loops test a character class with a single index instead of a chain of
// comparisons. Tables are built once at package initialization and must be
// treated as read-only afterwards; they may be shared by any number of
// cursors and goroutines without synchronization.
package lookup

// Table is a 256-entry byte membership table.
type Table [256]bool

// Has reports whether b is a member of the table.
func (t *Table) Has(b byte) bool {
	return t[b]
}

// Count returns the number of member bytes.
func (t *Table) Count() int {
	n := 0
	for _, ok := range t {
		if ok {
			n++
		}
	}
	return n
}

// Members returns the member bytes in ascending order.
func (t *Table) Members() []byte {
	out := make([]byte, 0, t.Count())
	for i, ok := range t {
		if ok {
			out = append(out, byte(i))
		}
	}
	return out
}

// Of builds a table containing exactly the given bytes.
func Of(members ...byte) *Table {
	t := &Table{}
	for _, b := range members {
		t[b] = true
	}
	return t
}

// Range builds a table containing every byte in [lo, hi].
// An inverted range yields an empty table.
func Range(lo, hi byte) *Table {
	t := &Table{}
	for i := int(lo); i <= int(hi); i++ {
		t[i] = true
	}
	return t
}

// Union builds a table containing every member of any input table.
func Union(tables ...*Table) *Table {
	t := &Table{}
	for _, in := range tables {
		for i, ok := range in {
			if ok {
				t[i] = true
			}
		}
	}
	return t
}

// Not builds the complement of in.
func Not(in *Table) *Table {
	t := &Table{}
	for i, ok := range in {
		t[i] = !ok
	}
	return t
}

// Func builds a table from a predicate evaluated once per byte value.
func Func(pred func(b byte) bool) *Table {
	t := &Table{}
	for i := range t {
		t[i] = pred(byte(i))
	}
	return t
}

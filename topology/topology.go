// Package topology indexes a structure's atom list by name, residue name,
// and residue id, and provides set algebra over the resulting index lists
// for composing atom selections.
package topology

import (
	"github.com/mdkit/xtc/gro"
)

// Topology is a read-only index over an atom list. Atom indices refer to
// positions in the []gro.Atom slice the Topology was built from, not
// GROMACS atom numbers.
type Topology struct {
	byName    map[string][]int
	byResName map[string][]int
	byResID   map[int][]int
	natoms    int
}

// New builds a Topology from atoms, indexing each atom by its name,
// residue name, and residue id.
func New(atoms []gro.Atom) *Topology {
	t := &Topology{
		byName:    make(map[string][]int),
		byResName: make(map[string][]int),
		byResID:   make(map[int][]int),
		natoms:    len(atoms),
	}
	for i, a := range atoms {
		t.byName[a.Name] = append(t.byName[a.Name], i)
		t.byResName[a.ResName] = append(t.byResName[a.ResName], i)
		t.byResID[a.ResID] = append(t.byResID[a.ResID], i)
	}
	return t
}

// NAtoms returns the number of atoms the Topology was built from.
func (t *Topology) NAtoms() int {
	return t.natoms
}

// SelectName returns the indices of every atom with the given name, in
// ascending order.
func (t *Topology) SelectName(name string) []int {
	return clone(t.byName[name])
}

// SelectResName returns the indices of every atom belonging to a residue
// with the given name, in ascending order.
func (t *Topology) SelectResName(name string) []int {
	return clone(t.byResName[name])
}

// SelectResID returns the indices of every atom belonging to the residue
// with the given id, in ascending order.
func (t *Topology) SelectResID(id int) []int {
	return clone(t.byResID[id])
}

func clone(s []int) []int {
	if s == nil {
		return nil
	}
	return append([]int(nil), s...)
}

// Union returns the sorted, deduplicated set of indices appearing in any
// of sets, merging pairwise by sorted two-pointer walk. Every set must
// already be sorted ascending and internally deduplicated, as Select*
// guarantees.
func Union(sets ...[]int) []int {
	var out []int
	for _, s := range sets {
		out = mergeUnion(out, s)
	}
	return out
}

// mergeUnion merges two sorted, deduplicated index lists into one sorted,
// deduplicated list without any map allocation.
func mergeUnion(a, b []int) []int {
	if len(a) == 0 {
		return clone(b)
	}
	if len(b) == 0 {
		return clone(a)
	}
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// Intersect returns the sorted set of indices appearing in both a and b, by
// sorted two-pointer walk. Both inputs must already be sorted ascending.
func Intersect(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// Difference returns the sorted set of indices in a that do not appear in
// b, by sorted two-pointer walk. Both inputs must already be sorted
// ascending.
func Difference(a, b []int) []int {
	var out []int
	j := 0
	for i := 0; i < len(a); i++ {
		for j < len(b) && b[j] < a[i] {
			j++
		}
		if j < len(b) && b[j] == a[i] {
			j++
			continue
		}
		out = append(out, a[i])
	}
	return out
}

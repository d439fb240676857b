// SPDX-License-Identifier: MIT
//
// Package disjointset provides the union-find structure used by the
// spanning-tree builders to reject edges that would close a cycle.
//
// A CycleDetector is built once from a fixed set of vertex IDs (each ID starts
// as its own singleton set) and discarded after a single tree construction.
//
// Implementation:
//   - parent/rank maps keyed by vertex ID.
//   - Find uses iterative path halving (no recursion on long chains).
//   - Union by rank keeps trees shallow.
//
// Complexity:
//   - Detect / Find / Connected: O(α(n)) amortized.
//   - Construction: O(n).
//
// Concurrency:
//   - Not goroutine-safe; one detector per build call.
package disjointset

// CycleDetector tracks which vertex IDs already belong to the same component.
type CycleDetector struct {
	parent     map[string]string
	rank       map[string]int
	components int
}

// NewCycleDetector returns a detector where every id is its own set.
// Duplicate ids collapse into one singleton.
// Complexity: O(n).
func NewCycleDetector(ids []string) *CycleDetector {
	d := &CycleDetector{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		d.add(id)
	}

	return d
}

// Detect reports whether a and b are already in the same set, i.e. whether an
// edge a-b would close a cycle. When they are not, the two sets are merged and
// false is returned.
//
// Unknown ids are registered as fresh singletons first, so Detect never fails.
func (d *CycleDetector) Detect(a, b string) bool {
	d.add(a)
	d.add(b)

	rootA := d.find(a)
	rootB := d.find(b)
	if rootA == rootB {
		return true
	}
	d.union(rootA, rootB)

	return false
}

// Find returns the representative of id's set, and false if id is unknown.
func (d *CycleDetector) Find(id string) (string, bool) {
	if _, ok := d.parent[id]; !ok {
		return "", false
	}

	return d.find(id), true
}

// Connected reports whether a and b share a set without merging anything.
func (d *CycleDetector) Connected(a, b string) bool {
	rootA, okA := d.Find(a)
	rootB, okB := d.Find(b)

	return okA && okB && rootA == rootB
}

// Components returns the current number of disjoint sets.
func (d *CycleDetector) Components() int { return d.components }

// Len returns the number of tracked ids.
func (d *CycleDetector) Len() int { return len(d.parent) }

func (d *CycleDetector) add(id string) {
	if _, ok := d.parent[id]; ok {
		return
	}
	d.parent[id] = id
	d.rank[id] = 0
	d.components++
}

// find walks to the root, pointing every visited node at its grandparent.
func (d *CycleDetector) find(id string) string {
	for d.parent[id] != id {
		d.parent[id] = d.parent[d.parent[id]]
		id = d.parent[id]
	}

	return id
}

// union merges two distinct roots by rank.
func (d *CycleDetector) union(rootA, rootB string) {
	switch {
	case d.rank[rootA] < d.rank[rootB]:
		d.parent[rootA] = rootB
	case d.rank[rootA] > d.rank[rootB]:
		d.parent[rootB] = rootA
	default:
		d.parent[rootB] = rootA
		d.rank[rootA]++
	}
	d.components--
}

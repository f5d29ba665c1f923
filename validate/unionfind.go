package validate

import "github.com/katalvlaran/cablenet/core"

// disjointSet is a union-find over nodes with path compression and union
// by rank. Unknown nodes are added lazily as singletons.
type disjointSet struct {
	parent map[core.Node]core.Node
	rank   map[core.Node]int
}

func newDisjointSet(capacity int) *disjointSet {
	return &disjointSet{
		parent: make(map[core.Node]core.Node, capacity),
		rank:   make(map[core.Node]int, capacity),
	}
}

// find returns the representative of u, iteratively.
func (d *disjointSet) find(u core.Node) core.Node {
	if _, ok := d.parent[u]; !ok {
		d.parent[u] = u
		return u
	}
	for d.parent[u] != u {
		// point u at its grandparent
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports false when they already
// shared one.
func (d *disjointSet) union(u, v core.Node) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	switch {
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}

	return true
}

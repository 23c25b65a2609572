package dsu

import (
	"github.com/cockroachdb/errors"
)

// DisjointSet is a partition of the indexes 0..n-1 into groups.
// The zero value is an empty set of size 0; use New to create one.
type DisjointSet struct {
	parent   []int
	rank     []int // only meaningful at roots
	size     []int // only meaningful at roots
	groups   int
	strategy Strategy
}

// New creates n singleton groups indexed 0..n-1.
// A negative n panics.
func New(n int, opts ...Option) *DisjointSet {
	if n < 0 {
		panic(errors.Newf("dsu: negative size %d", n))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ds := &DisjointSet{
		parent:   make([]int, n),
		rank:     make([]int, n),
		size:     make([]int, n),
		groups:   n,
		strategy: o.Strategy,
	}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.size[i] = 1
	}

	return ds
}

// Len returns the number of elements n.
func (ds *DisjointSet) Len() int { return len(ds.parent) }

// Strategy reports the union heuristic in use.
func (ds *DisjointSet) Strategy() Strategy { return ds.strategy }

// Find returns the representative of x's group and compresses the path from
// x to it. Calling Find repeatedly without an intervening Union always
// returns the same representative.
func (ds *DisjointSet) Find(x int) int {
	ds.check(x)

	// Walk to the root.
	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	// Point every node on the path directly at the root.
	for ds.parent[x] != root {
		x, ds.parent[x] = ds.parent[x], root
	}

	return root
}

// Union merges the groups holding x and y. It returns false, changing
// nothing, when both are already in the same group.
func (ds *DisjointSet) Union(x, y int) bool {
	rx, ry := ds.Find(x), ds.Find(y)
	// Already one group: nothing to merge.
	if rx == ry {
		return false
	}

	// Orient so that rx survives as the representative.
	switch ds.strategy {
	case BySize:
		// Smaller group hangs under the larger; ties keep x's root.
		if ds.size[rx] < ds.size[ry] {
			rx, ry = ry, rx
		}
	default:
		// Shallower tree hangs under the deeper one. Only a tie grows the
		// surviving root's rank.
		if ds.rank[rx] < ds.rank[ry] {
			rx, ry = ry, rx
		} else if ds.rank[rx] == ds.rank[ry] {
			ds.rank[rx]++
		}
	}

	// Attach, then move the absorbed count onto the survivor.
	ds.parent[ry] = rx
	ds.size[rx] += ds.size[ry]
	ds.groups--

	return true
}

// Connected reports whether x and y share a group.
func (ds *DisjointSet) Connected(x, y int) bool {
	return ds.Find(x) == ds.Find(y)
}

// GroupSize returns the member count of x's group.
func (ds *DisjointSet) GroupSize(x int) int {
	return ds.size[ds.Find(x)]
}

// GroupCount returns the number of groups. It starts at n and drops by one
// per successful Union.
func (ds *DisjointSet) GroupCount() int { return ds.groups }

// GroupSizes returns one member count per group, in unspecified order.
func (ds *DisjointSet) GroupSizes() []int {
	sizes := make([]int, 0, ds.groups)
	for i, p := range ds.parent {
		if p == i {
			sizes = append(sizes, ds.size[i])
		}
	}

	return sizes
}

// Groups lists the members of every group. Members are ascending within a
// group and groups are ordered by their smallest member.
func (ds *DisjointSet) Groups() [][]int {
	out := make([][]int, 0, ds.groups)
	slot := make(map[int]int, ds.groups) // representative -> index in out
	for i := range ds.parent {
		r := ds.Find(i)
		k, ok := slot[r]
		if !ok {
			k = len(out)
			slot[r] = k
			out = append(out, make([]int, 0, ds.size[r]))
		}
		out[k] = append(out[k], i)
	}

	return out
}

func (ds *DisjointSet) check(x int) {
	if x < 0 || x >= len(ds.parent) {
		panic(errors.Wrapf(ErrIndexOutOfRange, "index %d not in [0, %d)", x, len(ds.parent)))
	}
}

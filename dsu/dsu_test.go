package dsu_test

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuits/dsu"
)

var strategies = []dsu.Strategy{dsu.ByRank, dsu.BySize}

// recoverErr runs fn and returns the error it panicked with, if any.
func recoverErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()

	return nil
}

// TestNew verifies n singleton groups.
func TestNew(t *testing.T) {
	ds := dsu.New(5)
	assert.Equal(t, 5, ds.Len())
	assert.Equal(t, 5, ds.GroupCount())
	assert.Equal(t, dsu.ByRank, ds.Strategy())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, ds.Find(i), "each element is its own root")
		assert.Equal(t, 1, ds.GroupSize(i))
	}
	assert.ElementsMatch(t, []int{1, 1, 1, 1, 1}, ds.GroupSizes())
}

func TestNew_Empty(t *testing.T) {
	ds := dsu.New(0)
	assert.Zero(t, ds.GroupCount())
	assert.Empty(t, ds.GroupSizes())
	assert.Empty(t, ds.Groups())

	assert.Panics(t, func() { dsu.New(-1) })
}

// TestUnion_TwoElements checks the merge result and the no-op repeat.
func TestUnion_TwoElements(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			ds := dsu.New(5, dsu.WithStrategy(s))

			assert.True(t, ds.Union(1, 3))
			assert.Equal(t, ds.Find(1), ds.Find(3))
			assert.True(t, ds.Connected(3, 1))
			assert.Equal(t, 2, ds.GroupSize(1))
			assert.Equal(t, 2, ds.GroupSize(3))
			assert.Equal(t, 4, ds.GroupCount())

			// repeat and reversed order are no-ops
			assert.False(t, ds.Union(1, 3))
			assert.False(t, ds.Union(3, 1))
			assert.False(t, ds.Union(2, 2))
			assert.Equal(t, 4, ds.GroupCount())
		})
	}
}

// TestUnion_MultipleGroups builds {0,1,2} and {3,4,5}, then joins them.
func TestUnion_MultipleGroups(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			ds := dsu.New(6, dsu.WithStrategy(s))
			ds.Union(0, 1)
			ds.Union(1, 2)
			ds.Union(3, 4)
			ds.Union(4, 5)

			assert.True(t, ds.Connected(0, 2))
			assert.True(t, ds.Connected(3, 5))
			assert.False(t, ds.Connected(0, 3))
			assert.ElementsMatch(t, []int{3, 3}, ds.GroupSizes())
			assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}}, ds.Groups())

			require.True(t, ds.Union(2, 4))
			root := ds.Find(0)
			for i := 1; i < 6; i++ {
				assert.Equal(t, root, ds.Find(i))
			}
			assert.Equal(t, 6, ds.GroupSize(5))
			assert.Equal(t, 1, ds.GroupCount())
			assert.Equal(t, []int{6}, ds.GroupSizes())
		})
	}
}

// TestUnionBySize verifies the small group is attached under the big root.
func TestUnionBySize(t *testing.T) {
	ds := dsu.New(4, dsu.WithStrategy(dsu.BySize))
	ds.Union(0, 1)
	ds.Union(0, 2)
	big := ds.Find(0)

	ds.Union(3, 0)
	assert.Equal(t, big, ds.Find(3))
}

// TestUnionByRank verifies the shallow tree is attached under the deeper root.
func TestUnionByRank(t *testing.T) {
	ds := dsu.New(4)
	ds.Union(0, 1) // rank 1 tree
	deep := ds.Find(0)

	ds.Union(2, 0) // singleton 2 (rank 0) goes under the rank-1 root
	assert.Equal(t, deep, ds.Find(2))
}

// TestFind_Idempotent checks repeated Find without unions is stable.
func TestFind_Idempotent(t *testing.T) {
	ds := dsu.New(8)
	ds.Union(0, 1)
	ds.Union(2, 3)
	ds.Union(1, 3)
	ds.Union(5, 6)
	for i := 0; i < 8; i++ {
		first := ds.Find(i)
		for k := 0; k < 3; k++ {
			assert.Equal(t, first, ds.Find(i))
		}
	}
}

// TestOutOfRange verifies every entry point fails loudly.
func TestOutOfRange(t *testing.T) {
	ds := dsu.New(3)
	calls := map[string]func(){
		"Find negative": func() { ds.Find(-1) },
		"Find n":        func() { ds.Find(3) },
		"Union":         func() { ds.Union(0, 7) },
		"Connected":     func() { ds.Connected(9, 0) },
		"GroupSize":     func() { ds.GroupSize(3) },
	}
	for name, fn := range calls {
		t.Run(name, func(t *testing.T) {
			err := recoverErr(fn)
			require.Error(t, err, "expected panic")
			assert.True(t, errors.Is(err, dsu.ErrIndexOutOfRange))
		})
	}
	// nothing was mutated by the failed calls
	assert.Equal(t, 3, ds.GroupCount())
}

// TestInvariants_Random applies random unions and checks, after every step,
// that sizes sum to n, the group count matches the merge count, and both
// strategies agree on the partition.
func TestInvariants_Random(t *testing.T) {
	const n = 200
	r := rand.New(rand.NewSource(42))
	byRank := dsu.New(n)
	bySize := dsu.New(n, dsu.WithStrategy(dsu.BySize))
	merges := 0

	for step := 0; step < 400; step++ {
		a, b := r.Intn(n), r.Intn(n)
		okRank := byRank.Union(a, b)
		okSize := bySize.Union(a, b)
		require.Equal(t, okRank, okSize, "strategies disagree at step %d", step)
		if okRank {
			merges++
		}

		sum := 0
		for _, s := range byRank.GroupSizes() {
			sum += s
		}
		require.Equal(t, n, sum)
		require.Equal(t, n-merges, byRank.GroupCount())
		require.Equal(t, byRank.GroupCount(), bySize.GroupCount())
	}

	assert.Equal(t, byRank.Groups(), bySize.Groups())
	for i := 0; i < n; i++ {
		assert.Equal(t, len(membersOf(byRank, i)), byRank.GroupSize(i))
	}
}

// TestOrderIndependence unions the same edge multiset in shuffled orders and
// expects the same final sizes.
func TestOrderIndependence(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {3, 4}, {5, 6}, {6, 7}, {7, 5}, {8, 8}, {2, 0}}
	want := finalSizes(10, edges)

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([][2]int(nil), edges...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, finalSizes(10, shuffled))
	}
	assert.Equal(t, []int{3, 3, 2, 1, 1}, want)
}

func finalSizes(n int, edges [][2]int) []int {
	ds := dsu.New(n)
	for _, e := range edges {
		ds.Union(e[0], e[1])
	}
	sizes := ds.GroupSizes()
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}

func membersOf(ds *dsu.DisjointSet, x int) []int {
	var out []int
	for i := 0; i < ds.Len(); i++ {
		if ds.Connected(i, x) {
			out = append(out, i)
		}
	}

	return out
}

func TestStrategyByName(t *testing.T) {
	s, err := dsu.StrategyByName("size")
	require.NoError(t, err)
	assert.Equal(t, dsu.BySize, s)

	s, err = dsu.StrategyByName("")
	require.NoError(t, err)
	assert.Equal(t, dsu.ByRank, s)

	_, err = dsu.StrategyByName("height")
	assert.Error(t, err)

	assert.Equal(t, "unknown", dsu.Strategy(9).String())
}

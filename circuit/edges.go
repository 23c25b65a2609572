package circuit

import (
	"cmp"
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/circuits/spatial"
)

// PairCount returns n·(n−1)/2, the number of edges among n points.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// GenerateEdges returns one Edge per unordered pair in (i asc, j asc) order.
// A nil metric means spatial.SquaredEuclidean.
//
// Complexity: O(n²) time and memory.
func GenerateEdges(points []spatial.Point, metric spatial.Metric) []Edge {
	if metric == nil {
		metric = spatial.SquaredEuclidean{}
	}
	n := len(points)
	edges := make([]Edge, 0, PairCount(n))
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{A: i, B: j, Distance: metric.Distance(points[i], points[j])})
		}
	}

	return edges
}

// GenerateEdgesParallel produces exactly the slice GenerateEdges would, using
// up to workers goroutines. Rows are dealt out round-robin and every row i
// writes into its own precomputed window of the result, so no locking is
// needed. ctx is checked before each row; on cancellation the partial slice
// is discarded and ctx's error returned.
func GenerateEdgesParallel(ctx context.Context, points []spatial.Point, metric spatial.Metric, workers int) ([]Edge, error) {
	n := len(points)
	if workers <= 1 || n < 3 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return GenerateEdges(points, metric), nil
	}
	if metric == nil {
		metric = spatial.SquaredEuclidean{}
	}
	workers = min(workers, n-1)

	edges := make([]Edge, PairCount(n))
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := w; i < n-1; i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				k := rowOffset(n, i)
				for j := i + 1; j < n; j++ {
					edges[k] = Edge{A: i, B: j, Distance: metric.Distance(points[i], points[j])}
					k++
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return edges, nil
}

// rowOffset is the index of edge (i, i+1) in generation order:
// the sum of row lengths (n−1) + (n−2) + … over the i rows before it.
func rowOffset(n, i int) int {
	return i*(n-1) - i*(i-1)/2
}

// SortEdges orders edges by ascending distance. The sort is stable, so edges
// of equal distance keep their generation order.
func SortEdges(edges []Edge) {
	slices.SortStableFunc(edges, func(a, b Edge) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
}

// sortedEdges generates and sorts the edges of a run according to o.
func sortedEdges(points []spatial.Point, o Options) ([]Edge, error) {
	edges, err := GenerateEdgesParallel(o.Ctx, points, o.Metric, o.Workers)
	if err != nil {
		return nil, err
	}
	SortEdges(edges)

	return edges, nil
}

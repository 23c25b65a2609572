package circuit

import (
	"github.com/katalvlaran/circuits/spatial"
)

// BoundedResult is the outcome of Connect.
type BoundedResult struct {
	// Sizes holds every circuit size, largest first.
	Sizes []int
	// Top is Sizes[:3].
	Top [3]int
	// Product is Top[0]·Top[1]·Top[2].
	Product int
	// Merges counts unions that joined two circuits.
	Merges int
	// Attempts counts examined edges, merged or not.
	Attempts int
	// Circuits is the number of circuits left, n − Merges.
	Circuits int
}

// FullResult is the outcome of ConnectAll.
type FullResult struct {
	// A and B are the indexes of the pair whose merge left one circuit (A < B).
	A, B int
	// Distance is the metric value of that pair.
	Distance float64
	// Merges is always n − 1.
	Merges int
	// Attempts counts examined edges up to and including the final merge.
	Attempts int
}

// Projection derives the final number from the completing pair of points.
type Projection func(a, b spatial.Point) float64

// ProductX multiplies the X coordinates of both points.
func ProductX(a, b spatial.Point) float64 { return a.X * b.X }

// Project applies proj to the completing pair. points must be the slice the
// result was computed from.
func (r *FullResult) Project(points []spatial.Point, proj Projection) float64 {
	return proj(points[r.A], points[r.B])
}

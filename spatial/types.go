package spatial

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for point parsing.
var (
	// ErrMalformedPoint indicates a record that is not exactly three finite numbers.
	ErrMalformedPoint = errors.New("spatial: malformed point")

	// ErrEmptyInput indicates the input held no point records.
	ErrEmptyInput = errors.New("spatial: no points in input")
)

// Point is an immutable position in 3-space.
type Point struct {
	X, Y, Z float64
}

// String renders p in the same "x,y,z" form Parse accepts.
func (p Point) String() string {
	return fmt.Sprintf("%g,%g,%g", p.X, p.Y, p.Z)
}

// Finite reports whether every coordinate of p is neither NaN nor ±Inf.
func (p Point) Finite() bool {
	for _, v := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Validate returns an error wrapping ErrMalformedPoint for the first point
// with a non-finite coordinate. Points built in code bypass Parse, so
// consumers call this before measuring anything.
func Validate(points []Point) error {
	for i, p := range points {
		if !p.Finite() {
			return errors.Wrapf(ErrMalformedPoint, "point %d (%s) is not finite", i, p)
		}
	}

	return nil
}

// Metric computes the distance between two points. Implementations must be
// symmetric, non-negative and return 0 for identical points.
type Metric interface {
	Distance(a, b Point) float64
}

// MetricFunc adapts a plain function into a Metric.
type MetricFunc func(a, b Point) float64

// Distance calls f(a, b).
func (f MetricFunc) Distance(a, b Point) float64 { return f(a, b) }

// SquaredEuclidean is the sum of squared coordinate differences.
// It orders pairs identically to Euclidean without the sqrt, so its values
// must never be shown as lengths.
type SquaredEuclidean struct{}

// Distance returns dx²+dy²+dz².
func (SquaredEuclidean) Distance(a, b Point) float64 {
	return sumOfSquares(a, b)
}

// Euclidean is the L2 distance.
type Euclidean struct{}

// Distance returns sqrt(dx²+dy²+dz²).
func (Euclidean) Distance(a, b Point) float64 {
	return math.Sqrt(sumOfSquares(a, b))
}

func sumOfSquares(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z

	return dx*dx + dy*dy + dz*dz
}

// Metric names accepted by MetricByName.
const (
	MetricSquaredEuclidean = "squared-euclidean"
	MetricEuclidean        = "euclidean"
)

// MetricByName resolves a metric from its configuration name.
// An empty name selects SquaredEuclidean.
func MetricByName(name string) (Metric, error) {
	switch name {
	case "", MetricSquaredEuclidean:
		return SquaredEuclidean{}, nil
	case MetricEuclidean:
		return Euclidean{}, nil
	default:
		return nil, errors.Newf("spatial: unknown metric %q (want %q or %q)",
			name, MetricSquaredEuclidean, MetricEuclidean)
	}
}

// Package spatial holds the geometric primitives used by the circuit
// builder: immutable 3-D points, distance metrics between them, and a
// reader for newline-separated "x,y,z" point lists.
//
// What:
//
//   - Point is an immutable {X, Y, Z} triple. A point is identified by its
//     0-based position in the slice it was parsed into; coordinates only
//     feed distances and final projections.
//   - Metric computes a non-negative distance between two points.
//     SquaredEuclidean omits the square root: it orders pairs exactly like
//     Euclidean and is the default everywhere ordering is all that matters.
//     Euclidean returns the true L2 length and is meant for display.
//   - Parse / ParseString / Load turn text into []Point, rejecting any
//     record with a missing, extra, non-numeric or non-finite coordinate
//     before any algorithmic work starts.
//
// Input format (one point per line, blank lines ignored):
//
//	162,817,812
//	57,618,57
//	906,360,560
//
// Errors:
//
//   - ErrMalformedPoint: a record is not three finite numbers. The wrapped
//     message carries the 1-based line number and the offending text.
//   - ErrEmptyInput: the source contained no points at all.
//
// Complexity: Parse is O(L) in the input length; metrics are O(1).
package spatial

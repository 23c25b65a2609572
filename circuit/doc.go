// Package circuit joins 3-D junction points into circuits by connecting the
// closest pairs first, Kruskal-style, and extracts a scalar answer from the
// resulting grouping.
//
// What & Why
//
//   - Edge generation: every unordered pair (i, j), i < j, of n points becomes
//     an Edge carrying its distance, n·(n−1)/2 edges in total, generated in
//     (i ascending, j ascending) order.
//   - Ordering: edges are stable-sorted by ascending distance, so equal
//     distances keep generation order. Results are reproducible across runs
//     and across sequential/parallel generation.
//   - Clustering: edges are replayed in that order against a dsu.DisjointSet
//     owned by the run. A union that joins two distinct circuits is a merge;
//     an edge whose endpoints already share a circuit is skipped.
//
// Modes
//
//   - Connect(points, k, ...) — Bounded Connections.
//     Stops after k merges (policy CountMerges, the default) or after k
//     examined edges (policy CountAttempts), or when edges run out. Returns
//     the circuit sizes and the product of the three largest.
//
//   - ConnectAll(points, ...) — Full Connectivity.
//     Stops as soon as one circuit remains and returns the pair of point
//     indexes whose merge completed it. FullResult.Project turns that pair
//     into a number through a caller-supplied Projection such as ProductX.
//
//   - Compute(points, Request, ...) dispatches on Request.Mode and returns
//     the final number directly.
//
// Options
//
//   - WithMetric       — distance metric (default spatial.SquaredEuclidean).
//   - WithStrategy     — union heuristic (default dsu.ByRank).
//   - WithBoundPolicy  — what counts toward k in Connect.
//   - WithWorkers      — parallel edge generation (0 or 1 = sequential).
//   - WithContext      — cancellation for parallel generation.
//   - WithObserver     — receives one Event per examined edge.
//
// The observer trace is informational only; it never changes a result.
//
// Error Conditions
//
//   - ErrInvalidBound     — Connect with k < 0.
//   - ErrTooFewCircuits   — Connect ended with fewer than three circuits.
//   - ErrNotConnectable   — ConnectAll on fewer than two points.
//   - spatial.ErrMalformedPoint — a point has a NaN or infinite coordinate.
//   - ErrOptionViolation  — an Option received an invalid value.
//
// Complexity: O(n² log n) time for generation plus sort, O(n²·α(n)) worst
// case for the union phase; O(n²) memory for the edge list.
package circuit

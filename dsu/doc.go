// Package dsu provides an array-backed disjoint-set (union-find) structure
// over the dense index range 0..n-1.
//
// What & Why
//
//   - A DisjointSet partitions n elements into groups. Every element belongs
//     to exactly one group, identified by a canonical representative.
//   - Groups only ever merge. Each successful Union lowers GroupCount by one;
//     a Union of two already-grouped elements is a no-op that returns false.
//   - Every group tracks its member count, so GroupSize and GroupSizes are
//     answered without walking members. The sum of all group sizes is n at
//     every point in time.
//
// Heuristics
//
//   - Path compression: Find re-points every node it visits directly at the
//     representative. This changes the internal tree shape but never the
//     logical answer, so Find needs a mutable (pointer) receiver even though
//     it reads like a query.
//   - Union by rank (default) attaches the shallower tree under the deeper
//     one; union by size (WithStrategy(BySize)) attaches the smaller group
//     under the larger one. Both keep amortized cost near O(α(n)) and both
//     produce identical group membership and sizes.
//
// Errors
//
//	Indexes outside [0, n) are programmer errors: Find, Union, Connected and
//	GroupSize panic with an error wrapping ErrIndexOutOfRange rather than
//	clamping silently.
//
// Concurrency
//
//	A DisjointSet is owned by one goroutine for the duration of one run;
//	it performs no locking.
//
// Complexity: New is O(n); Find/Union are amortized O(α(n));
// GroupSizes and Groups are O(n·α(n)).
package dsu

package circuit

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/circuits/dsu"
	"github.com/katalvlaran/circuits/spatial"
)

// Connect replays the closest pairs of points until k connections have been
// counted (see BoundPolicy) or the edges run out, then reports the circuit
// sizes and the product of the three largest.
//
// Error Conditions:
//   - ErrOptionViolation : an option carried an invalid value.
//   - ErrInvalidBound    : k < 0.
//   - spatial.ErrMalformedPoint : a coordinate is NaN or ±Inf.
//   - ErrTooFewCircuits  : fewer than three circuits remain at the end.
//
// Steps:
//  1. Validate options, k and the coordinates.
//  2. Generate all n·(n−1)/2 edges and stable-sort them by distance.
//  3. Create a fresh disjoint set of n singletons.
//  4. For each edge in order: stop once k connections are counted; otherwise
//     union its endpoints, count it, and notify the observer.
//  5. Sort the circuit sizes descending and multiply the top three.
//
// Complexity: O(n² log n). Memory: O(n²).
func Connect(points []spatial.Point, k int, opts ...Option) (*BoundedResult, error) {
	// 1. Validate.
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if k < 0 {
		return nil, errors.Wrapf(ErrInvalidBound, "got %d", k)
	}
	if err = spatial.Validate(points); err != nil {
		return nil, err
	}

	// 2. Candidate edges in processing order.
	edges, err := sortedEdges(points, o)
	if err != nil {
		return nil, err
	}

	// 3. One disjoint set, owned by this run only.
	ds := dsu.New(len(points), dsu.WithStrategy(o.Strategy))

	// 4. Union phase.
	res := &BoundedResult{}
	for _, e := range edges {
		// 4a. Stop once the bound is reached under the chosen policy.
		counted := res.Merges
		if o.Policy == CountAttempts {
			counted = res.Attempts
		}
		if counted >= k {
			break
		}

		// 4b. Try the connection; a pair already sharing a circuit is skipped.
		merged := ds.Union(e.A, e.B)
		res.Attempts++
		if merged {
			res.Merges++
		}

		// 4c. Report the examined edge.
		notify(o.Observer, res.Attempts, e, merged, ds)
	}

	// 5. Extract sizes; the top three must exist.
	res.Circuits = ds.GroupCount()
	res.Sizes = ds.GroupSizes()
	sort.Sort(sort.Reverse(sort.IntSlice(res.Sizes)))
	if len(res.Sizes) < 3 {
		return nil, errors.Wrapf(ErrTooFewCircuits, "%d circuit(s) after %d merge(s)", len(res.Sizes), res.Merges)
	}
	copy(res.Top[:], res.Sizes[:3])
	res.Product = res.Top[0] * res.Top[1] * res.Top[2]

	return res, nil
}

// ConnectAll replays the closest pairs of points until a single circuit
// remains and reports the edge whose merge completed it.
//
// Error Conditions:
//   - ErrOptionViolation : an option carried an invalid value.
//   - spatial.ErrMalformedPoint : a coordinate is NaN or ±Inf.
//   - ErrNotConnectable  : fewer than two points, so no completing edge exists.
//
// Steps:
//  1. Validate options and coordinates; reject n < 2 before generating anything.
//  2. Generate and stable-sort all edges.
//  3. Union edges in order, remembering the last merge, and stop as soon as
//     the disjoint set holds one group.
//  4. Report the last merged edge.
//
// Complexity: O(n² log n). Memory: O(n²).
func ConnectAll(points []spatial.Point, opts ...Option) (*FullResult, error) {
	// 1. Validate.
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = spatial.Validate(points); err != nil {
		return nil, err
	}
	if len(points) < 2 {
		return nil, errors.Wrapf(ErrNotConnectable, "%d point(s)", len(points))
	}

	// 2. Candidate edges in processing order.
	edges, err := sortedEdges(points, o)
	if err != nil {
		return nil, err
	}

	// 3. Union phase.
	ds := dsu.New(len(points), dsu.WithStrategy(o.Strategy))
	var (
		res  = &FullResult{}
		last *Edge
	)
	for i := range edges {
		e := &edges[i]

		// 3a. Try the connection; only a real merge can complete the circuit.
		merged := ds.Union(e.A, e.B)
		res.Attempts++
		if merged {
			res.Merges++
			last = e
		}

		// 3b. Report the examined edge.
		notify(o.Observer, res.Attempts, *e, merged, ds)

		// 3c. One circuit left: last is the completing edge.
		if ds.GroupCount() == 1 {
			break
		}
	}

	// 4. A complete edge set over n >= 2 points always connects; guard anyway
	//    so a stale pair is never reported.
	if last == nil || ds.GroupCount() != 1 {
		return nil, errors.Wrapf(ErrNotConnectable, "%d circuits remain", ds.GroupCount())
	}
	res.A, res.B, res.Distance = last.A, last.B, last.Distance

	return res, nil
}

// Mode selects which answer Compute produces.
type Mode int

const (
	// Bounded runs Connect and answers with the three-largest product.
	Bounded Mode = iota

	// Full runs ConnectAll and answers with the projection of the last pair.
	Full
)

// Request describes one Compute call.
type Request struct {
	// Mode picks Connect or ConnectAll.
	Mode Mode
	// Connections is the bound k for Bounded mode.
	Connections int
	// Projection maps the completing pair to a number in Full mode.
	// Default: ProductX.
	Projection Projection
}

// Compute runs the requested mode and returns its scalar answer.
func Compute(points []spatial.Point, req Request, opts ...Option) (float64, error) {
	switch req.Mode {
	case Bounded:
		res, err := Connect(points, req.Connections, opts...)
		if err != nil {
			return 0, err
		}
		return float64(res.Product), nil
	case Full:
		res, err := ConnectAll(points, opts...)
		if err != nil {
			return 0, err
		}
		proj := req.Projection
		if proj == nil {
			proj = ProductX
		}
		return res.Project(points, proj), nil
	default:
		return 0, errors.Wrapf(ErrOptionViolation, "unknown mode %d", int(req.Mode))
	}
}

func notify(obs Observer, step int, e Edge, merged bool, ds *dsu.DisjointSet) {
	if obs == nil {
		return
	}
	obs.Observe(Event{
		Step:     step,
		A:        e.A,
		B:        e.B,
		Distance: e.Distance,
		Merged:   merged,
		Circuits: ds.GroupCount(),
	})
}

package circuit

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/circuits/dsu"
	"github.com/katalvlaran/circuits/spatial"
)

// Sentinel errors for circuit building.
var (
	// ErrInvalidBound indicates a negative connection bound.
	ErrInvalidBound = errors.New("circuit: connection bound must be >= 0")

	// ErrTooFewCircuits indicates fewer than three circuits remained, so the
	// three-largest product is undefined.
	ErrTooFewCircuits = errors.New("circuit: fewer than three circuits remain")

	// ErrNotConnectable indicates full connectivity has no completing pair,
	// which happens only with fewer than two points.
	ErrNotConnectable = errors.New("circuit: points cannot be joined into one circuit")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("circuit: invalid option supplied")
)

// Edge is a candidate connection between points A and B (A < B).
type Edge struct {
	A, B     int
	Distance float64
}

// Event describes one examined edge during the union phase.
type Event struct {
	// Step is the 1-based position of the edge in sorted order.
	Step int
	// A and B are the point indexes of the edge, A < B.
	A, B int
	// Distance is the metric value of the edge.
	Distance float64
	// Merged reports whether the edge joined two distinct circuits.
	Merged bool
	// Circuits is the number of circuits after this edge.
	Circuits int
}

// Observer receives the trace of examined edges in order.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function into an Observer.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

// Recorder is an Observer that keeps every event in memory.
type Recorder struct {
	Events []Event
}

// Observe appends e.
func (r *Recorder) Observe(e Event) { r.Events = append(r.Events, e) }

// Merges returns only the events that joined two circuits.
func (r *Recorder) Merges() []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Merged {
			out = append(out, e)
		}
	}

	return out
}

// BoundPolicy decides what Connect counts toward its bound.
type BoundPolicy int

const (
	// CountMerges counts only unions that joined two distinct circuits.
	CountMerges BoundPolicy = iota

	// CountAttempts counts every examined edge, merged or skipped.
	CountAttempts
)

// Options holds the tunables shared by Connect, ConnectAll and Compute.
type Options struct {
	// Ctx cancels parallel edge generation. The union phase never checks it.
	Ctx context.Context

	// Metric measures edge length. Default: spatial.SquaredEuclidean.
	Metric spatial.Metric

	// Strategy is the union heuristic of the run's disjoint set. Default: dsu.ByRank.
	Strategy dsu.Strategy

	// Policy selects what Connect counts toward k. Default: CountMerges.
	Policy BoundPolicy

	// Workers > 1 generates edges on that many goroutines; 0 or 1 is sequential.
	Workers int

	// Observer, if non-nil, receives one Event per examined edge.
	Observer Observer

	// internal error recorded during option parsing
	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the sequential, squared-Euclidean, rank-based,
// merge-counting configuration without an observer.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Metric:   spatial.SquaredEuclidean{},
		Strategy: dsu.ByRank,
		Policy:   CountMerges,
	}
}

// WithContext sets the context checked by parallel generation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMetric sets the distance metric; nil is an ErrOptionViolation.
func WithMetric(m spatial.Metric) Option {
	return func(o *Options) {
		if m == nil {
			o.err = errors.Wrap(ErrOptionViolation, "metric is nil")
			return
		}
		o.Metric = m
	}
}

// WithStrategy sets the union heuristic.
func WithStrategy(s dsu.Strategy) Option {
	return func(o *Options) {
		if s != dsu.ByRank && s != dsu.BySize {
			o.err = errors.Wrapf(ErrOptionViolation, "unknown union strategy %d", int(s))
			return
		}
		o.Strategy = s
	}
}

// WithBoundPolicy sets what Connect counts toward its bound.
func WithBoundPolicy(p BoundPolicy) Option {
	return func(o *Options) {
		if p != CountMerges && p != CountAttempts {
			o.err = errors.Wrapf(ErrOptionViolation, "unknown bound policy %d", int(p))
			return
		}
		o.Policy = p
	}
}

// WithWorkers sets the edge generation parallelism.
//
//	w > 1: that many goroutines
//	w == 0 or 1: sequential
//	w < 0: ErrOptionViolation
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "workers cannot be negative (%d)", w)
			return
		}
		o.Workers = w
	}
}

// WithObserver registers a trace receiver; nil disables tracing.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

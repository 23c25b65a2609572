package dsu

import (
	"github.com/cockroachdb/errors"
)

// ErrIndexOutOfRange is carried by the panic raised when an element index
// falls outside [0, n).
var ErrIndexOutOfRange = errors.New("dsu: index out of range")

// Strategy selects the union heuristic.
type Strategy int

const (
	// ByRank attaches the root of lower rank under the root of higher rank.
	ByRank Strategy = iota

	// BySize attaches the root of the smaller group under the larger one.
	BySize
)

// String returns the configuration name of s.
func (s Strategy) String() string {
	switch s {
	case ByRank:
		return "rank"
	case BySize:
		return "size"
	default:
		return "unknown"
	}
}

// StrategyByName resolves "rank" or "size"; an empty name selects ByRank.
func StrategyByName(name string) (Strategy, error) {
	switch name {
	case "", "rank":
		return ByRank, nil
	case "size":
		return BySize, nil
	default:
		return ByRank, errors.Newf("dsu: unknown strategy %q (want \"rank\" or \"size\")", name)
	}
}

// Options configures a DisjointSet.
type Options struct {
	// Strategy is the union heuristic. Default: ByRank.
	Strategy Strategy
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options{Strategy: ByRank}.
func DefaultOptions() Options {
	return Options{Strategy: ByRank}
}

// WithStrategy selects the union heuristic. Unknown values fall back to ByRank.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s == ByRank || s == BySize {
			o.Strategy = s
		}
	}
}

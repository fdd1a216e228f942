// Package notegraph declares the Pitch token, sentinel errors, and the
// functional options used to configure transition-graph construction.
//
// Error policy (strict):
//   - Only package-level sentinel variables are exposed.
//   - Callers MUST branch with errors.Is(err, ErrX); context is attached at
//     call sites via %w wrapping, never baked into the sentinel itself.
//   - Construction and queries return errors; option constructors panic on
//     meaningless inputs (programmer error), algorithms never panic.
package notegraph

import (
	"errors"
	"math/rand"
)

// Sentinel errors for transition-graph construction and queries.
var (
	// ErrInvalidAlphabet indicates an empty alphabet or one containing
	// duplicate symbols. Both break the sampling contract: an empty alphabet
	// has no nodes to walk, a duplicate would alias two edge rows.
	ErrInvalidAlphabet = errors.New("notegraph: invalid alphabet")

	// ErrBadWeightRange indicates weight bounds that are non-positive or
	// inverted (require 0 < min < max).
	ErrBadWeightRange = errors.New("notegraph: weight range must satisfy 0 < min < max")

	// ErrNonPositiveWeight indicates a weight function produced w ≤ 0 during
	// construction. Every edge weight must be strictly positive so that each
	// symbol remains leavable under proportional sampling.
	ErrNonPositiveWeight = errors.New("notegraph: weight must be strictly positive")

	// ErrUnknownSymbol indicates a query referenced a pitch symbol that is
	// not a member of the graph's alphabet.
	ErrUnknownSymbol = errors.New("notegraph: unknown pitch symbol")
)

// Pitch is an opaque, comparable pitch symbol. The graph attaches no musical
// meaning to it beyond identity.
type Pitch string

// Default weight bounds for the uniform edge-weight distribution.
// Strictly positive and bounded to avoid pathological skew; tunable via
// WithWeightRange, not a hard contract.
const (
	DefaultMinWeight = 0.1
	DefaultMaxWeight = 1.0
)

// defaultRNGSeed is the fixed seed used when no RNG option is supplied.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// DefaultAlphabet returns the seven natural note names, C through B.
// The slice is freshly allocated; callers may mutate their copy freely.
func DefaultAlphabet() []Pitch {
	return []Pitch{"C", "D", "E", "F", "G", "A", "B"}
}

// config collects resolved construction parameters. All options mutate a
// config instance before New begins emitting edges.
type config struct {
	alphabet []Pitch    // node set, in caller order
	weightFn WeightFn   // per-edge weight generator
	rng      *rand.Rand // entropy source for weightFn
}

// Option customizes transition-graph construction.
type Option func(*config)

// WithAlphabet sets the pitch alphabet. Order is preserved and meaningful:
// it fixes edge-emission order and the walker's deterministic scan order.
// Membership validation happens in New (ErrInvalidAlphabet), not here.
func WithAlphabet(alphabet []Pitch) Option {
	return func(c *config) {
		c.alphabet = alphabet
	}
}

// WithWeightRange draws edge weights uniformly from (min, max).
// Panics if the bounds are non-positive or inverted; range validity is a
// configuration-time concern, not a runtime condition.
func WithWeightRange(min, max float64) Option {
	if min <= 0 || max <= min {
		panic(ErrBadWeightRange.Error())
	}
	return func(c *config) {
		c.weightFn = UniformWeightFn(min, max)
	}
}

// WithWeightFn overrides the per-edge weight generator. The function must be
// pure with respect to the RNG state to preserve determinism, and must yield
// strictly positive weights (checked at build time). Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("notegraph: WithWeightFn(nil)")
	}
	return func(c *config) {
		c.weightFn = fn
	}
}

// WithRand provides an explicit RNG for weight sampling.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("notegraph: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a deterministic *rand.Rand from the given seed.
// Policy: seed==0 ⇒ the fixed default seed, so a zero value never means
// "time-based" anywhere in this package.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(resolveSeed(seed)))
	}
}

// resolveSeed maps the zero seed onto defaultRNGSeed and passes every other
// value through verbatim.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}
	return seed
}

// newConfig applies opts over package defaults and resolves the RNG.
func newConfig(opts []Option) config {
	cfg := config{
		alphabet: DefaultAlphabet(),
		weightFn: UniformWeightFn(DefaultMinWeight, DefaultMaxWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultRNGSeed))
	}
	return cfg
}

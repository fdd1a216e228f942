// types.go — sentinel errors, Options, and functional options for Walk.
//
// Error policy mirrors notegraph: sentinels only, errors.Is for branching,
// %w wrapping for context. Option constructors panic on programmer error;
// Walk itself only returns errors.

package walker

import (
	"errors"
	"math/rand"

	"github.com/VanishaParwal/MusicAlgorithm/notegraph"
)

// Sentinel errors returned by Walk.
var (
	// ErrNilGraph indicates a nil *notegraph.Graph was passed to Walk.
	ErrNilGraph = errors.New("walker: graph is nil")

	// ErrInvalidStart indicates the start symbol is not a member of the
	// graph's alphabet and no fallback policy was configured.
	ErrInvalidStart = errors.New("walker: start symbol not in alphabet")

	// ErrInvalidLength indicates a non-positive requested length, or a
	// length above the ceiling when strict length checking is enabled.
	ErrInvalidLength = errors.New("walker: invalid melody length")
)

// Melody is an ordered sequence of pitch symbols. Every consecutive pair is
// an edge of the graph that produced it.
type Melody []notegraph.Pitch

// Strings returns the melody as plain strings, for callers that hand the
// sequence to renderers or exporters.
func (m Melody) Strings() []string {
	out := make([]string, len(m))
	for i, p := range m {
		out[i] = string(p)
	}
	return out
}

// Defaults for walk configuration.
const (
	// DefaultLength matches the original composer's default melody length.
	DefaultLength = 16

	// DefaultMaxLength caps requested lengths to keep work bounded.
	DefaultMaxLength = 512
)

// Options configures one walk.
//
// Start         – starting pitch symbol; empty means "alphabet's first".
// Length        – requested number of notes (draws = Length−1).
// MaxLength     – clamp ceiling for Length.
// FallbackStart – substitute the first symbol for an unknown start.
// StrictLength  – reject out-of-range lengths instead of clamping.
// Rand / Seed   – entropy source; Rand wins when both are set, Seed==0
//                 means the fixed default seed.
type Options struct {
	Start         notegraph.Pitch
	Length        int
	MaxLength     int
	FallbackStart bool
	StrictLength  bool
	Rand          *rand.Rand
	Seed          int64
}

// Option is a functional option for configuring Walk.
type Option func(*Options)

// DefaultOptions returns the baseline walk configuration:
// first-symbol start, DefaultLength notes, clamping ceiling of
// DefaultMaxLength, deterministic default seed.
func DefaultOptions() Options {
	return Options{
		Length:    DefaultLength,
		MaxLength: DefaultMaxLength,
	}
}

// Start sets the starting pitch symbol. Empty keeps the documented default
// (the alphabet's first symbol). Membership is validated in Walk.
func Start(p notegraph.Pitch) Option {
	return func(o *Options) { o.Start = p }
}

// Length sets the requested melody length. Validated in Walk
// (ErrInvalidLength), not here: a bad length is an input error, not a
// programmer error.
func Length(n int) Option {
	return func(o *Options) { o.Length = n }
}

// WithMaxLength overrides the clamp ceiling. Panics if max < 1; a
// non-positive ceiling is a meaningless configuration.
func WithMaxLength(max int) Option {
	if max < 1 {
		panic("walker: WithMaxLength(max < 1)")
	}
	return func(o *Options) { o.MaxLength = max }
}

// WithFallbackStart substitutes the alphabet's first symbol when the start
// symbol is unknown, instead of failing with ErrInvalidStart.
func WithFallbackStart() Option {
	return func(o *Options) { o.FallbackStart = true }
}

// WithStrictLength rejects lengths above the ceiling with ErrInvalidLength
// instead of clamping.
func WithStrictLength() Option {
	return func(o *Options) { o.StrictLength = true }
}

// WithRand provides an explicit RNG for the walk. Panics on nil;
// prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("walker: WithRand(nil)")
	}
	return func(o *Options) { o.Rand = r }
}

// WithSeed selects a deterministic RNG seed for the walk.
// Policy: seed==0 ⇒ fixed default seed (see rng.go).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

package composer

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/VanishaParwal/MusicAlgorithm/mood"
	"github.com/VanishaParwal/MusicAlgorithm/notegraph"
	"github.com/VanishaParwal/MusicAlgorithm/walker"
)

// defaultRNGSeed is the fixed "zero" seed; seed==0 never means time-based.
const defaultRNGSeed int64 = 1

// DefaultSeconds matches the original composer's default melody duration.
const DefaultSeconds = 16

// Composer owns one transition graph and the session entropy stream.
// Zero value is not usable; construct with New.
type Composer struct {
	mu       sync.Mutex
	graph    *notegraph.Graph
	base     *rand.Rand // seed-derivation stream; guarded by mu
	stream   uint64     // per-call stream counter; guarded by mu
	alphabet []notegraph.Pitch
	profiles map[mood.Mood]mood.Profile
	minW     float64
	maxW     float64
}

// Option configures a new session.
type Option func(*Composer)

// WithAlphabet sets the session's pitch alphabet (default: C..B).
func WithAlphabet(alphabet []notegraph.Pitch) Option {
	return func(c *Composer) { c.alphabet = alphabet }
}

// WithSeed fixes the session seed. Policy: seed==0 ⇒ fixed default seed.
func WithSeed(seed int64) Option {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return func(c *Composer) { c.base = rand.New(rand.NewSource(s)) }
}

// WithWeightRange sets the uniform weight bounds used for every (re)build.
// Panics unless 0 < min < max, mirroring notegraph.WithWeightRange.
func WithWeightRange(min, max float64) Option {
	if min <= 0 || max <= min {
		panic(notegraph.ErrBadWeightRange.Error())
	}
	return func(c *Composer) { c.minW, c.maxW = min, max }
}

// WithProfiles replaces the built-in mood table, e.g. with one loaded via
// mood.LoadProfiles. Panics on an empty table.
func WithProfiles(profiles map[mood.Mood]mood.Profile) Option {
	if len(profiles) == 0 {
		panic("composer: WithProfiles(empty)")
	}
	return func(c *Composer) { c.profiles = profiles }
}

// New builds a session and its initial transition graph.
// Construction errors come from notegraph.New (e.g. ErrInvalidAlphabet).
func New(opts ...Option) (*Composer, error) {
	c := &Composer{
		alphabet: notegraph.DefaultAlphabet(),
		profiles: mood.DefaultProfiles(),
		minW:     notegraph.DefaultMinWeight,
		maxW:     notegraph.DefaultMaxWeight,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.base == nil {
		c.base = rand.New(rand.NewSource(defaultRNGSeed))
	}

	g, err := c.buildGraph()
	if err != nil {
		return nil, err
	}
	c.graph = g
	return c, nil
}

// buildGraph constructs a fresh graph on the next derived stream.
// Callers hold no lock during New; Rebuild locks around it.
func (c *Composer) buildGraph() (*notegraph.Graph, error) {
	g, err := notegraph.New(
		notegraph.WithAlphabet(c.alphabet),
		notegraph.WithWeightRange(c.minW, c.maxW),
		notegraph.WithRand(c.nextStream()),
	)
	if err != nil {
		return nil, fmt.Errorf("composer: build graph: %w", err)
	}
	return g, nil
}

// nextStream derives an independent deterministic RNG stream from the
// session base. SplitMix64-style mixing decorrelates consecutive streams.
func (c *Composer) nextStream() *rand.Rand {
	c.stream++
	// Int63 advances the base state; intentional, so reusing a stream id
	// after a rebuild cannot replay an earlier stream.
	return rand.New(rand.NewSource(deriveSeed(c.base.Int63(), c.stream)))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using the canonical SplitMix64 finalizer constants.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Graph returns the session's current transition graph. The graph itself is
// immutable; the pointer stays valid after a Rebuild but no longer reflects
// the session.
func (c *Composer) Graph() *notegraph.Graph {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.graph
}

// Rebuild replaces the graph with one carrying fresh random weights over
// the same alphabet. In-flight Generate calls keep their snapshot.
func (c *Composer) Rebuild() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	g, err := c.buildGraph()
	if err != nil {
		return err
	}
	c.graph = g
	return nil
}

// Generate produces one Piece: a walk over the current graph plus the
// per-note intensity envelope, mood, and rendering parameters.
//
// Policies:
//   - duration seconds → note count, 1:1;
//   - unspecified start ⇒ a uniformly random alphabet symbol from the
//     call's derived stream (the original behavior); a caller-supplied
//     start must be an alphabet member (walker.ErrInvalidStart otherwise);
//   - unknown mood ⇒ mood.ErrUnknownMood.
//
// Reproducible for a fixed session seed and call sequence.
func (c *Composer) Generate(opts ...GenOption) (Piece, error) {
	cfg := defaultGenOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	profile, ok := c.profiles[cfg.Mood]
	if !ok {
		return Piece{}, fmt.Errorf("composer: mood %q: %w", cfg.Mood, mood.ErrUnknownMood)
	}

	// Snapshot the graph and derive this call's stream under the lock;
	// the walk itself runs lock-free on the immutable snapshot.
	c.mu.Lock()
	g := c.graph
	rng := c.nextStream()
	c.mu.Unlock()

	start := cfg.Start
	if start == "" {
		alphabet := g.Alphabet()
		start = alphabet[rng.Intn(len(alphabet))]
	}

	notes, err := walker.Walk(g,
		walker.Start(start),
		walker.Length(cfg.Seconds),
		walker.WithRand(rng),
	)
	if err != nil {
		return Piece{}, fmt.Errorf("composer: generate: %w", err)
	}

	// Intensity envelope: one value per note, scaled by the mood's weight
	// multiplier. Uniform weight scaling cancels out of the walk's
	// proportional sampling, so the multiplier shapes dynamics instead.
	intensity := make([]float64, len(notes))
	for i := range intensity {
		v := rng.Float64() * profile.WeightMul
		if v > 1 {
			v = 1
		}
		intensity[i] = v
	}

	return Piece{
		Notes:     notes,
		Intensity: intensity,
		Mood:      cfg.Mood,
		TempoBPM:  cfg.TempoBPM,
		NoteBeats: profile.NoteBeats,
	}, nil
}

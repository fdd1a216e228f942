// types.go — sentinel errors, note-number mapping, and export options.

package midi

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/VanishaParwal/MusicAlgorithm/notegraph"
)

// Sentinel errors for MIDI export.
var (
	// ErrEmptyMelody indicates there are no notes to serialize.
	ErrEmptyMelody = errors.New("midi: empty melody")

	// ErrUnknownSymbol indicates a pitch symbol with no MIDI note mapping.
	ErrUnknownSymbol = errors.New("midi: unknown pitch symbol")

	// ErrBadOctave indicates an octave outside the supported 0..8 range.
	ErrBadOctave = errors.New("midi: octave out of range")

	// ErrBadTempo indicates a non-positive tempo.
	ErrBadTempo = errors.New("midi: tempo must be positive")

	// ErrBadNoteBeats indicates a non-positive note duration.
	ErrBadNoteBeats = errors.New("midi: note duration must be positive")
)

// Serialization constants.
const (
	// TicksPerBeat is the SMF division: pulses per quarter note.
	TicksPerBeat = 480

	// microsPerMinute converts BPM into the tempo meta event's
	// microseconds-per-quarter payload.
	microsPerMinute = 60_000_000

	minOctave = 0
	maxOctave = 8

	// velocityJitter is the half-width of the humanization band applied
	// around the base velocity.
	velocityJitter = 10
)

// Export defaults.
const (
	DefaultTempoBPM = 120
	DefaultOctave   = 4
	DefaultVelocity = 100
	DefaultBeats    = 1.0
)

// noteNumbers maps the natural note names to their MIDI numbers at octave 4
// (middle C = 60).
var noteNumbers = map[notegraph.Pitch]int{
	"C": 60, "D": 62, "E": 64, "F": 65, "G": 67, "A": 69, "B": 71,
}

// NoteNumber returns the MIDI note number of p at the given octave.
// Octave 4 is the reference; each octave shifts by 12 semitones.
// Returns ErrUnknownSymbol for unmapped symbols, ErrBadOctave outside 0..8.
func NoteNumber(p notegraph.Pitch, octave int) (uint8, error) {
	base, ok := noteNumbers[p]
	if !ok {
		return 0, fmt.Errorf("NoteNumber(%q): %w", p, ErrUnknownSymbol)
	}
	if octave < minOctave || octave > maxOctave {
		return 0, fmt.Errorf("NoteNumber(%q, octave=%d): %w", p, octave, ErrBadOctave)
	}
	return uint8(base + (octave-DefaultOctave)*12), nil
}

// Options configures one export.
//
// TempoBPM   – quarter notes per minute for the tempo meta event.
// Octave     – octave every melody symbol is rendered in.
// NoteBeats  – duration of each note in beats (notes are laid back to back).
// Velocity   – base note-on velocity before humanization.
// Rand/Seed  – entropy for velocity humanization; Rand wins when both set,
//              Seed==0 means the fixed default seed.
type Options struct {
	TempoBPM  int
	Octave    int
	NoteBeats float64
	Velocity  uint8
	Rand      *rand.Rand
	Seed      int64
}

// Option is a functional option for configuring Export.
type Option func(*Options)

// DefaultOptions returns the baseline export configuration:
// 120 BPM, octave 4, one beat per note, base velocity 100.
func DefaultOptions() Options {
	return Options{
		TempoBPM:  DefaultTempoBPM,
		Octave:    DefaultOctave,
		NoteBeats: DefaultBeats,
		Velocity:  DefaultVelocity,
	}
}

// WithTempo sets the tempo in BPM. Validated in Export (ErrBadTempo).
func WithTempo(bpm int) Option {
	return func(o *Options) { o.TempoBPM = bpm }
}

// WithOctave sets the rendering octave. Validated in Export (ErrBadOctave).
func WithOctave(n int) Option {
	return func(o *Options) { o.Octave = n }
}

// WithNoteBeats sets the per-note duration in beats.
// Validated in Export (ErrBadNoteBeats).
func WithNoteBeats(beats float64) Option {
	return func(o *Options) { o.NoteBeats = beats }
}

// WithVelocity sets the base note-on velocity. Panics outside 1..127;
// the MIDI range is a configuration invariant, not an input condition.
func WithVelocity(v uint8) Option {
	if v < 1 || v > 127 {
		panic(fmt.Sprintf("midi: WithVelocity(%d): want 1..127", v))
	}
	return func(o *Options) { o.Velocity = v }
}

// WithRand provides an explicit RNG for velocity humanization.
// Panics on nil; prefer WithSeed for reproducible files.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("midi: WithRand(nil)")
	}
	return func(o *Options) { o.Rand = r }
}

// WithSeed selects a deterministic humanization seed.
// Policy: seed==0 ⇒ fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

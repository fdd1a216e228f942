package composer

import (
	"io"

	"github.com/VanishaParwal/MusicAlgorithm/midi"
	"github.com/VanishaParwal/MusicAlgorithm/mood"
	"github.com/VanishaParwal/MusicAlgorithm/notegraph"
	"github.com/VanishaParwal/MusicAlgorithm/walker"
)

// GenOptions configures one Generate call.
//
// Mood     – mood label resolved against the session's profile table.
// Seconds  – requested duration; maps 1:1 onto note count.
// Start    – starting pitch; empty means "random alphabet symbol".
// TempoBPM – playback tempo carried into MIDI rendering only.
type GenOptions struct {
	Mood     mood.Mood
	Seconds  int
	Start    notegraph.Pitch
	TempoBPM int
}

// GenOption is a functional option for Generate.
type GenOption func(*GenOptions)

// defaultGenOptions mirrors the original UI defaults: happy, 16 notes,
// random start, 120 BPM.
func defaultGenOptions() GenOptions {
	return GenOptions{
		Mood:     mood.Happy,
		Seconds:  DefaultSeconds,
		TempoBPM: midi.DefaultTempoBPM,
	}
}

// Mood selects the mood profile for this piece.
func Mood(m mood.Mood) GenOption {
	return func(o *GenOptions) { o.Mood = m }
}

// Seconds sets the requested duration. Validated downstream by the walker
// (walker.ErrInvalidLength for non-positive values).
func Seconds(n int) GenOption {
	return func(o *GenOptions) { o.Seconds = n }
}

// Start sets the starting pitch symbol. Empty keeps the random-start
// default.
func Start(p notegraph.Pitch) GenOption {
	return func(o *GenOptions) { o.Start = p }
}

// WithTempo sets the rendering tempo in BPM. Validated by the MIDI
// exporter (midi.ErrBadTempo).
func WithTempo(bpm int) GenOption {
	return func(o *GenOptions) { o.TempoBPM = bpm }
}

// Piece is one generated melody plus everything the presentation layer
// needs to render it: the intensity envelope (one value in [0,1] per note),
// the mood it was generated under, and its MIDI rendering parameters.
type Piece struct {
	Notes     walker.Melody
	Intensity []float64
	Mood      mood.Mood
	TempoBPM  int
	NoteBeats float64
}

// ExportMIDI serializes the piece as a Type-0 Standard MIDI File.
// Piece parameters (tempo, note duration) are applied first; extra options
// may override them or add octave/velocity/seed settings.
func (p Piece) ExportMIDI(w io.Writer, opts ...midi.Option) error {
	all := append([]midi.Option{
		midi.WithTempo(p.TempoBPM),
		midi.WithNoteBeats(p.NoteBeats),
	}, opts...)
	return midi.Export(w, p.Notes, all...)
}

// Package midi serializes melodies into Standard MIDI Files (Type 0).
//
// The exporter maps each pitch symbol to a MIDI note number (C4 = 60,
// natural notes only) and lays the melody out as a single track of
// fixed-duration note-on/note-off pairs at 480 ticks per beat, preceded by
// a tempo meta event. Velocities are lightly humanized around a base value
// using an injected, seedable RNG, so output files are reproducible.
//
// The exporter knows nothing about how the melody was generated; it only
// requires a non-empty sequence of recognizable pitch symbols.
package midi

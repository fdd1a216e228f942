// Package composer ties the generation pipeline together for one session:
// it owns a transition graph built once at construction, produces a new
// Piece per Generate call, and re-randomizes the graph on demand.
//
// Lifecycle (one session):
//
//	c, _ := composer.New(composer.WithSeed(42))
//	p, _ := c.Generate(composer.Mood(mood.Happy), composer.Seconds(16))
//	_ = p.ExportMIDI(file)
//	_ = c.Rebuild() // fresh random weights, same alphabet
//
// Duration maps 1:1 onto note count — a request for n seconds yields n
// notes, with tempo affecting only MIDI rendering. Each Generate call runs
// on an independent RNG stream derived from the session's base seed
// (SplitMix64 mixing), so calls are reproducible in sequence for a fixed
// session seed and mood/duration/start inputs.
//
// Thread safety: the graph is immutable between rebuilds; a session mutex
// orders Rebuild against concurrent Generate calls. Distinct Composers are
// fully independent and safe to drive in parallel.
package composer

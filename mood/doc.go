// Package mood maps mood labels to generation profiles.
//
// A Profile carries two knobs the presentation layer feeds into generation:
//
//   - WeightMul: a uniform multiplier over transition weights. Uniform
//     scaling cancels under proportional sampling, so it does not change the
//     walk's distribution; the composer uses it to shape the intensity
//     envelope instead.
//   - NoteBeats: the preferred note duration in beats, consumed by the MIDI
//     exporter.
//
// Profiles for the four built-in moods (happy, sad, energetic, calm) ship as
// defaults; custom sets load from YAML via LoadProfiles.
package mood

package midi_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/VanishaParwal/MusicAlgorithm/midi"
	"github.com/VanishaParwal/MusicAlgorithm/notegraph"
	"github.com/VanishaParwal/MusicAlgorithm/walker"
)

//----------------------------------------------------------------------------//
// Minimal SMF reader used to verify exporter output
//----------------------------------------------------------------------------//

// trackEvent is one decoded track event at an absolute tick.
type trackEvent struct {
	tick   int
	status byte   // 0xFF for meta
	meta   byte   // meta type when status == 0xFF
	data   []byte // channel data bytes or meta payload
}

// readVarLen decodes one MIDI variable-length quantity.
func readVarLen(b []byte) (value, n int) {
	for {
		value = value<<7 | int(b[n]&0x7F)
		if b[n]&0x80 == 0 {
			return value, n + 1
		}
		n++
	}
}

// parseSMF splits a Type-0 file into its header fields and track events.
func parseSMF(t *testing.T, raw []byte) (division int, events []trackEvent) {
	t.Helper()

	if len(raw) < 22 || string(raw[0:4]) != "MThd" {
		t.Fatalf("missing MThd header: % x", raw[:min(len(raw), 8)])
	}
	if got := binary.BigEndian.Uint32(raw[4:8]); got != 6 {
		t.Fatalf("header length = %d; want 6", got)
	}
	if format := binary.BigEndian.Uint16(raw[8:10]); format != 0 {
		t.Fatalf("format = %d; want 0", format)
	}
	if ntrks := binary.BigEndian.Uint16(raw[10:12]); ntrks != 1 {
		t.Fatalf("ntrks = %d; want 1", ntrks)
	}
	division = int(binary.BigEndian.Uint16(raw[12:14]))

	if string(raw[14:18]) != "MTrk" {
		t.Fatalf("missing MTrk chunk")
	}
	trackLen := int(binary.BigEndian.Uint32(raw[18:22]))
	track := raw[22:]
	if len(track) != trackLen {
		t.Fatalf("track length field = %d; actual %d", trackLen, len(track))
	}

	tick := 0
	for i := 0; i < len(track); {
		delta, n := readVarLen(track[i:])
		i += n
		tick += delta

		status := track[i]
		if status == 0xFF {
			metaType := track[i+1]
			payloadLen := int(track[i+2])
			events = append(events, trackEvent{
				tick:   tick,
				status: status,
				meta:   metaType,
				data:   track[i+3 : i+3+payloadLen],
			})
			i += 3 + payloadLen
			continue
		}
		events = append(events, trackEvent{
			tick:   tick,
			status: status,
			data:   track[i+1 : i+3],
		})
		i += 3
	}
	return division, events
}

//----------------------------------------------------------------------------//
// Export tests
//----------------------------------------------------------------------------//

// TestExport_Structure verifies the full event layout for a three-note
// melody under default options: tempo meta, back-to-back quarter notes at
// octave 4, end-of-track.
func TestExport_Structure(t *testing.T) {
	var buf bytes.Buffer
	melody := walker.Melody{"C", "D", "E"}
	if err := midi.Export(&buf, melody, midi.WithSeed(42)); err != nil {
		t.Fatalf("Export error: %v", err)
	}

	division, events := parseSMF(t, buf.Bytes())
	if division != midi.TicksPerBeat {
		t.Errorf("division = %d; want %d", division, midi.TicksPerBeat)
	}

	// events: tempo, then on/off per note, then end-of-track.
	if len(events) != 2+2*len(melody) {
		t.Fatalf("event count = %d; want %d", len(events), 2+2*len(melody))
	}

	tempo := events[0]
	if tempo.status != 0xFF || tempo.meta != 0x51 || tempo.tick != 0 {
		t.Fatalf("first event is not a tempo meta at tick 0: %+v", tempo)
	}
	mpqn := int(tempo.data[0])<<16 | int(tempo.data[1])<<8 | int(tempo.data[2])
	if mpqn != 500000 { // 120 BPM
		t.Errorf("mpqn = %d; want 500000", mpqn)
	}

	wantNotes := []byte{60, 62, 64} // C4 D4 E4
	for i, note := range wantNotes {
		on := events[1+2*i]
		off := events[2+2*i]

		if on.status != 0x90 || on.data[0] != note {
			t.Errorf("note %d on = %+v; want status 0x90 note %d", i, on, note)
		}
		if vel := on.data[1]; vel < 90 || vel > 110 {
			t.Errorf("note %d velocity = %d; want within 100±10", i, vel)
		}
		if on.tick != i*midi.TicksPerBeat {
			t.Errorf("note %d on tick = %d; want %d", i, on.tick, i*midi.TicksPerBeat)
		}

		if off.status != 0x80 || off.data[0] != note || off.data[1] != 0 {
			t.Errorf("note %d off = %+v; want status 0x80 note %d vel 0", i, off, note)
		}
		if off.tick != (i+1)*midi.TicksPerBeat {
			t.Errorf("note %d off tick = %d; want %d", i, off.tick, (i+1)*midi.TicksPerBeat)
		}
	}

	end := events[len(events)-1]
	if end.status != 0xFF || end.meta != 0x2F {
		t.Fatalf("last event is not end-of-track: %+v", end)
	}
	if end.tick != len(melody)*midi.TicksPerBeat {
		t.Errorf("end-of-track tick = %d; want %d", end.tick, len(melody)*midi.TicksPerBeat)
	}
}

// TestExport_NoteBeatsAndTempo verifies duration and tempo options land in
// the byte stream.
func TestExport_NoteBeatsAndTempo(t *testing.T) {
	var buf bytes.Buffer
	err := midi.Export(&buf, walker.Melody{"G", "A"},
		midi.WithTempo(60),
		midi.WithNoteBeats(0.5),
		midi.WithSeed(1),
	)
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}

	_, events := parseSMF(t, buf.Bytes())

	tempo := events[0]
	mpqn := int(tempo.data[0])<<16 | int(tempo.data[1])<<8 | int(tempo.data[2])
	if mpqn != 1000000 { // 60 BPM
		t.Errorf("mpqn = %d; want 1000000", mpqn)
	}

	// Half-beat notes: off ticks at 240 and 480.
	if off := events[2]; off.tick != 240 {
		t.Errorf("first off tick = %d; want 240", off.tick)
	}
	if off := events[4]; off.tick != 480 {
		t.Errorf("second off tick = %d; want 480", off.tick)
	}
}

// TestExport_OctaveShift checks the ±12 semitone per octave mapping.
func TestExport_OctaveShift(t *testing.T) {
	var buf bytes.Buffer
	if err := midi.Export(&buf, walker.Melody{"C"}, midi.WithOctave(5), midi.WithSeed(1)); err != nil {
		t.Fatalf("Export error: %v", err)
	}
	_, events := parseSMF(t, buf.Bytes())
	if on := events[1]; on.data[0] != 72 {
		t.Errorf("C5 note number = %d; want 72", on.data[0])
	}
}

// TestExport_SeedDeterminism: identical options and seed give identical
// bytes.
func TestExport_SeedDeterminism(t *testing.T) {
	var a, b bytes.Buffer
	melody := walker.Melody{"C", "E", "G", "B"}
	if err := midi.Export(&a, melody, midi.WithSeed(7)); err != nil {
		t.Fatalf("first Export error: %v", err)
	}
	if err := midi.Export(&b, melody, midi.WithSeed(7)); err != nil {
		t.Fatalf("second Export error: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("exports with identical seeds differ")
	}
}

// TestExport_Errors covers the validation sentinels.
func TestExport_Errors(t *testing.T) {
	var buf bytes.Buffer

	if err := midi.Export(&buf, nil); !errors.Is(err, midi.ErrEmptyMelody) {
		t.Errorf("empty melody error = %v; want ErrEmptyMelody", err)
	}
	if err := midi.Export(&buf, walker.Melody{"C"}, midi.WithTempo(0)); !errors.Is(err, midi.ErrBadTempo) {
		t.Errorf("zero tempo error = %v; want ErrBadTempo", err)
	}
	if err := midi.Export(&buf, walker.Melody{"C"}, midi.WithNoteBeats(-1)); !errors.Is(err, midi.ErrBadNoteBeats) {
		t.Errorf("negative beats error = %v; want ErrBadNoteBeats", err)
	}
	if err := midi.Export(&buf, walker.Melody{"H"}); !errors.Is(err, midi.ErrUnknownSymbol) {
		t.Errorf("unknown symbol error = %v; want ErrUnknownSymbol", err)
	}
	if err := midi.Export(&buf, walker.Melody{"C"}, midi.WithOctave(9)); !errors.Is(err, midi.ErrBadOctave) {
		t.Errorf("bad octave error = %v; want ErrBadOctave", err)
	}
}

// TestNoteNumber pins the reference mapping (C4 = 60) and its bounds.
func TestNoteNumber(t *testing.T) {
	cases := []struct {
		pitch  notegraph.Pitch
		octave int
		want   uint8
	}{
		{"C", 4, 60},
		{"D", 4, 62},
		{"B", 4, 71},
		{"C", 5, 72},
		{"A", 3, 57},
		{"C", 0, 12},
		{"B", 8, 119},
	}
	for _, tc := range cases {
		got, err := midi.NoteNumber(tc.pitch, tc.octave)
		if err != nil {
			t.Fatalf("NoteNumber(%s, %d) error: %v", tc.pitch, tc.octave, err)
		}
		if got != tc.want {
			t.Errorf("NoteNumber(%s, %d) = %d; want %d", tc.pitch, tc.octave, got, tc.want)
		}
	}

	if _, err := midi.NoteNumber("H", 4); !errors.Is(err, midi.ErrUnknownSymbol) {
		t.Errorf("NoteNumber(H) error = %v; want ErrUnknownSymbol", err)
	}
	if _, err := midi.NoteNumber("C", -1); !errors.Is(err, midi.ErrBadOctave) {
		t.Errorf("NoteNumber(C, -1) error = %v; want ErrBadOctave", err)
	}
}

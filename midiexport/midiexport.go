// Package midiexport renders a BarBuf into a standard MIDI file, as an
// external collaborator over the core note data: it is not part of the
// synthesis pipeline, just one way to inspect or share what was generated.
package midiexport

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/chriskillpack/thursday"
)

const (
	noteOnVelocity  = 80
	noteOffVelocity = 64
)

// WriteBar renders bar's notes as a single-channel MIDI file at the given
// tempo, writing the result to w. Each EncNote's tone byte becomes the
// MIDI key number directly, and timing deltas are carried over in PPQN
// ticks unchanged.
func WriteBar(w io.Writer, bar *thursday.BarBuf, bpm uint16, channel uint8) error {
	data, err := RenderBar(bar, bpm, channel)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteBarFile is WriteBar, writing to a named file.
func WriteBarFile(filename string, bar *thursday.BarBuf, bpm uint16, channel uint8) error {
	data, err := RenderBar(bar, bpm, channel)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// RenderBar produces the raw bytes of a standard MIDI file for bar.
func RenderBar(bar *thursday.BarBuf, bpm uint16, channel uint8) ([]byte, error) {
	if bpm == 0 {
		return nil, fmt.Errorf("midiexport: bpm must be nonzero")
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(thursday.PPQN)

	var meta smf.Track
	microsecondsPerBeat := uint32(60000000 / uint32(bpm))
	meta.Add(0, smf.Message([]byte{
		0xFF, 0x51, 0x03,
		byte(microsecondsPerBeat >> 16),
		byte(microsecondsPerBeat >> 8),
		byte(microsecondsPerBeat),
	}))
	meta.Add(0, smf.Message([]byte{0xFF, 0x58, 0x04, 0x04, 0x02, 0x18, 0x08}))
	meta.Close(0)
	if err := s.Add(meta); err != nil {
		return nil, fmt.Errorf("midiexport: add meta track: %w", err)
	}

	var notesTrack smf.Track
	notesTrack.Add(0, midi.ControlChange(channel, 0, 121))
	notesTrack.Add(0, midi.ControlChange(channel, 32, 0))
	notesTrack.Add(0, midi.ProgramChange(channel, 0))

	var cursor uint16
	for _, note := range bar.Notes() {
		tone, _ := note.PitchToneOffset()
		start := note.PPQNStart()
		length := note.PPQNLen()

		delta := start - cursor
		notesTrack.Add(uint32(delta), midi.NoteOn(channel, tone, noteOnVelocity))
		notesTrack.Add(uint32(length), midi.NoteOffVelocity(channel, tone, noteOffVelocity))

		cursor = start + length
	}
	notesTrack.Close(0)
	if err := s.Add(notesTrack); err != nil {
		return nil, fmt.Errorf("midiexport: add note track: %w", err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("midiexport: write smf: %w", err)
	}
	return buf.Bytes(), nil
}

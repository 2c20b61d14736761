package thursday

import (
	"testing"

	"pgregory.net/rapid"
)

func TestEncPitchFromPitchOctaveBounds(t *testing.T) {
	cases := []struct {
		pitch, octave uint8
		wantErr       bool
	}{
		{0, 0, false},
		{11, 9, false},
		{7, 10, false},  // G10 is the top of the range
		{8, 10, true},   // past G10
		{0, 11, true},   // octave too high
	}
	for _, c := range cases {
		_, err := EncPitchFromPitchOctave(c.pitch, c.octave)
		if (err != nil) != c.wantErr {
			t.Errorf("EncPitchFromPitchOctave(%d,%d): err=%v, wantErr=%v", c.pitch, c.octave, err, c.wantErr)
		}
	}
}

func TestEncStartBounds(t *testing.T) {
	if _, err := NewEncStart(PPQNMax - 1); err != nil {
		t.Errorf("NewEncStart(PPQNMax-1): %v", err)
	}
	if _, err := NewEncStart(PPQNMax); err != ErrValueOutOfBounds {
		t.Errorf("NewEncStart(PPQNMax): got %v, want ErrValueOutOfBounds", err)
	}
}

func TestEncLengthBounds(t *testing.T) {
	if _, err := NewEncLength(0); err != ErrValueOutOfBounds {
		t.Errorf("NewEncLength(0): got %v, want ErrValueOutOfBounds", err)
	}
	if _, err := NewEncLength(PPQNMax); err != nil {
		t.Errorf("NewEncLength(PPQNMax): %v", err)
	}
	if _, err := NewEncLength(PPQNMax + 1); err != ErrValueOutOfBounds {
		t.Errorf("NewEncLength(PPQNMax+1): got %v, want ErrValueOutOfBounds", err)
	}
}

func TestEncLengthPresetsRoundTrip(t *testing.T) {
	for code, ticks := range lengthShortCodes {
		l, err := NewEncLength(ticks)
		if err != nil {
			t.Fatalf("NewEncLength(%d): %v", ticks, err)
		}
		k := l.toKCInt()
		if k.long || int(k.lower) != code {
			t.Errorf("preset %d (%d ticks): encoded as %+v, want short code %d", code, ticks, k, code)
		}
	}
}

// TestEncPitchRoundTrip is property 4: any (tone, offset) pair NewEncPitch
// accepts survives an encode/decode cycle unchanged, including non-zero
// offsets that EncPitchFromPitchOctave can never produce.
func TestEncPitchRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tone := uint8(rapid.IntRange(0, 0x7F).Draw(t, "tone"))
		offset := uint8(rapid.IntRange(0, 0xFF).Draw(t, "offset"))

		p, err := NewEncPitch(tone, offset)
		if err != nil {
			t.Fatalf("NewEncPitch(%d,%d): %v", tone, offset, err)
		}

		buf := make([]byte, MaxEncodingSize)
		rest, err := p.toKCInt().writeToSlice(buf)
		if err != nil {
			t.Fatalf("writeToSlice: %v", err)
		}
		written := len(buf) - len(rest)

		k, _, err := takeKCIntFromSlice(buf[:written])
		if err != nil {
			t.Fatalf("takeKCIntFromSlice: %v", err)
		}
		got, err := encPitchFromKCInt(k)
		if err != nil {
			t.Fatalf("encPitchFromKCInt: %v", err)
		}
		if got != p {
			t.Fatalf("round trip mismatch: got %+v, want %+v", got, p)
		}
	})
}

// TestEncNoteRoundTrip is the universal property that any EncNote built
// from valid parameters survives an encode/decode cycle unchanged.
func TestEncNoteRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pitchIdx := uint8(rapid.IntRange(0, 11).Draw(t, "pitch"))
		octave := uint8(rapid.IntRange(0, 9).Draw(t, "octave"))
		start := uint16(rapid.IntRange(0, int(PPQNMax)-1).Draw(t, "start"))
		length := uint16(rapid.IntRange(1, int(PPQNMax)).Draw(t, "length"))

		p, err := EncPitchFromPitchOctave(pitchIdx, octave)
		if err != nil {
			t.Fatalf("EncPitchFromPitchOctave: %v", err)
		}
		s, err := NewEncStart(start)
		if err != nil {
			t.Fatalf("NewEncStart: %v", err)
		}
		l, err := NewEncLength(length)
		if err != nil {
			t.Fatalf("NewEncLength: %v", err)
		}
		note := EncNote{Pitch: p, Start: s, Length: l}

		buf := make([]byte, MaxEncodingSize)
		rest, err := note.WriteToSlice(buf)
		if err != nil {
			t.Fatalf("WriteToSlice: %v", err)
		}
		written := len(buf) - len(rest)
		if written < MinEncodingSize || written > MaxEncodingSize {
			t.Fatalf("encoded size %d out of [%d,%d]", written, MinEncodingSize, MaxEncodingSize)
		}

		got, _, err := TakeEncNoteFromSlice(buf[:written])
		if err != nil {
			t.Fatalf("TakeEncNoteFromSlice: %v", err)
		}
		if got != note {
			t.Fatalf("round trip mismatch: got %+v, want %+v", got, note)
		}
	})
}

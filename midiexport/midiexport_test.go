package midiexport

import (
	"bytes"
	"testing"

	"github.com/chriskillpack/thursday"
)

func TestRenderBarProducesValidHeader(t *testing.T) {
	bar := thursday.NewBarBuf()
	if err := bar.PushNoteSimple(thursday.LengthQuarter, 0, 4); err != nil {
		t.Fatalf("PushNoteSimple: %v", err)
	}
	if err := bar.PushRestSimple(thursday.LengthQuarter); err != nil {
		t.Fatalf("PushRestSimple: %v", err)
	}
	if err := bar.PushNoteSimple(thursday.LengthHalf, 4, 4); err != nil {
		t.Fatalf("PushNoteSimple: %v", err)
	}

	data, err := RenderBar(bar, 120, 0)
	if err != nil {
		t.Fatalf("RenderBar: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("MThd")) {
		t.Fatalf("output does not start with MThd header: %v", data[:min(len(data), 8)])
	}
	if len(data) == 0 {
		t.Fatal("RenderBar produced no bytes")
	}
}

func TestRenderBarRejectsZeroBpm(t *testing.T) {
	bar := thursday.NewBarBuf()
	if _, err := RenderBar(bar, 0, 0); err == nil {
		t.Fatal("expected an error for bpm=0")
	}
}

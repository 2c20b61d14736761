package thursday

import "testing"

// TestTrackOrdering is S3: add_note(n1, 0, 1000) then add_note(n2, 500,
// 1500) rejects the second call as out-of-order. Swapping the second
// call's span to 1000..2000 succeeds.
func TestTrackOrdering(t *testing.T) {
	track := NewTrack(4, 44100)
	if err := track.AddNoteFreq(440, ToneSine, 0, 1000); err != nil {
		t.Fatalf("first AddNoteFreq: %v", err)
	}
	if err := track.AddNoteFreq(440, ToneSine, 500, 1500); err != ErrNoteOutOfOrder {
		t.Errorf("overlapping AddNoteFreq: got %v, want ErrNoteOutOfOrder", err)
	}
	if err := track.AddNoteFreq(440, ToneSine, 1000, 2000); err != nil {
		t.Errorf("non-overlapping AddNoteFreq: %v", err)
	}
}

func TestTrackRejectsDegenerateSpan(t *testing.T) {
	track := NewTrack(4, 44100)
	if err := track.AddNoteFreq(440, ToneSine, 1000, 1000); err != ErrInvalidNoteSpan {
		t.Errorf("equal start/end: got %v, want ErrInvalidNoteSpan", err)
	}
	if err := track.AddNoteFreq(440, ToneSine, 1000, 500); err != ErrInvalidNoteSpan {
		t.Errorf("end before start: got %v, want ErrInvalidNoteSpan", err)
	}
}

func TestTrackRejectsQueueFull(t *testing.T) {
	track := NewTrack(2, 44100)
	if err := track.AddNoteFreq(440, ToneSine, 0, 10); err != nil {
		t.Fatalf("note 1: %v", err)
	}
	if err := track.AddNoteFreq(440, ToneSine, 10, 20); err != nil {
		t.Fatalf("note 2: %v", err)
	}
	if err := track.AddNoteFreq(440, ToneSine, 20, 30); err != ErrTrackQueueFull {
		t.Errorf("note 3: got %v, want ErrTrackQueueFull", err)
	}
}

func TestTrackSimpleStateMachineSilenceUntilStart(t *testing.T) {
	track := NewTrack(2, 44100)
	if err := track.AddNoteFreq(440, ToneSine, 100, 200); err != nil {
		t.Fatalf("AddNoteFreq: %v", err)
	}

	samples := make([]StereoSample, 100)
	track.FillStereoSamples(samples, MixDiv1)
	for i, s := range samples {
		if s != (StereoSample{}) {
			t.Fatalf("sample %d before note start is not silent: %+v", i, s)
		}
	}
}

func TestTrackIsDone(t *testing.T) {
	track := NewTrack(1, 44100)
	if !track.IsDone() {
		t.Fatal("new track should be done")
	}
	if err := track.AddNoteFreq(440, ToneSine, 0, 64); err != nil {
		t.Fatalf("AddNoteFreq: %v", err)
	}
	if track.IsDone() {
		t.Fatal("track with a queued note should not be done")
	}
}

package thursday

import "errors"

// ErrTrackQueueFull is returned by Track.AddNoteFreq when the note queue
// has reached its fixed depth.
var ErrTrackQueueFull = errors.New("thursday: track note queue is full")

// ErrNoteOutOfOrder is returned by Track.AddNoteFreq when a note would
// start before the end of the most recently queued note.
var ErrNoteOutOfOrder = errors.New("thursday: note starts before the end of the previous note")

// ErrInvalidNoteSpan is returned by Track.AddNoteFreq when end does not
// strictly follow start.
var ErrInvalidNoteSpan = errors.New("thursday: note end must be after its start")

// trackNote pairs an oscillator with the sample range over which it sounds.
type trackNote struct {
	wave      Tone
	sampStart uint32
	sampEnd   uint32
}

// Track is a single-voice sample-accurate mixer: a currently-sounding note
// plus a bounded FIFO of notes queued to play next. It advances in fixed
// chunks via FillStereoSamples.
//
// Two state machines are available. The default is the simple one: a note
// that's about to end gets a fade-out fill and is dropped, with no
// replacement attempted until the following call. Setting Crossfade mixes
// in the next note's fade-in within the same call whenever there's at
// least 64 samples of room to do it cleanly.
type Track struct {
	depth      int
	noteQ      []trackNote
	current    *trackNote
	curSamp    uint32
	sampleRate uint32

	Crossfade bool
}

// NewTrack returns a Track with a note queue of the given depth, rendering
// at sampleRate samples per second.
func NewTrack(depth int, sampleRate uint32) *Track {
	return &Track{
		depth:      depth,
		noteQ:      make([]trackNote, 0, depth),
		sampleRate: sampleRate,
	}
}

// Reset clears all queued and current notes and rewinds the sample clock.
func (t *Track) Reset() {
	t.noteQ = t.noteQ[:0]
	t.current = nil
	t.curSamp = 0
}

// IsDone reports whether the track has no current note and nothing queued.
func (t *Track) IsDone() bool {
	return t.current == nil && len(t.noteQ) == 0
}

// AddNoteFreq enqueues a tone of kind at freq Hz, sounding over the sample
// range [start, end). Notes must be enqueued in non-overlapping,
// non-decreasing order.
func (t *Track) AddNoteFreq(freq float32, kind ToneKind, start, end uint32) error {
	if end <= start {
		return ErrInvalidNoteSpan
	}
	if len(t.noteQ) >= t.depth {
		return ErrTrackQueueFull
	}
	if n := len(t.noteQ); n > 0 && start < t.noteQ[n-1].sampEnd {
		return ErrNoteOutOfOrder
	}

	var tone Tone
	switch kind {
	case ToneSine:
		tone = NewSineTone(freq, t.sampleRate)
	case ToneSquare:
		tone = NewSquareTone(freq, t.sampleRate)
	case ToneSaw:
		tone = NewSawTone(freq, t.sampleRate)
	}

	t.noteQ = append(t.noteQ, trackNote{wave: tone, sampStart: start, sampEnd: end})
	return nil
}

// FillStereoSamples mixes the next len(samples) samples of this track's
// audio into samples, advancing the track's internal sample clock by the
// same amount.
func (t *Track) FillStereoSamples(samples []StereoSample, mix Mix) {
	if t.Crossfade {
		t.fillStereoSamplesCrossfade(samples, mix)
		return
	}

	sampLen := uint32(len(samples))
	filled := false

	if t.current != nil {
		cur := t.current
		switch {
		case cur.sampEnd < t.curSamp:
			t.current = nil
			t.tryAttachNext(samples, mix)
			filled = true
		case t.curSamp+sampLen > cur.sampEnd:
			cur.wave.FillLastStereoSamples(samples, mix)
			t.current = nil
			filled = true
		default:
			cur.wave.FillStereoSamples(samples, mix)
			filled = true
		}
	}

	if !filled {
		t.tryAttachNext(samples, mix)
	}

	t.curSamp += sampLen
}

// tryAttachNext looks at the front of the queue; if it's already due
// (samp_start < cur_samp) it's popped, fade-in filled for this whole span,
// and installed as current. Otherwise it's left in the queue and samples
// is left untouched (silent).
func (t *Track) tryAttachNext(samples []StereoSample, mix Mix) {
	if len(t.noteQ) == 0 {
		return
	}
	next := t.noteQ[0]
	if next.sampStart < t.curSamp {
		t.noteQ = t.noteQ[1:]
		next.wave.FillFirstStereoSamples(samples, mix)
		t.current = &next
	}
}

// fillStereoSamplesCrossfade is the richer state machine: it looks ahead
// within the same call for a queued note's attack whenever a fade-out
// leaves at least 64 samples of room.
func (t *Track) fillStereoSamplesCrossfade(samples []StereoSample, mix Mix) {
	sampLen := uint32(len(samples))
	var needsNewAfter *uint32

	if t.current != nil {
		note := *t.current
		t.current = nil

		if t.curSamp+sampLen >= note.sampEnd {
			outro := note.sampEnd - t.curSamp
			if outro < 64 {
				outro = 64
			}
			note.wave.FillLastStereoSamples(samples, mix)
			needsNewAfter = &outro
		} else {
			note.wave.FillStereoSamples(samples, mix)
			t.current = &note
		}
	} else {
		zero := uint32(0)
		needsNewAfter = &zero
	}

	if needsNewAfter != nil {
		after := *needsNewAfter
		if len(t.noteQ) > 0 {
			next := t.noteQ[0]

			start := t.curSamp + after
			if next.sampStart > start {
				start = next.sampStart
			}

			if sampLen >= 64 && start < t.curSamp+sampLen-64 {
				t.noteQ = t.noteQ[1:]

				offset := 0
				if next.sampStart > t.curSamp {
					offset = int(next.sampStart - t.curSamp)
				}

				next.wave.FillFirstStereoSamples(samples[offset:], mix)
				t.current = &next
			}
		}
	}

	t.curSamp += sampLen
}

package perform

import (
	"testing"

	"github.com/chriskillpack/thursday"
	"github.com/chriskillpack/thursday/phrase"
	"github.com/chriskillpack/thursday/rng"
)

func TestBuildProducesPlayableTracks(t *testing.T) {
	ph := phrase.NewPhrase()
	ph.Fill(rng.NewDefault(7), phrase.DefaultParameters())

	voices, total := Build(ph, 44100)
	if len(voices) == 0 {
		t.Fatal("Build produced no voices")
	}
	if total == 0 {
		t.Fatal("Build reported zero total samples")
	}

	// A Track only picks up a queued note once its clock has moved past the
	// note's start, so render in successive chunks as the cmd tools do.
	samples := make([]thursday.StereoSample, total)
	const chunk = 2048
	for lo := 0; lo < len(samples); lo += chunk {
		FillStereoSamples(voices, samples[lo:min(lo+chunk, len(samples))])
	}

	nonZero := false
	for _, s := range samples {
		if s.Left != 0 || s.Right != 0 {
			nonZero = true
			break
		}
	}
	if !nonZero {
		t.Error("rendered samples are entirely silent")
	}
}

func TestBuildSkipsVoicesWithNoRhythm(t *testing.T) {
	ph := phrase.NewPhrase()
	params := phrase.DefaultParameters()
	params.Voices.LeadMin, params.Voices.LeadMax = 0, 1
	params.Voices.ChorusMin, params.Voices.ChorusMax = 0, 1
	ph.Fill(rng.NewDefault(1), params)

	voices, _ := Build(ph, 44100)
	for _, v := range voices {
		if v.Track.IsDone() {
			t.Error("built a voice with an already-empty track")
		}
	}
}

// Package perform turns a generated phrase into a set of Tracks ready to
// render. It is glue between the phrase builder and the mixer, not part
// of either: the phrase builder only promises a per-voice rhythm of
// (start, length) ticks, and it's this package's job to pick an actual
// pitch for each hit and schedule it onto a Track.
package perform

import (
	"fmt"
	"math"

	"github.com/chriskillpack/thursday"
	"github.com/chriskillpack/thursday/phrase"
	"github.com/chriskillpack/thursday/scale"
)

// Voice is one rendered voice: the Track driving its audio, the mix
// divisor it should be summed with, and a human label for a UI to show.
// Muted is read by FillStereoSamples; it does not affect Track's own
// internal clock, which always advances whether or not the voice is
// currently audible.
type Voice struct {
	Track *thursday.Track
	Mix   thursday.Mix
	Label string
	Muted bool
}

// Build schedules every lead and chorus voice of ph onto its own Track,
// rendering at sampleRate. It returns the voices and the sample index at
// which the last note ends, so a caller knows how long to keep rendering.
func Build(ph *phrase.Phrase, sampleRate uint32) (voices []Voice, totalSamples uint32) {
	samplesPerTick := float64(sampleRate) * 60.0 / (float64(ph.Bpm) * float64(thursday.PPQN))

	octave := uint8(4)
	build := func(vd []phraseVoiceLike, mix thursday.Mix, class string) {
		for i, v := range vd {
			rhythm := v.rhythm()
			if len(rhythm) == 0 {
				continue
			}
			track := thursday.NewTrack(len(rhythm)+1, sampleRate)
			intervals := ph.Scale.Intervals
			for j, hit := range rhythm {
				degree := intervals[j%len(intervals)]
				pitch := ph.Key.Add(degree)
				note := scale.Note{Pitch: pitch, Octave: octave}

				start := uint32(math.Round(float64(hit.Start) * samplesPerTick))
				end := uint32(math.Round(float64(hit.Start+hit.Length) * samplesPerTick))
				if end <= start {
					continue
				}
				if err := track.AddNoteFreq(note.Freq(), v.tone(), start, end); err != nil {
					continue
				}
				if end > totalSamples {
					totalSamples = end
				}
			}
			label := fmt.Sprintf("%s%d %s", class, i+1, v.tone())
			voices = append(voices, Voice{Track: track, Mix: mix, Label: label})
		}
	}

	build(wrapVoices(ph.LeadVoices), thursday.MixDiv4, "lead")
	build(wrapVoices(ph.ChorusVoices), thursday.MixDiv8, "chorus")

	return voices, totalSamples
}

// phraseVoiceLike abstracts over phrase.VoiceData without exporting its
// internals; it exists only so perform can iterate a []phrase.VoiceData by
// value without importing unexported fields.
type phraseVoiceLike struct {
	r []phrase.EncRhythm
	t thursday.ToneKind
}

func (v phraseVoiceLike) rhythm() []phrase.EncRhythm { return v.r }
func (v phraseVoiceLike) tone() thursday.ToneKind    { return v.t }

func wrapVoices(vs []phrase.VoiceData) []phraseVoiceLike {
	out := make([]phraseVoiceLike, len(vs))
	for i, v := range vs {
		out[i] = phraseVoiceLike{r: v.Rhythm, t: v.Voice}
	}
	return out
}

// FillStereoSamples mixes every unmuted voice's next len(samples) samples
// into samples. A muted voice still advances its Track's internal clock
// (rendered into a scratch buffer and discarded) so unmuting it mid-phrase
// doesn't desync its timeline against the others.
func FillStereoSamples(voices []Voice, samples []thursday.StereoSample) {
	var scratch []thursday.StereoSample
	for _, v := range voices {
		if !v.Muted {
			v.Track.FillStereoSamples(samples, v.Mix)
			continue
		}
		if cap(scratch) < len(samples) {
			scratch = make([]thursday.StereoSample, len(samples))
		}
		scratch = scratch[:len(samples)]
		for i := range scratch {
			scratch[i] = thursday.StereoSample{}
		}
		v.Track.FillStereoSamples(scratch, v.Mix)
	}
}

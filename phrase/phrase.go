package phrase

import (
	"github.com/chriskillpack/thursday"
	"github.com/chriskillpack/thursday/rng"
	"github.com/chriskillpack/thursday/scale"
)

// Phrase is a header (tempo, key, time signature, chord progression) plus
// an ordered set of lead and chorus voices. A zero-value Phrase has
// nothing generated yet; the first Fill call generates every field
// unconditionally, and every subsequent call mutates in place.
type Phrase struct {
	hasBpm bool
	Bpm    uint16

	hasKeyKind bool
	KeyKind    KeyKind

	hasTimeSignature bool
	TimeSignature    TimeSignature

	hasScale bool
	Scale    scale.Scale

	hasNumMeasures bool
	NumMeasures    uint8

	hasChordProgression bool
	ChordProgression    ChordProgression

	hasKey bool
	Key    scale.Pitch

	hasVoicesCt  bool
	LeadVoices   []VoiceData
	ChorusVoices []VoiceData

	// Shuffle controls what happens when the voice count shrinks: false
	// (the default) truncates the highest-indexed voices, keeping the
	// rest sticky across fills; true drops a random subset instead.
	Shuffle bool
}

// NewPhrase returns an empty Phrase ready for its first Fill.
func NewPhrase() *Phrase {
	return &Phrase{}
}

// Fill generates any never-set field unconditionally, and mutates every
// already-set field according to params, in the dependency order bpm ->
// key_kind -> time_signature -> scale -> num_measures -> chord_progression
// -> key -> voice counts -> per-voice pattern.
func (ph *Phrase) Fill(r rng.Source, params Parameters) {
	if ph.hasBpm {
		ph.Bpm = params.Bpm.step(r, ph.Bpm)
	} else {
		ph.Bpm = params.Bpm.generate(r)
		ph.hasBpm = true
	}

	var keyKind KeyKind
	if ph.hasKeyKind {
		keyKind = params.KeyKind.step(r, ph.KeyKind)
	} else {
		keyKind = params.KeyKind.generate(r)
	}
	ph.KeyKind = keyKind
	ph.hasKeyKind = true

	var timeSig TimeSignature
	if ph.hasTimeSignature {
		timeSig = params.TimeSignature.step(r, ph.TimeSignature)
	} else {
		timeSig = params.TimeSignature.generate(r)
	}
	ph.TimeSignature = timeSig
	ph.hasTimeSignature = true

	if ph.hasScale {
		ph.Scale = params.Scale.step(r, ph.Scale, keyKind)
	} else {
		ph.Scale = params.Scale.generate(r, keyKind)
		ph.hasScale = true
	}

	var numMeasures uint8
	if ph.hasNumMeasures {
		numMeasures = params.NumMeasures.step(r, ph.NumMeasures, timeSig)
	} else {
		numMeasures = params.NumMeasures.generate(r, timeSig)
	}
	ph.NumMeasures = numMeasures
	ph.hasNumMeasures = true

	if ph.hasChordProgression {
		ph.ChordProgression = params.ChordProgression.step(r, ph.ChordProgression, numMeasures)
	} else {
		ph.ChordProgression = params.ChordProgression.generate(r, numMeasures)
		ph.hasChordProgression = true
	}

	if ph.hasKey {
		ph.Key = params.Key.step(r, ph.Key)
	} else {
		ph.Key = params.Key.generate(r)
		ph.hasKey = true
	}

	curChorus := len(ph.ChorusVoices)
	curLead := len(ph.LeadVoices)
	var chorus, lead int
	if ph.hasVoicesCt {
		chorus, lead = params.Voices.step(r, curChorus, curLead)
	} else {
		chorus, lead = params.Voices.generate(r)
	}
	ph.hasVoicesCt = true

	ph.LeadVoices = resizeVoices(ph.LeadVoices, lead, Lead, ph.Shuffle, r)
	ph.ChorusVoices = resizeVoices(ph.ChorusVoices, chorus, Chorus, ph.Shuffle, r)

	totalPhraseTicks := uint32(numMeasures) * uint32(timeSig.Numerator) * uint32(thursday.PPQNQuarter)

	for i := range ph.LeadVoices {
		fillVoice(r, &ph.LeadVoices[i], params.LeadResolution, params.LeadEuclidean, totalPhraseTicks, numMeasures)
	}
	for i := range ph.ChorusVoices {
		fillVoice(r, &ph.ChorusVoices[i], params.ChorusResolution, params.ChorusEuclidean, totalPhraseTicks, numMeasures)
	}
}

func resizeVoices(voices []VoiceData, n int, class VoiceClass, shuffle bool, r rng.Source) []VoiceData {
	switch {
	case len(voices) < n:
		for len(voices) < n {
			voices = append(voices, VoiceData{class: class})
		}
	case len(voices) > n:
		if shuffle {
			for i := len(voices) - 1; i > 0; i-- {
				j := r.IntRangeInclusive(0, i)
				voices[i], voices[j] = voices[j], voices[i]
			}
		}
		voices = voices[:n]
	}
	return voices
}

func fillVoice(r rng.Source, v *VoiceData, resParams ResolutionParameters, eucParams EuclideanParameters, totalPhraseTicks uint32, numMeasures uint8) {
	resizeRefrainMeasures(v, int(numMeasures), r)

	if v.hasResolution {
		next, changed := resParams.step(r, v.Resolution)
		v.Resolution = next
		if changed {
			v.dirty = true
		}
	} else {
		v.Resolution = resParams.generate(r)
		v.hasResolution = true
		v.dirty = true
	}

	resolutionTicks := uint32(v.Resolution.ToPPQN())
	maxNotesInPhrase := 0
	if resolutionTicks > 0 {
		maxNotesInPhrase = int(totalPhraseTicks / resolutionTicks)
	}

	if v.hasEuclid {
		hits, length, dirty := eucParams.step(r, v.Hits, v.Length, maxNotesInPhrase)
		v.Hits, v.Length = hits, length
		if dirty {
			v.dirty = true
		}
	} else {
		hits, length := eucParams.generate(r, maxNotesInPhrase)
		v.Hits, v.Length = hits, length
		v.hasEuclid = true
		v.dirty = true
	}

	if !v.hasVoice {
		kinds := [...]thursday.ToneKind{thursday.ToneSine, thursday.ToneSquare, thursday.ToneSaw}
		v.Voice = kinds[r.IntRange(0, len(kinds))]
		v.hasVoice = true
	}

	if v.dirty {
		rebuildRhythm(v, resolutionTicks, maxNotesInPhrase)
		v.dirty = false
	}
}

// resizeRefrainMeasures grows or truncates a voice's refrain flag to match
// the phrase's measure count, one bool per measure marking whether that
// measure replays the voice's refrain pattern rather than fresh material.
// New measures draw a fair coin; existing ones are left as they were, the
// same sticky-on-fill behavior as everything else in a VoiceData.
func resizeRefrainMeasures(v *VoiceData, numMeasures int, r rng.Source) {
	switch {
	case len(v.RefrainMeasures) < numMeasures:
		for len(v.RefrainMeasures) < numMeasures {
			v.RefrainMeasures = append(v.RefrainMeasures, r.Bool())
		}
	case len(v.RefrainMeasures) > numMeasures:
		v.RefrainMeasures = v.RefrainMeasures[:numMeasures]
	}
}

func rebuildRhythm(v *VoiceData, resolutionTicks uint32, maxNotesInPhrase int) {
	v.Rhythm = v.Rhythm[:0]
	if v.Length <= 0 || v.Hits <= 0 {
		return
	}

	pattern, err := thursday.NewEuc32(uint32(v.Hits), uint32(v.Length))
	if err != nil {
		return
	}
	cyc := thursday.NewCycler(pattern)

	for i := 0; i < maxNotesInPhrase; i++ {
		if cyc.Next() {
			v.Rhythm = append(v.Rhythm, EncRhythm{
				Start:  uint32(i) * resolutionTicks,
				Length: resolutionTicks,
			})
		}
	}
}

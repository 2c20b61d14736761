// Package scale provides twelve-tone pitch arithmetic and the static
// interval tables (modal scales, triads, tetrads, pentatonics) that the
// phrase builder draws from.
package scale

import "math"

// Semitones is a signed interval, measured in half-steps.
type Semitones int8

// Pitch is one of the twelve chromatic pitch classes.
type Pitch uint8

const (
	C Pitch = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// Index returns the pitch's position within an octave, 0..=11.
func (p Pitch) Index() uint8 { return uint8(p) }

var pitchNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func (p Pitch) String() string {
	if int(p) >= len(pitchNames) {
		return "?"
	}
	return pitchNames[p]
}

// PitchFromIndex wraps an arbitrary semitone count back into a pitch class.
func PitchFromIndex(i int) Pitch {
	m := i % 12
	if m < 0 {
		m += 12
	}
	return Pitch(m)
}

// Add returns the pitch reached by moving n semitones from p, ignoring
// octave.
func (p Pitch) Add(n Semitones) Pitch {
	return PitchFromIndex(int(p) + int(n))
}

// refFreq/refTone anchor the frequency table: tone refTone (octave 4,
// pitch A) sounds at refFreq Hz.
const (
	refFreq       = 440.0
	refTone uint8 = 4*12 + 9
)

// FreqForTone returns the frequency, in Hz, of the given absolute semitone
// ("tone" in the encoded-note sense: octave*12 + pitch index).
func FreqForTone(tone uint8) float32 {
	delta := float64(tone) - float64(refTone)
	return float32(refFreq * math.Pow(2, delta/12))
}

// Note is a pitch at a specific octave.
type Note struct {
	Pitch  Pitch
	Octave uint8
}

// Tone returns the note's absolute semitone index, as stored in an
// EncPitch.
func (n Note) Tone() uint8 {
	return n.Octave*12 + n.Pitch.Index()
}

// Freq returns the note's frequency in Hz.
func (n Note) Freq() float32 {
	return FreqForTone(n.Tone())
}

// Scale is a named set of intervals above a tonic, used to build a key's
// available pitch set.
type Scale struct {
	Name      string
	Intervals []Semitones
}

// Chord is a named set of intervals above a chosen root, stacked to form a
// triad or tetrad.
type Chord struct {
	Name      string
	Intervals []Semitones
}

// Diatonic modal scales (seven-note), relative to their tonic.
var (
	Ionian     = Scale{"Ionian", []Semitones{0, 2, 4, 5, 7, 9, 11}}
	Dorian     = Scale{"Dorian", []Semitones{0, 2, 3, 5, 7, 9, 10}}
	Phrygian   = Scale{"Phrygian", []Semitones{0, 1, 3, 5, 7, 8, 10}}
	Lydian     = Scale{"Lydian", []Semitones{0, 2, 4, 6, 7, 9, 11}}
	Mixolydian = Scale{"Mixolydian", []Semitones{0, 2, 4, 5, 7, 9, 10}}
	Aeolian    = Scale{"Aeolian", []Semitones{0, 2, 3, 5, 7, 8, 10}}
	Locrian    = Scale{"Locrian", []Semitones{0, 1, 3, 5, 6, 8, 10}}

	HarmonicMinor           = Scale{"Harmonic Minor", []Semitones{0, 2, 3, 5, 7, 8, 11}}
	MelodicMinorAscending   = Scale{"Melodic Minor (Ascending)", []Semitones{0, 2, 3, 5, 7, 9, 11}}
	MelodicMinorDescending  = Scale{"Melodic Minor (Descending)", []Semitones{0, 2, 3, 5, 7, 8, 10}}
)

// NaturalMajorIntervals gives the semitone offset of each diatonic scale
// degree (I..=VII) above the tonic, for building triads/tetrads on each
// degree of a major key.
var NaturalMajorIntervals = [7]Semitones{0, 2, 4, 5, 7, 9, 11}

// NaturalMinorIntervals is the Aeolian equivalent of NaturalMajorIntervals.
var NaturalMinorIntervals = [7]Semitones{0, 2, 3, 5, 7, 8, 10}

// Triads.
var (
	MajorTriad      = Chord{"Major", []Semitones{0, 4, 7}}
	MinorTriad      = Chord{"Minor", []Semitones{0, 3, 7}}
	DiminishedTriad = Chord{"Diminished", []Semitones{0, 3, 6}}
	AugmentedTriad  = Chord{"Augmented", []Semitones{0, 4, 8}}
)

// Tetrads.
var (
	Dominant7th        = Chord{"Dominant 7th", []Semitones{0, 4, 7, 10}}
	Minor7th           = Chord{"Minor 7th", []Semitones{0, 3, 7, 10}}
	Major7th           = Chord{"Major 7th", []Semitones{0, 4, 7, 11}}
	MinorMajor7th      = Chord{"Minor-Major 7th", []Semitones{0, 3, 7, 11}}
	Augmented7th       = Chord{"Augmented 7th", []Semitones{0, 4, 8, 10}}
	AugmentedMajor7th  = Chord{"Augmented-Major 7th", []Semitones{0, 4, 8, 11}}
	Diminished7th      = Chord{"Diminished 7th", []Semitones{0, 3, 6, 9}}
	DiminishedHalf7th  = Chord{"Half-Diminished 7th", []Semitones{0, 3, 6, 10}}
)

// Pentatonics.
var (
	MajorPentatonic      = Scale{"Major Pentatonic", []Semitones{0, 2, 4, 7, 9}}
	EgyptianPentatonic   = Scale{"Egyptian Pentatonic", []Semitones{0, 2, 5, 7, 10}}
	BluesMinorPentatonic = Scale{"Blues Minor Pentatonic", []Semitones{0, 3, 5, 6, 7, 10}}
	BluesMajorPentatonic = Scale{"Blues Major Pentatonic", []Semitones{0, 2, 3, 4, 7, 9}}
	MinorPentatonic      = Scale{"Minor Pentatonic", []Semitones{0, 3, 5, 7, 10}}
)

// MajorScales are the scale choices valid for a major-key phrase.
var MajorScales = []Scale{
	Ionian, Dorian, Mixolydian, Lydian,
	MajorPentatonic, EgyptianPentatonic, BluesMajorPentatonic,
}

// MinorScales are the scale choices valid for a minor-key phrase.
var MinorScales = []Scale{
	Aeolian, Phrygian, Locrian, HarmonicMinor,
	MinorPentatonic, BluesMinorPentatonic,
}

// MajorDiatonicChords gives the (root-offset, chord-quality) pair for each
// scale degree (I..=VI) of a major key, skipping the unstable VII.
var MajorDiatonicChords = [6]struct {
	RootOffset Semitones
	Quality    Chord
}{
	{NaturalMajorIntervals[0], MajorTriad},
	{NaturalMajorIntervals[1], MinorTriad},
	{NaturalMajorIntervals[2], MinorTriad},
	{NaturalMajorIntervals[3], MajorTriad},
	{NaturalMajorIntervals[4], MajorTriad},
	{NaturalMajorIntervals[5], MinorTriad},
}

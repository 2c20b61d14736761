package phrase

import (
	"github.com/chriskillpack/thursday"
	"github.com/chriskillpack/thursday/rng"
	"github.com/chriskillpack/thursday/scale"
)

// Parameters bundles every per-field parameter set Fill consumes.
type Parameters struct {
	Bpm               BpmParameters
	KeyKind           KeyKindParameters
	TimeSignature     TimeSignatureParameters
	Scale             ScaleParameters
	NumMeasures       NumMeasuresParameters
	ChordProgression  ChordProgressionParameters
	Key               KeyParameters
	Voices            VoicesParameters
	LeadResolution    ResolutionParameters
	ChorusResolution  ResolutionParameters
	LeadEuclidean     EuclideanParameters
	ChorusEuclidean   EuclideanParameters
}

// DefaultParameters returns the parameter set the reference builder ships
// with.
func DefaultParameters() Parameters {
	return Parameters{
		Bpm:              DefaultBpmParameters(),
		KeyKind:          DefaultKeyKindParameters(),
		TimeSignature:    DefaultTimeSignatureParameters(),
		Scale:            DefaultScaleParameters(),
		NumMeasures:      DefaultNumMeasuresParameters(),
		ChordProgression: DefaultChordProgressionParameters(),
		Key:              DefaultKeyParameters(),
		Voices:           DefaultVoicesParameters(),
		LeadResolution:   DefaultLeadResolutionParameters(),
		ChorusResolution: DefaultChorusResolutionParameters(),
		LeadEuclidean:    DefaultLeadEuclideanParameters(),
		ChorusEuclidean:  DefaultChorusEuclideanParameters(),
	}
}

// BpmParameters controls tempo generation and drift.
type BpmParameters struct {
	Min                uint16
	Max                uint16
	MaxDeltaPerPhrase  uint16
	MutationProbability float64
}

func DefaultBpmParameters() BpmParameters {
	return BpmParameters{Min: 50, Max: 150, MaxDeltaPerPhrase: 10, MutationProbability: 0.1}
}

// generate draws uniformly from [min, max]. The reference implementation
// samples min..=max+1, letting one value above max slip through; this
// treats max as inclusive instead.
func (p BpmParameters) generate(r rng.Source) uint16 {
	return uint16(r.IntRangeInclusive(int(p.Min), int(p.Max)))
}

func (p BpmParameters) step(r rng.Source, old uint16) uint16 {
	if !r.BoolP(p.MutationProbability) {
		return old
	}
	delta := r.IntRangeInclusive(0, int(p.MaxDeltaPerPhrase))
	if r.Bool() {
		v := int(old) + delta
		if v > int(p.Max) {
			v = int(p.Max)
		}
		return uint16(v)
	}
	v := int(old) - delta
	if v < int(p.Min) {
		v = int(p.Min)
	}
	return uint16(v)
}

// KeyKindParameters controls major/minor selection.
type KeyKindParameters struct {
	MutationProbability float64
}

func DefaultKeyKindParameters() KeyKindParameters {
	return KeyKindParameters{MutationProbability: 0.05}
}

func (p KeyKindParameters) generate(r rng.Source) KeyKind {
	if r.Bool() {
		return Major
	}
	return Minor
}

func (p KeyKindParameters) step(r rng.Source, old KeyKind) KeyKind {
	if r.BoolP(p.MutationProbability) {
		return p.generate(r)
	}
	return old
}

// TimeSignatureParameters controls the numerator draw; the denominator is
// always Quarter.
type TimeSignatureParameters struct {
	NumMin                   uint8
	NumMax                   uint8
	NumMutationProbability   float64
}

func DefaultTimeSignatureParameters() TimeSignatureParameters {
	return TimeSignatureParameters{NumMin: 3, NumMax: 6, NumMutationProbability: 0.1}
}

func (p TimeSignatureParameters) generate(r rng.Source) TimeSignature {
	return TimeSignature{
		Numerator:   uint8(r.IntRangeInclusive(int(p.NumMin), int(p.NumMax))),
		Denominator: Quarter,
	}
}

func (p TimeSignatureParameters) step(r rng.Source, old TimeSignature) TimeSignature {
	if r.BoolP(p.NumMutationProbability) {
		return p.generate(r)
	}
	return old
}

// ScaleParameters controls scale selection within the current key kind.
type ScaleParameters struct {
	MutationProbability float64
}

func DefaultScaleParameters() ScaleParameters {
	return ScaleParameters{MutationProbability: 0.10}
}

func (p ScaleParameters) generate(r rng.Source, kind KeyKind) scale.Scale {
	table := scale.MajorScales
	if kind == Minor {
		table = scale.MinorScales
	}
	return table[r.IntRange(0, len(table))]
}

func (p ScaleParameters) step(r rng.Source, old scale.Scale, kind KeyKind) scale.Scale {
	if !scaleValidFor(old, kind) || r.BoolP(p.MutationProbability) {
		return p.generate(r, kind)
	}
	return old
}

// NumMeasuresParameters controls how many measures the phrase spans.
type NumMeasuresParameters struct {
	MinMeasures          uint8
	MaxMeasures          uint8
	MutationProbability  float64
}

func DefaultNumMeasuresParameters() NumMeasuresParameters {
	return NumMeasuresParameters{MinMeasures: 3, MaxMeasures: 16, MutationProbability: 0.1}
}

func (p NumMeasuresParameters) maxMeas(sig TimeSignature) uint8 {
	var lim uint16
	switch sig.Denominator {
	case Quarter:
		lim = 16 * 4
	case Eighth:
		lim = 16 * 8
	case Sixteenth:
		lim = 16 * 16
	}
	max := lim / uint16(sig.Numerator)
	if max > uint16(p.MaxMeasures) {
		max = uint16(p.MaxMeasures)
	}
	return uint8(max)
}

func (p NumMeasuresParameters) generate(r rng.Source, sig TimeSignature) uint8 {
	max := p.maxMeas(sig)
	return uint8(r.IntRangeInclusive(int(p.MinMeasures), int(max)))
}

func (p NumMeasuresParameters) step(r rng.Source, old uint8, sig TimeSignature) uint8 {
	max := p.maxMeas(sig)
	if r.BoolP(p.MutationProbability) {
		return uint8(r.IntRangeInclusive(int(p.MinMeasures), int(max)))
	}
	if old > max {
		return max
	}
	return old
}

// ChordProgressionParameters controls chord-progression generation and
// per-measure mutation.
type ChordProgressionParameters struct {
	MutationProbability float64
}

func DefaultChordProgressionParameters() ChordProgressionParameters {
	return ChordProgressionParameters{MutationProbability: 0.1}
}

func (p ChordProgressionParameters) generate(r rng.Source, numMeas uint8) ChordProgression {
	chords := make([]Chord, 0, numMeas)
	chords = append(chords, ChordI)
	for i := 0; i < int(numMeas)-3; i++ {
		chords = append(chords, ChordFromUint8(uint8(r.IntRangeInclusive(0, int(ChordVI)))))
	}
	if r.Bool() {
		chords = append(chords, ChordIV)
	} else {
		chords = append(chords, ChordV)
	}
	chords = append(chords, ChordI)
	return ChordProgression{Chords: chords}
}

func (p ChordProgressionParameters) step(r rng.Source, old ChordProgression, numMeas uint8) ChordProgression {
	n := int(numMeas)
	chords := old.Chords
	for len(chords) < n {
		chords = append(chords, ChordI)
	}
	chords = chords[:n]

	for i := 1; i < n-2; i++ {
		if r.BoolP(p.MutationProbability) {
			chords[i] = ChordFromUint8(uint8(r.IntRangeInclusive(0, int(ChordVI))))
		}
	}

	sec := chords[n-2]
	good := sec == ChordIV || sec == ChordV
	if !good || r.BoolP(p.MutationProbability) {
		if r.Bool() {
			chords[n-2] = ChordIV
		} else {
			chords[n-2] = ChordV
		}
	}
	chords[n-1] = ChordI

	return ChordProgression{Chords: chords}
}

// KeyParameters controls the phrase's tonic pitch. The reference source
// declares a key field on its builder but its fill routine (as retrieved)
// never steps it; this mutation policy is supplied to match the documented
// generation order.
type KeyParameters struct {
	MutationProbability float64
}

func DefaultKeyParameters() KeyParameters {
	return KeyParameters{MutationProbability: 0.1}
}

func (p KeyParameters) generate(r rng.Source) scale.Pitch {
	return scale.PitchFromIndex(r.IntRange(0, 12))
}

func (p KeyParameters) step(r rng.Source, old scale.Pitch) scale.Pitch {
	if r.BoolP(p.MutationProbability) {
		return p.generate(r)
	}
	return old
}

// VoicesParameters controls how many lead and chorus voices a phrase
// carries.
type VoicesParameters struct {
	ChorusMin int
	ChorusMax int
	LeadMin   int
	LeadMax   int
	TotalMax  int

	ChorusMutationProbability float64
	LeadMutationProbability   float64
}

func DefaultVoicesParameters() VoicesParameters {
	return VoicesParameters{
		ChorusMin: 0, ChorusMax: 4,
		LeadMin: 1, LeadMax: 5,
		TotalMax:                  8,
		ChorusMutationProbability: 0.1,
		LeadMutationProbability:   0.1,
	}
}

// genLead draws a lead-voice count in [LeadMin, hi). When hi collapses to
// at or below LeadMin — the half-open draw the reference source used here
// could panic or come up empty — it clamps to the inclusive floor instead.
func (p VoicesParameters) genLead(r rng.Source, hi int) int {
	if hi <= p.LeadMin {
		return p.LeadMin
	}
	return r.IntRange(p.LeadMin, hi)
}

func (p VoicesParameters) generate(r rng.Source) (chorus, lead int) {
	chorus = r.IntRange(p.ChorusMin, p.ChorusMax)
	hi := min(p.LeadMax, p.TotalMax-chorus)
	lead = p.genLead(r, hi)
	return
}

func (p VoicesParameters) step(r rng.Source, oldChorus, oldLead int) (chorus, lead int) {
	chorus = oldChorus
	if r.BoolP(p.ChorusMutationProbability) {
		chorus = r.IntRange(p.ChorusMin, p.ChorusMax)
	}

	hi := min(p.LeadMax, p.TotalMax-chorus)
	lead = oldLead
	if r.BoolP(p.LeadMutationProbability) {
		lead = p.genLead(r, hi)
	}
	if lead > hi {
		lead = hi
	}
	if lead < p.LeadMin && hi >= p.LeadMin {
		lead = p.LeadMin
	}
	return
}

// ResolutionParameters controls a voice's note-length draw.
type ResolutionParameters struct {
	Choices              []thursday.Length
	MutationProbability  float64
}

func DefaultLeadResolutionParameters() ResolutionParameters {
	return ResolutionParameters{
		Choices: []thursday.Length{
			thursday.LengthTripletEighth,
			thursday.LengthTripletQuarter,
			thursday.LengthEighth,
			thursday.LengthQuarter,
		},
		MutationProbability: 0.1,
	}
}

func DefaultChorusResolutionParameters() ResolutionParameters {
	return ResolutionParameters{
		Choices: []thursday.Length{
			thursday.LengthTripletHalf,
			thursday.LengthHalf,
			thursday.LengthWhole,
		},
		MutationProbability: 0.1,
	}
}

func (p ResolutionParameters) generate(r rng.Source) thursday.Length {
	return p.Choices[r.IntRange(0, len(p.Choices))]
}

func (p ResolutionParameters) step(r rng.Source, old thursday.Length) (thursday.Length, bool) {
	if !r.BoolP(p.MutationProbability) {
		return old, false
	}
	next := p.generate(r)
	return next, next != old
}

// EuclideanParameters controls a voice's hit-count and pattern-length
// draw, from which its rhythm is later expanded.
type EuclideanParameters struct {
	MinLength int
	MaxLength int
	MinBeats  int
	MaxBeats  int

	LengthMutationProbability float64
	HitsMutationProbability   float64
}

func DefaultLeadEuclideanParameters() EuclideanParameters {
	return EuclideanParameters{
		MinLength: 2, MaxLength: 32,
		MinBeats: 1, MaxBeats: 16,
		LengthMutationProbability: 0.1,
		HitsMutationProbability:   0.1,
	}
}

func DefaultChorusEuclideanParameters() EuclideanParameters {
	return EuclideanParameters{
		MinLength: 1, MaxLength: 16,
		MinBeats: 1, MaxBeats: 8,
		LengthMutationProbability: 0.1,
		HitsMutationProbability:   0.1,
	}
}

func (p EuclideanParameters) lengthHi(maxNotesInPhrase int) int {
	hi := min(p.MaxLength, maxNotesInPhrase)
	if hi < p.MinLength {
		hi = p.MinLength
	}
	return hi
}

func (p EuclideanParameters) beatsHi(length int) int {
	hi := min(p.MaxBeats, length)
	if hi < p.MinBeats {
		hi = p.MinBeats
	}
	return hi
}

func (p EuclideanParameters) generate(r rng.Source, maxNotesInPhrase int) (hits, length int) {
	lenHi := p.lengthHi(maxNotesInPhrase)
	length = r.IntRangeInclusive(p.MinLength, lenHi)
	beatsHi := p.beatsHi(length)
	hits = r.IntRangeInclusive(p.MinBeats, beatsHi)
	return
}

func (p EuclideanParameters) step(r rng.Source, oldHits, oldLength, maxNotesInPhrase int) (hits, length int, dirty bool) {
	lenHi := p.lengthHi(maxNotesInPhrase)

	length = oldLength
	if r.BoolP(p.LengthMutationProbability) {
		length = r.IntRangeInclusive(p.MinLength, lenHi)
	}
	if length > lenHi {
		length = lenHi
		dirty = true
	}

	beatsHi := p.beatsHi(length)
	hits = oldHits
	if r.BoolP(p.HitsMutationProbability) {
		hits = r.IntRangeInclusive(p.MinBeats, beatsHi)
	}
	if hits > beatsHi {
		hits = beatsHi
	}

	if length != oldLength || hits != oldHits {
		dirty = true
	}
	return
}

package thursday

// sineTable is a 256-entry full-cycle sine lookup scaled to int16 range,
// sampled at 8-bit resolution and linearly interpolated by
// nextSampleSine's fractional offset.
var sineTable = [256]int16{
	0, 804, 1608, 2410, 3212, 4011, 4808, 5602, 6393, 7179, 7962, 8739, 9512, 10278, 11039, 11793,
	12539, 13279, 14010, 14732, 15446, 16151, 16846, 17530, 18204, 18868, 19519, 20159, 20787,
	21403, 22005, 22594, 23170, 23731, 24279, 24811, 25329, 25832, 26319, 26790, 27245, 27683,
	28105, 28510, 28898, 29268, 29621, 29956, 30273, 30571, 30852, 31113, 31356, 31580, 31785,
	31971, 32137, 32285, 32412, 32521, 32609, 32678, 32728, 32757, 32767, 32757, 32728, 32678,
	32609, 32521, 32412, 32285, 32137, 31971, 31785, 31580, 31356, 31113, 30852, 30571, 30273,
	29956, 29621, 29268, 28898, 28510, 28105, 27683, 27245, 26790, 26319, 25832, 25329, 24811,
	24279, 23731, 23170, 22594, 22005, 21403, 20787, 20159, 19519, 18868, 18204, 17530, 16846,
	16151, 15446, 14732, 14010, 13279, 12539, 11793, 11039, 10278, 9512, 8739, 7962, 7179, 6393,
	5602, 4808, 4011, 3212, 2410, 1608, 804, 0, -804, -1608, -2410, -3212, -4011, -4808, -5602,
	-6393, -7179, -7962, -8739, -9512, -10278, -11039, -11793, -12539, -13279, -14010, -14732,
	-15446, -16151, -16846, -17530, -18204, -18868, -19519, -20159, -20787, -21403, -22005, -22594,
	-23170, -23731, -24279, -24811, -25329, -25832, -26319, -26790, -27245, -27683, -28105, -28510,
	-28898, -29268, -29621, -29956, -30273, -30571, -30852, -31113, -31356, -31580, -31785, -31971,
	-32137, -32285, -32412, -32521, -32609, -32678, -32728, -32757, -32767, -32757, -32728, -32678,
	-32609, -32521, -32412, -32285, -32137, -31971, -31785, -31580, -31356, -31113, -30852, -30571,
	-30273, -29956, -29621, -29268, -28898, -28510, -28105, -27683, -27245, -26790, -26319, -25832,
	-25329, -24811, -24279, -23731, -23170, -22594, -22005, -21403, -20787, -20159, -19519, -18868,
	-18204, -17530, -16846, -16151, -15446, -14732, -14010, -13279, -12539, -11793, -11039, -10278,
	-9512, -8739, -7962, -7179, -6393, -5602, -4808, -4011, -3212, -2410, -1608, -804,
}

// ToneKind selects the oscillator waveform.
type ToneKind uint8

const (
	ToneSine ToneKind = iota
	ToneSquare
	ToneSaw
)

func (k ToneKind) String() string {
	switch k {
	case ToneSine:
		return "sine"
	case ToneSquare:
		return "square"
	case ToneSaw:
		return "saw"
	default:
		return "?"
	}
}

// Mix selects how much headroom a tone is given before it's added into a
// stereo buffer, so that several tones can be summed without overflowing
// int16 range.
type Mix uint8

const (
	MixDiv1 Mix = iota
	MixDiv2
	MixDiv4
	MixDiv8
)

func (m Mix) shift() int16 {
	switch m {
	case MixDiv1:
		return 0
	case MixDiv2:
		return 1
	case MixDiv4:
		return 2
	case MixDiv8:
		return 3
	default:
		return 0
	}
}

// Tone is a phase-accumulator oscillator. curOffset is a 32-bit fixed-point
// phase; incr is added to it (with wraparound) once per sample.
type Tone struct {
	kind      ToneKind
	curOffset int32
	incr      int32
}

// NewSineTone returns a sine oscillator at freq Hz, sampled at sampleRate.
func NewSineTone(freq float32, sampleRate uint32) Tone {
	sampPerCyc := float32(sampleRate) / freq
	fincr := float32(len(sineTable)) / sampPerCyc
	incr := int32(float32(int32(1)<<24) * fincr)
	return Tone{kind: ToneSine, incr: incr}
}

// NewSquareTone returns a square oscillator at freq Hz, sampled at
// sampleRate.
func NewSquareTone(freq float32, sampleRate uint32) Tone {
	sampPerCyc := float32(sampleRate) / freq
	fincr := float32(^uint32(0)) / sampPerCyc
	return Tone{kind: ToneSquare, incr: int32(fincr)}
}

// NewSawTone returns a sawtooth oscillator at freq Hz, sampled at
// sampleRate.
func NewSawTone(freq float32, sampleRate uint32) Tone {
	sampPerCyc := float32(sampleRate) / freq
	fincr := float32(^uint32(0)) / sampPerCyc
	return Tone{kind: ToneSaw, incr: int32(fincr)}
}

// NextSample advances the oscillator by one sample and returns it.
func (t *Tone) NextSample() int16 {
	switch t.kind {
	case ToneSine:
		return t.nextSampleSine()
	case ToneSquare:
		return t.nextSampleSquare()
	case ToneSaw:
		return t.nextSampleSaw()
	default:
		return 0
	}
}

func (t *Tone) nextSampleSine() int16 {
	val := uint32(t.curOffset)
	idxNow := uint8((val >> 24) & 0xFF)
	idxNxt := idxNow + 1
	baseVal := int32(sineTable[idxNow])
	nextVal := int32(sineTable[idxNxt])

	off := int32((val >> 16) & 0xFF)
	curWeight := baseVal * (256 - off)
	nxtWeight := nextVal * off
	ttlWeight := curWeight + nxtWeight
	ttlVal := int16(ttlWeight >> 8)

	t.curOffset += t.incr
	return ttlVal
}

func (t *Tone) nextSampleSquare() int16 {
	var v int16
	if t.curOffset >= 0 {
		v = 32767
	} else {
		v = -32768
	}
	t.curOffset += t.incr
	return v
}

func (t *Tone) nextSampleSaw() int16 {
	v := int16(t.curOffset >> 16)
	t.curOffset += t.incr
	return v
}

// FillStereoSamples mixes one sample per element of samples into it, at
// full volume for the whole span, shifted down by mix's headroom.
func (t *Tone) FillStereoSamples(samples []StereoSample, mix Mix) {
	shift := mix.shift()
	for i := range samples {
		samp := t.NextSample() >> shift
		samples[i].Add(samp, samp)
	}
}

// FillFirstStereoSamples mixes samples with a 32-step linear fade-in, for
// use on the first render chunk of a newly-sounding note.
func (t *Tone) FillFirstStereoSamples(samples []StereoSample, mix Mix) {
	t.fillRampedStereoSamples(samples, mix, 1, 1)
}

// FillLastStereoSamples mixes samples with a 32-step linear fade-out, for
// use on the final render chunk of a note about to stop sounding.
func (t *Tone) FillLastStereoSamples(samples []StereoSample, mix Mix) {
	t.fillRampedStereoSamples(samples, mix, 32, -1)
}

func (t *Tone) fillRampedStereoSamples(samples []StereoSample, mix Mix, start, step int32) {
	shift := mix.shift()
	chunkSize := len(samples) / 32
	if chunkSize == 0 {
		chunkSize = 1
	}
	ct := start
	for lo := 0; lo < len(samples); lo += chunkSize {
		hi := lo + chunkSize
		if hi > len(samples) {
			hi = len(samples)
		}
		for i := lo; i < hi; i++ {
			samp := t.NextSample() >> shift
			rsamp := int32(samp) * ct
			rsamp >>= 5
			samples[i].Add(int16(rsamp), int16(rsamp))
		}
		ct += step
	}
}

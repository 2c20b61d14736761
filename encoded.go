package thursday

// EncPitch is a semitone ("tone") plus a fine pitch-bend offset, encoded as
// one or two bytes depending on whether the offset is zero.
type EncPitch struct {
	Tone   uint8 // 0..=0x7F
	Offset uint8 // 0..=0xFF, zero means "no bend"
}

// NewEncPitch validates and builds an EncPitch directly from a tone/offset
// pair, as used when decoding a KCInt.
func NewEncPitch(tone, offset uint8) (EncPitch, error) {
	if tone > 0x7F {
		return EncPitch{}, ErrValueOutOfBounds
	}
	return EncPitch{Tone: tone, Offset: offset}, nil
}

// EncPitchFromPitchOctave builds an EncPitch from a twelve-tone pitch index
// (0..=11) and an octave (0..=10, with octave 10 truncated at pitch index 7,
// i.e. G). The fine offset is zero.
func EncPitchFromPitchOctave(pitchIndex uint8, octave uint8) (EncPitch, error) {
	if octave > 10 || (octave == 10 && pitchIndex > 7) {
		return EncPitch{}, ErrValueOutOfBounds
	}
	tone := octave*12 + pitchIndex
	if tone > 0x7F {
		return EncPitch{}, ErrValueOutOfBounds
	}
	return EncPitch{Tone: tone}, nil
}

func encPitchFromKCInt(k kcInt) (EncPitch, error) {
	if !k.long {
		return NewEncPitch(k.lower, 0)
	}
	return NewEncPitch(k.lower&0x7F, k.upper)
}

func (p EncPitch) toKCInt() kcInt {
	if p.Offset == 0 {
		return kcShort(p.Tone)
	}
	return kcLong(p.Offset, p.Tone|0x80)
}

// EncStart is the tick index, within the bar's PPQN timeline, at which a
// note begins.
type EncStart struct {
	PPQNIdx uint16
}

// NewEncStart validates and builds an EncStart from a raw tick index.
func NewEncStart(ppqnIdx uint16) (EncStart, error) {
	if ppqnIdx >= PPQNMax {
		return EncStart{}, ErrValueOutOfBounds
	}
	return EncStart{PPQNIdx: ppqnIdx}, nil
}

func encStartFromKCInt(k kcInt) (EncStart, error) {
	if !k.long {
		return NewEncStart(uint16(k.lower) * PPQNEighth)
	}
	idx := (uint16(k.upper) << 7) | uint16(k.lower&0x7F)
	return NewEncStart(idx)
}

func (s EncStart) toKCInt() kcInt {
	if s.PPQNIdx%PPQNEighth == 0 {
		eighths := s.PPQNIdx / PPQNEighth
		if eighths <= 127 {
			return kcShort(uint8(eighths))
		}
	}
	upper := uint8(s.PPQNIdx >> 7)
	lower := uint8(s.PPQNIdx&0x7F) | 0x80
	return kcLong(upper, lower)
}

// EncLength is a note's duration, in ticks.
type EncLength struct {
	PPQNCt uint16
}

// NewEncLength validates and builds an EncLength from a raw tick count.
func NewEncLength(ppqnCt uint16) (EncLength, error) {
	if ppqnCt == 0 || ppqnCt > PPQNMax {
		return EncLength{}, ErrValueOutOfBounds
	}
	return EncLength{PPQNCt: ppqnCt}, nil
}

// lengthShortCodes is the nine preset short-code lengths, indexed by code
// 0x00..=0x08.
var lengthShortCodes = [9]uint16{
	PPQN32ndTriplet,
	PPQN16thTriplet,
	PPQNEighthTriplet,
	PPQNQuarterTriplet,
	PPQNHalfTriplet,
	PPQN64th,
	PPQN32nd,
	PPQN16th,
	PPQNEighth,
}

func encLengthFromKCInt(k kcInt) (EncLength, error) {
	if !k.long {
		code := k.lower
		switch {
		case code <= 0x08:
			return NewEncLength(lengthShortCodes[code])
		case code >= 0x40:
			qn := uint16(code - 0x3F)
			return NewEncLength(qn * PPQNQuarter)
		default:
			return EncLength{}, ErrValueOutOfBounds
		}
	}
	ct := (uint16(k.upper) << 7) | uint16(k.lower&0x7F)
	return NewEncLength(ct)
}

func (l EncLength) toKCInt() kcInt {
	for code, ticks := range lengthShortCodes {
		if ticks == l.PPQNCt {
			return kcShort(uint8(code))
		}
	}
	if l.PPQNCt%PPQNQuarter == 0 {
		qn := l.PPQNCt / PPQNQuarter
		if qn <= 64 {
			return kcShort(uint8(0x3F + qn))
		}
	}
	upper := uint8(l.PPQNCt >> 7)
	lower := uint8(l.PPQNCt&0x7F) | 0x80
	return kcLong(upper, lower)
}

// EncNote is a fully-encoded note: a pitch, a start tick, and a duration in
// ticks. Its wire form occupies between MinEncodingSize and MaxEncodingSize
// bytes.
type EncNote struct {
	Pitch  EncPitch
	Start  EncStart
	Length EncLength
}

// NewEncNoteSimple builds an EncNote from a musical Length, a twelve-tone
// pitch index and octave, and a start tick.
func NewEncNoteSimple(length Length, pitchIndex, octave uint8, startPPQN uint16) (EncNote, error) {
	p, err := EncPitchFromPitchOctave(pitchIndex, octave)
	if err != nil {
		return EncNote{}, err
	}
	s, err := NewEncStart(startPPQN)
	if err != nil {
		return EncNote{}, err
	}
	l, err := NewEncLength(length.ToPPQN())
	if err != nil {
		return EncNote{}, err
	}
	return EncNote{Pitch: p, Start: s, Length: l}, nil
}

// TakeEncNoteFromSlice decodes one EncNote from the front of sli, returning
// the remaining bytes.
func TakeEncNoteFromSlice(sli []byte) (EncNote, []byte, error) {
	pk, rest, err := takeKCIntFromSlice(sli)
	if err != nil {
		return EncNote{}, nil, err
	}
	p, err := encPitchFromKCInt(pk)
	if err != nil {
		return EncNote{}, nil, err
	}

	sk, rest, err := takeKCIntFromSlice(rest)
	if err != nil {
		return EncNote{}, nil, err
	}
	s, err := encStartFromKCInt(sk)
	if err != nil {
		return EncNote{}, nil, err
	}

	lk, rest, err := takeKCIntFromSlice(rest)
	if err != nil {
		return EncNote{}, nil, err
	}
	l, err := encLengthFromKCInt(lk)
	if err != nil {
		return EncNote{}, nil, err
	}

	return EncNote{Pitch: p, Start: s, Length: l}, rest, nil
}

// WriteToSlice encodes the EncNote into the front of sli, returning the
// remaining (unwritten) bytes.
func (n EncNote) WriteToSlice(sli []byte) ([]byte, error) {
	rest, err := n.Pitch.toKCInt().writeToSlice(sli)
	if err != nil {
		return nil, err
	}
	rest, err = n.Start.toKCInt().writeToSlice(rest)
	if err != nil {
		return nil, err
	}
	rest, err = n.Length.toKCInt().writeToSlice(rest)
	if err != nil {
		return nil, err
	}
	return rest, nil
}

// PitchToneOffset returns the note's semitone and fine-bend offset.
func (n EncNote) PitchToneOffset() (uint8, uint8) {
	return n.Pitch.Tone, n.Pitch.Offset
}

// PPQNStart returns the note's start tick.
func (n EncNote) PPQNStart() uint16 {
	return n.Start.PPQNIdx
}

// PPQNLen returns the note's duration in ticks.
func (n EncNote) PPQNLen() uint16 {
	return n.Length.PPQNCt
}

// PPQNEnd returns the tick immediately following the note.
func (n EncNote) PPQNEnd() uint16 {
	return n.Start.PPQNIdx + n.Length.PPQNCt
}

package thursday

import "errors"

// Errors returned by the codec and bar buffer. These are reported
// synchronously to the caller; the core never retries, logs, or swallows
// them.
var (
	ErrValueOutOfBounds   = errors.New("thursday: value out of bounds")
	ErrEndOfStream        = errors.New("thursday: end of stream")
	ErrBarFull            = errors.New("thursday: bar buffer is full")
	ErrExceededBarLength  = errors.New("thursday: note would exceed bar length")
)

// kcInt is a one- or two-byte self-describing variable-length integer.
// A short form is a single byte with its high bit clear. A long form is
// two bytes: lower (high bit set, flag retained) and upper.
type kcInt struct {
	long  bool
	lower byte // for Short, this IS the value; for Long, flag bit retained
	upper byte
}

func kcShort(b byte) kcInt {
	return kcInt{long: false, lower: b}
}

func kcLong(upper, lower byte) kcInt {
	return kcInt{long: true, lower: lower, upper: upper}
}

// takeKCIntFromSlice decodes one kcInt from the front of sli, returning the
// decoded value and the remaining bytes.
func takeKCIntFromSlice(sli []byte) (kcInt, []byte, error) {
	if len(sli) < 1 {
		return kcInt{}, nil, ErrEndOfStream
	}
	lower := sli[0]
	if lower&0x80 != 0 {
		if len(sli) < 2 {
			return kcInt{}, nil, ErrEndOfStream
		}
		return kcLong(sli[1], lower), sli[2:], nil
	}
	return kcShort(lower), sli[1:], nil
}

// writeToSlice encodes the kcInt into the front of sli, returning the
// remaining (unwritten) bytes.
func (k kcInt) writeToSlice(sli []byte) ([]byte, error) {
	if k.long {
		if len(sli) < 2 {
			return nil, ErrEndOfStream
		}
		sli[0] = k.lower
		sli[1] = k.upper
		return sli[2:], nil
	}
	if len(sli) < 1 {
		return nil, ErrEndOfStream
	}
	sli[0] = k.lower
	return sli[1:], nil
}

package cbor

import "math"

// argLen returns how many bytes beyond the initial byte are needed to
// carry the given argument: 0 when it fits in the initial byte's low five
// bits, otherwise 1, 2, 4, or 8. Both encodedLen and encode derive header
// widths from this one function.
func argLen(arg uint64) int {
	switch {
	case arg < 24:
		return 0
	case arg <= math.MaxUint8:
		return 1
	case arg <= math.MaxUint16:
		return 2
	case arg <= math.MaxUint32:
		return 4
	default:
		return 8
	}
}

// encodeArg writes the initial byte for the major type and argument,
// followed by the argument's big-endian bytes when it does not fit inline.
// Every byte goes through cur so an overflow is reported at the exact byte
// that exceeds capacity.
func encodeArg(major majorType, arg uint64, cur *cursor) error {
	n := argLen(arg)
	if n == 0 {
		return cur.writeByte(byte(major)<<5 | byte(arg))
	}

	var minor byte
	switch n {
	case 1:
		minor = minorArg1
	case 2:
		minor = minorArg2
	case 4:
		minor = minorArg4
	default:
		minor = minorArg8
	}
	if err := cur.writeByte(byte(major)<<5 | minor); err != nil {
		return err
	}
	for shift := 8 * (n - 1); shift >= 0; shift -= 8 {
		if err := cur.writeByte(byte(arg >> shift)); err != nil {
			return err
		}
	}
	return nil
}

func (i Unsigned) encodedLen() int {
	return 1 + argLen(uint64(i))
}

func (i Unsigned) encode(cur *cursor) error {
	return encodeArg(majorTypeUnsigned, uint64(i), cur)
}

func (i Negative) encodedLen() int {
	return 1 + argLen(uint64(i))
}

func (i Negative) encode(cur *cursor) error {
	return encodeArg(majorTypeNegative, uint64(i), cur)
}

func (b Bytes) encodedLen() int {
	return 1 + argLen(uint64(len(b))) + len(b)
}

func (b Bytes) encode(cur *cursor) error {
	if err := encodeArg(majorTypeBytes, uint64(len(b)), cur); err != nil {
		return err
	}
	for _, c := range b {
		if err := cur.writeByte(c); err != nil {
			return err
		}
	}
	return nil
}

func (t Text) encodedLen() int {
	return 1 + argLen(uint64(len(t))) + len(t)
}

func (t Text) encode(cur *cursor) error {
	if err := encodeArg(majorTypeText, uint64(len(t)), cur); err != nil {
		return err
	}
	for i := 0; i < len(t); i++ {
		if err := cur.writeByte(t[i]); err != nil {
			return err
		}
	}
	return nil
}

func (a Array) encodedLen() int {
	total := 1 + argLen(uint64(len(a)))
	for _, v := range a {
		total += v.encodedLen()
	}
	return total
}

func (a Array) encode(cur *cursor) error {
	if err := encodeArg(majorTypeArray, uint64(len(a)), cur); err != nil {
		return err
	}
	for _, v := range a {
		if err := v.encode(cur); err != nil {
			return err
		}
	}
	return nil
}

func (m Map) encodedLen() int {
	total := 1 + argLen(uint64(len(m)))
	for _, p := range m {
		total += p.Key.encodedLen() + p.Value.encodedLen()
	}
	return total
}

func (m Map) encode(cur *cursor) error {
	if err := encodeArg(majorTypeMap, uint64(len(m)), cur); err != nil {
		return err
	}
	for _, p := range m {
		if err := p.Key.encode(cur); err != nil {
			return err
		}
		if err := p.Value.encode(cur); err != nil {
			return err
		}
	}
	return nil
}

func (t Tag) encodedLen() int {
	return 1 + argLen(t.Number) + t.Value.encodedLen()
}

func (t Tag) encode(cur *cursor) error {
	if err := encodeArg(majorTypeTag, t.Number, cur); err != nil {
		return err
	}
	return t.Value.encode(cur)
}

func (s Simple) encodedLen() int {
	return 1 + argLen(uint64(s))
}

func (s Simple) encode(cur *cursor) error {
	return encodeArg(majorTypeSimple, uint64(s), cur)
}

func (f Float) encodedLen() int {
	return 9
}

func (f Float) encode(cur *cursor) error {
	if err := cur.writeByte(byte(majorTypeSimple)<<5 | minorArg8); err != nil {
		return err
	}
	bits := math.Float64bits(float64(f))
	for shift := 56; shift >= 0; shift -= 8 {
		if err := cur.writeByte(byte(bits >> shift)); err != nil {
			return err
		}
	}
	return nil
}

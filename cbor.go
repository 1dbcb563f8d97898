// Package cbor implements encoding of concise binary object representation
// (CBOR) described in RFC 8949.
//
// The encoding API operates strictly off of a constructed syntax tree, so
// the length of every data item in a Value is known up front and the
// encoder only generates definite-length encodings of container types
// (byte/text string, array, map).
//
// Encode writes into a caller-supplied fixed-size buffer and never grows,
// copies, or reallocates it, which makes the package suitable for code
// paths that run entirely on preallocated memory. EncodedSize reports the
// exact number of bytes a value occupies so callers can size buffers ahead
// of time.
//
// Decoding is not implemented.
package cbor

import "errors"

// majorType enumerates CBOR major types.
type majorType byte

const (
	majorTypeUnsigned majorType = iota
	majorTypeNegative
	majorTypeBytes
	majorTypeText
	majorTypeArray
	majorTypeMap
	majorTypeTag
	majorTypeSimple
)

// Additional-info codes selecting how many bytes of argument follow the
// initial byte.
const (
	minorArg1 = 24
	minorArg2 = 25
	minorArg4 = 26
	minorArg8 = 27
)

var (
	// ErrBufferTooSmall is returned by Encode when the destination buffer
	// cannot hold the complete encoding of the value. Bytes written before
	// the overflow was detected remain in the buffer but are not valid
	// output.
	ErrBufferTooSmall = errors.New("cbor: buffer too small")

	// ErrInvalidType is reserved for a decoding direction this package
	// does not implement. Encode never returns it.
	ErrInvalidType = errors.New("cbor: invalid type")
)

// Value describes a CBOR data item.
//
// The following types implement Value:
//   - Unsigned
//   - Negative
//   - Bytes
//   - Text
//   - Array
//   - Map
//   - Tag
//   - Simple
//   - Float
type Value interface {
	// encodedLen returns the exact number of bytes the encoded form of
	// the value occupies.
	encodedLen() int
	// encode writes the value through cur.
	encode(cur *cursor) error
}

var (
	_ Value = Unsigned(0)
	_ Value = Negative(0)
	_ Value = Bytes(nil)
	_ Value = Text("")
	_ Value = Array(nil)
	_ Value = Map(nil)
	_ Value = Tag{}
	_ Value = Simple(0)
	_ Value = Float(0)
)

// EncodedSize returns the number of bytes Encode writes for v. It has no
// side effects and cannot fail.
func EncodedSize(v Value) int {
	return v.encodedLen()
}

// Encode writes the CBOR encoding of v into p starting at offset 0 and
// returns the number of bytes written. If p cannot hold the complete
// encoding, Encode returns ErrBufferTooSmall; size p with EncodedSize to
// rule that out.
//
// Encode never mutates v. Concurrent calls are safe as long as each call
// uses its own destination buffer.
func Encode(v Value, p []byte) (int, error) {
	cur := &cursor{buf: p}
	if err := v.encode(cur); err != nil {
		return 0, err
	}
	return cur.pos, nil
}

package cbor

// Unsigned describes a CBOR unsigned integer (major type 0).
type Unsigned uint64

// Negative describes a CBOR negative integer (major type 1), stored as the
// magnitude n of the logical value -1-n. Use NegInt to convert from a
// logical integer.
type Negative uint64

// NegInt returns the Negative representation of the logical integer i,
// which must be less than zero.
func NegInt(i int64) Negative {
	return Negative(-(i + 1))
}

// Bytes describes a CBOR byte string (major type 2). The slice is
// borrowed, not copied: the caller keeps it alive and unmodified for as
// long as the value is encoded from.
type Bytes []byte

// Text describes a CBOR text string (major type 3). The string must
// already be valid UTF-8; it is not validated at encode time.
type Text string

// Array describes a definite-length CBOR array (major type 4). Elements
// are encoded in slice order.
type Array []Value

// Pair is a single key/value entry of a Map.
type Pair struct {
	Key   Value
	Value Value
}

// Map describes a definite-length CBOR map (major type 5). Pairs are
// encoded in slice order; key ordering and duplicate suppression are the
// caller's responsibility.
type Map []Pair

// Tag describes a CBOR tagged value (major type 6) wrapping exactly one
// item. Value must not be nil.
type Tag struct {
	Number uint64
	Value  Value
}

// Simple describes a CBOR simple value (major type 7): code 20 is false,
// 21 true, 22 null, 23 undefined. Codes 24 through 31 are reserved by RFC
// 8949 and are encoded as given without validation.
type Simple uint8

const (
	simpleFalse     Simple = 20
	simpleTrue      Simple = 21
	simpleNull      Simple = 22
	simpleUndefined Simple = 23
)

// Bool returns the Simple value encoding the boolean b.
func Bool(b bool) Simple {
	if b {
		return simpleTrue
	}
	return simpleFalse
}

// Null returns the Simple value encoding null.
func Null() Simple {
	return simpleNull
}

// Undefined returns the Simple value encoding undefined.
func Undefined() Simple {
	return simpleUndefined
}

// Float describes an IEEE 754 double-precision floating-point number
// (major type 7, additional info 27). Floats are always encoded at double
// precision regardless of magnitude.
type Float float64

/*
Package safeint provides fixed-width integer types (I8 through I64, Isize,
U8 through U64, Usize) whose arithmetic never silently wraps.

All types are value types; every operation returns a new value. Each
arithmetic operation comes in up to five shapes:

	Add(n)            panics on overflow
	CheckedAdd(n)     returns Option, empty on overflow
	WrappingAdd(n)    wraps modulo 2^W
	OverflowingAdd(n) returns the wrapped result and an overflow flag
	SaturatingAdd(n)  clamps to the type's Min/Max

Values can be created from a variety of sources:

	I32From(v int32) I32
	I32From64(v int64) (I32, error)
	I32FromString(s string) (I32, error)
	I32FromBEBytes(b []byte) I32
	I32FromBits(v U32) I32
	RandI32(source RandSource) I32

All types support the following formatting and marshalling interfaces:

	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
*/
package safeint

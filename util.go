package safeint

// RandSource is provided by math/rand's Rand.Uint64(), but is its own
// interface here so crypto sources can be adapted without importing
// math/rand into this package.
type RandSource interface {
	Uint64() uint64
}

func RandU8(source RandSource) U8    { return U8{uint8(source.Uint64())} }
func RandU16(source RandSource) U16  { return U16{uint16(source.Uint64())} }
func RandU32(source RandSource) U32  { return U32{uint32(source.Uint64())} }
func RandU64(source RandSource) U64  { return U64{source.Uint64()} }
func RandUsize(source RandSource) Usize {
	return Usize{uint(source.Uint64())}
}

// Signed random values cover the nonnegative half of the range; flip bits
// or negate at the call site if the full range is needed.

func RandI8(source RandSource) I8   { return I8{int8(source.Uint64() & 0x7f)} }
func RandI16(source RandSource) I16 { return I16{int16(source.Uint64() & 0x7fff)} }
func RandI32(source RandSource) I32 { return I32{int32(source.Uint64() & 0x7fffffff)} }
func RandI64(source RandSource) I64 {
	return I64{int64(source.Uint64() & 0x7fffffffffffffff)}
}
func RandIsize(source RandSource) Isize {
	return Isize{int(uint(source.Uint64()) >> 1)}
}

package safeint

import (
	"fmt"
	"strconv"
)

// The concrete types. Isize and Usize take the platform's pointer width
// through Go's int and uint.
type (
	I8    = Int[int8, uint8]
	I16   = Int[int16, uint16]
	I32   = Int[int32, uint32]
	I64   = Int[int64, uint64]
	Isize = Int[int, uint]

	U8    = Uint[uint8]
	U16   = Uint[uint16]
	U32   = Uint[uint32]
	U64   = Uint[uint64]
	Usize = Uint[uint]
)

func I8From(v int8) I8       { return I8{v} }
func I16From(v int16) I16    { return I16{v} }
func I32From(v int32) I32    { return I32{v} }
func I64From(v int64) I64    { return I64{v} }
func IsizeFrom(v int) Isize  { return Isize{v} }
func U8From(v uint8) U8      { return U8{v} }
func U16From(v uint16) U16   { return U16{v} }
func U32From(v uint32) U32   { return U32{v} }
func U64From(v uint64) U64   { return U64{v} }
func UsizeFrom(v uint) Usize { return Usize{v} }

func intFromString[T signedPrim, U unsignedPrim](s string) (Int[T, U], error) {
	v, err := strconv.ParseInt(s, 10, int(widthOf[U]()))
	if err != nil {
		return Int[T, U]{}, fmt.Errorf("safeint: int string %q invalid: %w", s, err)
	}
	return Int[T, U]{T(v)}, nil
}

func uintFromString[U unsignedPrim](s string) (Uint[U], error) {
	v, err := strconv.ParseUint(s, 10, int(widthOf[U]()))
	if err != nil {
		return Uint[U]{}, fmt.Errorf("safeint: uint string %q invalid: %w", s, err)
	}
	return Uint[U]{U(v)}, nil
}

// *FromString constructors accept decimal strings only.

func I8FromString(s string) (I8, error)       { return intFromString[int8, uint8](s) }
func I16FromString(s string) (I16, error)     { return intFromString[int16, uint16](s) }
func I32FromString(s string) (I32, error)     { return intFromString[int32, uint32](s) }
func I64FromString(s string) (I64, error)     { return intFromString[int64, uint64](s) }
func IsizeFromString(s string) (Isize, error) { return intFromString[int, uint](s) }
func U8FromString(s string) (U8, error)       { return uintFromString[uint8](s) }
func U16FromString(s string) (U16, error)     { return uintFromString[uint16](s) }
func U32FromString(s string) (U32, error)     { return uintFromString[uint32](s) }
func U64FromString(s string) (U64, error)     { return uintFromString[uint64](s) }
func UsizeFromString(s string) (Usize, error) { return uintFromString[uint](s) }

func intFromBE[T signedPrim, U unsignedPrim](b []byte) Int[T, U] {
	return Int[T, U]{T(fromBEBytes[U](b))}
}

func intFromLE[T signedPrim, U unsignedPrim](b []byte) Int[T, U] {
	return Int[T, U]{T(fromLEBytes[U](b))}
}

func intFromNE[T signedPrim, U unsignedPrim](b []byte) Int[T, U] {
	return Int[T, U]{T(fromNEBytes[U](b))}
}

// *From{BE,LE,NE}Bytes reconstruct a value from exactly W/8 bytes in the
// named order, panicking on any other length. They invert the matching
// To*Bytes method bit-exactly.

func I8FromBEBytes(b []byte) I8       { return intFromBE[int8, uint8](b) }
func I8FromLEBytes(b []byte) I8       { return intFromLE[int8, uint8](b) }
func I8FromNEBytes(b []byte) I8       { return intFromNE[int8, uint8](b) }
func I16FromBEBytes(b []byte) I16     { return intFromBE[int16, uint16](b) }
func I16FromLEBytes(b []byte) I16     { return intFromLE[int16, uint16](b) }
func I16FromNEBytes(b []byte) I16     { return intFromNE[int16, uint16](b) }
func I32FromBEBytes(b []byte) I32     { return intFromBE[int32, uint32](b) }
func I32FromLEBytes(b []byte) I32     { return intFromLE[int32, uint32](b) }
func I32FromNEBytes(b []byte) I32     { return intFromNE[int32, uint32](b) }
func I64FromBEBytes(b []byte) I64     { return intFromBE[int64, uint64](b) }
func I64FromLEBytes(b []byte) I64     { return intFromLE[int64, uint64](b) }
func I64FromNEBytes(b []byte) I64     { return intFromNE[int64, uint64](b) }
func IsizeFromBEBytes(b []byte) Isize { return intFromBE[int, uint](b) }
func IsizeFromLEBytes(b []byte) Isize { return intFromLE[int, uint](b) }
func IsizeFromNEBytes(b []byte) Isize { return intFromNE[int, uint](b) }

func U8FromBEBytes(b []byte) U8       { return U8{fromBEBytes[uint8](b)} }
func U8FromLEBytes(b []byte) U8       { return U8{fromLEBytes[uint8](b)} }
func U8FromNEBytes(b []byte) U8       { return U8{fromNEBytes[uint8](b)} }
func U16FromBEBytes(b []byte) U16     { return U16{fromBEBytes[uint16](b)} }
func U16FromLEBytes(b []byte) U16     { return U16{fromLEBytes[uint16](b)} }
func U16FromNEBytes(b []byte) U16     { return U16{fromNEBytes[uint16](b)} }
func U32FromBEBytes(b []byte) U32     { return U32{fromBEBytes[uint32](b)} }
func U32FromLEBytes(b []byte) U32     { return U32{fromLEBytes[uint32](b)} }
func U32FromNEBytes(b []byte) U32     { return U32{fromNEBytes[uint32](b)} }
func U64FromBEBytes(b []byte) U64     { return U64{fromBEBytes[uint64](b)} }
func U64FromLEBytes(b []byte) U64     { return U64{fromLEBytes[uint64](b)} }
func U64FromNEBytes(b []byte) U64     { return U64{fromNEBytes[uint64](b)} }
func UsizeFromBEBytes(b []byte) Usize { return Usize{fromBEBytes[uint](b)} }
func UsizeFromLEBytes(b []byte) Usize { return Usize{fromLEBytes[uint](b)} }
func UsizeFromNEBytes(b []byte) Usize { return Usize{fromNEBytes[uint](b)} }

// *FromBits reinterpret an unsigned bit pattern as the same-width signed
// type; the counterpart of Int.AsUint.

func I8FromBits(u U8) I8          { return I8{int8(u.v)} }
func I16FromBits(u U16) I16       { return I16{int16(u.v)} }
func I32FromBits(u U32) I32       { return I32{int32(u.v)} }
func I64FromBits(u U64) I64       { return I64{int64(u.v)} }
func IsizeFromBits(u Usize) Isize { return Isize{int(u.v)} }

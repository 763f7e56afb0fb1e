package safeint

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUintBytes(t *testing.T) {
	v := u32(0x12345678)
	require.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, v.ToBEBytes())
	require.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, v.ToLEBytes())
	require.Equal(t, v, U32FromBEBytes(v.ToBEBytes()))
	require.Equal(t, v, U32FromLEBytes(v.ToLEBytes()))
	require.Equal(t, v, U32FromNEBytes(v.ToNEBytes()))

	require.Equal(t, []byte{0xAB}, u8(0xAB).ToBEBytes())
	require.Equal(t, []byte{0xAB}, u8(0xAB).ToLEBytes())
	require.Equal(t, []byte{0x12, 0x34}, U16From(0x1234).ToBEBytes())
	require.Equal(t, []byte{0x34, 0x12}, U16From(0x1234).ToLEBytes())

	w := u64(0x0102030405060708)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, w.ToBEBytes())
	require.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, w.ToLEBytes())
	require.Equal(t, w, U64FromBEBytes(w.ToBEBytes()))
}

func TestIntBytes(t *testing.T) {
	v := i32(-2)
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFE}, v.ToBEBytes())
	require.Equal(t, []byte{0xFE, 0xFF, 0xFF, 0xFF}, v.ToLEBytes())
	require.Equal(t, v, I32FromBEBytes(v.ToBEBytes()))
	require.Equal(t, v, I32FromLEBytes(v.ToLEBytes()))
	require.Equal(t, v, I32FromNEBytes(v.ToNEBytes()))

	require.Equal(t, []byte{0x80, 0, 0, 0, 0, 0, 0, 0}, MinI64.ToBEBytes())
	require.Equal(t, MinI64, I64FromBEBytes(MinI64.ToBEBytes()))
	require.Equal(t, []byte{0x80}, MinI8.ToBEBytes())
}

func TestBytesRoundTripAllWidths(t *testing.T) {
	for i := 0; i < 100; i++ {
		t.Run(fmt.Sprintf("iter%d", i), func(t *testing.T) {
			u8v := RandU8(globalRNG)
			require.Equal(t, u8v, U8FromBEBytes(u8v.ToBEBytes()))
			require.Equal(t, u8v, U8FromLEBytes(u8v.ToLEBytes()))

			u16v := RandU16(globalRNG)
			require.Equal(t, u16v, U16FromBEBytes(u16v.ToBEBytes()))
			require.Equal(t, u16v, U16FromLEBytes(u16v.ToLEBytes()))

			u32v := RandU32(globalRNG)
			require.Equal(t, u32v, U32FromBEBytes(u32v.ToBEBytes()))
			require.Equal(t, u32v, U32FromLEBytes(u32v.ToLEBytes()))

			u64v := RandU64(globalRNG)
			require.Equal(t, u64v, U64FromBEBytes(u64v.ToBEBytes()))
			require.Equal(t, u64v, U64FromLEBytes(u64v.ToLEBytes()))

			usz := RandUsize(globalRNG)
			require.Equal(t, usz, UsizeFromBEBytes(usz.ToBEBytes()))
			require.Equal(t, usz, UsizeFromNEBytes(usz.ToNEBytes()))

			i64v := RandI64(globalRNG)
			require.Equal(t, i64v, I64FromBEBytes(i64v.ToBEBytes()))
			require.Equal(t, i64v, I64FromLEBytes(i64v.ToLEBytes()))

			isz := RandIsize(globalRNG)
			require.Equal(t, isz, IsizeFromLEBytes(isz.ToLEBytes()))
		})
	}
}

func TestBytesLength(t *testing.T) {
	require.Panics(t, func() { U32FromBEBytes([]byte{1, 2, 3}) })
	require.Panics(t, func() { U32FromLEBytes([]byte{1, 2, 3, 4, 5}) })
	require.Panics(t, func() { I16FromBEBytes(nil) })
}

func TestEndianConversion(t *testing.T) {
	v := u32(0x12345678)
	be := v.ToBE()
	le := v.ToLE()
	if hostBig {
		require.Equal(t, v, be)
		require.Equal(t, v.SwapBytes(), le)
	} else {
		require.Equal(t, v.SwapBytes(), be)
		require.Equal(t, v, le)
	}
	require.Equal(t, v, v.ToBE().FromBE())
	require.Equal(t, v, v.ToLE().FromLE())
	require.Equal(t, v, v.ToNE())

	iv := i32(0x12345678)
	require.Equal(t, iv, iv.ToBE().FromBE())
	require.Equal(t, iv, iv.ToLE().FromLE())
	require.Equal(t, iv, iv.FromNE())
}

package safeint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntFrom64(t *testing.T) {
	v, err := I8From64(127)
	require.NoError(t, err)
	require.Equal(t, MaxI8, v)

	v, err = I8From64(-128)
	require.NoError(t, err)
	require.Equal(t, MinI8, v)

	_, err = I8From64(128)
	require.Error(t, err)
	_, err = I8From64(-129)
	require.Error(t, err)

	w, err := I16From64(math.MaxInt16)
	require.NoError(t, err)
	require.Equal(t, MaxI16, w)
	_, err = I16From64(math.MaxInt16 + 1)
	require.Error(t, err)

	x, err := I32From64(math.MinInt32)
	require.NoError(t, err)
	require.Equal(t, MinI32, x)
	_, err = I32From64(math.MinInt32 - 1)
	require.Error(t, err)

	y, err := I64From64(math.MaxInt64)
	require.NoError(t, err)
	require.Equal(t, MaxI64, y)
}

func TestUintFrom64(t *testing.T) {
	v, err := U8From64(255)
	require.NoError(t, err)
	require.Equal(t, MaxU8, v)
	_, err = U8From64(256)
	require.Error(t, err)

	w, err := U16From64(math.MaxUint16)
	require.NoError(t, err)
	require.Equal(t, MaxU16, w)
	_, err = U16From64(math.MaxUint16 + 1)
	require.Error(t, err)

	x, err := U32From64(math.MaxUint32)
	require.NoError(t, err)
	require.Equal(t, MaxU32, x)
	_, err = U32From64(math.MaxUint32 + 1)
	require.Error(t, err)

	y, err := U64From64(math.MaxUint64)
	require.NoError(t, err)
	require.Equal(t, MaxU64, y)
}

func TestRand(t *testing.T) {
	for i := 0; i < 1000; i++ {
		require.False(t, RandI8(globalRNG).IsNegative())
		require.False(t, RandI16(globalRNG).IsNegative())
		require.False(t, RandI32(globalRNG).IsNegative())
		require.False(t, RandI64(globalRNG).IsNegative())
		require.False(t, RandIsize(globalRNG).IsNegative())
	}
}

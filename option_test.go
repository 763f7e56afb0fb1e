package safeint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOption(t *testing.T) {
	s := Some(i32(42))
	require.True(t, s.IsSome())
	require.False(t, s.IsNone())
	require.Equal(t, i32(42), s.Unwrap())
	require.Equal(t, i32(42), s.UnwrapOr(i32(0)))

	v, ok := s.Get()
	require.True(t, ok)
	require.Equal(t, i32(42), v)

	n := None[I32]()
	require.True(t, n.IsNone())
	require.Equal(t, i32(7), n.UnwrapOr(i32(7)))
	require.Panics(t, func() { n.Unwrap() })

	_, ok = n.Get()
	require.False(t, ok)
}

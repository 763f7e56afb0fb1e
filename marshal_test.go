package safeint

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntString(t *testing.T) {
	require.Equal(t, "0", i32(0).String())
	require.Equal(t, "-42", i32(-42).String())
	require.Equal(t, "-128", MinI8.String())
	require.Equal(t, "9223372036854775807", MaxI64.String())
	require.Equal(t, "255", MaxU8.String())
	require.Equal(t, "18446744073709551615", MaxU64.String())
}

func TestFromString(t *testing.T) {
	for _, tc := range []struct {
		s    string
		v    I8
		fail bool
	}{
		{"0", i8(0), false},
		{"-128", MinI8, false},
		{"127", MaxI8, false},
		{"128", I8{}, true},
		{"-129", I8{}, true},
		{"", I8{}, true},
		{"1.5", I8{}, true},
		{"0x10", I8{}, true},
	} {
		t.Run(fmt.Sprintf("%q", tc.s), func(t *testing.T) {
			v, err := I8FromString(tc.s)
			if tc.fail {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.v, v)
			}
		})
	}

	u, err := U64FromString("18446744073709551615")
	require.NoError(t, err)
	require.Equal(t, MaxU64, u)
	_, err = U64FromString("18446744073709551616")
	require.Error(t, err)
	_, err = U8FromString("-1")
	require.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	type doc struct {
		A I32 `json:"a"`
		B U64 `json:"b"`
		C I8  `json:"c"`
	}
	in := doc{A: i32(-123456), B: MaxU64, C: MinI8}
	bts, err := json.Marshal(in)
	require.NoError(t, err)
	require.Equal(t, `{"a":-123456,"b":18446744073709551615,"c":-128}`, string(bts))

	var out doc
	require.NoError(t, json.Unmarshal(bts, &out))
	require.Equal(t, in, out)
}

func TestJSONQuoted(t *testing.T) {
	var v I64
	require.NoError(t, json.Unmarshal([]byte(`"-9223372036854775808"`), &v))
	require.Equal(t, MinI64, v)

	var u U32
	require.NoError(t, json.Unmarshal([]byte(`"4294967295"`), &u))
	require.Equal(t, MaxU32, u)

	require.Error(t, json.Unmarshal([]byte(`"nope"`), &v))
	require.Error(t, json.Unmarshal([]byte(`"`), &v))
	require.Error(t, json.Unmarshal([]byte(`4294967296`), &u))
}

func TestTextRoundTrip(t *testing.T) {
	bts, err := i32(-77).MarshalText()
	require.NoError(t, err)
	require.Equal(t, []byte("-77"), bts)

	var v I32
	require.NoError(t, v.UnmarshalText([]byte("-77")))
	require.Equal(t, i32(-77), v)
	require.Error(t, v.UnmarshalText([]byte("abc")))

	var u U16
	require.NoError(t, u.UnmarshalText([]byte("65535")))
	require.Equal(t, MaxU16, u)
	require.Error(t, u.UnmarshalText([]byte("65536")))
}

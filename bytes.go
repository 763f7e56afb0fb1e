package safeint

import (
	"encoding/binary"
	"fmt"
)

// hostBig reports whether the host stores its most significant byte first.
var hostBig = func() bool {
	var buf [2]byte
	binary.NativeEndian.PutUint16(buf[:], 0x0102)
	return buf[0] == 0x01
}()

// toBE returns the value whose in-memory representation is big-endian: a
// no-op on big-endian hosts, a byte swap otherwise. Its own inverse, so it
// doubles as from-big-endian.
func toBE[U unsignedPrim](v U) U {
	if hostBig {
		return v
	}
	return swapBytes(v)
}

func toLE[U unsignedPrim](v U) U {
	if hostBig {
		return swapBytes(v)
	}
	return v
}

func beBytes[U unsignedPrim](v U) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	n := widthOf[U]() / 8
	out := make([]byte, n)
	copy(out, buf[8-n:])
	return out
}

func leBytes[U unsignedPrim](v U) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	n := widthOf[U]() / 8
	out := make([]byte, n)
	copy(out, buf[:n])
	return out
}

func neBytes[U unsignedPrim](v U) []byte {
	if hostBig {
		return beBytes(v)
	}
	return leBytes(v)
}

func checkByteLen[U unsignedPrim](b []byte) {
	if n := widthOf[U]() / 8; uint(len(b)) != n {
		panic(fmt.Sprintf("safeint: byte sequence length %d, need %d", len(b), n))
	}
}

func fromBEBytes[U unsignedPrim](b []byte) U {
	checkByteLen[U](b)
	var buf [8]byte
	copy(buf[8-len(b):], b)
	return U(binary.BigEndian.Uint64(buf[:]))
}

func fromLEBytes[U unsignedPrim](b []byte) U {
	checkByteLen[U](b)
	var buf [8]byte
	copy(buf[:], b)
	return U(binary.LittleEndian.Uint64(buf[:]))
}

func fromNEBytes[U unsignedPrim](b []byte) U {
	if hostBig {
		return fromBEBytes[U](b)
	}
	return fromLEBytes[U](b)
}

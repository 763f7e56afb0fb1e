package safeint

import "math/bits"

// Bit-pattern queries are width-generic: a value is zero-extended into a
// uint64 "pattern" whose low W bits are the two's-complement representation,
// and math/bits does the rest. The sign bit is an ordinary data bit here.

// widthOf returns W, the bit width of U (and of its signed counterpart).
func widthOf[U unsignedPrim]() uint {
	return uint(bits.Len64(uint64(^U(0))))
}

// maskOf returns a uint64 with the low W bits set.
func maskOf[U unsignedPrim]() uint64 {
	return uint64(^U(0))
}

func onesCount[U unsignedPrim](v U) uint {
	return uint(bits.OnesCount64(uint64(v)))
}

func leadingZeros[U unsignedPrim](v U) uint {
	return uint(bits.LeadingZeros64(uint64(v))) - (64 - widthOf[U]())
}

func trailingZeros[U unsignedPrim](v U) uint {
	if v == 0 {
		return widthOf[U]()
	}
	return uint(bits.TrailingZeros64(uint64(v)))
}

func leadingOnes[U unsignedPrim](v U) uint {
	return leadingZeros[U](^v)
}

func trailingOnes[U unsignedPrim](v U) uint {
	return trailingZeros[U](^v)
}

func reverseBits[U unsignedPrim](v U) U {
	return U(bits.Reverse64(uint64(v)) >> (64 - widthOf[U]()))
}

func swapBytes[U unsignedPrim](v U) U {
	return U(bits.ReverseBytes64(uint64(v)) >> (64 - widthOf[U]()))
}

// rotateLeft never fails: the amount is reduced mod W.
func rotateLeft[U unsignedPrim](v U, n uint) U {
	w := widthOf[U]()
	n %= w
	if n == 0 {
		return v
	}
	p := uint64(v)
	return U(((p << n) | (p >> (w - n))) & maskOf[U]())
}

func rotateRight[U unsignedPrim](v U, n uint) U {
	w := widthOf[U]()
	return rotateLeft(v, w-n%w)
}

package safeint

// The arithmetic kernel computes every primitive operation exactly once as a
// (wrapped value, overflowed) pair; the public method shapes on Int and Uint
// reshape that pair into their policy. All helpers here rely on Go's defined
// two's-complement wraparound for +, -, * and unary minus.

type signedPrim interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

type unsignedPrim interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

type anyPrim interface {
	signedPrim | unsignedPrim
}

func maxSigned[T signedPrim, U unsignedPrim]() T { return T(^U(0) >> 1) }
func minSigned[T signedPrim, U unsignedPrim]() T { return ^maxSigned[T, U]() }

func addOverSigned[T signedPrim](a, b T) (T, bool) {
	r := a + b
	return r, (b >= 0) != (r >= a)
}

func addOverUnsigned[U unsignedPrim](a, b U) (U, bool) {
	r := a + b
	return r, r < a
}

func subOverSigned[T signedPrim](a, b T) (T, bool) {
	r := a - b
	return r, (b >= 0) != (r <= a)
}

func subOverUnsigned[U unsignedPrim](a, b U) (U, bool) {
	return a - b, a < b
}

// mulOverSigned detects overflow with divisions against the type bounds
// rather than widening, so the same code serves every width including 64-bit.
func mulOverSigned[T signedPrim, U unsignedPrim](a, b T) (T, bool) {
	max, min := maxSigned[T, U](), minSigned[T, U]()
	over := (a > 0 && b > 0 && a > max/b) ||
		(a > 0 && b <= 0 && b < min/a) ||
		(a <= 0 && b > 0 && a < min/b) ||
		(a < 0 && b <= 0 && b < max/a)
	return a * b, over
}

func mulOverUnsigned[U unsignedPrim](a, b U) (U, bool) {
	over := a != 0 && b != 0 && a > ^U(0)/b
	return a * b, over
}

// negOverSigned wraps the minimum value back onto itself.
func negOverSigned[T signedPrim, U unsignedPrim](a T) (T, bool) {
	if a == minSigned[T, U]() {
		return a, true
	}
	return -a, false
}

func absOverSigned[T signedPrim, U unsignedPrim](a T) (T, bool) {
	if a == minSigned[T, U]() {
		return a, true
	}
	if a < 0 {
		return -a, false
	}
	return a, false
}

// unsignedMag returns the magnitude of a as the same-width unsigned type.
// Total, including for the minimum value.
func unsignedMag[T signedPrim, U unsignedPrim](a T) U {
	if a < 0 {
		return -U(a)
	}
	return U(a)
}

func absDiffSigned[T signedPrim, U unsignedPrim](a, b T) U {
	// Subtracting the two's-complement bit patterns in the unsigned domain
	// yields the exact magnitude even when a and b span the full range.
	if a >= b {
		return U(a) - U(b)
	}
	return U(b) - U(a)
}

func absDiffUnsigned[U unsignedPrim](a, b U) U {
	if a >= b {
		return a - b
	}
	return b - a
}

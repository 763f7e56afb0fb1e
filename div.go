package safeint

// Division callers check the zero divisor before reaching this file; the
// kernel is only concerned with the one representability hazard, Min / -1.
// Go itself defines Min / -1 == Min and Min % -1 == 0, which are exactly the
// wrapped results, so no special value computation is needed.

func divOverflowsSigned[T signedPrim, U unsignedPrim](a, b T) bool {
	return a == minSigned[T, U]() && b == -1
}

// divEuclidSigned computes the Euclidean quotient: the unique q such that
// a == q*b + r with 0 <= r < |b|. Truncating division rounds toward zero, so
// a negative remainder means the quotient must step one unit toward the sign
// of the divisor.
func divEuclidSigned[T signedPrim](a, b T) T {
	q := a / b
	if a%b >= 0 {
		return q
	}
	if b > 0 {
		return q - 1
	}
	return q + 1
}

func remEuclidSigned[T signedPrim](a, b T) T {
	r := a % b
	if r < 0 {
		if b < 0 {
			return r - b
		}
		return r + b
	}
	return r
}

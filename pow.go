package safeint

// powOver raises base to exp by squaring, threading the supplied
// overflow-detecting multiply through every squaring and accumulation step.
// Overflow anywhere along the way marks the whole result, even if later
// steps would have wrapped back into range. exp == 0 is always 1, without
// overflow, including for base == 0.
func powOver[T anyPrim](base T, exp uint, mul func(T, T) (T, bool)) (T, bool) {
	if exp == 0 {
		return 1, false
	}
	acc := T(1)
	over := false
	var o bool
	for exp > 1 {
		if exp&1 == 1 {
			acc, o = mul(acc, base)
			over = over || o
		}
		exp /= 2
		base, o = mul(base, base)
		over = over || o
	}
	r, o := mul(acc, base)
	return r, over || o
}

// log2Of returns the floor base-2 logarithm, with ok == false for zero.
func log2Of[U unsignedPrim](v U) (uint, bool) {
	if v == 0 {
		return 0, false
	}
	return widthOf[U]() - 1 - leadingZeros(v), true
}

// logOf returns the floor logarithm in an arbitrary base by repeated
// division. Exact, and consistent with log2Of/log10Of at their bases.
// ok == false for a zero operand or a base below 2.
func logOf[U unsignedPrim](v, base U) (uint, bool) {
	if v == 0 || base <= 1 {
		return 0, false
	}
	var n uint
	for v >= base {
		v /= base
		n++
	}
	return n, true
}

func log10Of[U unsignedPrim](v U) (uint, bool) {
	return logOf(v, 10)
}

// oneLessThanNextPow2 saturates at the type maximum instead of overflowing,
// and maps 0 and 1 to 0.
func oneLessThanNextPow2[U unsignedPrim](v U) U {
	if v <= 1 {
		return 0
	}
	return ^U(0) >> leadingZeros(v-1)
}

// nextPow2Over returns the smallest power of two >= v. For v beyond the
// largest representable power of two the wrapped result is 0.
func nextPow2Over[U unsignedPrim](v U) (U, bool) {
	return addOverUnsigned(oneLessThanNextPow2(v), 1)
}

package safeint

// Shifts report overflow when the requested amount is at least the bit width.
// The masking shapes (Wrapping*, Overflowing*) reduce the amount mod W first;
// the masked shift itself can't overflow a register, but Overflowing* still
// reports the original out-of-range amount. Signed right shifts operate on
// the bit pattern without sign extension, like the unsigned form.

func shlOverUnsigned[U unsignedPrim](v U, n uint) (U, bool) {
	w := widthOf[U]()
	over := n >= w
	if over {
		n &= w - 1
	}
	return v << n, over
}

func shrOverUnsigned[U unsignedPrim](v U, n uint) (U, bool) {
	w := widthOf[U]()
	over := n >= w
	if over {
		n &= w - 1
	}
	return v >> n, over
}

func shlOverSigned[T signedPrim, U unsignedPrim](v T, n uint) (T, bool) {
	r, over := shlOverUnsigned(U(v), n)
	return T(r), over
}

func shrOverSigned[T signedPrim, U unsignedPrim](v T, n uint) (T, bool) {
	r, over := shrOverUnsigned(U(v), n)
	return T(r), over
}

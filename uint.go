package safeint

// Uint is the unsigned counterpart of Int: a fixed-width unsigned integer
// with the same four overflow policies. Sign-specific operations (Abs, Neg,
// Sign) do not exist here; negating a nonzero unsigned value always
// overflows, so no negation family is exposed at all.
//
// The supported surface is the concrete aliases U8, U16, U32, U64 and Usize.
type Uint[U unsignedPrim] struct {
	v U
}

// Raw returns the underlying primitive value.
func (u Uint[U]) Raw() U { return u.v }

// Uint64 widens to uint64. Lossless for every width in this package.
func (u Uint[U]) Uint64() uint64 { return uint64(u.v) }

func (u Uint[U]) IsZero() bool { return u.v == 0 }

// Cmp returns -1 if u < n, 0 if u == n, and 1 if u > n.
func (u Uint[U]) Cmp(n Uint[U]) int {
	if u.v < n.v {
		return -1
	} else if u.v > n.v {
		return 1
	}
	return 0
}

func (u Uint[U]) Equal(n Uint[U]) bool { return u.v == n.v }

// Larger returns the greater of u and n.
func (u Uint[U]) Larger(n Uint[U]) Uint[U] {
	if u.v > n.v {
		return u
	}
	return n
}

// Smaller returns the lesser of u and n.
func (u Uint[U]) Smaller(n Uint[U]) Uint[U] {
	if u.v < n.v {
		return u
	}
	return n
}

// Add returns u + n, panicking with ErrOverflow if the sum does not fit.
func (u Uint[U]) Add(n Uint[U]) Uint[U] {
	r, over := addOverUnsigned(u.v, n.v)
	if over {
		panic(ErrOverflow)
	}
	return Uint[U]{r}
}

func (u Uint[U]) CheckedAdd(n Uint[U]) Option[Uint[U]] {
	r, over := addOverUnsigned(u.v, n.v)
	if over {
		return None[Uint[U]]()
	}
	return Some(Uint[U]{r})
}

func (u Uint[U]) WrappingAdd(n Uint[U]) Uint[U] {
	r, _ := addOverUnsigned(u.v, n.v)
	return Uint[U]{r}
}

func (u Uint[U]) OverflowingAdd(n Uint[U]) (Uint[U], bool) {
	r, over := addOverUnsigned(u.v, n.v)
	return Uint[U]{r}, over
}

func (u Uint[U]) SaturatingAdd(n Uint[U]) Uint[U] {
	r, over := addOverUnsigned(u.v, n.v)
	if over {
		return Uint[U]{^U(0)}
	}
	return Uint[U]{r}
}

// Sub returns u - n, panicking with ErrOverflow when n > u.
func (u Uint[U]) Sub(n Uint[U]) Uint[U] {
	r, over := subOverUnsigned(u.v, n.v)
	if over {
		panic(ErrOverflow)
	}
	return Uint[U]{r}
}

func (u Uint[U]) CheckedSub(n Uint[U]) Option[Uint[U]] {
	r, over := subOverUnsigned(u.v, n.v)
	if over {
		return None[Uint[U]]()
	}
	return Some(Uint[U]{r})
}

func (u Uint[U]) WrappingSub(n Uint[U]) Uint[U] {
	r, _ := subOverUnsigned(u.v, n.v)
	return Uint[U]{r}
}

func (u Uint[U]) OverflowingSub(n Uint[U]) (Uint[U], bool) {
	r, over := subOverUnsigned(u.v, n.v)
	return Uint[U]{r}, over
}

// SaturatingSub clamps to zero.
func (u Uint[U]) SaturatingSub(n Uint[U]) Uint[U] {
	r, over := subOverUnsigned(u.v, n.v)
	if over {
		return Uint[U]{0}
	}
	return Uint[U]{r}
}

// Mul returns u * n, panicking with ErrOverflow if the product does not fit.
func (u Uint[U]) Mul(n Uint[U]) Uint[U] {
	r, over := mulOverUnsigned(u.v, n.v)
	if over {
		panic(ErrOverflow)
	}
	return Uint[U]{r}
}

func (u Uint[U]) CheckedMul(n Uint[U]) Option[Uint[U]] {
	r, over := mulOverUnsigned(u.v, n.v)
	if over {
		return None[Uint[U]]()
	}
	return Some(Uint[U]{r})
}

func (u Uint[U]) WrappingMul(n Uint[U]) Uint[U] {
	r, _ := mulOverUnsigned(u.v, n.v)
	return Uint[U]{r}
}

func (u Uint[U]) OverflowingMul(n Uint[U]) (Uint[U], bool) {
	r, over := mulOverUnsigned(u.v, n.v)
	return Uint[U]{r}, over
}

func (u Uint[U]) SaturatingMul(n Uint[U]) Uint[U] {
	r, over := mulOverUnsigned(u.v, n.v)
	if over {
		return Uint[U]{^U(0)}
	}
	return Uint[U]{r}
}

// Div returns u / n, panicking with ErrDivideByZero for a zero divisor.
// Unsigned division cannot overflow.
func (u Uint[U]) Div(n Uint[U]) Uint[U] {
	if n.v == 0 {
		panic(ErrDivideByZero)
	}
	return Uint[U]{u.v / n.v}
}

func (u Uint[U]) CheckedDiv(n Uint[U]) Option[Uint[U]] {
	if n.v == 0 {
		return None[Uint[U]]()
	}
	return Some(Uint[U]{u.v / n.v})
}

func (u Uint[U]) WrappingDiv(n Uint[U]) Uint[U] { return u.Div(n) }

func (u Uint[U]) OverflowingDiv(n Uint[U]) (Uint[U], bool) {
	return u.Div(n), false
}

func (u Uint[U]) SaturatingDiv(n Uint[U]) Uint[U] { return u.Div(n) }

// Rem returns u % n, panicking with ErrDivideByZero for a zero divisor.
func (u Uint[U]) Rem(n Uint[U]) Uint[U] {
	if n.v == 0 {
		panic(ErrDivideByZero)
	}
	return Uint[U]{u.v % n.v}
}

func (u Uint[U]) CheckedRem(n Uint[U]) Option[Uint[U]] {
	if n.v == 0 {
		return None[Uint[U]]()
	}
	return Some(Uint[U]{u.v % n.v})
}

func (u Uint[U]) WrappingRem(n Uint[U]) Uint[U] { return u.Rem(n) }

func (u Uint[U]) OverflowingRem(n Uint[U]) (Uint[U], bool) {
	return u.Rem(n), false
}

// DivEuclid equals Div for unsigned values; the Euclidean law holds with the
// truncated quotient because remainders are already nonnegative.
func (u Uint[U]) DivEuclid(n Uint[U]) Uint[U] { return u.Div(n) }
func (u Uint[U]) RemEuclid(n Uint[U]) Uint[U] { return u.Rem(n) }

// AbsDiff returns the magnitude of the difference; symmetric in its
// operands and never overflows.
func (u Uint[U]) AbsDiff(n Uint[U]) Uint[U] {
	return Uint[U]{absDiffUnsigned(u.v, n.v)}
}

// Pow raises u to exp by squaring, panicking with ErrOverflow if any
// intermediate product leaves the range.
func (u Uint[U]) Pow(exp uint) Uint[U] {
	r, over := powOver(u.v, exp, mulOverUnsigned[U])
	if over {
		panic(ErrOverflow)
	}
	return Uint[U]{r}
}

func (u Uint[U]) CheckedPow(exp uint) Option[Uint[U]] {
	r, over := powOver(u.v, exp, mulOverUnsigned[U])
	if over {
		return None[Uint[U]]()
	}
	return Some(Uint[U]{r})
}

func (u Uint[U]) WrappingPow(exp uint) Uint[U] {
	r, _ := powOver(u.v, exp, mulOverUnsigned[U])
	return Uint[U]{r}
}

func (u Uint[U]) OverflowingPow(exp uint) (Uint[U], bool) {
	r, over := powOver(u.v, exp, mulOverUnsigned[U])
	return Uint[U]{r}, over
}

// Shl shifts left by n bits, panicking with ErrShiftAmount when n is at
// least the bit width.
func (u Uint[U]) Shl(n uint) Uint[U] {
	r, over := shlOverUnsigned(u.v, n)
	if over {
		panic(ErrShiftAmount)
	}
	return Uint[U]{r}
}

func (u Uint[U]) CheckedShl(n uint) Option[Uint[U]] {
	r, over := shlOverUnsigned(u.v, n)
	if over {
		return None[Uint[U]]()
	}
	return Some(Uint[U]{r})
}

// WrappingShl masks the amount to n mod W before shifting.
func (u Uint[U]) WrappingShl(n uint) Uint[U] {
	r, _ := shlOverUnsigned(u.v, n)
	return Uint[U]{r}
}

// OverflowingShl shifts by n mod W and reports whether the original amount
// was at least the bit width.
func (u Uint[U]) OverflowingShl(n uint) (Uint[U], bool) {
	r, over := shlOverUnsigned(u.v, n)
	return Uint[U]{r}, over
}

// Shr shifts right by n bits, panicking with ErrShiftAmount when n is at
// least the bit width.
func (u Uint[U]) Shr(n uint) Uint[U] {
	r, over := shrOverUnsigned(u.v, n)
	if over {
		panic(ErrShiftAmount)
	}
	return Uint[U]{r}
}

func (u Uint[U]) CheckedShr(n uint) Option[Uint[U]] {
	r, over := shrOverUnsigned(u.v, n)
	if over {
		return None[Uint[U]]()
	}
	return Some(Uint[U]{r})
}

func (u Uint[U]) WrappingShr(n uint) Uint[U] {
	r, _ := shrOverUnsigned(u.v, n)
	return Uint[U]{r}
}

func (u Uint[U]) OverflowingShr(n uint) (Uint[U], bool) {
	r, over := shrOverUnsigned(u.v, n)
	return Uint[U]{r}, over
}

// RotateLeft rotates the bit pattern by n mod W. Always well-defined;
// RotateLeft(n) followed by RotateRight(n) is the identity.
func (u Uint[U]) RotateLeft(n uint) Uint[U] {
	return Uint[U]{rotateLeft(u.v, n)}
}

func (u Uint[U]) RotateRight(n uint) Uint[U] {
	return Uint[U]{rotateRight(u.v, n)}
}

func (u Uint[U]) CountOnes() uint     { return onesCount(u.v) }
func (u Uint[U]) CountZeros() uint    { return widthOf[U]() - onesCount(u.v) }
func (u Uint[U]) LeadingZeros() uint  { return leadingZeros(u.v) }
func (u Uint[U]) LeadingOnes() uint   { return leadingOnes(u.v) }
func (u Uint[U]) TrailingZeros() uint { return trailingZeros(u.v) }
func (u Uint[U]) TrailingOnes() uint  { return trailingOnes(u.v) }

func (u Uint[U]) ReverseBits() Uint[U] {
	return Uint[U]{reverseBits(u.v)}
}

// SwapBytes reverses the byte order unconditionally.
func (u Uint[U]) SwapBytes() Uint[U] {
	return Uint[U]{swapBytes(u.v)}
}

// ToBE converts to big-endian byte order: a no-op on big-endian hosts, a
// byte swap otherwise. FromBE is the inverse and the same transformation.
func (u Uint[U]) ToBE() Uint[U]   { return Uint[U]{toBE(u.v)} }
func (u Uint[U]) FromBE() Uint[U] { return u.ToBE() }
func (u Uint[U]) ToLE() Uint[U]   { return Uint[U]{toLE(u.v)} }
func (u Uint[U]) FromLE() Uint[U] { return u.ToLE() }

// ToNE and FromNE are identities, present for symmetry with ToBE/ToLE.
func (u Uint[U]) ToNE() Uint[U]   { return u }
func (u Uint[U]) FromNE() Uint[U] { return u }

func (u Uint[U]) ToBEBytes() []byte { return beBytes(u.v) }
func (u Uint[U]) ToLEBytes() []byte { return leBytes(u.v) }
func (u Uint[U]) ToNEBytes() []byte { return neBytes(u.v) }

// Log2 returns the floor base-2 logarithm, panicking with ErrLogArgument
// for zero.
func (u Uint[U]) Log2() uint {
	n, ok := log2Of(u.v)
	if !ok {
		panic(ErrLogArgument)
	}
	return n
}

func (u Uint[U]) CheckedLog2() Option[uint] {
	n, ok := log2Of(u.v)
	if !ok {
		return None[uint]()
	}
	return Some(n)
}

// Log10 returns the floor base-10 logarithm, panicking with ErrLogArgument
// for zero.
func (u Uint[U]) Log10() uint {
	n, ok := log10Of(u.v)
	if !ok {
		panic(ErrLogArgument)
	}
	return n
}

func (u Uint[U]) CheckedLog10() Option[uint] {
	n, ok := log10Of(u.v)
	if !ok {
		return None[uint]()
	}
	return Some(n)
}

// Log returns the floor logarithm in an arbitrary base, panicking with
// ErrLogArgument for a zero operand or a base below 2.
func (u Uint[U]) Log(base Uint[U]) uint {
	n, ok := logOf(u.v, base.v)
	if !ok {
		panic(ErrLogArgument)
	}
	return n
}

func (u Uint[U]) CheckedLog(base Uint[U]) Option[uint] {
	n, ok := logOf(u.v, base.v)
	if !ok {
		return None[uint]()
	}
	return Some(n)
}

// IsPowerOfTwo reports whether exactly one bit is set.
func (u Uint[U]) IsPowerOfTwo() bool {
	return u.v != 0 && u.v&(u.v-1) == 0
}

// NextPowerOfTwo returns the smallest power of two greater than or equal to
// u, panicking with ErrOverflow when that power is not representable.
func (u Uint[U]) NextPowerOfTwo() Uint[U] {
	r, over := nextPow2Over(u.v)
	if over {
		panic(ErrOverflow)
	}
	return Uint[U]{r}
}

func (u Uint[U]) CheckedNextPowerOfTwo() Option[Uint[U]] {
	r, over := nextPow2Over(u.v)
	if over {
		return None[Uint[U]]()
	}
	return Some(Uint[U]{r})
}

// WrappingNextPowerOfTwo wraps to zero when the next power of two is not
// representable.
func (u Uint[U]) WrappingNextPowerOfTwo() Uint[U] {
	r, _ := nextPow2Over(u.v)
	return Uint[U]{r}
}

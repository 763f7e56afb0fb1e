package safeint

// Int is a fixed-width signed integer with explicit overflow policies. T is
// the underlying signed primitive and U must be the unsigned primitive of the
// same width; the two are paired once by the package's concrete aliases (I8,
// I16, I32, I64, Isize), which are the supported surface.
//
// Every fallible operation comes in up to five shapes built from one kernel
// computation: the plain method panics on failure, Checked* returns an
// Option, Wrapping* returns the mod-2^W result, Overflowing* returns the
// wrapped result with an overflow flag, and Saturating* clamps to Min or Max
// in the direction of the true result.
//
// Int is a value type; all operations return new values and no method
// mutates the receiver, so values are safe to share between goroutines.
type Int[T signedPrim, U unsignedPrim] struct {
	v T
}

// Raw returns the underlying primitive value.
func (i Int[T, U]) Raw() T { return i.v }

// Int64 widens to int64. Lossless for every width in this package.
func (i Int[T, U]) Int64() int64 { return int64(i.v) }

// AsUint performs a direct cast to the same-width unsigned type, which will
// interpret the bit pattern as two's complement.
func (i Int[T, U]) AsUint() Uint[U] { return Uint[U]{U(i.v)} }

func (i Int[T, U]) IsZero() bool     { return i.v == 0 }
func (i Int[T, U]) IsNegative() bool { return i.v < 0 }
func (i Int[T, U]) IsPositive() bool { return i.v > 0 }

// Sign returns -1 for negative values, 0 for zero, and 1 for positive values.
func (i Int[T, U]) Sign() int {
	if i.v < 0 {
		return -1
	} else if i.v > 0 {
		return 1
	}
	return 0
}

// Cmp returns -1 if i < n, 0 if i == n, and 1 if i > n.
func (i Int[T, U]) Cmp(n Int[T, U]) int {
	if i.v < n.v {
		return -1
	} else if i.v > n.v {
		return 1
	}
	return 0
}

func (i Int[T, U]) Equal(n Int[T, U]) bool { return i.v == n.v }

// Larger returns the greater of i and n.
func (i Int[T, U]) Larger(n Int[T, U]) Int[T, U] {
	if i.v > n.v {
		return i
	}
	return n
}

// Smaller returns the lesser of i and n.
func (i Int[T, U]) Smaller(n Int[T, U]) Int[T, U] {
	if i.v < n.v {
		return i
	}
	return n
}

// Add returns i + n, panicking with ErrOverflow if the sum does not fit.
func (i Int[T, U]) Add(n Int[T, U]) Int[T, U] {
	r, over := addOverSigned(i.v, n.v)
	if over {
		panic(ErrOverflow)
	}
	return Int[T, U]{r}
}

func (i Int[T, U]) CheckedAdd(n Int[T, U]) Option[Int[T, U]] {
	r, over := addOverSigned(i.v, n.v)
	if over {
		return None[Int[T, U]]()
	}
	return Some(Int[T, U]{r})
}

func (i Int[T, U]) WrappingAdd(n Int[T, U]) Int[T, U] {
	r, _ := addOverSigned(i.v, n.v)
	return Int[T, U]{r}
}

func (i Int[T, U]) OverflowingAdd(n Int[T, U]) (Int[T, U], bool) {
	r, over := addOverSigned(i.v, n.v)
	return Int[T, U]{r}, over
}

func (i Int[T, U]) SaturatingAdd(n Int[T, U]) Int[T, U] {
	r, over := addOverSigned(i.v, n.v)
	if !over {
		return Int[T, U]{r}
	}
	if n.v >= 0 {
		return Int[T, U]{maxSigned[T, U]()}
	}
	return Int[T, U]{minSigned[T, U]()}
}

// Sub returns i - n, panicking with ErrOverflow if the difference does not fit.
func (i Int[T, U]) Sub(n Int[T, U]) Int[T, U] {
	r, over := subOverSigned(i.v, n.v)
	if over {
		panic(ErrOverflow)
	}
	return Int[T, U]{r}
}

func (i Int[T, U]) CheckedSub(n Int[T, U]) Option[Int[T, U]] {
	r, over := subOverSigned(i.v, n.v)
	if over {
		return None[Int[T, U]]()
	}
	return Some(Int[T, U]{r})
}

func (i Int[T, U]) WrappingSub(n Int[T, U]) Int[T, U] {
	r, _ := subOverSigned(i.v, n.v)
	return Int[T, U]{r}
}

func (i Int[T, U]) OverflowingSub(n Int[T, U]) (Int[T, U], bool) {
	r, over := subOverSigned(i.v, n.v)
	return Int[T, U]{r}, over
}

func (i Int[T, U]) SaturatingSub(n Int[T, U]) Int[T, U] {
	r, over := subOverSigned(i.v, n.v)
	if !over {
		return Int[T, U]{r}
	}
	if n.v < 0 {
		return Int[T, U]{maxSigned[T, U]()}
	}
	return Int[T, U]{minSigned[T, U]()}
}

// Mul returns i * n, panicking with ErrOverflow if the product does not fit.
func (i Int[T, U]) Mul(n Int[T, U]) Int[T, U] {
	r, over := mulOverSigned[T, U](i.v, n.v)
	if over {
		panic(ErrOverflow)
	}
	return Int[T, U]{r}
}

func (i Int[T, U]) CheckedMul(n Int[T, U]) Option[Int[T, U]] {
	r, over := mulOverSigned[T, U](i.v, n.v)
	if over {
		return None[Int[T, U]]()
	}
	return Some(Int[T, U]{r})
}

func (i Int[T, U]) WrappingMul(n Int[T, U]) Int[T, U] {
	r, _ := mulOverSigned[T, U](i.v, n.v)
	return Int[T, U]{r}
}

func (i Int[T, U]) OverflowingMul(n Int[T, U]) (Int[T, U], bool) {
	r, over := mulOverSigned[T, U](i.v, n.v)
	return Int[T, U]{r}, over
}

func (i Int[T, U]) SaturatingMul(n Int[T, U]) Int[T, U] {
	r, over := mulOverSigned[T, U](i.v, n.v)
	if !over {
		return Int[T, U]{r}
	}
	if (i.v > 0) == (n.v > 0) {
		return Int[T, U]{maxSigned[T, U]()}
	}
	return Int[T, U]{minSigned[T, U]()}
}

// Div returns the truncated quotient i / n. It panics with ErrDivideByZero
// for a zero divisor and ErrOverflow for Min / -1, whose true quotient is
// not representable.
func (i Int[T, U]) Div(n Int[T, U]) Int[T, U] {
	if n.v == 0 {
		panic(ErrDivideByZero)
	}
	if divOverflowsSigned[T, U](i.v, n.v) {
		panic(ErrOverflow)
	}
	return Int[T, U]{i.v / n.v}
}

func (i Int[T, U]) CheckedDiv(n Int[T, U]) Option[Int[T, U]] {
	if n.v == 0 || divOverflowsSigned[T, U](i.v, n.v) {
		return None[Int[T, U]]()
	}
	return Some(Int[T, U]{i.v / n.v})
}

// WrappingDiv wraps Min / -1 back to Min. A zero divisor still panics;
// there is no wrapped value to return for it.
func (i Int[T, U]) WrappingDiv(n Int[T, U]) Int[T, U] {
	if n.v == 0 {
		panic(ErrDivideByZero)
	}
	return Int[T, U]{i.v / n.v}
}

func (i Int[T, U]) OverflowingDiv(n Int[T, U]) (Int[T, U], bool) {
	if n.v == 0 {
		panic(ErrDivideByZero)
	}
	return Int[T, U]{i.v / n.v}, divOverflowsSigned[T, U](i.v, n.v)
}

func (i Int[T, U]) SaturatingDiv(n Int[T, U]) Int[T, U] {
	if n.v == 0 {
		panic(ErrDivideByZero)
	}
	if divOverflowsSigned[T, U](i.v, n.v) {
		return Int[T, U]{maxSigned[T, U]()}
	}
	return Int[T, U]{i.v / n.v}
}

// Rem returns the truncated remainder i % n, with the same failure cases
// as Div. The wrapped remainder of Min % -1 is 0.
func (i Int[T, U]) Rem(n Int[T, U]) Int[T, U] {
	if n.v == 0 {
		panic(ErrDivideByZero)
	}
	if divOverflowsSigned[T, U](i.v, n.v) {
		panic(ErrOverflow)
	}
	return Int[T, U]{i.v % n.v}
}

func (i Int[T, U]) CheckedRem(n Int[T, U]) Option[Int[T, U]] {
	if n.v == 0 || divOverflowsSigned[T, U](i.v, n.v) {
		return None[Int[T, U]]()
	}
	return Some(Int[T, U]{i.v % n.v})
}

func (i Int[T, U]) WrappingRem(n Int[T, U]) Int[T, U] {
	if n.v == 0 {
		panic(ErrDivideByZero)
	}
	return Int[T, U]{i.v % n.v}
}

func (i Int[T, U]) OverflowingRem(n Int[T, U]) (Int[T, U], bool) {
	if n.v == 0 {
		panic(ErrDivideByZero)
	}
	return Int[T, U]{i.v % n.v}, divOverflowsSigned[T, U](i.v, n.v)
}

// DivEuclid returns the Euclidean quotient, chosen so that the remainder is
// always in [0, |n|). Panics like Div.
func (i Int[T, U]) DivEuclid(n Int[T, U]) Int[T, U] {
	if n.v == 0 {
		panic(ErrDivideByZero)
	}
	if divOverflowsSigned[T, U](i.v, n.v) {
		panic(ErrOverflow)
	}
	return Int[T, U]{divEuclidSigned(i.v, n.v)}
}

func (i Int[T, U]) CheckedDivEuclid(n Int[T, U]) Option[Int[T, U]] {
	if n.v == 0 || divOverflowsSigned[T, U](i.v, n.v) {
		return None[Int[T, U]]()
	}
	return Some(Int[T, U]{divEuclidSigned(i.v, n.v)})
}

func (i Int[T, U]) WrappingDivEuclid(n Int[T, U]) Int[T, U] {
	if n.v == 0 {
		panic(ErrDivideByZero)
	}
	return Int[T, U]{divEuclidSigned(i.v, n.v)}
}

func (i Int[T, U]) OverflowingDivEuclid(n Int[T, U]) (Int[T, U], bool) {
	if n.v == 0 {
		panic(ErrDivideByZero)
	}
	return Int[T, U]{divEuclidSigned(i.v, n.v)}, divOverflowsSigned[T, U](i.v, n.v)
}

// RemEuclid returns the least nonnegative remainder, satisfying
// i == i.DivEuclid(n) * n + i.RemEuclid(n). Panics like Rem.
func (i Int[T, U]) RemEuclid(n Int[T, U]) Int[T, U] {
	if n.v == 0 {
		panic(ErrDivideByZero)
	}
	if divOverflowsSigned[T, U](i.v, n.v) {
		panic(ErrOverflow)
	}
	return Int[T, U]{remEuclidSigned(i.v, n.v)}
}

func (i Int[T, U]) CheckedRemEuclid(n Int[T, U]) Option[Int[T, U]] {
	if n.v == 0 || divOverflowsSigned[T, U](i.v, n.v) {
		return None[Int[T, U]]()
	}
	return Some(Int[T, U]{remEuclidSigned(i.v, n.v)})
}

func (i Int[T, U]) WrappingRemEuclid(n Int[T, U]) Int[T, U] {
	if n.v == 0 {
		panic(ErrDivideByZero)
	}
	return Int[T, U]{remEuclidSigned(i.v, n.v)}
}

func (i Int[T, U]) OverflowingRemEuclid(n Int[T, U]) (Int[T, U], bool) {
	if n.v == 0 {
		panic(ErrDivideByZero)
	}
	return Int[T, U]{remEuclidSigned(i.v, n.v)}, divOverflowsSigned[T, U](i.v, n.v)
}

// Neg returns -i, panicking with ErrAbsArgument for the minimum value.
func (i Int[T, U]) Neg() Int[T, U] {
	r, over := negOverSigned[T, U](i.v)
	if over {
		panic(ErrAbsArgument)
	}
	return Int[T, U]{r}
}

func (i Int[T, U]) CheckedNeg() Option[Int[T, U]] {
	r, over := negOverSigned[T, U](i.v)
	if over {
		return None[Int[T, U]]()
	}
	return Some(Int[T, U]{r})
}

// WrappingNeg of the minimum value yields the minimum value.
func (i Int[T, U]) WrappingNeg() Int[T, U] {
	r, _ := negOverSigned[T, U](i.v)
	return Int[T, U]{r}
}

func (i Int[T, U]) OverflowingNeg() (Int[T, U], bool) {
	r, over := negOverSigned[T, U](i.v)
	return Int[T, U]{r}, over
}

// SaturatingNeg of the minimum value yields the maximum value.
func (i Int[T, U]) SaturatingNeg() Int[T, U] {
	r, over := negOverSigned[T, U](i.v)
	if over {
		return Int[T, U]{maxSigned[T, U]()}
	}
	return Int[T, U]{r}
}

// Abs returns |i|, panicking with ErrAbsArgument for the minimum value.
func (i Int[T, U]) Abs() Int[T, U] {
	r, over := absOverSigned[T, U](i.v)
	if over {
		panic(ErrAbsArgument)
	}
	return Int[T, U]{r}
}

func (i Int[T, U]) CheckedAbs() Option[Int[T, U]] {
	r, over := absOverSigned[T, U](i.v)
	if over {
		return None[Int[T, U]]()
	}
	return Some(Int[T, U]{r})
}

func (i Int[T, U]) WrappingAbs() Int[T, U] {
	r, _ := absOverSigned[T, U](i.v)
	return Int[T, U]{r}
}

func (i Int[T, U]) OverflowingAbs() (Int[T, U], bool) {
	r, over := absOverSigned[T, U](i.v)
	return Int[T, U]{r}, over
}

func (i Int[T, U]) SaturatingAbs() Int[T, U] {
	r, over := absOverSigned[T, U](i.v)
	if over {
		return Int[T, U]{maxSigned[T, U]()}
	}
	return Int[T, U]{r}
}

// UnsignedAbs returns the magnitude as the same-width unsigned type. Unlike
// Abs it is total: the minimum value maps to its exact magnitude.
func (i Int[T, U]) UnsignedAbs() Uint[U] {
	return Uint[U]{unsignedMag[T, U](i.v)}
}

// AbsDiff returns |i - n| as the unsigned type. Never overflows, even when
// the operands span the full signed range.
func (i Int[T, U]) AbsDiff(n Int[T, U]) Uint[U] {
	return Uint[U]{absDiffSigned[T, U](i.v, n.v)}
}

// Pow raises i to exp by squaring, panicking with ErrOverflow if any
// intermediate product leaves the range.
func (i Int[T, U]) Pow(exp uint) Int[T, U] {
	r, over := powOver(i.v, exp, mulOverSigned[T, U])
	if over {
		panic(ErrOverflow)
	}
	return Int[T, U]{r}
}

func (i Int[T, U]) CheckedPow(exp uint) Option[Int[T, U]] {
	r, over := powOver(i.v, exp, mulOverSigned[T, U])
	if over {
		return None[Int[T, U]]()
	}
	return Some(Int[T, U]{r})
}

func (i Int[T, U]) WrappingPow(exp uint) Int[T, U] {
	r, _ := powOver(i.v, exp, mulOverSigned[T, U])
	return Int[T, U]{r}
}

func (i Int[T, U]) OverflowingPow(exp uint) (Int[T, U], bool) {
	r, over := powOver(i.v, exp, mulOverSigned[T, U])
	return Int[T, U]{r}, over
}

// Shl shifts the bit pattern left by n bits, panicking with ErrShiftAmount
// when n is at least the bit width.
func (i Int[T, U]) Shl(n uint) Int[T, U] {
	r, over := shlOverSigned[T, U](i.v, n)
	if over {
		panic(ErrShiftAmount)
	}
	return Int[T, U]{r}
}

func (i Int[T, U]) CheckedShl(n uint) Option[Int[T, U]] {
	r, over := shlOverSigned[T, U](i.v, n)
	if over {
		return None[Int[T, U]]()
	}
	return Some(Int[T, U]{r})
}

// WrappingShl masks the amount to n mod W before shifting.
func (i Int[T, U]) WrappingShl(n uint) Int[T, U] {
	r, _ := shlOverSigned[T, U](i.v, n)
	return Int[T, U]{r}
}

// OverflowingShl shifts by n mod W and reports whether the original amount
// was at least the bit width.
func (i Int[T, U]) OverflowingShl(n uint) (Int[T, U], bool) {
	r, over := shlOverSigned[T, U](i.v, n)
	return Int[T, U]{r}, over
}

// Shr shifts the bit pattern right by n bits without sign extension,
// panicking with ErrShiftAmount when n is at least the bit width.
func (i Int[T, U]) Shr(n uint) Int[T, U] {
	r, over := shrOverSigned[T, U](i.v, n)
	if over {
		panic(ErrShiftAmount)
	}
	return Int[T, U]{r}
}

func (i Int[T, U]) CheckedShr(n uint) Option[Int[T, U]] {
	r, over := shrOverSigned[T, U](i.v, n)
	if over {
		return None[Int[T, U]]()
	}
	return Some(Int[T, U]{r})
}

func (i Int[T, U]) WrappingShr(n uint) Int[T, U] {
	r, _ := shrOverSigned[T, U](i.v, n)
	return Int[T, U]{r}
}

func (i Int[T, U]) OverflowingShr(n uint) (Int[T, U], bool) {
	r, over := shrOverSigned[T, U](i.v, n)
	return Int[T, U]{r}, over
}

// RotateLeft rotates the bit pattern by n mod W. Always well-defined;
// RotateLeft(n) followed by RotateRight(n) is the identity.
func (i Int[T, U]) RotateLeft(n uint) Int[T, U] {
	return Int[T, U]{T(rotateLeft(U(i.v), n))}
}

func (i Int[T, U]) RotateRight(n uint) Int[T, U] {
	return Int[T, U]{T(rotateRight(U(i.v), n))}
}

// Bit-pattern queries treat the sign bit as a normal data bit: -1 has
// LeadingOnes == W.
func (i Int[T, U]) CountOnes() uint     { return onesCount(U(i.v)) }
func (i Int[T, U]) CountZeros() uint    { return widthOf[U]() - onesCount(U(i.v)) }
func (i Int[T, U]) LeadingZeros() uint  { return leadingZeros(U(i.v)) }
func (i Int[T, U]) LeadingOnes() uint   { return leadingOnes(U(i.v)) }
func (i Int[T, U]) TrailingZeros() uint { return trailingZeros(U(i.v)) }
func (i Int[T, U]) TrailingOnes() uint  { return trailingOnes(U(i.v)) }

func (i Int[T, U]) ReverseBits() Int[T, U] {
	return Int[T, U]{T(reverseBits(U(i.v)))}
}

// SwapBytes reverses the byte order unconditionally.
func (i Int[T, U]) SwapBytes() Int[T, U] {
	return Int[T, U]{T(swapBytes(U(i.v)))}
}

// ToBE converts to big-endian byte order: a no-op on big-endian hosts, a
// byte swap otherwise. FromBE is the inverse, interpreting the receiver as a
// big-endian value; the two are the same transformation.
func (i Int[T, U]) ToBE() Int[T, U]   { return Int[T, U]{T(toBE(U(i.v)))} }
func (i Int[T, U]) FromBE() Int[T, U] { return i.ToBE() }
func (i Int[T, U]) ToLE() Int[T, U]   { return Int[T, U]{T(toLE(U(i.v)))} }
func (i Int[T, U]) FromLE() Int[T, U] { return i.ToLE() }

// ToNE and FromNE are identities, present for symmetry with ToBE/ToLE.
func (i Int[T, U]) ToNE() Int[T, U]   { return i }
func (i Int[T, U]) FromNE() Int[T, U] { return i }

// ToBEBytes returns the value as W/8 bytes, most significant first.
func (i Int[T, U]) ToBEBytes() []byte { return beBytes(U(i.v)) }

// ToLEBytes returns the value as W/8 bytes, least significant first.
func (i Int[T, U]) ToLEBytes() []byte { return leBytes(U(i.v)) }

// ToNEBytes returns the value as W/8 bytes in host order.
func (i Int[T, U]) ToNEBytes() []byte { return neBytes(U(i.v)) }

// Log2 returns the floor base-2 logarithm, panicking with ErrLogArgument
// for non-positive values.
func (i Int[T, U]) Log2() uint {
	if i.v <= 0 {
		panic(ErrLogArgument)
	}
	n, _ := log2Of(U(i.v))
	return n
}

func (i Int[T, U]) CheckedLog2() Option[uint] {
	if i.v <= 0 {
		return None[uint]()
	}
	n, _ := log2Of(U(i.v))
	return Some(n)
}

// Log10 returns the floor base-10 logarithm, panicking with ErrLogArgument
// for non-positive values.
func (i Int[T, U]) Log10() uint {
	if i.v <= 0 {
		panic(ErrLogArgument)
	}
	n, _ := log10Of(U(i.v))
	return n
}

func (i Int[T, U]) CheckedLog10() Option[uint] {
	if i.v <= 0 {
		return None[uint]()
	}
	n, _ := log10Of(U(i.v))
	return Some(n)
}

// Log returns the floor logarithm in an arbitrary base, panicking with
// ErrLogArgument for a non-positive value or a base below 2. Agrees with
// Log2 and Log10 at their bases for every valid operand.
func (i Int[T, U]) Log(base Int[T, U]) uint {
	if i.v <= 0 || base.v <= 1 {
		panic(ErrLogArgument)
	}
	n, _ := logOf(U(i.v), U(base.v))
	return n
}

func (i Int[T, U]) CheckedLog(base Int[T, U]) Option[uint] {
	if i.v <= 0 || base.v <= 1 {
		return None[uint]()
	}
	n, _ := logOf(U(i.v), U(base.v))
	return Some(n)
}

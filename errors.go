package safeint

import "errors"

// The plain operation shapes (Add, Div, Shl, Abs, Log2, ...) treat these
// conditions as unrecoverable and panic with the matching sentinel. The
// Checked* shapes convert them into an absent Option instead; the Wrapping*,
// Overflowing* and Saturating* shapes convert overflow only, and still panic
// on a zero divisor.
var (
	// ErrOverflow reports a result outside the type's [Min, Max] range.
	ErrOverflow = errors.New("safeint: arithmetic overflow")

	// ErrDivideByZero reports a zero divisor in Div, Rem, DivEuclid or
	// RemEuclid. It is distinct from ErrOverflow: only the signed Min / -1
	// case counts as overflow.
	ErrDivideByZero = errors.New("safeint: division by zero")

	// ErrShiftAmount reports a shift amount of at least the type's bit width
	// in a non-masking shift shape.
	ErrShiftAmount = errors.New("safeint: shift amount exceeds bit width")

	// ErrLogArgument reports a logarithm of a non-positive value, or a
	// logarithm base below 2.
	ErrLogArgument = errors.New("safeint: logarithm argument out of domain")

	// ErrAbsArgument reports Abs or Neg of a signed type's minimum value,
	// whose magnitude is not representable.
	ErrAbsArgument = errors.New("safeint: absolute value of minimum is not representable")
)

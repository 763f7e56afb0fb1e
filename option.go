package safeint

// Option holds either a value or nothing. It is the return shape of the
// Checked* operation family: Some holds the arithmetic result, None signals
// that the operation's precondition was violated (overflow, zero divisor,
// out-of-range shift, log domain error).
//
// Option values are comparable when T is, so they can be tested with ==.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] { return Option[T]{value: v, some: true} }

// None returns the empty Option.
func None[T any]() Option[T] { return Option[T]{} }

func (o Option[T]) IsSome() bool { return o.some }
func (o Option[T]) IsNone() bool { return !o.some }

// Unwrap returns the held value, panicking if there is none.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic("safeint: unwrap of empty Option")
	}
	return o.value
}

// UnwrapOr returns the held value, or def if there is none.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

// Get returns the held value using Go's comma-ok shape.
func (o Option[T]) Get() (v T, ok bool) { return o.value, o.some }

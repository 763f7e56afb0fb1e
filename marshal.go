package safeint

import (
	"fmt"
	"strconv"
)

func (i Int[T, U]) String() string {
	return strconv.FormatInt(int64(i.v), 10)
}

func (i Int[T, U]) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int[T, U]) UnmarshalText(bts []byte) error {
	v, err := intFromString[T, U](string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int[T, U]) MarshalJSON() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalJSON accepts both bare and quoted decimal numbers.
func (i *Int[T, U]) UnmarshalJSON(bts []byte) error {
	bts, err := unquote(bts)
	if err != nil {
		return err
	}
	return i.UnmarshalText(bts)
}

func (u Uint[U]) String() string {
	return strconv.FormatUint(uint64(u.v), 10)
}

func (u Uint[U]) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint[U]) UnmarshalText(bts []byte) error {
	v, err := uintFromString[U](string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Uint[U]) MarshalJSON() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalJSON accepts both bare and quoted decimal numbers.
func (u *Uint[U]) UnmarshalJSON(bts []byte) error {
	bts, err := unquote(bts)
	if err != nil {
		return err
	}
	return u.UnmarshalText(bts)
}

func unquote(bts []byte) ([]byte, error) {
	if len(bts) == 0 || bts[0] != '"' {
		return bts, nil
	}
	ln := len(bts)
	if ln < 2 || bts[ln-1] != '"' {
		return nil, fmt.Errorf("safeint: invalid JSON %q", string(bts))
	}
	return bts[1 : ln-1], nil
}

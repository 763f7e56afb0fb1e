package safeint

import "fortio.org/safecast"

// Fallible narrowing constructors from the widest primitives. The error is
// safecast's range error; use the *From constructors when the source type
// already matches.

func I8From64(v int64) (I8, error) {
	p, err := safecast.Conv[int8](v)
	if err != nil {
		return I8{}, err
	}
	return I8{p}, nil
}

func I16From64(v int64) (I16, error) {
	p, err := safecast.Conv[int16](v)
	if err != nil {
		return I16{}, err
	}
	return I16{p}, nil
}

func I32From64(v int64) (I32, error) {
	p, err := safecast.Conv[int32](v)
	if err != nil {
		return I32{}, err
	}
	return I32{p}, nil
}

func I64From64(v int64) (I64, error) {
	return I64{v}, nil
}

func IsizeFrom64(v int64) (Isize, error) {
	p, err := safecast.Conv[int](v)
	if err != nil {
		return Isize{}, err
	}
	return Isize{p}, nil
}

func U8From64(v uint64) (U8, error) {
	p, err := safecast.Conv[uint8](v)
	if err != nil {
		return U8{}, err
	}
	return U8{p}, nil
}

func U16From64(v uint64) (U16, error) {
	p, err := safecast.Conv[uint16](v)
	if err != nil {
		return U16{}, err
	}
	return U16{p}, nil
}

func U32From64(v uint64) (U32, error) {
	p, err := safecast.Conv[uint32](v)
	if err != nil {
		return U32{}, err
	}
	return U32{p}, nil
}

func U64From64(v uint64) (U64, error) {
	return U64{v}, nil
}

func UsizeFrom64(v uint64) (Usize, error) {
	p, err := safecast.Conv[uint](v)
	if err != nil {
		return Usize{}, err
	}
	return Usize{p}, nil
}

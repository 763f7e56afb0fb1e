package safeint

import "math"

var (
	MinI8  = I8From(math.MinInt8)
	MaxI8  = I8From(math.MaxInt8)
	MinI16 = I16From(math.MinInt16)
	MaxI16 = I16From(math.MaxInt16)
	MinI32 = I32From(math.MinInt32)
	MaxI32 = I32From(math.MaxInt32)
	MinI64 = I64From(math.MinInt64)
	MaxI64 = I64From(math.MaxInt64)

	MinIsize = IsizeFrom(math.MinInt)
	MaxIsize = IsizeFrom(math.MaxInt)

	MinU8  = U8From(0)
	MaxU8  = U8From(math.MaxUint8)
	MinU16 = U16From(0)
	MaxU16 = U16From(math.MaxUint16)
	MinU32 = U32From(0)
	MaxU32 = U32From(math.MaxUint32)
	MinU64 = U64From(0)
	MaxU64 = U64From(math.MaxUint64)

	MinUsize = UsizeFrom(0)
	MaxUsize = UsizeFrom(math.MaxUint)
)

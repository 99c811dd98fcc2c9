package mytype

import (
	"math"
	"strconv"

	"github.com/pkg/errors"

	"github.com/myqdrv/myq/internal/myio"
)

// IntCodec handles every integer-shaped tag: the signed and unsigned
// tiny/short/int24/long/longlong family plus Year and Bit. The binary width
// follows the wire code the tag maps to, so Int24 occupies four bytes and
// Bit eight.
type IntCodec struct{}

func (IntCodec) FormatSupported(format int16) bool {
	return format == TextFormatCode || format == BinaryFormatCode
}

func (IntCodec) PreferredFormat() int16 {
	return BinaryFormatCode
}

func (IntCodec) Encode(m *Map, t Type, format int16, value any, size int, buf []byte) (newBuf []byte, err error) {
	if t.IsUnsigned() {
		return encodeUnsignedInt(t, format, value, buf)
	}

	n, valid, err := convertToInt64(value)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot convert %v for type %d", value, t)
	}
	if !valid {
		return buf, nil
	}

	lo, hi := signedRange(t)
	if n < lo || n > hi {
		return nil, errors.Errorf("%d is out of range for type %d", n, t)
	}

	if format == TextFormatCode {
		return strconv.AppendInt(buf, n, 10), nil
	}

	switch t {
	case Tiny:
		return append(buf, byte(n)), nil
	case Short, Year:
		return myio.AppendInt16(buf, int16(n)), nil
	case Int24, Long:
		return myio.AppendInt32(buf, int32(n)), nil
	case LongLong:
		return myio.AppendInt64(buf, n), nil
	default:
		return nil, errors.Errorf("unknown signed integer type %d", t)
	}
}

func encodeUnsignedInt(t Type, format int16, value any, buf []byte) ([]byte, error) {
	n, valid, err := convertToUint64(value)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot convert %v for type %d", value, t)
	}
	if !valid {
		return buf, nil
	}

	if hi := unsignedMax(t); n > hi {
		return nil, errors.Errorf("%d is out of range for type %d", n, t)
	}

	if format == TextFormatCode {
		return strconv.AppendUint(buf, n, 10), nil
	}

	switch t {
	case UnsignedTiny:
		return append(buf, byte(n)), nil
	case UnsignedShort:
		return myio.AppendUint16(buf, uint16(n)), nil
	case UnsignedInt24, UnsignedLong:
		return myio.AppendUint32(buf, uint32(n)), nil
	case UnsignedLongLong, Bit:
		return myio.AppendUint64(buf, n), nil
	default:
		return nil, errors.Errorf("unknown unsigned integer type %d", t)
	}
}

func signedRange(t Type) (int64, int64) {
	switch t {
	case Tiny:
		return math.MinInt8, math.MaxInt8
	case Short:
		return math.MinInt16, math.MaxInt16
	case Int24:
		return -1 << 23, 1<<23 - 1
	case Long:
		return math.MinInt32, math.MaxInt32
	case Year:
		return 0, 2155
	default:
		return math.MinInt64, math.MaxInt64
	}
}

func unsignedMax(t Type) uint64 {
	switch t {
	case UnsignedTiny:
		return math.MaxUint8
	case UnsignedShort:
		return math.MaxUint16
	case UnsignedInt24:
		return 1<<24 - 1
	case UnsignedLong:
		return math.MaxUint32
	default:
		return math.MaxUint64
	}
}

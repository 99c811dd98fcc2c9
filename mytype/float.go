package mytype

import (
	"math"
	"strconv"

	"github.com/pkg/errors"

	"github.com/myqdrv/myq/internal/myio"
)

// FloatCodec handles Float (4 byte) and Double (8 byte).
type FloatCodec struct{}

func (FloatCodec) FormatSupported(format int16) bool {
	return format == TextFormatCode || format == BinaryFormatCode
}

func (FloatCodec) PreferredFormat() int16 {
	return BinaryFormatCode
}

func (FloatCodec) Encode(m *Map, t Type, format int16, value any, size int, buf []byte) ([]byte, error) {
	f, valid, err := convertToFloat64(value)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot convert %v for type %d", value, t)
	}
	if !valid {
		return buf, nil
	}

	if t == Float {
		if format == TextFormatCode {
			return strconv.AppendFloat(buf, f, 'g', -1, 32), nil
		}
		return myio.AppendUint32(buf, math.Float32bits(float32(f))), nil
	}

	if format == TextFormatCode {
		return strconv.AppendFloat(buf, f, 'g', -1, 64), nil
	}
	return myio.AppendUint64(buf, math.Float64bits(f)), nil
}

func convertToFloat64(v any) (float64, bool, error) {
	switch v := v.(type) {
	case nil:
		return 0, false, nil
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false, err
		}
		return f, true, nil
	}

	n, valid, err := convertToInt64(v)
	if err != nil || !valid {
		return 0, valid, err
	}
	return float64(n), true, nil
}

package mytype

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/myqdrv/myq/internal/myio"
)

// DecimalCodec handles Decimal and NewDecimal. Both formats are textual on
// the wire: the binary protocol carries decimals as a length-encoded decimal
// string, the text protocol embeds the bare literal.
type DecimalCodec struct{}

func (DecimalCodec) FormatSupported(format int16) bool {
	return format == TextFormatCode || format == BinaryFormatCode
}

func (DecimalCodec) PreferredFormat() int16 {
	return TextFormatCode
}

func (DecimalCodec) Encode(m *Map, t Type, format int16, value any, size int, buf []byte) ([]byte, error) {
	s, valid, err := decimalString(value)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot convert %v for type %d", value, t)
	}
	if !valid {
		return buf, nil
	}

	if format == BinaryFormatCode {
		return myio.AppendLengthEncodedString(buf, s), nil
	}
	return append(buf, s...), nil
}

func decimalString(v any) (string, bool, error) {
	switch v := v.(type) {
	case nil:
		return "", false, nil
	case decimal.Decimal:
		return v.String(), true, nil
	case string:
		if _, err := decimal.NewFromString(v); err != nil {
			return "", false, err
		}
		return v, true, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true, nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true, nil
	}

	n, valid, err := convertToInt64(v)
	if err != nil || !valid {
		return "", valid, err
	}
	return strconv.FormatInt(n, 10), true, nil
}

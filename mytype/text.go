package mytype

import (
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/myqdrv/myq/internal/myio"
)

// TextCodec handles the character-string tags: VarChar, VarString, String,
// JSON, Enum and Set. Binary format is a length-encoded string; text format
// is a quoted literal with MySQL backslash escaping.
type TextCodec struct{}

func (TextCodec) FormatSupported(format int16) bool {
	return format == TextFormatCode || format == BinaryFormatCode
}

func (TextCodec) PreferredFormat() int16 {
	return BinaryFormatCode
}

func (TextCodec) Encode(m *Map, t Type, format int16, value any, size int, buf []byte) ([]byte, error) {
	s, valid, err := convertToString(value)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot convert %v for type %d", value, t)
	}
	if !valid {
		return buf, nil
	}

	if format == BinaryFormatCode {
		return myio.AppendLengthEncodedString(buf, s), nil
	}
	return QuoteString(buf, s), nil
}

func convertToString(v any) (string, bool, error) {
	switch v := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	case []byte:
		return string(v), true, nil
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

// QuoteString appends str to dst as a single-quoted MySQL string literal.
// Quotes, backslashes, NUL, newline, carriage return and ^Z are backslash
// escaped.
func QuoteString(dst []byte, str string) []byte {
	dst = append(dst, '\'')
	for i := 0; i < len(str); i++ {
		c := str[i]
		switch c {
		case '\'':
			dst = append(dst, '\\', '\'')
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case 0:
			dst = append(dst, '\\', '0')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case 0x1a:
			dst = append(dst, '\\', 'Z')
		default:
			dst = append(dst, c)
		}
	}
	return append(dst, '\'')
}

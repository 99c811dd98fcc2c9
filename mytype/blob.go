package mytype

import (
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/myqdrv/myq/internal/myio"
)

// BlobCodec handles the opaque byte tags: Blob and its tiny/medium/long
// variants. Binary format is length-encoded bytes; text format is a 0x...
// hex literal, which needs no escaping or character set.
type BlobCodec struct{}

func (BlobCodec) FormatSupported(format int16) bool {
	return format == TextFormatCode || format == BinaryFormatCode
}

func (BlobCodec) PreferredFormat() int16 {
	return BinaryFormatCode
}

func (BlobCodec) Encode(m *Map, t Type, format int16, value any, size int, buf []byte) ([]byte, error) {
	b, valid, err := convertToBytes(value)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot convert %v for type %d", value, t)
	}
	if !valid {
		return buf, nil
	}
	if size > 0 && size < len(b) {
		b = b[:size]
	}

	if format == BinaryFormatCode {
		return myio.AppendLengthEncodedBytes(buf, b), nil
	}
	return QuoteBytes(buf, b), nil
}

func convertToBytes(v any) ([]byte, bool, error) {
	switch v := v.(type) {
	case nil:
		return nil, false, nil
	case []byte:
		return v, true, nil
	case string:
		return []byte(v), true, nil
	}
	return nil, false, errors.Errorf("cannot convert %T to bytes", v)
}

// QuoteBytes appends buf to dst as a MySQL hex literal (0xDEADBEEF). An
// empty slice appends the empty string literal.
func QuoteBytes(dst, buf []byte) []byte {
	if len(buf) == 0 {
		return append(dst, `''`...)
	}

	dst = append(dst, '0', 'x')
	origLen := len(dst)
	dst = append(dst, make([]byte, hex.EncodedLen(len(buf)))...)
	hex.Encode(dst[origLen:], buf)
	return dst
}

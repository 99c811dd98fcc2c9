package mytype

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/myqdrv/myq/internal/myio"
)

// UUIDCodec handles the Guid tag. There is no native wire type: by default a
// value travels as its 36 character canonical text form (CHAR(36) storage);
// with Map.LegacyGuidFormat set it travels as the raw 16 bytes (the old
// BINARY(16) storage convention).
type UUIDCodec struct{}

func (UUIDCodec) FormatSupported(format int16) bool {
	return format == TextFormatCode || format == BinaryFormatCode
}

func (UUIDCodec) PreferredFormat() int16 {
	return BinaryFormatCode
}

func (c UUIDCodec) Encode(m *Map, t Type, format int16, value any, size int, buf []byte) ([]byte, error) {
	u, valid, err := convertToUUID(value)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot convert %v for type %d", value, t)
	}
	if !valid {
		return buf, nil
	}

	legacy := m != nil && m.LegacyGuidFormat

	if format == BinaryFormatCode {
		if legacy {
			return myio.AppendLengthEncodedBytes(buf, u[:]), nil
		}
		return myio.AppendLengthEncodedString(buf, u.String()), nil
	}

	if legacy {
		return QuoteBytes(buf, u[:]), nil
	}
	return QuoteString(buf, u.String()), nil
}

func convertToUUID(v any) (uuid.UUID, bool, error) {
	switch v := v.(type) {
	case nil:
		return uuid.UUID{}, false, nil
	case uuid.UUID:
		return v, true, nil
	case [16]byte:
		return uuid.UUID(v), true, nil
	case []byte:
		u, err := uuid.FromBytes(v)
		if err != nil {
			return uuid.UUID{}, false, err
		}
		return u, true, nil
	case string:
		u, err := uuid.Parse(v)
		if err != nil {
			return uuid.UUID{}, false, err
		}
		return u, true, nil
	}
	return uuid.UUID{}, false, errors.Errorf("cannot convert %T to uuid", v)
}

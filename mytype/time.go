package mytype

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/myqdrv/myq/internal/myio"
)

// TimeCodec handles the Time tag, an elapsed-time value held as a
// time.Duration. The binary form is a length byte of 0, 8 or 12 followed by
// a sign byte, a four byte day count, clock bytes, and microseconds.
type TimeCodec struct{}

func (TimeCodec) FormatSupported(format int16) bool {
	return format == TextFormatCode || format == BinaryFormatCode
}

func (TimeCodec) PreferredFormat() int16 {
	return BinaryFormatCode
}

func (TimeCodec) Encode(m *Map, t Type, format int16, value any, size int, buf []byte) ([]byte, error) {
	d, valid, err := convertToDuration(value)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot convert %v for type %d", value, t)
	}
	if !valid {
		return buf, nil
	}

	if format == TextFormatCode {
		return appendTimeText(buf, d), nil
	}
	return appendTimeBinary(buf, d), nil
}

func convertToDuration(v any) (time.Duration, bool, error) {
	switch v := v.(type) {
	case nil:
		return 0, false, nil
	case time.Duration:
		return v, true, nil
	case int64:
		return time.Duration(v), true, nil
	case string:
		var h, m, s int
		if _, err := fmt.Sscanf(v, "%d:%d:%d", &h, &m, &s); err != nil {
			return 0, false, errors.Wrapf(err, "cannot parse %q as time", v)
		}
		return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second, true, nil
	}
	return 0, false, errors.Errorf("cannot convert %T to duration", v)
}

func appendTimeText(buf []byte, d time.Duration) []byte {
	neg := d < 0
	if neg {
		d = -d
	}

	h := int64(d / time.Hour)
	m := int64(d/time.Minute) % 60
	s := int64(d/time.Second) % 60
	micros := int64(d/time.Microsecond) % 1e6

	buf = append(buf, '\'')
	if neg {
		buf = append(buf, '-')
	}
	if micros != 0 {
		buf = append(buf, fmt.Sprintf("%02d:%02d:%02d.%06d", h, m, s, micros)...)
	} else {
		buf = append(buf, fmt.Sprintf("%02d:%02d:%02d", h, m, s)...)
	}
	return append(buf, '\'')
}

func appendTimeBinary(buf []byte, d time.Duration) []byte {
	if d == 0 {
		return append(buf, 0)
	}

	var neg byte
	if d < 0 {
		neg = 1
		d = -d
	}

	days := uint32(d / (24 * time.Hour))
	h := byte(int64(d/time.Hour) % 24)
	m := byte(int64(d/time.Minute) % 60)
	s := byte(int64(d/time.Second) % 60)
	micros := uint32(int64(d/time.Microsecond) % 1e6)

	if micros == 0 {
		buf = append(buf, 8, neg)
		buf = myio.AppendUint32(buf, days)
		return append(buf, h, m, s)
	}

	buf = append(buf, 12, neg)
	buf = myio.AppendUint32(buf, days)
	buf = append(buf, h, m, s)
	return myio.AppendUint32(buf, micros)
}

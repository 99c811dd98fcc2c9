package mytype

import (
	"time"

	"github.com/pkg/errors"

	"github.com/myqdrv/myq/internal/myio"
)

// DateTimeCodec handles Date, DateTime and Timestamp. The binary form is the
// protocol's variable-length temporal value: a length byte of 0, 4, 7 or 11
// followed by year/month/day, clock fields, and microseconds, shortest form
// that loses nothing. Date always stops at the day fields.
type DateTimeCodec struct{}

func (DateTimeCodec) FormatSupported(format int16) bool {
	return format == TextFormatCode || format == BinaryFormatCode
}

func (DateTimeCodec) PreferredFormat() int16 {
	return BinaryFormatCode
}

func (DateTimeCodec) Encode(m *Map, t Type, format int16, value any, size int, buf []byte) ([]byte, error) {
	var tm time.Time
	switch v := value.(type) {
	case nil:
		return buf, nil
	case time.Time:
		tm = v
	case string:
		parsed, err := parseDateTimeString(v)
		if err != nil {
			return nil, err
		}
		tm = parsed
	default:
		return nil, errors.Errorf("cannot convert %T for type %d", value, t)
	}

	if format == TextFormatCode {
		return appendDateTimeText(buf, t, tm), nil
	}
	return appendDateTimeBinary(buf, t, tm), nil
}

var dateTimeLayouts = []string{
	"2006-01-02 15:04:05.999999",
	"2006-01-02T15:04:05.999999",
	"2006-01-02",
}

func parseDateTimeString(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if tm, err := time.Parse(layout, s); err == nil {
			return tm, nil
		}
	}
	return time.Time{}, errors.Errorf("cannot parse %q as datetime", s)
}

func appendDateTimeText(buf []byte, t Type, tm time.Time) []byte {
	if tm.IsZero() {
		return append(buf, `'0000-00-00'`...)
	}

	buf = append(buf, '\'')
	switch {
	case t == Date:
		buf = tm.AppendFormat(buf, "2006-01-02")
	case tm.Nanosecond() != 0:
		buf = tm.AppendFormat(buf, "2006-01-02 15:04:05.000000")
	default:
		buf = tm.AppendFormat(buf, "2006-01-02 15:04:05")
	}
	return append(buf, '\'')
}

func appendDateTimeBinary(buf []byte, t Type, tm time.Time) []byte {
	micros := tm.Nanosecond() / 1000
	hasClock := t != Date && (tm.Hour() != 0 || tm.Minute() != 0 || tm.Second() != 0 || micros != 0)

	if tm.IsZero() {
		return append(buf, 0)
	}

	switch {
	case !hasClock:
		buf = append(buf, 4)
		buf = appendDatePart(buf, tm)
	case micros == 0:
		buf = append(buf, 7)
		buf = appendDatePart(buf, tm)
		buf = append(buf, byte(tm.Hour()), byte(tm.Minute()), byte(tm.Second()))
	default:
		buf = append(buf, 11)
		buf = appendDatePart(buf, tm)
		buf = append(buf, byte(tm.Hour()), byte(tm.Minute()), byte(tm.Second()))
		buf = myio.AppendUint32(buf, uint32(micros))
	}
	return buf
}

func appendDatePart(buf []byte, tm time.Time) []byte {
	buf = myio.AppendUint16(buf, uint16(tm.Year()))
	return append(buf, byte(tm.Month()), byte(tm.Day()))
}

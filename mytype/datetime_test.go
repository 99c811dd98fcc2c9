package mytype_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myqdrv/myq/mytype"
)

func TestDateTimeCodecBinaryLengths(t *testing.T) {
	m := mytype.NewMap()

	// zero time: zero length
	buf, err := m.Encode(mytype.DateTime, mytype.BinaryFormatCode, time.Time{}, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, buf)

	// date only: 4 byte form
	d := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	buf, err = m.Encode(mytype.DateTime, mytype.BinaryFormatCode, d, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 0xe8, 0x07, 3, 7}, buf)

	// with clock: 7 byte form
	dt := time.Date(2024, 3, 7, 13, 14, 15, 0, time.UTC)
	buf, err = m.Encode(mytype.DateTime, mytype.BinaryFormatCode, dt, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{7, 0xe8, 0x07, 3, 7, 13, 14, 15}, buf)

	// with microseconds: 11 byte form
	dtm := time.Date(2024, 3, 7, 13, 14, 15, 500000*1000, time.UTC)
	buf, err = m.Encode(mytype.DateTime, mytype.BinaryFormatCode, dtm, 0, nil)
	require.NoError(t, err)
	require.Len(t, buf, 12)
	assert.Equal(t, byte(11), buf[0])
	assert.Equal(t, []byte{0x20, 0xa1, 0x07, 0}, buf[8:]) // 500000 LE
}

func TestDateTimeCodecDateStopsAtDay(t *testing.T) {
	m := mytype.NewMap()
	dt := time.Date(2024, 3, 7, 13, 14, 15, 0, time.UTC)
	buf, err := m.Encode(mytype.Date, mytype.BinaryFormatCode, dt, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 0xe8, 0x07, 3, 7}, buf)
}

func TestDateTimeCodecText(t *testing.T) {
	m := mytype.NewMap()

	buf, err := m.Encode(mytype.DateTime, mytype.TextFormatCode, time.Time{}, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, `'0000-00-00'`, string(buf))

	dt := time.Date(2024, 3, 7, 13, 14, 15, 0, time.UTC)
	buf, err = m.Encode(mytype.DateTime, mytype.TextFormatCode, dt, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, `'2024-03-07 13:14:15'`, string(buf))

	buf, err = m.Encode(mytype.Date, mytype.TextFormatCode, dt, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, `'2024-03-07'`, string(buf))
}

func TestDateTimeCodecParsesStrings(t *testing.T) {
	m := mytype.NewMap()
	buf, err := m.Encode(mytype.DateTime, mytype.TextFormatCode, "2024-03-07 13:14:15", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, `'2024-03-07 13:14:15'`, string(buf))

	_, err = m.Encode(mytype.DateTime, mytype.TextFormatCode, "bogus", 0, nil)
	assert.Error(t, err)
}

func TestTimeCodec(t *testing.T) {
	m := mytype.NewMap()

	d := 13*time.Hour + 14*time.Minute + 15*time.Second
	buf, err := m.Encode(mytype.Time, mytype.TextFormatCode, d, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, `'13:14:15'`, string(buf))

	buf, err = m.Encode(mytype.Time, mytype.BinaryFormatCode, d, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{8, 0, 0, 0, 0, 0, 13, 14, 15}, buf)

	// negative with days and micros: 12 byte form
	neg := -(25*time.Hour + 30*time.Microsecond)
	buf, err = m.Encode(mytype.Time, mytype.BinaryFormatCode, neg, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{12, 1, 1, 0, 0, 0, 1, 0, 0, 30, 0, 0, 0}, buf)

	buf, err = m.Encode(mytype.Time, mytype.BinaryFormatCode, time.Duration(0), 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, buf)
}

func TestTimeCodecParsesClockStrings(t *testing.T) {
	m := mytype.NewMap()
	buf, err := m.Encode(mytype.Time, mytype.TextFormatCode, "12:30:45", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, `'12:30:45'`, string(buf))
}

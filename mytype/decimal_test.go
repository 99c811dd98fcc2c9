package mytype_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myqdrv/myq/mytype"
)

func TestDecimalCodec(t *testing.T) {
	m := mytype.NewMap()
	d := decimal.RequireFromString("123.456")

	buf, err := m.Encode(mytype.NewDecimal, mytype.TextFormatCode, d, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, "123.456", string(buf))

	buf, err = m.Encode(mytype.NewDecimal, mytype.BinaryFormatCode, d, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, append([]byte{7}, "123.456"...), buf)
}

func TestDecimalCodecLooseInputs(t *testing.T) {
	m := mytype.NewMap()

	buf, err := m.Encode(mytype.NewDecimal, mytype.TextFormatCode, "99.5", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, "99.5", string(buf))

	buf, err = m.Encode(mytype.NewDecimal, mytype.TextFormatCode, int64(7), 0, nil)
	require.NoError(t, err)
	assert.Equal(t, "7", string(buf))

	_, err = m.Encode(mytype.NewDecimal, mytype.TextFormatCode, "abc", 0, nil)
	assert.Error(t, err)
}

func TestFloatCodec(t *testing.T) {
	m := mytype.NewMap()

	buf, err := m.Encode(mytype.Double, mytype.BinaryFormatCode, float64(1.0), 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0xf0, 0x3f}, buf)

	buf, err = m.Encode(mytype.Float, mytype.BinaryFormatCode, float32(1.0), 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0x80, 0x3f}, buf)

	buf, err = m.Encode(mytype.Double, mytype.TextFormatCode, float64(-2.5), 0, nil)
	require.NoError(t, err)
	assert.Equal(t, "-2.5", string(buf))
}

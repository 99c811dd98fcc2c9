package myio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendLittleEndian(t *testing.T) {
	assert.Equal(t, []byte{0x34, 0x12}, AppendUint16(nil, 0x1234))
	assert.Equal(t, []byte{0x56, 0x34, 0x12}, AppendUint24(nil, 0x123456))
	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, AppendUint32(nil, 0x12345678))
	assert.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, AppendUint64(nil, 0x0102030405060708))
	assert.Equal(t, []byte{0xff, 0xff}, AppendInt16(nil, -1))
}

func TestAppendLengthEncodedInt(t *testing.T) {
	tests := []struct {
		n    uint64
		want []byte
	}{
		{0, []byte{0}},
		{250, []byte{250}},
		{251, []byte{0xfc, 251, 0}},
		{1<<16 - 1, []byte{0xfc, 0xff, 0xff}},
		{1 << 16, []byte{0xfd, 0, 0, 1}},
		{1<<24 - 1, []byte{0xfd, 0xff, 0xff, 0xff}},
		{1 << 24, []byte{0xfe, 0, 0, 0, 1, 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, AppendLengthEncodedInt(nil, tt.n), "n=%d", tt.n)
	}
}

func TestAppendLengthEncodedString(t *testing.T) {
	assert.Equal(t, []byte{5, 'h', 'e', 'l', 'l', 'o'}, AppendLengthEncodedString(nil, "hello"))
	assert.Equal(t, []byte{0}, AppendLengthEncodedBytes(nil, nil))
}

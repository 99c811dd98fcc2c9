// Package myio contains functions for appending values to byte slices in
// MySQL wire format. MySQL integers are little-endian; variable-length
// fields are prefixed with a length-encoded integer.
package myio

func AppendUint16(buf []byte, n uint16) []byte {
	return append(buf, byte(n), byte(n>>8))
}

func AppendUint24(buf []byte, n uint32) []byte {
	return append(buf, byte(n), byte(n>>8), byte(n>>16))
}

func AppendUint32(buf []byte, n uint32) []byte {
	return append(buf, byte(n), byte(n>>8), byte(n>>16), byte(n>>24))
}

func AppendUint64(buf []byte, n uint64) []byte {
	return append(buf,
		byte(n), byte(n>>8), byte(n>>16), byte(n>>24),
		byte(n>>32), byte(n>>40), byte(n>>48), byte(n>>56),
	)
}

func AppendInt16(buf []byte, n int16) []byte {
	return AppendUint16(buf, uint16(n))
}

func AppendInt32(buf []byte, n int32) []byte {
	return AppendUint32(buf, uint32(n))
}

func AppendInt64(buf []byte, n int64) []byte {
	return AppendUint64(buf, uint64(n))
}

// AppendLengthEncodedInt appends n as a length-encoded integer: one byte for
// values below 251, otherwise a 0xfc/0xfd/0xfe marker followed by a 2, 3, or
// 8 byte little-endian integer.
func AppendLengthEncodedInt(buf []byte, n uint64) []byte {
	switch {
	case n < 251:
		return append(buf, byte(n))
	case n < 1<<16:
		return AppendUint16(append(buf, 0xfc), uint16(n))
	case n < 1<<24:
		return AppendUint24(append(buf, 0xfd), uint32(n))
	default:
		return AppendUint64(append(buf, 0xfe), n)
	}
}

// AppendLengthEncodedBytes appends b prefixed with its length-encoded byte
// count.
func AppendLengthEncodedBytes(buf, b []byte) []byte {
	buf = AppendLengthEncodedInt(buf, uint64(len(b)))
	return append(buf, b...)
}

// AppendLengthEncodedString appends s prefixed with its length-encoded byte
// count.
func AppendLengthEncodedString(buf []byte, s string) []byte {
	buf = AppendLengthEncodedInt(buf, uint64(len(s)))
	return append(buf, s...)
}

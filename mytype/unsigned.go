package mytype

// UnsignedFlag is the high bit set in the COM_STMT_EXECUTE parameter type
// flags byte to mark the unsigned variant of a signed base code. The
// protocol's one-byte code space has no distinct codes for unsigned types.
const UnsignedFlag byte = 0x80

// WireType returns the one-byte protocol type code and flags byte written in
// the COM_STMT_EXECUTE parameter-type block for t.
//
// The unsigned tags reuse their signed base code with UnsignedFlag set.
// UnsignedInt24 widens to Long: there is no narrower wire representation.
// Bit travels as an unsigned 64-bit integer. Guid has no code of its own and
// travels as String. Every other tag is its own code, flag clear.
func (t Type) WireType() (code byte, flags byte) {
	switch t {
	case Bit:
		return byte(LongLong), UnsignedFlag
	case UnsignedTiny:
		return byte(Tiny), UnsignedFlag
	case UnsignedShort:
		return byte(Short), UnsignedFlag
	case UnsignedInt24:
		return byte(Long), UnsignedFlag
	case UnsignedLong:
		return byte(Long), UnsignedFlag
	case UnsignedLongLong:
		return byte(LongLong), UnsignedFlag
	case Guid:
		return byte(String), 0
	default:
		return byte(t), 0
	}
}

// IsUnsigned reports whether t is one of the unsigned integer tags (Bit
// included, as it travels unsigned on the wire).
func (t Type) IsUnsigned() bool {
	_, flags := t.WireType()
	return flags&UnsignedFlag != 0
}

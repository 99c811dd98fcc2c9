// Package mytype converts Go values to the textual and binary representations
// used by the MySQL wire protocol. Each abstract type tag maps to a Codec
// that can encode a value in either protocol format; the Map is the
// per-connection registry binding tags to codecs.
package mytype

import (
	"github.com/pkg/errors"
)

// Type is an abstract database type tag. Tags at or below 0xff are the
// protocol's own one-byte type codes. Tags above the byte space (the
// unsigned family and Guid) have no wire code of their own; WireType maps
// them onto a signed base code plus the unsigned flag.
type Type int

const (
	Decimal    Type = 0x00
	Tiny       Type = 0x01
	Short      Type = 0x02
	Long       Type = 0x03
	Float      Type = 0x04
	Double     Type = 0x05
	Null       Type = 0x06
	Timestamp  Type = 0x07
	LongLong   Type = 0x08
	Int24      Type = 0x09
	Date       Type = 0x0a
	Time       Type = 0x0b
	DateTime   Type = 0x0c
	Year       Type = 0x0d
	VarChar    Type = 0x0f
	Bit        Type = 0x10
	JSON       Type = 0xf5
	NewDecimal Type = 0xf6
	Enum       Type = 0xf7
	Set        Type = 0xf8
	TinyBlob   Type = 0xf9
	MediumBlob Type = 0xfa
	LongBlob   Type = 0xfb
	Blob       Type = 0xfc
	VarString  Type = 0xfd
	String     Type = 0xfe
	Geom       Type = 0xff

	UnsignedTiny     Type = 501
	UnsignedShort    Type = 502
	UnsignedInt24    Type = 503
	UnsignedLong     Type = 504
	UnsignedLongLong Type = 508
	Guid             Type = 854
)

const (
	TextFormatCode   = 0
	BinaryFormatCode = 1
)

// Codec is the strategy that encodes values of one abstract type.
//
// In the text format Encode appends a SQL literal fragment suitable for
// embedding directly in a statement string. In the binary format it appends
// the COM_STMT_EXECUTE value bytes. A nil value appends nothing: NULL is the
// caller's concern (NULL literal in text mode, null bitmap in binary mode).
type Codec interface {
	// FormatSupported returns true if the format is supported.
	FormatSupported(format int16) bool

	// PreferredFormat returns the format that is the most efficient for
	// this codec.
	PreferredFormat() int16

	// Encode appends the wire representation of value to buf. size is the
	// element count recorded on the parameter (string length or byte
	// count); codecs that do not need it ignore it.
	Encode(m *Map, t Type, format int16, value any, size int, buf []byte) ([]byte, error)
}

// Map is the registry binding type tags to codecs. It additionally carries
// connection-level encoding knobs, so one Map instance belongs to one
// connection (or to none, for standalone encoding).
type Map struct {
	codecs map[Type]Codec

	// LegacyGuidFormat makes Guid values encode as their raw 16 bytes (the
	// old BINARY(16) storage convention) instead of the 36 character text
	// form.
	LegacyGuidFormat bool
}

// NewMap returns a Map with all built-in codecs registered.
func NewMap() *Map {
	m := &Map{codecs: make(map[Type]Codec, 32)}

	intCodec := IntCodec{}
	for _, t := range []Type{Tiny, Short, Int24, Long, LongLong, Year, Bit,
		UnsignedTiny, UnsignedShort, UnsignedInt24, UnsignedLong, UnsignedLongLong} {
		m.RegisterType(t, intCodec)
	}

	m.RegisterType(Float, FloatCodec{})
	m.RegisterType(Double, FloatCodec{})

	m.RegisterType(Decimal, DecimalCodec{})
	m.RegisterType(NewDecimal, DecimalCodec{})

	textCodec := TextCodec{}
	for _, t := range []Type{VarChar, VarString, String, JSON, Enum, Set} {
		m.RegisterType(t, textCodec)
	}

	blobCodec := BlobCodec{}
	for _, t := range []Type{TinyBlob, MediumBlob, LongBlob, Blob} {
		m.RegisterType(t, blobCodec)
	}

	dtCodec := DateTimeCodec{}
	for _, t := range []Type{Date, DateTime, Timestamp} {
		m.RegisterType(t, dtCodec)
	}

	m.RegisterType(Time, TimeCodec{})
	m.RegisterType(Guid, UUIDCodec{})
	m.RegisterType(Geom, GeometryCodec{})

	return m
}

// RegisterType registers or replaces the codec for t.
func (m *Map) RegisterType(t Type, c Codec) {
	m.codecs[t] = c
}

// CodecForType returns the codec registered for t, or nil.
func (m *Map) CodecForType(t Type) Codec {
	return m.codecs[t]
}

// Encode resolves the codec for t and encodes value. It is the registry-level
// entry point used when no pre-resolved codec is at hand.
func (m *Map) Encode(t Type, format int16, value any, size int, buf []byte) ([]byte, error) {
	c := m.CodecForType(t)
	if c == nil {
		return nil, errors.Errorf("no codec registered for type %d", t)
	}
	return c.Encode(m, t, format, value, size, buf)
}

package mytype

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/myqdrv/myq/internal/myio"
)

// Geometry is a spatial point value. The zero Geometry is null. The server's
// internal format is a four byte little-endian SRID followed by the WKB
// point: byte-order marker, geometry type, X, Y.
type Geometry struct {
	SRID  uint32
	X     float64
	Y     float64
	Valid bool
}

const wkbPointType = 1

// ParseWKT parses a well-known-text point, optionally prefixed with an
// "SRID=n;" clause: "POINT(1 2)" or "SRID=4326;POINT(1 2)".
func ParseWKT(s string) (Geometry, error) {
	var g Geometry

	s = strings.TrimSpace(s)
	if rest, ok := cutPrefixFold(s, "SRID="); ok {
		sridStr, wkt, found := strings.Cut(rest, ";")
		if !found {
			return g, errors.Errorf("cannot parse %q as geometry: missing ';' after SRID", s)
		}
		srid, err := strconv.ParseUint(strings.TrimSpace(sridStr), 10, 32)
		if err != nil {
			return g, errors.Wrapf(err, "cannot parse %q as geometry", s)
		}
		g.SRID = uint32(srid)
		s = strings.TrimSpace(wkt)
	}

	body, ok := cutPrefixFold(s, "POINT")
	if !ok {
		return g, errors.Errorf("cannot parse %q as geometry: only POINT is supported", s)
	}
	body = strings.TrimSpace(body)
	if len(body) < 2 || body[0] != '(' || body[len(body)-1] != ')' {
		return g, errors.Errorf("cannot parse %q as geometry: malformed point", s)
	}

	coords := strings.Fields(body[1 : len(body)-1])
	if len(coords) != 2 {
		return g, errors.Errorf("cannot parse %q as geometry: expected two coordinates", s)
	}

	x, err := strconv.ParseFloat(coords[0], 64)
	if err != nil {
		return g, errors.Wrapf(err, "cannot parse %q as geometry", s)
	}
	y, err := strconv.ParseFloat(coords[1], 64)
	if err != nil {
		return g, errors.Wrapf(err, "cannot parse %q as geometry", s)
	}

	g.X, g.Y, g.Valid = x, y, true
	return g, nil
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return s, false
}

// Bytes returns the server representation: SRID then WKB, 25 bytes for a
// point. Nil for a null geometry.
func (g Geometry) Bytes() []byte {
	if !g.Valid {
		return nil
	}
	buf := make([]byte, 0, 25)
	buf = myio.AppendUint32(buf, g.SRID)
	buf = append(buf, 1) // little-endian byte order marker
	buf = myio.AppendUint32(buf, wkbPointType)
	buf = myio.AppendUint64(buf, math.Float64bits(g.X))
	buf = myio.AppendUint64(buf, math.Float64bits(g.Y))
	return buf
}

// WKT returns the well-known-text form, SRID clause included when nonzero.
func (g Geometry) WKT() string {
	if !g.Valid {
		return ""
	}
	var b strings.Builder
	if g.SRID != 0 {
		b.WriteString("SRID=")
		b.WriteString(strconv.FormatUint(uint64(g.SRID), 10))
		b.WriteByte(';')
	}
	b.WriteString("POINT(")
	b.WriteString(strconv.FormatFloat(g.X, 'g', -1, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(g.Y, 'g', -1, 64))
	b.WriteByte(')')
	return b.String()
}

// GeometryCodec handles the Geom tag. String and byte values are parsed as
// WKT on the fly; a value that fails to parse encodes as null rather than
// erroring.
type GeometryCodec struct{}

func (GeometryCodec) FormatSupported(format int16) bool {
	return format == TextFormatCode || format == BinaryFormatCode
}

func (GeometryCodec) PreferredFormat() int16 {
	return BinaryFormatCode
}

func (GeometryCodec) Encode(m *Map, t Type, format int16, value any, size int, buf []byte) ([]byte, error) {
	g, ok := value.(Geometry)
	if !ok {
		switch v := value.(type) {
		case nil:
			return buf, nil
		case string:
			g, _ = ParseWKT(v)
		case []byte:
			g, _ = ParseWKT(string(v))
		default:
			return nil, errors.Errorf("cannot convert %T for type %d", value, t)
		}
	}
	if !g.Valid {
		return buf, nil
	}

	if format == BinaryFormatCode {
		return myio.AppendLengthEncodedBytes(buf, g.Bytes()), nil
	}

	buf = append(buf, "ST_GeomFromText("...)
	buf = QuoteString(buf, g.pointWKT())
	if g.SRID != 0 {
		buf = append(buf, ',')
		buf = strconv.AppendUint(buf, uint64(g.SRID), 10)
	}
	return append(buf, ')'), nil
}

// pointWKT is WKT without the SRID clause; the SRID travels as the second
// ST_GeomFromText argument in text mode.
func (g Geometry) pointWKT() string {
	g.SRID = 0
	return g.WKT()
}

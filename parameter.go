// Package myq implements client-side parameter binding for the MySQL wire
// protocol: a statement parameter entity, runtime type inference for untyped
// values, and serialization into the textual or binary protocol form via the
// codecs in the mytype subpackage.
package myq

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/myqdrv/myq/mytype"
)

// Direction says which way a parameter's value travels.
type Direction int

const (
	Input Direction = iota
	Output
	InputOutput
	ReturnValue
)

// Collection is the rename-notification hook of the container owning a
// parameter. The entity holds a non-owning reference and calls
// NotifyNameChanged before its own name field changes so the container can
// re-index without a window where the two disagree.
type Collection interface {
	NotifyNameChanged(p *Parameter, oldName, newName string)
}

// PacketWriter is the subset of the outgoing packet surface serialization
// needs.
type PacketWriter interface {
	WriteStringNoNull(s string) error
	Write(p []byte) (int, error)
}

// ConnSettings carries the connection-level knobs serialization consults.
type ConnSettings struct {
	// LegacyGuidFormat selects the old BINARY(16) unique-identifier
	// encoding instead of CHAR(36).
	LegacyGuidFormat bool
}

// ErrNoCodec reports a type tag with no codec bound. Hitting it means an
// invariant was broken (a type was set without resolving its codec), not bad
// user input.
var ErrNoCodec = errors.New("no codec resolved for parameter type")

// Parameter is a single bound statement parameter.
//
// Setting a value infers the abstract type unless a type was set explicitly;
// an explicit type is permanent for the lifetime of the entity. Parameter is
// plain mutable state with no locking: one logical owner at a time, with
// Clone producing the independent copies per-execution code needs.
type Parameter struct {
	name      string
	value     any
	typ       mytype.Type
	typeSet   bool // a type has been resolved, explicitly or by inference
	explicit  bool // the type was set explicitly and inference is disabled
	direction Direction
	nullable  bool
	precision uint8
	scale     uint8
	size      int

	// possibleValues is the ordered domain of permitted literals for Enum
	// and Set typed parameters, populated by statement preparation.
	possibleValues []string

	owner    Collection
	codec    mytype.Codec
	typeMap  *mytype.Map
	inferrer mytype.TypeInferrer

	// geom caches the parsed geometry form of a string value; re-derived
	// lazily during serialization when the value changes.
	geom mytype.Geometry
}

// Option configures a Parameter at construction.
type Option func(*Parameter)

// WithTypeInferrer substitutes the type inference strategy.
func WithTypeInferrer(ti mytype.TypeInferrer) Option {
	return func(p *Parameter) { p.inferrer = ti }
}

// WithTypeMap substitutes the codec registry, normally to bind the parameter
// to a particular connection's map.
func WithTypeMap(m *mytype.Map) Option {
	return func(p *Parameter) { p.typeMap = m }
}

var defaultTypeMap = mytype.NewMap()

func newParameter(name string, opts []Option) *Parameter {
	p := &Parameter{
		name:     name,
		typeMap:  defaultTypeMap,
		inferrer: mytype.DefaultTypeInferrer{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewParameter returns a parameter holding value, with its type inferred
// from the value.
func NewParameter(name string, value any, opts ...Option) *Parameter {
	p := newParameter(name, opts)
	p.SetValue(value)
	return p
}

// NewTypedParameter returns a parameter with an explicit type and no value.
func NewTypedParameter(name string, t mytype.Type, opts ...Option) *Parameter {
	p := newParameter(name, opts)
	p.SetType(t)
	return p
}

// NewSizedParameter returns a parameter with an explicit type and size.
func NewSizedParameter(name string, t mytype.Type, size int, opts ...Option) *Parameter {
	p := NewTypedParameter(name, t, opts...)
	p.size = size
	return p
}

func (p *Parameter) Name() string { return p.name }

func (p *Parameter) Value() any { return p.value }

func (p *Parameter) Type() mytype.Type { return p.typ }

// TypeExplicit reports whether the type was set explicitly rather than
// inferred.
func (p *Parameter) TypeExplicit() bool { return p.explicit }

func (p *Parameter) Direction() Direction { return p.direction }

func (p *Parameter) Precision() uint8 { return p.precision }

func (p *Parameter) Scale() uint8 { return p.scale }

func (p *Parameter) Size() int { return p.size }

func (p *Parameter) IsNullable() bool { return p.nullable }

func (p *Parameter) SetDirection(d Direction) { p.direction = d }

func (p *Parameter) SetPrecision(n uint8) { p.precision = n }

func (p *Parameter) SetScale(n uint8) { p.scale = n }

func (p *Parameter) SetSize(n int) { p.size = n }

func (p *Parameter) SetNullable(b bool) { p.nullable = b }

// PossibleValues is the permitted literal domain for enumerated and set
// types, nil otherwise.
func (p *Parameter) PossibleValues() []string { return p.possibleValues }

func (p *Parameter) SetPossibleValues(values []string) { p.possibleValues = values }

// Attach binds the parameter to its owning collection. The reference is
// non-owning; it is consumed only by SetName's rename notification.
func (p *Parameter) Attach(c Collection) { p.owner = c }

// BaseName is the name with any leading '@' or '?' marker stripped; it is
// the key used for collection lookup.
func (p *Parameter) BaseName() string {
	if len(p.name) > 0 && (p.name[0] == '@' || p.name[0] == '?') {
		return p.name[1:]
	}
	return p.name
}

// SetName renames the parameter. An attached collection is notified with the
// old and new names before the local field changes.
func (p *Parameter) SetName(name string) {
	if p.owner != nil {
		p.owner.NotifyNameChanged(p, p.name, name)
	}
	p.name = name
}

// SetValue stores value, re-derives size for strings (rune count) and byte
// slices (byte count), and runs type inference unless an explicit type was
// set. A nil value leaves the current type untouched.
func (p *Parameter) SetValue(value any) {
	p.value = value
	p.geom = mytype.Geometry{}

	switch v := value.(type) {
	case string:
		p.size = utf8.RuneCountInString(v)
	case []byte:
		p.size = len(v)
	}

	if p.explicit || value == nil {
		return
	}
	if t, ok := p.inferrer.InferType(value); ok {
		p.bindType(t)
	}
}

// SetType sets the type explicitly. Once set, later value assignments never
// change the type; only a new entity can.
func (p *Parameter) SetType(t mytype.Type) {
	p.bindType(t)
	p.explicit = true
}

// bindType keeps typ and codec consistent: both change together or not at
// all.
func (p *Parameter) bindType(t mytype.Type) {
	p.typ = t
	p.typeSet = true
	p.codec = p.typeMap.CodecForType(t)
}

// Clone returns an independent copy, detached from any collection. The
// explicit-type flag is preserved exactly: a clone of an untyped parameter
// still re-infers on its next value change.
func (p *Parameter) Clone() *Parameter {
	clone := *p
	clone.owner = nil
	if p.possibleValues != nil {
		clone.possibleValues = append([]string(nil), p.possibleValues...)
	}
	return &clone
}

// WireType returns the protocol type code and flags byte for the parameter's
// type, used when building the prepared-statement parameter-type block.
func (p *Parameter) WireType() (code byte, flags byte) {
	return p.typ.WireType()
}

// EstimatedSize is a coarse buffer pre-sizing hint derived from the value
// alone, not the exact wire size: 4 for null, the byte length for byte
// slices, four bytes per character for strings, 64 for floating point and
// decimal values, 32 otherwise.
func (p *Parameter) EstimatedSize() int {
	switch v := p.value.(type) {
	case nil:
		return 4
	case []byte:
		return len(v)
	case string:
		return 4 * utf8.RuneCountInString(v)
	case float32, float64, decimal.Decimal:
		return 64
	default:
		return 32
	}
}

// Serialize writes the parameter's value to w in the requested protocol
// mode.
//
// In text mode a null value is the literal NULL and no codec runs. The
// unique-identifier legacy format flag from settings reaches the codec
// through the type map. A geometry-typed parameter whose cached geometry is
// null but whose value is parseable well-known text is parsed first; parse
// failure silently leaves the geometry null.
func (p *Parameter) Serialize(w PacketWriter, binary bool, settings *ConnSettings) error {
	if !binary && p.value == nil {
		return w.WriteStringNoNull("NULL")
	}

	if !p.typeSet {
		if t, ok := p.inferrer.InferType(p.value); ok {
			p.bindType(t)
		}
	}
	if p.codec == nil {
		return errors.Wrapf(ErrNoCodec, "parameter %s type %d", p.name, p.typ)
	}

	m := p.typeMap
	if p.typ == mytype.Guid && settings != nil && m.LegacyGuidFormat != settings.LegacyGuidFormat {
		mm := *m
		mm.LegacyGuidFormat = settings.LegacyGuidFormat
		m = &mm
	}

	value := p.value
	if p.typ == mytype.Geom {
		if !p.geom.Valid && p.value != nil {
			switch v := p.value.(type) {
			case string:
				if g, err := mytype.ParseWKT(v); err == nil {
					p.geom = g
				}
			case []byte:
				if g, err := mytype.ParseWKT(string(v)); err == nil {
					p.geom = g
				}
			case mytype.Geometry:
				p.geom = v
			}
		}
		value = p.geom
	}

	format := int16(mytype.TextFormatCode)
	if binary {
		format = mytype.BinaryFormatCode
	}

	buf, err := p.codec.Encode(m, p.typ, format, value, p.size, nil)
	if err != nil {
		return errors.Wrapf(err, "cannot serialize parameter %s", p.name)
	}
	if len(buf) == 0 {
		if !binary {
			return w.WriteStringNoNull("NULL")
		}
		return nil
	}
	_, err = w.Write(buf)
	return err
}

// String renders the parameter for diagnostics, truncating bulky values.
func (p *Parameter) String() string {
	return fmt.Sprintf("%s=%v (type %d)", p.name, logValue(p.value), p.typ)
}

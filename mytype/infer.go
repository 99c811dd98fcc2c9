package mytype

import (
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TypeInferrer determines the abstract type tag that best represents a Go
// value. It is a capability supplied at parameter construction so substitute
// inference behavior is a runtime choice.
type TypeInferrer interface {
	// InferType returns the tag for v and true, or false when v is nil and
	// no inference is possible.
	InferType(v any) (Type, bool)
}

// DefaultTypeInferrer is the built-in inference strategy.
//
// Inference is a pure function of the value's type (plus a nil check) with a
// fixed precedence: nil, then the special value types, then the fixed table
// of primitive types, then the catch-all. It never fails; an unrecognized
// type resolves to Blob.
type DefaultTypeInferrer struct{}

func (DefaultTypeInferrer) InferType(v any) (Type, bool) {
	switch v := v.(type) {
	case nil:
		return 0, false
	case uuid.UUID:
		return Guid, true
	case time.Duration:
		return Time, true
	case bool:
		// booleans travel as a single tinyint byte
		return Tiny, true
	case int8:
		return Tiny, true
	case uint8:
		return UnsignedTiny, true
	case int16:
		return Short, true
	case uint16:
		return UnsignedShort, true
	case int32:
		return Long, true
	case uint32:
		return UnsignedLong, true
	case int64:
		return LongLong, true
	case uint64:
		return UnsignedLongLong, true
	case int:
		return LongLong, true
	case uint:
		return UnsignedLongLong, true
	case time.Time:
		return DateTime, true
	case string:
		return VarChar, true
	case float32:
		return Float, true
	case float64:
		return Double, true
	case decimal.Decimal:
		return NewDecimal, true
	case []byte:
		return Blob, true
	case Geometry:
		return Geom, true
	default:
		if isEnumValue(v) {
			return Long, true
		}
		return Blob, true
	}
}

// isEnumValue reports whether v is a defined integer type, i.e. an
// enumeration member rather than a bare numeric. Bare numerics never reach
// here; the type switch above already claimed them.
func isEnumValue(v any) bool {
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

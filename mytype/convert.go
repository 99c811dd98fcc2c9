package mytype

import (
	"reflect"
	"strconv"

	"github.com/pkg/errors"
)

// convertToInt64 normalizes v to an int64 for encoding. The second return is
// false when v is nil (logically null). Defined integer types (enumeration
// members) are unwrapped through reflection.
func convertToInt64(v any) (int64, bool, error) {
	switch v := v.(type) {
	case nil:
		return 0, false, nil
	case bool:
		if v {
			return 1, true, nil
		}
		return 0, true, nil
	case int8:
		return int64(v), true, nil
	case uint8:
		return int64(v), true, nil
	case int16:
		return int64(v), true, nil
	case uint16:
		return int64(v), true, nil
	case int32:
		return int64(v), true, nil
	case uint32:
		return int64(v), true, nil
	case int64:
		return v, true, nil
	case uint64:
		if v > maxInt64 {
			return 0, false, errors.Errorf("%d is greater than maximum value for int64", v)
		}
		return int64(v), true, nil
	case int:
		return int64(v), true, nil
	case uint:
		if uint64(v) > maxInt64 {
			return 0, false, errors.Errorf("%d is greater than maximum value for int64", v)
		}
		return int64(v), true, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false, err
		}
		return n, true, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := rv.Uint()
		if n > maxInt64 {
			return 0, false, errors.Errorf("%d is greater than maximum value for int64", n)
		}
		return int64(n), true, nil
	case reflect.Ptr:
		if rv.IsNil() {
			return 0, false, nil
		}
		return convertToInt64(rv.Elem().Interface())
	}

	return 0, false, errors.Errorf("cannot convert %T to int64", v)
}

// convertToUint64 normalizes v to a uint64, rejecting negative values. Used
// by the unsigned integer tags where the full uint64 range is legal.
func convertToUint64(v any) (uint64, bool, error) {
	switch v := v.(type) {
	case nil:
		return 0, false, nil
	case uint64:
		return v, true, nil
	case uint:
		return uint64(v), true, nil
	case uint8:
		return uint64(v), true, nil
	case uint16:
		return uint64(v), true, nil
	case uint32:
		return uint64(v), true, nil
	case string:
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, false, err
		}
		return n, true, nil
	}

	n, valid, err := convertToInt64(v)
	if err != nil || !valid {
		return 0, valid, err
	}
	if n < 0 {
		return 0, false, errors.Errorf("%d is less than minimum value for unsigned type", n)
	}
	return uint64(n), true, nil
}

const maxInt64 = uint64(1)<<63 - 1

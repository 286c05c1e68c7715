package factory

import (
	"reflect"
	"strconv"
	"strings"
)

// NormalizeFlag coerces a loosely typed flag to a bool.
//
// nil is false, bools pass through and numbers are true when non-zero.
// Strings use strconv.ParseBool and otherwise count as true unless empty or
// "0". Every other value is false.
func NormalizeFlag(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
		return s != "" && s != "0"
	}
	return false
}

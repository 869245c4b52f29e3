package codec

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

var unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

// unmarshalerHook hands a value to target types that read themselves from JSON (Optional, Timestamp,
// FormatValue). The value is re-encoded and passed to UnmarshalJSON.
func unmarshalerHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from == to || !reflect.PointerTo(to).Implements(unmarshalerType) {
		return data, nil
	}

	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	v := reflect.New(to)
	if err := v.Interface().(json.Unmarshaler).UnmarshalJSON(b); err != nil {
		return nil, err
	}
	return v.Elem().Interface(), nil
}

// boolToIntHook accepts true/false for the 0/1 integer flags newer servers sometimes send as booleans,
// including optional ones.
func boolToIntHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.Bool {
		return data, nil
	}
	if to.Implements(optionalType) {
		to = reflect.Zero(to).Interface().(optionalField).OptionalElem()
	}
	if to.Kind() != reflect.Int {
		return data, nil
	}
	if reflect.ValueOf(data).Bool() {
		return 1, nil
	}
	return 0, nil
}

// wholeNumberHook rejects numbers with a fractional part for int fields. JSON numbers arrive as
// float64 and would otherwise be truncated.
func wholeNumberHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.Float64 && from.Kind() != reflect.Float32 {
		return data, nil
	}
	if to.Implements(optionalType) {
		to = reflect.Zero(to).Interface().(optionalField).OptionalElem()
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}

	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%v is not an integer", data)
	}
	return data, nil
}

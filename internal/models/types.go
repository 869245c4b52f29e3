package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"
)

var jsonNull = []byte("null")

// Optional holds a field the server may leave out. The zero value is absent, which is different
// from a present zero value: Some(0) is set, Optional[int]{} is not.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Get returns the value and whether it was provided.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

// OrElse returns the value, or def when absent.
func (o Optional[T]) OrElse(def T) T {
	if !o.set {
		return def
	}
	return o.value
}

func (o Optional[T]) String() string {
	if !o.set {
		return "<absent>"
	}
	return fmt.Sprint(o.value)
}

// OptionalElem reports the wrapped type. The codec uses it to walk required fields of present
// optional records.
func (o Optional[T]) OptionalElem() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// UnmarshalJSON treats null the same as a missing key.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = Optional[T]{}
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

// Timestamp is a Unix time in seconds as sent by the server. Zero means "not set" and maps to the
// zero time.Time.
type Timestamp struct {
	time.Time
}

// NewTimestamp converts Unix seconds into a Timestamp.
func NewTimestamp(sec int64) Timestamp {
	if sec == 0 {
		return Timestamp{}
	}
	return Timestamp{Time: time.Unix(sec, 0).UTC()}
}

// Unix returns the seconds value, 0 for the zero time.
func (t Timestamp) Unix() int64 {
	if t.IsZero() {
		return 0
	}
	return t.Time.Unix()
}

// UnmarshalJSON accepts a JSON number of whole seconds. A whole float such as 1700000000.0 is
// accepted; strings and fractional seconds are rejected.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return fmt.Errorf("timestamp: expected a number, got %s", data)
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	sec, err := n.Int64()
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil || f != math.Trunc(f) {
			return fmt.Errorf("timestamp: %s is not a whole number of seconds", n)
		}
		sec = int64(f)
	}
	*t = NewTimestamp(sec)
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(t.Unix(), 10)), nil
}

// FormatValue is a course format option value. The server sends either a string or an integer.
type FormatValue struct {
	str   string
	num   int
	isNum bool
}

func StringValue(s string) FormatValue {
	return FormatValue{str: s}
}

func IntValue(n int) FormatValue {
	return FormatValue{num: n, isNum: true, str: strconv.Itoa(n)}
}

func (v FormatValue) String() string {
	return v.str
}

// Int returns the numeric value and whether the server sent a number.
func (v FormatValue) Int() (int, bool) {
	return v.num, v.isNum
}

func (v *FormatValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("format value must be a string or an integer: %w", err)
	}
	*v = IntValue(n)
	return nil
}

func (v FormatValue) MarshalJSON() ([]byte, error) {
	if v.isNum {
		return json.Marshal(v.num)
	}
	return json.Marshal(v.str)
}

package codec

import (
	"fmt"
	"moodle/internal/mdlerrors"
	"reflect"
	"strings"
)

// optionalField is implemented by models.Optional.
type optionalField interface {
	OptionalElem() reflect.Type
}

var optionalType = reflect.TypeOf((*optionalField)(nil)).Elem()

// checkRequired walks t alongside the parsed value and fails on the first required field that is
// missing or null. Optional fields and lists may be absent; when present they are walked too.
func checkRequired(t reflect.Type, raw interface{}, path string) error {
	if t.Implements(optionalType) {
		elem := reflect.Zero(t).Interface().(optionalField).OptionalElem()
		return checkRequired(elem, raw, path)
	}
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := raw.(map[string]interface{})
		if !ok {
			return fmt.Errorf("%w: %s: expected an object, got %T", mdlerrors.MalformedPayloadError, where(path), raw)
		}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name := keyOf(f)
			if name == "-" {
				continue
			}

			fieldPath := name
			if path != "" {
				fieldPath = path + "." + name
			}

			v, ok := obj[name]
			if !ok || v == nil {
				if isRequired(f.Type) {
					return fmt.Errorf("%w: %s", mdlerrors.MissingFieldError, fieldPath)
				}
				continue
			}
			if err := checkRequired(f.Type, v, fieldPath); err != nil {
				return err
			}
		}

	case reflect.Slice:
		list, ok := raw.([]interface{})
		if !ok {
			return fmt.Errorf("%w: %s: expected a list, got %T", mdlerrors.MalformedPayloadError, where(path), raw)
		}
		for i, v := range list {
			if err := checkRequired(t.Elem(), v, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	}

	return nil
}

func isRequired(t reflect.Type) bool {
	if t.Implements(optionalType) {
		return false
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Map, reflect.Ptr:
		return false
	}
	return true
}

func keyOf(f reflect.StructField) string {
	tag := f.Tag.Get("mapstructure")
	if tag == "" {
		return f.Name
	}
	return strings.Split(tag, ",")[0]
}

func where(path string) string {
	if path == "" {
		return "payload"
	}
	return path
}

// Package codec turns web-service payloads into typed records. JSON and YAML are first parsed into
// generic values, checked for exception payloads and missing required fields, then decoded with
// mapstructure.
package codec

import (
	"encoding/json"
	"fmt"
	"moodle/internal/mdlerrors"
	"moodle/internal/models"
	"reflect"

	"github.com/golang/glog"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Decode parses a JSON payload into T.
func Decode[T any](body []byte) (T, error) {
	var out T
	raw, err := ParseJSON(body)
	if err != nil {
		return out, err
	}
	err = DecodeInto(raw, &out)
	return out, err
}

// DecodeYAML parses a YAML payload into T.
func DecodeYAML[T any](body []byte) (T, error) {
	var out T
	raw, err := ParseYAML(body)
	if err != nil {
		return out, err
	}
	err = DecodeInto(raw, &out)
	return out, err
}

// DecodeValue decodes an already parsed value (maps, slices and scalars) into T.
func DecodeValue[T any](raw interface{}) (T, error) {
	var out T
	err := DecodeInto(raw, &out)
	return out, err
}

// ParseJSON parses body into generic values.
func ParseJSON(body []byte) (interface{}, error) {
	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", mdlerrors.MalformedPayloadError, err)
	}
	return raw, nil
}

// ParseYAML parses body into generic values with string-keyed maps, the same shapes ParseJSON yields.
func ParseYAML(body []byte) (interface{}, error) {
	var raw interface{}
	if err := yaml.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", mdlerrors.MalformedPayloadError, err)
	}
	return raw, nil
}

// DecodeInto decodes raw into out, which must be a non-nil pointer. An exception payload is returned
// as *mdlerrors.Exception. Unknown keys are ignored.
func DecodeInto(raw interface{}, out interface{}) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("codec: decode target must be a non-nil pointer, got %T", out)
	}

	if err := exceptionFrom(raw); err != nil {
		return err
	}

	if err := checkRequired(rv.Elem().Type(), raw, ""); err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(boolToIntHook, wholeNumberHook, unmarshalerHook),
		Result:     out,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("%w: %v", mdlerrors.MalformedPayloadError, err)
	}

	logWarnings(rv.Elem().Interface())
	return nil
}

// exceptionFrom recognises the two error shapes the server uses: web-service exceptions and the
// token endpoint's {"error", "errorcode"} object.
func exceptionFrom(raw interface{}) error {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}

	_, isException := obj["exception"]
	_, hasError := obj["error"]
	_, hasCode := obj["errorcode"]
	if !isException && !(hasError && hasCode) {
		return nil
	}

	e := &mdlerrors.Exception{}
	if err := mapstructure.WeakDecode(obj, e); err != nil {
		return fmt.Errorf("%w: unreadable exception: %v", mdlerrors.MalformedPayloadError, err)
	}
	if e.Message == "" {
		e.Message = fmt.Sprint(obj["error"])
	}
	return e
}

func logWarnings(v interface{}) {
	w, ok := v.(models.Warner)
	if !ok {
		return
	}
	for _, warning := range w.WarningList() {
		glog.V(1).Infof("server warning %s on %s %s: %s", warning.WarningCode, warning.Item, warning.ItemID, warning.Message)
	}
}

package tools

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// decodeParams checks that every required key is present in params and then
// decodes params into out using the struct's json tags. A null params value is
// treated as an empty object. Values are weakly typed: "3" decodes into an int
// and a lone string into a one-element slice.
func decodeParams(params any, out any, required ...string) error {
	var m map[string]any
	switch v := params.(type) {
	case nil:
		m = map[string]any{}
	case map[string]any:
		m = v
	default:
		return &toolError{ErrInvalidParams, fmt.Sprintf("tool_params must be an object, got %T", params)}
	}

	for _, key := range required {
		if _, ok := m[key]; !ok {
			return &toolError{ErrMissingParam, fmt.Sprintf("%q", key)}
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return errors.Wrap(err, "tools: build decoder")
	}
	if err := dec.Decode(m); err != nil {
		return &toolError{ErrInvalidParams, err.Error()}
	}
	return nil
}

// paramFailure turns a decodeParams error into the result shown to the user.
func paramFailure(tool string, err error) Result {
	return Failed(tool+": "+err.Error(), err)
}

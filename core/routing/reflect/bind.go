package reflect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"
)

var contextType = reflect.TypeOf((*context.Context)(nil)).Elem()

// Bind produces the positional arguments of an operation from a JSON object.
//
// For every position i the field named names[i] is decoded with the strategy
// selected by tags[i]. A field that is absent from the object binds nil at that
// position; nothing is looked up or synthesized in its place. Parameters declared
// as context.Context receive ctx and are never read from the body. Keys of the
// object that match no parameter are ignored.
//
// Each field is decoded on its own, and a failure is reported as a ValueError
// naming the parameter and the offending JSON fragment.
func Bind(ctx context.Context, names []string, tags []TypeTag, body []byte) ([]any, error) {
	if len(names) != len(tags) {
		return nil, fmt.Errorf(
			"%w: found %d names for %d parameters",
			ErrParameterNamesNotFound,
			len(names),
			len(tags),
		)
	}

	fields, err := parseObject(body)
	if err != nil {
		return nil, err
	}

	args := make([]any, len(tags))
	for i, tag := range tags {
		if tag.Type == contextType {
			args[i] = ctx
			continue
		}

		raw, ok := fields[names[i]]
		if !ok {
			continue
		}

		value, err := ParseValue(raw, tag)
		if err != nil {
			return nil, NewValueError(names[i], raw, tag.Type, err)
		}

		args[i] = value.Interface()
	}

	return args, nil
}

// parseObject splits a JSON object into its raw fields. An empty body is an
// empty object.
func parseObject(body []byte) (map[string]json.RawMessage, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]json.RawMessage{}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequestBody, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidRequestBody)
	}

	return fields, nil
}

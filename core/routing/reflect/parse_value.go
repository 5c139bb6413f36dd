package reflect

import (
	"bytes"
	"encoding/json"
	"reflect"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var jsonNull = []byte("null")

// decodeFunc decodes a JSON fragment according to a TypeTag.
type decodeFunc func(raw json.RawMessage, tag TypeTag) (reflect.Value, error)

// decoders is the closed set of decode strategies, one per Kind.
var decoders = map[Kind]decodeFunc{
	KindScalar:          decodeScalar,
	KindOrderedSequence: decodeSequence,
	KindSet:             decodeSet,
	KindMap:             decodeScalar,
}

// ParseValue decodes a JSON fragment into a value of the type described by tag.
func ParseValue(raw json.RawMessage, tag TypeTag) (reflect.Value, error) {
	decode, ok := decoders[tag.Kind]
	if !ok {
		decode = decodeScalar
	}

	return decode(raw, tag)
}

// decodeScalar decodes raw into the declared type.
// The function follows these steps:
//  1. JSON null yields the zero value of the type (nil for pointers, slices and maps).
//  2. proto.Message types are decoded with protojson, so well-known types and
//     proto3 JSON field names are honoured.
//  3. Anything else is decoded with encoding/json, which also covers
//     json.Unmarshaler and encoding.TextUnmarshaler implementations.
func decodeScalar(raw json.RawMessage, tag TypeTag) (reflect.Value, error) {
	return valueOf(raw, tag.Type)
}

func valueOf(raw json.RawMessage, t reflect.Type) (reflect.Value, error) {
	if isNull(raw) {
		return reflect.Zero(t), nil
	}

	argPointer := t.Kind() == reflect.Pointer

	var (
		argValue reflect.Value
		outValue reflect.Value
	)
	if argPointer {
		argValue = reflect.New(t.Elem())
		outValue = argValue
	} else {
		argValue = reflect.New(t)
		outValue = argValue.Elem()
	}

	argInterface := argValue.Interface()

	var err error
	if protoMessage, ok := argInterface.(proto.Message); ok {
		err = protojson.Unmarshal(raw, protoMessage)
	} else {
		err = json.Unmarshal(raw, argInterface)
	}
	if err != nil {
		return outValue, err
	}

	return outValue, nil
}

// decodeSequence decodes a JSON array element by element using the element type.
func decodeSequence(raw json.RawMessage, tag TypeTag) (reflect.Value, error) {
	if isNull(raw) {
		return reflect.Zero(tag.Type), nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return reflect.Value{}, err
	}

	out := reflect.MakeSlice(tag.Type, 0, len(items))
	for _, item := range items {
		v, err := valueOf(item, tag.Elem)
		if err != nil {
			return reflect.Value{}, err
		}
		out = reflect.Append(out, v)
	}

	return out, nil
}

// decodeSet decodes a JSON array into a map[K]struct{}, each element being a key.
func decodeSet(raw json.RawMessage, tag TypeTag) (reflect.Value, error) {
	if isNull(raw) {
		return reflect.Zero(tag.Type), nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return reflect.Value{}, err
	}

	var (
		out     = reflect.MakeMapWithSize(tag.Type, len(items))
		present = reflect.New(tag.Type.Elem()).Elem()
	)
	for _, item := range items {
		k, err := valueOf(item, tag.Elem)
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetMapIndex(k, present)
	}

	return out, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

package reflect

import (
	"fmt"
	"reflect"
)

// Kind classifies how a parameter is deserialized.
type Kind int

// Parameter kinds.
const (
	KindScalar          Kind = iota // Decoded with the declared type.
	KindOrderedSequence             // Slice with a resolvable element type.
	KindSet                         // map[K]struct{} with a resolvable key type.
	KindMap                         // Any other map; decoded with the declared type.
)

func (k Kind) String() string {
	switch k {
	case KindOrderedSequence:
		return "sequence"
	case KindSet:
		return "set"
	case KindMap:
		return "map"
	case KindScalar:
		fallthrough
	default:
		return "scalar"
	}
}

// TypeTag is the deserialization shape resolved for one parameter.
type TypeTag struct {
	Kind Kind
	Type reflect.Type // Declared parameter type.
	Elem reflect.Type // Element type for sequences and sets, nil otherwise.
}

func (t TypeTag) String() string {
	if t.Elem == nil {
		return fmt.Sprintf("%s(%s)", t.Kind, t.Type)
	}

	return fmt.Sprintf("%s(%s)", t.Kind, t.Elem)
}

// ResolveParameterTypes returns the TypeTag of every declared parameter of d,
// in declaration order.
func ResolveParameterTypes(d *Descriptor) []TypeTag {
	tags := make([]TypeTag, len(d.ParamTypes))
	for i, t := range d.ParamTypes {
		tags[i] = ResolveType(t)
	}

	return tags
}

// ResolveType classifies a single declared type. Ordered sequences and sets get
// their element type resolved; when the element type is the empty interface it
// carries no usable type information and the declared type is used as a scalar.
// Map value types are never inspected.
func ResolveType(t reflect.Type) TypeTag {
	switch t.Kind() {
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 || !isResolvable(t.Elem()) {
			break
		}
		return TypeTag{Kind: KindOrderedSequence, Type: t, Elem: t.Elem()}

	case reflect.Map:
		if !isEmptyStruct(t.Elem()) {
			return TypeTag{Kind: KindMap, Type: t}
		}
		if !isResolvable(t.Key()) {
			break
		}
		return TypeTag{Kind: KindSet, Type: t, Elem: t.Key()}
	}

	return TypeTag{Kind: KindScalar, Type: t}
}

func isResolvable(t reflect.Type) bool {
	return t.Kind() != reflect.Interface || t.NumMethod() != 0
}

func isEmptyStruct(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.NumField() == 0
}

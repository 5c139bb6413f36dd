package reflect

import (
	"reflect"
	"sort"

	"github.com/anoideaopen/evernote-rest/core/stringsx"
	"github.com/juju/collections/set"
	"github.com/puzpuzpuz/xsync/v3"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// infrastructureMethods are the methods of the locator's own interfaces; they are
// never served as operations.
var infrastructureMethods = methodNamesOf(
	reflect.TypeOf((*StoreClientHolder)(nil)).Elem(),
	reflect.TypeOf((*ParameterNamer)(nil)).Elem(),
	reflect.TypeOf((*FunctionNamer)(nil)).Elem(),
)

// registries caches the operation table of every concrete type seen so far.
var registries = xsync.NewMapOf[reflect.Type, *registry]()

// registry is the operation table of one concrete type.
type registry struct {
	typ         reflect.Type
	descriptors map[string]*Descriptor // function -> descriptor
	functions   []string               // sorted function names
}

func registryOf(concrete any) *registry {
	t := reflect.TypeOf(concrete)
	r, _ := registries.LoadOrCompute(t, func() *registry {
		return newRegistry(concrete)
	})

	return r
}

func newRegistry(concrete any) *registry {
	t := reflect.TypeOf(concrete)
	r := &registry{
		typ:         t,
		descriptors: make(map[string]*Descriptor),
	}

	namer, _ := concrete.(ParameterNamer)
	functionNamer, _ := concrete.(FunctionNamer)

	// reflect.Type.Method enumerates in lexicographic order, so when two methods
	// share an operation name the first one in that order is kept.
	for i := 0; i < t.NumMethod(); i++ {
		method := t.Method(i)
		if infrastructureMethods.Contains(method.Name) {
			continue
		}

		function := ""
		if functionNamer != nil {
			function = functionNamer.FunctionName(method.Name)
		}
		if function == "" {
			function = stringsx.LowerFirstChar(method.Name)
		}
		if _, ok := r.descriptors[function]; ok {
			continue
		}

		d := newDescriptor(function, method)
		if namer != nil {
			if names := namer.ParameterNames(method.Name); names != nil && len(names) == d.NumArgs() {
				d.ParamNames = names
			}
		}

		r.descriptors[function] = d
		r.functions = append(r.functions, function)
	}

	sort.Strings(r.functions)

	return r
}

func newDescriptor(function string, method reflect.Method) *Descriptor {
	mt := method.Type

	// In(0) is the receiver.
	paramTypes := make([]reflect.Type, mt.NumIn()-1)
	for i := range paramTypes {
		paramTypes[i] = mt.In(i + 1)
	}

	d := &Descriptor{
		Function:     function,
		Method:       method,
		ParamTypes:   paramTypes,
		ReturnsError: mt.NumOut() > 0 && mt.Out(mt.NumOut()-1) == errorType,
	}
	d.TypeTags = ResolveParameterTypes(d)

	return d
}

func (r *registry) lookup(function string) (*Descriptor, bool) {
	d, ok := r.descriptors[function]
	return d, ok
}

func methodNamesOf(types ...reflect.Type) set.Strings {
	names := set.NewStrings()
	for _, t := range types {
		for i := 0; i < t.NumMethod(); i++ {
			names.Add(t.Method(i).Name)
		}
	}

	return names
}

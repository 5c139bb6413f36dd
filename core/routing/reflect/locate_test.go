package reflect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocateParameterCount(t *testing.T) {
	store := &testStore{}
	r := registryOf(store)
	require.NotEmpty(t, r.functions)

	for _, function := range r.functions {
		d, err := Locate(store, function)
		require.NoError(t, err)
		require.Equal(t, function, d.Function)
		require.Equal(t, d.Method.Type.NumIn()-1, d.NumArgs(), function)
	}
}

func TestLocate(t *testing.T) {
	testCases := []struct {
		name     string
		target   any
		function string
		method   string
		resolved bool
		err      error
	}{
		{
			name:     "lower first char",
			target:   &testStore{},
			function: "getNote",
			method:   "GetNote",
			resolved: true,
		},
		{
			name:     "match is case sensitive",
			target:   &testStore{},
			function: "GetNote",
			err:      ErrMethodNotFound,
		},
		{
			name:     "unknown method",
			target:   &testStore{},
			function: "doesNotExist",
			err:      ErrMethodNotFound,
		},
		{
			name:     "infrastructure methods are not operations",
			target:   &testStore{},
			function: "parameterNames",
			err:      ErrMethodNotFound,
		},
		{
			name:     "methods without names are unresolved",
			target:   &testStore{},
			function: "unnamed",
			method:   "Unnamed",
		},
		{
			name:     "names of the wrong length are unresolved",
			target:   &testStore{},
			function: "wrong",
			method:   "Wrong",
		},
		{
			name:     "function namer overrides the name",
			target:   renamedStore{},
			function: "getNoteStoreUrl",
			method:   "GetNoteStoreURL",
			resolved: true,
		},
		{
			name:     "overridden name replaces the default",
			target:   renamedStore{},
			function: "getNoteStoreURL",
			err:      ErrMethodNotFound,
		},
		{
			name:     "first method in name order keeps a shared operation name",
			target:   aliasedStore{},
			function: "same",
			method:   "Alpha",
			resolved: true,
		},
		{
			name:     "shadowed method gets no default name",
			target:   aliasedStore{},
			function: "beta",
			err:      ErrMethodNotFound,
		},
		{
			name:     "no target",
			target:   nil,
			function: "getNote",
			err:      ErrMethodNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Locate(tc.target, tc.function)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.method, d.Method.Name)
			require.Equal(t, tc.resolved, d.Resolved())
		})
	}
}

func TestUnwrap(t *testing.T) {
	store := &testStore{}

	require.Same(t, store, Unwrap(store))
	require.Same(t, store, Unwrap(decorator{inner: store}))
	require.Same(t, store, Unwrap(decorator{inner: decorator{inner: store}}))

	empty := decorator{}
	require.Equal(t, empty, Unwrap(empty))
	require.Nil(t, Unwrap(nil))
}

func TestRegistryIsCachedPerType(t *testing.T) {
	first := registryOf(&testStore{})
	second := registryOf(&testStore{calls: 3})
	require.Same(t, first, second)
	require.NotSame(t, first, registryOf(renamedStore{}))
}

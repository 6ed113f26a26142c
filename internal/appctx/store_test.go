package appctx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_InvokesInitializerExactlyOnce(t *testing.T) {
	// --- Arrange ---
	calls := 0

	// --- Act ---
	store := Create(func() map[string]any {
		calls++
		return map[string]any{"db": "handle"}
	})

	// --- Assert ---
	require.Equal(t, 1, calls)
	require.Equal(t, 1, store.Len())
}

func TestCreate_NilInitializerYieldsEmptyStore(t *testing.T) {
	store := Create(nil)

	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.Keys())
}

func TestGet_ReturnsBoundValueByIdentity(t *testing.T) {
	// --- Arrange ---
	service := &struct{ name string }{name: "svc"}
	store := Create(func() map[string]any {
		return map[string]any{"service": service}
	})

	// --- Act ---
	got, err := store.Get("service")

	// --- Assert ---
	require.NoError(t, err)
	assert.Same(t, service, got.(*struct{ name string }))
}

func TestGet_UnknownKeyFails(t *testing.T) {
	store := Create(func() map[string]any {
		return map[string]any{"present": 1}
	})

	_, err := store.Get("absent")

	var unknown *UnknownKeyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "absent", unknown.Key)
}

func TestStore_IsSealedAfterCreate(t *testing.T) {
	store := Create(func() map[string]any {
		return map[string]any{"existing": "value"}
	})

	var mutation *MutationError

	err := store.Set("added", 42)
	require.ErrorAs(t, err, &mutation)
	assert.Equal(t, "set", mutation.Op)

	err = store.Delete("existing")
	require.ErrorAs(t, err, &mutation)
	assert.Equal(t, "delete", mutation.Op)

	// The original binding is untouched.
	got, err := store.Get("existing")
	require.NoError(t, err)
	assert.Equal(t, "value", got)
	assert.False(t, store.Has("added"))
}

func TestStore_CopiesInitializerMap(t *testing.T) {
	// --- Arrange ---
	source := map[string]any{"key": "value"}
	store := Create(func() map[string]any { return source })

	// --- Act ---
	// Mutating the caller's map must not reach the sealed store.
	source["key"] = "changed"
	source["sneaky"] = true

	// --- Assert ---
	got, err := store.Get("key")
	require.NoError(t, err)
	assert.Equal(t, "value", got)
	assert.False(t, store.Has("sneaky"))
}

func TestStore_NestedValuesStayMutable(t *testing.T) {
	// Only top-level bindings freeze. A container bound into the context
	// keeps its own internal mutability.
	container := map[string]int{"count": 0}
	store := Create(func() map[string]any {
		return map[string]any{"container": container}
	})

	got, err := store.Get("container")
	require.NoError(t, err)
	got.(map[string]int)["count"] = 7

	assert.Equal(t, 7, container["count"])
}

func TestKeys_Sorted(t *testing.T) {
	store := Create(func() map[string]any {
		return map[string]any{"c": 1, "a": 2, "b": 3}
	})

	assert.Equal(t, []string{"a", "b", "c"}, store.Keys())
}

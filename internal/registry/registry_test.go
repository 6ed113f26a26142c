package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/appweave/internal/appctx"
)

// noopAction builds an action that records nothing and returns a marker.
func noopAction(marker string) Action {
	return func(ctx context.Context, store *appctx.Store, args ...any) (any, error) {
		return marker, nil
	}
}

func TestRegister_ResolveExposesUnionOfNamespaces(t *testing.T) {
	// --- Arrange ---
	ctx := context.Background()
	reg := New()

	// --- Act ---
	require.NoError(t, reg.Register(ctx, "mod-a", "posts", ActionSet{"create": noopAction("a")}))
	require.NoError(t, reg.Register(ctx, "mod-b", "comments", ActionSet{"create": noopAction("b")}))
	require.NoError(t, reg.Register(ctx, "mod-c", "realtime", ActionSet{"publish": noopAction("c")}))

	// --- Assert ---
	assert.Equal(t, []string{"comments", "posts", "realtime"}, reg.Namespaces())

	view := reg.Resolve()
	require.Len(t, view, 3)
	_, err := view.Lookup("posts", "create")
	require.NoError(t, err)
	_, err = view.Lookup("comments", "create")
	require.NoError(t, err)
}

func TestRegister_DuplicateNamespaceFailsAndLeavesStateUntouched(t *testing.T) {
	// --- Arrange ---
	ctx := context.Background()
	reg := New()
	require.NoError(t, reg.Register(ctx, "first-module", "posts", ActionSet{"create": noopAction("first")}))
	before := reg.Namespaces()

	// --- Act ---
	err := reg.Register(ctx, "second-module", "posts", ActionSet{"create": noopAction("second"), "extra": noopAction("x")})

	// --- Assert ---
	var dup *DuplicateNamespaceError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "posts", dup.Namespace)
	assert.Equal(t, "first-module", dup.ClaimedBy)

	assert.Equal(t, before, reg.Namespaces())
	owner, ok := reg.Owner("posts")
	require.True(t, ok)
	assert.Equal(t, "first-module", owner)

	// The surviving action is still the first module's.
	store := appctx.Create(nil)
	out, err := reg.Invoke(ctx, store, "posts", "create")
	require.NoError(t, err)
	assert.Equal(t, "first", out)
}

func TestRegisterAll_CommitsAllOrNothing(t *testing.T) {
	// --- Arrange ---
	ctx := context.Background()
	reg := New()
	require.NoError(t, reg.Register(ctx, "mod-a", "taken", ActionSet{"x": noopAction("a")}))

	// --- Act ---
	// The second contribution collides, so the first must not commit.
	err := reg.RegisterAll(ctx, "mod-b", []Contribution{
		{Namespace: "fresh", Actions: ActionSet{"y": noopAction("b")}},
		{Namespace: "taken", Actions: ActionSet{"z": noopAction("b")}},
	})

	// --- Assert ---
	var dup *DuplicateNamespaceError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, []string{"taken"}, reg.Namespaces())
}

func TestRegisterAll_RejectsIntraModuleDuplicate(t *testing.T) {
	ctx := context.Background()
	reg := New()

	err := reg.RegisterAll(ctx, "mod-a", []Contribution{
		{Namespace: "posts", Actions: ActionSet{"x": noopAction("1")}},
		{Namespace: "posts", Actions: ActionSet{"y": noopAction("2")}},
	})

	var dup *DuplicateNamespaceError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "mod-a", dup.ClaimedBy)
	assert.Empty(t, reg.Namespaces())
}

func TestRegister_RejectsEmptyNamespaceAndNilActions(t *testing.T) {
	ctx := context.Background()
	reg := New()

	require.Error(t, reg.Register(ctx, "mod-a", "", ActionSet{"x": noopAction("1")}))
	require.Error(t, reg.Register(ctx, "mod-a", "ns", ActionSet{"x": nil}))
	require.Error(t, reg.Register(ctx, "mod-a", "ns", ActionSet{"": noopAction("1")}))
	assert.Empty(t, reg.Namespaces())
}

func TestInvoke_PrependsStoreAndPassesArgs(t *testing.T) {
	// --- Arrange ---
	ctx := context.Background()
	reg := New()
	store := appctx.Create(func() map[string]any {
		return map[string]any{"marker": "bound"}
	})

	var gotStore *appctx.Store
	var gotArgs []any
	action := func(ctx context.Context, s *appctx.Store, args ...any) (any, error) {
		gotStore = s
		gotArgs = args
		return len(args), nil
	}
	require.NoError(t, reg.Register(ctx, "mod-a", "posts", ActionSet{"create": action}))

	// --- Act ---
	out, err := reg.Invoke(ctx, store, "posts", "create", "title", "body")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, 2, out)
	assert.Same(t, store, gotStore)
	assert.Equal(t, []any{"title", "body"}, gotArgs)
}

func TestInvoke_UnknownNamespaceAndAction(t *testing.T) {
	ctx := context.Background()
	reg := New()
	store := appctx.Create(nil)
	require.NoError(t, reg.Register(ctx, "mod-a", "posts", ActionSet{"create": noopAction("a")}))

	var unknown *UnknownActionError

	_, err := reg.Invoke(ctx, store, "missing", "create")
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "missing", unknown.Namespace)
	assert.Empty(t, unknown.Action)

	_, err = reg.Invoke(ctx, store, "posts", "missing")
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "posts", unknown.Namespace)
	assert.Equal(t, "missing", unknown.Action)
}

func TestResolve_SameActionNameInTwoNamespacesStaysDistinct(t *testing.T) {
	// --- Arrange ---
	ctx := context.Background()
	reg := New()
	var postsCalls, commentsCalls int
	require.NoError(t, reg.Register(ctx, "posts-module", "posts", ActionSet{
		"create": func(ctx context.Context, s *appctx.Store, args ...any) (any, error) {
			postsCalls++
			return "post", nil
		},
	}))
	require.NoError(t, reg.Register(ctx, "comments-module", "comments", ActionSet{
		"create": func(ctx context.Context, s *appctx.Store, args ...any) (any, error) {
			commentsCalls++
			return "comment", nil
		},
	}))
	store := appctx.Create(nil)

	// --- Act ---
	out, err := reg.Invoke(ctx, store, "posts", "create", "title", "body")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "post", out)
	assert.Equal(t, 1, postsCalls)
	assert.Equal(t, 0, commentsCalls, "invoking posts.create must not touch comments")
}

func TestResolve_ViewIsACopy(t *testing.T) {
	ctx := context.Background()
	reg := New()
	require.NoError(t, reg.Register(ctx, "mod-a", "posts", ActionSet{"create": noopAction("a")}))

	view := reg.Resolve()
	delete(view, "posts")
	view["injected"] = ActionSet{"x": noopAction("x")}

	assert.Equal(t, []string{"posts"}, reg.Namespaces())
	_, err := reg.Resolve().Lookup("injected", "x")
	require.Error(t, err)
}

package comments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/appweave/internal/appctx"
)

func newTestContext() (*appctx.Store, *Store) {
	comments := NewStore()
	return appctx.Create(func() map[string]any {
		return map[string]any{StoreKey: comments}
	}), comments
}

func TestCreate_AppendsToThread(t *testing.T) {
	// --- Arrange ---
	ctx := context.Background()
	appStore, comments := newTestContext()

	// --- Act ---
	out, err := Create(ctx, appStore, "post-1", "ada", "nice post")

	// --- Assert ---
	require.NoError(t, err)
	created := out.(Comment)
	assert.Equal(t, "post-1", created.PostID)
	assert.Equal(t, "ada", created.Author)
	assert.Len(t, comments.List("post-1"), 1)
}

func TestCreate_ValidatesArguments(t *testing.T) {
	ctx := context.Background()
	appStore, _ := newTestContext()

	_, err := Create(ctx, appStore, "post-1", "ada")
	require.ErrorContains(t, err, "want (postID, author, text)")

	_, err = Create(ctx, appStore, "post-1", "", "text")
	require.ErrorContains(t, err, "author must be a non-empty string")

	_, err = Create(ctx, appStore, "post-1", "ada", "")
	require.ErrorContains(t, err, "text must be a non-empty string")
}

func TestList_ThreadsAreIndependent(t *testing.T) {
	// --- Arrange ---
	ctx := context.Background()
	appStore, _ := newTestContext()
	_, err := Create(ctx, appStore, "post-1", "ada", "first")
	require.NoError(t, err)
	_, err = Create(ctx, appStore, "post-2", "bob", "other thread")
	require.NoError(t, err)

	// --- Act ---
	out, err := List(ctx, appStore, "post-1")

	// --- Assert ---
	require.NoError(t, err)
	listed := out.([]Comment)
	require.Len(t, listed, 1)
	assert.Equal(t, "first", listed[0].Text)
}

func TestList_EmptyThreadIsNotNil(t *testing.T) {
	ctx := context.Background()
	appStore, _ := newTestContext()

	out, err := List(ctx, appStore, "no-comments")

	require.NoError(t, err)
	assert.NotNil(t, out.([]Comment))
	assert.Empty(t, out.([]Comment))
}

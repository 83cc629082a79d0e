package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/lifelog/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "photos")
	st, err := NewLocalStore(dir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, st.Put(ctx, "k.png", strings.NewReader("hello"), 5, "image/png"))

	rc, info, err := st.Get(ctx, "k.png")
	require.NoError(t, err)
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	assert.Equal(t, "hello", string(b))
	assert.Equal(t, "image/png", info.ContentType)
	assert.Equal(t, int64(5), info.Size)

	require.NoError(t, st.Delete(ctx, "k.png"))
	_, _, err = st.Get(ctx, "k.png")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	// deleting twice is fine
	require.NoError(t, st.Delete(ctx, "k.png"))
}

func TestLocalStore_ShortWriteLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	st, err := NewLocalStore(dir)
	require.NoError(t, err)

	err = st.Put(context.Background(), "k.jpg", strings.NewReader("abc"), 10, "image/jpeg")
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStore_RejectsTraversal(t *testing.T) {
	st, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	assert.Error(t, st.Put(ctx, "../x.png", strings.NewReader(""), 0, "image/png"))
	_, _, err = st.Get(ctx, "../../etc/passwd")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestNewKey(t *testing.T) {
	k := NewKey("Beach.JPG", "image/jpeg")
	assert.True(t, strings.HasSuffix(k, ".jpg"), k)
	assert.Len(t, k, 36+4)

	k = NewKey("", "image/png")
	assert.True(t, strings.HasSuffix(k, ".png"), k)

	assert.Equal(t, "/uploads/photos/abc.png", PublicURL("abc.png"))
}

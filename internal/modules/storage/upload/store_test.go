package upload

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir(), DefaultCategories())
}

func TestSaveAssignsDistinctNames(t *testing.T) {
	store := newTestStore(t)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		name, err := store.Save(CategoryBlogs, strings.NewReader("payload"), "cover.png")
		require.NoError(t, err)
		require.False(t, seen[name], "duplicate filename %s", name)
		seen[name] = true
	}
}

func TestSaveWritesUnderCategoryDir(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save(CategoryResumes, bytes.NewReader([]byte("pdf bytes")), "resume.pdf")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(store.Root(), "resumes", name))
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))
}

func TestSaveAlbumFilesLiveAtRoot(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save(CategoryAlbums, strings.NewReader("img"), "shot.jpg")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(store.Root(), name))
	assert.NoError(t, err)
}

func TestSaveCreatesDirLazily(t *testing.T) {
	store := newTestStore(t)

	_, err := os.Stat(filepath.Join(store.Root(), "books"))
	require.True(t, os.IsNotExist(err))

	_, err = store.Save(CategoryBooks, strings.NewReader("x"), "cover.jpg")
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(store.Root(), "books"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveUnknownCategory(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save("secrets", strings.NewReader("x"), "a.txt")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCertificateFormatFilter(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"cert.jpg", "cert.JPEG", "cert.png", "cert.gif"} {
		_, err := store.Save(CategoryCertificates, strings.NewReader("x"), name)
		assert.NoError(t, err, name)
	}

	for _, name := range []string{"cert.pdf", "cert.svg", "cert", "cert."} {
		_, err := store.Save(CategoryCertificates, strings.NewReader("x"), name)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, name)
	}

	// Nothing from the rejected saves should reach disk.
	entries, err := os.ReadDir(filepath.Join(store.Root(), "certificates"))
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestRemoveIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Save(CategoryBlogs, strings.NewReader("x"), "a.png")
	require.NoError(t, err)

	require.NoError(t, store.Remove(CategoryBlogs, name))
	require.NoError(t, store.Remove(CategoryBlogs, name))
	require.NoError(t, store.Remove(CategoryBlogs, "never-existed.png"))
}

func TestPathRejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"..", ".", "", "bad♥name.png"} {
		_, ok := store.Path(CategoryBlogs, name)
		assert.False(t, ok, name)
	}

	// Directory components are stripped, never traversed.
	path, ok := store.Path(CategoryBlogs, "../../etc/passwd")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(store.Root(), "blogs", "passwd"), path)

	path, ok = store.Path(CategoryBlogs, "1700000000000-a.png")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(store.Root(), "blogs", "1700000000000-a.png"), path)
}

func TestNextStampMonotonic(t *testing.T) {
	store := newTestStore(t)

	var last int64
	for i := 0; i < 1000; i++ {
		stamp := store.nextStamp()
		require.Greater(t, stamp, last)
		last = stamp
	}
}

func TestBuildFileName(t *testing.T) {
	name := buildFileName(1700000000000, "my photo.jpg")
	assert.Equal(t, "1700000000000-my_photo.jpg", name)

	// Unsanitizable names fall back to a random token with the extension kept.
	name = buildFileName(1700000000000, "../../x/♥.png")
	assert.True(t, strings.HasPrefix(name, "1700000000000-"))
	assert.True(t, strings.HasSuffix(name, ".png"))

	name = buildFileName(1700000000000, "")
	assert.True(t, strings.HasSuffix(name, ".dat"))
}

func TestSafeName(t *testing.T) {
	assert.Equal(t, "a-b_c.png", safeName("a-b_c.png"))
	assert.Equal(t, "with_space.png", safeName("with space.png"))
	assert.Equal(t, "passwd", safeName("../etc/passwd"))
	assert.Equal(t, "", safeName(".."))
	assert.Equal(t, "", safeName("."))
	assert.Equal(t, "", safeName("bad♥name.png"))
}

package uploads

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, fieldName, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r := multipart.NewReader(&buf, w.Boundary())
	form, err := r.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File[fieldName][0]
}

func TestDiskBinderBindStoresContent(t *testing.T) {
	b, err := NewDiskBinder(t.TempDir())
	require.NoError(t, err)

	path, err := b.Bind("passport_photo", fileHeader(t, "passport_photo", "me.JPG", "photo-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, PathPrefix+"passport_photo-"), "path %q", path)
	assert.True(t, strings.HasSuffix(path, ".JPG"))

	rc, err := b.Open(filepath.Base(path))
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "photo-bytes", string(data))
}

func TestDiskBinderNamesDoNotCollide(t *testing.T) {
	b, err := NewDiskBinder(t.TempDir())
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		path, err := b.Bind("payment_screenshot", fileHeader(t, "payment_screenshot", "pay.png", "x"))
		require.NoError(t, err)
		assert.False(t, seen[path], "duplicate stored path %q", path)
		seen[path] = true
	}
}

func TestDiskBinderSanitizesFieldName(t *testing.T) {
	b, err := NewDiskBinder(t.TempDir())
	require.NoError(t, err)

	path, err := b.Bind("../weird field!", fileHeader(t, "f", "a.png", "x"))
	require.NoError(t, err)

	name := filepath.Base(path)
	for _, r := range strings.TrimSuffix(name, ".png") {
		valid := r == '-' || r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		assert.True(t, valid, "unexpected rune %q in %q", r, name)
	}
}

func TestDiskBinderOpenUnknown(t *testing.T) {
	b, err := NewDiskBinder(t.TempDir())
	require.NoError(t, err)

	_, err = b.Open("nope.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDiskBinderRemove(t *testing.T) {
	dir := t.TempDir()
	b, err := NewDiskBinder(dir)
	require.NoError(t, err)

	path, err := b.Bind("passport_photo", fileHeader(t, "passport_photo", "me.jpg", "x"))
	require.NoError(t, err)

	require.NoError(t, b.Remove(path))
	_, err = b.Open(filepath.Base(path))
	assert.ErrorIs(t, err, ErrNotFound)

	// absence is not an error
	assert.NoError(t, b.Remove(path))
}

func TestDiskBinderRemoveDefeatsTraversal(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "uploads")
	b, err := NewDiskBinder(dir)
	require.NoError(t, err)

	victim := filepath.Join(parent, "secret.txt")
	require.NoError(t, os.WriteFile(victim, []byte("keep me"), 0o600))

	require.NoError(t, b.Remove("/uploads/../secret.txt"))
	require.NoError(t, b.Remove("../secret.txt"))
	require.NoError(t, b.Remove(".."))

	_, err = os.Stat(victim)
	assert.NoError(t, err, "file outside the upload dir must survive")
}

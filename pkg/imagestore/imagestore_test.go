package imagestore_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cookbook/pkg/imagestore"

	"github.com/stretchr/testify/assert"
)

// A 1x1 transparent PNG.
const pngBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func TestStore_SaveBase64(t *testing.T) {
	dir := t.TempDir()
	store, err := imagestore.New(dir, "/media/")
	assert.NoError(t, err)

	url, err := store.SaveBase64(pngBase64)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/media/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	// The file exists on disk under the returned name.
	fileName := strings.TrimPrefix(url, "/media/")
	info, err := os.Stat(filepath.Join(dir, fileName))
	assert.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestStore_SaveBase64_DataURI(t *testing.T) {
	store, err := imagestore.New(t.TempDir(), "/media")
	assert.NoError(t, err)

	url, err := store.SaveBase64("data:image/png;base64," + pngBase64)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/media/"))
}

func TestStore_SaveBase64_InvalidPayloads(t *testing.T) {
	store, err := imagestore.New(t.TempDir(), "/media")
	assert.NoError(t, err)

	_, err = store.SaveBase64("not base64 at all!!!")
	assert.Error(t, err)

	// Valid base64, but not an image.
	_, err = store.SaveBase64("aGVsbG8gd29ybGQ=")
	assert.Error(t, err)
}

func TestStore_CreatesMediaDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "media")
	store, err := imagestore.New(dir, "/media")
	assert.NoError(t, err)

	info, err := os.Stat(store.Dir())
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
